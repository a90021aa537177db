package status

// Status is a custom type to represent the possible states of the dataset
type Status int

const (
	// SinDatos means no dataset could be loaded yet
	SinDatos Status = 0

	// Procesando means a dataset is being loaded
	Procesando Status = 1

	// Listo means the dashboard is serving a loaded dataset
	Listo Status = 2
)

var (
	statusText = map[Status]string{
		SinDatos:   "Sin dataset cargado",
		Procesando: "Cargando dataset",
		Listo:      "Dataset cargado",
	}
)

// Text returns a text for a status. It returns the empty
// string if the status is unknown.
func Text(status Status) string {
	return statusText[status]
}
