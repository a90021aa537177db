package dataset

// Nombres de las columnas requeridas del dataset DCS.
const (
	ColArea            = "Área"
	ColNivel           = "Nivel"
	ColAgilidad        = "Agilidad"
	ColEmpoderamiento  = "Empoderamiento"
	ColMentalidadDatos = "MentalidadDatos"
	ColCorajeInnovar   = "CorajeInnovar"
	ColENPS            = "eNPS"
	ColPromedioGeneral = "PromedioGeneral"
)

// Dimensiones lists the four culture dimensions in canonical order.
var Dimensiones = []string{ColAgilidad, ColEmpoderamiento, ColMentalidadDatos, ColCorajeInnovar}

// Respuesta representa la fila de un encuestado en la hoja Raw.
// Los puntajes pueden faltar; un puntero nil marca el valor ausente.
type Respuesta struct {
	Area            string   `json:"Área"`            // unidad organizacional
	Nivel           string   `json:"Nivel"`           // nivel organizacional
	Agilidad        *float64 `json:"Agilidad"`        // puntaje 1-5
	Empoderamiento  *float64 `json:"Empoderamiento"`  // puntaje 1-5
	MentalidadDatos *float64 `json:"MentalidadDatos"` // puntaje 1-5
	CorajeInnovar   *float64 `json:"CorajeInnovar"`   // puntaje 1-5
	ENPS            *float64 `json:"eNPS"`            // -100, 0 o 100
	PromedioGeneral *float64 `json:"PromedioGeneral"` // derivado tras la carga
}

// Dimension returns the score of a named dimension, nil if missing
// or if the name is not one of the four dimensions.
func (r Respuesta) Dimension(nombre string) *float64 {
	switch nombre {
	case ColAgilidad:
		return r.Agilidad
	case ColEmpoderamiento:
		return r.Empoderamiento
	case ColMentalidadDatos:
		return r.MentalidadDatos
	case ColCorajeInnovar:
		return r.CorajeInnovar
	}
	return nil
}

// Dataset is the ordered collection of survey rows. Filtering produces
// a subsequence, never a reordering.
type Dataset []Respuesta
