package graficos

// Tipos de gráfico producidos por este paquete.
const (
	TipoRadar      = "radar"
	TipoBarras     = "barras"
	TipoHeatmap    = "heatmap"
	TipoDispersion = "dispersion"
)

// Punto is a labeled value inside a series.
type Punto struct {
	Etiqueta string  `json:"etiqueta"`
	Valor    float64 `json:"valor"`
}

// Serie is one data series of a chart.
type Serie struct {
	Nombre string  `json:"nombre"`
	Puntos []Punto `json:"puntos"`
	Color  string  `json:"color,omitempty"`
}

// PuntoXY is a labeled point of the scatter chart.
type PuntoXY struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Etiqueta  string  `json:"etiqueta"`
	Categoria string  `json:"categoria"`
}

// Grafico is a render-ready chart specification. The frontend draws it
// without recomputing anything; exactly one of Series, Valores or
// PuntosXY is populated according to Tipo.
type Grafico struct {
	Tipo   string `json:"tipo"`
	Titulo string `json:"titulo"`
	EjeX   string `json:"ejeX,omitempty"`
	EjeY   string `json:"ejeY,omitempty"`

	RangoX [2]float64 `json:"rangoX,omitempty"`
	RangoY [2]float64 `json:"rangoY,omitempty"`

	Series []Serie `json:"series,omitempty"`

	// heatmap: Filas × Columnas con un valor por celda
	Filas      []string    `json:"filas,omitempty"`
	Columnas   []string    `json:"columnas,omitempty"`
	Valores    [][]float64 `json:"valores,omitempty"`
	RangoColor [2]float64  `json:"rangoColor,omitempty"`

	PuntosXY []PuntoXY `json:"puntosXY,omitempty"`

	// placeholder cuando la vista filtrada quedó vacía
	SinDatos bool   `json:"sinDatos,omitempty"`
	Mensaje  string `json:"mensaje,omitempty"`
}
