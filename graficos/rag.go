package graficos

// Iniciativa is one row of the RAG action matrix: hand-authored reference
// data, never derived from the survey.
type Iniciativa struct {
	Nombre    string  `json:"nombre"`
	Impacto   float64 `json:"impacto"`  // 1-5
	Urgencia  float64 `json:"urgencia"` // 1-5
	Categoria string  `json:"categoria"`
}

// Iniciativas is the action plan presented to the transformation
// committee. The matrix is static and independent of the filters.
var Iniciativas = []Iniciativa{
	{Nombre: "Daily Learning Nugget", Impacto: 5, Urgencia: 5, Categoria: "Quick Win"},
	{Nombre: "Célula Ágil Piloto", Impacto: 4, Urgencia: 3, Categoria: "180 días"},
	{Nombre: "Academia de Datos", Impacto: 5, Urgencia: 2, Categoria: "365 días"},
	{Nombre: "Incentivos Digitales", Impacto: 4, Urgencia: 4, Categoria: "90-365 días"},
	{Nombre: "Gobernanza DCS", Impacto: 5, Urgencia: 2, Categoria: "Gobernanza"},
}
