// Package metricas computes the aggregates feeding the DCS dashboard:
// the eNPS score, per-dimension means and per-Área means. Every function
// is pure and runs over the currently filtered view.
package metricas

import (
	"sort"

	"github.com/comite-td/dcs/dataset"
)

// Valores de la clasificación promotor/detractor en la columna eNPS.
const (
	Promotor  = 100
	Detractor = -100
)

// ENPS computes the employee net promoter score: promoters minus
// detractors over every non-missing answer, passives included. A view
// with no eNPS answers scores 0.
func ENPS(ds dataset.Dataset) float64 {
	var promotores, detractores, total int
	for _, r := range ds {
		if r.ENPS == nil {
			continue
		}
		total++
		switch *r.ENPS {
		case Promotor:
			promotores++
		case Detractor:
			detractores++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(promotores-detractores) / float64(total) * 100
}

// PromedioDimension is the mean score of one culture dimension.
type PromedioDimension struct {
	Dimension string  `json:"dimension"`
	Promedio  float64 `json:"promedio"`
}

// PromediosDimension computes the mean of each dimension over the view,
// excluding missing values, in canonical dimension order. An empty view
// yields 0 per dimension for display.
func PromediosDimension(ds dataset.Dataset) []PromedioDimension {
	promedios := make([]PromedioDimension, 0, len(dataset.Dimensiones))
	for _, dim := range dataset.Dimensiones {
		var suma float64
		var n int
		for _, r := range ds {
			if v := r.Dimension(dim); v != nil {
				suma += *v
				n++
			}
		}
		p := PromedioDimension{Dimension: dim}
		if n > 0 {
			p.Promedio = suma / float64(n)
		}
		promedios = append(promedios, p)
	}
	return promedios
}

// PromedioArea holds the per-dimension means of one Área group.
type PromedioArea struct {
	Area      string              `json:"area"`
	Promedios []PromedioDimension `json:"promedios"`
}

// PromediosPorArea groups the view by Área and computes the dimension
// means within each group, Áreas sorted alphabetically. An empty view
// yields zero groups, not an error.
func PromediosPorArea(ds dataset.Dataset) []PromedioArea {
	grupos := make(map[string]dataset.Dataset)
	var areas []string
	for _, r := range ds {
		if _, visto := grupos[r.Area]; !visto {
			areas = append(areas, r.Area)
		}
		grupos[r.Area] = append(grupos[r.Area], r)
	}
	sort.Strings(areas)
	porArea := make([]PromedioArea, 0, len(areas))
	for _, area := range areas {
		porArea = append(porArea, PromedioArea{
			Area:      area,
			Promedios: PromediosDimension(grupos[area]),
		})
	}
	return porArea
}

// Resumen holds the three KPI readouts of the dashboard.
type Resumen struct {
	ENPS            float64 `json:"enps"`
	PromedioGeneral float64 `json:"promedioGeneral"`
	Respuestas      int     `json:"respuestas"`
}

// ResumenDe computes the KPIs over the filtered view. PromedioGeneral is
// the mean of the derived per-row means, 0 when the view is empty.
func ResumenDe(ds dataset.Dataset) Resumen {
	res := Resumen{
		ENPS:       ENPS(ds),
		Respuestas: len(ds),
	}
	var suma float64
	var n int
	for _, r := range ds {
		if r.PromedioGeneral != nil {
			suma += *r.PromedioGeneral
			n++
		}
	}
	if n > 0 {
		res.PromedioGeneral = suma / float64(n)
	}
	return res
}
