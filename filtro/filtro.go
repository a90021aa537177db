// Package filtro selects the subsequence of survey rows matching the two
// dashboard filters, Área and Nivel.
package filtro

import (
	"sort"

	"github.com/comite-td/dcs/dataset"
)

// Sentinelas that deactivate each filter.
const (
	TodasLasAreas   = "(Todas)"
	TodosLosNiveles = "(Todos)"
)

// Seleccion is the pair of filter values chosen by the viewer. It lives
// only for the current interaction and is never persisted.
type Seleccion struct {
	Area  string
	Nivel string
}

// PorDefecto returns the selection with both filters inactive.
func PorDefecto() Seleccion {
	return Seleccion{Area: TodasLasAreas, Nivel: TodosLosNiveles}
}

// Desde builds a selection from raw request values, mapping empty strings
// to the inactive sentinels.
func Desde(area, nivel string) Seleccion {
	sel := PorDefecto()
	if area != "" {
		sel.Area = area
	}
	if nivel != "" {
		sel.Nivel = nivel
	}
	return sel
}

// FiltraArea reports whether the Área criterion is active.
func (s Seleccion) FiltraArea() bool { return s.Area != TodasLasAreas }

// FiltraNivel reports whether the Nivel criterion is active.
func (s Seleccion) FiltraNivel() bool { return s.Nivel != TodosLosNiveles }

// Aplicar returns the rows matching every active criterion by exact
// equality, keeping the original order. With no active criteria it
// returns the dataset untouched. An empty result is not an error.
func Aplicar(ds dataset.Dataset, sel Seleccion) dataset.Dataset {
	if !sel.FiltraArea() && !sel.FiltraNivel() {
		return ds
	}
	filtrado := make(dataset.Dataset, 0, len(ds))
	for _, r := range ds {
		if sel.FiltraArea() && r.Area != sel.Area {
			continue
		}
		if sel.FiltraNivel() && r.Nivel != sel.Nivel {
			continue
		}
		filtrado = append(filtrado, r)
	}
	return filtrado
}

// Opciones are the values offered by the two filter controls.
type Opciones struct {
	Areas   []string `json:"areas"`
	Niveles []string `json:"niveles"`
}

// OpcionesDe collects the sorted distinct non-missing values of Área and
// Nivel over the unfiltered dataset, each list headed by its sentinel.
func OpcionesDe(ds dataset.Dataset) Opciones {
	return Opciones{
		Areas:   distintos(ds, TodasLasAreas, func(r dataset.Respuesta) string { return r.Area }),
		Niveles: distintos(ds, TodosLosNiveles, func(r dataset.Respuesta) string { return r.Nivel }),
	}
}

func distintos(ds dataset.Dataset, sentinela string, valor func(dataset.Respuesta) string) []string {
	vistos := make(map[string]bool)
	var valores []string
	for _, r := range ds {
		v := valor(r)
		if v == "" || vistos[v] {
			continue
		}
		vistos[v] = true
		valores = append(valores, v)
	}
	sort.Strings(valores)
	return append([]string{sentinela}, valores...)
}
