// Package graficos builds the chart specifications of the DCS dashboard
// from the aggregated values. Each chart is rebuilt from scratch on every
// filter change.
package graficos

import (
	"github.com/comite-td/dcs/dataset"
	"github.com/comite-td/dcs/metricas"
)

// paleta de colores para las series.
var paleta = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// MensajeSinDatos is shown in place of a chart when the filters left no rows.
const MensajeSinDatos = "No hay datos para construir el gráfico con los filtros aplicados."

// Radar builds the closed polygon over the four dimension means. The loop
// closes by repeating the first dimension/value pair at the end.
func Radar(promedios []metricas.PromedioDimension) Grafico {
	puntos := make([]Punto, 0, len(promedios)+1)
	for _, p := range promedios {
		puntos = append(puntos, Punto{Etiqueta: p.Dimension, Valor: p.Promedio})
	}
	if len(puntos) > 0 {
		puntos = append(puntos, puntos[0])
	}
	return Grafico{
		Tipo:   TipoRadar,
		Titulo: "Dimensiones de Cultura Digital (Radar)",
		RangoY: [2]float64{0, 5},
		Series: []Serie{{Nombre: "Promedio (1-5)", Puntos: puntos, Color: paleta[0]}},
	}
}

// Barras builds the grouped bar chart: one series per Área, one bar per
// dimension within each group. An empty grouping renders a placeholder.
func Barras(porArea []metricas.PromedioArea) Grafico {
	g := Grafico{
		Tipo:   TipoBarras,
		Titulo: "Comparativo por Dimensión y Área",
		EjeX:   "Dimensión",
		EjeY:   "Promedio",
		RangoY: [2]float64{0, 5},
	}
	if len(porArea) == 0 {
		g.SinDatos = true
		g.Mensaje = MensajeSinDatos
		return g
	}
	for i, grupo := range porArea {
		serie := Serie{Nombre: grupo.Area, Color: paleta[i%len(paleta)]}
		for _, p := range grupo.Promedios {
			serie.Puntos = append(serie.Puntos, Punto{Etiqueta: p.Dimension, Valor: p.Promedio})
		}
		g.Series = append(g.Series, serie)
	}
	return g
}

// Heatmap builds the friction map: rows are Áreas, columns are dimensions
// and each cell holds the group mean. The color scale saturates outside
// [2,4]; the underlying values are not clipped. An empty grouping renders
// a placeholder instead of an empty chart.
func Heatmap(porArea []metricas.PromedioArea) Grafico {
	g := Grafico{
		Tipo:       TipoHeatmap,
		Titulo:     "Mapa de Fricciones Culturales (bajo=verde, alto=rojo)",
		EjeX:       "Dimensión",
		EjeY:       "Área",
		Columnas:   dataset.Dimensiones,
		RangoColor: [2]float64{2, 4},
	}
	if len(porArea) == 0 {
		g.SinDatos = true
		g.Mensaje = "No hay datos para construir el heatmap con los filtros aplicados."
		return g
	}
	for _, grupo := range porArea {
		g.Filas = append(g.Filas, grupo.Area)
		fila := make([]float64, 0, len(grupo.Promedios))
		for _, p := range grupo.Promedios {
			fila = append(fila, p.Promedio)
		}
		g.Valores = append(g.Valores, fila)
	}
	return g
}

// MatrizRAG plots the five static initiatives on Urgencia × Impacto,
// labeled by name and colored by category. It ignores the filters.
func MatrizRAG() Grafico {
	g := Grafico{
		Tipo:   TipoDispersion,
		Titulo: "Matriz Impacto × Urgencia (RAG)",
		EjeX:   "Urgencia",
		EjeY:   "Impacto",
		RangoX: [2]float64{0, 6},
		RangoY: [2]float64{0, 6},
	}
	for _, ini := range Iniciativas {
		g.PuntosXY = append(g.PuntosXY, PuntoXY{
			X:         ini.Urgencia,
			Y:         ini.Impacto,
			Etiqueta:  ini.Nombre,
			Categoria: ini.Categoria,
		})
	}
	return g
}
