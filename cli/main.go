package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"

	"github.com/comite-td/dcs/dataset"
	"github.com/comite-td/dcs/filtro"
	"github.com/comite-td/dcs/metricas"
)

func main() {
	fuente := flag.String("dataset", dataset.ArchivoPorDefecto, "ruta o URL del archivo con la hoja Raw")
	area := flag.String("area", filtro.TodasLasAreas, "filtrar por área")
	nivel := flag.String("nivel", filtro.TodosLosNiveles, "filtrar por nivel")
	flag.Parse()
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	s.Suffix = " cargando dataset"
	s.Start()
	ds, err := dataset.CargarFuente(*fuente)
	s.Stop()
	if err != nil {
		log.Fatalf("%s (%v)", dataset.MensajeErrorCarga, err)
	}
	sel := filtro.Seleccion{Area: *area, Nivel: *nivel}
	filtrado := filtro.Aplicar(ds, sel)
	resumen := metricas.ResumenDe(filtrado)
	fmt.Printf("Digital Culture Scan – %s\n", *fuente)
	fmt.Printf("Filtros: Área=%s, Nivel=%s\n\n", sel.Area, sel.Nivel)
	fmt.Printf("eNPS Global:      %.0f\n", resumen.ENPS)
	fmt.Printf("Promedio General: %.2f\n", resumen.PromedioGeneral)
	fmt.Printf("N° Respuestas:    %d\n\n", resumen.Respuestas)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Dimensión\tPromedio")
	for _, p := range metricas.PromediosDimension(filtrado) {
		fmt.Fprintf(w, "%s\t%.2f\n", p.Dimension, p.Promedio)
	}
	w.Flush()
	porArea := metricas.PromediosPorArea(filtrado)
	if len(porArea) == 0 {
		fmt.Println("\nSin filas para los filtros aplicados.")
		return
	}
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "Área")
	for _, dim := range dataset.Dimensiones {
		fmt.Fprintf(w, "\t%s", dim)
	}
	fmt.Fprintln(w)
	for _, grupo := range porArea {
		fmt.Fprint(w, grupo.Area)
		for _, p := range grupo.Promedios {
			fmt.Fprintf(w, "\t%.2f", p.Promedio)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
