// Package dashboard is the presentation shell of the Digital Culture
// Scan: it owns the two filter controls and serves the single-page view
// with the KPIs, the four charts and the filtered data preview.
package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/labstack/echo"

	"github.com/comite-td/dcs/dataset"
	"github.com/comite-td/dcs/filtro"
	"github.com/comite-td/dcs/graficos"
	"github.com/comite-td/dcs/metricas"
	"github.com/comite-td/dcs/status"
)

// Handler is a struct to hold important data for this package
type Handler struct {
	rutaPorDefecto string // dataset path used when nothing was uploaded

	mu           sync.RWMutex
	subido       []byte // uploaded workbook, kept in memory only
	nombreSubido string
	estado       status.Status
	err          string // last error message
}

// New returns a new dashboard handler serving the default dataset path.
func New(rutaPorDefecto string) *Handler {
	return &Handler{
		rutaPorDefecto: rutaPorDefecto,
		estado:         status.SinDatos,
	}
}

// respuestaDatos is the full payload behind one dashboard render.
type respuestaDatos struct {
	KPIs     kpis             `json:"kpis"`
	Opciones filtro.Opciones  `json:"opciones"`
	Radar    graficos.Grafico `json:"radar"`
	Barras   graficos.Grafico `json:"barras"`
	Heatmap  graficos.Grafico `json:"heatmap"`
	RAG      graficos.Grafico `json:"rag"`
	Tabla    tabla            `json:"tabla"`
}

// kpis carry the three readouts already formatted for display.
type kpis struct {
	ENPS            string `json:"enps"`
	PromedioGeneral string `json:"promedioGeneral"`
	Respuestas      int    `json:"respuestas"`
}

// tabla is the raw-data preview of the filtered dataset.
type tabla struct {
	Columnas []string   `json:"columnas"`
	Filas    [][]string `json:"filas"`
}

// Pagina serves the single dashboard page.
func (h *Handler) Pagina(c echo.Context) error {
	return c.HTML(http.StatusOK, paginaHTML)
}

// Datos runs the whole pipeline for one interaction: load, derive,
// filter, aggregate and render. Nothing is cached between calls.
func (h *Handler) Datos(c echo.Context) error {
	ds, err := h.cargar()
	if err != nil {
		h.registrarError(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": dataset.MensajeErrorCarga,
		})
	}
	h.registrarCarga()
	sel := filtro.Desde(c.QueryParam("area"), c.QueryParam("nivel"))
	filtrado := filtro.Aplicar(ds, sel)
	resumen := metricas.ResumenDe(filtrado)
	porArea := metricas.PromediosPorArea(filtrado)
	return c.JSON(http.StatusOK, respuestaDatos{
		KPIs: kpis{
			ENPS:            fmt.Sprintf("%.0f", resumen.ENPS),
			PromedioGeneral: fmt.Sprintf("%.2f", resumen.PromedioGeneral),
			Respuestas:      resumen.Respuestas,
		},
		Opciones: filtro.OpcionesDe(ds),
		Radar:    graficos.Radar(metricas.PromediosDimension(filtrado)),
		Barras:   graficos.Barras(porArea),
		Heatmap:  graficos.Heatmap(porArea),
		RAG:      graficos.MatrizRAG(),
		Tabla:    tablaDe(filtrado),
	})
}

// Subir receives the uploaded workbook. The file is validated by loading
// it once and then kept in memory; it takes precedence over the default
// path until replaced. Nothing is written to disk.
func (h *Handler) Subir(c echo.Context) error {
	archivo, err := c.FormFile("dataset")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "la requisición no trae el campo dataset",
		})
	}
	f, err := archivo.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("falla al abrir el archivo subido, error %q", err),
		})
	}
	defer f.Close()
	contenido, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("falla al leer el archivo subido, error %q", err),
		})
	}
	if _, err := dataset.Cargar(bytes.NewReader(contenido), archivo.Filename); err != nil {
		h.registrarError(err)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": dataset.MensajeErrorCarga,
		})
	}
	h.mu.Lock()
	h.subido = contenido
	h.nombreSubido = archivo.Filename
	h.estado = status.Listo
	h.err = ""
	h.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]string{"archivo": archivo.Filename})
}

// Estado returns current state and last error
func (h *Handler) Estado(c echo.Context) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       h.estado,
		"statusText":   status.Text(h.estado),
		"errorMessage": h.err,
	})
}

// cargar reloads the dataset for the current interaction. An uploaded
// file takes precedence; the default path is tried only without one.
func (h *Handler) cargar() (dataset.Dataset, error) {
	h.mu.RLock()
	subido, nombre := h.subido, h.nombreSubido
	h.mu.RUnlock()
	if len(subido) > 0 {
		return dataset.Cargar(bytes.NewReader(subido), nombre)
	}
	return dataset.CargarArchivo(h.rutaPorDefecto)
}

func (h *Handler) registrarError(err error) {
	h.mu.Lock()
	h.estado = status.SinDatos
	h.err = err.Error()
	h.mu.Unlock()
}

func (h *Handler) registrarCarga() {
	h.mu.Lock()
	h.estado = status.Listo
	h.err = ""
	h.mu.Unlock()
}

// tablaDe formats the filtered rows for the preview table, keeping their
// order. Missing scores render as empty cells.
func tablaDe(ds dataset.Dataset) tabla {
	t := tabla{
		Columnas: []string{
			dataset.ColArea, dataset.ColNivel,
			dataset.ColAgilidad, dataset.ColEmpoderamiento,
			dataset.ColMentalidadDatos, dataset.ColCorajeInnovar,
			dataset.ColENPS, dataset.ColPromedioGeneral,
		},
		Filas: make([][]string, 0, len(ds)),
	}
	for _, r := range ds {
		t.Filas = append(t.Filas, []string{
			r.Area, r.Nivel,
			numeroCelda(r.Agilidad, "%.0f"),
			numeroCelda(r.Empoderamiento, "%.0f"),
			numeroCelda(r.MentalidadDatos, "%.0f"),
			numeroCelda(r.CorajeInnovar, "%.0f"),
			numeroCelda(r.ENPS, "%.0f"),
			numeroCelda(r.PromedioGeneral, "%.2f"),
		})
	}
	return t
}

func numeroCelda(v *float64, formato string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(formato, *v)
}
