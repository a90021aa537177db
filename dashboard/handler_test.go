package dashboard

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo"
	"github.com/xuri/excelize/v2"

	"github.com/comite-td/dcs/dataset"
	"github.com/comite-td/dcs/filtro"
	"github.com/comite-td/dcs/status"
)

// libroDePrueba builds a small DCS workbook and returns its bytes.
func libroDePrueba(t *testing.T) []byte {
	t.Helper()
	filas := [][]interface{}{
		{dataset.ColArea, dataset.ColNivel, dataset.ColAgilidad, dataset.ColEmpoderamiento, dataset.ColMentalidadDatos, dataset.ColCorajeInnovar, dataset.ColENPS},
		{"A", "Gerencial", 4, 3, 3, 3, 100},
		{"A", "Operativo", 2, 3, 3, 3, -100},
		{"B", "Operativo", 5, 3, 3, 3, 0},
	}
	libro := excelize.NewFile()
	if _, err := libro.NewSheet(dataset.HojaRaw); err != nil {
		t.Fatalf("want error nil when creating the Raw sheet, got %q", err)
	}
	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("want error nil when naming cell, got %q", err)
		}
		if err := libro.SetSheetRow(dataset.HojaRaw, celda, &fila); err != nil {
			t.Fatalf("want error nil when writing row %d, got %q", i+1, err)
		}
	}
	buf, err := libro.WriteToBuffer()
	if err != nil {
		t.Fatalf("want error nil when writing the workbook, got %q", err)
	}
	return buf.Bytes()
}

func archivoDePrueba(t *testing.T) string {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), "Dataset_DCS_ReidCo.xlsx")
	if err := os.WriteFile(ruta, libroDePrueba(t), 0644); err != nil {
		t.Fatalf("want error nil when saving the fixture, got %q", err)
	}
	return ruta
}

func contexto(t *testing.T, metodo, url string, cuerpo *bytes.Buffer, tipoContenido string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	var err error
	if cuerpo == nil {
		req, err = http.NewRequest(metodo, url, nil)
	} else {
		req, err = http.NewRequest(metodo, url, cuerpo)
	}
	if err != nil {
		t.Fatalf("want error nil when creating test request, got %q", err)
	}
	if tipoContenido != "" {
		req.Header.Set(echo.HeaderContentType, tipoContenido)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestPagina(t *testing.T) {
	h := New(archivoDePrueba(t))
	c, rec := contexto(t, http.MethodGet, "/", nil, "")
	if err := h.Pagina(c); err != nil {
		t.Fatalf("want error nil from the page handler, got %q", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("want status 200, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Digital Culture Scan")) {
		t.Error("want the dashboard page served")
	}
}

func TestDatos(t *testing.T) {
	h := New(archivoDePrueba(t))
	c, rec := contexto(t, http.MethodGet, "/api/dashboard", nil, "")
	if err := h.Datos(c); err != nil {
		t.Fatalf("want error nil from the handler, got %q", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("want status 200, got %d", rec.Code)
	}
	var datos respuestaDatos
	if err := json.Unmarshal(rec.Body.Bytes(), &datos); err != nil {
		t.Fatalf("want error nil when decoding the payload, got %q", err)
	}
	if datos.KPIs.Respuestas != 3 {
		t.Errorf("want 3 respuestas without filters, got %d", datos.KPIs.Respuestas)
	}
	if datos.KPIs.ENPS != "0" {
		t.Errorf("want eNPS 0 over one promoter, one detractor and one passive, got %s", datos.KPIs.ENPS)
	}
	if len(datos.Opciones.Areas) != 3 || datos.Opciones.Areas[0] != filtro.TodasLasAreas {
		t.Errorf("want areas headed by the sentinel, got %v", datos.Opciones.Areas)
	}
	puntos := datos.Radar.Series[0].Puntos
	if len(puntos) != 5 || puntos[0] != puntos[4] {
		t.Errorf("want the radar polygon closed, got %v", puntos)
	}
	if len(datos.RAG.PuntosXY) != 5 {
		t.Errorf("want the five static initiatives, got %d", len(datos.RAG.PuntosXY))
	}
	if len(datos.Tabla.Filas) != 3 {
		t.Errorf("want the full preview table, got %d rows", len(datos.Tabla.Filas))
	}
}

func TestDatosFiltrados(t *testing.T) {
	h := New(archivoDePrueba(t))
	c, rec := contexto(t, http.MethodGet, "/api/dashboard?area=A", nil, "")
	if err := h.Datos(c); err != nil {
		t.Fatalf("want error nil from the handler, got %q", err)
	}
	var datos respuestaDatos
	if err := json.Unmarshal(rec.Body.Bytes(), &datos); err != nil {
		t.Fatalf("want error nil when decoding the payload, got %q", err)
	}
	if datos.KPIs.Respuestas != 2 {
		t.Errorf("want 2 respuestas for Área A, got %d", datos.KPIs.Respuestas)
	}
	if datos.KPIs.ENPS != "0" {
		t.Errorf("want eNPS 0 for Área A, got %s", datos.KPIs.ENPS)
	}
	if len(datos.Heatmap.Filas) != 1 || datos.Heatmap.Filas[0] != "A" {
		t.Errorf("want the heatmap reduced to Área A, got %v", datos.Heatmap.Filas)
	}
	// las opciones siempre salen del dataset sin filtrar
	if len(datos.Opciones.Areas) != 3 {
		t.Errorf("want the options built over the unfiltered dataset, got %v", datos.Opciones.Areas)
	}
}

func TestDatosFiltroSinFilas(t *testing.T) {
	h := New(archivoDePrueba(t))
	c, rec := contexto(t, http.MethodGet, "/api/dashboard?area=Marketing", nil, "")
	if err := h.Datos(c); err != nil {
		t.Fatalf("want error nil from the handler, got %q", err)
	}
	var datos respuestaDatos
	if err := json.Unmarshal(rec.Body.Bytes(), &datos); err != nil {
		t.Fatalf("want error nil when decoding the payload, got %q", err)
	}
	if datos.KPIs.Respuestas != 0 {
		t.Errorf("want 0 respuestas, got %d", datos.KPIs.Respuestas)
	}
	if datos.KPIs.PromedioGeneral != "0.00" {
		t.Errorf("want the 0.00 placeholder, got %s", datos.KPIs.PromedioGeneral)
	}
	if !datos.Heatmap.SinDatos || !datos.Barras.SinDatos {
		t.Error("want placeholders instead of empty charts")
	}
}

func TestDatosSinDataset(t *testing.T) {
	h := New("no-existe.xlsx")
	c, rec := contexto(t, http.MethodGet, "/api/dashboard", nil, "")
	if err := h.Datos(c); err != nil {
		t.Fatalf("want error nil from the handler, got %q", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("want status 500 when the dataset cannot be read, got %d", rec.Code)
	}
	var cuerpo map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &cuerpo); err != nil {
		t.Fatalf("want error nil when decoding the payload, got %q", err)
	}
	if cuerpo["error"] != dataset.MensajeErrorCarga {
		t.Errorf("want the static user-facing message, got %q", cuerpo["error"])
	}
}

func TestSubir(t *testing.T) {
	// sin archivo por defecto: el subido debe bastar por sí solo
	h := New("no-existe.xlsx")
	cuerpo := new(bytes.Buffer)
	escritor := multipart.NewWriter(cuerpo)
	parte, err := escritor.CreateFormFile("dataset", "Dataset_DCS_ReidCo.xlsx")
	if err != nil {
		t.Fatalf("want error nil when creating the form file, got %q", err)
	}
	if _, err := parte.Write(libroDePrueba(t)); err != nil {
		t.Fatalf("want error nil when writing the form file, got %q", err)
	}
	if err := escritor.Close(); err != nil {
		t.Fatalf("want error nil when closing the multipart writer, got %q", err)
	}
	c, rec := contexto(t, http.MethodPost, "/api/dataset", cuerpo, escritor.FormDataContentType())
	if err := h.Subir(c); err != nil {
		t.Fatalf("want error nil from the upload handler, got %q", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("want status 200 on upload, got %d: %s", rec.Code, rec.Body.String())
	}
	// el archivo subido tiene precedencia sobre la ruta por defecto
	c, rec = contexto(t, http.MethodGet, "/api/dashboard", nil, "")
	if err := h.Datos(c); err != nil {
		t.Fatalf("want error nil from the handler, got %q", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("want status 200 serving the uploaded dataset, got %d", rec.Code)
	}
	var datos respuestaDatos
	if err := json.Unmarshal(rec.Body.Bytes(), &datos); err != nil {
		t.Fatalf("want error nil when decoding the payload, got %q", err)
	}
	if datos.KPIs.Respuestas != 3 {
		t.Errorf("want the uploaded rows served, got %d", datos.KPIs.Respuestas)
	}
}

func TestSubirSinCampo(t *testing.T) {
	h := New("no-existe.xlsx")
	cuerpo := new(bytes.Buffer)
	escritor := multipart.NewWriter(cuerpo)
	if err := escritor.Close(); err != nil {
		t.Fatalf("want error nil when closing the multipart writer, got %q", err)
	}
	c, rec := contexto(t, http.MethodPost, "/api/dataset", cuerpo, escritor.FormDataContentType())
	if err := h.Subir(c); err != nil {
		t.Fatalf("want error nil from the upload handler, got %q", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("want status 400 without the dataset field, got %d", rec.Code)
	}
}

func TestEstado(t *testing.T) {
	h := New(archivoDePrueba(t))
	c, rec := contexto(t, http.MethodGet, "/api/estado", nil, "")
	if err := h.Estado(c); err != nil {
		t.Fatalf("want error nil from the status handler, got %q", err)
	}
	var cuerpo map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &cuerpo); err != nil {
		t.Fatalf("want error nil when decoding the payload, got %q", err)
	}
	if cuerpo["statusText"] != status.Text(status.SinDatos) {
		t.Errorf("want initial status %q, got %q", status.Text(status.SinDatos), cuerpo["statusText"])
	}
	// tras servir datos el estado pasa a listo
	c, _ = contexto(t, http.MethodGet, "/api/dashboard", nil, "")
	if err := h.Datos(c); err != nil {
		t.Fatalf("want error nil from the handler, got %q", err)
	}
	c, rec = contexto(t, http.MethodGet, "/api/estado", nil, "")
	if err := h.Estado(c); err != nil {
		t.Fatalf("want error nil from the status handler, got %q", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &cuerpo); err != nil {
		t.Fatalf("want error nil when decoding the payload, got %q", err)
	}
	if cuerpo["statusText"] != status.Text(status.Listo) {
		t.Errorf("want status %q after serving data, got %q", status.Text(status.Listo), cuerpo["statusText"])
	}
}
