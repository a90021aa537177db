package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// HojaRaw is the sheet holding the survey answers.
	HojaRaw = "Raw"

	// ArchivoPorDefecto is the dataset path used when no file was uploaded.
	ArchivoPorDefecto = "Dataset_DCS_ReidCo.xlsx"

	// MensajeErrorCarga is shown to the user when the dataset cannot be read.
	MensajeErrorCarga = "No se pudo leer el dataset. Sube el archivo Dataset_DCS_ReidCo.xlsx."
)

// columnas that must be present on the Raw sheet after normalization.
var columnasRequeridas = []string{ColArea, ColNivel, ColAgilidad, ColEmpoderamiento, ColMentalidadDatos, ColCorajeInnovar, ColENPS}

// ErrorCarga is the single error kind raised when the source cannot be
// opened, parsed or lacks the Raw sheet. It is caught once, at the shell.
type ErrorCarga struct {
	Causa error
}

func (e *ErrorCarga) Error() string {
	return fmt.Sprintf("no se pudo leer el dataset, error %v", e.Causa)
}

func (e *ErrorCarga) Unwrap() error { return e.Causa }

func errorCarga(formato string, args ...interface{}) error {
	return &ErrorCarga{Causa: fmt.Errorf(formato, args...)}
}

// NormalizarEncabezado trims surrounding whitespace and removes internal
// spaces from a header. Área and Nivel keep their exact names.
func NormalizarEncabezado(encabezado string) string {
	limpio := strings.TrimSpace(encabezado)
	if limpio == ColArea || limpio == ColNivel {
		return limpio
	}
	return strings.ReplaceAll(limpio, " ", "")
}

// CargarArchivo loads the dataset from a local path, choosing the parser
// by extension (.csv or .xlsx), and derives PromedioGeneral.
func CargarArchivo(ruta string) (Dataset, error) {
	f, err := os.Open(ruta)
	if err != nil {
		return nil, errorCarga("falla al abrir el archivo %s, error %q", ruta, err)
	}
	defer f.Close()
	return Cargar(f, ruta)
}

// Cargar loads the dataset from a reader. The name is only used to decide
// between the CSV and Excel parsers; uploads keep their original name.
func Cargar(r io.Reader, nombre string) (Dataset, error) {
	if strings.EqualFold(filepath.Ext(nombre), ".csv") {
		return CargarCSV(r)
	}
	return CargarXLSX(r)
}

// CargarXLSX reads the Raw sheet of an Excel workbook into a Dataset,
// validates the required columns and derives PromedioGeneral.
func CargarXLSX(r io.Reader) (Dataset, error) {
	libro, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errorCarga("falla al abrir el libro Excel, error %q", err)
	}
	defer libro.Close()
	filas, err := libro.GetRows(HojaRaw)
	if err != nil {
		return nil, errorCarga("falla al leer la hoja %s, error %q", HojaRaw, err)
	}
	return desdeFilas(filas)
}

// desdeFilas turns raw rows (header included) into a derived Dataset.
func desdeFilas(filas [][]string) (Dataset, error) {
	if len(filas) == 0 {
		return nil, errorCarga("la hoja %s está vacía", HojaRaw)
	}
	indices := make(map[string]int)
	for i, encabezado := range filas[0] {
		indices[NormalizarEncabezado(encabezado)] = i
	}
	if err := validarColumnas(indices); err != nil {
		return nil, err
	}
	ds := make(Dataset, 0, len(filas)-1)
	for _, fila := range filas[1:] {
		r := Respuesta{
			Area:            celda(fila, indices[ColArea]),
			Nivel:           celda(fila, indices[ColNivel]),
			Agilidad:        numero(celda(fila, indices[ColAgilidad])),
			Empoderamiento:  numero(celda(fila, indices[ColEmpoderamiento])),
			MentalidadDatos: numero(celda(fila, indices[ColMentalidadDatos])),
			CorajeInnovar:   numero(celda(fila, indices[ColCorajeInnovar])),
			ENPS:            numero(celda(fila, indices[ColENPS])),
		}
		if filaVacia(r) {
			continue
		}
		ds = append(ds, r)
	}
	DerivarPromedioGeneral(ds)
	return ds, nil
}

// validarColumnas fails fast when a required column is absent, instead of
// silently producing empty columns.
func validarColumnas(indices map[string]int) error {
	for _, col := range columnasRequeridas {
		if _, ok := indices[col]; !ok {
			return errorCarga("columna requerida %s ausente en la hoja %s", col, HojaRaw)
		}
	}
	return nil
}

// celda tolerates rows shorter than the header, which excelize produces
// when trailing cells are empty.
func celda(fila []string, indice int) string {
	if indice < 0 || indice >= len(fila) {
		return ""
	}
	return strings.TrimSpace(fila[indice])
}

// numero parses an optional numeric cell. Empty or non-numeric cells count
// as missing, not as zero.
func numero(celda string) *float64 {
	if celda == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(celda), ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}

// excel writers leave blank rows behind the data, skip them
func filaVacia(r Respuesta) bool {
	return r.Area == "" && r.Nivel == "" && r.Agilidad == nil && r.Empoderamiento == nil &&
		r.MentalidadDatos == nil && r.CorajeInnovar == nil && r.ENPS == nil
}
