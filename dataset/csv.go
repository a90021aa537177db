package dataset

import (
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/charmap"
)

// registroCSV representa la fila cruda del CSV exportado del Excel.
// Los puntajes quedan como texto para distinguir celdas vacías de ceros.
type registroCSV struct {
	Area            string `csv:"Área"`
	Nivel           string `csv:"Nivel"`
	Agilidad        string `csv:"Agilidad"`
	Empoderamiento  string `csv:"Empoderamiento"`
	MentalidadDatos string `csv:"MentalidadDatos"`
	CorajeInnovar   string `csv:"CorajeInnovar"`
	ENPS            string `csv:"eNPS"`
}

// lectorNormalizado wraps a csv.Reader and normalizes the header row so
// gocsv can match columns written with stray spaces.
type lectorNormalizado struct {
	lector     *csv.Reader
	encabezado []string
}

func (l *lectorNormalizado) Read() ([]string, error) {
	fila, err := l.lector.Read()
	if err != nil {
		return nil, err
	}
	if l.encabezado == nil {
		for i, c := range fila {
			fila[i] = NormalizarEncabezado(c)
		}
		l.encabezado = fila
	}
	return fila, nil
}

func (l *lectorNormalizado) ReadAll() ([][]string, error) {
	var filas [][]string
	for {
		fila, err := l.Read()
		if err == io.EOF {
			return filas, nil
		}
		if err != nil {
			return nil, err
		}
		filas = append(filas, fila)
	}
}

// CargarCSV reads the dataset from a CSV export of the Raw sheet. Spanish
// Excel exports use ';' as separator and ISO 8859-1 encoding, so the file
// is decoded as latin 1 before parsing.
func CargarCSV(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.Comma = ';'
	cr.LazyQuotes = true
	lector := &lectorNormalizado{lector: cr}
	var registros []*registroCSV
	if err := gocsv.UnmarshalCSV(lector, &registros); err != nil {
		return nil, errorCarga("falla al inflar las filas del archivo csv, error %q", err)
	}
	if err := validarEncabezadoCSV(lector.encabezado); err != nil {
		return nil, err
	}
	ds := make(Dataset, 0, len(registros))
	for _, reg := range registros {
		r := Respuesta{
			Area:            reg.Area,
			Nivel:           reg.Nivel,
			Agilidad:        numero(reg.Agilidad),
			Empoderamiento:  numero(reg.Empoderamiento),
			MentalidadDatos: numero(reg.MentalidadDatos),
			CorajeInnovar:   numero(reg.CorajeInnovar),
			ENPS:            numero(reg.ENPS),
		}
		if filaVacia(r) {
			continue
		}
		ds = append(ds, r)
	}
	DerivarPromedioGeneral(ds)
	return ds, nil
}

// gocsv leaves absent columns silently empty, so the header is checked
// against the required columns like the Excel path does.
func validarEncabezadoCSV(encabezado []string) error {
	indices := make(map[string]int)
	for i, c := range encabezado {
		indices[c] = i
	}
	return validarColumnas(indices)
}
