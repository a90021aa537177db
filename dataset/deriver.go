package dataset

// DerivarPromedioGeneral adds the row-wise mean of the four dimensions to
// every row. It runs once, right after loading the unfiltered dataset;
// filtering never recomputes it.
func DerivarPromedioGeneral(ds Dataset) {
	for i := range ds {
		ds[i].PromedioGeneral = PromedioFila(ds[i])
	}
}

// PromedioFila computes the mean of the four dimension scores of a row,
// excluding missing values. A row with every dimension missing yields
// nil, not zero.
func PromedioFila(r Respuesta) *float64 {
	var suma float64
	var n int
	for _, dim := range Dimensiones {
		if v := r.Dimension(dim); v != nil {
			suma += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	promedio := suma / float64(n)
	return &promedio
}
