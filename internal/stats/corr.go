package stats

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix across the numeric
// fields, with exact 1.0 on the diagonal.
type CorrMatrix struct {
	Fields []dataset.Field
	Values [][]float64
}

// Correlations computes the full correlation matrix across all numeric fields.
func Correlations(ds *dataset.Dataset) CorrMatrix {
	fields := dataset.NumericFields
	n := ds.Len()
	c := len(fields)

	data := make([]float64, n*c)
	for i, r := range ds.Records() {
		for j, f := range fields {
			data[i*c+j] = r.Numeric(f)
		}
	}
	x := mat.NewDense(n, c, data)
	sym := mat.NewSymDense(c, nil)
	stat.CorrelationMatrix(sym, x, nil)

	out := CorrMatrix{Fields: fields, Values: make([][]float64, c)}
	for i := 0; i < c; i++ {
		out.Values[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if i == j {
				out.Values[i][j] = 1
				continue
			}
			out.Values[i][j] = sym.At(i, j)
		}
	}
	return out
}
