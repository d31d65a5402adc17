package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquare is the result of a chi-square independence test.
type ChiSquare struct {
	Statistic float64
	PValue    float64
	DF        int
}

// ChiSquareTest runs Pearson's chi-square test of independence on a
// contingency table. The statistic sums (observed-expected)^2/expected over
// cells with nonzero expected count; cells in an all-zero row or column
// contribute nothing. A degenerate table (fewer than two rows or columns, or
// no observations) yields NaN statistic and p-value.
func ChiSquareTest(t Contingency) ChiSquare {
	rows := len(t.Counts)
	cols := 0
	if rows > 0 {
		cols = len(t.Counts[0])
	}
	df := (rows - 1) * (cols - 1)
	res := ChiSquare{Statistic: math.NaN(), PValue: math.NaN(), DF: df}
	if df <= 0 {
		return res
	}

	rowSums := make([]float64, rows)
	colSums := make([]float64, cols)
	var total float64
	for i := range t.Counts {
		for j, n := range t.Counts[i] {
			rowSums[i] += n
			colSums[j] += n
			total += n
		}
	}
	if total == 0 {
		return res
	}

	var statistic float64
	for i := range t.Counts {
		for j, observed := range t.Counts[i] {
			expected := rowSums[i] * colSums[j] / total
			if expected == 0 {
				continue
			}
			d := observed - expected
			statistic += d * d / expected
		}
	}

	res.Statistic = statistic
	res.PValue = distuv.ChiSquared{K: float64(df)}.Survival(statistic)
	return res
}
