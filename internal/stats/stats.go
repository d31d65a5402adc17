package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
)

// Summary holds mean/median/std for one product group, rounded to the
// configured precision. Std of an empty or single-record group is NaN.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Std    float64
}

// GroupStats maps each product to its Summary for one numeric field.
type GroupStats struct {
	Field     dataset.Field
	Products  []string
	ByProduct map[string]Summary
}

// Distribution is a row-normalized contingency table: for each product,
// the percentage breakdown across a categorical field's values.
// Percent[product][i] corresponds to Categories[i]; each row sums to 100.
type Distribution struct {
	Field      string
	Products   []string
	Categories []string
	Percent    map[string][]float64
}

// JointRow is one (usage, product) row of the usage-by-fitness breakdown.
type JointRow struct {
	Usage   int
	Product string
	Percent []float64
}

// UsageFitness is the joint usage/fitness distribution: for each
// (usage frequency, product) pair, the percentage split across fitness levels.
type UsageFitness struct {
	FitnessLevels []int
	Rows          []JointRow
}

// Analysis is the immutable analysis context: every summary the report and
// dashboard sections need, computed once from a loaded dataset. Concurrent
// readers need no coordination since nothing mutates after New returns.
type Analysis struct {
	ID        string
	Dataset   *dataset.Dataset
	Precision int

	Counts         map[string]int
	MarketShare    map[string]float64
	TotalCustomers int
	AvgAge         float64
	AvgIncome      float64

	Corr         CorrMatrix
	GenderChi    ChiSquare
	MaritalChi   ChiSquare
	UsageFitness UsageFitness

	groups map[dataset.Field]GroupStats
	dists  map[string]Distribution
}

// Categorical fields with a distribution conditioned on product.
const (
	DistGender        = "Gender"
	DistMaritalStatus = "MaritalStatus"
	DistEducation     = "Education"
	DistFitness       = "Fitness"
)

// New builds the analysis context for a dataset. All summaries are computed
// here; the result is read-only.
func New(ds *dataset.Dataset, precision int) *Analysis {
	a := &Analysis{
		ID:             uuid.NewString(),
		Dataset:        ds,
		Precision:      precision,
		Counts:         make(map[string]int),
		MarketShare:    make(map[string]float64),
		TotalCustomers: ds.Len(),
		groups:         make(map[dataset.Field]GroupStats),
		dists:          make(map[string]Distribution),
	}

	for _, p := range ds.Products() {
		a.Counts[p] = len(ds.ByProduct(p))
	}
	total := float64(ds.Len())
	for p, n := range a.Counts {
		a.MarketShare[p] = Round(float64(n)/total*100, precision)
	}
	a.AvgAge = stat.Mean(ds.AllValues(dataset.FieldAge), nil)
	a.AvgIncome = stat.Mean(ds.AllValues(dataset.FieldIncome), nil)

	for _, f := range dataset.NumericFields {
		a.groups[f] = groupStats(ds, f, precision)
	}
	for _, name := range []string{DistGender, DistMaritalStatus, DistEducation, DistFitness} {
		a.dists[name] = crosstabPercent(ds, name)
	}

	a.Corr = Correlations(ds)
	a.GenderChi = ChiSquareTest(CrosstabCounts(ds, DistGender))
	a.MaritalChi = ChiSquareTest(CrosstabCounts(ds, DistMaritalStatus))
	a.UsageFitness = usageFitness(ds)
	return a
}

// GroupStats returns the per-product summary for a numeric field.
func (a *Analysis) GroupStats(f dataset.Field) GroupStats { return a.groups[f] }

// Distribution returns the product-conditioned percentage breakdown for a
// categorical field (Gender, MaritalStatus, Education, Fitness).
func (a *Analysis) Distribution(field string) Distribution { return a.dists[field] }

func groupStats(ds *dataset.Dataset, f dataset.Field, precision int) GroupStats {
	gs := GroupStats{Field: f, Products: ds.Products(), ByProduct: make(map[string]Summary)}
	for _, p := range ds.Products() {
		vals := ds.Values(f, p)
		gs.ByProduct[p] = Summary{
			Count:  len(vals),
			Mean:   Round(stat.Mean(vals, nil), precision),
			Median: Round(Median(vals), precision),
			Std:    Round(stat.StdDev(vals, nil), precision),
		}
	}
	return gs
}

func categoryOf(r dataset.Record, field string) string {
	switch field {
	case DistGender:
		return r.Gender
	case DistMaritalStatus:
		return r.MaritalStatus
	case DistEducation:
		return strconv.Itoa(r.Education)
	case DistFitness:
		return strconv.Itoa(r.Fitness)
	}
	return ""
}

// sortCategories orders numerically when every category parses as a number,
// alphabetically otherwise.
func sortCategories(cats []string) {
	numeric := true
	for _, c := range cats {
		if _, err := strconv.Atoi(c); err != nil {
			numeric = false
			break
		}
	}
	sort.Slice(cats, func(i, j int) bool {
		if numeric {
			a, _ := strconv.Atoi(cats[i])
			b, _ := strconv.Atoi(cats[j])
			return a < b
		}
		return cats[i] < cats[j]
	})
}

// Contingency is a product-by-category count table.
type Contingency struct {
	RowLabels []string
	ColLabels []string
	Counts    [][]float64
}

// CrosstabCounts builds the raw product-by-category contingency table.
func CrosstabCounts(ds *dataset.Dataset, field string) Contingency {
	catSet := map[string]bool{}
	for _, r := range ds.Records() {
		catSet[categoryOf(r, field)] = true
	}
	cats := make([]string, 0, len(catSet))
	for c := range catSet {
		cats = append(cats, c)
	}
	sortCategories(cats)

	colIdx := make(map[string]int, len(cats))
	for i, c := range cats {
		colIdx[c] = i
	}
	products := ds.Products()
	rowIdx := make(map[string]int, len(products))
	for i, p := range products {
		rowIdx[p] = i
	}

	counts := make([][]float64, len(products))
	for i := range counts {
		counts[i] = make([]float64, len(cats))
	}
	for _, r := range ds.Records() {
		counts[rowIdx[r.Product]][colIdx[categoryOf(r, field)]]++
	}
	return Contingency{RowLabels: products, ColLabels: cats, Counts: counts}
}

func crosstabPercent(ds *dataset.Dataset, field string) Distribution {
	t := CrosstabCounts(ds, field)
	d := Distribution{
		Field:      field,
		Products:   t.RowLabels,
		Categories: t.ColLabels,
		Percent:    make(map[string][]float64, len(t.RowLabels)),
	}
	for i, p := range t.RowLabels {
		var rowTotal float64
		for _, n := range t.Counts[i] {
			rowTotal += n
		}
		row := make([]float64, len(t.ColLabels))
		for j, n := range t.Counts[i] {
			if rowTotal > 0 {
				row[j] = n / rowTotal * 100
			}
		}
		d.Percent[p] = row
	}
	return d
}

func usageFitness(ds *dataset.Dataset) UsageFitness {
	levelSet := map[int]bool{}
	type key struct {
		usage   int
		product string
	}
	counts := map[key]map[int]float64{}
	for _, r := range ds.Records() {
		levelSet[r.Fitness] = true
		k := key{r.Usage, r.Product}
		if counts[k] == nil {
			counts[k] = map[int]float64{}
		}
		counts[k][r.Fitness]++
	}

	levels := make([]int, 0, len(levelSet))
	for l := range levelSet {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].usage != keys[j].usage {
			return keys[i].usage < keys[j].usage
		}
		return keys[i].product < keys[j].product
	})

	uf := UsageFitness{FitnessLevels: levels}
	for _, k := range keys {
		var total float64
		for _, n := range counts[k] {
			total += n
		}
		row := JointRow{Usage: k.usage, Product: k.product, Percent: make([]float64, len(levels))}
		for i, l := range levels {
			row.Percent[i] = counts[k][l] / total * 100
		}
		uf.Rows = append(uf.Rows, row)
	}
	return uf
}

// Median returns the linearly interpolated median, NaN for an empty slice.
func Median(vals []float64) float64 {
	return QuantileOf(vals, 0.5)
}

// QuantileOf sorts a copy of vals and returns the q-th quantile.
func QuantileOf(vals []float64, q float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	return quantile(cp, q)
}

// FiveNum returns {min, q1, median, q3, max} for boxplot rendering.
func FiveNum(vals []float64) [5]float64 {
	if len(vals) == 0 {
		nan := math.NaN()
		return [5]float64{nan, nan, nan, nan, nan}
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	return [5]float64{cp[0], quantile(cp, 0.25), quantile(cp, 0.5), quantile(cp, 0.75), cp[len(cp)-1]}
}

func quantile(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Round rounds to the given number of decimal places. NaN stays NaN so
// undefined statistics are never coerced to zero.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
