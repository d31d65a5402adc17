package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Field names the numeric columns of a purchase record.
type Field string

const (
	FieldAge       Field = "Age"
	FieldEducation Field = "Education"
	FieldUsage     Field = "Usage"
	FieldFitness   Field = "Fitness"
	FieldIncome    Field = "Income"
	FieldMiles     Field = "Miles"
)

// NumericFields is the canonical ordering used for correlation matrices.
var NumericFields = []Field{FieldAge, FieldEducation, FieldUsage, FieldFitness, FieldIncome, FieldMiles}

// Record is a single purchase row. Records are immutable once loaded.
type Record struct {
	Product       string
	Age           int
	Gender        string
	Education     int
	MaritalStatus string
	Usage         int
	Fitness       int
	Income        float64
	Miles         float64
}

// Numeric returns the value of a numeric field.
func (r Record) Numeric(f Field) float64 {
	switch f {
	case FieldAge:
		return float64(r.Age)
	case FieldEducation:
		return float64(r.Education)
	case FieldUsage:
		return float64(r.Usage)
	case FieldFitness:
		return float64(r.Fitness)
	case FieldIncome:
		return r.Income
	case FieldMiles:
		return r.Miles
	}
	return 0
}

// Dataset is the full record set plus the source file name.
// It is read-only after Load/Parse returns.
type Dataset struct {
	Name     string
	records  []Record
	products []string
}

// requiredColumns is the fixed CSV header contract, any column order.
var requiredColumns = []string{
	"Product", "Age", "Gender", "Education", "MaritalStatus", "Usage", "Fitness", "Income", "Miles",
}

// Load opens and parses the CSV file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// Parse reads purchase records from r. All validation happens here: a missing
// column, an unparseable numeric value, or an out-of-range fitness rating is a
// load-time error naming the row and column.
func Parse(r io.Reader, name string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty file", name)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required column(s): %s", name, strings.Join(missing, ", "))
	}

	ds := &Dataset{Name: name}
	seen := map[string]bool{}
	row := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		cell := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }
		intCell := func(col string) (int, error) {
			v, err := strconv.Atoi(cell(col))
			if err != nil {
				return 0, fmt.Errorf("row %d: column %s: not an integer: %q", row, col, cell(col))
			}
			return v, nil
		}
		floatCell := func(col string) (float64, error) {
			v, err := strconv.ParseFloat(cell(col), 64)
			if err != nil {
				return 0, fmt.Errorf("row %d: column %s: not numeric: %q", row, col, cell(col))
			}
			return v, nil
		}

		pr := Record{
			Product:       cell("Product"),
			Gender:        cell("Gender"),
			MaritalStatus: cell("MaritalStatus"),
		}
		if pr.Product == "" {
			return nil, fmt.Errorf("row %d: column Product: empty value", row)
		}
		if pr.Age, err = intCell("Age"); err != nil {
			return nil, err
		}
		if pr.Education, err = intCell("Education"); err != nil {
			return nil, err
		}
		if pr.Usage, err = intCell("Usage"); err != nil {
			return nil, err
		}
		if pr.Fitness, err = intCell("Fitness"); err != nil {
			return nil, err
		}
		if pr.Fitness < 1 || pr.Fitness > 5 {
			return nil, fmt.Errorf("row %d: column Fitness: rating %d outside 1-5", row, pr.Fitness)
		}
		if pr.Income, err = floatCell("Income"); err != nil {
			return nil, err
		}
		if pr.Miles, err = floatCell("Miles"); err != nil {
			return nil, err
		}

		ds.records = append(ds.records, pr)
		if !seen[pr.Product] {
			seen[pr.Product] = true
			ds.products = append(ds.products, pr.Product)
		}
	}
	if len(ds.records) == 0 {
		return nil, fmt.Errorf("%s: no records", name)
	}
	sort.Strings(ds.products)
	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns the record set. Callers must not mutate it.
func (d *Dataset) Records() []Record { return d.records }

// Products returns the distinct product SKUs in sorted order.
func (d *Dataset) Products() []string { return d.products }

// ByProduct returns the records for one product.
func (d *Dataset) ByProduct(product string) []Record {
	var out []Record
	for _, r := range d.records {
		if r.Product == product {
			out = append(out, r)
		}
	}
	return out
}

// Values returns a numeric field's values for one product.
func (d *Dataset) Values(f Field, product string) []float64 {
	var out []float64
	for _, r := range d.records {
		if r.Product == product {
			out = append(out, r.Numeric(f))
		}
	}
	return out
}

// AllValues returns a numeric field's values across all records.
func (d *Dataset) AllValues(f Field) []float64 {
	out := make([]float64, len(d.records))
	for i, r := range d.records {
		out[i] = r.Numeric(f)
	}
	return out
}
