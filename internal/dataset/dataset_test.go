package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var csvRows = []string{
	"Product,Age,Gender,Education,MaritalStatus,Usage,Fitness,Income,Miles",
	"KP281,18,Male,14,Single,3,4,29562,112",
	"KP281,19,Female,15,Single,2,3,30699,66",
	"KP481,24,Male,16,Partnered,3,3,48658,106",
	"KP481,25,Female,14,Single,3,3,45480,85",
	"KP781,29,Male,18,Partnered,5,5,90886,200",
	"KP781,31,Female,18,Single,4,5,89641,170",
}

func fixture() string {
	return strings.Join(csvRows, "\n") + "\n"
}

func TestParseValid(t *testing.T) {
	ds, err := Parse(strings.NewReader(fixture()), "fixture.csv")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ds.Len() != 6 {
		t.Fatalf("expected 6 records, got %d", ds.Len())
	}
	products := ds.Products()
	want := []string{"KP281", "KP481", "KP781"}
	if len(products) != len(want) {
		t.Fatalf("expected %d products, got %v", len(want), products)
	}
	for i, p := range want {
		if products[i] != p {
			t.Fatalf("products not sorted: got %v", products)
		}
	}
	first := ds.Records()[0]
	if first.Product != "KP281" || first.Age != 18 || first.Gender != "Male" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.Income != 29562 || first.Miles != 112 {
		t.Fatalf("unexpected numeric values: %+v", first)
	}
}

func TestParseColumnOrderIndependent(t *testing.T) {
	rows := []string{
		"Miles,Income,Fitness,Usage,MaritalStatus,Education,Gender,Age,Product",
		"112,29562,4,3,Single,14,Male,18,KP281",
	}
	ds, err := Parse(strings.NewReader(strings.Join(rows, "\n")), "reordered.csv")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	r := ds.Records()[0]
	if r.Product != "KP281" || r.Age != 18 || r.Miles != 112 {
		t.Fatalf("columns misread after reordering: %+v", r)
	}
}

func TestParseMissingColumns(t *testing.T) {
	rows := []string{
		"Product,Age,Gender,Education,MaritalStatus,Usage,Fitness",
		"KP281,18,Male,14,Single,3,4",
	}
	_, err := Parse(strings.NewReader(strings.Join(rows, "\n")), "short.csv")
	if err == nil {
		t.Fatal("expected missing-column error")
	}
	if !strings.Contains(err.Error(), "Income") || !strings.Contains(err.Error(), "Miles") {
		t.Fatalf("error should name every missing column, got: %v", err)
	}
}

func TestParseBadInteger(t *testing.T) {
	bad := fixture() + "KP281,young,Male,14,Single,3,4,29562,112\n"
	_, err := Parse(strings.NewReader(bad), "bad.csv")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "row 8") || !strings.Contains(err.Error(), "column Age") {
		t.Fatalf("error should name row and column, got: %v", err)
	}
}

func TestParseBadFloat(t *testing.T) {
	bad := fixture() + "KP281,22,Male,14,Single,3,4,lots,112\n"
	_, err := Parse(strings.NewReader(bad), "bad.csv")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "column Income") || !strings.Contains(err.Error(), "not numeric") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseFitnessOutOfRange(t *testing.T) {
	bad := fixture() + "KP281,22,Male,14,Single,3,6,29562,112\n"
	_, err := Parse(strings.NewReader(bad), "bad.csv")
	if err == nil {
		t.Fatal("expected range error")
	}
	if !strings.Contains(err.Error(), "outside 1-5") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseEmptyProduct(t *testing.T) {
	bad := fixture() + ",22,Male,14,Single,3,4,29562,112\n"
	_, err := Parse(strings.NewReader(bad), "bad.csv")
	if err == nil || !strings.Contains(err.Error(), "column Product") {
		t.Fatalf("expected empty-product error, got: %v", err)
	}
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""), "empty.csv")
	if err == nil || !strings.Contains(err.Error(), "empty file") {
		t.Fatalf("expected empty-file error, got: %v", err)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	_, err := Parse(strings.NewReader(csvRows[0]+"\n"), "header.csv")
	if err == nil || !strings.Contains(err.Error(), "no records") {
		t.Fatalf("expected no-records error, got: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(fixture()), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Name != "data.csv" {
		t.Fatalf("expected dataset name data.csv, got %q", ds.Name)
	}
	if ds.Len() != 6 {
		t.Fatalf("expected 6 records, got %d", ds.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValuesAndByProduct(t *testing.T) {
	ds, err := Parse(strings.NewReader(fixture()), "fixture.csv")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ages := ds.Values(FieldAge, "KP281")
	if len(ages) != 2 || ages[0] != 18 || ages[1] != 19 {
		t.Fatalf("unexpected KP281 ages: %v", ages)
	}
	if got := len(ds.ByProduct("KP781")); got != 2 {
		t.Fatalf("expected 2 KP781 records, got %d", got)
	}
	all := ds.AllValues(FieldMiles)
	if len(all) != ds.Len() {
		t.Fatalf("AllValues length %d, want %d", len(all), ds.Len())
	}
}

func TestRecordNumeric(t *testing.T) {
	r := Record{Age: 30, Education: 16, Usage: 4, Fitness: 3, Income: 52000, Miles: 95}
	checks := map[Field]float64{
		FieldAge:       30,
		FieldEducation: 16,
		FieldUsage:     4,
		FieldFitness:   3,
		FieldIncome:    52000,
		FieldMiles:     95,
	}
	for f, want := range checks {
		if got := r.Numeric(f); got != want {
			t.Fatalf("Numeric(%s) = %v, want %v", f, got, want)
		}
	}
}
