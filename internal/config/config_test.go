package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.DataPath != "aerofit_treadmill_data.csv" {
		t.Fatalf("DataPath = %q", c.DataPath)
	}
	if c.OutputDir != "." || c.Precision != 2 || c.ListenAddr != ":8080" || c.LogJSON {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.ProductPrices["KP781"] != 2500 {
		t.Fatalf("expected default price table, got %v", c.ProductPrices)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		DataPath:      "custom.csv",
		OutputDir:     "reports",
		Precision:     4,
		ListenAddr:    ":9090",
		LogJSON:       true,
		ProductPrices: map[string]float64{"KP281": 1400},
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.DataPath != in.DataPath || out.OutputDir != in.OutputDir {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.Precision != 4 || out.ListenAddr != ":9090" || !out.LogJSON {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.ProductPrices["KP281"] != 1400 {
		t.Fatalf("price table lost in round trip: %v", out.ProductPrices)
	}
}

func TestLoadNegativePrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("precision: -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative precision")
	}
}

func TestSaveDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := Save(&Global{Precision: 2}, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".aerofit", "config.yaml")); err != nil {
		t.Fatalf("config not written to default location: %v", err)
	}
}
