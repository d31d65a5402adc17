package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	cfgpkg "github.com/pavan-musthala/aerofit-analytics/internal/config"
)

var initOnce sync.Once

var fixtureCSV = strings.Join([]string{
	"Product,Age,Gender,Education,MaritalStatus,Usage,Fitness,Income,Miles",
	"KP281,18,Male,14,Single,3,4,29562,112",
	"KP281,19,Female,15,Single,2,3,30699,66",
	"KP281,20,Male,14,Partnered,4,3,32973,85",
	"KP481,24,Male,16,Partnered,3,3,48658,106",
	"KP481,25,Female,14,Single,3,3,45480,85",
	"KP781,29,Male,18,Partnered,5,5,90886,200",
}, "\n") + "\n"

// runCmd executes the root command with args, resetting sticky flag state
// between invocations.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	if err := runCmdErr(t, args...); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func runCmdErr(t *testing.T, args ...string) error {
	t.Helper()
	initOnce.Do(func() { cobra.OnInitialize(loadConfig) })
	if f := rootCmd.PersistentFlags(); f != nil {
		for _, name := range []string{"config", "debug"} {
			if fl := f.Lookup(name); fl != nil {
				_ = fl.Value.Set(fl.DefValue)
				fl.Changed = false
			}
		}
	}
	if f := reportCmd.Flags(); f != nil {
		for _, name := range []string{"data", "output-dir", "output", "precision", "no-charts"} {
			if fl := f.Lookup(name); fl != nil {
				_ = fl.Value.Set(fl.DefValue)
				fl.Changed = false
			}
		}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReportCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	data := writeFixture(t)
	outDir := t.TempDir()
	outFile := filepath.Join(outDir, "report.md")

	runCmd(t, "report", data, "-o", outFile, "-d", outDir)

	b, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	text := string(b)
	for _, want := range []string{"[DATASET SUMMARY]", "Records: 6", "[PRODUCT PROFILES]"} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q", want)
		}
	}
	for _, name := range []string{"product_distributions.html", "gender_distribution.png", "market_share.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("chart artifact %s not written: %v", name, err)
		}
	}
}

func TestReportCommandNoCharts(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	data := writeFixture(t)
	outDir := t.TempDir()

	runCmd(t, "report", data, "-o", filepath.Join(outDir, "report.md"), "-d", outDir, "--no-charts")

	if _, err := os.Stat(filepath.Join(outDir, "market_share.png")); !os.IsNotExist(err) {
		t.Fatalf("expected no chart artifacts, stat err = %v", err)
	}
}

func TestReportCommandMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := runCmdErr(t, "report", filepath.Join(t.TempDir(), "nope.csv"), "--no-charts"); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestConfigSet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")

	runCmd(t, "--config", path, "config", "set", "precision", "3")

	c, err := cfgpkg.Load(path)
	if err != nil {
		t.Fatalf("load saved config: %v", err)
	}
	if c.Precision != 3 {
		t.Fatalf("precision = %d, want 3", c.Precision)
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := runCmdErr(t, "--config", path, "config", "set", "bogus", "1"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
