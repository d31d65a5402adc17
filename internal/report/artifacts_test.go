package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestWriteArtifacts(t *testing.T) {
	a := fixtureAnalysis(t)
	prices := map[string]float64{"KP281": 1500, "KP481": 1750, "KP781": 2500}
	dir := filepath.Join(t.TempDir(), "out")

	written, err := WriteArtifacts(a, prices, dir)
	if err != nil {
		t.Fatalf("WriteArtifacts failed: %v", err)
	}
	want := []string{FileBoxplots, FileCorrelation, FileGenderBar, FilePricePoints, FileMarketShare}
	if len(written) != len(want) {
		t.Fatalf("expected %d artifacts, got %d: %v", len(want), len(written), written)
	}
	for i, name := range want {
		if filepath.Base(written[i]) != name {
			t.Fatalf("artifact %d = %s, want %s", i, written[i], name)
		}
		data, err := os.ReadFile(written[i])
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", name)
		}
		switch filepath.Ext(name) {
		case ".png":
			if !bytes.HasPrefix(data, pngMagic) {
				t.Fatalf("%s is not a PNG", name)
			}
		case ".html":
			if !strings.Contains(string(data), "echarts") {
				t.Fatalf("%s does not embed a chart", name)
			}
		}
	}
}

func TestChartBuilders(t *testing.T) {
	a := fixtureAnalysis(t)
	builders := map[string]Renderable{
		"pie":     ProductPie(a),
		"boxplot": FieldBoxPlot(a, dataset.FieldIncome),
		"bar":     DistributionBar(a, stats.DistGender, "Gender Distribution"),
		"heatmap": CorrelationHeatmap(a),
		"scatter": ScatterByProduct(a, dataset.FieldAge, dataset.FieldIncome, "Age vs Income"),
		"bubble":  UsageFitnessBubble(a),
		"price":   PriceBar(map[string]float64{"KP281": 1500, "KP481": 1750, "KP781": 2500}),
	}
	for name, r := range builders {
		var buf bytes.Buffer
		if err := r.Render(&buf); err != nil {
			t.Fatalf("%s: render failed: %v", name, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s: empty render output", name)
		}
	}
}
