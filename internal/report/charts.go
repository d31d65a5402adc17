package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
	"github.com/pavan-musthala/aerofit-analytics/internal/utils"
)

var barPalette = []drawing.Color{
	drawing.ColorFromHex("4f46e5"),
	drawing.ColorFromHex("10b981"),
	drawing.ColorFromHex("f59e0b"),
	drawing.ColorFromHex("ef4444"),
	drawing.ColorFromHex("8b5cf6"),
	drawing.ColorFromHex("06b6d4"),
}

func barStyle(i int) chart.Style {
	c := barPalette[i%len(barPalette)]
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 0}
}

// WriteGenderStackedBarPNG renders the gender distribution per product as a
// stacked bar chart and writes it atomically to path.
func WriteGenderStackedBarPNG(a *stats.Analysis, path string) error {
	d := a.Distribution(stats.DistGender)
	bars := make([]chart.StackedBar, 0, len(d.Products))
	for _, p := range d.Products {
		values := make([]chart.Value, len(d.Categories))
		for i, cat := range d.Categories {
			values[i] = chart.Value{
				Label: fmt.Sprintf("%s %.1f%%", cat, d.Percent[p][i]),
				Value: d.Percent[p][i],
				Style: barStyle(i),
			}
		}
		bars = append(bars, chart.StackedBar{Name: p, Width: 80, Values: values})
	}

	sbc := chart.StackedBarChart{
		Title:      "Gender Distribution by Product (%)",
		Width:      900,
		Height:     560,
		BarSpacing: 60,
		Bars:       bars,
	}
	return renderPNG(&sbc, path)
}

// WritePricePointsPNG renders the fixed product price table as a bar chart.
func WritePricePointsPNG(prices map[string]float64, path string) error {
	products := make([]string, 0, len(prices))
	for p := range prices {
		products = append(products, p)
	}
	sort.Strings(products)

	bars := make([]chart.Value, len(products))
	for i, p := range products {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%s ($%.0f)", p, prices[p]),
			Value: prices[p],
			Style: barStyle(i),
		}
	}
	bc := chart.BarChart{
		Title:    "Product Price Points ($)",
		Width:    700,
		Height:   480,
		BarWidth: 80,
		Bars:     bars,
	}
	return renderPNG(&bc, path)
}

// WriteMarketSharePNG renders the per-product market share as a bar chart.
func WriteMarketSharePNG(a *stats.Analysis, path string) error {
	products := a.Dataset.Products()
	bars := make([]chart.Value, len(products))
	for i, p := range products {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", p, a.MarketShare[p]),
			Value: a.MarketShare[p],
			Style: barStyle(i),
		}
	}
	bc := chart.BarChart{
		Title:    "Market Share by Product (%)",
		Width:    700,
		Height:   480,
		BarWidth: 80,
		Bars:     bars,
	}
	return renderPNG(&bc, path)
}

type pngRenderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPNG(c pngRenderable, path string) error {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
