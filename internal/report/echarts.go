package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
	"github.com/pavan-musthala/aerofit-analytics/internal/utils"
)

// Renderable is anything go-echarts can write as a standalone HTML document.
type Renderable interface {
	Render(w io.Writer) error
}

// boxplotFields are the distributions rendered as per-product boxplots,
// matching the batch figure layout.
var boxplotFields = []dataset.Field{
	dataset.FieldAge, dataset.FieldIncome, dataset.FieldFitness, dataset.FieldUsage,
}

// ProductPie builds the product count donut.
func ProductPie(a *stats.Analysis) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Product Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	data := make([]opts.PieData, 0, len(a.Counts))
	for _, p := range a.Dataset.Products() {
		data = append(data, opts.PieData{Name: p, Value: a.Counts[p]})
	}
	pie.AddSeries("Products", data).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie
}

// FieldBoxPlot builds a per-product boxplot for one numeric field.
func FieldBoxPlot(a *stats.Analysis, f dataset.Field) *charts.BoxPlot {
	bp := charts.NewBoxPlot()
	bp.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Distribution by Product", f)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	products := a.Dataset.Products()
	data := make([]opts.BoxPlotData, len(products))
	for i, p := range products {
		five := stats.FiveNum(a.Dataset.Values(f, p))
		data[i] = opts.BoxPlotData{Name: p, Value: five[:]}
	}
	bp.SetXAxis(products).AddSeries(string(f), data)
	return bp
}

// DistributionBar builds a stacked percentage bar chart for a categorical
// field conditioned on product.
func DistributionBar(a *stats.Analysis, field, title string) *charts.Bar {
	d := a.Distribution(field)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)
	bar.SetXAxis(d.Products)
	for i, cat := range d.Categories {
		series := make([]opts.BarData, len(d.Products))
		for j, p := range d.Products {
			series[j] = opts.BarData{Value: stats.Round(d.Percent[p][i], a.Precision)}
		}
		bar.AddSeries(cat, series)
	}
	bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	return bar
}

// CorrelationHeatmap builds the numeric-field correlation heatmap.
func CorrelationHeatmap(a *stats.Analysis) *charts.HeatMap {
	cm := a.Corr
	fields := make([]string, len(cm.Fields))
	for i, f := range cm.Fields {
		fields[i] = string(f)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Correlation Matrix of Numeric Variables"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: fields, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: fields, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:        -1,
			Max:        1,
			Calculable: opts.Bool(true),
			InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#ffffbf", "#a50026"}},
		}),
	)
	data := make([]opts.HeatMapData, 0, len(fields)*len(fields))
	for i := range fields {
		for j := range fields {
			v := stats.Round(cm.Values[i][j], 3)
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, v}})
		}
	}
	hm.AddSeries("correlation", data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return hm
}

// ScatterByProduct builds an x-vs-y scatter with one series per product.
func ScatterByProduct(a *stats.Analysis, x, y dataset.Field, title string) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: string(x)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: string(y)}),
	)
	for _, p := range a.Dataset.Products() {
		recs := a.Dataset.ByProduct(p)
		data := make([]opts.ScatterData, len(recs))
		for i, r := range recs {
			data[i] = opts.ScatterData{Value: []interface{}{r.Numeric(x), r.Numeric(y)}, SymbolSize: 8}
		}
		sc.AddSeries(p, data)
	}
	return sc
}

// UsageFitnessBubble builds the usage-vs-fitness joint distribution as a
// bubble chart: point size tracks the percentage of buyers at that cell.
func UsageFitnessBubble(a *stats.Analysis) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Usage vs Fitness Level Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Usage (times/week)"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Fitness level"}),
	)
	byProduct := map[string][]opts.ScatterData{}
	for _, row := range a.UsageFitness.Rows {
		for i, level := range a.UsageFitness.FitnessLevels {
			pct := row.Percent[i]
			if pct == 0 {
				continue
			}
			size := int(pct / 5)
			if size < 6 {
				size = 6
			}
			byProduct[row.Product] = append(byProduct[row.Product], opts.ScatterData{
				Value:      []interface{}{row.Usage, level},
				SymbolSize: size,
			})
		}
	}
	products := make([]string, 0, len(byProduct))
	for p := range byProduct {
		products = append(products, p)
	}
	sort.Strings(products)
	for _, p := range products {
		sc.AddSeries(p, byProduct[p])
	}
	return sc
}

// PriceBar builds the fixed price table as a bar chart.
func PriceBar(prices map[string]float64) *charts.Bar {
	products := make([]string, 0, len(prices))
	for p := range prices {
		products = append(products, p)
	}
	sort.Strings(products)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Product Price Points ($)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	data := make([]opts.BarData, len(products))
	for i, p := range products {
		data[i] = opts.BarData{Value: prices[p]}
	}
	bar.SetXAxis(products).AddSeries("Price", data)
	return bar
}

// WriteBoxplotsHTML writes the four product-distribution boxplots as one page.
func WriteBoxplotsHTML(a *stats.Analysis, path string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	for _, f := range boxplotFields {
		page.AddCharts(FieldBoxPlot(a, f))
	}
	return writeHTML(page, path)
}

// WriteCorrelationHTML writes the correlation heatmap page.
func WriteCorrelationHTML(a *stats.Analysis, path string) error {
	return writeHTML(CorrelationHeatmap(a), path)
}

func writeHTML(r Renderable, path string) error {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return fmt.Errorf("render chart page: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
