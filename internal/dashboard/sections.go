package dashboard

import (
	"fmt"
	"math"
	"sort"

	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
)

// Summary names consumed by sections. The Requires list of each Section is
// the contract between the presentation layer and the aggregation pipeline:
// it states which summaries must exist before the section can render.
const (
	NeedProductCounts = "product_counts"
	NeedAgeStats      = "age_stats"
	NeedIncomeStats   = "income_stats"
	NeedGenderDist    = "gender_dist"
	NeedMaritalDist   = "marital_dist"
	NeedFitnessDist   = "fitness_dist"
	NeedFitnessStats  = "fitness_stats"
	NeedEducationDist = "education_dist"
	NeedUsageFitness  = "usage_fitness_joint"
	NeedUsageStats    = "usage_stats"
	NeedMilesStats    = "miles_stats"
	NeedMarketShare   = "market_share"
	NeedPriceTable    = "price_table"
)

// Card is a single key metric shown at the top of a section.
type Card struct {
	Label string
	Value string
}

// Table is a rendered summary table.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// View is the render-ready content of one section.
type View struct {
	Title    string
	Cards    []Card
	Tables   []Table
	Insights []string
	ChartIDs []string
}

// Section is one sidebar entry of the dashboard.
type Section struct {
	Slug     string
	Title    string
	Requires []string
	build    func(a *stats.Analysis, prices map[string]float64) View
}

// Build produces the section's view from the analysis context.
func (s Section) Build(a *stats.Analysis, prices map[string]float64) View {
	return s.build(a, prices)
}

// Sections returns the sidebar sections in display order.
func Sections() []Section {
	return []Section{
		{
			Slug:     "overview",
			Title:    "Product Overview",
			Requires: []string{NeedProductCounts, NeedAgeStats, NeedIncomeStats},
			build:    buildOverview,
		},
		{
			Slug:     "segments",
			Title:    "Customer Segments",
			Requires: []string{NeedGenderDist, NeedMaritalDist, NeedFitnessDist, NeedFitnessStats},
			build:    buildSegments,
		},
		{
			Slug:     "audience",
			Title:    "Target Audience Analysis",
			Requires: []string{NeedEducationDist, NeedAgeStats, NeedIncomeStats},
			build:    buildAudience,
		},
		{
			Slug:     "usage",
			Title:    "Usage Analysis",
			Requires: []string{NeedUsageFitness, NeedUsageStats, NeedMilesStats},
			build:    buildUsage,
		},
		{
			Slug:     "financial",
			Title:    "Financial Insights",
			Requires: []string{NeedIncomeStats, NeedMarketShare, NeedPriceTable},
			build:    buildFinancial,
		},
		{
			Slug:     "recommendations",
			Title:    "Recommendations",
			Requires: nil,
			build:    buildRecommendations,
		},
	}
}

// SectionBySlug resolves a sidebar slug.
func SectionBySlug(slug string) (Section, bool) {
	for _, s := range Sections() {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}

func buildOverview(a *stats.Analysis, _ map[string]float64) View {
	v := View{
		Title: "Product Overview",
		Cards: []Card{
			{Label: "Total customers", Value: fmt.Sprintf("%d", a.TotalCustomers)},
			{Label: "Average age", Value: fmt.Sprintf("%.1f", a.AvgAge)},
			{Label: "Average income", Value: fmt.Sprintf("$%.0f", a.AvgIncome)},
		},
		ChartIDs: []string{"products_pie", "age_box", "income_box"},
		Insights: []string{
			"Product preferences show clear market segmentation.",
			"Age and income distributions vary significantly across models.",
		},
	}
	counts := Table{Title: "Customers by Product", Header: []string{"Product", "Customers"}}
	for _, p := range a.Dataset.Products() {
		counts.Rows = append(counts.Rows, []string{p, fmt.Sprintf("%d", a.Counts[p])})
	}
	v.Tables = append(v.Tables, counts)
	return v
}

func buildSegments(a *stats.Analysis, _ map[string]float64) View {
	v := View{
		Title:    "Customer Segments",
		ChartIDs: []string{"gender_bar", "marital_bar", "fitness_bar"},
	}
	v.Tables = append(v.Tables, groupStatTable(a.GroupStats(dataset.FieldFitness), "Fitness Level by Product"))
	v.Insights = append(v.Insights,
		fmt.Sprintf("Product x Gender independence: chi2=%.2f, p=%.4f", a.GenderChi.Statistic, a.GenderChi.PValue),
		fmt.Sprintf("Product x MaritalStatus independence: chi2=%.2f, p=%.4f", a.MaritalChi.Statistic, a.MaritalChi.PValue),
		"Fitness level scale: 1 (beginner) to 5 (expert).",
	)
	return v
}

func buildAudience(a *stats.Analysis, _ map[string]float64) View {
	return View{
		Title:    "Target Audience Analysis",
		ChartIDs: []string{"age_income_scatter", "education_bar", "corr_heatmap"},
		Tables: []Table{{
			Title:  "Target Customer Profiles",
			Header: []string{"Product", "Profile"},
			Rows: [][]string{
				{"KP281", "Entry level: younger, budget-conscious buyers starting out"},
				{"KP481", "Mid range: established professionals, value-focused"},
				{"KP781", "Premium: high income, experienced, feature-driven"},
			},
		}},
		Insights: []string{
			"Higher education levels concentrate in the premium model.",
			"Age and income together separate the three buyer segments.",
		},
	}
}

func buildUsage(a *stats.Analysis, _ map[string]float64) View {
	v := View{
		Title:    "Usage Analysis",
		ChartIDs: []string{"usage_fitness_bubble", "usage_miles_scatter"},
	}
	v.Tables = append(v.Tables,
		groupStatTable(a.GroupStats(dataset.FieldUsage), "Usage Frequency by Product"),
		groupStatTable(a.GroupStats(dataset.FieldMiles), "Weekly Miles by Product"),
	)
	v.Insights = append(v.Insights,
		"Usage frequency and miles covered move together.",
		"Higher fitness ratings correlate with increased usage.",
	)
	return v
}

func buildFinancial(a *stats.Analysis, prices map[string]float64) View {
	v := View{
		Title:    "Financial Insights",
		ChartIDs: []string{"income_box", "price_bar", "age_income_scatter"},
	}
	v.Tables = append(v.Tables, groupStatTable(a.GroupStats(dataset.FieldIncome), "Income by Product"))

	share := Table{Title: "Market Share", Header: []string{"Product", "Share"}}
	for _, p := range a.Dataset.Products() {
		share.Rows = append(share.Rows, []string{p, fmt.Sprintf("%.1f%%", a.MarketShare[p])})
	}
	v.Tables = append(v.Tables, share)

	priceTable := Table{Title: "Price Points", Header: []string{"Product", "Price"}}
	products := make([]string, 0, len(prices))
	for p := range prices {
		products = append(products, p)
	}
	sort.Strings(products)
	for _, p := range products {
		priceTable.Rows = append(priceTable.Rows, []string{p, fmt.Sprintf("$%.0f", prices[p])})
	}
	v.Tables = append(v.Tables, priceTable)

	v.Insights = append(v.Insights,
		"Clear income segmentation across product lines.",
		"Price points sit below the median income of each segment.",
	)
	return v
}

func buildRecommendations(_ *stats.Analysis, _ map[string]float64) View {
	return View{
		Title: "Recommendations",
		Insights: []string{
			"Target KP781 towards high-income, fitness-focused customers.",
			"Position KP481 as the best value-for-money option.",
			"Market KP281 as an entry-level model for beginners.",
			"Develop gender-specific marketing campaigns.",
			"Tailor messaging to different fitness levels.",
			"Maintain premium pricing for KP781; offer financing for KP281.",
		},
	}
}

func groupStatTable(gs stats.GroupStats, title string) Table {
	t := Table{Title: title, Header: []string{"Product", "Mean", "Median", "Std Dev"}}
	for _, p := range gs.Products {
		s := gs.ByProduct[p]
		t.Rows = append(t.Rows, []string{p, fmtStat(s.Mean), fmtStat(s.Median), fmtStat(s.Std)})
	}
	return t
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
