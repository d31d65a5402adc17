package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
)

// groupStatFields are the numeric fields reported with full mean/median/std
// summaries per product.
var groupStatFields = []dataset.Field{
	dataset.FieldUsage, dataset.FieldMiles, dataset.FieldIncome, dataset.FieldFitness,
}

// Text renders the full batch report as a markdown-friendly string: dataset
// summary, demographics, group summaries, contingency tables with chi-square
// results, correlation matrix, and per-product profiles.
func Text(a *stats.Analysis) string {
	var b strings.Builder

	b.WriteString("[DATASET SUMMARY]\n")
	fmt.Fprintf(&b, "File: %s\n", a.Dataset.Name)
	fmt.Fprintf(&b, "Records: %d\n", a.TotalCustomers)
	fmt.Fprintf(&b, "Products: %s\n", strings.Join(a.Dataset.Products(), ", "))
	fmt.Fprintf(&b, "Average age: %.1f\n", a.AvgAge)
	fmt.Fprintf(&b, "Average income: $%.0f\n", a.AvgIncome)
	fmt.Fprintf(&b, "Snapshot: %s\n", a.ID)

	b.WriteString("\n[CUSTOMER DEMOGRAPHICS BY PRODUCT]\n")
	writeDemographics(&b, a)

	b.WriteString("\n[GROUP SUMMARIES]\n")
	for _, f := range groupStatFields {
		writeGroupStats(&b, a.GroupStats(f))
	}

	b.WriteString("\n[DISTRIBUTIONS]\n")
	for _, field := range []string{stats.DistGender, stats.DistMaritalStatus} {
		writeDistribution(&b, a.Distribution(field))
	}

	b.WriteString("\n[CHI-SQUARE TESTS]\n")
	writeChiSquare(&b, "Product x Gender", a.GenderChi)
	writeChiSquare(&b, "Product x MaritalStatus", a.MaritalChi)

	b.WriteString("\n[CORRELATIONS]\n")
	writeCorrelations(&b, a.Corr)

	b.WriteString("\n[MARKET SHARE]\n")
	for _, p := range a.Dataset.Products() {
		fmt.Fprintf(&b, "- %s: %d customers (%.1f%%)\n", p, a.Counts[p], a.MarketShare[p])
	}

	b.WriteString("\n[PRODUCT PROFILES]\n")
	writeProfiles(&b, a)

	return b.String()
}

func writeDemographics(b *strings.Builder, a *stats.Analysis) {
	fields := dataset.NumericFields
	b.WriteString("| Product |")
	for _, f := range fields {
		fmt.Fprintf(b, " %s |", f)
	}
	b.WriteString("\n|")
	for i := 0; i <= len(fields); i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, p := range a.Dataset.Products() {
		fmt.Fprintf(b, "| %s |", p)
		for _, f := range fields {
			fmt.Fprintf(b, " %.2f |", a.GroupStats(f).ByProduct[p].Mean)
		}
		b.WriteString("\n")
	}
}

func writeGroupStats(b *strings.Builder, gs stats.GroupStats) {
	fmt.Fprintf(b, "- %s by product:\n", gs.Field)
	for _, p := range gs.Products {
		s := gs.ByProduct[p]
		fmt.Fprintf(b, "  * %s (n=%d): mean %.2f, median %.2f, std %.2f\n", p, s.Count, s.Mean, s.Median, s.Std)
	}
}

func writeDistribution(b *strings.Builder, d stats.Distribution) {
	fmt.Fprintf(b, "- %s by product (%%):\n", d.Field)
	for _, p := range d.Products {
		parts := make([]string, len(d.Categories))
		for i, c := range d.Categories {
			parts[i] = fmt.Sprintf("%s %.1f%%", c, d.Percent[p][i])
		}
		fmt.Fprintf(b, "  * %s: %s\n", p, strings.Join(parts, ", "))
	}
}

func writeChiSquare(b *strings.Builder, label string, cs stats.ChiSquare) {
	fmt.Fprintf(b, "- %s: chi2=%.4f, df=%d, p-value=%.4f\n", label, cs.Statistic, cs.DF, cs.PValue)
}

func writeCorrelations(b *strings.Builder, cm stats.CorrMatrix) {
	b.WriteString("| |")
	for _, f := range cm.Fields {
		fmt.Fprintf(b, " %s |", f)
	}
	b.WriteString("\n|")
	for i := 0; i <= len(cm.Fields); i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for i, f := range cm.Fields {
		fmt.Fprintf(b, "| %s |", f)
		for j := range cm.Fields {
			fmt.Fprintf(b, " %.3f |", cm.Values[i][j])
		}
		b.WriteString("\n")
	}
}

func writeProfiles(b *strings.Builder, a *stats.Analysis) {
	gender := a.Distribution(stats.DistGender)
	for _, p := range a.Dataset.Products() {
		fmt.Fprintf(b, "- %s:\n", p)
		fmt.Fprintf(b, "  * Average age: %.1f years\n", a.GroupStats(dataset.FieldAge).ByProduct[p].Mean)
		fmt.Fprintf(b, "  * Average income: $%.2f\n", a.GroupStats(dataset.FieldIncome).ByProduct[p].Mean)
		fmt.Fprintf(b, "  * Average fitness level: %.1f\n", a.GroupStats(dataset.FieldFitness).ByProduct[p].Mean)
		fmt.Fprintf(b, "  * Average weekly usage: %.1f times\n", a.GroupStats(dataset.FieldUsage).ByProduct[p].Mean)
		fmt.Fprintf(b, "  * Average weekly miles: %.1f\n", a.GroupStats(dataset.FieldMiles).ByProduct[p].Mean)
		fmt.Fprintf(b, "  * Gender split: %s\n", genderSplit(gender, p))
	}
}

func genderSplit(d stats.Distribution, product string) string {
	parts := make([]string, len(d.Categories))
	for i, c := range d.Categories {
		parts[i] = fmt.Sprintf("%s %.1f%%", c, d.Percent[product][i])
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
