package report

import (
	"fmt"
	"path/filepath"

	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
	"github.com/pavan-musthala/aerofit-analytics/internal/utils"
)

// Artifact names written by a batch run, fixed across runs.
const (
	FileBoxplots    = "product_distributions.html"
	FileCorrelation = "correlation_matrix.html"
	FileGenderBar   = "gender_distribution.png"
	FilePricePoints = "price_points.png"
	FileMarketShare = "market_share.png"
)

// WriteArtifacts writes the fixed set of chart files to dir and returns the
// paths written, in order.
func WriteArtifacts(a *stats.Analysis, prices map[string]float64, dir string) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	steps := []struct {
		name  string
		write func(string) error
	}{
		{FileBoxplots, func(p string) error { return WriteBoxplotsHTML(a, p) }},
		{FileCorrelation, func(p string) error { return WriteCorrelationHTML(a, p) }},
		{FileGenderBar, func(p string) error { return WriteGenderStackedBarPNG(a, p) }},
		{FilePricePoints, func(p string) error { return WritePricePointsPNG(prices, p) }},
		{FileMarketShare, func(p string) error { return WriteMarketSharePNG(a, p) }},
	}
	written := make([]string, 0, len(steps))
	for _, s := range steps {
		path := filepath.Join(dir, s.name)
		if err := s.write(path); err != nil {
			return written, fmt.Errorf("%s: %w", s.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
