package dashboard

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
	"github.com/pavan-musthala/aerofit-analytics/internal/report"
	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
)

// Server renders the single-page dashboard over a precomputed analysis
// context. The context is read-only, so handlers need no locking.
type Server struct {
	analysis *stats.Analysis
	prices   map[string]float64
	log      zerolog.Logger
	tmpl     *template.Template
	charts   map[string]func() report.Renderable
}

// New builds a dashboard server for one analysis context.
func New(a *stats.Analysis, prices map[string]float64, log zerolog.Logger) *Server {
	s := &Server{
		analysis: a,
		prices:   prices,
		log:      log,
		tmpl:     template.Must(template.New("layout").Parse(layoutHTML)),
	}
	s.charts = map[string]func() report.Renderable{
		"products_pie":         func() report.Renderable { return report.ProductPie(a) },
		"age_box":              func() report.Renderable { return report.FieldBoxPlot(a, dataset.FieldAge) },
		"income_box":           func() report.Renderable { return report.FieldBoxPlot(a, dataset.FieldIncome) },
		"gender_bar":           func() report.Renderable { return report.DistributionBar(a, stats.DistGender, "Gender Distribution by Product (%)") },
		"marital_bar":          func() report.Renderable { return report.DistributionBar(a, stats.DistMaritalStatus, "Marital Status by Product (%)") },
		"fitness_bar":          func() report.Renderable { return report.DistributionBar(a, stats.DistFitness, "Fitness Level Distribution by Product (%)") },
		"education_bar":        func() report.Renderable { return report.DistributionBar(a, stats.DistEducation, "Education Level Distribution by Product (%)") },
		"corr_heatmap":         func() report.Renderable { return report.CorrelationHeatmap(a) },
		"age_income_scatter":   func() report.Renderable { return report.ScatterByProduct(a, dataset.FieldAge, dataset.FieldIncome, "Age vs Income by Product") },
		"usage_miles_scatter":  func() report.Renderable { return report.ScatterByProduct(a, dataset.FieldUsage, dataset.FieldMiles, "Usage Frequency vs Miles Covered") },
		"usage_fitness_bubble": func() report.Renderable { return report.UsageFitnessBubble(a) },
		"price_bar":            func() report.Renderable { return report.PriceBar(prices) },
	}
	return s
}

// Handler returns the routed, request-logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /charts/{id}", s.handleChart)
	return s.logRequests(mux)
}

// ListenAndServe runs the dashboard until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info().Str("addr", addr).Str("snapshot", s.analysis.ID).Msg("dashboard listening")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

type pageData struct {
	Sections  []Section
	Active    string
	View      View
	Snapshot  string
	Customers int
	AvgAge    string
	AvgIncome string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("section")
	if slug == "" {
		slug = "overview"
	}
	section, ok := SectionBySlug(slug)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown section %q", slug), http.StatusNotFound)
		return
	}
	data := pageData{
		Sections:  Sections(),
		Active:    section.Slug,
		View:      section.Build(s.analysis, s.prices),
		Snapshot:  s.analysis.ID,
		Customers: s.analysis.TotalCustomers,
		AvgAge:    fmt.Sprintf("%.1f", s.analysis.AvgAge),
		AvgIncome: fmt.Sprintf("$%.0f", s.analysis.AvgIncome),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.log.Error().Err(err).Str("section", slug).Msg("render section")
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	build, ok := s.charts[id]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown chart %q", id), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := build().Render(w); err != nil {
		s.log.Error().Err(err).Str("chart", id).Msg("render chart")
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
