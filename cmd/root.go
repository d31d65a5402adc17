package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cfgpkg "github.com/pavan-musthala/aerofit-analytics/internal/config"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aerofit",
	Short: "AeroFit analytics: purchase-record statistics and dashboard",
	Long:  `AeroFit analytics loads the treadmill purchase dataset, computes per-product summary statistics, and renders them as a batch report or an interactive dashboard.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.aerofit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{Precision: 2, ProductPrices: cfgpkg.DefaultPrices}
	}
	cfg = c

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	if cfg.LogJSON {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	} else {
		logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	}
}
