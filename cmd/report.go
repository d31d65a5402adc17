package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
	"github.com/pavan-musthala/aerofit-analytics/internal/report"
	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
)

var (
	repDataPath   string
	repOutputDir  string
	repOutputPath string
	repPrecision  int
	repNoCharts   bool
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Compute summary statistics and write the batch report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DataPath
		if len(args) == 1 {
			path = args[0]
		}
		if repDataPath != "" {
			path = repDataPath
		}
		precision := cfg.Precision
		if cmd.Flags().Changed("precision") {
			precision = repPrecision
		}
		outDir := cfg.OutputDir
		if repOutputDir != "" {
			outDir = repOutputDir
		}

		ds, err := dataset.Load(path)
		if err != nil {
			return err
		}
		logger.Debug().Int("records", ds.Len()).Str("file", ds.Name).Msg("dataset loaded")

		a := stats.New(ds, precision)
		text := report.Text(a)

		if repOutputPath != "" {
			if err := os.WriteFile(repOutputPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", repOutputPath)
		} else {
			fmt.Println(text)
		}

		if !repNoCharts {
			written, err := report.WriteArtifacts(a, cfg.ProductPrices, outDir)
			if err != nil {
				return err
			}
			for _, p := range written {
				fmt.Printf("✓ Wrote %s\n", p)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&repDataPath, "data", "", "dataset CSV path (overrides config)")
	reportCmd.Flags().StringVarP(&repOutputDir, "output-dir", "d", "", "directory for chart files (overrides config)")
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "optional path to write the text report instead of stdout")
	reportCmd.Flags().IntVar(&repPrecision, "precision", 2, "decimal places for rounded statistics")
	reportCmd.Flags().BoolVar(&repNoCharts, "no-charts", false, "skip writing chart files")
}
