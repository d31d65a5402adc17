package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavan-musthala/aerofit-analytics/internal/dashboard"
	"github.com/pavan-musthala/aerofit-analytics/internal/dataset"
	"github.com/pavan-musthala/aerofit-analytics/internal/stats"
)

var (
	dashDataPath string
	dashAddr     string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve the interactive analytics dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DataPath
		if dashDataPath != "" {
			path = dashDataPath
		}
		addr := cfg.ListenAddr
		if dashAddr != "" {
			addr = dashAddr
		}

		ds, err := dataset.Load(path)
		if err != nil {
			return err
		}
		a := stats.New(ds, cfg.Precision)

		fmt.Printf("✓ Loaded %d records from %s\n", ds.Len(), ds.Name)
		fmt.Printf("✓ Dashboard at http://localhost%s\n", addr)
		srv := dashboard.New(a, cfg.ProductPrices, logger)
		return srv.ListenAndServe(addr)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashDataPath, "data", "", "dataset CSV path (overrides config)")
	dashboardCmd.Flags().StringVar(&dashAddr, "addr", "", "listen address (overrides config)")
}
