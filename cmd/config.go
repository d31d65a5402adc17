package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/pavan-musthala/aerofit-analytics/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set AeroFit configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("data_path: %s\n", cfg.DataPath)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("precision: %d\n", cfg.Precision)
		fmt.Printf("listen_addr: %s\n", cfg.ListenAddr)
		fmt.Printf("log_json: %t\n", cfg.LogJSON)
		products := make([]string, 0, len(cfg.ProductPrices))
		for p := range cfg.ProductPrices {
			products = append(products, p)
		}
		sort.Strings(products)
		for _, p := range products {
			fmt.Printf("product_prices.%s: %.0f\n", p, cfg.ProductPrices[p])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_path":
			cfg.DataPath = val
		case "output_dir":
			cfg.OutputDir = val
		case "precision":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for precision: %v", val)
			}
			cfg.Precision = i
		case "listen_addr":
			cfg.ListenAddr = val
		case "log_json":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for log_json: %v", val)
			}
			cfg.LogJSON = b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
