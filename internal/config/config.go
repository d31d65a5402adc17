package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataPath      string             `mapstructure:"data_path" yaml:"data_path"`
	OutputDir     string             `mapstructure:"output_dir" yaml:"output_dir"`
	Precision     int                `mapstructure:"precision" yaml:"precision"`
	ListenAddr    string             `mapstructure:"listen_addr" yaml:"listen_addr"`
	LogJSON       bool               `mapstructure:"log_json" yaml:"log_json"`
	ProductPrices map[string]float64 `mapstructure:"product_prices" yaml:"product_prices"`
}

// DefaultPrices is the fixed treadmill price table used when the config file
// does not override it.
var DefaultPrices = map[string]float64{
	"KP281": 1500,
	"KP481": 1750,
	"KP781": 2500,
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.aerofit/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".aerofit")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("AEROFIT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_path", "aerofit_treadmill_data.csv")
	v.SetDefault("output_dir", ".")
	v.SetDefault("precision", 2)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_json", false)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".aerofit")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.ProductPrices) == 0 {
		c.ProductPrices = DefaultPrices
	}
	if c.Precision < 0 {
		return nil, fmt.Errorf("precision must be >= 0, got %d", c.Precision)
	}
	return &c, nil
}
