package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete backtest configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Fees    FeesConfig    `json:"fees" yaml:"fees"`
	Data    DataConfig    `json:"data" yaml:"data"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Report  ReportConfig  `json:"report,omitempty" yaml:"report,omitempty"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	InitialCash float64 `json:"initial_cash" yaml:"initial_cash"`
}

// FeesConfig contains the proportional transaction-cost rates.
type FeesConfig struct {
	Commission float64 `json:"commission" yaml:"commission"`
	Slippage   float64 `json:"slippage" yaml:"slippage"`
}

// DataConfig locates the input matrices: one CSV row per day, one column
// per instrument, identical shapes.
type DataConfig struct {
	PricesCSV  string `json:"prices_csv" yaml:"prices_csv"`
	SignalsCSV string `json:"signals_csv" yaml:"signals_csv"`
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	FillsFile  string `json:"fills_file,omitempty" yaml:"fills_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ReportConfig contains optional run outputs.
type ReportConfig struct {
	EquityCSV string `json:"equity_csv,omitempty" yaml:"equity_csv,omitempty"`
	ChartFile string `json:"chart_file,omitempty" yaml:"chart_file,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.InitialCash <= 0 {
		return fmt.Errorf("account.initial_cash must be positive")
	}
	if c.Fees.Commission < 0 || c.Fees.Commission > 0.1 {
		return fmt.Errorf("fees.commission must be between 0 and 0.1")
	}
	if c.Fees.Slippage < 0 || c.Fees.Slippage > 0.1 {
		return fmt.Errorf("fees.slippage must be between 0 and 0.1")
	}
	if c.Data.PricesCSV == "" {
		return fmt.Errorf("data.prices_csv is required")
	}
	if c.Data.SignalsCSV == "" {
		return fmt.Errorf("data.signals_csv is required")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.FillsFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal fills_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{InitialCash: 100000},
		Fees:    FeesConfig{Commission: 0.0003, Slippage: 0.0003},
		Data: DataConfig{
			PricesCSV:  "./prices.csv",
			SignalsCSV: "./signals.csv",
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./chrono.sqlite",
		},
	}
}
