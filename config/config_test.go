package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*Config){
		"zero cash":           func(c *Config) { c.Account.InitialCash = 0 },
		"negative commission": func(c *Config) { c.Fees.Commission = -0.01 },
		"huge slippage":       func(c *Config) { c.Fees.Slippage = 0.5 },
		"missing prices":      func(c *Config) { c.Data.PricesCSV = "" },
		"missing signals":     func(c *Config) { c.Data.SignalsCSV = "" },
		"bad journal type":    func(c *Config) { c.Journal.Type = "parquet" },
		"csv without files":   func(c *Config) { c.Journal.Type = "csv" },
		"sqlite without db":   func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "" },
	}

	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	want := Default()
	want.Account.InitialCash = 25000
	want.Fees.Commission = 0.001
	want.Journal = JournalConfig{Type: "csv", FillsFile: "f.csv", EquityFile: "e.csv"}
	want.Report = ReportConfig{ChartFile: "equity.png", Title: "demo"}

	for _, ext := range []string{"yaml", "json"} {
		path := filepath.Join(dir, "cfg."+ext)
		require.NoError(t, want.SaveToFile(path))

		got, err := LoadFromFile(path)
		require.NoError(t, err, ext)
		assert.Equal(t, want, got, ext)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
