package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/chrono/backtest"
	"github.com/rustyeddy/chrono/charts"
	"github.com/rustyeddy/chrono/config"
	"github.com/rustyeddy/chrono/journal"
	"github.com/rustyeddy/chrono/market"
	"github.com/rustyeddy/chrono/sim"
)

var (
	runConfigPath string
	runPrices     string
	runSignals    string
	runCash       float64
	runCommission float64
	runSlippage   float64
	runJournal    string
	runFillsFile  string
	runEquityFile string
	runDBPath     string
	runEquityCSV  string
	runChartFile  string
	runTitle      string
)

var CMDRun = &cobra.Command{
	Use:   "run",
	Short: "Run a backtest over price and signal CSV matrices",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runConfig(cmd)
		if err != nil {
			return err
		}
		return runBacktest(cmd.Context(), cfg)
	},
}

func init() {
	fl := CMDRun.Flags()
	fl.StringVar(&runConfigPath, "config", "", "config file (YAML or JSON); flags override it")
	fl.StringVar(&runPrices, "prices", "", "prices CSV, one row per day, one column per instrument")
	fl.StringVar(&runSignals, "signals", "", "signals CSV, same shape as prices")
	fl.Float64Var(&runCash, "cash", 100_000, "initial cash")
	fl.Float64Var(&runCommission, "commission", sim.DefaultCommission, "proportional commission rate")
	fl.Float64Var(&runSlippage, "slippage", sim.DefaultSlippage, "proportional slippage rate")
	fl.StringVar(&runJournal, "journal", "none", "journal backend: none, csv or sqlite")
	fl.StringVar(&runFillsFile, "fills-file", "./fills.csv", "CSV journal: fills output")
	fl.StringVar(&runEquityFile, "equity-file", "./equity.csv", "CSV journal: equity output")
	fl.StringVar(&runDBPath, "db", "./chrono.sqlite", "SQLite journal: database path")
	fl.StringVar(&runEquityCSV, "out", "", "write the equity series to a CSV file")
	fl.StringVar(&runChartFile, "chart", "", "write a PNG equity-curve chart")
	fl.StringVar(&runTitle, "title", "equity", "chart title")
}

// runConfig builds the run configuration from flags, or from a config file
// with explicitly set flags overriding it.
func runConfig(cmd *cobra.Command) (*config.Config, error) {
	if runConfigPath == "" {
		if runPrices == "" || runSignals == "" {
			return nil, fmt.Errorf("--prices and --signals are required (or use --config)")
		}
		cfg := &config.Config{
			Account: config.AccountConfig{InitialCash: runCash},
			Fees:    config.FeesConfig{Commission: runCommission, Slippage: runSlippage},
			Data:    config.DataConfig{PricesCSV: runPrices, SignalsCSV: runSignals},
			Journal: config.JournalConfig{
				Type:       runJournal,
				FillsFile:  runFillsFile,
				EquityFile: runEquityFile,
				DBPath:     runDBPath,
			},
			Report: config.ReportConfig{
				EquityCSV: runEquityCSV,
				ChartFile: runChartFile,
				Title:     runTitle,
			},
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed
	if set("prices") {
		cfg.Data.PricesCSV = runPrices
	}
	if set("signals") {
		cfg.Data.SignalsCSV = runSignals
	}
	if set("cash") {
		cfg.Account.InitialCash = runCash
	}
	if set("commission") {
		cfg.Fees.Commission = runCommission
	}
	if set("slippage") {
		cfg.Fees.Slippage = runSlippage
	}
	if set("journal") {
		cfg.Journal.Type = runJournal
	}
	if set("fills-file") {
		cfg.Journal.FillsFile = runFillsFile
	}
	if set("equity-file") {
		cfg.Journal.EquityFile = runEquityFile
	}
	if set("db") {
		cfg.Journal.DBPath = runDBPath
	}
	if set("out") {
		cfg.Report.EquityCSV = runEquityCSV
	}
	if set("chart") {
		cfg.Report.ChartFile = runChartFile
	}
	if set("title") {
		cfg.Report.Title = runTitle
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runBacktest(ctx context.Context, cfg *config.Config) error {
	prices, err := market.ReadFrameCSV(cfg.Data.PricesCSV)
	if err != nil {
		return err
	}
	signals, err := market.ReadFrameCSV(cfg.Data.SignalsCSV)
	if err != nil {
		return err
	}

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
	}

	engine := sim.NewEngineWithFees(cfg.Account.InitialCash, sim.Fees{
		Commission: cfg.Fees.Commission,
		Slippage:   cfg.Fees.Slippage,
	})

	runner := &backtest.Runner{Engine: engine, Journal: j}
	res, err := runner.Run(ctx, prices, signals)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d days x %d instruments\n", res.RunID, res.Days, res.Instruments)
	fmt.Printf("  initial cash: %.2f\n", res.InitialEquity)
	fmt.Printf("  final equity: %.2f (%+.2f%%)\n", res.FinalEquity, res.TotalReturn*100)
	fmt.Printf("  max drawdown: %.2f%%\n", res.MaxDrawdown*100)
	fmt.Printf("  fills:        %d (%d buys, %d sells)\n", res.Fills, res.Buys, res.Sells)

	if cfg.Report.EquityCSV != "" {
		if err := market.WriteSeriesCSV(cfg.Report.EquityCSV, res.Equity); err != nil {
			return err
		}
		fmt.Printf("  equity csv:   %s\n", cfg.Report.EquityCSV)
	}
	if cfg.Report.ChartFile != "" {
		title := cfg.Report.Title
		if title == "" {
			title = "equity"
		}
		if err := charts.WriteEquityPNG(cfg.Report.ChartFile, res.Equity, title); err != nil {
			return err
		}
		fmt.Printf("  chart:        %s\n", cfg.Report.ChartFile)
	}

	return nil
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "", "none":
		return nil, nil
	case "csv":
		return journal.NewCSV(jc.FillsFile, jc.EquityFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", jc.Type)
	}
}
