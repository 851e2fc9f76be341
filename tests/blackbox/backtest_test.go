package blackbox

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/chrono/backtest"
	"github.com/rustyeddy/chrono/journal"
	"github.com/rustyeddy/chrono/market"
	"github.com/rustyeddy/chrono/sim"
)

// writeCSV drops a fixture file into dir and returns its path.
func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// End-to-end: CSV matrices in, SQLite journal and equity CSV out.
func TestBacktestPipeline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pricesPath := writeCSV(t, dir, "prices.csv",
		"inst0,inst1\n"+
			"10,50\n"+
			"11,49\n"+
			"12,NaN\n"+
			"12,48\n")
	signalsPath := writeCSV(t, dir, "signals.csv",
		"inst0,inst1\n"+
			"0.5,0\n"+
			"0,0.2\n"+
			"-1,0\n"+
			"0,-1\n")

	prices, err := market.ReadFrameCSV(pricesPath)
	require.NoError(t, err)
	signals, err := market.ReadFrameCSV(signalsPath)
	require.NoError(t, err)
	require.True(t, market.SameShape(prices, signals))

	j, err := journal.NewSQLite(filepath.Join(dir, "journal.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	engine := sim.NewEngine(10000)
	runner := &backtest.Runner{Engine: engine, Journal: j}

	res, err := runner.Run(context.Background(), prices, signals)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Days)
	assert.Equal(t, 2, res.Instruments)
	assert.Len(t, res.Equity, 4)
	// day 0 buy on inst0, day 1 buy on inst1, day 2 sell inst0, day 3 sell inst1
	assert.Equal(t, 4, res.Fills)
	assert.Equal(t, 2, res.Buys)
	assert.Equal(t, 2, res.Sells)

	// the journal agrees with the result
	run, err := j.GetRun(res.RunID)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, run.InitialCash)
	assert.InDelta(t, res.FinalEquity, run.FinalEquity, 1e-9)

	fills, err := j.ListFillsByRun(res.RunID)
	require.NoError(t, err)
	assert.Len(t, fills, 4)

	equity, err := j.ListEquityByRun(res.RunID)
	require.NoError(t, err)
	require.Len(t, equity, 4)
	for day, pt := range equity {
		assert.Equal(t, day, pt.Day)
		assert.InDelta(t, res.Equity[day], pt.Equity, 1e-9)
	}

	// report renders without choking
	report := journal.FormatRunReport(run, fills)
	assert.Contains(t, report, res.RunID)

	// equity series round-trips through CSV
	outPath := filepath.Join(dir, "equity_out.csv")
	require.NoError(t, market.WriteSeriesCSV(outPath, res.Equity))
	out, err := market.ReadFrameCSV(outPath)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Days())
}

// Two identical pipelines must produce identical journals.
func TestBacktestPipelineDeterministic(t *testing.T) {
	t.Parallel()

	prices, err := market.FrameFromRows([][]float64{
		{10, 50}, {11, 49}, {12, 51}, {9, 48},
	})
	require.NoError(t, err)
	signals, err := market.FrameFromRows([][]float64{
		{0.5, 0.3}, {-0.2, 0}, {0.1, -1}, {-1, 0.4},
	})
	require.NoError(t, err)

	run := func() backtest.Result {
		res, err := (&backtest.Runner{Engine: sim.NewEngine(25000)}).
			Run(context.Background(), prices, signals)
		require.NoError(t, err)
		return res
	}

	a, b := run(), run()
	assert.Equal(t, a.Equity, b.Equity)
	assert.Equal(t, a.Fills, b.Fills)
	assert.InDelta(t, a.FinalEquity, b.FinalEquity, 0)
}
