package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRunReport(t *testing.T) {
	t.Parallel()

	run := RunRecord{
		RunID:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Created:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		InitialCash: 10000,
		Days:        2,
		Instruments: 1,
		FinalEquity: 9994,
	}
	fills := []Fill{
		{RunID: run.RunID, Day: 0, Instrument: 0, Side: "buy", Shares: 500, Price: 10, Notional: 5000, Fee: 3},
		{RunID: run.RunID, Day: 1, Instrument: 0, Side: "sell", Shares: 500, Price: 10, Notional: 5000, Fee: 3},
	}

	out := FormatRunReport(run, fills)
	assert.Contains(t, out, run.RunID)
	assert.Contains(t, out, "2 days x 1 instruments")
	assert.Contains(t, out, "-0.06%")
	assert.Contains(t, out, "2 (1 buys, 1 sells)")
	assert.Contains(t, out, "sell")
}

func TestFormatRunList(t *testing.T) {
	t.Parallel()

	assert.Contains(t, FormatRunList(nil), "no runs")

	out := FormatRunList([]RunRecord{{
		RunID:       "R1",
		Created:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Days:        5,
		Instruments: 3,
		InitialCash: 100000,
		FinalEquity: 100100,
	}})
	assert.Contains(t, out, "R1")
	assert.Contains(t, out, "2026-03-01")
}
