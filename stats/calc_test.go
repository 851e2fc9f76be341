package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalReturn(t *testing.T) {
	t.Parallel()

	assert.Zero(t, TotalReturn(nil))
	assert.Zero(t, TotalReturn([]float64{0, 100}))
	assert.InDelta(t, 0.10, TotalReturn([]float64{100, 95, 110}), 1e-12)
	assert.InDelta(t, -0.25, TotalReturn([]float64{100, 75}), 1e-12)
}

func TestMaxDrawdown(t *testing.T) {
	t.Parallel()

	assert.Zero(t, MaxDrawdown(nil))
	assert.Zero(t, MaxDrawdown([]float64{100, 101, 102}), "monotone series has no drawdown")

	// peak 120, trough 90 -> 25%
	dd := MaxDrawdown([]float64{100, 120, 90, 110})
	assert.InDelta(t, 0.25, dd, 1e-12)

	// later, deeper drawdown wins
	dd = MaxDrawdown([]float64{100, 80, 130, 65})
	assert.InDelta(t, 0.5, dd, 1e-12)
}

func TestDailyReturns(t *testing.T) {
	t.Parallel()

	assert.Nil(t, DailyReturns([]float64{100}))

	rets := DailyReturns([]float64{100, 110, 99})
	assert.Len(t, rets, 2)
	assert.InDelta(t, 0.10, rets[0], 1e-12)
	assert.InDelta(t, -0.10, rets[1], 1e-12)

	rets = DailyReturns([]float64{100, 0, 50})
	assert.Zero(t, rets[1], "zero prior equity yields zero return")
}

func TestAnnualizedSharpe(t *testing.T) {
	t.Parallel()

	assert.Zero(t, AnnualizedSharpe(nil, 252))
	assert.Zero(t, AnnualizedSharpe([]float64{0.01}, 252))
	assert.Zero(t, AnnualizedSharpe([]float64{0.01, 0.01, 0.01}, 252), "no variance")

	rets := []float64{0.01, -0.01, 0.02, 0.00}
	got := AnnualizedSharpe(rets, 252)

	mean := 0.005
	variance := (math.Pow(0.01-mean, 2) + math.Pow(-0.01-mean, 2) +
		math.Pow(0.02-mean, 2) + math.Pow(0.00-mean, 2)) / 3
	want := mean / math.Sqrt(variance) * math.Sqrt(252)
	assert.InDelta(t, want, got, 1e-12)
}
