package stats

import "math"

// TotalReturn is the fractional gain of an equity series from its first to
// its last point.
func TotalReturn(equity []float64) float64 {
	if len(equity) == 0 || equity[0] == 0 {
		return 0
	}
	return equity[len(equity)-1]/equity[0] - 1
}

// MaxDrawdown is the largest peak-to-trough decline of the series, as a
// positive fraction of the peak.
func MaxDrawdown(equity []float64) float64 {
	peak := math.Inf(-1)
	worst := 0.0
	for _, v := range equity {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			dd := (peak - v) / peak
			if dd > worst {
				worst = dd
			}
		}
	}
	return worst
}

// DailyReturns converts an equity series into day-over-day fractional
// returns. A day whose prior equity is zero yields 0.
func DailyReturns(equity []float64) []float64 {
	if len(equity) < 2 {
		return nil
	}
	out := make([]float64, 0, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		prev := equity[i-1]
		if prev == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, equity[i]/prev-1)
	}
	return out
}

// AnnualizedSharpe is mean/stddev of the returns scaled by
// sqrt(periodsPerYear), with a zero risk-free rate. A series with no
// variance returns 0.
func AnnualizedSharpe(returns []float64, periodsPerYear float64) float64 {
	if len(returns) < 2 {
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)
	if variance == 0 {
		return 0
	}

	return mean / math.Sqrt(variance) * math.Sqrt(periodsPerYear)
}
