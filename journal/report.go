package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatRunReport renders a run summary and its fills as plain text.
func FormatRunReport(run RunRecord, fills []Fill) string {
	var b strings.Builder

	ret := 0.0
	if run.InitialCash != 0 {
		ret = (run.FinalEquity/run.InitialCash - 1) * 100
	}

	buys, sells := 0, 0
	for _, f := range fills {
		if f.Side == "sell" {
			sells++
		} else {
			buys++
		}
	}

	fmt.Fprintf(&b, "run %s\n", run.RunID)
	fmt.Fprintf(&b, "  created:      %s\n", run.Created.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "  shape:        %d days x %d instruments\n", run.Days, run.Instruments)
	fmt.Fprintf(&b, "  initial cash: %.2f\n", run.InitialCash)
	fmt.Fprintf(&b, "  final equity: %.2f (%+.2f%%)\n", run.FinalEquity, ret)
	fmt.Fprintf(&b, "  fills:        %d (%d buys, %d sells)\n", len(fills), buys, sells)

	if len(fills) > 0 {
		fmt.Fprintf(&b, "\n  %-5s %-10s %-5s %12s %12s %12s %10s\n",
			"day", "instrument", "side", "shares", "price", "notional", "fee")
		for _, f := range fills {
			fmt.Fprintf(&b, "  %-5d %-10d %-5s %12.4f %12.4f %12.2f %10.4f\n",
				f.Day, f.Instrument, f.Side, f.Shares, f.Price, f.Notional, f.Fee)
		}
	}

	return b.String()
}

// FormatRunList renders one line per run for listing.
func FormatRunList(runs []RunRecord) string {
	if len(runs) == 0 {
		return "no runs recorded\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-26s %-20s %6s %6s %14s %14s\n",
		"run_id", "created", "days", "insts", "initial", "final")
	for _, r := range runs {
		fmt.Fprintf(&b, "%-26s %-20s %6d %6d %14.2f %14.2f\n",
			r.RunID, r.Created.UTC().Format("2006-01-02 15:04:05"),
			r.Days, r.Instruments, r.InitialCash, r.FinalEquity)
	}
	return b.String()
}
