package journal

import "time"

// Fill is one executed trade within a run.
type Fill struct {
	RunID      string
	Day        int
	Instrument int
	Side       string // "buy" or "sell"
	Shares     float64
	Price      float64
	Notional   float64
	Fee        float64
	CashAfter  float64
}

// EquityPoint is the portfolio valuation at the close of one simulated day.
type EquityPoint struct {
	RunID  string
	Day    int
	Equity float64
}

// RunRecord summarizes a completed backtest run.
type RunRecord struct {
	RunID       string
	Created     time.Time
	InitialCash float64
	Days        int
	Instruments int
	FinalEquity float64
}

type Journal interface {
	RecordFill(Fill) error
	RecordEquity(EquityPoint) error
	Close() error
}

// RunRecorder is implemented by journals that can also persist run
// summaries (the SQLite backend; CSV files carry the run ID per row).
type RunRecorder interface {
	RecordRun(RunRecord) error
}
