package backtest

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/chrono/internal/id"
	"github.com/rustyeddy/chrono/journal"
	"github.com/rustyeddy/chrono/market"
	"github.com/rustyeddy/chrono/sim"
	"github.com/rustyeddy/chrono/stats"
)

// Result summarizes a completed backtest run.
type Result struct {
	RunID         string
	Days          int
	Instruments   int
	InitialEquity float64 // cash entering the run; open positions are not marked
	FinalEquity   float64
	TotalReturn   float64 // over the equity series, first to last day
	MaxDrawdown   float64
	Equity        []float64
	Fills         int
	Buys          int
	Sells         int
}

// Runner drives a sim.Engine over aligned price/signal frames and records
// the run to an optional journal.
type Runner struct {
	Engine  *sim.Engine
	Journal journal.Journal // optional
	RunID   string          // assigned from a fresh ULID when empty
}

// journalRecorder adapts a journal to the engine's fill hook and keeps the
// run's fill tallies.
type journalRecorder struct {
	runID string
	j     journal.Journal

	fills int
	buys  int
	sells int
	err   error // first journal failure, surfaced after the run
}

func (r *journalRecorder) RecordFill(f sim.Fill) {
	r.fills++
	if f.Side == sim.Sell {
		r.sells++
	} else {
		r.buys++
	}
	if r.j == nil {
		return
	}
	err := r.j.RecordFill(journal.Fill{
		RunID:      r.runID,
		Day:        f.Day,
		Instrument: f.Instrument,
		Side:       f.Side.String(),
		Shares:     f.Shares,
		Price:      f.Price,
		Notional:   f.Notional,
		Fee:        f.Fee,
		CashAfter:  f.CashAfter,
	})
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Run executes the simulation and journals fills, daily equity and the run
// summary. The engine run itself is synchronous; ctx is only consulted
// before it starts.
func (r *Runner) Run(ctx context.Context, prices, signals *market.Frame) (Result, error) {
	if r.Engine == nil {
		return Result{}, fmt.Errorf("backtest: Engine is required")
	}
	if prices == nil || signals == nil {
		return Result{}, fmt.Errorf("backtest: prices and signals are required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	runID := r.RunID
	if runID == "" {
		runID = id.New()
	}

	initialCash := r.Engine.Account().Cash

	rec := &journalRecorder{runID: runID, j: r.Journal}
	r.Engine.SetFillRecorder(rec)
	defer r.Engine.SetFillRecorder(nil)

	equity, err := r.Engine.Run(prices, signals)
	if err != nil {
		return Result{}, err
	}
	if rec.err != nil {
		return Result{}, fmt.Errorf("backtest: journal fill: %w", rec.err)
	}

	if r.Journal != nil {
		for day, v := range equity {
			err := r.Journal.RecordEquity(journal.EquityPoint{RunID: runID, Day: day, Equity: v})
			if err != nil {
				return Result{}, fmt.Errorf("backtest: journal equity: %w", err)
			}
		}
	}

	final := initialCash
	if len(equity) > 0 {
		final = equity[len(equity)-1]
	}

	if rr, ok := r.Journal.(journal.RunRecorder); ok {
		err := rr.RecordRun(journal.RunRecord{
			RunID:       runID,
			Created:     time.Now().UTC(),
			InitialCash: initialCash,
			Days:        prices.Days(),
			Instruments: prices.Instruments(),
			FinalEquity: final,
		})
		if err != nil {
			return Result{}, fmt.Errorf("backtest: journal run: %w", err)
		}
	}

	return Result{
		RunID:         runID,
		Days:          prices.Days(),
		Instruments:   prices.Instruments(),
		InitialEquity: initialCash,
		FinalEquity:   final,
		TotalReturn:   stats.TotalReturn(equity),
		MaxDrawdown:   stats.MaxDrawdown(equity),
		Equity:        equity,
		Fills:         rec.fills,
		Buys:          rec.buys,
		Sells:         rec.sells,
	}, nil
}
