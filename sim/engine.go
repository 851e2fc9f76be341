package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyeddy/chrono/market"
)

// Default proportional fee rates, 3 basis points each, applied symmetrically
// to buy costs and sell proceeds.
const (
	DefaultCommission = 0.0003
	DefaultSlippage   = 0.0003
)

// ErrShapeMismatch is returned by Run before any account mutation when the
// price and signal frames do not share an identical shape.
var ErrShapeMismatch = errors.New("prices and signals shapes must match")

// Fees are the proportional transaction-cost rates charged on every fill.
type Fees struct {
	Commission float64
	Slippage   float64
}

func DefaultFees() Fees {
	return Fees{Commission: DefaultCommission, Slippage: DefaultSlippage}
}

// rate is the combined proportional cost per unit of notional.
func (f Fees) rate() float64 { return f.Commission + f.Slippage }

// Side of a fill.
type Side int8

const (
	Buy  Side = +1
	Sell Side = -1
)

func (s Side) String() string {
	if s == Sell {
		return "sell"
	}
	return "buy"
}

// Fill describes one executed trade.
type Fill struct {
	Day        int
	Instrument int
	Side       Side
	Shares     float64
	Price      float64
	Notional   float64 // shares * price, before fees
	Fee        float64 // cost above notional (buy) or haircut below it (sell)
	CashAfter  float64
}

// FillRecorder observes executed fills. The engine itself does no I/O;
// recorders that persist fills belong to the caller.
type FillRecorder interface {
	RecordFill(Fill)
}

// Engine simulates cash and share accounting for one portfolio under T+1
// settlement. It owns a single Account which carries forward across Run
// calls; use Reset for a fresh start. An Engine is not safe for concurrent
// use; independent simulations need independent engines.
type Engine struct {
	acct     Account
	fees     Fees
	recorder FillRecorder
}

func NewEngine(initialCash float64) *Engine {
	return NewEngineWithFees(initialCash, DefaultFees())
}

func NewEngineWithFees(initialCash float64, fees Fees) *Engine {
	return &Engine{acct: NewAccount(initialCash), fees: fees}
}

// SetFillRecorder sets an optional recorder notified of every executed
// fill. Pass nil to detach.
func (e *Engine) SetFillRecorder(r FillRecorder) { e.recorder = r }

// Account returns a deep-copy snapshot of the engine's account.
func (e *Engine) Account() Account { return e.acct.Clone() }

// Reset discards all state and starts over with a fresh account.
func (e *Engine) Reset(initialCash float64) { e.acct = NewAccount(initialCash) }

// Run simulates the signal against the price history day by day and returns
// the portfolio equity series, one value per day.
//
// Days run strictly in order: each day first unlocks yesterday's buys, then
// trades instruments in ascending column order against the shared cash
// balance (the lowest column gets first claim on cash), then marks the
// portfolio to market. Invalid prices (<= 0, NaN, Inf) suspend an
// instrument for the day: no trade, zero valuation. Trades that cannot be
// afforded or covered are skipped silently; only a shape mismatch is an
// error, raised before any state changes.
//
// Run continues from whatever state the previous Run left behind, which is
// what allows feeding a long history in chunks.
func (e *Engine) Run(prices, signals *market.Frame) ([]float64, error) {
	if prices == nil || signals == nil {
		return nil, fmt.Errorf("sim: missing input frame: %w", ErrShapeMismatch)
	}
	if !market.SameShape(prices, signals) {
		return nil, fmt.Errorf("sim: prices %dx%d vs signals %dx%d: %w",
			prices.Days(), prices.Instruments(),
			signals.Days(), signals.Instruments(), ErrShapeMismatch)
	}

	days := prices.Days()
	instruments := prices.Instruments()
	equity := make([]float64, 0, days)

	for day := 0; day < days; day++ {
		// Pre-market unlock: yesterday's buys become sellable today.
		for _, pos := range e.acct.Positions {
			pos.SellableShares = pos.TotalShares
		}

		for instrument := 0; instrument < instruments; instrument++ {
			price := prices.At(day, instrument)
			if !validPrice(price) {
				continue
			}
			sig := signals.At(day, instrument)
			switch {
			case sig > 0:
				e.buy(day, instrument, price, sig)
			case sig < 0:
				e.sell(day, instrument, price, sig)
			}
		}

		equity = append(equity, e.markToMarket(prices, day))
	}

	return equity, nil
}

// buy spends a signal-scaled fraction of available cash, all or nothing.
func (e *Engine) buy(day, instrument int, price, sig float64) {
	intent := e.acct.Cash * math.Min(sig, 1.0)
	shares := intent / price
	if shares <= 0 {
		return
	}
	notional := shares * price
	cost := notional * (1.0 + e.fees.rate())
	if cost > e.acct.Cash {
		// fees push the order past available cash; no partial fills
		return
	}

	pos := e.acct.position(instrument)
	newTotal := pos.TotalShares + shares
	pos.AvgCost = (pos.AvgCost*pos.TotalShares + notional) / newTotal
	pos.TotalShares = newTotal
	// SellableShares untouched: today's buy settles T+1.
	e.acct.Cash -= cost

	e.record(Fill{
		Day:        day,
		Instrument: instrument,
		Side:       Buy,
		Shares:     shares,
		Price:      price,
		Notional:   notional,
		Fee:        cost - notional,
		CashAfter:  e.acct.Cash,
	})
}

// sell liquidates a signal-scaled fraction of the holding, capped at the
// shares unlocked for sale today.
func (e *Engine) sell(day, instrument int, price, sig float64) {
	pos, ok := e.acct.Positions[instrument]
	if !ok {
		return
	}
	shares := math.Min(pos.SellableShares, pos.TotalShares*math.Min(-sig, 1.0))
	if shares <= 0 {
		return
	}
	notional := shares * price
	proceeds := notional * (1.0 - e.fees.rate())

	pos.TotalShares -= shares
	pos.SellableShares -= shares
	if pos.TotalShares <= 0 {
		// full close-out; clears float residue
		pos.TotalShares = 0
		pos.SellableShares = 0
		pos.AvgCost = 0
	}
	e.acct.Cash += proceeds

	e.record(Fill{
		Day:        day,
		Instrument: instrument,
		Side:       Sell,
		Shares:     shares,
		Price:      price,
		Notional:   notional,
		Fee:        notional - proceeds,
		CashAfter:  e.acct.Cash,
	})
}

// markToMarket values the portfolio at the day's prices. Instruments with
// an invalid price contribute zero; a stale prior-day price is never
// carried forward. Summation runs in ascending column order so the float
// result is identical run to run.
func (e *Engine) markToMarket(prices *market.Frame, day int) float64 {
	total := e.acct.Cash
	for instrument := 0; instrument < prices.Instruments(); instrument++ {
		pos, ok := e.acct.Positions[instrument]
		if !ok {
			continue
		}
		px := prices.At(day, instrument)
		if validPrice(px) {
			total += pos.TotalShares * px
		}
	}
	return total
}

func (e *Engine) record(f Fill) {
	if e.recorder != nil {
		e.recorder.RecordFill(f)
	}
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) // NaN fails p > 0
}
