package sim

// Position is the per-instrument holdings record. Shares bought today stay
// locked until the next day's unlock step (T+1 settlement).
//
// Invariants, maintained by the Engine: 0 <= SellableShares <= TotalShares,
// and a zeroed position has SellableShares == 0 and AvgCost == 0.
type Position struct {
	TotalShares    float64
	SellableShares float64
	AvgCost        float64 // weighted average purchase price, pre-fee
}

// Account is a cash balance plus positions keyed by instrument column
// index. A position is created on the first purchase of its instrument and
// stays in the map afterwards, even once its shares drop back to zero.
type Account struct {
	Cash      float64
	Positions map[int]*Position
}

func NewAccount(cash float64) Account {
	return Account{Cash: cash, Positions: make(map[int]*Position)}
}

// Clone returns a deep copy so callers can inspect state without holding a
// reference into the engine's live account.
func (a Account) Clone() Account {
	out := Account{Cash: a.Cash, Positions: make(map[int]*Position, len(a.Positions))}
	for instrument, pos := range a.Positions {
		cp := *pos
		out.Positions[instrument] = &cp
	}
	return out
}

// position returns the Position for instrument, creating the zero value on
// first access.
func (a *Account) position(instrument int) *Position {
	p, ok := a.Positions[instrument]
	if !ok {
		p = &Position{}
		a.Positions[instrument] = p
	}
	return p
}
