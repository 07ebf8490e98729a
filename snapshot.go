package daybook

// DailySnapshot is the complete recorded state for one trading day: the cash
// balance, the open positions, the executed trades, the submitted orders and
// the cached position value.
//
// PositionValue is derived: it always equals the sum of quantity times average
// cost over Positions. It is recomputed from scratch after every mutation and
// never maintained incrementally.
type DailySnapshot struct {
	Cash          Money
	PositionValue Money
	Positions     []Position
	Trades        []Trade
	Orders        []Order
}

// newDailySnapshot returns a snapshot with zero cash and empty logs.
func newDailySnapshot(currency string) *DailySnapshot {
	return &DailySnapshot{
		Cash:          M(0, currency),
		PositionValue: M(0, currency),
	}
}

// position returns the index of the position holding the given security code,
// or false. The scan is first-match: a day holds at most one position per code.
func (s *DailySnapshot) position(security string) (int, bool) {
	for i, p := range s.Positions {
		if p.Security == security {
			return i, true
		}
	}
	return 0, false
}

// recomputePositionValue rebuilds the cached position value from the position
// list.
func (s *DailySnapshot) recomputePositionValue(currency string) {
	total := M(0, currency)
	for _, p := range s.Positions {
		total = total.Add(p.CostValue())
	}
	s.PositionValue = total
}

// TotalAssets returns cash plus the cached position value.
func (s *DailySnapshot) TotalAssets() Money {
	return s.Cash.Add(s.PositionValue)
}
