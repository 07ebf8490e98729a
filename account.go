package daybook

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// The four user-input error kinds reported by the transaction engine. They are
// always wrapped with context, so callers must test them with errors.Is.
var (
	// ErrInsufficientFunds reports a buy whose total cost exceeds the day's
	// cash balance. The account is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNoPositions reports a sell on a day that holds no positions at all.
	ErrNoPositions = errors.New("no positions held")
	// ErrSecurityNotFound reports a sell of a security absent from the day's
	// positions.
	ErrSecurityNotFound = errors.New("security not found")
	// ErrInsufficientShares reports a sell of more shares than the day holds.
	ErrInsufficientShares = errors.New("insufficient shares")
)

// Account is a daily portfolio ledger.
//
// It owns the ascending-ordered index of known trading days and, keyed by day,
// the snapshot of cash, positions, trades and orders. A day is admitted lazily
// the first time it is touched. Snapshots are never deleted; the account
// accumulates for the lifetime of the process.
//
// An Account is an owned aggregate, not a singleton: independent accounts
// coexist freely. It assumes a single synchronous writer and carries no
// internal locking; concurrent callers must add their own mutual exclusion.
type Account struct {
	currency  string
	days      []Date // ascending
	snapshots map[Date]*DailySnapshot
}

// New creates an empty account. All monetary values recorded by the account
// are denominated in the given currency.
func New(currency string) *Account {
	return &Account{
		currency:  currency,
		snapshots: make(map[Date]*DailySnapshot),
	}
}

// Currency returns the account's currency code.
func (a *Account) Currency() string { return a.currency }

// Len returns the number of known trading days.
func (a *Account) Len() int { return len(a.days) }

// Days returns an iterator over the known trading days in ascending order.
func (a *Account) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for _, on := range a.days {
			if !yield(on) {
				return
			}
		}
	}
}

// FirstDay returns the earliest known trading day, or false if the account is
// empty.
func (a *Account) FirstDay() (Date, bool) {
	if len(a.days) == 0 {
		return Date{}, false
	}
	return a.days[0], true
}

// LastDay returns the latest known trading day, or false if the account is
// empty.
func (a *Account) LastDay() (Date, bool) {
	if len(a.days) == 0 {
		return Date{}, false
	}
	return a.days[len(a.days)-1], true
}

// ensureDay admits a day into the index the first time it is touched, with
// zero cash and empty logs. Calling it on a known day is a no-op. The index
// stays ascending after any insertion.
func (a *Account) ensureDay(on Date) *DailySnapshot {
	if snap, ok := a.snapshots[on]; ok {
		return snap
	}
	i, _ := slices.BinarySearchFunc(a.days, on, Date.Compare)
	a.days = slices.Insert(a.days, i, on)
	snap := newDailySnapshot(a.currency)
	a.snapshots[on] = snap
	return snap
}

// AddDailyData seeds or overwrites the full snapshot for a day.
//
// This is a destructive replace, not a merge: all five fields are set from the
// arguments, and a caller who wants to preserve the day's trade log while
// changing cash must pass the existing log back in. The position value is
// stored as given, not recomputed. The slices are cloned, the account shares
// no state with its callers.
func (a *Account) AddDailyData(on Date, cash, positionValue Money, positions []Position, trades []Trade, orders []Order) {
	snap := a.ensureDay(on)
	snap.Cash = cash
	snap.PositionValue = positionValue
	snap.Positions = slices.Clone(positions)
	snap.Trades = slices.Clone(trades)
	snap.Orders = slices.Clone(orders)
}

// RecordBuy applies a buy to the day's snapshot.
//
// The total cost is quantity*price plus commission and other fees. If the
// day's cash cannot cover it, RecordBuy fails with ErrInsufficientFunds and
// leaves the account untouched. Otherwise it debits the cash, merges the
// shares into the day's position for that security with a quantity-weighted
// average cost basis, rebuilds the cached position value, and appends the
// immutable trade record.
func (a *Account) RecordBuy(on Date, security, name string, quantity Quantity, price, commission, otherFees Money) error {
	snap := a.ensureDay(on)

	trade := NewBuyTrade(on, security, name, quantity, price, commission, otherFees)
	cost := trade.Cost()
	if snap.Cash.LessThan(cost) {
		return fmt.Errorf("on %s, cannot buy %s of %s for %s, cash balance is %s: %w",
			on, quantity, security, cost, snap.Cash, ErrInsufficientFunds)
	}
	snap.Cash = snap.Cash.Sub(cost)

	if i, ok := snap.position(security); ok {
		p := &snap.Positions[i]
		oldQuantity, oldAverageCost := p.Quantity, p.AverageCost
		p.Quantity = oldQuantity.Add(quantity)
		if p.Quantity.IsZero() {
			// Only reachable with a negative quantity. Avoid dividing by zero.
			p.AverageCost = M(0, a.currency)
		} else {
			p.AverageCost = oldAverageCost.Mul(oldQuantity).Add(price.Mul(quantity)).Div(p.Quantity)
		}
	} else {
		snap.Positions = append(snap.Positions, Position{
			Security:    security,
			Name:        name,
			Quantity:    quantity,
			AverageCost: price,
		})
	}

	snap.recomputePositionValue(a.currency)
	snap.Trades = append(snap.Trades, trade)
	return nil
}

// RecordSell applies a sell to the day's snapshot.
//
// The proceeds are quantity*price minus commission, other fees, stamp duty and
// transfer fee; they may be negative when fees exceed the gross amount. The
// proceeds are credited to cash before the position is validated, so a sell
// rejected with ErrNoPositions, ErrSecurityNotFound or ErrInsufficientShares
// still leaves the cash credited. This ordering is kept for parity with the
// reference behavior; see DESIGN.md.
//
// A valid sell decrements the held quantity, leaving the average cost
// untouched, removes the position entirely when it reaches zero, rebuilds the
// cached position value, and appends the immutable trade record.
func (a *Account) RecordSell(on Date, security string, quantity Quantity, price, commission, otherFees, stampDuty, transferFee Money) error {
	snap := a.ensureDay(on)

	trade := NewSellTrade(on, security, quantity, price, commission, otherFees, stampDuty, transferFee)
	snap.Cash = snap.Cash.Add(trade.Proceeds())

	if len(snap.Positions) == 0 {
		return fmt.Errorf("on %s, nothing to sell from: %w", on, ErrNoPositions)
	}
	i, ok := snap.position(security)
	if !ok {
		return fmt.Errorf("on %s, security %q is not held: %w", on, security, ErrSecurityNotFound)
	}
	p := &snap.Positions[i]
	if p.Quantity.LessThan(quantity) {
		return fmt.Errorf("on %s, cannot sell %s, held: %s, requested: %s: %w",
			on, security, p.Quantity, quantity, ErrInsufficientShares)
	}

	p.Quantity = p.Quantity.Sub(quantity)
	// A sell never changes the average cost: the cost basis is a property of
	// the remaining shares.
	if p.Quantity.IsZero() {
		snap.Positions = slices.Delete(snap.Positions, i, i+1)
	}

	snap.recomputePositionValue(a.currency)
	snap.Trades = append(snap.Trades, trade)
	return nil
}

// CashOn returns the cash balance on a day, or zero for an unknown day.
func (a *Account) CashOn(on Date) Money {
	if snap, ok := a.snapshots[on]; ok {
		return snap.Cash
	}
	return M(0, a.currency)
}

// PositionValueOn returns the cached position value on a day, or zero for an
// unknown day.
func (a *Account) PositionValueOn(on Date) Money {
	if snap, ok := a.snapshots[on]; ok {
		return snap.PositionValue
	}
	return M(0, a.currency)
}

// PositionsOn returns a copy of the positions held on a day, empty for an
// unknown day.
func (a *Account) PositionsOn(on Date) []Position {
	if snap, ok := a.snapshots[on]; ok {
		return slices.Clone(snap.Positions)
	}
	return nil
}

// PositionOn returns the position held on a day for a security code, or false.
func (a *Account) PositionOn(on Date, security string) (Position, bool) {
	snap, ok := a.snapshots[on]
	if !ok {
		return Position{}, false
	}
	i, ok := snap.position(security)
	if !ok {
		return Position{}, false
	}
	return snap.Positions[i], true
}

// TradesOn returns a copy of the trades executed on a day, in execution order,
// empty for an unknown day.
func (a *Account) TradesOn(on Date) []Trade {
	if snap, ok := a.snapshots[on]; ok {
		return slices.Clone(snap.Trades)
	}
	return nil
}

// OrdersOn returns a copy of the orders submitted on a day, empty for an
// unknown day.
func (a *Account) OrdersOn(on Date) []Order {
	if snap, ok := a.snapshots[on]; ok {
		return slices.Clone(snap.Orders)
	}
	return nil
}

// TotalAssets returns cash plus position value on a day. For an unknown day
// both terms default to zero, yielding zero with no error.
func (a *Account) TotalAssets(on Date) Money {
	if snap, ok := a.snapshots[on]; ok {
		return snap.TotalAssets()
	}
	return M(0, a.currency)
}

// DailyReturn computes the day-over-day return of total assets.
//
// The baseline is the immediately preceding day in the date index, by index
// position, not by calendar adjacency: gaps are simply skipped. It returns 0
// for an unknown day, for the earliest known day, and when the baseline's
// total assets are zero. The last case conflates "no prior data" with "prior
// assets genuinely zero"; it is a known approximation kept as is.
func (a *Account) DailyReturn(on Date) Percent {
	assets := a.TotalAssets(on)
	if _, known := a.snapshots[on]; !known && assets.IsZero() {
		return 0
	}

	i, found := slices.BinarySearchFunc(a.days, on, Date.Compare)
	if !found || i == 0 {
		return 0
	}
	previous := a.TotalAssets(a.days[i-1])
	if previous.IsZero() {
		return 0
	}
	return Percent(assets.Sub(previous).value.Div(previous.value).InexactFloat64())
}
