// Package daybook implements a daily portfolio ledger.
//
// An [Account] keeps one snapshot per trading day: the cash balance, the open
// positions with their weighted-average cost basis, the executed trades and
// the submitted orders. Buys and sells mutate a day's snapshot in place;
// valuation queries (total assets, day-over-day return) are pure reads over
// the chronologically ordered set of known days.
//
// The account is a bookkeeping engine, not a trading engine: it records facts
// already decided elsewhere and never talks to a market.
package daybook
