package daybook

// Position is one open holding on a given day.
//
// Security is the stable identity key: a day never holds two positions with
// the same security code. AverageCost is the quantity-weighted average unit
// price paid for the currently held shares; it is only meaningful while
// Quantity is positive.
type Position struct {
	Security    string // security code, the identity key
	Name        string // display name, never used as a key
	Quantity    Quantity
	AverageCost Money // per-unit cost basis
}

// CostValue returns the position's value at cost basis, quantity times
// average cost.
func (p Position) CostValue() Money {
	return p.AverageCost.Mul(p.Quantity)
}

func (p Position) Equal(o Position) bool {
	return p.Security == o.Security &&
		p.Name == o.Name &&
		p.Quantity.Equal(o.Quantity) &&
		p.AverageCost.Equal(o.AverageCost)
}

// MarshalJSON implements the json.Marshaler interface for Position.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("security", p.Security)
	w.Optional("name", p.Name)
	w.Append("quantity", p.Quantity)
	w.Append("average_cost", p.AverageCost)
	return w.MarshalJSON()
}
