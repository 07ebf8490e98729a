package daybook

// Side is a typed string identifying the kind of a trade.
type Side string

// Trade sides.
const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Trade defines the common interface for the immutable trade records appended
// to a day's log. A trade is never mutated or removed after creation.
type Trade interface {
	Side() Side    // Side returns the kind of the trade ("buy" or "sell").
	When() Date    // When returns the date on which the trade was executed.
	Amount() Money // Amount returns the gross amount, quantity times unit price.
	Equal(Trade) bool
}

// tradeBase holds the fields common to buys and sells.
type tradeBase struct {
	Date       Date
	Security   string // security code, the identity key
	Quantity   Quantity
	Price      Money // unit price
	Commission Money
	OtherFees  Money
}

// When returns the date of the trade.
func (t tradeBase) When() Date { return t.Date }

// Amount returns the gross amount of the trade, quantity times unit price.
func (t tradeBase) Amount() Money { return t.Price.Mul(t.Quantity) }

func (t tradeBase) equal(o tradeBase) bool {
	return t.Date == o.Date &&
		t.Security == o.Security &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Commission.Equal(o.Commission) &&
		t.OtherFees.Equal(o.OtherFees)
}

// MarshalJSON implements the json.Marshaler interface for tradeBase.
func (t tradeBase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("security", t.Security)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Append("amount", t.Amount())
	w.Append("commission", t.Commission)
	w.Append("other_fees", t.OtherFees)
	return w.MarshalJSON()
}

// BuyTrade records the purchase of a quantity of a security.
type BuyTrade struct {
	tradeBase
	Name string // display name, never used as a key
}

// NewBuyTrade creates the immutable record of a buy.
func NewBuyTrade(day Date, security, name string, quantity Quantity, price, commission, otherFees Money) BuyTrade {
	return BuyTrade{
		tradeBase: tradeBase{
			Date:       day,
			Security:   security,
			Quantity:   quantity,
			Price:      price,
			Commission: commission,
			OtherFees:  otherFees,
		},
		Name: name,
	}
}

// Side returns SideBuy.
func (t BuyTrade) Side() Side { return SideBuy }

// Cost returns the total cash debited by the buy: gross amount plus all fees.
func (t BuyTrade) Cost() Money {
	return t.Amount().Add(t.Commission).Add(t.OtherFees)
}

func (t BuyTrade) Equal(other Trade) bool {
	o, ok := other.(BuyTrade)
	return ok && t.tradeBase.equal(o.tradeBase) && t.Name == o.Name
}

// MarshalJSON implements the json.Marshaler interface for BuyTrade.
func (t BuyTrade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("side", SideBuy)
	w.EmbedFrom(t.tradeBase)
	w.Optional("name", t.Name)
	return w.MarshalJSON()
}

// SellTrade records the sale of a quantity of a security. On top of the common
// fees it carries the sell-only stamp duty and transfer fee.
type SellTrade struct {
	tradeBase
	StampDuty   Money
	TransferFee Money
}

// NewSellTrade creates the immutable record of a sell.
func NewSellTrade(day Date, security string, quantity Quantity, price, commission, otherFees, stampDuty, transferFee Money) SellTrade {
	return SellTrade{
		tradeBase: tradeBase{
			Date:       day,
			Security:   security,
			Quantity:   quantity,
			Price:      price,
			Commission: commission,
			OtherFees:  otherFees,
		},
		StampDuty:   stampDuty,
		TransferFee: transferFee,
	}
}

// Side returns SideSell.
func (t SellTrade) Side() Side { return SideSell }

// Proceeds returns the net cash credited by the sell: gross amount minus all
// itemized fees. It may be negative when the fees exceed the gross amount.
func (t SellTrade) Proceeds() Money {
	return t.Amount().Sub(t.Commission).Sub(t.OtherFees).Sub(t.StampDuty).Sub(t.TransferFee)
}

func (t SellTrade) Equal(other Trade) bool {
	o, ok := other.(SellTrade)
	return ok && t.tradeBase.equal(o.tradeBase) &&
		t.StampDuty.Equal(o.StampDuty) &&
		t.TransferFee.Equal(o.TransferFee)
}

// MarshalJSON implements the json.Marshaler interface for SellTrade.
func (t SellTrade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("side", SideSell)
	w.EmbedFrom(t.tradeBase)
	w.Append("stamp_duty", t.StampDuty)
	w.Append("transfer_fee", t.TransferFee)
	return w.MarshalJSON()
}

// Order is an opaque record of one submitted order. The account stores it
// verbatim per day and never interprets its contents.
type Order struct {
	Date   Date
	Fields map[string]string
}
