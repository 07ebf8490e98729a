package renderer

import (
	"fmt"

	"github.com/hweili/daybook"
)

// Trade renders a trade to a one-line string.
func Trade(t daybook.Trade) string {
	switch v := t.(type) {
	case daybook.BuyTrade:
		return fmt.Sprintf("Bought %s of %s at %s for %s", v.Quantity, v.Security, v.Price, v.Cost())
	case daybook.SellTrade:
		return fmt.Sprintf("Sold %s of %s at %s for %s", v.Quantity, v.Security, v.Price, v.Proceeds())
	default:
		return string(t.Side())
	}
}
