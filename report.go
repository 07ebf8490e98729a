package daybook

// DailyReport gathers everything worth showing about one trading day: the
// snapshot figures, the derived valuation, and the day's activity.
type DailyReport struct {
	Date          Date
	Currency      string
	Cash          Money
	PositionValue Money
	TotalAssets   Money
	Return        Percent
	Positions     []Position
	Trades        []Trade
	Orders        []Order
}

// NewDailyReport builds the report for a day. Unknown days yield a report of
// zeros, consistent with the account's read accessors.
func NewDailyReport(a *Account, on Date) *DailyReport {
	return &DailyReport{
		Date:          on,
		Currency:      a.Currency(),
		Cash:          a.CashOn(on),
		PositionValue: a.PositionValueOn(on),
		TotalAssets:   a.TotalAssets(on),
		Return:        a.DailyReturn(on),
		Positions:     a.PositionsOn(on),
		Trades:        a.TradesOn(on),
		Orders:        a.OrdersOn(on),
	}
}

// ReturnPoint is one entry of the per-day asset history.
type ReturnPoint struct {
	Date        Date
	TotalAssets Money
	Return      Percent
}

// AssetHistory returns one point per known day, in ascending order, with the
// day's total assets and day-over-day return.
func AssetHistory(a *Account) []ReturnPoint {
	points := make([]ReturnPoint, 0, a.Len())
	for on := range a.Days() {
		points = append(points, ReturnPoint{
			Date:        on,
			TotalAssets: a.TotalAssets(on),
			Return:      a.DailyReturn(on),
		})
	}
	return points
}
