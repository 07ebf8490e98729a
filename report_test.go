package daybook

import "testing"

func TestNewDailyReport(t *testing.T) {
	a := New("CNY")
	day1 := MustParse("2023-01-02")
	day2 := MustParse("2023-01-03")
	a.AddDailyData(day1, cny(1000), cny(500), nil, nil, nil)
	a.AddDailyData(day2, cny(10000), cny(0), nil, nil, nil)
	if err := a.RecordBuy(day2, "600519", "Kweichow Moutai", Q(10), cny(50), cny(5), cny(1)); err != nil {
		t.Fatalf("buy failed: %v", err)
	}

	report := NewDailyReport(a, day2)

	if report.Date != day2 {
		t.Errorf("Date = %s, want %s", report.Date, day2)
	}
	if report.Currency != "CNY" {
		t.Errorf("Currency = %q, want CNY", report.Currency)
	}
	if !report.Cash.Equal(cny(9494)) {
		t.Errorf("Cash = %s, want %s", report.Cash, cny(9494))
	}
	if !report.PositionValue.Equal(cny(500)) {
		t.Errorf("PositionValue = %s, want %s", report.PositionValue, cny(500))
	}
	if !report.TotalAssets.Equal(cny(9994)) {
		t.Errorf("TotalAssets = %s, want %s", report.TotalAssets, cny(9994))
	}
	// From 1500 to 9994.
	if want := Percent((9994.0 - 1500.0) / 1500.0); !report.Return.Equal(want) {
		t.Errorf("Return = %v, want %v", report.Return, want)
	}
	if len(report.Positions) != 1 || len(report.Trades) != 1 {
		t.Errorf("activity = %d positions, %d trades, want 1 and 1",
			len(report.Positions), len(report.Trades))
	}
}

func TestNewDailyReport_UnknownDay(t *testing.T) {
	a := New("CNY")
	report := NewDailyReport(a, MustParse("2023-01-02"))

	if !report.Cash.IsZero() || !report.TotalAssets.IsZero() {
		t.Errorf("unknown day report = cash %s assets %s, want zeros", report.Cash, report.TotalAssets)
	}
	if len(report.Positions) != 0 || len(report.Trades) != 0 || len(report.Orders) != 0 {
		t.Error("unknown day report carries activity")
	}
}

func TestAssetHistory(t *testing.T) {
	a := New("CNY")
	a.AddDailyData(MustParse("2023-01-03"), cny(1100), cny(550), nil, nil, nil)
	a.AddDailyData(MustParse("2023-01-02"), cny(1000), cny(500), nil, nil, nil)

	points := AssetHistory(a)
	if len(points) != 2 {
		t.Fatalf("len = %d, want 2", len(points))
	}
	if points[0].Date.String() != "2023-01-02" || points[1].Date.String() != "2023-01-03" {
		t.Errorf("dates = %s, %s, want ascending order", points[0].Date, points[1].Date)
	}
	if !points[0].TotalAssets.Equal(cny(1500)) || !points[1].TotalAssets.Equal(cny(1650)) {
		t.Errorf("assets = %s, %s, want 1500 and 1650", points[0].TotalAssets, points[1].TotalAssets)
	}
	if !points[0].Return.Equal(0) {
		t.Errorf("first return = %v, want 0", points[0].Return)
	}
	if !points[1].Return.Equal(0.1) {
		t.Errorf("second return = %v, want 0.1", points[1].Return)
	}
}

func TestAssetHistory_Empty(t *testing.T) {
	if points := AssetHistory(New("CNY")); len(points) != 0 {
		t.Errorf("history of empty account = %v, want empty", points)
	}
}
