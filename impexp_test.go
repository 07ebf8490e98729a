package daybook

import (
	"strings"
	"testing"
)

func TestImportJournal(t *testing.T) {
	journal := `# trading journal
day,2023-01-02,10000
buy,2023-01-02,600519,Kweichow Moutai,10,50,5,1
sell,2023-01-02,600519,5,60,5,1,0.3,0.06
day,2023-01-03,9787.64,250
`
	account, err := ImportJournal(strings.NewReader(journal), "CNY")
	if err != nil {
		t.Fatalf("ImportJournal failed: %v", err)
	}

	if account.Currency() != "CNY" {
		t.Errorf("currency = %q, want CNY", account.Currency())
	}
	if account.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", account.Len())
	}

	// 10000 - 506 + (300 - 5 - 1 - 0.3 - 0.06)
	day1 := MustParse("2023-01-02")
	if got := account.CashOn(day1); !got.Equal(cny(9787.64)) {
		t.Errorf("cash on %s = %s, want %s", day1, got, cny(9787.64))
	}
	if got := len(account.TradesOn(day1)); got != 2 {
		t.Errorf("trades on %s = %d, want 2", day1, got)
	}
	p, ok := account.PositionOn(day1, "600519")
	if !ok {
		t.Fatal("position not found after replay")
	}
	if !p.Quantity.Equal(Q(5)) || !p.AverageCost.Equal(cny(50)) {
		t.Errorf("position = %s@%s, want 5@%s", p.Quantity, p.AverageCost, cny(50))
	}

	day2 := MustParse("2023-01-03")
	if got := account.CashOn(day2); !got.Equal(cny(9787.64)) {
		t.Errorf("cash on %s = %s, want %s", day2, got, cny(9787.64))
	}
	if got := account.PositionValueOn(day2); !got.Equal(cny(250)) {
		t.Errorf("position value on %s = %s, want %s", day2, got, cny(250))
	}
}

func TestImportJournal_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		journal string
		wantIn  string
	}{
		{
			name:    "unknown kind",
			journal: "dividend,2023-01-02,5\n",
			wantIn:  "unknown journal row kind",
		},
		{
			name:    "bad date",
			journal: "day,02/01/2023,100\n",
			wantIn:  "invalid date",
		},
		{
			name:    "bad cash",
			journal: "day,2023-01-02,abc\n",
			wantIn:  "invalid cash",
		},
		{
			name:    "short buy row",
			journal: "buy,2023-01-02,600519,Kweichow Moutai,10,50\n",
			wantIn:  "'buy' row wants 7 fields",
		},
		{
			name:    "bad quantity",
			journal: "sell,2023-01-02,600519,x,60,5,1,0.3,0.06\n",
			wantIn:  "invalid quantity",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportJournal(strings.NewReader(tc.journal), "CNY")
			if err == nil {
				t.Fatal("ImportJournal succeeded, want error")
			}
			if !strings.Contains(err.Error(), tc.wantIn) {
				t.Errorf("error %q does not mention %q", err, tc.wantIn)
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error %q does not carry the line number", err)
			}
		})
	}
}

func TestImportJournal_RecordErrorsSurface(t *testing.T) {
	// A buy the cash cannot cover aborts the replay with the line number.
	journal := `day,2023-01-02,100
buy,2023-01-02,600519,Kweichow Moutai,10,50,5,1
`
	_, err := ImportJournal(strings.NewReader(journal), "CNY")
	if err == nil {
		t.Fatal("ImportJournal succeeded, want error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not carry the line number", err)
	}
}

func TestImportJournal_Empty(t *testing.T) {
	account, err := ImportJournal(strings.NewReader(""), "CNY")
	if err != nil {
		t.Fatalf("ImportJournal failed: %v", err)
	}
	if account.Len() != 0 {
		t.Errorf("Len() = %d, want 0", account.Len())
	}
}
