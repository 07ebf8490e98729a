package daybook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2023-01-02", want: "2023-01-02"},
		{in: "2023-1-2", want: "2023-01-02"}, // lenient single digits
		{in: "2024-02-29", want: "2024-02-29"},
		{in: "02-01-2023", wantErr: true},
		{in: "2023/01/02", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %s, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	// Out-of-range components roll over like time.Date.
	d := NewDate(2023, time.January, 32)
	if d.String() != "2023-02-01" {
		t.Errorf("NewDate(2023, January, 32) = %s, want 2023-02-01", d)
	}
}

func TestDate_Add(t *testing.T) {
	d := MustParse("2023-12-31")
	if got := d.Add(1); got.String() != "2024-01-01" {
		t.Errorf("Add(1) = %s, want 2024-01-01", got)
	}
	if got := d.Add(-31); got.String() != "2023-11-30" {
		t.Errorf("Add(-31) = %s, want 2023-11-30", got)
	}
}

func TestDate_Compare(t *testing.T) {
	a := MustParse("2023-01-02")
	b := MustParse("2023-01-03")

	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare ordering broken: a<b=%d b>a=%d a==a=%d", a.Compare(b), b.Compare(a), a.Compare(a))
	}
	if !a.Before(b) || !b.After(a) {
		t.Error("Before/After inconsistent with Compare")
	}
	if a != MustParse("2023-1-2") {
		t.Error("equal dates are not == comparable")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParse("2023-01-02")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2023-01-02"` {
		t.Errorf("Marshal = %s, want %q", data, "2023-01-02")
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero value is not IsZero")
	}
	if MustParse("2023-01-02").IsZero() {
		t.Error("real date reported IsZero")
	}
}
