package core

import "testing"

func TestCalculateAvailable(t *testing.T) {
	cases := []struct {
		budget string
		spent  string
		want   float64
	}{
		{"$1,200.00", "$450.50", 749.50},
		{"1200", "450.5", 749.50},
		{" $2,000 ", "0", 2000},
		{"100", "250", -150},
		{"abc", "100", 0.0},
		{"100", "abc", 0.0},
		{"", "", 0.0},
		{"$1,0,0,0", "0", 1000}, // separators stripped wherever they appear
	}
	for _, tc := range cases {
		if got := CalculateAvailable(tc.budget, tc.spent); got != tc.want {
			t.Errorf("CalculateAvailable(%q, %q) = %v, want %v", tc.budget, tc.spent, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"$1,200.00", 1200, true},
		{"450.50", 450.5, true},
		{" 12 ", 12, true},
		{"-5", -5, true},
		{"abc", 0, false},
		{"", 0, false},
		{"$", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Errorf("ParseAmount(%q) = %v, %v; want %v", tc.in, got, err, tc.out)
			}
		} else if err == nil {
			t.Errorf("ParseAmount(%q) expected error", tc.in)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{999.999, "$1,000.00"}, // rounds to cents
		{1000000, "$1,000,000.00"},
		{-749.5, "-$749.50"},
		{0.05, "$0.05"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStatusForBands(t *testing.T) {
	cases := []struct {
		available float64
		want      Status
	}{
		{1500, StatusExcellent},
		{1000.01, StatusExcellent},
		{1000, StatusGood},
		{500.01, StatusGood},
		{500, StatusTight},
		{0.01, StatusTight},
		{0, StatusOverspent},
		{-300, StatusOverspent},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.available); got != tc.want {
			t.Errorf("StatusFor(%v) = %v, want %v", tc.available, got, tc.want)
		}
	}
}

// Favorability must never decrease as available grows across band boundaries.
func TestStatusMonotonic(t *testing.T) {
	values := []float64{-5000, -1, 0, 0.01, 250, 500, 500.01, 999, 1000, 1000.01, 2500, 100000}
	prev := -1
	for _, v := range values {
		f := StatusFor(v).Favorability()
		if f < prev {
			t.Fatalf("favorability decreased at available=%v: %d < %d", v, f, prev)
		}
		prev = f
	}
}

func TestSummarize(t *testing.T) {
	rows := []BudgetRow{
		{Category: "Food", Budgeted: "$500.00", Spent: "$120.00"},
		{Category: "Rent", Budgeted: "$1,000.00", Spent: "$1,000.00"},
		{Category: "Broken", Budgeted: "n/a", Spent: "$10.00"},
	}
	s := Summarize(rows)
	if s.TotalBudgeted != 1500 {
		t.Errorf("TotalBudgeted = %v, want 1500", s.TotalBudgeted)
	}
	if s.TotalSpent != 1130 {
		t.Errorf("TotalSpent = %v, want 1130", s.TotalSpent)
	}
	// Broken row contributes zero available, not -10.
	if s.TotalAvailable != 380 {
		t.Errorf("TotalAvailable = %v, want 380", s.TotalAvailable)
	}
}

func TestTransactionValidate(t *testing.T) {
	ok := Transaction{Date: "2026-08-29", Category: "Food", Description: "lunch", Amount: 12.5}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}
	bad := []Transaction{
		{Category: "", Amount: 10},
		{Category: "Food", Amount: 0},
		{Category: "Food", Amount: -1},
	}
	for _, tx := range bad {
		if err := tx.Validate(); err == nil {
			t.Errorf("expected error for %+v", tx)
		}
	}
}
