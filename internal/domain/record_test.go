package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"January", 1},
		{"March", 3},
		{"December", 12},
		{"", 0},
		{"march", 0}, // month names are exact
		{"Smarch", 0},
	}

	for _, tt := range tests {
		if got := MonthIndex(tt.name); got != tt.want {
			t.Errorf("MonthIndex(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestAllowance_MissingFieldIsZero(t *testing.T) {
	r := PayRecord{
		Allowances: map[string]decimal.Decimal{"DA": decimal.NewFromInt(100)},
	}

	if got := r.Allowance("DA"); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Allowance(DA) = %s, want 100", got)
	}
	if got := r.Allowance("HRA"); !got.IsZero() {
		t.Errorf("Allowance(HRA) = %s, want 0", got)
	}
}

func TestDeduction_NilMapIsZero(t *testing.T) {
	var r PayRecord
	if got := r.Deduction("IT"); !got.IsZero() {
		t.Errorf("Deduction(IT) on empty record = %s, want 0", got)
	}
}

func TestCanonicalSort_MostRecentFirst(t *testing.T) {
	records := []PayRecord{
		{Name: "A Rao", Month: "March", Year: 2023},
		{Name: "B Iyer", Month: "January", Year: 2024},
		{Name: "C Shetty", Month: "November", Year: 2023},
	}

	CanonicalSort(records)

	wantOrder := []string{"B Iyer", "C Shetty", "A Rao"}
	for i, want := range wantOrder {
		if records[i].Name != want {
			t.Fatalf("position %d = %s, want %s", i, records[i].Name, want)
		}
	}
}

func TestCanonicalSort_CalendarMonthNotLexical(t *testing.T) {
	// "September" > "April" lexically but April must not come first within
	// a year when September is the later period.
	records := []PayRecord{
		{Name: "april", Month: "April", Year: 2023},
		{Name: "september", Month: "September", Year: 2023},
	}

	CanonicalSort(records)

	if records[0].Name != "september" {
		t.Errorf("expected September 2023 first, got %s", records[0].Month)
	}
}

func TestCanonicalSort_StableForEqualPeriods(t *testing.T) {
	records := []PayRecord{
		{Name: "first", EmployeeID: "1", Month: "June", Year: 2024},
		{Name: "second", EmployeeID: "2", Month: "June", Year: 2024},
		{Name: "third", EmployeeID: "3", Month: "June", Year: 2024},
	}

	CanonicalSort(records)

	for i, want := range []string{"first", "second", "third"} {
		if records[i].Name != want {
			t.Fatalf("stable sort broken: position %d = %s, want %s", i, records[i].Name, want)
		}
	}
}

func TestCanonicalSort_OrderInvariant(t *testing.T) {
	records := []PayRecord{
		{Month: "March", Year: 2023},
		{Month: "January", Year: 2024},
		{Month: "December", Year: 2022},
		{Month: "February", Year: 2024},
		{Month: "July", Year: 2023},
	}

	CanonicalSort(records)

	for i := 0; i < len(records)-1; i++ {
		a, b := records[i], records[i+1]
		if a.Year < b.Year {
			t.Fatalf("year order violated at %d: %d before %d", i, a.Year, b.Year)
		}
		if a.Year == b.Year && MonthIndex(a.Month) < MonthIndex(b.Month) {
			t.Fatalf("month order violated at %d: %s before %s", i, a.Month, b.Month)
		}
	}
}

func TestFilterCriteria_IsEmpty(t *testing.T) {
	if !(FilterCriteria{}).IsEmpty() {
		t.Error("zero criteria should be empty")
	}
	if (FilterCriteria{Year: "2024"}).IsEmpty() {
		t.Error("criteria with a year should not be empty")
	}
}
