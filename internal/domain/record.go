package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Months lists the calendar months in order. Period sorting and the month
// filter dropdown both rely on this order, never on lexical order.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex returns the 1-based calendar index of a month name, or 0 when
// the name is not a calendar month.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// AllowanceFields is the canonical column order for allowance breakdowns.
var AllowanceFields = []string{"DA", "HRA", "IR", "SFN", "SPAY-TYPIST", "P"}

// DeductionFields is the canonical column order for deduction breakdowns.
var DeductionFields = []string{"IT", "PT", "GSLIC", "LIC", "FBF"}

// PayRecord is one employee-period ledger entry as delivered by the document
// processor. Gross, total deductions and net are trusted as supplied; the
// board never re-derives them from the components.
type PayRecord struct {
	Name        string `json:"name"`
	EmployeeID  string `json:"employeeId"`
	Designation string `json:"designation"`
	// Department is empty when the slip carries no group assignment.
	Department string `json:"department,omitempty"`

	Month string `json:"month"`
	Year  int    `json:"year"`

	BasicPay        decimal.Decimal            `json:"basicPay"`
	Allowances      map[string]decimal.Decimal `json:"allowances,omitempty"`
	Deductions      map[string]decimal.Decimal `json:"deductions,omitempty"`
	GrossSalary     decimal.Decimal            `json:"grossSalary"`
	TotalDeductions decimal.Decimal            `json:"totalDeductions"`
	NetSalary       decimal.Decimal            `json:"netSalary"`

	BankAccount       string `json:"bankAccount,omitempty"`
	NextIncrementDate string `json:"nextIncrementDate,omitempty"`
}

// Allowance returns the named allowance amount, or zero when the record does
// not carry that field. Missing fields are never an error.
func (r *PayRecord) Allowance(key string) decimal.Decimal {
	if v, ok := r.Allowances[key]; ok {
		return v
	}
	return decimal.Zero
}

// Deduction returns the named deduction amount, or zero when absent.
func (r *PayRecord) Deduction(key string) decimal.Decimal {
	if v, ok := r.Deductions[key]; ok {
		return v
	}
	return decimal.Zero
}

// CanonicalSort orders records most-recent-period-first: year descending,
// then calendar month descending. The sort is stable so rows sharing a
// period keep their intake order.
func CanonicalSort(records []PayRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year > records[j].Year
		}
		return MonthIndex(records[i].Month) > MonthIndex(records[j].Month)
	})
}
