// Package testutil provides shared fixtures for tests.
package testutil

import (
	"github.com/shopspring/decimal"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// SampleRecords returns a small ledger spanning two periods, with one
// record missing a department.
func SampleRecords() []domain.PayRecord {
	return []domain.PayRecord{
		{
			Name:              "A Rao",
			EmployeeID:        "101",
			Designation:       "Clerk",
			Department:        "C",
			Month:             "March",
			Year:              2024,
			BasicPay:          amount(50000),
			GrossSalary:       amount(65000),
			TotalDeductions:   amount(3000),
			NetSalary:         amount(62000),
			BankAccount:       "1234567890",
			NextIncrementDate: "July 2024",
			Allowances: map[string]decimal.Decimal{
				"DA":  amount(10000),
				"HRA": amount(5000),
			},
			Deductions: map[string]decimal.Decimal{
				"IT": amount(2000),
				"PT": amount(1000),
			},
		},
		{
			Name:            "B Iyer",
			EmployeeID:      "102",
			Designation:     "Typist",
			Month:           "March",
			Year:            2024,
			BasicPay:        amount(40000),
			GrossSalary:     amount(52000),
			TotalDeductions: amount(2000),
			NetSalary:       amount(50000),
			Allowances: map[string]decimal.Decimal{
				"DA":  amount(8000),
				"HRA": amount(4000),
			},
			Deductions: map[string]decimal.Decimal{
				"IT": amount(1500),
				"PT": amount(500),
			},
		},
		{
			Name:            "C Nair",
			EmployeeID:      "103",
			Designation:     "Peon",
			Department:      "D",
			Month:           "February",
			Year:            2024,
			BasicPay:        amount(30000),
			GrossSalary:     amount(38000),
			TotalDeductions: amount(1500),
			NetSalary:       amount(36500),
			Allowances: map[string]decimal.Decimal{
				"DA": amount(6000),
			},
			Deductions: map[string]decimal.Decimal{
				"PT": amount(500),
			},
		},
	}
}
