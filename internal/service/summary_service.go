package service

import (
	"github.com/shopspring/decimal"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

// SummaryService computes aggregate figures over a record set. Sums are
// carried at full decimal precision and rounded to whole rupees exactly
// once, when the summary is materialized.
type SummaryService struct{}

// NewSummaryService creates a new SummaryService
func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

// Summarize totals the given records. Breakdown maps carry only fields
// whose full-precision sum is positive, so a ledger that never pays SFN
// simply omits SFN rather than reporting 0. Renderers with fixed column
// sets (CSV, print) read absent keys as zero through their column
// manifest, so omission here never leaves a hole in an export row.
func (s *SummaryService) Summarize(records []domain.PayRecord) domain.AggregateSummary {
	var basic, gross, deducted, net decimal.Decimal
	allowances := make(map[string]decimal.Decimal)
	deductions := make(map[string]decimal.Decimal)

	for _, r := range records {
		basic = basic.Add(r.BasicPay)
		gross = gross.Add(r.GrossSalary)
		deducted = deducted.Add(r.TotalDeductions)
		net = net.Add(r.NetSalary)
		for _, f := range domain.AllowanceFields {
			allowances[f] = allowances[f].Add(r.Allowance(f))
		}
		for _, f := range domain.DeductionFields {
			deductions[f] = deductions[f].Add(r.Deduction(f))
		}
	}

	summary := domain.AggregateSummary{
		EmployeeCount:   len(records),
		BasicPay:        rupees(basic),
		GrossSalary:     rupees(gross),
		TotalDeductions: rupees(deducted),
		NetSalary:       rupees(net),
		Allowances:      make(map[string]int64),
		Deductions:      make(map[string]int64),
	}
	var allowanceSum, deductionSum decimal.Decimal
	for _, f := range domain.AllowanceFields {
		allowanceSum = allowanceSum.Add(allowances[f])
		if allowances[f].IsPositive() {
			summary.Allowances[f] = rupees(allowances[f])
		}
	}
	for _, f := range domain.DeductionFields {
		deductionSum = deductionSum.Add(deductions[f])
		if deductions[f].IsPositive() {
			summary.Deductions[f] = rupees(deductions[f])
		}
	}
	summary.AllowanceTotal = rupees(allowanceSum)
	summary.DeductionTotal = rupees(deductionSum)
	return summary
}

func rupees(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
