package service

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

type columnGroup int

const (
	groupIdentity columnGroup = iota
	groupAllowance
	groupDeduction
	groupMoney
)

// exportColumn describes one column shared by the CSV and print renderers.
// Exactly one of text/amount is set; width is the percentage the print
// stylesheet assigns the column at its level.
type exportColumn struct {
	header string
	group  columnGroup
	width  int
	text   func(domain.PayRecord) string
	amount func(domain.PayRecord) decimal.Decimal
}

func (c exportColumn) numeric() bool {
	return c.amount != nil
}

func departmentOrNA(r domain.PayRecord) string {
	if r.Department == "" {
		return "N/A"
	}
	return r.Department
}

func identityColumns(widths [5]int) []exportColumn {
	return []exportColumn{
		{header: "Name", group: groupIdentity, width: widths[0], text: func(r domain.PayRecord) string { return r.Name }},
		{header: "Designation", group: groupIdentity, width: widths[1], text: func(r domain.PayRecord) string { return r.Designation }},
		{header: "Department", group: groupIdentity, width: widths[2], text: departmentOrNA},
		{header: "Month", group: groupIdentity, width: widths[3], text: func(r domain.PayRecord) string { return r.Month }},
		{header: "Year", group: groupIdentity, width: widths[4], text: func(r domain.PayRecord) string { return strconv.Itoa(r.Year) }},
	}
}

// summaryColumns is the nine-column layout of the summary print level.
func summaryColumns() []exportColumn {
	cols := identityColumns([5]int{20, 15, 8, 8, 6})
	return append(cols,
		exportColumn{header: "Basic Pay", group: groupMoney, width: 10, amount: func(r domain.PayRecord) decimal.Decimal { return r.BasicPay }},
		exportColumn{header: "Gross Salary", group: groupMoney, width: 11, amount: func(r domain.PayRecord) decimal.Decimal { return r.GrossSalary }},
		exportColumn{header: "Total Deductions", group: groupMoney, width: 11, amount: func(r domain.PayRecord) decimal.Decimal { return r.TotalDeductions }},
		exportColumn{header: "Net Salary", group: groupMoney, width: 11, amount: func(r domain.PayRecord) decimal.Decimal { return r.NetSalary }},
	)
}

// detailedColumns is the twenty-column layout shared by the CSV export and
// the detailed print level: identity, basic pay, the allowance breakdown,
// gross, the deduction breakdown, then the two closing totals.
func detailedColumns() []exportColumn {
	cols := identityColumns([5]int{12, 8, 4, 5, 4})
	cols = append(cols, exportColumn{
		header: "Basic Pay", group: groupMoney, width: 6,
		amount: func(r domain.PayRecord) decimal.Decimal { return r.BasicPay },
	})
	allowanceWidths := map[string]int{"DA": 4, "HRA": 4, "IR": 3, "SFN": 3, "SPAY-TYPIST": 6, "P": 3}
	for _, f := range domain.AllowanceFields {
		field := f
		cols = append(cols, exportColumn{
			header: field, group: groupAllowance, width: allowanceWidths[field],
			amount: func(r domain.PayRecord) decimal.Decimal { return r.Allowance(field) },
		})
	}
	cols = append(cols, exportColumn{
		header: "Gross Salary", group: groupMoney, width: 6,
		amount: func(r domain.PayRecord) decimal.Decimal { return r.GrossSalary },
	})
	deductionWidths := map[string]int{"IT": 3, "PT": 3, "GSLIC": 4, "LIC": 3, "FBF": 3}
	for _, f := range domain.DeductionFields {
		field := f
		cols = append(cols, exportColumn{
			header: field, group: groupDeduction, width: deductionWidths[field],
			amount: func(r domain.PayRecord) decimal.Decimal { return r.Deduction(field) },
		})
	}
	return append(cols,
		exportColumn{header: "Total Deductions", group: groupMoney, width: 6, amount: func(r domain.PayRecord) decimal.Decimal { return r.TotalDeductions }},
		exportColumn{header: "Net Salary", group: groupMoney, width: 6, amount: func(r domain.PayRecord) decimal.Decimal { return r.NetSalary }},
	)
}

// columnTotal resolves a money column's footer figure from the aggregate
// summary. Breakdown fields absent from the summary total to zero.
func columnTotal(c exportColumn, s domain.AggregateSummary) int64 {
	switch c.group {
	case groupAllowance:
		return s.Allowances[c.header]
	case groupDeduction:
		return s.Deductions[c.header]
	}
	switch c.header {
	case "Basic Pay":
		return s.BasicPay
	case "Gross Salary":
		return s.GrossSalary
	case "Total Deductions":
		return s.TotalDeductions
	case "Net Salary":
		return s.NetSalary
	}
	return 0
}
