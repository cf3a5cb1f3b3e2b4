package domain

// AggregateSummary holds totals over a record collection. All values are
// rounded to the nearest whole unit exactly once, after full-precision
// summation. Allowances and Deductions only carry fields whose sum is
// positive; the four headline totals are always present, zero included.
type AggregateSummary struct {
	EmployeeCount   int              `json:"employeeCount"`
	BasicPay        int64            `json:"basicPay"`
	GrossSalary     int64            `json:"grossSalary"`
	TotalDeductions int64            `json:"totalDeductions"`
	NetSalary       int64            `json:"netSalary"`
	Allowances      map[string]int64 `json:"allowances"`
	Deductions      map[string]int64 `json:"deductions"`
	AllowanceTotal  int64            `json:"allowanceTotal"`
	DeductionTotal  int64            `json:"deductionTotal"`
}

// PeriodRange is the span of periods present in a snapshot, oldest to newest.
type PeriodRange struct {
	FromMonth string `json:"fromMonth"`
	FromYear  int    `json:"fromYear"`
	ToMonth   string `json:"toMonth"`
	ToYear    int    `json:"toYear"`
}
