package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tejukargal/smp-salary-board/internal/service"
)

// SummaryHandler handles aggregate summary requests
type SummaryHandler struct {
	ledger    *service.LedgerService
	summaries *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(ledger *service.LedgerService, summaries *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{ledger: ledger, summaries: summaries}
}

// SummaryResponse represents the aggregate summary API response.
// Money figures are whole rupees.
type SummaryResponse struct {
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

// Get handles GET /api/v1/summary
// The summary covers the same filtered view the record listing shows.
func (h *SummaryHandler) Get(c echo.Context) error {
	records := service.FilterRecords(h.ledger.Records(), criteriaFromQuery(c))
	summary := h.summaries.Summarize(records)

	return c.JSON(http.StatusOK, SummaryResponse{
		EmployeeCount:   summary.EmployeeCount,
		BasicPay:        summary.BasicPay,
		GrossSalary:     summary.GrossSalary,
		TotalDeductions: summary.TotalDeductions,
		NetSalary:       summary.NetSalary,
		Allowances:      summary.Allowances,
		Deductions:      summary.Deductions,
		AllowanceTotal:  summary.AllowanceTotal,
		DeductionTotal:  summary.DeductionTotal,
	})
}
