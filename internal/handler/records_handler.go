package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/tejukargal/smp-salary-board/internal/domain"
	"github.com/tejukargal/smp-salary-board/internal/service"
)

// RecordsHandler handles record listing and ledger metadata requests
type RecordsHandler struct {
	ledger *service.LedgerService
}

// NewRecordsHandler creates a new RecordsHandler
func NewRecordsHandler(ledger *service.LedgerService) *RecordsHandler {
	return &RecordsHandler{ledger: ledger}
}

// RecordResponse represents one pay record in API responses
type RecordResponse struct {
	Name              string            `json:"name"`
	EmployeeID        string            `json:"employeeId"`
	Designation       string            `json:"designation"`
	Department        string            `json:"department,omitempty"`
	Month             string            `json:"month"`
	Year              int               `json:"year"`
	BasicPay          string            `json:"basicPay"`
	GrossSalary       string            `json:"grossSalary"`
	TotalDeductions   string            `json:"totalDeductions"`
	NetSalary         string            `json:"netSalary"`
	Allowances        map[string]string `json:"allowances"`
	Deductions        map[string]string `json:"deductions"`
	BankAccount       string            `json:"bankAccount,omitempty"`
	NextIncrementDate string            `json:"nextIncrementDate,omitempty"`
	DAShare           string            `json:"daShare"`
	HRAShare          string            `json:"hraShare"`
}

// RecordListResponse represents the record listing API response
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

// PeriodResponse represents the ledger's covered period
type PeriodResponse struct {
	FromMonth string `json:"fromMonth"`
	FromYear  int    `json:"fromYear"`
	ToMonth   string `json:"toMonth"`
	ToYear    int    `json:"toYear"`
}

// MetaResponse represents the ledger metadata API response
type MetaResponse struct {
	TotalRecords int             `json:"totalRecords"`
	Designations []string        `json:"designations"`
	Departments  []string        `json:"departments"`
	Period       *PeriodResponse `json:"period,omitempty"`
	PeriodLabel  string          `json:"periodLabel,omitempty"`
}

// criteriaFromQuery builds filter criteria from the request's query params.
// Shared by the listing, summary, and export endpoints so one filtered view
// drives them all.
func criteriaFromQuery(c echo.Context) domain.FilterCriteria {
	return domain.FilterCriteria{
		Search:      c.QueryParam("search"),
		Month:       c.QueryParam("month"),
		Year:        c.QueryParam("year"),
		Designation: c.QueryParam("designation"),
		Department:  c.QueryParam("department"),
	}
}

// List handles GET /api/v1/records
func (h *RecordsHandler) List(c echo.Context) error {
	records := service.FilterRecords(h.ledger.Records(), criteriaFromQuery(c))

	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordResponse(r))
	}
	return c.JSON(http.StatusOK, RecordListResponse{Records: out, Total: len(out)})
}

// Meta handles GET /api/v1/records/meta
func (h *RecordsHandler) Meta(c echo.Context) error {
	meta := h.ledger.Meta()

	resp := MetaResponse{
		TotalRecords: meta.TotalRecords,
		Designations: meta.Designations,
		Departments:  meta.Departments,
		PeriodLabel:  meta.PeriodLabel,
	}
	if meta.Period != nil {
		resp.Period = &PeriodResponse{
			FromMonth: meta.Period.FromMonth,
			FromYear:  meta.Period.FromYear,
			ToMonth:   meta.Period.ToMonth,
			ToYear:    meta.Period.ToYear,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func toRecordResponse(r domain.PayRecord) RecordResponse {
	allowances := make(map[string]string)
	for _, f := range domain.AllowanceFields {
		if v := r.Allowance(f); !v.IsZero() {
			allowances[f] = v.StringFixed(2)
		}
	}
	deductions := make(map[string]string)
	for _, f := range domain.DeductionFields {
		if v := r.Deduction(f); !v.IsZero() {
			deductions[f] = v.StringFixed(2)
		}
	}

	return RecordResponse{
		Name:              r.Name,
		EmployeeID:        r.EmployeeID,
		Designation:       r.Designation,
		Department:        r.Department,
		Month:             r.Month,
		Year:              r.Year,
		BasicPay:          r.BasicPay.StringFixed(2),
		GrossSalary:       r.GrossSalary.StringFixed(2),
		TotalDeductions:   r.TotalDeductions.StringFixed(2),
		NetSalary:         r.NetSalary.StringFixed(2),
		Allowances:        allowances,
		Deductions:        deductions,
		BankAccount:       r.BankAccount,
		NextIncrementDate: r.NextIncrementDate,
		DAShare:           payShare(r.Allowance("DA"), r.BasicPay),
		HRAShare:          payShare(r.Allowance("HRA"), r.BasicPay),
	}
}

// payShare is the component's percentage of basic pay, "0.00" when basic
// pay is zero.
func payShare(component, basic decimal.Decimal) string {
	if basic.IsZero() {
		return decimal.Zero.StringFixed(2)
	}
	return component.Div(basic).Mul(decimal.NewFromInt(100)).StringFixed(2)
}
