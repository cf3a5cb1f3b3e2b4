package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/tejukargal/smp-salary-board/internal/service"
)

// ExportHandler handles CSV and printable document downloads
type ExportHandler struct {
	ledger  *service.LedgerService
	exports *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(ledger *service.LedgerService, exports *service.ExportService) *ExportHandler {
	return &ExportHandler{ledger: ledger, exports: exports}
}

// CSV handles GET /api/v1/export/csv
// The export covers the same filtered view the record listing shows.
func (h *ExportHandler) CSV(c echo.Context) error {
	records := service.FilterRecords(h.ledger.Records(), criteriaFromQuery(c))
	body := h.exports.RenderCSV(records)

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, service.CSVFileName))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}

// Print handles GET /api/v1/export/print
func (h *ExportHandler) Print(c echo.Context) error {
	level, err := service.ParsePrintLevel(c.QueryParam("level"))
	if err != nil {
		return NewValidationError(c, "Invalid print level", []ValidationError{
			{Field: "level", Message: "Must be summary or detailed"},
		})
	}

	records := service.FilterRecords(h.ledger.Records(), criteriaFromQuery(c))
	body, err := h.exports.RenderPrint(records, level)
	if err != nil {
		log.Error().Err(err).Str("level", string(level)).Msg("Failed to render print document")
		return NewInternalError(c, "Failed to render print document")
	}
	return c.HTML(http.StatusOK, body)
}
