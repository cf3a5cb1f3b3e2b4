package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/tejukargal/smp-salary-board/internal/domain"
	"github.com/tejukargal/smp-salary-board/internal/service"
)

// IntakeHandler handles document upload requests
type IntakeHandler struct {
	intake *service.IntakeService
}

// NewIntakeHandler creates a new IntakeHandler
func NewIntakeHandler(intake *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

// Upload handles POST /api/v1/intake
// Accepts multipart form uploads under the "files" field and forwards them
// to the extraction service. On success the whole ledger snapshot is
// replaced; on any failure the previous snapshot stays live.
func (h *IntakeHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return NewValidationError(c, "Expected multipart form upload", []ValidationError{
			{Field: "files", Message: "Must be a multipart form with a files field"},
		})
	}

	headers := form.File["files"]
	files := make([]service.IntakeFile, 0, len(headers))
	opened := make([]interface{ Close() error }, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			log.Error().Err(err).Str("filename", fh.Filename).Msg("Failed to open uploaded file")
			return NewInternalError(c, "Failed to read uploaded file")
		}
		opened = append(opened, f)
		files = append(files, service.IntakeFile{Name: fh.Filename, Content: f})
	}

	result, err := h.intake.Ingest(c.Request().Context(), files)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFiles):
			return NewValidationError(c, "No files uploaded", []ValidationError{
				{Field: "files", Message: "At least one file is required"},
			})
		case errors.Is(err, domain.ErrNoRecords):
			return NewUpstreamError(c, "No salary records found in the uploaded documents")
		case errors.Is(err, domain.ErrIntakeFailed):
			log.Warn().Err(err).Msg("Intake batch failed")
			return NewUpstreamError(c, "Document processing failed")
		default:
			log.Error().Err(err).Msg("Intake batch failed unexpectedly")
			return NewInternalError(c, "Failed to process upload")
		}
	}

	return c.JSON(http.StatusOK, result)
}
