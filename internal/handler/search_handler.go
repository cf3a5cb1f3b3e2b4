package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tejukargal/smp-salary-board/internal/service"
)

// SearchHandler handles name suggestion requests
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// SuggestResponse represents the suggestion API response
type SuggestResponse struct {
	Suggestions []service.Suggestion `json:"suggestions"`
}

// Suggest handles GET /api/v1/records/suggest
func (h *SearchHandler) Suggest(c echo.Context) error {
	suggestions := h.search.Suggest(c.QueryParam("term"))
	if suggestions == nil {
		suggestions = []service.Suggestion{}
	}
	return c.JSON(http.StatusOK, SuggestResponse{Suggestions: suggestions})
}
