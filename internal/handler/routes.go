package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tejukargal/smp-salary-board/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, recordsHandler *RecordsHandler, searchHandler *SearchHandler, summaryHandler *SummaryHandler, exportHandler *ExportHandler, intakeHandler *IntakeHandler, wsHandler *WebSocketHandler) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// API version 1
	api := e.Group("/api/v1")

	// Intake (rate limited; each upload fans out to the extraction service)
	intake := api.Group("/intake")
	intake.Use(middleware.RateLimitMiddleware(rateLimiter))
	intake.POST("", intakeHandler.Upload)

	// Records
	records := api.Group("/records")
	records.GET("", recordsHandler.List)
	records.GET("/meta", recordsHandler.Meta)
	records.GET("/suggest", searchHandler.Suggest)

	// Summary
	api.GET("/summary", summaryHandler.Get)

	// Exports
	exports := api.Group("/export")
	exports.GET("/csv", exportHandler.CSV)
	exports.GET("/print", exportHandler.Print)

	// WebSocket
	e.GET("/ws", wsHandler.HandleWS)
}
