package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tejukargal/smp-salary-board/internal/config"
	"github.com/tejukargal/smp-salary-board/internal/handler"
	"github.com/tejukargal/smp-salary-board/internal/middleware"
	"github.com/tejukargal/smp-salary-board/internal/repository/memory"
	"github.com/tejukargal/smp-salary-board/internal/service"
	"github.com/tejukargal/smp-salary-board/internal/websocket"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize repository
	recordRepo := memory.NewRecordRepository()

	// Initialize WebSocket hub
	hub := websocket.NewHub()

	// Initialize services
	ledgerService := service.NewLedgerService(recordRepo)
	searchService := service.NewSearchService(recordRepo)
	summaryService := service.NewSummaryService()
	exportService := service.NewExportService(summaryService)
	processorClient := service.NewProcessorClient(cfg.ProcessorURL, cfg.ProcessorTimeout)
	intakeService := service.NewIntakeService(processorClient, recordRepo, hub)

	// Initialize rate limiter for the intake endpoint
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.IntakeRateLimit, cfg.IntakeBurst)
	defer rateLimiter.Stop()

	// Initialize handlers
	recordsHandler := handler.NewRecordsHandler(ledgerService)
	searchHandler := handler.NewSearchHandler(searchService)
	summaryHandler := handler.NewSummaryHandler(ledgerService, summaryService)
	exportHandler := handler.NewExportHandler(ledgerService, exportService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Cap upload body size
	e.Use(echomiddleware.BodyLimit(strconv.FormatInt(cfg.MaxUploadBytes, 10)))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Register API routes
	handler.RegisterRoutes(e, rateLimiter, recordsHandler, searchHandler, summaryHandler, exportHandler, intakeHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
