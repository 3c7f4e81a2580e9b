package http

import (
	"net/http"

	"access-stats/internal/reports"
	"access-stats/internal/shared/loggers"
	"access-stats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reports.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	buildReportHandler := NewBuildReportHandler(reportService)
	getReportHandler := NewGetReportHandler(reportService)

	// Routes
	router.Post("/reports", errorHandlingAdapter(buildReportHandler))
	router.Get("/reports/{reportID}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
