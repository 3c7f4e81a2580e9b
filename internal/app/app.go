package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"access-stats/internal/aggregators"
	internalhttp "access-stats/internal/http"
	"access-stats/internal/reports"
	"access-stats/internal/shared/configs"
	"access-stats/internal/shared/filestorages"
	"access-stats/internal/shared/loggers"
	"access-stats/internal/sources"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "access-stats").
		Logger()

	// Initialize report artifact storage
	fileStorage, err := filestorages.NewFileStorage(config.ReportStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}

	// Initialize log source
	source, err := newSource(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log source: %w", err)
	}

	// Initialize report service
	reportStore := reports.NewReportStore(fileStorage)
	rolluper := aggregators.NewTableRolluper()
	reportService := reports.NewReportService(source, reportStore, rolluper, reports.BuildOptions{
		ExcludeLinesMatching: config.Report.ExcludeLinesMatching,
		DateCutoff:           config.Report.DateCutoff,
	})

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

func newSource(ctx context.Context, config *configs.Config) (sources.Source, error) {
	switch config.Source.Type {
	case "local":
		return sources.NewLocalSource(config.Source.Local.Dir)
	case "s3":
		return sources.NewS3Source(ctx, config.Source.S3.Bucket, config.Source.S3.Prefix, config.Source.S3.Region)
	default:
		return nil, fmt.Errorf("unknown source type %q", config.Source.Type)
	}
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting access-stats service on port %d (log_level=%s, source_type=%s, report_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Source.Type,
			app.config.ReportStorage.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
