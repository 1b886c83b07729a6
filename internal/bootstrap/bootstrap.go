// Package bootstrap assembles the client stack shared by the CLI, the web
// gateway and the MCP server.
package bootstrap

import (
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/core/usecase"
	"github.com/docbridge/docbridge/internal/infrastructure/api"
	"github.com/docbridge/docbridge/internal/infrastructure/export"
	"github.com/docbridge/docbridge/internal/infrastructure/storage/localfile"
	"github.com/docbridge/docbridge/internal/observability/logging"
	"github.com/docbridge/docbridge/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Client     *api.Client
	Categories *api.Categories
	Watcher    *usecase.StatusWatchUseCase
	Exporter   *export.XLSXExporter
	Sink       *localfile.Saver
	Metrics    *metrics.ClientMetrics
}

func New(cfg config.Config, service string) (*App, error) {
	logger := logging.NewJSONLogger(service, cfg.LogLevel)
	slog.SetDefault(logger)

	clientMetrics := metrics.NewClientMetrics(service)

	client := api.New(cfg.BaseURL, api.Options{
		Timeout:   cfg.RequestTimeout,
		RateLimit: rate.Limit(cfg.RateLimit),
		RateBurst: cfg.RateBurst,
		Logger:    logger,
		Observer:  clientMetrics,
	})
	categories := api.NewCategories(client)

	sink, err := localfile.New(cfg.DownloadDir)
	if err != nil {
		return nil, fmt.Errorf("init download dir: %w", err)
	}

	watcher := usecase.NewStatusWatchUseCase(client, client, cfg.PollInterval, logger).
		WithObserver(clientMetrics)
	exporter := export.NewXLSXExporter(client, logger)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Client:     client,
		Categories: categories,
		Watcher:    watcher,
		Exporter:   exporter,
		Sink:       sink,
		Metrics:    clientMetrics,
	}, nil
}
