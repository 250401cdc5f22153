package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	mcpadapter "github.com/kirillkom/devdocs-mcp/internal/adapters/mcp"
	"github.com/kirillkom/devdocs-mcp/internal/config"
	"github.com/kirillkom/devdocs-mcp/internal/core/catalog"
	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
	"github.com/kirillkom/devdocs-mcp/internal/core/ports"
	"github.com/kirillkom/devdocs-mcp/internal/core/usecase"
	"github.com/kirillkom/devdocs-mcp/internal/infrastructure/fetcher/httpdoc"
	"github.com/kirillkom/devdocs-mcp/internal/infrastructure/resilience"
	"github.com/kirillkom/devdocs-mcp/internal/observability/logging"
	"github.com/kirillkom/devdocs-mcp/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.ServerMetrics
	Server  *mcpadapter.Server
}

func New(cfg config.Config) (*App, error) {
	logger := logging.NewJSONLogger("devdocs-mcp", cfg.LogLevel)

	var overlay []catalog.Entry
	if cfg.CatalogFile != "" {
		entries, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("load catalog overlay: %w", err)
		}
		overlay = entries
		logger.Info("catalog_overlay_loaded", "file", cfg.CatalogFile, "domains", len(entries))
	}
	cat := catalog.New(overlay...)

	m := metrics.NewServerMetrics("devdocs-mcp")

	runner := resilience.NewRunner(resilience.Config{
		MaxAttempts:        cfg.RetryMaxAttempts,
		InitialBackoff:     time.Duration(cfg.RetryInitialBackoffMS) * time.Millisecond,
		MaxBackoff:         time.Duration(cfg.RetryMaxBackoffMS) * time.Millisecond,
		Multiplier:         2.0,
		BreakerEnabled:     cfg.BreakerEnabled,
		BreakerMinRequests: uint32(cfg.BreakerMinRequests),
		BreakerOpenTimeout: time.Duration(cfg.BreakerOpenTimeoutSecs) * time.Second,
	}, logger)

	fetcher := httpdoc.New(httpdoc.Config{
		Timeout:      time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		MaxBodyBytes: int64(cfg.FetchMaxBodyBytes),
		RateLimit:    rate.Limit(cfg.FetchRateLimitRPS),
		RateBurst:    cfg.FetchRateBurst,
	}, runner, logger)

	classifier := usecase.NewDomainClassifier(cat)
	extractor := usecase.NewTopicExtractor(cat)
	resolver := usecase.NewURLResolver(cat)
	router := usecase.NewRouter(classifier, extractor)
	docs := usecase.NewFetchDocsUseCase(cat, classifier, extractor, resolver, &observedFetcher{
		inner:   fetcher,
		metrics: m,
	})

	srv := mcpadapter.New(cat, router, docs, m, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,
		Server:  srv,
	}, nil
}

// observedFetcher records fetch outcome metrics around the HTTP client.
type observedFetcher struct {
	inner   ports.ContentFetcher
	metrics *metrics.ServerMetrics
}

func (f *observedFetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	start := time.Now()
	page, err := f.inner.Fetch(ctx, url)
	f.metrics.ObserveFetch("devdocs-mcp", time.Since(start), err)
	return page, err
}
