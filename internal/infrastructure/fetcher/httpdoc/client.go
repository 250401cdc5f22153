// Package httpdoc fetches documentation pages over HTTP. It is the only
// I/O collaborator of the pipeline: rate-limited, retried and guarded by a
// circuit breaker. Fetched content is never cached.
package httpdoc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
	"github.com/kirillkom/devdocs-mcp/internal/infrastructure/resilience"
)

const userAgent = "devdocs-mcp/1.0 (+https://github.com/kirillkom/devdocs-mcp)"

type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	RateLimit    rate.Limit
	RateBurst    int
}

func DefaultConfig() Config {
	return Config{
		Timeout:      30 * time.Second,
		MaxBodyBytes: 2 << 20,
		RateLimit:    rate.Limit(2),
		RateBurst:    4,
	}
}

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	runner     *resilience.Runner
	maxBody    int64
	logger     *slog.Logger
}

func New(cfg Config, runner *resilience.Runner, logger *slog.Logger) *Client {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = def.MaxBodyBytes
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = def.RateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = def.RateBurst
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(cfg.RateLimit, cfg.RateBurst),
		runner:     runner,
		maxBody:    cfg.MaxBodyBytes,
		logger:     logger,
	}
}

// Fetch retrieves the page at url. Transient HTTP and network failures are
// retried; terminal failures surface immediately.
func (c *Client) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: empty url", domain.ErrInvalidInput)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	var page *domain.Page
	err := c.runner.Run(ctx, "fetch_documentation", classifyFetchError, func(ctx context.Context) error {
		fetched, err := c.get(ctx, url)
		if err != nil {
			return err
		}
		page = fetched
		return nil
	})
	if err != nil {
		c.logger.Warn("fetch_failed", "url", url, "duration", time.Since(start).String(), "error", err)
		return nil, wrapTemporaryIfNeeded("fetch documentation", err)
	}

	c.logger.Debug("fetch_ok", "url", url, "bytes", len(page.Content), "duration", time.Since(start).String())
	return page, nil
}

func (c *Client) get(ctx context.Context, url string) (*domain.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create fetch request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html, text/plain;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &HTTPStatusError{
			Operation:  "fetch",
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, fmt.Errorf("read fetch response: %w", err)
	}

	content := string(body)
	return &domain.Page{
		Content: content,
		Source:  url,
		Title:   pageTitle(content),
	}, nil
}
