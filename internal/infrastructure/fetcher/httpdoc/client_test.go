package httpdoc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
	"github.com/kirillkom/devdocs-mcp/internal/infrastructure/resilience"
)

func testRunner() *resilience.Runner {
	return resilience.NewRunner(resilience.Config{
		MaxAttempts:    3,
		InitialBackoff: 1 * time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		Multiplier:     2,
		BreakerEnabled: false,
	}, nil)
}

func testClient(runner *resilience.Runner) *Client {
	return New(Config{
		Timeout:      5 * time.Second,
		MaxBodyBytes: 1 << 20,
		RateLimit:    rate.Inf,
		RateBurst:    1,
	}, runner, nil)
}

func TestFetchReturnsPageWithTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("missing User-Agent header")
		}
		w.Write([]byte("<html><head><title>useState - React</title></head><body>docs</body></html>"))
	}))
	defer srv.Close()

	page, err := testClient(testRunner()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if page.Source != srv.URL {
		t.Fatalf("source = %q, want %q", page.Source, srv.URL)
	}
	if page.Title != "useState - React" {
		t.Fatalf("title = %q", page.Title)
	}
	if !strings.Contains(page.Content, "docs") {
		t.Fatalf("content = %q", page.Content)
	}
}

func TestFetchPlainTextHasNoTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("plain text body"))
	}))
	defer srv.Close()

	page, err := testClient(testRunner()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if page.Title != "" {
		t.Fatalf("title = %q, want empty", page.Title)
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	page, err := testClient(testRunner()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
	if page.Content != "recovered" {
		t.Fatalf("content = %q", page.Content)
	}
}

func TestFetchDoesNotRetryNotFound(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		http.NotFound(w, nil)
	}))
	defer srv.Close()

	_, err := testClient(testRunner()).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected error")
	}
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("error = %v, want 404 status error", err)
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestFetchExhaustedRetriesAreTemporary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(testRunner()).Fetch(context.Background(), srv.URL)
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("error = %v, want temporary kind", err)
	}
}

func TestFetchRejectsEmptyURL(t *testing.T) {
	_, err := testClient(testRunner()).Fetch(context.Background(), "  ")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("error = %v, want invalid input", err)
	}
}

func TestFetchCapsBodySize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("a", 4096)))
	}))
	defer srv.Close()

	client := New(Config{
		Timeout:      5 * time.Second,
		MaxBodyBytes: 1024,
		RateLimit:    rate.Inf,
		RateBurst:    1,
	}, testRunner(), nil)

	page, err := client.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(page.Content) != 1024 {
		t.Fatalf("content length = %d, want 1024", len(page.Content))
	}
}
