package ports

import (
	"context"

	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

// ContentFetcher retrieves a documentation page over the network.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.Page, error)
}
