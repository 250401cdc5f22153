package ports

import (
	"context"

	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

// QueryRouter is the inbound contract for the pure classification pipeline.
// Both operations are deterministic functions of their arguments.
type QueryRouter interface {
	DetermineDomain(query string) domain.DomainAnswer
	ExtractTopics(query string, name domain.Name) domain.TopicAnswer
}

// DocumentationService is the inbound contract for the composed
// fetch-documentation operation. Recoverable conditions are reported in
// the answer's Error field; the error return is reserved for invariant
// violations in the orchestration itself.
type DocumentationService interface {
	FetchDocumentation(ctx context.Context, query string, explicitDomain string) (*domain.FetchAnswer, error)
}
