package usecase

import (
	"strings"

	"github.com/kirillkom/devdocs-mcp/internal/core/catalog"
	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

// DomainClassifier scores a query against each domain's keyword list and
// picks the best match. Pure and total: it always returns a catalog domain,
// falling back to general when nothing scores.
type DomainClassifier struct {
	catalog *catalog.Catalog
}

func NewDomainClassifier(c *catalog.Catalog) *DomainClassifier {
	return &DomainClassifier{catalog: c}
}

// Classify returns the best-scoring domain for the query. A keyword counts
// once however often it occurs. Ties resolve to the domain enumerated
// first; callers depend on that exact tie-break.
func (c *DomainClassifier) Classify(query string) domain.Name {
	lowered := strings.ToLower(query)

	best := domain.DomainGeneral
	bestScore := 0
	for _, entry := range c.catalog.Entries() {
		score := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(lowered, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.Name
		}
	}
	return best
}
