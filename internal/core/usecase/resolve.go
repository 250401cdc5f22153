package usecase

import (
	"strings"

	"github.com/kirillkom/devdocs-mcp/internal/core/catalog"
	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

// URLResolver maps a topic list to a specific documentation URL using the
// domain's ordered rule table. Only the first topic is ever consulted;
// later topics are not fallback candidates.
type URLResolver struct {
	catalog *catalog.Catalog
}

func NewURLResolver(c *catalog.Catalog) *URLResolver {
	return &URLResolver{catalog: c}
}

// Resolve returns the specific URL for the main topic, or ok=false when the
// topic list is empty, the domain is unknown, or no rule matches.
func (r *URLResolver) Resolve(name domain.Name, topics []string) (string, bool) {
	if len(topics) == 0 {
		return "", false
	}
	entry, ok := r.catalog.Lookup(name)
	if !ok {
		return "", false
	}

	main := topics[0]
	for _, rule := range entry.Rules {
		for _, label := range rule.Labels {
			if label == main {
				return strings.ReplaceAll(rule.URL, "{topic}", main), true
			}
		}
	}
	return "", false
}
