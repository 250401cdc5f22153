package usecase

import (
	"regexp"
	"strings"

	"github.com/kirillkom/devdocs-mcp/internal/core/catalog"
	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

// quotedTerm matches one single- or double-quoted run, non-greedy and
// non-nested. It runs against the original query so user casing survives.
var quotedTerm = regexp.MustCompile(`'([^']*)'|"([^"]*)"`)

// TopicExtractor produces the ordered topic list for a query within a
// resolved domain: pattern matches in declaration order, then quoted terms
// in order of appearance. No deduplication.
type TopicExtractor struct {
	catalog *catalog.Catalog
}

func NewTopicExtractor(c *catalog.Catalog) *TopicExtractor {
	return &TopicExtractor{catalog: c}
}

func (e *TopicExtractor) Extract(query string, name domain.Name) []string {
	topics := []string{}

	lowered := strings.ToLower(query)
	if entry, ok := e.catalog.Lookup(name); ok {
		for _, p := range entry.Patterns {
			if p.Expr.MatchString(lowered) {
				topics = append(topics, p.Label)
			}
		}
	}

	for _, m := range quotedTerm.FindAllStringSubmatchIndex(query, -1) {
		var term string
		if m[2] >= 0 {
			term = query[m[2]:m[3]]
		} else {
			term = query[m[4]:m[5]]
		}
		if len(term) > 2 {
			topics = append(topics, term)
		}
	}

	return topics
}
