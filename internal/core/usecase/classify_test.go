package usecase

import (
	"testing"

	"github.com/kirillkom/devdocs-mcp/internal/core/catalog"
	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

func TestClassifyFallsBackToGeneral(t *testing.T) {
	c := NewDomainClassifier(catalog.Default())

	queries := []string{
		"Best practices for file handling",
		"",
		"how do databases work",
	}
	for _, q := range queries {
		if got := c.Classify(q); got != domain.DomainGeneral {
			t.Fatalf("Classify(%q) = %s, want general", q, got)
		}
	}
}

func TestClassifyPicksHighestScore(t *testing.T) {
	c := NewDomainClassifier(catalog.Default())

	tests := []struct {
		query string
		want  domain.Name
	}{
		{"How do I use useState hook in React?", domain.DomainReact},
		{"What are React components and how do they work?", domain.DomainReact},
		{"How to work with lists in Python", domain.DomainPython},
		{"installing packages with npm", domain.DomainNode},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.query); got != tt.want {
			t.Fatalf("Classify(%q) = %s, want %s", tt.query, got, tt.want)
		}
	}
}

func TestClassifyTieBreakFirstDomainWins(t *testing.T) {
	c := NewDomainClassifier(catalog.Default())

	// node-docs and python-docs both score 1; node-docs is enumerated
	// first and must win. Callers depend on this exact outcome.
	got := c.Classify("What's the difference between Node.js and Python?")
	if got != domain.DomainNode {
		t.Fatalf("Classify() = %s, want %s", got, domain.DomainNode)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewDomainClassifier(catalog.Default())

	query := "react hooks and python lists and node streams"
	first := c.Classify(query)
	for i := 0; i < 10; i++ {
		if got := c.Classify(query); got != first {
			t.Fatalf("Classify() flipped from %s to %s on call %d", first, got, i)
		}
	}
}

func TestClassifyKeywordCountsOnce(t *testing.T) {
	c := NewDomainClassifier(catalog.Default())

	// "node" three times still scores 1; a single python keyword plus
	// another distinct one must outrank it.
	got := c.Classify("node node node versus python pip")
	if got != domain.DomainPython {
		t.Fatalf("Classify() = %s, want %s", got, domain.DomainPython)
	}
}
