package usecase

import (
	"context"
	"fmt"

	"github.com/kirillkom/devdocs-mcp/internal/core/catalog"
	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
	"github.com/kirillkom/devdocs-mcp/internal/core/ports"
)

// FetchDocsUseCase composes the pipeline (classify, extract, resolve) and
// delegates page retrieval to the content fetcher. Recoverable conditions
// (unknown domain, no configured source, fetch failure) are reported in the
// answer's Error field so the caller always gets a structured answer.
type FetchDocsUseCase struct {
	catalog    *catalog.Catalog
	classifier *DomainClassifier
	extractor  *TopicExtractor
	resolver   *URLResolver
	fetcher    ports.ContentFetcher
}

func NewFetchDocsUseCase(
	c *catalog.Catalog,
	classifier *DomainClassifier,
	extractor *TopicExtractor,
	resolver *URLResolver,
	fetcher ports.ContentFetcher,
) *FetchDocsUseCase {
	return &FetchDocsUseCase{
		catalog:    c,
		classifier: classifier,
		extractor:  extractor,
		resolver:   resolver,
		fetcher:    fetcher,
	}
}

func (uc *FetchDocsUseCase) FetchDocumentation(ctx context.Context, query string, explicitDomain string) (*domain.FetchAnswer, error) {
	var name domain.Name
	if explicitDomain != "" {
		name = domain.Name(explicitDomain)
		if _, ok := uc.catalog.Lookup(name); !ok {
			return &domain.FetchAnswer{
				Domain: name,
				Topics: []string{"general"},
				Error:  fmt.Errorf("%w: %q", domain.ErrDomainNotFound, explicitDomain).Error(),
			}, nil
		}
	} else {
		name = uc.classifier.Classify(query)
	}

	topics := uc.extractor.Extract(query, name)
	answer := &domain.FetchAnswer{Domain: name, Topics: topics}
	if len(topics) == 0 {
		answer.Topics = []string{"general"}
	}

	target, ok := uc.resolver.Resolve(name, topics)
	if ok {
		specific := target
		answer.SpecificURL = &specific
	} else {
		entry, _ := uc.catalog.Lookup(name)
		target = entry.BaseURL
	}

	if target == "" {
		answer.Error = fmt.Errorf("%w for domain %q: ask a more specific question or name a documented domain", domain.ErrNoSource, name).Error()
		return answer, nil
	}

	page, err := uc.fetcher.Fetch(ctx, target)
	if err != nil {
		answer.Source = target
		answer.Error = fmt.Sprintf("fetch %s: %v", target, err)
		return answer, nil
	}

	answer.Content = page.Content
	answer.Source = page.Source
	answer.Title = page.Title
	return answer, nil
}
