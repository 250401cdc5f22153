package usecase

import (
	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

// Router bundles the classifier and extractor behind the inbound
// QueryRouter port.
type Router struct {
	classifier *DomainClassifier
	extractor  *TopicExtractor
}

func NewRouter(classifier *DomainClassifier, extractor *TopicExtractor) *Router {
	return &Router{classifier: classifier, extractor: extractor}
}

func (r *Router) DetermineDomain(query string) domain.DomainAnswer {
	name := r.classifier.Classify(query)
	confidence := domain.ConfidenceLow
	if name != domain.DomainGeneral {
		confidence = domain.ConfidenceHigh
	}
	return domain.DomainAnswer{Domain: name, Confidence: confidence}
}

func (r *Router) ExtractTopics(query string, name domain.Name) domain.TopicAnswer {
	topics := r.extractor.Extract(query, name)
	return domain.TopicAnswer{Topics: topics, Count: len(topics)}
}
