package domain

// Name identifies a documentation domain the classifier can select.
type Name string

const (
	DomainReact   Name = "react-docs"
	DomainNode    Name = "node-docs"
	DomainPython  Name = "python-docs"
	DomainGeneral Name = "general"
)

type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// DomainAnswer is the result of the determine-domain operation.
type DomainAnswer struct {
	Domain     Name       `json:"domain"`
	Confidence Confidence `json:"confidence"`
}

// TopicAnswer is the result of the extract-topics operation.
type TopicAnswer struct {
	Topics []string `json:"topics"`
	Count  int      `json:"count"`
}

// Page is a fetched documentation page. Title is extracted from the HTML
// when present; Content is returned as fetched.
type Page struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Title   string `json:"title,omitempty"`
}

// FetchAnswer is the result of the fetch-documentation operation.
// SpecificURL is nil when the resolver fell back to the domain base URL.
// Error is set for recoverable conditions (unknown domain, fetch failure,
// no configured source); the caller always receives a structured answer.
type FetchAnswer struct {
	Domain      Name     `json:"domain"`
	Topics      []string `json:"topics"`
	SpecificURL *string  `json:"specificUrl"`
	Content     string   `json:"content,omitempty"`
	Source      string   `json:"source,omitempty"`
	Title       string   `json:"title,omitempty"`
	Error       string   `json:"error,omitempty"`
}
