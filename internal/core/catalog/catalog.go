// Package catalog holds the static per-domain routing tables: scoring
// keywords, topic patterns and URL rules. The catalog is built once at
// startup and never mutated; iteration order is the fixed enumeration
// order the classifier's tie-break depends on.
package catalog

import (
	"regexp"

	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

// Pattern pairs a topic label with the expression that detects it in a
// lowercased query.
type Pattern struct {
	Label string
	Expr  *regexp.Regexp
}

// Rule maps a main topic to a documentation URL. A rule matches when the
// topic equals any of its labels. The URL may contain the "{topic}"
// placeholder, interpolated with the matched label by the resolver.
type Rule struct {
	Labels []string
	URL    string
}

// Entry is one domain's routing record. An entry with no BaseURL (only
// "general") requires the caller to supply an explicit source URL.
type Entry struct {
	Name     domain.Name
	BaseURL  string
	Keywords []string
	Patterns []Pattern
	Rules    []Rule
}

type Catalog struct {
	entries []Entry
	index   map[domain.Name]int
}

// New builds a catalog from the built-in domains, any overlay entries, and
// the terminal "general" fallback, in that enumeration order.
func New(overlay ...Entry) *Catalog {
	entries := make([]Entry, 0, len(builtin)+len(overlay)+1)
	entries = append(entries, builtin...)
	entries = append(entries, overlay...)
	entries = append(entries, Entry{Name: domain.DomainGeneral})

	index := make(map[domain.Name]int, len(entries))
	for i, e := range entries {
		if _, dup := index[e.Name]; !dup {
			index[e.Name] = i
		}
	}
	return &Catalog{entries: entries, index: index}
}

// Default returns the catalog with only the built-in domains.
func Default() *Catalog {
	return New()
}

// Entries returns all domains in enumeration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Lookup returns the entry for a domain name.
func (c *Catalog) Lookup(name domain.Name) (Entry, bool) {
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

var builtin = []Entry{
	{
		Name:    domain.DomainReact,
		BaseURL: "https://react.dev/",
		Keywords: []string{
			"react", "jsx", "component", "props", "hook",
			"usestate", "useeffect", "redux", "virtual dom",
		},
		Patterns: []Pattern{
			{Label: "useState", Expr: regexp.MustCompile(`usestate`)},
			{Label: "useEffect", Expr: regexp.MustCompile(`useeffect`)},
			{Label: "useContext", Expr: regexp.MustCompile(`usecontext`)},
			{Label: "useReducer", Expr: regexp.MustCompile(`usereducer`)},
			{Label: "useRef", Expr: regexp.MustCompile(`useref`)},
			{Label: "useMemo", Expr: regexp.MustCompile(`usememo`)},
			{Label: "useCallback", Expr: regexp.MustCompile(`usecallback`)},
			{Label: "hooks", Expr: regexp.MustCompile(`\bhooks?\b`)},
			{Label: "components", Expr: regexp.MustCompile(`component`)},
			{Label: "props", Expr: regexp.MustCompile(`\bprops?\b`)},
			{Label: "state", Expr: regexp.MustCompile(`\bstate\b`)},
			{Label: "rendering", Expr: regexp.MustCompile(`render`)},
			{Label: "context", Expr: regexp.MustCompile(`\bcontext\b`)},
			{Label: "jsx", Expr: regexp.MustCompile(`\bjsx\b`)},
		},
		Rules: []Rule{
			{
				Labels: []string{
					"useState", "useEffect", "useContext", "useReducer",
					"useRef", "useMemo", "useCallback",
				},
				URL: "https://react.dev/reference/react/{topic}",
			},
			{Labels: []string{"hooks"}, URL: "https://react.dev/reference/react/hooks"},
			{Labels: []string{"components"}, URL: "https://react.dev/learn/your-first-component"},
			{Labels: []string{"props"}, URL: "https://react.dev/learn/passing-props-to-a-component"},
			{Labels: []string{"state"}, URL: "https://react.dev/learn/state-a-components-memory"},
			{Labels: []string{"rendering"}, URL: "https://react.dev/learn/render-and-commit"},
			{Labels: []string{"context"}, URL: "https://react.dev/learn/passing-data-deeply-with-context"},
			{Labels: []string{"jsx"}, URL: "https://react.dev/learn/writing-markup-with-jsx"},
		},
	},
	{
		Name:    domain.DomainNode,
		BaseURL: "https://nodejs.org/en/docs/",
		Keywords: []string{
			"node", "nodejs", "npm", "express", "event loop", "commonjs",
		},
		Patterns: []Pattern{
			{Label: "fs", Expr: regexp.MustCompile(`\bfs\b|file ?system`)},
			{Label: "http", Expr: regexp.MustCompile(`\bhttps?\b`)},
			{Label: "express", Expr: regexp.MustCompile(`express`)},
			{Label: "modules", Expr: regexp.MustCompile(`\bmodules?\b|\brequire\b`)},
			{Label: "events", Expr: regexp.MustCompile(`\bevents?\b|event emitter`)},
			{Label: "streams", Expr: regexp.MustCompile(`\bstreams?\b`)},
			{Label: "async", Expr: regexp.MustCompile(`\basync\b|\bawait\b|\bpromises?\b`)},
			{Label: "npm", Expr: regexp.MustCompile(`\bnpm\b`)},
			{Label: "buffer", Expr: regexp.MustCompile(`\bbuffers?\b`)},
		},
		Rules: []Rule{
			{Labels: []string{"fs"}, URL: "https://nodejs.org/api/fs.html"},
			{Labels: []string{"http"}, URL: "https://nodejs.org/api/http.html"},
			{Labels: []string{"express"}, URL: "https://expressjs.com/en/starter/hello-world.html"},
			{Labels: []string{"modules"}, URL: "https://nodejs.org/api/modules.html"},
			{Labels: []string{"events"}, URL: "https://nodejs.org/api/events.html"},
			{Labels: []string{"streams"}, URL: "https://nodejs.org/api/stream.html"},
			{Labels: []string{"async"}, URL: "https://nodejs.org/en/learn/asynchronous-work/javascript-asynchronous-programming-and-callbacks"},
			{Labels: []string{"npm"}, URL: "https://docs.npmjs.com/about-npm"},
			{Labels: []string{"buffer"}, URL: "https://nodejs.org/api/buffer.html"},
		},
	},
	{
		Name:    domain.DomainPython,
		BaseURL: "https://docs.python.org/3/",
		Keywords: []string{
			"python", "django", "flask", "pip", "pandas", "numpy", "pytest",
		},
		Patterns: []Pattern{
			{Label: "list", Expr: regexp.MustCompile(`\blists?\b`)},
			{Label: "dictionary", Expr: regexp.MustCompile(`\bdicts?\b|dictionar`)},
			{Label: "string", Expr: regexp.MustCompile(`\bstrings?\b`)},
			{Label: "function", Expr: regexp.MustCompile(`\bfunctions?\b|\bdef\b`)},
			{Label: "class", Expr: regexp.MustCompile(`\bclass(es)?\b`)},
			{Label: "loop", Expr: regexp.MustCompile(`\bloops?\b`)},
			{Label: "file", Expr: regexp.MustCompile(`\bfiles?\b`)},
			{Label: "exception", Expr: regexp.MustCompile(`exception|\bexcept\b`)},
			{Label: "module", Expr: regexp.MustCompile(`\bmodules?\b|\bimport\b`)},
			{Label: "decorator", Expr: regexp.MustCompile(`decorator`)},
		},
		Rules: []Rule{
			{Labels: []string{"list"}, URL: "https://docs.python.org/3/library/stdtypes.html#lists"},
			{Labels: []string{"dictionary"}, URL: "https://docs.python.org/3/library/stdtypes.html#mapping-types-dict"},
			{Labels: []string{"string"}, URL: "https://docs.python.org/3/library/stdtypes.html#string-methods"},
			{Labels: []string{"function"}, URL: "https://docs.python.org/3/tutorial/controlflow.html#defining-functions"},
			{Labels: []string{"class"}, URL: "https://docs.python.org/3/tutorial/classes.html"},
			{Labels: []string{"loop"}, URL: "https://docs.python.org/3/tutorial/controlflow.html#for-statements"},
			{Labels: []string{"file"}, URL: "https://docs.python.org/3/tutorial/inputoutput.html#reading-and-writing-files"},
			{Labels: []string{"exception"}, URL: "https://docs.python.org/3/tutorial/errors.html"},
			{Labels: []string{"module"}, URL: "https://docs.python.org/3/tutorial/modules.html"},
			{Labels: []string{"decorator"}, URL: "https://docs.python.org/3/glossary.html#term-decorator"},
		},
	},
}
