package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

type fileSpec struct {
	Domains []fileDomain `yaml:"domains"`
}

type fileDomain struct {
	Name     string        `yaml:"name"`
	BaseURL  string        `yaml:"baseUrl"`
	Keywords []string      `yaml:"keywords"`
	Patterns []filePattern `yaml:"patterns"`
	Rules    []fileRule    `yaml:"rules"`
}

type filePattern struct {
	Label string `yaml:"label"`
	Regex string `yaml:"regex"`
}

type fileRule struct {
	Labels []string `yaml:"labels"`
	URL    string   `yaml:"url"`
}

// LoadFile reads overlay domain entries from a YAML file. Overlay entries
// are appended after the built-in domains and before the general fallback;
// reusing a built-in name is rejected. Pattern expressions are compiled
// case-insensitively.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	entries := make([]Entry, 0, len(spec.Domains))
	for i, d := range spec.Domains {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog file: domain %d has no name", i)
		}
		if isReserved(domain.Name(name)) {
			return nil, fmt.Errorf("catalog file: domain %q shadows a built-in", name)
		}

		entry := Entry{
			Name:     domain.Name(name),
			BaseURL:  d.BaseURL,
			Keywords: lowered(d.Keywords),
		}
		for _, p := range d.Patterns {
			if p.Label == "" || p.Regex == "" {
				return nil, fmt.Errorf("catalog file: domain %q has an incomplete pattern", name)
			}
			expr, err := regexp.Compile("(?i)" + p.Regex)
			if err != nil {
				return nil, fmt.Errorf("catalog file: domain %q pattern %q: %w", name, p.Label, err)
			}
			entry.Patterns = append(entry.Patterns, Pattern{Label: p.Label, Expr: expr})
		}
		for _, r := range d.Rules {
			if len(r.Labels) == 0 || r.URL == "" {
				return nil, fmt.Errorf("catalog file: domain %q has an incomplete rule", name)
			}
			entry.Rules = append(entry.Rules, Rule{Labels: r.Labels, URL: r.URL})
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func isReserved(name domain.Name) bool {
	if name == domain.DomainGeneral {
		return true
	}
	for _, e := range builtin {
		if e.Name == name {
			return true
		}
	}
	return false
}

func lowered(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
