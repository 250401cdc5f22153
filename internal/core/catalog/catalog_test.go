package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

func TestDefaultEnumerationOrder(t *testing.T) {
	entries := Default().Entries()

	want := []domain.Name{
		domain.DomainReact,
		domain.DomainNode,
		domain.DomainPython,
		domain.DomainGeneral,
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("entries[%d] = %s, want %s", i, entries[i].Name, name)
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	entry, ok := c.Lookup(domain.DomainPython)
	if !ok {
		t.Fatalf("Lookup(python-docs) not found")
	}
	if entry.BaseURL != "https://docs.python.org/3/" {
		t.Fatalf("python base URL = %q", entry.BaseURL)
	}

	if _, ok := c.Lookup(domain.Name("rust-docs")); ok {
		t.Fatalf("Lookup(rust-docs) found, want missing")
	}
}

func TestGeneralHasNoConfiguration(t *testing.T) {
	entry, ok := Default().Lookup(domain.DomainGeneral)
	if !ok {
		t.Fatalf("general not in catalog")
	}
	if entry.BaseURL != "" || len(entry.Keywords) != 0 || len(entry.Patterns) != 0 || len(entry.Rules) != 0 {
		t.Fatalf("general carries configuration: %+v", entry)
	}
}

func TestOverlayEntriesKeepGeneralLast(t *testing.T) {
	c := New(Entry{Name: domain.Name("rust-docs"), BaseURL: "https://doc.rust-lang.org/"})

	entries := c.Entries()
	if entries[3].Name != domain.Name("rust-docs") {
		t.Fatalf("entries[3] = %s, want rust-docs", entries[3].Name)
	}
	if entries[len(entries)-1].Name != domain.DomainGeneral {
		t.Fatalf("last entry = %s, want general", entries[len(entries)-1].Name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `domains:
  - name: rust-docs
    baseUrl: https://doc.rust-lang.org/
    keywords: [Rust, cargo]
    patterns:
      - label: ownership
        regex: ownership
    rules:
      - labels: [ownership]
        url: https://doc.rust-lang.org/book/ch04-00-understanding-ownership.html
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Name != domain.Name("rust-docs") {
		t.Fatalf("name = %s", e.Name)
	}
	if e.Keywords[0] != "rust" {
		t.Fatalf("keywords not lowercased: %v", e.Keywords)
	}
	if !e.Patterns[0].Expr.MatchString("OWNERSHIP rules") {
		t.Fatalf("pattern not case-insensitive")
	}
	if e.Rules[0].URL != "https://doc.rust-lang.org/book/ch04-00-understanding-ownership.html" {
		t.Fatalf("rule URL = %q", e.Rules[0].URL)
	}
}

func TestLoadFileRejectsBuiltinShadowing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "domains:\n  - name: react-docs\n    baseUrl: https://example.com/\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatalf("LoadFile() accepted a built-in name")
	}
}

func TestLoadFileRejectsBadRegex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "domains:\n  - name: rust-docs\n    patterns:\n      - label: broken\n        regex: '['\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatalf("LoadFile() accepted an invalid pattern")
	}
}
