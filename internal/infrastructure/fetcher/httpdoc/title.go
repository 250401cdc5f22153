package httpdoc

import (
	"strings"

	"golang.org/x/net/html"
)

// pageTitle pulls the <title> text out of an HTML page. Non-HTML content
// or a missing title yields "".
func pageTitle(content string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(content))
	inTitle := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			inTitle = string(name) == "title"
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(tokenizer.Text()))
			}
		case html.EndTagToken:
			inTitle = false
		}
	}
}
