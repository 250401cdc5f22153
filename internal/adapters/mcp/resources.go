package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kirillkom/devdocs-mcp/internal/core/catalog"
)

type resourcePayload struct {
	Domain              string `json:"domain"`
	BaseURL             string `json:"baseUrl,omitempty"`
	RequiresExplicitURL bool   `json:"requiresExplicitUrl"`
}

// registerResources publishes one docs:// resource per catalog domain with
// its base URL record. The general domain has no base URL and says so.
func (s *Server) registerResources() {
	for _, entry := range s.catalog.Entries() {
		uri := "docs://" + string(entry.Name)
		resource := mcp.NewResource(uri,
			string(entry.Name),
			mcp.WithResourceDescription(fmt.Sprintf("Base documentation source for the %s domain", entry.Name)),
			mcp.WithMIMEType("application/json"),
		)
		s.mcpServer.AddResource(resource, resourceHandler(uri, entry))
	}
}

func resourceHandler(uri string, entry catalog.Entry) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	payload := resourcePayload{
		Domain:              string(entry.Name),
		BaseURL:             entry.BaseURL,
		RequiresExplicitURL: entry.BaseURL == "",
	}
	return func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal resource %s: %w", uri, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
