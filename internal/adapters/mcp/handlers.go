package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kirillkom/devdocs-mcp/internal/core/domain"
)

func (s *Server) handleDetermineDomain(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required and must be a string"), nil
	}

	answer := s.router.DetermineDomain(query)
	s.metrics.ObserveDomain(serviceName, string(answer.Domain))
	return jsonResult(answer)
}

func (s *Server) handleExtractTopics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required and must be a string"), nil
	}
	name, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError("domain parameter is required and must be a string"), nil
	}

	answer := s.router.ExtractTopics(query, domain.Name(name))
	return jsonResult(answer)
}

func (s *Server) handleFetchDocumentation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required and must be a string"), nil
	}
	explicitDomain := request.GetString("domain", "")

	answer, err := s.docs.FetchDocumentation(ctx, query, explicitDomain)
	if err != nil {
		return nil, fmt.Errorf("fetch documentation: %w", err)
	}

	result, jsonErr := jsonResult(answer)
	if jsonErr != nil {
		return nil, jsonErr
	}
	// Recoverable conditions travel inside the answer; flag them so the
	// client sees an error result, never a protocol failure.
	if answer.Error != "" {
		result.IsError = true
	}
	return result, nil
}

func jsonResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
