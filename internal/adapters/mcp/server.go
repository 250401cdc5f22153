// Package mcpadapter exposes the classification pipeline over the Model
// Context Protocol: three tools (determine-domain, extract-topics,
// fetch-documentation) and one docs:// resource per catalog domain.
package mcpadapter

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kirillkom/devdocs-mcp/internal/core/catalog"
	"github.com/kirillkom/devdocs-mcp/internal/core/ports"
	"github.com/kirillkom/devdocs-mcp/internal/observability/metrics"
)

const (
	serviceName    = "devdocs-mcp"
	serviceVersion = "1.0.0"
)

type Server struct {
	catalog *catalog.Catalog
	router  ports.QueryRouter
	docs    ports.DocumentationService
	metrics *metrics.ServerMetrics
	logger  *slog.Logger

	mcpServer *server.MCPServer
}

func New(
	cat *catalog.Catalog,
	router ports.QueryRouter,
	docs ports.DocumentationService,
	m *metrics.ServerMetrics,
	logger *slog.Logger,
) *Server {
	s := &Server{
		catalog: cat,
		router:  router,
		docs:    docs,
		metrics: m,
		logger:  logger,
	}

	s.mcpServer = server.NewMCPServer(
		serviceName,
		serviceVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithInstructions("Routes developer questions to React, Node.js and Python documentation. Use fetch-documentation for content, determine-domain and extract-topics to inspect the routing pipeline."),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// Serve runs the stdio transport until ctx is cancelled or the stream
// closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("mcp_server_starting", "transport", "stdio")
	stdio := server.NewStdioServer(s.mcpServer)
	return stdio.Listen(ctx, in, out)
}

func (s *Server) registerTools() {
	determineDomain := mcp.NewTool("determine-domain",
		mcp.WithDescription("Classify a free-text question into a documentation domain (react-docs, node-docs, python-docs or general) with a confidence level."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The question to classify"),
		),
	)
	s.mcpServer.AddTool(determineDomain, s.instrument("determine-domain", s.handleDetermineDomain))

	extractTopics := mcp.NewTool("extract-topics",
		mcp.WithDescription("Extract ordered topic labels from a question within a documentation domain. Quoted terms in the question become topics too."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The question to extract topics from"),
		),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("The documentation domain, e.g. react-docs"),
		),
	)
	s.mcpServer.AddTool(extractTopics, s.instrument("extract-topics", s.handleExtractTopics))

	fetchDocumentation := mcp.NewTool("fetch-documentation",
		mcp.WithDescription("Classify the question, pick the most specific documentation URL and fetch its content. Falls back to the domain's base documentation when no specific page matches."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The documentation question"),
		),
		mcp.WithString("domain",
			mcp.Description("Optional domain override; skips classification when set"),
		),
	)
	s.mcpServer.AddTool(fetchDocumentation, s.instrument("fetch-documentation", s.handleFetchDocumentation))
}

// instrument wraps a tool handler with request correlation, logging and
// metrics.
func (s *Server) instrument(tool string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		requestID := uuid.NewString()
		logger := s.logger.With("tool", tool, "request_id", requestID)

		s.metrics.StartToolCall()
		start := time.Now()

		result, err := next(ctx, request)

		duration := time.Since(start)
		isError := err != nil || (result != nil && result.IsError)
		s.metrics.FinishToolCall(serviceName, tool, duration, isError)

		if err != nil {
			logger.Error("tool_call_failed", "duration", duration.String(), "error", err)
			return result, err
		}
		logger.Info("tool_call_done", "duration", duration.String(), "is_error", isError)
		return result, nil
	}
}
