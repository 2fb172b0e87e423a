// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes openapi-diff capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	openapidiff "github.com/fresha/openapi-diff"
	"github.com/fresha/openapi-diff/internal/config"
)

const serverInstructions = `openapi-diff MCP server: compares two versions of an OpenAPI 3 document and proposes the next semantic version.

Configuration: defaults come from OPENAPI_DIFF_* environment variables set in your MCP client config.

Key settings:
- OPENAPI_DIFF_CACHE_ENABLED (default: true): cache parsed specs for the session
- OPENAPI_DIFF_CACHE_MAX_SIZE (default: 16): number of cached specs
- OPENAPI_DIFF_CACHE_TTL (default: 15m): lifetime of a cached spec
- OPENAPI_DIFF_MAX_INLINE_SIZE (default: 10MiB): largest accepted inline content

Caching: file entries use path+mtime as key (auto-invalidated on change); inline content is keyed by its hash.`

// Server holds the tool handlers and their parse cache.
type Server struct {
	cfg   *config.Config
	cache *specCache
}

// New creates a Server. A nil cfg uses config.FromEnvironment.
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.FromEnvironment()
	}
	s := &Server{cfg: cfg}
	if cfg.CacheEnabled {
		s.cache = newSpecCache(cfg.CacheMaxSize, cfg.CacheTTL)
	}
	return s
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	return New(cfg).Run(ctx)
}

// Run serves the tools over stdio.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer().Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) mcpServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "openapi-diff", Version: openapidiff.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	s.registerTools(server)
	return server
}

func (s *Server) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare two versions of the same OpenAPI 3 document. Every difference is reported with a JSON pointer, a severity (major, minor or patch) and a message. Returns the counts per severity, whether the revision's info.version is outdated and the proposed next version. Both documents must carry the same info x-id.",
	}, s.handleDiff)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI 3 document. Returns a structural summary: title, info.version, x-id, OpenAPI version, path/operation/schema counts and parse warnings.",
	}, s.handleParse)
}

// pathPattern matches absolute filesystem paths in error messages so they are
// not leaked to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
