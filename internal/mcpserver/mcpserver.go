package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers the carve extraction tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all carve tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "carve",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds the extraction tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_symbol",
		Description: describeExtract(),
	}, handleExtractSymbol)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_symbols",
		Description: describeListSymbols(),
	}, handleListSymbols)
}

func describeExtract() string {
	return "Extract the source text of a named function or class from a file. " +
		"Returns the definition's exact line span, its verbatim lines, and the " +
		"other in-file names (definitions and imports) that textually occur " +
		"inside it. The occurrence check is substring-based, not semantic."
}

func describeListSymbols() string {
	return "List every function and class defined in a source file, plus its " +
		"import names, without extracting anything."
}
