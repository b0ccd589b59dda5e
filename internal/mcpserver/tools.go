package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/carvekit/carve/pkg/extract"
	"github.com/carvekit/carve/pkg/source"
)

// ExtractInput is the input for the extract_symbol tool.
type ExtractInput struct {
	Path   string `json:"path" jsonschema:"Path to the source file."`
	Symbol string `json:"symbol" jsonschema:"Name of the function or class to extract."`
	Rev    string `json:"rev,omitempty" jsonschema:"Git revision to read the file from instead of the working tree."`
}

// ListSymbolsInput is the input for the list_symbols tool.
type ListSymbolsInput struct {
	Path string `json:"path" jsonschema:"Path to the source file."`
	Rev  string `json:"rev,omitempty" jsonschema:"Git revision to read the file from instead of the working tree."`
}

func contentSource(rev string) source.ContentSource {
	if rev != "" {
		return source.NewGit(rev)
	}
	return source.NewFilesystem()
}

func toolResult(data any) (*mcp.CallToolResult, any, error) {
	out, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(out)},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

func handleExtractSymbol(ctx context.Context, req *mcp.CallToolRequest, input ExtractInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" || input.Symbol == "" {
		return toolError("path and symbol are required")
	}

	extractor := extract.New()
	defer extractor.Close()

	result, err := extractor.Extract(contentSource(input.Rev), input.Path, input.Symbol)
	if err != nil {
		return toolError(err.Error())
	}

	return toolResult(result)
}

func handleListSymbols(ctx context.Context, req *mcp.CallToolRequest, input ListSymbolsInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" {
		return toolError("path is required")
	}

	extractor := extract.New()
	defer extractor.Close()

	table, err := extractor.Symbols(contentSource(input.Rev), input.Path)
	if err != nil {
		return toolError(err.Error())
	}

	return toolResult(table)
}
