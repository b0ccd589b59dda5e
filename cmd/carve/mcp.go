package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/carvekit/carve/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes carve's
extraction tools for LLMs to invoke.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "carve": {
        "command": "carve",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - extract_symbol   Extract a named function or class with dependencies
  - list_symbols     List defined names and imports in a file`,
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	server := mcpserver.NewServer(version)
	return server.Run(context.Background())
}
