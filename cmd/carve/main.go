package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/carvekit/carve/pkg/config"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func main() {
	app := &cli.App{
		Name:    "carve",
		Usage:   "Extract a function or class from a source file",
		Version: version,
		Description: `Carve locates a named function or class in a source file, prints its
exact lines, and lists the other in-file names (definitions and imports)
that occur inside it.

Supports: Python, Go, JavaScript, TypeScript, Ruby, Java`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"CARVE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, markdown, toon",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
		},
		Commands: []*cli.Command{
			extractCmd(),
			symbolsCmd(),
			watchCmd(),
			initCmd(),
			mcpCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: the --config file when given,
// otherwise the standard search locations.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

// formatName resolves the output format: the --format flag when given,
// otherwise the configured default.
func formatName(c *cli.Context, cfg *config.Config) string {
	if f := c.String("format"); f != "" {
		return f
	}
	return cfg.Output.Format
}
