package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/carvekit/carve/internal/output"
	"github.com/carvekit/carve/pkg/extract"
	"github.com/carvekit/carve/pkg/models"
	"github.com/carvekit/carve/pkg/source"
)

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Aliases:   []string{"x"},
		Usage:     "Extract a named function or class and its dependencies",
		ArgsUsage: "<source_path> <symbol>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rev",
				Usage: "Read the file from a git revision instead of the working tree",
			},
		},
		Action: runExtractCmd,
	}
}

func runExtractCmd(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("usage: carve extract <source_path> <symbol>", 1)
	}
	path := c.Args().Get(0)
	symbol := c.Args().Get(1)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	var src source.ContentSource = source.NewFilesystem()
	if rev := c.String("rev"); rev != "" {
		src = source.NewGit(rev)
	}

	extractor := extract.New()
	defer extractor.Close()

	result, err := extractor.Extract(src, path, symbol)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(formatName(c, cfg)), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	return formatter.Output(&extractionView{result})
}

// extractionView renders an extraction result.
type extractionView struct {
	result *models.Extraction
}

func (v *extractionView) RenderData() any {
	return v.result
}

func (v *extractionView) RenderText(w io.Writer, colored bool) error {
	heading := func(format string, args ...any) {
		if colored {
			color.New(color.FgCyan, color.Bold).Fprintf(w, format+"\n", args...)
		} else {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}

	heading("Defined names:")
	for _, name := range v.result.Symbols.Defined {
		fmt.Fprintf(w, "  %s\n", name)
	}

	heading("Imports:")
	for _, name := range v.result.Symbols.Imports {
		fmt.Fprintf(w, "  %s\n", name)
	}

	heading("Dependencies:")
	for _, name := range v.result.Snippet.Dependencies {
		fmt.Fprintf(w, "  %s\n", name)
	}

	s := v.result.Snippet
	heading("%s:%d-%d (%s %s)", s.File, s.StartLine, s.EndLine, s.Kind, s.Symbol)
	for _, line := range s.Content {
		fmt.Fprintln(w, line)
	}
	return nil
}

func (v *extractionView) RenderMarkdown(w io.Writer) error {
	s := v.result.Snippet
	fmt.Fprintf(w, "## %s (%s)\n\n", s.Symbol, s.Kind)
	fmt.Fprintf(w, "`%s:%d-%d`\n\n", s.File, s.StartLine, s.EndLine)

	fmt.Fprintln(w, "```")
	for _, line := range s.Content {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "```")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "### Dependencies")
	fmt.Fprintln(w)
	for _, name := range s.Dependencies {
		fmt.Fprintf(w, "- %s\n", name)
	}
	fmt.Fprintln(w)
	return nil
}
