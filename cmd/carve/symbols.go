package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/carvekit/carve/internal/output"
	"github.com/carvekit/carve/pkg/extract"
	"github.com/carvekit/carve/pkg/source"
)

func symbolsCmd() *cli.Command {
	return &cli.Command{
		Name:      "symbols",
		Aliases:   []string{"ls"},
		Usage:     "List defined names and imports in a source file",
		ArgsUsage: "<source_path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rev",
				Usage: "Read the file from a git revision instead of the working tree",
			},
		},
		Action: runSymbolsCmd,
	}
}

func runSymbolsCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return cli.Exit("usage: carve symbols <source_path>", 1)
	}
	path := c.Args().Get(0)

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

	table, err := extractor.Symbols(src, path)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(formatName(c, cfg)), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, name := range table.Defined {
		rows = append(rows, []string{name, "defined"})
	}
	for _, name := range table.Imports {
		rows = append(rows, []string{name, "import"})
	}

	view := output.NewTable(
		fmt.Sprintf("Symbols in %s", path),
		[]string{"Name", "Kind"},
		rows,
		[]string{
			fmt.Sprintf("Defined: %d", len(table.Defined)),
			fmt.Sprintf("Imports: %d", len(table.Imports)),
		},
		table,
	)

	return formatter.Output(view)
}
