package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/carvekit/carve/internal/output"
	"github.com/carvekit/carve/pkg/extract"
	"github.com/carvekit/carve/pkg/watch"
)

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Watch a source file and re-extract a symbol on change",
		ArgsUsage: "<source_path> <symbol>",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "debounce",
				Usage: "Debounce duration (default from config)",
			},
		},
		Action: runWatchCmd,
	}
}

func runWatchCmd(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("usage: carve watch <source_path> <symbol>", 1)
	}
	path := c.Args().Get(0)
	symbol := c.Args().Get(1)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	debounce := c.Duration("debounce")
	if debounce <= 0 {
		debounce = time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	}

	watcher, err := watch.NewWatcher(path, debounce)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	format := output.ParseFormat(formatName(c, cfg))

	runOnce := func(changedPath string) {
		extractor := extract.New()
		defer extractor.Close()

		result, err := extractor.ExtractFile(changedPath, symbol)
		if err != nil {
			color.Red("Extract error: %v", err)
			return
		}

		formatter, err := output.NewFormatter(format, "", cfg.Output.Color)
		if err != nil {
			color.Red("Output error: %v", err)
			return
		}
		defer formatter.Close()

		if err := formatter.Output(&extractionView{result}); err != nil {
			color.Red("Output error: %v", err)
		}
	}

	watcher.SetCallback(runOnce)

	// Show the current state before the first change.
	runOnce(path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nStopping watch...")
		cancel()
	}()

	return watcher.Start(ctx)
}
