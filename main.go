package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"hstin/csvgrid/internal/cli"
	"hstin/csvgrid/internal/render"
)

func main() {
	if err := run(os.Stderr, os.Args); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args (including the program name) and renders the image.
// Logs and usage go to errW.
func run(errW io.Writer, args []string) error {
	cfg, err := cli.Parse(args[0], args[1:], errW)
	if errors.Is(err, cli.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(errW, cfg.Verbose)

	_, err = render.Generate(cfg, logger)
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
