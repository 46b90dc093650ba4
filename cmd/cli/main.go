package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/fragsplice/internal/app"
	"github.com/specialistvlad/fragsplice/internal/cli"
)

// main is the entrypoint for the fragsplice application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stderr, os.Args[1:]); err != nil {
		os.Exit(exitCode(os.Stderr, err))
	}
}

// exitCode prints err to errW unless the flag parser already did, and returns
// the process exit code for it.
func exitCode(errW io.Writer, err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Reported {
			fmt.Fprintln(errW, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(errW, err)
	return 1
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx := context.Background()
	fragspliceApp, err := app.NewApp(ctx, outW, appConfig)
	if err != nil {
		return err
	}
	return fragspliceApp.Run(ctx)
}
