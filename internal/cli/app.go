// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface for droplist.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/janderssonse/droplist/internal/config"
	"github.com/janderssonse/droplist/internal/console"
	"github.com/janderssonse/droplist/internal/tui"
)

// Exit codes follow standard Unix conventions for better scripting support.
// Range 0-125 are safe to use (126+ have special meaning in shells).
const (
	ExitSuccess        = 0  // Operation completed successfully
	ExitGeneralError   = 1  // Generic failure (catch-all)
	ExitUsageError     = 2  // Invalid command line usage
	ExitConfigError    = 3  // Catalog or configuration file error
	ExitSystemError    = 12 // System call failed (lock, filesystem)
	ExitInterruptError = 14 // User interrupted (Ctrl+C)
)

// Version is overridden at build time via -ldflags.
var Version = "dev" //nolint:gochecknoglobals

// ExitError carries a Unix exit code alongside the error message so
// main can translate failures into process status without string matching.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// CLI wires flags, commands, and the interactive demo together.
type CLI struct {
	app     *cli.Command
	verbose bool
	json    bool
	plain   bool
	catalog string
}

// NewCLI creates the droplist command tree.
func NewCLI() *CLI {
	app := &CLI{}

	app.app = &cli.Command{
		Name:    "droplist",
		Usage:   "Interactive dropdown selection widgets for the terminal",
		Version: Version,
		Suggest: true,
		Description: `Runs a two-widget demo: pick districts in the first dropdown and
areas grouped by district in the second. Narrowing the district
selection prunes orphaned area selections automatically.

QUICK START:
  droplist                          # Launch the interactive demo
  droplist --catalog my.toml        # Use a custom district/area catalog
  droplist version                  # Show version information`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages to stderr",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.StringFlag{
				Name:        "catalog",
				Usage:       "path to a TOML catalog of districts and areas",
				Aliases:     []string{"c"},
				Destination: &app.catalog,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return app.initConfig(ctx, cmd)
		},
		Action: app.defaultAction,
		Commands: []*cli.Command{
			app.createVersionCommand(),
		},
	}

	return app
}

// App returns the root command for execution by main.
func App() *cli.Command {
	app := NewCLI()

	return app.app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	console.DefaultOutput.SetMode(app.verbose, app.json, app.plain)

	return ctx, nil
}

// defaultAction launches the interactive demo. It refuses to start
// without a terminal so piped invocations fail fast instead of
// emitting escape sequences into the pipe.
func (app *CLI) defaultAction(ctx context.Context, _ *cli.Command) error {
	if !console.DefaultOutput.IsTTY(os.Stdout.Fd()) {
		return NewExitError(ExitGeneralError, "interactive demo requires a terminal", tui.ErrNoTerminal)
	}

	catalog, err := config.LoadCatalogOrDefault(app.catalog)
	if err != nil {
		return NewExitError(ExitConfigError, fmt.Sprintf("failed to load catalog: %v", err), err)
	}

	if err := tui.NewApp(catalog).Run(ctx); err != nil {
		if app.verbose {
			return NewExitError(ExitGeneralError, fmt.Sprintf("failed to run demo: %v", err), err)
		}

		return NewExitError(ExitGeneralError, "failed to run interactive demo", err)
	}

	return nil
}

func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			switch {
			case app.json:
				console.DefaultOutput.JSONResult("success", map[string]any{
					"version": Version,
				})
			case app.plain:
				console.DefaultOutput.PlainValue(Version)
			default:
				console.DefaultOutput.Result(fmt.Sprintf("droplist %s", Version))
			}

			return nil
		},
	}
}
