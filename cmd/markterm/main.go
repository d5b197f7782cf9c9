// Command markterm renders a Markdown file to the terminal.
//
// Usage:
//
//	markterm <path> [flags]
//
// Flags:
//
//	--wrap int           Fixed width to wrap content (defaults to terminal width)
//	--theme string       Syntax highlighting theme for code blocks (default: monokai)
//	--style string       Base style: auto, dark, light, notty, ascii, dracula, pink, tokyo-night (default: auto)
//	--pager              Page the output when stdout is a terminal
//	--list-themes        List syntax highlighting themes and exit
//	--log-level string   Log level: debug, info, warn, error (default: warn)
//
// The path may be a glob pattern such as 'docs/**/*.md'. MARKTERM_THEME,
// MARKTERM_STYLE and MARKTERM_LOG_LEVEL set the flag defaults.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/markterm"
	"github.com/fwojciec/markterm/chroma"
	"github.com/fwojciec/markterm/glamour"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// execute runs the command line and maps the outcome to an exit code.
// Every error is reported once, on stderr.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	cmd := newRootCommand(stdout, stderr, getenv)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return markterm.ExitError
	}
	return markterm.ExitSuccess
}

func newRootCommand(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	cfg := loadConfig(getenv)

	cmd := &cobra.Command{
		Use:           "markterm <path>",
		Short:         "Render a Markdown file in the terminal with syntax highlighting.",
		Example:       "  markterm README.md --wrap 100 --theme monokai",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			return checkArgs(cmd, args, cfg.listThemes)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(stderr, cfg.logLevel)
			if err != nil {
				return err
			}
			ctx := logger.WithContext(cmd.Context())

			if cfg.listThemes {
				return listThemes(stdout)
			}
			return run(ctx, cfg.options(cmd, args[0]), glamour.New(), stdout, getenv)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cfg.bind(cmd)
	return cmd
}

func checkArgs(cmd *cobra.Command, args []string, listThemes bool) error {
	switch {
	case listThemes:
		return nil
	case len(args) == 0:
		return fmt.Errorf("missing file path (usage: %s)", cmd.UseLine())
	case len(args) > 1:
		return fmt.Errorf("expected one file path, got %d (usage: %s)", len(args), cmd.UseLine())
	}
	return nil
}

func listThemes(w io.Writer) error {
	for _, name := range chroma.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func printError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(markterm.DefaultPalette().Error))).
		Bold(true)
	fmt.Fprintln(w, style.Render("Error: "+err.Error()))
}
