package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/internal/errors"
	"github.com/vango-dev/vtl/pkg/dom"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if ve, ok := err.(*errors.VtlError); ok {
			fmt.Fprint(os.Stderr, ve.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "vtl",
		Short: "Testing utilities for Vango components",
		Long: `vtl renders Vango components into a simulated DOM and queries
the result the way a user would find things on the page.

The CLI inspects HTML with the same queries and printer the
library uses, and runs go test with vtl settings applied.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				vtl.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		debugCmd(),
		queryCmd(),
		testCmd(),
		versionCmd(),
	)

	return rootCmd
}

// readDocument parses the named file, or stdin for "" and "-".
func readDocument(cmd *cobra.Command, name string) (*dom.Document, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.New("X001").WithMessagef("cannot open %s", name).Wrap(err)
		}
		defer f.Close()
		r = f
	}
	doc, err := dom.ParseDocument(r)
	if err != nil {
		return nil, errors.New("X001").WithMessagef("cannot parse %s", name).Wrap(err)
	}
	return doc, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
