package main

import (
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vtl/internal/config"
)

func testCmd() *cobra.Command {
	var (
		coverage      bool
		verbose       bool
		race          bool
		noAutoCleanup bool
		printLimit    int
	)

	cmd := &cobra.Command{
		Use:   "test [packages...]",
		Short: "Run tests",
		Long: `Run go test with vtl settings applied.

This is a wrapper around 'go test'. Flags that change vtl
behaviour are passed to the test binary as environment variables.

Examples:
  vtl test
  vtl test ./components/...
  vtl test --no-auto-cleanup
  vtl test --print-limit 20000 -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg, err := config.Resolve(); err != nil {
				warn(cmd.ErrOrStderr(), "ignoring configuration: %v", err)
			} else if p := cfg.Path(); p != "" {
				success(cmd.ErrOrStderr(), "using %s", p)
			}

			env := os.Environ()
			if noAutoCleanup {
				env = append(env, config.EnvSkipAutoCleanup+"=true")
			}
			if printLimit > 0 {
				env = append(env, config.EnvDebugPrintLimit+"="+strconv.Itoa(printLimit))
			}

			run := exec.CommandContext(cmd.Context(), "go", goTestArgs(args, verbose, coverage, race)...)
			run.Env = env
			run.Stdout = cmd.OutOrStdout()
			run.Stderr = cmd.ErrOrStderr()
			run.Stdin = cmd.InOrStdin()
			return run.Run()
		},
	}

	cmd.Flags().BoolVarP(&coverage, "coverage", "c", false, "Show coverage report")
	cmd.Flags().BoolVarP(&verbose, "verbose-tests", "v", false, "Pass -v to go test")
	cmd.Flags().BoolVar(&race, "race", false, "Enable race detector")
	cmd.Flags().BoolVar(&noAutoCleanup, "no-auto-cleanup", false, "Keep mounts alive after each test ("+config.EnvSkipAutoCleanup+")")
	cmd.Flags().IntVar(&printLimit, "print-limit", 0, "Characters printed by Debug and query errors ("+config.EnvDebugPrintLimit+")")

	return cmd
}

// goTestArgs builds the go test argument list. Packages default to ./...
func goTestArgs(packages []string, verbose, coverage, race bool) []string {
	if len(packages) == 0 {
		packages = []string{"./..."}
	}

	args := []string{"test"}
	if verbose {
		args = append(args, "-v")
	}
	if coverage {
		args = append(args, "-cover")
	}
	if race {
		args = append(args, "-race")
	}
	return append(args, packages...)
}
