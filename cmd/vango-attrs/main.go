package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/attrs/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, true))
}

// run executes the CLI and returns the process exit code: 0 on success,
// 2 when the requested element has no attributes, 1 otherwise.
func run(args []string, stdout, stderr io.Writer, color bool) int {
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	errors.Fprint(stderr, errors.FromError(err, "A103"), color)
	if errors.HasCode(err, "A102") {
		return 2
	}
	return 1
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vango-attrs",
		Short: "Build and render HTML attribute strings",
		Long: `vango-attrs drives the attribute engine from the shell.

Operations are applied to a fresh store in the order they appear on the
command line, then each element alias is rendered. Useful for checking
how merges, overwrites and removals combine before wiring them into a
template.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		renderCmd(),
		versionCmd(),
	)

	return cmd
}
