// Package cmd wires the CLI surface: record, analyze, marker
// add/list, and copy each get one subcommand, each a thin adapter over
// the corresponding internal package. PersistentPreRunE resolves the
// config directory once; subcommands are registered in NewRootCmd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"castrec/internal/config"
	"castrec/internal/version"
)

// NewRootCmd constructs the castrec root command and its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "castrec",
		Short:         "Record and analyze AI coding agent terminal sessions",
		Version:       version.DisplayVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir := config.ConfigDir()
			return os.MkdirAll(dir, 0o755)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(err.Error())
	})

	root.AddCommand(
		newRecordCmd(),
		newAnalyzeCmd(),
		newMarkerCmd(),
		newCopyCmd(),
	)
	return root
}

// Execute runs the CLI, returning a process exit code: 0 success,
// 1 operational error, 2 bad usage, 130 interrupted.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "castrec:", err)
		printLockHint(err)
		return exitCodeFor(err)
	}
	return 0
}
