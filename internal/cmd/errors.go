package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"castrec/internal/castrecerr"
	"castrec/internal/reclock"
)

// exitCodeFor maps an error returned from a subcommand to a process
// exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, castrecerr.ErrInterrupted) {
		return 130
	}
	var lockErr *reclock.LockError
	if errors.As(err, &lockErr) {
		return 1
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

// usageError marks a bad-invocation error (missing/invalid arguments),
// distinct from an operational failure.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func newUsageError(msg string) error { return &usageError{msg: msg} }

// exactArgs is cobra.ExactArgs with the failure typed as a usage error
// so it exits 2 instead of 1.
func exactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

// minimumArgs is cobra.MinimumNArgs with the failure typed as a usage
// error so it exits 2 instead of 1.
func minimumArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.MinimumNArgs(n))
}

func usageArgs(inner cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := inner(cmd, args); err != nil {
			return newUsageError(err.Error())
		}
		return nil
	}
}
