package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"castrec/internal/reclock"
)

// printLockHint writes a styled "force unlock?" suggestion to stderr
// when err is a *reclock.LockError. Color is only emitted when stderr
// is a real terminal; termenv.NewOutput degrades to plain text
// otherwise, so this is always safe to call.
func printLockHint(err error) {
	var lockErr *reclock.LockError
	if !errors.As(err, &lockErr) {
		return
	}
	out := termenv.NewOutput(os.Stderr)
	hint := fmt.Sprintf("hint: pid %d still holds %s.lock; if that process is gone, remove the .lock file and retry", lockErr.Info.Pid, lockErr.Path)
	fmt.Fprintln(os.Stderr, out.String(hint).Foreground(out.Color("3")))
}
