package report

import (
	"fmt"
	"io"

	"github.com/willibrandon/pgprobe/internal/probe"
)

// Exit codes shared by every terminal path.
const (
	ExitSuccess = 0
	ExitFailure = -1
)

// Write maps a probe outcome onto the two output streams and returns the
// process exit code. Refused outcomes are the product a connectivity probe
// exists to deliver, so they go to stdout where calling scripts capture
// them; anything unexpected goes to stderr.
func Write(stdout, stderr io.Writer, o probe.Outcome) int {
	switch o.Kind {
	case probe.Success:
		return ExitSuccess
	case probe.Refused:
		fmt.Fprintf(stdout, "Error: %s\n", o.Message)
		return o.Code
	default:
		fmt.Fprintf(stderr, "Error: %s\n", o.Message)
		return ExitFailure
	}
}

// WriteError reports a failure that precedes any connect attempt, such as a
// malformed command line or unreadable configuration. These abort before
// network activity and are routed like unexpected errors.
func WriteError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %s\n", err)
	return ExitFailure
}
