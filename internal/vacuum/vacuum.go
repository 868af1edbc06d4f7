// Package vacuum prunes old runs from the run log. This is the only way to
// shrink ~/.pathoracle/log/runs.db; runs stay until vacuum removes them.
package vacuum

import (
	"fmt"
	"io"
	"time"

	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/jpl-au/pathoracle/internal/progress"
)

// Options configures vacuum scope.
type Options struct {
	OlderThan *time.Duration // keep runs newer than this; nil prunes everything
	DryRun    bool           // count without deleting
}

// Result reports what was (or would be) deleted.
type Result struct {
	Deleted int64 `json:"deleted"`
	DryRun  bool  `json:"dry_run,omitempty"`
}

// Run prunes the run log, which must already be open. This operation is
// irreversible; use DryRun first to preview how many runs go.
func Run(w io.Writer, opts Options) (Result, error) {
	result := Result{DryRun: opts.DryRun}

	if opts.DryRun {
		n, err := log.Count(opts.OlderThan)
		if err != nil {
			return result, err
		}
		result.Deleted = n
		if n == 0 {
			fmt.Fprintln(w, "No runs to vacuum")
		} else {
			fmt.Fprintf(w, "Would delete %d run(s)\n", n)
		}
		return result, nil
	}

	spin := progress.NewSpinner("Vacuuming")
	spin.Start()
	n, err := log.Prune(opts.OlderThan)
	spin.Stop()
	if err != nil {
		return result, err
	}

	result.Deleted = n
	if n == 0 {
		fmt.Fprintln(w, "No runs to vacuum")
	} else {
		fmt.Fprintf(w, "Vacuumed %d run(s)\n", n)
	}
	return result, nil
}
