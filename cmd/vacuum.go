// vacuum.go implements "pathoracle vacuum" for pruning the run log.
//
// Design: vacuum opens the run log itself so old runs can be pruned after
// history has been switched off, but only records its own run while history
// is enabled. A missing database means there is nothing to prune, and it is
// never created just to be emptied.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jpl-au/pathoracle/internal/duration"
	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/jpl-au/pathoracle/internal/vacuum"
	"github.com/spf13/cobra"
)

var (
	vacuumOlderThan string
	vacuumDryRun    bool
	vacuumForce     bool
)

var vacuumCmd = &cobra.Command{
	Use:   "vacuum",
	Short: "Permanently delete recorded runs",
	Long: `Permanently delete runs from the run log.

This is irreversible. Use --force to skip confirmation.

Duration formats: 7d (days), 4w (weeks), 3m (months)`,
	Args: cobra.NoArgs,
	RunE: runVacuum,
}

func runVacuum(c *cobra.Command, _ []string) error {
	var opts vacuum.Options
	opts.DryRun = vacuumDryRun
	if vacuumOlderThan != "" {
		d, err := duration.Parse(vacuumOlderThan)
		if err != nil {
			return PrintJSONError(c, fmt.Errorf("parse duration %q: %w", vacuumOlderThan, err))
		}
		opts.OlderThan = &d
	}

	if _, err := os.Stat(log.DBPath()); errors.Is(err, fs.ErrNotExist) {
		if JSON() {
			return PrintJSON(vacuum.Result{DryRun: opts.DryRun})
		}
		fmt.Fprintln(Out(), "No runs to vacuum")
		return nil
	}
	if err := log.Open(); err != nil {
		return PrintJSONError(c, fmt.Errorf("open run log: %w", err))
	}

	if !opts.DryRun && !vacuumForce && !JSON() {
		fmt.Fprint(Out(), "Permanently delete recorded runs? This cannot be undone. [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			return PrintJSONError(c, fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(Out(), "Cancelled")
			return nil
		}
	}

	w := Out()
	if JSON() {
		w = &strings.Builder{}
	}
	result, err := vacuum.Run(w, opts)
	if cfg.HistoryEnabled() {
		log.Event("cli:vacuum", "vacuum").
			Detail("dry_run", opts.DryRun).
			Detail("count", result.Deleted).
			Write(err)
	}
	if err != nil {
		return PrintJSONError(c, fmt.Errorf("vacuum: %w", err))
	}
	if JSON() {
		return PrintJSON(result)
	}
	return nil
}

func init() {
	vacuumCmd.Flags().StringVar(&vacuumOlderThan, "older-than", "", "Only delete runs older than duration (e.g., 7d, 4w, 3m)")
	vacuumCmd.Flags().BoolVarP(&vacuumDryRun, "dry-run", "n", false, "Show how many runs would be deleted")
	vacuumCmd.Flags().BoolVarP(&vacuumForce, "force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(vacuumCmd)
}
