// history.go implements "pathoracle history" for viewing recorded runs.
//
// Design: the run log is opt-in. When history is disabled the command says
// how to enable it instead of printing an empty list, so a missing log is
// never mistaken for "no runs".

package cmd

import (
	"fmt"
	"time"

	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Lists recent runs, newest first. Working directories are stored as hashes.

Recording is off by default. Enable it with:

  pathoracle config history.enabled true`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(c *cobra.Command, _ []string) error {
	if historyLimit <= 0 {
		return PrintJSONError(c, fmt.Errorf("limit must be > 0, got %d", historyLimit))
	}
	if !cfg.HistoryEnabled() {
		if JSON() {
			return PrintJSON([]log.Entry{})
		}
		fmt.Fprintln(Out(), "history is disabled; enable it with: pathoracle config history.enabled true")
		return nil
	}

	entries, err := log.Recent(historyLimit)
	if err != nil {
		return PrintJSONError(c, fmt.Errorf("history: %w", err))
	}
	if JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return PrintJSON(entries)
	}

	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "error: " + e.Error
		}
		fmt.Fprintf(Out(), "%s  %-12s %-7s %3d cases  %s\n",
			time.Unix(e.Start, 0).Format(time.DateTime), e.Source, e.Dialect, e.Cases, status)
	}
	return nil
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
