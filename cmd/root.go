/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: running pathoracle with no subcommand prints the report of the
// configured dialect. PersistentPreRunE loads config once and opens the run
// log only when history is enabled, so by default a run writes nothing but
// its report.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/pathoracle/internal/config"
	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathoracle",
	Short: "Print how path libraries behave on edge cases",
	Long: `Evaluates path operations (normalize, dirname, basename, relative, join, ...)
against hand-picked edge cases and prints one "label: 'value'" line per call.

With no subcommand the report of the configured dialect is printed.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	RunE:              runReport,
	PersistentPreRunE: setup,
}

// setup validates global flags, loads config and opens the run log when
// history is enabled.
func setup(c *cobra.Command, _ []string) error {
	if output != "" && !slices.Contains(validOutputFormats, output) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
	}
	if dialectFlag != "" {
		if _, err := dialect.Get(dialectFlag); err != nil {
			return PrintJSONError(c, err)
		}
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		loaded = &config.Config{}
	}
	cfg = loaded

	if cfg.HistoryEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: run log unavailable: %v\n", err)
		}
	}
	return nil
}

// Execute runs the root command and handles process lifecycle.
// Exit code 1 indicates error.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
