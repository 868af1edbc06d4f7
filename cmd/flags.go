/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: Flags are package-level variables bound to the root command. The
// working directory and dialect are resolved once here (flag, then config,
// then process) so every command evaluates against the same environment.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/pathoracle/internal/config"
	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/jpl-au/pathoracle/internal/workdir"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output      string
	dialectFlag string
	cwdFlag     string
)

// cfg is the configuration loaded by PersistentPreRunE.
var cfg = &config.Config{}

// out is the output writer for commands. Defaults to os.Stdout.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// DialectName returns the dialect to evaluate.
// Priority: --dialect flag > config > python.
func DialectName() string {
	if dialectFlag != "" {
		return dialectFlag
	}
	return cfg.DialectName()
}

// Env returns the evaluation environment.
// Working directory priority: --cwd flag > config cwd > process working directory.
func Env() (dialect.Env, error) {
	dir, err := workdir.Resolve(cwdFlag, cfg.Cwd)
	if err != nil {
		return dialect.Env{}, err
	}
	return dialect.Env{Cwd: dir}, nil
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns the original error so the exit status stays non-zero; in JSON mode
// cobra's own error line is silenced.
func PrintJSONError(c *cobra.Command, err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	c.SilenceErrors = true
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&dialectFlag, "dialect", "d", "", "Dialect: python, node, node-win32, go (default from config, else python)")
	rootCmd.PersistentFlags().StringVar(&cwdFlag, "cwd", "", "Working directory for cwd-dependent operations (default from config, else the process)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}
