// compare.go implements "pathoracle compare": every case of every built-in
// suite evaluated in several dialects side by side.
//
// Design: the matrix is built as markdown. Terminal output gets glamour
// rendering; pipes and --raw get the markdown itself so it can be pasted into
// an issue or a README.

package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/jpl-au/pathoracle/internal/format"
	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/jpl-au/pathoracle/internal/oracle"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	compareDialects []string
	compareRaw      bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [suite.yaml]",
	Short: "Compare dialects side by side",
	Long: `Evaluates each case in several dialects and prints a table.
Rows where the libraries disagree are marked with ≠.

  pathoracle compare                          # all dialects, all built-in cases
  pathoracle compare --dialects python,node   # a subset
  pathoracle compare cases.yaml               # your own cases
  pathoracle compare --raw > matrix.md        # plain markdown`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func runCompare(c *cobra.Command, args []string) error {
	l := log.Event("cli:compare", "compare")

	env, err := Env()
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}

	var cases []oracle.Case
	if len(args) > 0 {
		s, err := loadSuite(args[0])
		if err != nil {
			l.Write(err)
			return PrintJSONError(c, err)
		}
		cases = s.Cases
		if s.Cwd != "" && cwdFlag == "" {
			env.Cwd = s.Cwd
		}
		l.Detail("suite", args[0])
	} else {
		cases, err = oracle.CompareCases()
		if err != nil {
			l.Write(err)
			return PrintJSONError(c, err)
		}
	}

	names := compareDialects
	if len(names) == 0 {
		names = dialect.Names()
	}
	rows, err := oracle.Compare(names, env, cases)
	l.Cwd(env.Cwd).Cases(len(rows)).Detail("dialects", names).Write(err)
	if err != nil {
		return PrintJSONError(c, err)
	}

	if JSON() {
		return PrintJSON(map[string]any{
			"dialects": names,
			"cwd":      env.Cwd,
			"rows":     rows,
		})
	}

	var md bytes.Buffer
	if err := format.Matrix(&md, names, rows); err != nil {
		return err
	}
	if !compareRaw && term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(md.String(), "dark")
		if err == nil {
			fmt.Fprint(Out(), rendered)
			return nil
		}
	}
	_, err = Out().Write(md.Bytes())
	return err
}

func init() {
	compareCmd.Flags().StringSliceVar(&compareDialects, "dialects", nil, "Dialects to compare (default: all)")
	compareCmd.Flags().BoolVar(&compareRaw, "raw", false, "Print markdown without terminal rendering")
	_ = compareCmd.RegisterFlagCompletionFunc("dialects", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(compareCmd)
}
