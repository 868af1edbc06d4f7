// check.go implements "pathoracle check": evaluate a suite and compare each
// result with its recorded value.
//
// Terminal output gets a coloured diff; pipes and --no-colour get plain text.
// A failed check exits 1.

package cmd

import (
	"fmt"
	"os"

	"github.com/jpl-au/pathoracle/internal/format"
	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/jpl-au/pathoracle/internal/oracle"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var noColour bool

var checkCmd = &cobra.Command{
	Use:   "check [suite.yaml]",
	Short: "Compare results with recorded values",
	Long: `Evaluates a suite and compares every result with its recorded value.

  pathoracle check                      # built-in suite of the configured dialect
  pathoracle check suite.yaml           # your own suite
  pathoracle check --cwd /srv/project   # pin the working directory

Cases whose result depends on the working directory are skipped unless the
suite sets cwd or --cwd is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(c *cobra.Command, args []string) error {
	file := ""
	if len(args) > 0 {
		file = args[0]
	}
	l := log.Event("cli:check", "check").Detail("suite", file)

	s, err := loadSuite(file)
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}
	env, err := Env()
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}
	if cwdFlag != "" {
		s.Cwd = env.Cwd
	}

	res, err := oracle.Check(env, s)
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}

	var failed error
	if !res.OK() {
		failed = fmt.Errorf("%d of %d cases failed", res.Failed, len(res.Verdicts))
	}
	l.Dialect(res.Dialect).Cwd(res.Cwd).Cases(len(res.Verdicts)).Failed(res.Failed).Write(failed)

	if JSON() {
		if err := PrintJSON(res); err != nil {
			return err
		}
		if failed != nil {
			c.SilenceErrors = true
		}
		return failed
	}

	if err := format.Verdicts(Out(), res); err != nil {
		return err
	}
	if d := res.Format(colour()); d != "" {
		fmt.Fprint(Out(), "\n"+d)
	}
	return failed
}

// colour reports whether diff output should carry ANSI colours.
func colour() bool {
	return !noColour && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	checkCmd.Flags().BoolVar(&noColour, "no-colour", false, "Disable coloured diff output")
	rootCmd.AddCommand(checkCmd)
}
