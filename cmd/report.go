// report.go implements "pathoracle report", also the default command.

package cmd

import (
	"fmt"
	"os"

	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/jpl-au/pathoracle/internal/oracle"
	"github.com/spf13/cobra"
)

var (
	suiteFile string
	record    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the behaviour report for a dialect",
	Long: `Evaluates every case of a suite and prints one line per call:

  path.dirname("a/b/"): 'a/b'

  pathoracle report                          # built-in suite, configured dialect
  pathoracle report --dialect node           # node:path
  pathoracle report --cwd /home/user/project # pin the working directory
  pathoracle report --suite cases.yaml       # your own cases
  pathoracle report --record > suite.yaml    # save results as a checkable suite`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

// loadSuite returns the suite named by --suite, or the built-in suite of the
// selected dialect. --dialect overrides the dialect of a suite file.
func loadSuite(file string) (*oracle.Suite, error) {
	if file == "" {
		return oracle.Builtin(DialectName())
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open suite: %w", err)
	}
	defer f.Close()

	s, err := oracle.LoadSuite(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if dialectFlag != "" {
		s.Dialect = dialectFlag
	}
	return s, nil
}

func runReport(c *cobra.Command, _ []string) error {
	l := log.Event("cli:report", "report")

	env, err := Env()
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}
	s, err := loadSuite(suiteFile)
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}
	if suiteFile != "" && s.Cwd != "" && cwdFlag == "" {
		env.Cwd = s.Cwd
	}
	l.Dialect(s.Dialect).Cwd(env.Cwd)

	if record || JSON() {
		d, err := dialect.Get(s.Dialect)
		if err != nil {
			l.Write(err)
			return PrintJSONError(c, err)
		}
		results, runErr := oracle.Run(d, env, s.Cases)
		l.Cases(len(results)).Write(runErr)
		if runErr != nil {
			return PrintJSONError(c, runErr)
		}
		if record {
			return oracle.Record(s.Dialect, env, results).Encode(Out())
		}
		return PrintJSON(map[string]any{
			"dialect": s.Dialect,
			"cwd":     env.Cwd,
			"results": results,
		})
	}

	results, err := oracle.Report(Out(), env, s)
	l.Cases(len(results)).Write(err)
	return err
}

func init() {
	reportCmd.Flags().StringVar(&suiteFile, "suite", "", "YAML suite file (default: built-in suite)")
	reportCmd.Flags().BoolVar(&record, "record", false, "Write the results as a YAML suite with every value recorded")
	rootCmd.AddCommand(reportCmd)
}
