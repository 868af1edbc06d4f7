// eval.go implements "pathoracle eval" for a single call.

package cmd

import (
	"fmt"

	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/jpl-au/pathoracle/internal/oracle"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <op> [args...]",
	Short: "Evaluate one path operation",
	Long: `Evaluates one operation and prints its report line.

  pathoracle eval dirname a/b/               # path.dirname("a/b/"): 'a/b'
  pathoracle eval relative ../.. a          # base, target: path.relpath("a","../..")
  pathoracle eval join a /b

Operations: ` + fmt.Sprint(dialect.Ops()),
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func runEval(c *cobra.Command, args []string) error {
	l := log.Event("cli:eval", "eval").Detail("op", args[0])

	op, err := dialect.ParseOp(args[0])
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}
	d, err := dialect.Get(DialectName())
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}
	env, err := Env()
	if err != nil {
		l.Write(err)
		return PrintJSONError(c, err)
	}

	r, err := oracle.Evaluate(d, env, oracle.Case{Op: op, Args: args[1:]})
	l.Dialect(d.Name()).Cwd(env.Cwd).Cases(1).Write(err)
	if err != nil {
		return PrintJSONError(c, err)
	}

	if JSON() {
		return PrintJSON(map[string]string{
			"dialect": d.Name(),
			"label":   r.Label,
			"value":   r.Value,
			"line":    r.Line(),
		})
	}
	fmt.Fprintln(Out(), r.Line())
	return nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
