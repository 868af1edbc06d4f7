// report.go implements the reporter: evaluate each case in order and write
// one line per case.
//
// Design: evaluation and formatting are split so JSON output, checks and the
// MCP server reuse the same results. The reporter stops at the first failing
// call; with the built-in suites no call fails.

package oracle

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/pathoracle/internal/dialect"
)

// Result is the outcome of one case.
type Result struct {
	Case    Case   `json:"-"`
	Label   string `json:"label,omitempty"`
	Value   string `json:"value"`
	Comment bool   `json:"comment,omitempty"`
}

// Line formats the result as it appears in a report.
func (r Result) Line() string {
	if r.Comment {
		return r.Value
	}
	return fmt.Sprintf("%s: '%s'", r.Label, r.Value)
}

// Evaluate runs a single case.
func Evaluate(d *dialect.Dialect, env dialect.Env, c Case) (Result, error) {
	if c.IsComment() {
		return Result{Case: c, Value: c.Comment, Comment: true}, nil
	}
	label := d.Label(c.Op, c.Args)
	v, err := d.Call(env, c.Op, c.Args...)
	if err != nil {
		return Result{Case: c, Label: label}, fmt.Errorf("%s: %w", label, err)
	}
	return Result{Case: c, Label: label, Value: v}, nil
}

// Run evaluates cases in order, stopping at the first error. Results
// gathered before the failure are returned alongside it.
func Run(d *dialect.Dialect, env dialect.Env, cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		r, err := Evaluate(d, env, c)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Write prints results as report lines.
func Write(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Line()); err != nil {
			return err
		}
	}
	return nil
}

// Report evaluates the suite and writes every line to w. Lines for cases
// evaluated before a failure are still written.
func Report(w io.Writer, env dialect.Env, s *Suite) ([]Result, error) {
	d, err := dialect.Get(s.Dialect)
	if err != nil {
		return nil, err
	}
	results, runErr := Run(d, env, s.Cases)
	if err := Write(w, results); err != nil {
		return results, err
	}
	return results, runErr
}

// Text joins result lines into a report string.
func Text(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

// Record turns results into a suite with every value recorded and the
// working directory pinned, so the suite checks cleanly where it was made.
func Record(dialectName string, env dialect.Env, results []Result) *Suite {
	s := &Suite{Dialect: dialectName, Cwd: env.Cwd}
	for _, r := range results {
		c := r.Case
		if !c.IsComment() {
			v := r.Value
			c.Want = &v
		}
		s.Cases = append(s.Cases, c)
	}
	return s
}
