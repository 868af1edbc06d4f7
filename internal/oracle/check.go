// check.go compares a run against the expectations recorded in a suite.
//
// Cases whose result depends on the working directory are skipped unless the
// suite pins one, so a check never asserts a value that only holds on the
// machine it was recorded on.

package oracle

import (
	"fmt"

	"github.com/jpl-au/pathoracle/internal/diff"
	"github.com/jpl-au/pathoracle/internal/dialect"
)

// Status is the outcome of checking one case.
type Status string

// Check outcomes.
const (
	Pass Status = "pass"
	Fail Status = "fail"
	Skip Status = "skip"
)

// Verdict records how a single case fared.
type Verdict struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Want   string `json:"want,omitempty"`
	Got    string `json:"got,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// CheckResult summarises a check run.
type CheckResult struct {
	Dialect  string    `json:"dialect"`
	Cwd      string    `json:"cwd"`
	Verdicts []Verdict `json:"verdicts"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Skipped  int       `json:"skipped"`
	Diff     string    `json:"diff,omitempty"`

	diff diff.Result
}

// OK reports whether no case failed.
func (r *CheckResult) OK() bool {
	return r.Failed == 0
}

// Format returns the expected-vs-actual report diff with a header.
// Empty when every checked case matched.
func (r *CheckResult) Format(colour bool) string {
	if r.Diff == "" {
		return ""
	}
	return r.diff.Format(colour)
}

// Check evaluates every case of s and compares it with its recorded value.
// A pinned suite Cwd overrides env.
func Check(env dialect.Env, s *Suite) (*CheckResult, error) {
	d, err := dialect.Get(s.Dialect)
	if err != nil {
		return nil, err
	}
	pinned := s.Cwd != ""
	if pinned {
		env.Cwd = s.Cwd
	}

	res := &CheckResult{Dialect: d.Name(), Cwd: env.Cwd}
	var want, got []Result
	for _, c := range s.Cases {
		r, evalErr := Evaluate(d, env, c)
		if c.IsComment() {
			want, got = append(want, r), append(got, r)
			continue
		}

		v := Verdict{Label: r.Label, Got: r.Value}
		expected := r
		switch {
		case evalErr != nil:
			v.Status, v.Reason = Fail, evalErr.Error()
			r.Value = "error: " + evalErr.Error()
			if c.Want != nil {
				expected.Value = *c.Want
			}
		case c.CwdDependent && !pinned:
			v.Status, v.Reason = Skip, "depends on the working directory; pin cwd to check"
		case c.Want == nil:
			v.Status, v.Reason = Skip, "no recorded value"
		case *c.Want == r.Value:
			v.Status, v.Want = Pass, *c.Want
		default:
			v.Status, v.Want = Fail, *c.Want
			expected.Value = *c.Want
		}
		if v.Status == Fail && v.Reason == "" {
			v.Reason = fmt.Sprintf("want '%s'", v.Want)
		}

		switch v.Status {
		case Pass:
			res.Passed++
		case Fail:
			res.Failed++
		case Skip:
			res.Skipped++
		}
		res.Verdicts = append(res.Verdicts, v)
		want, got = append(want, expected), append(got, r)
	}

	if res.Failed > 0 {
		res.diff = diff.Compute(Text(want), Text(got), "expected ("+d.Name()+")", "actual")
		res.Diff = res.diff.Diff
	}
	return res, nil
}
