package oracle

import (
	"errors"
	"strings"

	"github.com/jpl-au/pathoracle/internal/dialect"
)

// Cell is the value of one case in one dialect.
type Cell struct {
	Dialect string `json:"dialect"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	// Missing is set when the dialect's library has no such operation.
	Missing bool   `json:"missing,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Row is one case evaluated across dialects.
type Row struct {
	Op    dialect.Op `json:"op"`
	Args  []string   `json:"args"`
	Cells []Cell     `json:"cells"`
}

// Agree reports whether every dialect that supports the operation returned
// the same value.
func (r Row) Agree() bool {
	first := ""
	seen := false
	for _, c := range r.Cells {
		if c.Missing || c.Error != "" {
			continue
		}
		if seen && c.Value != first {
			return false
		}
		first, seen = c.Value, true
	}
	return true
}

// Compare evaluates each non-comment case in every named dialect. Errors are
// captured per cell rather than aborting the comparison.
func Compare(names []string, env dialect.Env, cases []Case) ([]Row, error) {
	ds := make([]*dialect.Dialect, 0, len(names))
	for _, n := range names {
		d, err := dialect.Get(n)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}

	var rows []Row
	for _, c := range cases {
		if c.IsComment() {
			continue
		}
		row := Row{Op: c.Op, Args: c.Args}
		for _, d := range ds {
			cell := Cell{Dialect: d.Name(), Label: d.Label(c.Op, c.Args)}
			v, err := d.Call(env, c.Op, c.Args...)
			switch {
			case errors.Is(err, dialect.ErrUnsupported):
				cell.Missing = true
			case err != nil:
				cell.Error = err.Error()
			default:
				cell.Value = v
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CompareCases merges the built-in suites of every dialect into a single
// case list, dropping duplicates and commentary.
func CompareCases() ([]Case, error) {
	type key struct {
		op   dialect.Op
		args string
	}
	seen := map[key]bool{}
	var out []Case
	for _, n := range dialect.Names() {
		s, err := Builtin(n)
		if err != nil {
			return nil, err
		}
		for _, c := range s.Cases {
			if c.IsComment() {
				continue
			}
			k := key{c.Op, strings.Join(c.Args, "\x00")}
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, Case{Op: c.Op, Args: c.Args, CwdDependent: c.CwdDependent})
		}
	}
	return out, nil
}
