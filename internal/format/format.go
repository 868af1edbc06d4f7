// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so commands focus on evaluation while this
// package handles markdown tables, column alignment and check summaries.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/pathoracle/internal/oracle"
)

// mdEscape keeps values readable inside a markdown table cell.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return "`" + s + "`"
}

// cellText renders one comparison cell.
func cellText(c oracle.Cell) string {
	switch {
	case c.Missing:
		return "n/a"
	case c.Error != "":
		return "error"
	case c.Value == "":
		return "`''`"
	default:
		return mdEscape("'" + c.Value + "'")
	}
}

// Matrix writes a markdown table with one row per case and one column per
// dialect. Rows where the dialects disagree are marked with "≠".
func Matrix(w io.Writer, dialects []string, rows []oracle.Row) error {
	var b strings.Builder
	b.WriteString("| call |")
	for _, d := range dialects {
		fmt.Fprintf(&b, " %s |", d)
	}
	b.WriteString(" |\n|---|")
	for range dialects {
		b.WriteString("---|")
	}
	b.WriteString("---|\n")

	for _, r := range rows {
		quoted := make([]string, len(r.Args))
		for i, a := range r.Args {
			quoted[i] = `"` + a + `"`
		}
		fmt.Fprintf(&b, "| %s |", mdEscape(fmt.Sprintf("%s(%s)", r.Op, strings.Join(quoted, ","))))
		for _, c := range r.Cells {
			fmt.Fprintf(&b, " %s |", cellText(c))
		}
		if r.Agree() {
			b.WriteString("  |\n")
		} else {
			b.WriteString(" ≠ |\n")
		}
	}

	var errs []string
	for _, r := range rows {
		for _, c := range r.Cells {
			if c.Error != "" {
				errs = append(errs, fmt.Sprintf("- %s: %s", c.Dialect, c.Error))
			}
		}
	}
	if len(errs) > 0 {
		b.WriteString("\nErrors:\n\n" + strings.Join(errs, "\n") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Verdicts prints one aligned line per checked case and a summary.
func Verdicts(w io.Writer, r *oracle.CheckResult) error {
	maxLabel := 0
	for _, v := range r.Verdicts {
		maxLabel = max(maxLabel, len(v.Label))
	}

	for _, v := range r.Verdicts {
		fmt.Fprintf(w, "%-4s  %-*s  '%s'", v.Status, maxLabel, v.Label, v.Got)
		if v.Reason != "" {
			fmt.Fprintf(w, "  (%s)", v.Reason)
		}
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped (%s, cwd %s)\n",
		r.Passed, r.Failed, r.Skipped, r.Dialect, r.Cwd)
	return err
}
