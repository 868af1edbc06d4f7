// Package oracle evaluates fixed lists of path-operation cases against a
// dialect and reports each call with its result, one `label: 'value'` line
// per case. A run is a human-readable record of how a path library behaves
// on edge cases.
//
// Suites are case lists with optional recorded expectations. The built-in
// suites are embedded YAML files; user suites use the same format.
package oracle

import (
	"embed"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/jpl-au/pathoracle/internal/dialect"
	"gopkg.in/yaml.v3"
)

//go:embed suites/*.yaml
var builtin embed.FS

// ErrInvalidSuite is returned when a suite file is structurally wrong.
var ErrInvalidSuite = errors.New("invalid suite")

// Case is one call to evaluate, or a commentary line when Op is empty.
type Case struct {
	Op           dialect.Op `yaml:"op,omitempty" json:"op,omitempty"`
	Args         []string   `yaml:"args,omitempty" json:"args,omitempty"`
	Want         *string    `yaml:"want,omitempty" json:"want,omitempty"`
	CwdDependent bool       `yaml:"cwd_dependent,omitempty" json:"cwd_dependent,omitempty"`
	Comment      string     `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// IsComment reports whether the case only prints commentary.
func (c Case) IsComment() bool {
	return c.Op == ""
}

// Suite is an ordered list of cases for one dialect.
type Suite struct {
	Dialect string `yaml:"dialect"`
	// Cwd pins the working directory. Without it, cwd-dependent cases
	// cannot be checked against a recorded value.
	Cwd   string `yaml:"cwd,omitempty"`
	Cases []Case `yaml:"cases"`
}

// Validate checks that every case names a known operation or is a comment.
// Every invalid case is reported, not only the first.
func (s *Suite) Validate() error {
	if _, err := dialect.Get(s.Dialect); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("%w: no cases", ErrInvalidSuite)
	}
	var merr error
	for i, c := range s.Cases {
		if c.IsComment() {
			if c.Comment == "" {
				merr = multierror.Append(merr, fmt.Errorf("case %d has neither op nor comment", i+1))
			}
			continue
		}
		if _, err := dialect.ParseOp(string(c.Op)); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("case %d: %w", i+1, err))
		}
	}
	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSuite, merr)
	}
	return nil
}

// LoadSuite decodes and validates a YAML suite.
func LoadSuite(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Builtin returns the embedded default suite for a dialect.
func Builtin(name string) (*Suite, error) {
	d, err := dialect.Get(name)
	if err != nil {
		return nil, err
	}
	f, err := builtin.Open("suites/" + d.Name() + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no built-in suite for %s: %w", d.Name(), err)
	}
	defer f.Close()
	return LoadSuite(f)
}

// Encode writes the suite as YAML.
func (s *Suite) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode suite: %w", err)
	}
	return enc.Close()
}
