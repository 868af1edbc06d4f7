// Package dialect emulates the path libraries whose edge-case behaviour
// pathoracle documents. Each dialect is a pure, string-only rendition of one
// library: nothing here touches the file system or reads the process working
// directory. Operations that resolve relative paths take the working
// directory from [Env].
//
// Operations are addressed by a generic [Op] identifier so the same case list
// can be evaluated in every dialect. Each dialect maps the identifier to the
// name its library uses (normpath, normalize, Clean, ...) and, where the
// library's parameters come in another order, permutes the generic arguments
// into it. Relative always takes (base, target) generically.
package dialect

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Op identifies a path operation independent of any library.
type Op string

// Supported operations.
const (
	Normalize Op = "normalize"
	Dirname   Op = "dirname"
	Basename  Op = "basename"
	Extname   Op = "extname"
	Relative  Op = "relative" // (base, target)
	Join      Op = "join"
	Resolve   Op = "resolve"
)

// Ops lists every operation in display order.
func Ops() []Op {
	return []Op{Normalize, Dirname, Basename, Extname, Relative, Join, Resolve}
}

// ParseOp validates an operation identifier.
func ParseOp(s string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Ops(), op) {
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
	return op, nil
}

var (
	// ErrUnknownDialect is returned by Get for an unregistered dialect name.
	ErrUnknownDialect = errors.New("unknown dialect")
	// ErrUnknownOp is returned for an operation identifier that does not exist.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrUnsupported is returned when a dialect's library has no such operation.
	ErrUnsupported = errors.New("operation not supported by dialect")
	// ErrArity is returned when an operation gets the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)

// Env is the environment an operation is evaluated in.
type Env struct {
	// Cwd is the absolute, slash-separated working directory used to resolve
	// relative paths. An empty Cwd is treated as "/".
	Cwd string
}

func (e Env) cwd() string {
	if e.Cwd == "" {
		return "/"
	}
	return e.Cwd
}

// Func implements one operation. Arity has been checked before it is called.
type Func func(env Env, args []string) (string, error)

// arity bounds the argument count of an operation. max < 0 means variadic.
type arity struct{ min, max int }

var arities = map[Op]arity{
	Normalize: {1, 1},
	Dirname:   {1, 1},
	Basename:  {1, 1},
	Extname:   {1, 1},
	Relative:  {2, 2},
	Join:      {1, -1},
	Resolve:   {1, -1},
}

type binding struct {
	name string
	fn   Func
}

// Dialect is one path library.
type Dialect struct {
	name     string
	module   string
	note     string
	bindings map[Op]binding
	// argOrder maps library parameter i to generic argument argOrder[op][i].
	argOrder map[Op][]int
}

// Name returns the registry name (python, node, node-win32, go).
func (d *Dialect) Name() string { return d.name }

// Module returns the identifier the library is imported as in report labels.
func (d *Dialect) Module() string { return d.module }

// Note describes which library the dialect emulates.
func (d *Dialect) Note() string { return d.note }

// FuncName returns the library's own name for op.
func (d *Dialect) FuncName(op Op) (string, bool) {
	b, ok := d.bindings[op]
	return b.name, ok
}

// Supports reports whether the dialect's library provides op.
func (d *Dialect) Supports(op Op) bool {
	_, ok := d.bindings[op]
	return ok
}

// libArgs reorders generic arguments into the library's parameter order.
func (d *Dialect) libArgs(op Op, args []string) []string {
	order := d.argOrder[op]
	if len(order) != len(args) {
		return args
	}
	out := make([]string, len(args))
	for i, j := range order {
		out[i] = args[j]
	}
	return out
}

// Label formats a call the way reports show it, e.g. path.dirname("a/b/").
// Arguments appear in the library's own order.
func (d *Dialect) Label(op Op, args []string) string {
	name, ok := d.FuncName(op)
	if !ok {
		name = string(op)
	}
	args = d.libArgs(op, args)
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = `"` + a + `"`
	}
	return fmt.Sprintf("%s.%s(%s)", d.module, name, strings.Join(quoted, ","))
}

// Call evaluates op with args in env.
func (d *Dialect) Call(env Env, op Op, args ...string) (string, error) {
	b, ok := d.bindings[op]
	if !ok {
		if _, known := arities[op]; !known {
			return "", fmt.Errorf("%w: %q", ErrUnknownOp, op)
		}
		return "", fmt.Errorf("%s has no %s: %w", d.name, op, ErrUnsupported)
	}
	a := arities[op]
	if len(args) < a.min || (a.max >= 0 && len(args) > a.max) {
		return "", fmt.Errorf("%s.%s: %w: got %d", d.module, b.name, ErrArity, len(args))
	}
	return b.fn(env, d.libArgs(op, args))
}

var registry = map[string]*Dialect{}

func register(d *Dialect) {
	registry[d.name] = d
}

// Get returns the dialect registered under name.
func Get(name string) (*Dialect, error) {
	d, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownDialect, name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// isAbs reports whether p is an absolute POSIX path.
func isAbs(p string) bool {
	return strings.HasPrefix(p, "/")
}

// segments splits p on "/" and drops empty and "." components.
func segments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" && s != "." {
			out = append(out, s)
		}
	}
	return out
}

// relativeSegments builds the relative path from the absolute, normalised
// path "from" to the absolute, normalised path "to".
func relativeSegments(from, to string) []string {
	f, t := segments(from), segments(to)
	i := 0
	for i < len(f) && i < len(t) && f[i] == t[i] {
		i++
	}
	rel := make([]string, 0, len(f)-i+len(t)-i)
	for range f[i:] {
		rel = append(rel, "..")
	}
	return append(rel, t[i:]...)
}
