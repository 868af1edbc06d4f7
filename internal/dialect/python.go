// python.go emulates Python's os.path on POSIX (the posixpath module).
//
// posixpath keeps a leading "//" intact because POSIX leaves its meaning
// implementation-defined, and it never strips a trailing slash before
// splitting, so basename("a/b/") is empty.

package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// errNoPath mirrors posixpath.relpath rejecting an empty path.
var errNoPath = errors.New("no path specified")

func init() {
	register(&Dialect{
		name:   "python",
		module: "path",
		note:   "Python os.path (posixpath)",
		bindings: map[Op]binding{
			Normalize: {"normpath", func(_ Env, a []string) (string, error) { return pyNormpath(a[0]), nil }},
			Dirname:   {"dirname", func(_ Env, a []string) (string, error) { return pyDirname(a[0]), nil }},
			Basename:  {"basename", func(_ Env, a []string) (string, error) { return pyBasename(a[0]), nil }},
			Relative:  {"relpath", pyRelpath},
			Join:      {"join", func(_ Env, a []string) (string, error) { return pyJoin(a...), nil }},
			Resolve:   {"abspath", pyAbspathCall},
		},
		// relpath(path, start) takes the target first.
		argOrder: map[Op][]int{Relative: {1, 0}},
	})
}

// pyAbspathCall binds abspath, which unlike node's resolve takes one path.
func pyAbspathCall(env Env, a []string) (string, error) {
	if len(a) != 1 {
		return "", fmt.Errorf("path.abspath: %w: got %d", ErrArity, len(a))
	}
	return pyAbspath(env, a[0]), nil
}

func pyNormpath(p string) string {
	if p == "" {
		return "."
	}
	lead := 0
	if strings.HasPrefix(p, "/") {
		lead = 1
		if strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "///") {
			lead = 2
		}
	}
	var comps []string
	for _, c := range strings.Split(p, "/") {
		switch {
		case c == "" || c == ".":
		case c != "..",
			lead == 0 && len(comps) == 0,
			len(comps) > 0 && comps[len(comps)-1] == "..":
			comps = append(comps, c)
		case len(comps) > 0:
			comps = comps[:len(comps)-1]
		}
	}
	out := strings.Repeat("/", lead) + strings.Join(comps, "/")
	if out == "" {
		return "."
	}
	return out
}

func pyDirname(p string) string {
	head := p[:strings.LastIndex(p, "/")+1]
	if head != "" && strings.Trim(head, "/") != "" {
		head = strings.TrimRight(head, "/")
	}
	return head
}

func pyBasename(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}

func pyJoin(parts ...string) string {
	out := parts[0]
	for _, b := range parts[1:] {
		switch {
		case strings.HasPrefix(b, "/"):
			out = b
		case out == "" || strings.HasSuffix(out, "/"):
			out += b
		default:
			out += "/" + b
		}
	}
	return out
}

func pyAbspath(env Env, p string) string {
	if !isAbs(p) {
		p = pyJoin(env.cwd(), p)
	}
	return pyNormpath(p)
}

// pyRelpath computes relpath(path, start).
func pyRelpath(env Env, a []string) (string, error) {
	target, start := a[0], a[1]
	if target == "" {
		return "", errNoPath
	}
	if start == "" {
		start = "."
	}
	rel := relativeSegments(pyAbspath(env, start), pyAbspath(env, target))
	if len(rel) == 0 {
		return ".", nil
	}
	return pyJoin(rel...), nil
}
