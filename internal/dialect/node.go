// node.go emulates Node's path.posix module.
//
// Unlike posixpath, Node collapses every run of separators ("//" becomes "/"),
// ignores trailing slashes in dirname/basename/extname, and implements join as
// plain concatenation followed by normalize, so an absolute later argument
// does not reset the result.

package dialect

import "strings"

func init() {
	register(&Dialect{
		name:   "node",
		module: "path",
		note:   "Node.js node:path (posix)",
		bindings: map[Op]binding{
			Normalize: {"normalize", func(_ Env, a []string) (string, error) { return nodeNormalize(a[0]), nil }},
			Dirname:   {"dirname", func(_ Env, a []string) (string, error) { return nodeDirname(a[0]), nil }},
			Basename:  {"basename", func(_ Env, a []string) (string, error) { return nodeBasename(a[0]), nil }},
			Extname:   {"extname", func(_ Env, a []string) (string, error) { return nodeExtname(a[0]), nil }},
			Relative: {"relative", func(env Env, a []string) (string, error) {
				return nodeRelative(env, a[0], a[1]), nil
			}},
			Join:    {"join", func(_ Env, a []string) (string, error) { return nodeJoin(a...), nil }},
			Resolve: {"resolve", func(env Env, a []string) (string, error) { return nodeResolve(env, a...), nil }},
		},
	})
}

// nodeSegments resolves "." and ".." without touching the root. For relative
// input, ".." that would climb above the start is kept when aboveRoot is set.
func nodeSegments(p string, aboveRoot bool) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		switch s {
		case "", ".":
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
			} else if aboveRoot {
				out = append(out, "..")
			}
		default:
			out = append(out, s)
		}
	}
	return out
}

func nodeNormalize(p string) string {
	if p == "" {
		return "."
	}
	abs := isAbs(p)
	trailing := strings.HasSuffix(p, "/")
	out := strings.Join(nodeSegments(p, !abs), "/")
	if out == "" {
		if abs {
			return "/"
		}
		if trailing {
			return "./"
		}
		return "."
	}
	if trailing {
		out += "/"
	}
	if abs {
		return "/" + out
	}
	return out
}

func nodeDirname(p string) string {
	if p == "" {
		return "."
	}
	hasRoot := p[0] == '/'
	end := -1
	matchedSlash := true
	for i := len(p) - 1; i >= 1; i-- {
		if p[i] == '/' {
			if !matchedSlash {
				end = i
				break
			}
		} else {
			matchedSlash = false
		}
	}
	switch {
	case end == -1 && hasRoot:
		return "/"
	case end == -1:
		return "."
	case hasRoot && end == 1:
		return "//"
	}
	return p[:end]
}

// lastSegment returns the final path component with trailing slashes ignored.
func lastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	return p[strings.LastIndex(p, "/")+1:]
}

func nodeBasename(p string) string {
	return lastSegment(p)
}

func nodeExtname(p string) string {
	seg := lastSegment(p)
	dot := strings.LastIndex(seg, ".")
	if dot <= 0 || seg == ".." {
		return ""
	}
	return seg[dot:]
}

func nodeJoin(parts ...string) string {
	var keep []string
	for _, s := range parts {
		if s != "" {
			keep = append(keep, s)
		}
	}
	if len(keep) == 0 {
		return "."
	}
	return nodeNormalize(strings.Join(keep, "/"))
}

func nodeResolve(env Env, parts ...string) string {
	resolved := ""
	abs := false
	for i := len(parts) - 1; i >= -1 && !abs; i-- {
		p := env.cwd()
		if i >= 0 {
			p = parts[i]
		}
		if p == "" {
			continue
		}
		resolved = p + "/" + resolved
		abs = isAbs(p)
	}
	out := strings.Join(nodeSegments(resolved, !abs), "/")
	if abs {
		return "/" + out
	}
	if out == "" {
		return "."
	}
	return out
}

func nodeRelative(env Env, from, to string) string {
	if from == to {
		return ""
	}
	from, to = nodeResolve(env, from), nodeResolve(env, to)
	if from == to {
		return ""
	}
	return strings.Join(relativeSegments(from, to), "/")
}
