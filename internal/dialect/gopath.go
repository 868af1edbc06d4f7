// gopath.go binds Go's own slash-path packages. Relative paths come from
// filepath.Rel, which is purely lexical and does not consult the working
// directory; Resolve stands in for filepath.Abs with the injected Cwd.

package dialect

import (
	"path"
	"path/filepath"
)

func init() {
	register(&Dialect{
		name:   "go",
		module: "path",
		note:   "Go package path (filepath.Rel for Rel)",
		bindings: map[Op]binding{
			Normalize: {"Clean", func(_ Env, a []string) (string, error) { return path.Clean(a[0]), nil }},
			Dirname:   {"Dir", func(_ Env, a []string) (string, error) { return path.Dir(a[0]), nil }},
			Basename:  {"Base", func(_ Env, a []string) (string, error) { return path.Base(a[0]), nil }},
			Extname:   {"Ext", func(_ Env, a []string) (string, error) { return path.Ext(a[0]), nil }},
			Relative:  {"Rel", goRel},
			Join:      {"Join", func(_ Env, a []string) (string, error) { return path.Join(a...), nil }},
			Resolve:   {"Abs", goAbs},
		},
	})
}

func goRel(_ Env, a []string) (string, error) {
	rel, err := filepath.Rel(filepath.FromSlash(a[0]), filepath.FromSlash(a[1]))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// goAbs resolves the last argument against the earlier ones and Cwd, the way
// filepath.Abs(filepath.Join(...)) would for a process running in Cwd.
func goAbs(env Env, a []string) (string, error) {
	p := path.Join(a...)
	if isAbs(p) {
		return p, nil
	}
	return path.Join(env.cwd(), p), nil
}
