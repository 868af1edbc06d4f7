// win32.go emulates the join of Node's path.win32.
//
// Only join is bound. Both "\" and "/" separate segments, output uses "\",
// and a drive letter is just a prefix of the first argument: a later "D:\b"
// is appended as an ordinary segment.

package dialect

import "strings"

func init() {
	register(&Dialect{
		name:   "node-win32",
		module: "path.win32",
		note:   "Node.js node:path (win32), join only",
		bindings: map[Op]binding{
			Join: {"join", func(_ Env, a []string) (string, error) { return win32Join(a...), nil }},
		},
	})
}

func isWinSep(c byte) bool {
	return c == '\\' || c == '/'
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// win32Root splits p into a device ("C:" or "\\server\share"), whether the
// path is rooted, and the rest.
func win32Root(p string) (device string, abs bool, rest string) {
	switch {
	case isWinSep(p[0]):
		if len(p) > 1 && isWinSep(p[1]) {
			if dev, tail, ok := uncRoot(p); ok {
				return dev, true, tail
			}
		}
		return "", true, p[1:]
	case len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':':
		if len(p) > 2 && isWinSep(p[2]) {
			return p[:2], true, p[3:]
		}
		return p[:2], false, p[2:]
	}
	return "", false, p
}

// uncRoot matches \\server\share at the start of p.
func uncRoot(p string) (device, rest string, ok bool) {
	parts := strings.FieldsFunc(p, func(r rune) bool { return r == '\\' || r == '/' })
	if len(parts) < 2 {
		return "", "", false
	}
	i := strings.Index(p, parts[0]) + len(parts[0])
	for i < len(p) && isWinSep(p[i]) {
		i++
	}
	i += len(parts[1])
	return `\\` + parts[0] + `\` + parts[1], p[min(i+1, len(p)):], true
}

func win32Normalize(p string) string {
	if p == "" {
		return "."
	}
	if len(p) == 1 {
		if isWinSep(p[0]) {
			return `\`
		}
		return p
	}
	device, abs, rest := win32Root(p)
	tail := strings.Join(nodeSegments(strings.ReplaceAll(rest, `\`, "/"), !abs), `\`)
	if tail == "" && !abs {
		tail = "."
	}
	if tail != "" && isWinSep(p[len(p)-1]) {
		tail += `\`
	}
	if abs {
		return device + `\` + tail
	}
	return device + tail
}

func win32Join(parts ...string) string {
	var keep []string
	for _, s := range parts {
		if s != "" {
			keep = append(keep, s)
		}
	}
	if len(keep) == 0 {
		return "."
	}
	joined := strings.Join(keep, `\`)

	// A leading "\\" survives only when the first argument itself starts
	// with exactly two separators followed by a name.
	first := keep[0]
	replace := true
	slashes := 0
	if isWinSep(first[0]) {
		slashes++
		if len(first) > 1 && isWinSep(first[1]) {
			slashes++
			if len(first) > 2 {
				if isWinSep(first[2]) {
					slashes++
				} else {
					replace = false
				}
			}
		}
	}
	if replace {
		for slashes < len(joined) && isWinSep(joined[slashes]) {
			slashes++
		}
		if slashes >= 2 {
			joined = `\` + joined[slashes:]
		}
	}
	return win32Normalize(joined)
}
