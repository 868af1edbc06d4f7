//go:build windows

// workdir_windows.go handles Windows working directories.
//
// Backslashes become forward slashes and a volume path such as C:\src is
// rooted as /C:/src, so it stays absolute for the slash-only dialects.

package workdir

import (
	"path/filepath"
	"strings"
)

func toSlash(dir string) string {
	p := filepath.ToSlash(dir)
	if filepath.VolumeName(dir) != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
