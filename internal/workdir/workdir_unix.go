//go:build !windows

// workdir_unix.go handles Unix working directories (Linux, macOS, etc).
//
// On Unix systems, backslashes are valid filename characters, not path
// separators, so the directory is used as given.

package workdir

func toSlash(dir string) string {
	return dir
}
