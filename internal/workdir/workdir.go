// Package workdir turns a working directory into the form every dialect
// resolves against: an absolute, cleaned, forward-slash path.
//
// The directory comes from --cwd, the cwd config key or the process, in that
// order. Nothing here touches the file system beyond asking the process for
// its working directory; a pinned directory does not need to exist.
package workdir

import (
	"errors"
	"fmt"
	"os"
	"path"
)

// ErrRelative indicates a working directory that is not absolute.
var ErrRelative = errors.New("cwd must be an absolute path")

// Resolve returns the first non-empty candidate, normalised. With no
// candidate the process working directory is used.
func Resolve(candidates ...string) (string, error) {
	for _, dir := range candidates {
		if dir != "" {
			return Normalise(dir)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	return Normalise(wd)
}

// Normalise converts dir to an absolute forward-slash path.
func Normalise(dir string) (string, error) {
	p := toSlash(dir)
	if !path.IsAbs(p) {
		return "", fmt.Errorf("%w, got %q", ErrRelative, dir)
	}
	return path.Clean(p), nil
}

// IsAbs reports whether dir is usable as a working directory.
func IsAbs(dir string) bool {
	_, err := Normalise(dir)
	return err == nil
}
