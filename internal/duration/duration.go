// Package duration parses the retention windows accepted by
// "pathoracle vacuum --older-than": a count followed by d (days), w (weeks)
// or m (months of 30 days).
package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrFormat is returned for anything other than a count and a unit.
var ErrFormat = errors.New("invalid duration (use 7d, 4w or 3m)")

const day = 24 * time.Hour

var units = map[string]time.Duration{
	"d": day,
	"w": 7 * day,
	"m": 30 * day,
}

var pattern = regexp.MustCompile(`^(\d+)([dwm])$`)

// Parse converts a window such as "30d" into a time.Duration.
func Parse(s string) (time.Duration, error) {
	m := pattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	unit := units[m[2]]
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrFormat, s)
	}
	return time.Duration(n) * unit, nil
}
