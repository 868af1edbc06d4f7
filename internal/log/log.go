// Package log records pathoracle runs. Entries are stored in
// ~/.pathoracle/log/runs.db so behaviour observed on different machines and
// working directories can be compared later.
//
// Recording is opt-in (history.enabled in config). When the logger is not
// open every call is a no-op.
//
// # Fluent API
//
//	log.Event("cli:report", "report").
//		Dialect(d.Name()).
//		Cwd(env.Cwd).
//		Cases(len(results)).
//		Write(err)
//
// The source parameter is "cli:{command}" for CLI commands or "mcp:{tool}"
// for MCP tools.
package log

import (
	"database/sql"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// ErrNotOpen is returned by maintenance calls made before [Open].
var ErrNotOpen = errors.New("run log not open")

// Entry represents a single recorded run.
type Entry struct {
	ID      int64  `json:"id"`
	Source  string `json:"source"`            // e.g. "cli:report", "mcp:eval"
	Action  string `json:"action"`            // report, check, compare, eval
	Dialect string `json:"dialect,omitempty"` // dialect evaluated
	CwdHash string `json:"cwd_hash,omitempty"`
	Cases   int    `json:"cases,omitempty"`  // cases evaluated
	Failed  int    `json:"failed,omitempty"` // failing checks

	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`

	cwd string
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for a run.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Dialect sets the dialect the run evaluated.
func (b *Builder) Dialect(name string) *Builder {
	b.entry.Dialect = name
	return b
}

// Cwd sets the working directory the run resolved against. Only its hash is
// stored.
func (b *Builder) Cwd(dir string) *Builder {
	b.entry.cwd = dir
	return b
}

// Cases sets the number of cases evaluated.
func (b *Builder) Cases(n int) *Builder {
	b.entry.Cases = n
	return b
}

// Failed sets the number of failing checks.
func (b *Builder) Failed(n int) *Builder {
	b.entry.Failed = n
	return b
}

// Detail adds a key-value pair to the entry's detail map.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success/failure from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	if b.entry.cwd != "" {
		b.entry.CwdHash = hash(b.entry.cwd)
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries, newest first. Returns nil without an
// error when the logger is not open.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	return l.recent(limit)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}

// Count returns the number of recorded runs that started before now minus
// olderThan, or all runs when olderThan is nil.
func Count(olderThan *time.Duration) (int64, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return 0, ErrNotOpen
	}
	return l.count(cutoff(olderThan))
}

// Prune permanently deletes recorded runs older than olderThan, or every run
// when olderThan is nil. Returns the number of runs deleted.
func Prune(olderThan *time.Duration) (int64, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return 0, ErrNotOpen
	}
	return l.prune(cutoff(olderThan))
}

// cutoff converts a retention window to a unix timestamp. Runs starting
// before it are eligible for pruning.
func cutoff(olderThan *time.Duration) int64 {
	if olderThan == nil {
		return math.MaxInt64
	}
	return time.Now().Add(-*olderThan).Unix()
}
