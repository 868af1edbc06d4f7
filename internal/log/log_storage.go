// log_storage.go implements SQLite-based run storage.
//
// Separated from log.go to isolate database concerns. The working directory
// is stored as a BLAKE2b hash so runs can be grouped by directory without
// recording the path itself.
//
// Errors during logging are reported on stderr and otherwise ignored; a
// report must succeed even if it cannot be recorded.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes run entries to a SQLite database.
type Logger struct {
	db *sql.DB
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO runs (start, end, source, action, dialect, cwd_hash, cases, failed,
		                  success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, e.Source, e.Action, nilIfEmpty(e.Dialect), nilIfEmpty(e.CwdHash),
		e.Cases, e.Failed, success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "pathoracle: run log write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.Query(`
		SELECT id, start, end, source, action, dialect, cwd_hash, cases, failed,
		       success, error, detail
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var dialect, cwdHash, errMsg, detail sql.NullString
		var success int
		if err := rows.Scan(&e.ID, &e.Start, &e.End, &e.Source, &e.Action, &dialect, &cwdHash,
			&e.Cases, &e.Failed, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		e.Dialect, e.CwdHash, e.Error = dialect.String, cwdHash.String, errMsg.String
		e.Success = success == 1
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (l *Logger) count(before int64) (int64, error) {
	var n int64
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE start < ?`, before).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

func (l *Logger) prune(before int64) (int64, error) {
	res, err := l.db.Exec(`DELETE FROM runs WHERE start < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return res.RowsAffected()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pathoracle", "log", "runs.db")
	}
	return filepath.Join(home, ".pathoracle", "log", "runs.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the run database.
func DBPath() string {
	return dbPath()
}

// hash identifies a working directory without storing it.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the runs table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			source   TEXT NOT NULL,
			action   TEXT NOT NULL,
			dialect  TEXT,
			cwd_hash TEXT,
			cases    INTEGER NOT NULL DEFAULT 0,
			failed   INTEGER NOT NULL DEFAULT 0,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_runs_start ON runs(start);
		CREATE INDEX IF NOT EXISTS idx_runs_dialect ON runs(dialect);
	`)
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
