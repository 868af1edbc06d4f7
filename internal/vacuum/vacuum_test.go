package vacuum

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	require.NoError(t, log.Open())
	t.Cleanup(log.Close)
	require.FileExists(t, filepath.Join(home, ".pathoracle", "log", "runs.db"))

	for range 3 {
		log.Event("cli:report", "report").Write(nil)
	}

	var buf bytes.Buffer
	week := 7 * 24 * time.Hour
	res, err := Run(&buf, Options{OlderThan: &week})
	require.NoError(t, err)
	assert.Zero(t, res.Deleted)
	assert.Contains(t, buf.String(), "No runs to vacuum")

	buf.Reset()
	res, err = Run(&buf, Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Deleted)
	assert.True(t, res.DryRun)
	assert.Contains(t, buf.String(), "Would delete 3 run(s)")

	buf.Reset()
	res, err = Run(&buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Deleted)
	assert.Contains(t, buf.String(), "Vacuumed 3 run(s)")
}
