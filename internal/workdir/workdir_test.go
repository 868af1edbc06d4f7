//go:build !windows

package workdir

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"/home/user/project", "/home/user/project", false},
		{"/home/user/project/", "/home/user/project", false},
		{"/home//user/./project/../x", "/home/user/x", false},
		{"/", "/", false},
		{"//", "/", false},
		{`/a\b`, `/a\b`, false},

		{"", "", true},
		{"rel/dir", "", true},
		{".", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalise(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRelative)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	got, err := Resolve("", "/srv/app/", "/ignored")
	require.NoError(t, err)
	assert.Equal(t, "/srv/app", got)

	_, err = Resolve("rel", "/srv/app")
	assert.ErrorIs(t, err, ErrRelative)

	dir := t.TempDir()
	t.Chdir(dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	got, err = Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestIsAbs(t *testing.T) {
	assert.True(t, IsAbs("/x"))
	assert.False(t, IsAbs("x"))
}
