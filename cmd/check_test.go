package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Builtin(t *testing.T) {
	tests := []struct {
		dialect string
		summary string
	}{
		{"python", "5 passed, 0 failed, 1 skipped (python"},
		{"node", "7 passed, 0 failed, 1 skipped (node"},
		{"go", "6 passed, 0 failed, 0 skipped (go"},
		{"node-win32", "1 passed, 0 failed, 0 skipped (node-win32"},
	}
	for _, tc := range tests {
		t.Run(tc.dialect, func(t *testing.T) {
			env := newTestEnv(t)
			out := env.run("check", "-d", tc.dialect)
			env.contains(out, tc.summary)
		})
	}
}

func TestCheck_PinnedCwd(t *testing.T) {
	env := newTestEnv(t)
	file := env.writeFile("pinned.yaml", `dialect: python
cases:
  - op: relative
    args: ["../..", "a"]
    cwd_dependent: true
    want: user/project/a
`)

	out := env.run("check", file)
	env.contains(out, "0 passed, 0 failed, 1 skipped")

	out = env.run("check", file, "--cwd", "/home/user/project")
	env.contains(out, "1 passed, 0 failed, 0 skipped")
	env.contains(out, "cwd /home/user/project")
}

func TestCheck_Failure(t *testing.T) {
	env := newTestEnv(t)
	file := env.writeFile("wrong.yaml", `dialect: node
cases:
  - op: dirname
    args: ["a/b/"]
    want: a/b
  - op: join
    args: ["a", "/b"]
    want: a/b
`)

	out, err := env.runErr("check", file)
	assert.Error(t, err)
	env.contains(out, "1 passed, 1 failed, 0 skipped")
	env.contains(out, "--- expected (node)")
	env.contains(out, "+++ actual")
	env.contains(out, `- path.dirname("a/b/"): 'a/b'`)
	env.contains(out, `+ path.dirname("a/b/"): 'a'`)
	env.contains(out, "1 of 2 cases failed")
}

func TestCheck_JSON(t *testing.T) {
	env := newTestEnv(t)
	file := env.writeFile("wrong.yaml", `dialect: go
cases:
  - op: basename
    args: ["a/b/"]
    want: ""
`)

	out, err := env.runErr("check", file, "-o", "json")
	assert.Error(t, err)

	var got struct {
		Dialect  string `json:"dialect"`
		Failed   int    `json:"failed"`
		Verdicts []struct {
			Status string `json:"status"`
			Got    string `json:"got"`
		} `json:"verdicts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "go", got.Dialect)
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Verdicts, 1)
	assert.Equal(t, "b", got.Verdicts[0].Got)
}

func TestCheck_InvalidSuite(t *testing.T) {
	env := newTestEnv(t)
	file := env.writeFile("bad.yaml", `dialect: python
cases:
  - op: splitext
    args: ["a.md"]
`)
	out, err := env.runErr("check", file)
	assert.Error(t, err)
	env.contains(out, "splitext")
}
