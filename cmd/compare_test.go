package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Run("markdown when piped", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("compare", "--cwd", "/home/user/project")
		env.contains(out, "| call | go | node | node-win32 | python | |")
		env.contains(out, "| `dirname(\"a/b/\")` | `'a/b'` | `'a'` | n/a | `'a/b'` | ≠ |")
		env.contains(out, "| `relative(\"../..\",\"a\")` | error | `'user/project/a'` | n/a | `'user/project/a'` |  |")
		env.contains(out, "n/a")
	})

	t.Run("dialect subset", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("compare", "--dialects", "python,go", "--raw")
		env.contains(out, "| call | python | go | |")
		env.notContains(out, "node")
	})

	t.Run("suite file", func(t *testing.T) {
		env := newTestEnv(t)
		file := env.writeFile("cases.yaml", `dialect: python
cases:
  - op: dirname
    args: ["/"]
`)
		out := env.run("compare", file, "--raw")
		env.contains(out, "| `dirname(\"/\")` | `'/'` | `'/'` | n/a | `'/'` |  |")
	})

	t.Run("suite file pins cwd", func(t *testing.T) {
		env := newTestEnv(t)
		file := env.writeFile("pinned.yaml", `dialect: python
cwd: /srv/x/y/z
cases:
  - op: relative
    args: ["../..", "a"]
`)
		out := env.run("compare", file, "--dialects", "python,node", "--raw")
		env.contains(out, "| `relative(\"../..\",\"a\")` | `'y/z/a'` | `'y/z/a'` |  |")

		out = env.run("compare", file, "--dialects", "python,node", "--raw", "--cwd", "/home/user/project")
		env.contains(out, "`'user/project/a'`")
	})

	t.Run("unknown dialect", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("compare", "--dialects", "python,ruby")
		assert.Error(t, err)
	})
}

func TestCompare_JSON(t *testing.T) {
	env := newTestEnv(t)
	out := env.run("compare", "-o", "json", "--cwd", "/home/user/project")

	var got struct {
		Dialects []string `json:"dialects"`
		Rows     []struct {
			Op    string `json:"op"`
			Args  []string
			Cells []struct {
				Dialect string `json:"dialect"`
				Value   string `json:"value"`
				Missing bool   `json:"missing"`
			} `json:"cells"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"go", "node", "node-win32", "python"}, got.Dialects)
	require.NotEmpty(t, got.Rows)

	missing := false
	for _, r := range got.Rows {
		require.Len(t, r.Cells, 4)
		if r.Op == "extname" && r.Cells[3].Missing {
			missing = true
		}
	}
	assert.True(t, missing, "python has no extname")
}
