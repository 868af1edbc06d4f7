package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	t.Run("default command", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("--cwd", "/home/user/project")
		env.equals(out, pythonReport)
	})

	t.Run("report subcommand", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("report", "--cwd", "/home/user/project")
		env.equals(out, pythonReport)
	})

	t.Run("process working directory", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("report")
		env.contains(out, `path.normpath("//"): '//'`)
		env.contains(out, `path.relpath("a","../..")`)
	})

	t.Run("node dialect", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("report", "-d", "node", "--cwd", "/home/user/project")
		env.contains(out, `path.normalize("//"): '/'`)
		env.contains(out, `path.basename("a/b/"): 'b'`)
		env.contains(out, `path.join("a","/b"): 'a/b'`)
		env.notContains(out, "without extname")
	})

	t.Run("go dialect", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("report", "--dialect", "go")
		env.contains(out, `path.Clean("//"): '/'`)
		env.contains(out, `path.Ext("main.mbt.md/"): ''`)
	})

	t.Run("dialect from config", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "dialect", "node")
		out := env.run("report")
		env.contains(out, `path.normalize("//"): '/'`)
	})

	t.Run("cwd from config", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "cwd", "/home/user/project")
		out := env.run()
		env.equals(out, pythonReport)
	})
}

func TestReport_Suite(t *testing.T) {
	env := newTestEnv(t)
	file := env.writeFile("cases.yaml", `dialect: node
cwd: /srv/app
cases:
  - op: resolve
    args: ["x"]
  - comment: "# done"
`)

	out := env.run("report", "--suite", file)
	env.equals(out, "path.resolve(\"x\"): '/srv/app/x'\n# done")

	out = env.run("report", "--suite", file, "--cwd", "/tmp")
	env.contains(out, `path.resolve("x"): '/tmp/x'`)

	out = env.run("report", "--suite", file, "-d", "python", "--cwd", "/tmp")
	env.contains(out, `path.abspath("x"): '/tmp/x'`)
}

func TestReport_Record(t *testing.T) {
	env := newTestEnv(t)
	out := env.run("report", "--record", "--cwd", "/home/user/project")
	env.contains(out, "dialect: python")
	env.contains(out, "cwd: /home/user/project")
	env.contains(out, "want: user/project/a")

	file := env.writeFile("recorded.yaml", out)
	out = env.run("check", file)
	env.contains(out, "6 passed, 0 failed, 0 skipped")
}

func TestReport_JSON(t *testing.T) {
	env := newTestEnv(t)
	out := env.run("report", "-o", "json", "--cwd", "/home/user/project")

	var got struct {
		Dialect string `json:"dialect"`
		Cwd     string `json:"cwd"`
		Results []struct {
			Label   string `json:"label"`
			Value   string `json:"value"`
			Comment bool   `json:"comment"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "python", got.Dialect)
	assert.Equal(t, "/home/user/project", got.Cwd)
	require.Len(t, got.Results, 7)
	assert.Equal(t, `path.dirname("a/b/")`, got.Results[1].Label)
	assert.Equal(t, "a/b", got.Results[1].Value)
	assert.True(t, got.Results[4].Comment)
}

func TestReport_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown dialect", []string{"report", "-d", "ruby"}},
		{"relative cwd", []string{"report", "--cwd", "rel/dir"}},
		{"missing suite", []string{"report", "--suite", "nope.yaml"}},
		{"invalid output", []string{"report", "-o", "xml"}},
		{"positional args", []string{"report", "extra"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.runErr(tc.args...)
			assert.Error(t, err)
		})
	}

	t.Run("failing call stops the report", func(t *testing.T) {
		env := newTestEnv(t)
		file := env.writeFile("bad.yaml", `dialect: python
cases:
  - op: join
    args: ["a"]
  - op: relative
    args: [""]
  - op: join
    args: ["never"]
`)
		out, err := env.runErr("report", "--suite", file)
		assert.Error(t, err)
		env.contains(out, `path.join("a"): 'a'`)
		env.notContains(out, "never")
	})

	t.Run("json error", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("report", "-o", "json", "-d", "ruby")
		assert.Error(t, err)
		env.contains(out, `"error"`)
	})
}
