package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *handlers {
	return &handlers{env: dialect.Env{Cwd: "/home/user/project"}, dialect: "python"}
}

func call(t *testing.T, fn func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := fn(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func TestEval(t *testing.T) {
	h := newTestHandlers()

	t.Run("default dialect", func(t *testing.T) {
		res := call(t, h.eval, map[string]any{"op": "join", "args": []any{"a", "/b"}})
		require.False(t, res.IsError, text(t, res))

		var out map[string]string
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
		assert.Equal(t, "python", out["dialect"])
		assert.Equal(t, "/b", out["value"])
		assert.Equal(t, `path.join("a","/b"): '/b'`, out["line"])
	})

	t.Run("cwd argument", func(t *testing.T) {
		res := call(t, h.eval, map[string]any{
			"op":      "relative",
			"args":    []any{"../..", "a"},
			"dialect": "node",
			"cwd":     "/srv/x/y",
		})
		require.False(t, res.IsError, text(t, res))

		var out map[string]string
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
		assert.Equal(t, "x/y/a", out["value"])
	})

	tests := []struct {
		name string
		args map[string]any
	}{
		{"unknown dialect", map[string]any{"op": "join", "args": []any{"a"}, "dialect": "ruby"}},
		{"unknown op", map[string]any{"op": "splitext", "args": []any{"a"}}},
		{"unsupported op", map[string]any{"op": "extname", "args": []any{"a.md"}}},
		{"wrong arity", map[string]any{"op": "relative", "args": []any{"a"}}},
		{"relative cwd", map[string]any{"op": "resolve", "args": []any{"a"}, "cwd": "rel"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := call(t, h.eval, tc.args)
			assert.True(t, res.IsError)
		})
	}
}

func TestReport(t *testing.T) {
	h := newTestHandlers()

	res := call(t, h.report, map[string]any{})
	require.False(t, res.IsError)
	out := text(t, res)
	assert.Contains(t, out, `path.normpath("//"): '//'`)
	assert.Contains(t, out, `path.relpath("a","../.."): 'user/project/a'`)

	res = call(t, h.report, map[string]any{"dialect": "go"})
	require.False(t, res.IsError)
	assert.Contains(t, text(t, res), `path.Clean("//"): '/'`)
}

func TestCompareTool(t *testing.T) {
	h := newTestHandlers()

	res := call(t, h.compare, map[string]any{})
	require.False(t, res.IsError)

	var out struct {
		Dialects []string `json:"dialects"`
		Rows     []struct {
			Op string `json:"op"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
	assert.Equal(t, []string{"go", "node", "node-win32", "python"}, out.Dialects)
	assert.NotEmpty(t, out.Rows)
}

func TestGuideTool(t *testing.T) {
	h := newTestHandlers()

	res := call(t, h.getGuide, map[string]any{})
	assert.Contains(t, text(t, res), "pathoracle Guide")

	res = call(t, h.getGuide, map[string]any{"topic": "nonexistent"})
	assert.Contains(t, text(t, res), "available_topics")
}

func TestReadSuite(t *testing.T) {
	h := newTestHandlers()

	var req mcp.ReadResourceRequest
	req.Params.URI = "pathoracle://suites/node"
	contents, err := h.readSuite(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, tc.Text, "dialect: node")

	for _, uri := range []string{"pathoracle://suites/", "other://suites/node", "pathoracle://suites/a/b"} {
		req.Params.URI = uri
		_, err := h.readSuite(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidURI, uri)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newLogHandler(&buf)).Info("ready", "dialect", "node")
	assert.Contains(t, buf.String(), "pathoracle")
	assert.Contains(t, buf.String(), "ready")
	assert.Contains(t, buf.String(), "dialect=node")
}

func TestNewServer(t *testing.T) {
	s := newServer(newTestHandlers())
	assert.NotNil(t, s)
}
