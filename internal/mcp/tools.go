// tools.go implements the MCP tool handlers.
//
// Evaluation failures are returned as MCP error results so the client sees
// the message; Go errors are reserved for failures of the server itself.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/pathoracle/guide"
	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/jpl-au/pathoracle/internal/oracle"
	"github.com/jpl-au/pathoracle/internal/workdir"
	"github.com/mark3labs/mcp-go/mcp"
)

// envFor returns the environment for a call: the cwd argument when given,
// otherwise the server default.
func (h *handlers) envFor(req mcp.CallToolRequest) (dialect.Env, error) {
	cwd := getString(req, "cwd", "")
	if cwd == "" {
		return h.env, nil
	}
	dir, err := workdir.Normalise(cwd)
	if err != nil {
		return dialect.Env{}, err
	}
	return dialect.Env{Cwd: dir}, nil
}

// eval handles pathoracle_eval tool calls.
func (h *handlers) eval(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := getString(req, "dialect", h.dialect)
	l := log.Event("mcp:eval", "eval").Dialect(name)

	d, err := dialect.Get(name)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	op, err := dialect.ParseOp(getString(req, "op", ""))
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	env, err := h.envFor(req)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Cwd(env.Cwd)

	r, err := oracle.Evaluate(d, env, oracle.Case{Op: op, Args: getStrings(req, "args")})
	l.Cases(1).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"dialect": d.Name(),
		"cwd":     env.Cwd,
		"label":   r.Label,
		"value":   r.Value,
		"line":    r.Line(),
	})
}

// report handles pathoracle_report tool calls.
func (h *handlers) report(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := getString(req, "dialect", h.dialect)
	l := log.Event("mcp:report", "report").Dialect(name)

	env, err := h.envFor(req)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	s, err := oracle.Builtin(name)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	results, err := oracle.Report(&b, env, s)
	l.Cwd(env.Cwd).Cases(len(results)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

// compare handles pathoracle_compare tool calls.
func (h *handlers) compare(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := log.Event("mcp:compare", "compare")

	env, err := h.envFor(req)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	cases, err := oracle.CompareCases()
	if err != nil {
		l.Write(err)
		return nil, fmt.Errorf("loading built-in cases: %w", err)
	}
	rows, err := oracle.Compare(dialect.Names(), env, cases)
	l.Cwd(env.Cwd).Cases(len(rows)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"dialects": dialect.Names(),
		"cwd":      env.Cwd,
		"rows":     rows,
	})
}

// getGuide handles pathoracle_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
