// Package mcp implements the Model Context Protocol server, exposing
// pathoracle evaluation to LLM clients. An assistant can ask how a given path
// library treats an input instead of guessing.
package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/jpl-au/pathoracle/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio. env supplies the working directory
// for cwd-dependent operations when a tool call does not pin one.
func Serve(env dialect.Env, defaultDialect string) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	slog.SetDefault(slog.New(newLogHandler(os.Stderr)))

	s := newServer(&handlers{env: env, dialect: defaultDialect})

	slog.Info("pathoracle MCP server ready", "version", version.Short(), "transport", "stdio", "dialect", defaultDialect)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// newLogHandler returns the slog handler for server diagnostics.
func newLogHandler(w io.Writer) slog.Handler {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "pathoracle",
	})
}

func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"pathoracle",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)
	registerResources(s, h)
	registerTools(s, h)
	return s
}

// handlers carries the defaults tool calls fall back to.
type handlers struct {
	env     dialect.Env
	dialect string
}

// registerResources exposes the built-in suites as YAML resources.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"pathoracle://suites/{dialect}",
			"Built-in suite",
			mcp.WithTemplateDescription("The built-in case list of a dialect, with recorded values"),
			mcp.WithTemplateMIMEType("application/yaml"),
		),
		h.readSuite,
	)
}

// registerTools exposes pathoracle operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("pathoracle_eval",
			mcp.WithDescription("Evaluate one path operation in a dialect and return its result"),
			mcp.WithString("op", mcp.Required(), mcp.Description("Operation: normalize, dirname, basename, extname, relative, join, resolve")),
			mcp.WithArray("args", mcp.Required(), mcp.Description("Positional string arguments; relative takes base, target"), mcp.WithStringItems()),
			mcp.WithString("dialect", mcp.Description("python, node, node-win32 or go (default: configured dialect)")),
			mcp.WithString("cwd", mcp.Description("Absolute working directory for relative/resolve")),
		),
		h.eval,
	)

	s.AddTool(
		mcp.NewTool("pathoracle_report",
			mcp.WithDescription("Run a dialect's built-in report and return its lines"),
			mcp.WithString("dialect", mcp.Description("python, node, node-win32 or go (default: configured dialect)")),
			mcp.WithString("cwd", mcp.Description("Absolute working directory for relative/resolve")),
		),
		h.report,
	)

	s.AddTool(
		mcp.NewTool("pathoracle_compare",
			mcp.WithDescription("Evaluate the built-in cases in every dialect and return a comparison matrix"),
			mcp.WithString("cwd", mcp.Description("Absolute working directory for relative/resolve")),
		),
		h.compare,
	)

	s.AddTool(
		mcp.NewTool("pathoracle_guide",
			mcp.WithDescription("Read pathoracle documentation"),
			mcp.WithString("topic", mcp.Description("Guide page (empty for the main guide)")),
		),
		h.getGuide,
	)
}
