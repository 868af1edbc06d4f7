// serve.go implements "pathoracle serve" for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package cmd

import (
	"github.com/jpl-au/pathoracle/internal/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server",
	Long: `Start an MCP (Model Context Protocol) server over stdio.

The --dialect and --cwd flags set the defaults for tool calls that do not
name their own:
  pathoracle serve --dialect node --cwd /srv/app`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(c *cobra.Command, _ []string) error {
	env, err := Env()
	if err != nil {
		return PrintJSONError(c, err)
	}
	return mcp.Serve(env, DialectName())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
