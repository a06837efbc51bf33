// cmd/literary-agent/cmd_mcp.go
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/openclaw/literary-agent/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server over stdio for agent integration",
	Long: `Starts an MCP server over stdin/stdout. Agent hosts connect through their
MCP configuration and call the outreach, pricing, dashboard and social tools
directly.

The server monitors for parent process death. When the host disconnects or
restarts, the server self-terminates to prevent zombie processes.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	mcp.Version = version
	srv := mcp.NewServer(tk.outreach, tk.pricing, tk.dashboard, tk.social, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcp.WatchParent(ctx, logger, cancel)

	return srv.Run(ctx)
}
