package commands

import (
	"glpi-insights/internal/mcp"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP tool server over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(cfg, loader)
		return server.Start(cmd.Context(), Version)
	},
}
