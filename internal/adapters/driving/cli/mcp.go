package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can clean text.

Tools: clean_text, squeeze_text, estimate_tokens.

By default the server communicates over stdio using JSON-RPC. Use --port (or
CLEANPASTE_MCP_PORT) to serve streamable HTTP instead.

Examples:
  # Stdio mode (default, for desktop assistants)
  cleanpaste mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  cleanpaste mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "cleanpaste": {
        "command": "/path/to/cleanpaste",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port := mcpPort
	if cmd.Flags().Changed("port") {
		p, err := cmd.Flags().GetInt("port")
		if err != nil {
			return fmt.Errorf("getting port flag: %w", err)
		}
		port = p
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Normaliser: normaliserService,
		Settings:   settingsService,
		Extractor:  extractService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
