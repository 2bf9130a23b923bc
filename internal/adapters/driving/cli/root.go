// Package cli provides the cobra command tree for cleanpaste.
// It is a driving adapter: every command talks to the core through driving ports.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanpaste/internal/core/ports/driving"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

var (
	normaliserService   driving.NormaliserService
	settingsService     driving.SettingsService
	resultActionService driving.ResultActionService
	extractService      driving.ExtractService

	// watchInterval throttles clean --watch.
	watchInterval time.Duration

	// mcpPort is the default for mcp serve --port.
	mcpPort int

	version = "dev"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cleanpaste",
	Short: "Clean up and squeeze pasted text",
	Long: `cleanpaste normalises text copied from web pages, documents and chats.

It strips zero-width characters, repairs hard-wrapped lines, removes emoji,
rewrites letter case and can shrink prompts for language models by collapsing
whitespace, dropping stop words and compacting code or JSON.

Input is read from a file argument or from standard input.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services holds the driving ports and runtime options used by commands.
type Services struct {
	Normaliser    driving.NormaliserService
	Settings      driving.SettingsService
	ResultAction  driving.ResultActionService
	Extract       driving.ExtractService
	WatchInterval time.Duration
	MCPPort       int
}

// SetServices injects the core services. Call before Execute.
func SetServices(s Services) {
	normaliserService = s.Normaliser
	settingsService = s.Settings
	resultActionService = s.ResultAction
	extractService = s.Extract
	watchInterval = s.WatchInterval
	mcpPort = s.MCPPort
}

// SetVersion sets the version reported by the version command and MCP server.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
