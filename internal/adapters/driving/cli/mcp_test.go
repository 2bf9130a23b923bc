package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_HelpListsTools(t *testing.T) {
	out, _, err := execute(t, nil, "mcp", "serve", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "clean_text")
	assert.Contains(t, out, "squeeze_text")
	assert.Contains(t, out, "estimate_tokens")
}

func TestMCPServeCmd_RequiresNormaliser(t *testing.T) {
	setupTestServices(t)
	normaliserService = nil

	_, _, err := execute(t, nil, "mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingNormaliserService)
}
