package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_HelpOutput(t *testing.T) {
	out, _, err := execute(t, nil, "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "interactive terminal user interface")
	assert.Contains(t, out, "Controls:")
	assert.Contains(t, out, "Ctrl+Y")
}

func TestTUICmd_RequiresNormaliser(t *testing.T) {
	setupTestServices(t)
	normaliserService = nil

	_, _, err := execute(t, nil, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}

func TestTUICmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, nil, "tui", "extra")

	assert.Error(t, err)
}
