package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNoInput", ErrNoInput},
		{"ErrUnknownSetting", ErrUnknownSetting},
		{"ErrInvalidSetting", ErrInvalidSetting},
		{"ErrClipboardUnavailable", ErrClipboardUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("settings set %q: %w", "ui.colour", ErrUnknownSetting)

	assert.True(t, errors.Is(wrapped, ErrUnknownSetting))
	assert.False(t, errors.Is(wrapped, ErrInvalidSetting))
	assert.Contains(t, wrapped.Error(), "unknown setting")
}
