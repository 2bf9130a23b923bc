package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

func TestNull(t *testing.T) {
	c := NewNull()

	assert.False(t, c.Available())
	assert.ErrorIs(t, c.WriteText("anything"), domain.ErrClipboardUnavailable)
}

func TestNew(t *testing.T) {
	assert.IsType(t, &Null{}, New(false))
	assert.IsType(t, &System{}, New(true))
}

func TestSystem_WriteText_UsesBackend(t *testing.T) {
	var got string
	s := &System{write: func(text string) error {
		got = text
		return nil
	}}

	assert.NoError(t, s.WriteText("copied"))
	assert.Equal(t, "copied", got)
}

func TestSystem_WriteText_PropagatesError(t *testing.T) {
	s := &System{write: func(string) error { return errors.New("no xclip") }}

	assert.EqualError(t, s.WriteText("x"), "no xclip")
}
