package options

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

func TestNewPanel_NilDefaults(t *testing.T) {
	p := NewPanel(nil, nil, domain.DefaultTransformConfig())

	require.NotNil(t, p)
	assert.NotNil(t, p.styles)
	assert.NotNil(t, p.keymap)
	assert.Equal(t, domain.DefaultTransformConfig(), p.Config())
}

func TestPanel_View_Defaults(t *testing.T) {
	p := NewPanel(nil, nil, domain.DefaultTransformConfig())
	p.SetWidth(400)

	view := p.View()

	assert.Contains(t, view, "F2 ● zero-width")
	assert.Contains(t, view, "F3 ○ line breaks")
	assert.Contains(t, view, "F5 case: Unchanged")
	assert.Contains(t, view, "F8 ○ code")
	assert.NotContains(t, view, "\n")
}

func TestPanel_SetConfig(t *testing.T) {
	p := NewPanel(nil, nil, domain.DefaultTransformConfig())
	p.SetWidth(400)

	p.SetConfig(domain.TransformConfig{
		RemoveEmojis:   true,
		CaseMode:       domain.CaseTitle,
		StripStopWords: true,
	})
	view := p.View()

	assert.Contains(t, view, "F2 ○ zero-width")
	assert.Contains(t, view, "F4 ● emoji")
	assert.Contains(t, view, "F5 case: Title Case")
	assert.Contains(t, view, "F7 ● stop words")
}

func TestPanel_EmptyCaseModeShownAsNone(t *testing.T) {
	p := NewPanel(nil, nil, domain.TransformConfig{})

	assert.Contains(t, p.View(), "case: Unchanged")
}

func TestPanel_View_WrapsWhenNarrow(t *testing.T) {
	p := NewPanel(nil, nil, domain.DefaultTransformConfig())
	p.SetWidth(40)

	lines := strings.Split(p.View(), "\n")

	assert.Greater(t, len(lines), 1)
}

func TestPanel_SetStyles(t *testing.T) {
	p := NewPanel(nil, nil, domain.DefaultTransformConfig())
	light := styles.ForTheme(domain.ThemeLight)

	p.SetStyles(light)
	assert.Same(t, light, p.styles)

	p.SetStyles(nil)
	assert.Same(t, light, p.styles)
}
