// Package options renders the row of transform toggles shown above the panes.
package options

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

const (
	markOn  = "●"
	markOff = "○"
)

// Panel displays the state of each transform option next to its key.
type Panel struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	cfg    domain.TransformConfig
	width  int
}

// NewPanel creates a panel showing cfg.
func NewPanel(s *styles.Styles, km *keymap.KeyMap, cfg domain.TransformConfig) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Panel{styles: s, keymap: km, cfg: cfg, width: 80}
}

// View renders the toggles, wrapping onto a second line when narrow.
func (p *Panel) View() string {
	items := []string{
		p.toggle(p.keymap.ToggleZeroWidth, p.cfg.RemoveZeroWidth),
		p.toggle(p.keymap.ToggleLineBreaks, p.cfg.FixLineBreaks),
		p.toggle(p.keymap.ToggleEmoji, p.cfg.RemoveEmojis),
		p.caseItem(),
		p.toggle(p.keymap.ToggleWhitespace, p.cfg.CollapseWhitespace),
		p.toggle(p.keymap.ToggleStopWords, p.cfg.StripStopWords),
		p.toggle(p.keymap.ToggleCode, p.cfg.CodeCompact),
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, item := range items {
		w := lipgloss.Width(item)
		if lineWidth > 0 && lineWidth+2+w > p.width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString("  ")
			lineWidth += 2
		}
		line.WriteString(item)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (p *Panel) toggle(b key.Binding, on bool) string {
	h := b.Help()
	if on {
		return p.styles.ToggleOn.Render(fmt.Sprintf("%s %s %s", h.Key, markOn, h.Desc))
	}
	return p.styles.ToggleOff.Render(fmt.Sprintf("%s %s %s", h.Key, markOff, h.Desc))
}

func (p *Panel) caseItem() string {
	h := p.keymap.CycleCase.Help()
	mode := p.cfg.CaseMode
	if mode == "" {
		mode = domain.CaseNone
	}
	text := fmt.Sprintf("%s case: %s", h.Key, mode.Description())
	if mode == domain.CaseNone {
		return p.styles.ToggleOff.Render(text)
	}
	return p.styles.ToggleOn.Render(text)
}

// SetConfig updates the displayed options.
func (p *Panel) SetConfig(cfg domain.TransformConfig) {
	p.cfg = cfg
}

// Config returns the displayed options.
func (p *Panel) Config() domain.TransformConfig {
	return p.cfg
}

// SetStyles replaces the styles, used when the theme changes.
func (p *Panel) SetStyles(s *styles.Styles) {
	if s != nil {
		p.styles = s
	}
}

// SetWidth sets the available width.
func (p *Panel) SetWidth(width int) {
	p.width = width
}
