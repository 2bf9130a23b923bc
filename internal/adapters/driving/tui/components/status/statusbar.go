// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady  State = "ready"
	StateCopied State = "copied"
	StateError  State = "error"
)

// Bar displays transform metrics, transient messages and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	result  *domain.TransformResult
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the message or the metrics of the last run.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateCopied:
		return s.styles.Success.Render(s.message)
	case StateReady:
	}

	if s.result == nil || s.result.OriginalLength == 0 {
		return s.styles.Muted.Render("Ready")
	}
	return s.styles.Normal.Render(Metrics(s.result))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// Metrics formats the size and token figures of a result on one line.
func Metrics(r *domain.TransformResult) string {
	return fmt.Sprintf("%d → %d chars (-%d, %s) | ~%d → ~%d tokens",
		r.OriginalLength, r.ResultLength, r.RemovedCount, r.SavingsDisplay(),
		r.OriginalTokens, r.ResultTokens)
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetResult sets the metrics source.
func (s *Bar) SetResult(result *domain.TransformResult) {
	s.result = result
}

// SetStyles replaces the styles, used when the theme changes.
func (s *Bar) SetStyles(st *styles.Styles) {
	if st != nil {
		s.styles = st
	}
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear drops any message and returns to the ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
