// Package keymap defines keybindings for the TUI.
//
// Option toggles sit on function keys so that every printable key and
// the usual editing shortcuts stay with the editor.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full help view.
	Help key.Binding

	// ToggleZeroWidth flips zero-width removal.
	ToggleZeroWidth key.Binding

	// ToggleLineBreaks flips line-break repair.
	ToggleLineBreaks key.Binding

	// ToggleEmoji flips emoji removal.
	ToggleEmoji key.Binding

	// CycleCase moves to the next case mode.
	CycleCase key.Binding

	// ToggleWhitespace flips whitespace collapsing.
	ToggleWhitespace key.Binding

	// ToggleStopWords flips stop-word stripping.
	ToggleStopWords key.Binding

	// ToggleCode flips code compaction.
	ToggleCode key.Binding

	// ToggleTheme switches between dark and light.
	ToggleTheme key.Binding

	// Copy copies the cleaned output to the clipboard.
	Copy key.Binding

	// Clear empties the editor.
	Clear key.Binding

	// SwitchPane moves focus between editor and preview.
	SwitchPane key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		ToggleZeroWidth: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "zero-width"),
		),
		ToggleLineBreaks: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "line breaks"),
		),
		ToggleEmoji: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "emoji"),
		),
		CycleCase: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "case"),
		),
		ToggleWhitespace: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("F6", "whitespace"),
		),
		ToggleStopWords: key.NewBinding(
			key.WithKeys("f7"),
			key.WithHelp("F7", "stop words"),
		),
		ToggleCode: key.NewBinding(
			key.WithKeys("f8"),
			key.WithHelp("F8", "code"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("f9"),
			key.WithHelp("F9", "theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleZeroWidth, k.ToggleLineBreaks, k.ToggleEmoji, k.CycleCase},
		{k.ToggleWhitespace, k.ToggleStopWords, k.ToggleCode},
		{k.ToggleTheme, k.Copy, k.Clear, k.SwitchPane},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
