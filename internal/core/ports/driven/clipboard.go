package driven

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents.
	WriteText(text string) error

	// Available reports whether a clipboard backend exists on this system.
	Available() bool
}
