package domain

// InputFormat names the markup an input is written in.
type InputFormat string

// Available input formats.
const (
	// FormatText is plain text, passed through unchanged.
	FormatText InputFormat = "text"

	// FormatHTML is an HTML document or fragment.
	FormatHTML InputFormat = "html"

	// FormatMarkdown is Markdown source.
	FormatMarkdown InputFormat = "markdown"

	// FormatAuto detects the format from the file name or content.
	FormatAuto InputFormat = "auto"
)

// AllInputFormats returns every input format.
func AllInputFormats() []InputFormat {
	return []InputFormat{FormatText, FormatHTML, FormatMarkdown, FormatAuto}
}

// IsValid returns true if the format is recognised.
func (f InputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatHTML, FormatMarkdown, FormatAuto:
		return true
	default:
		return false
	}
}

// Description returns a one-line summary of the format.
func (f InputFormat) Description() string {
	switch f {
	case FormatText:
		return "plain text, passed through unchanged"
	case FormatHTML:
		return "HTML; scripts, styles and markup dropped"
	case FormatMarkdown:
		return "Markdown; text, link text and code kept"
	case FormatAuto:
		return "detect from the file extension or content"
	default:
		return "unknown"
	}
}

// String returns the string representation.
func (f InputFormat) String() string {
	return string(f)
}
