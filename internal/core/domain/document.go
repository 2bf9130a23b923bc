package domain

// Document is the input text for a single normalisation run.
// It is never modified; stages produce new strings from it.
type Document struct {
	// Original is the text exactly as supplied by the caller.
	Original string
}

// NewDocument wraps input text in a Document.
func NewDocument(text string) *Document {
	return &Document{Original: text}
}
