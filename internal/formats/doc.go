// Package formats converts formatted input (HTML, Markdown) to plain text
// before it reaches the cleaning pipeline. Each format lives in its own
// subpackage; the Registry selects one by name, file extension or content.
package formats
