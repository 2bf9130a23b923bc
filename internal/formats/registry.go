package formats

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
	"github.com/custodia-labs/cleanpaste/internal/formats/html"
	"github.com/custodia-labs/cleanpaste/internal/formats/markdown"
	"github.com/custodia-labs/cleanpaste/internal/formats/plaintext"
)

// sniffLen is how much content is inspected when detecting a format.
const sniffLen = 512

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry holds extractors keyed by format, extension and media type.
type Registry struct {
	mu         sync.RWMutex
	byFormat   map[domain.InputFormat]driven.TextExtractor
	byExt      map[string]domain.InputFormat
	byMIMEType map[string]domain.InputFormat
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byFormat:   make(map[domain.InputFormat]driven.TextExtractor),
		byExt:      make(map[string]domain.InputFormat),
		byMIMEType: make(map[string]domain.InputFormat),
	}
}

// NewDefaultRegistry creates a registry with the text, HTML and Markdown extractors.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(html.New())
	r.Register(markdown.New())
	return r
}

// Register adds an extractor, replacing any for the same format.
func (r *Registry) Register(e driven.TextExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := e.Format()
	r.byFormat[f] = e
	for _, ext := range e.Extensions() {
		r.byExt[strings.ToLower(ext)] = f
	}
	for _, mt := range e.MIMETypes() {
		r.byMIMEType[mt] = f
	}
}

// Get returns the extractor for a concrete format.
func (r *Registry) Get(format domain.InputFormat) (driven.TextExtractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byFormat[format]
	return e, ok
}

// Detect picks a format from the file extension of pathHint, then from the
// sniffed media type of content. Falls back to FormatText.
func (r *Registry) Detect(pathHint, content string) domain.InputFormat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if pathHint != "" {
		if f, ok := r.byExt[strings.ToLower(filepath.Ext(pathHint))]; ok {
			return f
		}
	}

	head := content
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType([]byte(head)))
	if err == nil {
		if f, ok := r.byMIMEType[mediaType]; ok && f != domain.FormatText {
			return f
		}
	}
	return domain.FormatText
}
