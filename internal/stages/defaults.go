package stages

import (
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

// Stage names, also reported in domain.TransformResult.Stages.
const (
	NameZeroWidth   = "zero_width"
	NameLineBreaks  = "line_breaks"
	NameEmoji       = "emoji"
	NameCase        = "case"
	NameWhitespace  = "whitespace"
	NameStopWords   = "stop_words"
	NameCodeCompact = "code_compact"
)

// RegisterDefaults registers all built-in stages in canonical order.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(NameZeroWidth, buildZeroWidth)
	r.Register(NameLineBreaks, buildLineBreaks)
	r.Register(NameEmoji, buildEmoji)
	r.Register(NameCase, buildCase)
	r.Register(NameWhitespace, buildWhitespace)
	r.Register(NameStopWords, buildStopWords)
	r.Register(NameCodeCompact, buildCodeCompact)
}

func buildZeroWidth(cfg domain.TransformConfig) (driven.Stage, bool) {
	return ZeroWidth{}, cfg.RemoveZeroWidth
}

func buildLineBreaks(cfg domain.TransformConfig) (driven.Stage, bool) {
	return LineBreaks{}, cfg.FixLineBreaks
}

func buildEmoji(cfg domain.TransformConfig) (driven.Stage, bool) {
	return Emoji{}, cfg.RemoveEmojis
}

// buildCase skips the stage for CaseNone, the zero value and unknown modes.
func buildCase(cfg domain.TransformConfig) (driven.Stage, bool) {
	switch {
	case cfg.CaseMode == "" || cfg.CaseMode == domain.CaseNone:
		return nil, false
	case !cfg.CaseMode.IsValid():
		logger.Warn("unknown case mode %q, leaving case unchanged", cfg.CaseMode)
		return nil, false
	}
	return NewCase(cfg.CaseMode), true
}

func buildWhitespace(cfg domain.TransformConfig) (driven.Stage, bool) {
	return Whitespace{}, cfg.CollapseWhitespace
}

func buildStopWords(cfg domain.TransformConfig) (driven.Stage, bool) {
	return StopWords{}, cfg.StripStopWords
}

func buildCodeCompact(cfg domain.TransformConfig) (driven.Stage, bool) {
	return CodeCompact{}, cfg.CodeCompact
}
