package domain

const unknownDescription = "Unknown"

// CaseMode selects how the case stage rewrites letters.
type CaseMode string

// Available case modes.
const (
	// CaseNone leaves letter case untouched.
	CaseNone CaseMode = "none"

	// CaseLower lowercases the whole text.
	CaseLower CaseMode = "lower"

	// CaseUpper uppercases the whole text.
	CaseUpper CaseMode = "upper"

	// CaseSentence capitalises the first letter of the text and of each sentence.
	CaseSentence CaseMode = "sentence"

	// CaseTitle capitalises the first letter of every word and lowercases the rest.
	CaseTitle CaseMode = "title"
)

// AllCaseModes returns every case mode in display order.
func AllCaseModes() []CaseMode {
	return []CaseMode{CaseNone, CaseLower, CaseUpper, CaseSentence, CaseTitle}
}

// IsValid returns true if the case mode is recognised.
func (m CaseMode) IsValid() bool {
	switch m {
	case CaseNone, CaseLower, CaseUpper, CaseSentence, CaseTitle:
		return true
	default:
		return false
	}
}

// Next returns the mode following m in display order, wrapping around.
// Unknown modes advance to CaseNone.
func (m CaseMode) Next() CaseMode {
	modes := AllCaseModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return CaseNone
}

// String returns the string representation.
func (m CaseMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m CaseMode) Description() string {
	switch m {
	case CaseNone:
		return "Unchanged"
	case CaseLower:
		return "lowercase"
	case CaseUpper:
		return "UPPERCASE"
	case CaseSentence:
		return "Sentence case"
	case CaseTitle:
		return "Title Case"
	default:
		return unknownDescription
	}
}

// TransformConfig selects which pipeline stages run.
// Every field is independent; the stage order is fixed by the pipeline.
type TransformConfig struct {
	// RemoveZeroWidth strips zero-width spaces, joiners and byte-order marks.
	RemoveZeroWidth bool `json:"remove_zero_width"`

	// FixLineBreaks joins hard-wrapped lines while keeping paragraph breaks.
	FixLineBreaks bool `json:"fix_line_breaks"`

	// RemoveEmojis strips emoji and the symbol blocks around them.
	RemoveEmojis bool `json:"remove_emojis"`

	// CaseMode rewrites letter case.
	CaseMode CaseMode `json:"case_mode"`

	// CollapseWhitespace squeezes space runs, blank-line runs and trims the ends.
	CollapseWhitespace bool `json:"collapse_whitespace"`

	// StripStopWords removes high-frequency, low-information words.
	StripStopWords bool `json:"strip_stop_words"`

	// CodeCompact minifies JSON or strips comments and whitespace from code.
	CodeCompact bool `json:"code_compact"`
}

// DefaultTransformConfig returns the default options.
// Only zero-width removal is enabled.
func DefaultTransformConfig() TransformConfig {
	return TransformConfig{
		RemoveZeroWidth: true,
		CaseMode:        CaseNone,
	}
}

// SqueezeLevel is a preset of options aimed at shrinking prompt text.
type SqueezeLevel string

// Available squeeze levels.
const (
	// SqueezeLow only collapses whitespace.
	SqueezeLow SqueezeLevel = "low"

	// SqueezeAggressive also strips stop words.
	SqueezeAggressive SqueezeLevel = "aggressive"

	// SqueezeAdvanced also compacts code and JSON.
	SqueezeAdvanced SqueezeLevel = "advanced"
)

// AllSqueezeLevels returns every squeeze level from mildest to strongest.
func AllSqueezeLevels() []SqueezeLevel {
	return []SqueezeLevel{SqueezeLow, SqueezeAggressive, SqueezeAdvanced}
}

// IsValid returns true if the squeeze level is recognised.
func (l SqueezeLevel) IsValid() bool {
	switch l {
	case SqueezeLow, SqueezeAggressive, SqueezeAdvanced:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l SqueezeLevel) String() string {
	return string(l)
}

// Description returns a human-readable description of the level.
func (l SqueezeLevel) Description() string {
	switch l {
	case SqueezeLow:
		return "Low (whitespace only)"
	case SqueezeAggressive:
		return "Aggressive (whitespace + stop words)"
	case SqueezeAdvanced:
		return "Advanced (whitespace + code/JSON compaction)"
	default:
		return unknownDescription
	}
}

// Config returns the transform options for this level.
// Unknown levels behave like SqueezeLow.
func (l SqueezeLevel) Config() TransformConfig {
	cfg := TransformConfig{
		CaseMode:           CaseNone,
		CollapseWhitespace: true,
	}
	switch l {
	case SqueezeAggressive:
		cfg.StripStopWords = true
	case SqueezeAdvanced:
		cfg.CodeCompact = true
	}
	return cfg
}
