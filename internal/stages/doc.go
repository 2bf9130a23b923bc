// Package stages provides the text-normalisation stages and the pipeline
// that chains them.
//
// Each stage is a small pure function (StripZeroWidth, RepairLineBreaks,
// StripEmoji, ApplyCase, CollapseWhitespace, StripStopWords, CompactCode)
// wrapped in a type implementing driven.Stage. The Registry turns a
// domain.TransformConfig into a Pipeline holding only the enabled stages,
// always in registration order:
//
//	zero_width -> line_breaks -> emoji -> case -> whitespace -> stop_words -> code_compact
//
// Configuration selects stages; it never reorders them.
package stages
