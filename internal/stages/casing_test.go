package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

func TestApplyCase(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.CaseMode
		input    string
		expected string
	}{
		{"lower", domain.CaseLower, "Hello WORLD", "hello world"},
		{"upper", domain.CaseUpper, "Hello éclair", "HELLO ÉCLAIR"},
		{"none", domain.CaseNone, "MiXeD", "MiXeD"},
		{"unknown", domain.CaseMode("camel"), "MiXeD", "MiXeD"},
		{"sentence", domain.CaseSentence, "hello. world", "Hello. World"},
		{"title", domain.CaseTitle, "hello WORLD", "Hello World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyCase(tt.input, tt.mode))
		})
	}
}

func TestToSentenceCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sentence terminators", "hello world. this is it! really? yes", "Hello world. This is it! Really? Yes"},
		{"leading whitespace", "  leading space", "  Leading space"},
		{"other capitals untouched", "hello NASA. ok", "Hello NASA. Ok"},
		{"abbreviations", "e.g. this", "E.G. This"},
		{"no-break space after terminator", "ok!\u00a0yes", "Ok!\u00a0Yes"},
		{"ideographic space after terminator", "done.\u3000next", "Done.\u3000Next"},
		{"leading no-break space", "\u00a0start", "\u00a0Start"},
		{"ellipsis", "wait...what", "Wait...What"},
		{"newline after terminator", "one.\ntwo", "One.\nTwo"},
		{"starts with digit", "1. item", "1. Item"},
		{"accented letter", "état. été", "État. Été"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSentenceCase(tt.input))
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"basic", "the quick BROWN fox", "The Quick Brown Fox"},
		{"hyphen stays in one word", "foo-bar", "Foo-bar"},
		{"leading punctuation", "(test) case", "(Test) Case"},
		{"apostrophe", "don't STOP", "Don't Stop"},
		{"digits first", "123abc DEF", "123abc Def"},
		{"preserves spacing", "a  b\tc\nd", "A  B\tC\nD"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToTitleCase(tt.input))
		})
	}
}

// Sentence and title case only ever produce output that maps to itself,
// including around runs of terminators such as "?!" and "...".
func TestCase_Idempotent(t *testing.T) {
	inputs := []string{
		"what?! no way... really.yes",
		"e.g. i.e. etc.",
		"MIXED case. text!",
	}

	for _, input := range inputs {
		sentence := ToSentenceCase(input)
		assert.Equal(t, sentence, ToSentenceCase(sentence), "sentence: %q", input)

		title := ToTitleCase(input)
		assert.Equal(t, title, ToTitleCase(title), "title: %q", input)
	}
}

func TestCase_Stage(t *testing.T) {
	stage := NewCase(domain.CaseUpper)

	assert.Equal(t, NameCase, stage.Name())
	assert.Equal(t, domain.CaseUpper, stage.Mode())
	assert.Equal(t, "ABC", stage.Apply(nil, "abc"))
}
