package stages

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

var (
	lineComment       = regexp.MustCompile(`(?m)//.*$`)
	blockComment      = regexp.MustCompile(`(?s)/\*.*?\*/`)
	punctuationSpaces = regexp.MustCompile(`\s*([{}\[\]()=+\-*/;,])\s*`)
	newlineRun        = regexp.MustCompile(`\n+`)
)

// MinifyJSON re-serialises text in canonical minimal form if it is valid
// JSON, the way a JavaScript parse and stringify round trip would: numbers
// in shortest form, duplicate keys collapsed (last value wins, first
// position kept), integer-like keys first in ascending order, and strings
// with only the escapes JSON requires.
func MinifyJSON(text string) (string, bool) {
	if !gjson.Valid(text) {
		return "", false
	}
	var b strings.Builder
	writeJSON(&b, gjson.Parse(text))
	return b.String(), true
}

func writeJSON(b *strings.Builder, v gjson.Result) {
	switch v.Type {
	case gjson.Null:
		b.WriteString("null")
	case gjson.False:
		b.WriteString("false")
	case gjson.True:
		b.WriteString("true")
	case gjson.Number:
		b.WriteString(formatNumber(v.Num))
	case gjson.String:
		writeString(b, v.Str)
	case gjson.JSON:
		if v.IsArray() {
			writeArray(b, v)
		} else {
			writeObject(b, v)
		}
	}
}

func writeArray(b *strings.Builder, v gjson.Result) {
	b.WriteByte('[')
	first := true
	v.ForEach(func(_, item gjson.Result) bool {
		if !first {
			b.WriteByte(',')
		}
		first = false
		writeJSON(b, item)
		return true
	})
	b.WriteByte(']')
}

func writeObject(b *strings.Builder, v gjson.Result) {
	var keys []string
	values := make(map[string]gjson.Result)
	v.ForEach(func(key, value gjson.Result) bool {
		if _, seen := values[key.Str]; !seen {
			keys = append(keys, key.Str)
		}
		values[key.Str] = value
		return true
	})

	// Array-index keys come first, in numeric order.
	sort.SliceStable(keys, func(i, j int) bool {
		ni, iIndex := arrayIndex(keys[i])
		nj, jIndex := arrayIndex(keys[j])
		if iIndex && jIndex {
			return ni < nj
		}
		return iIndex && !jIndex
	})

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		writeString(b, k)
		b.WriteByte(':')
		writeJSON(b, values[k])
	}
	b.WriteByte('}')
}

// arrayIndex reports whether key is a canonical integer below 2^32-1.
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return n, true
}

// formatNumber prints f like JavaScript's Number.prototype.toString.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + exp
}

// writeString quotes s, escaping only quotes, backslashes and control
// characters.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20:
			b.WriteString(`\u00`)
			b.WriteString(strconv.FormatInt(int64(r)>>4, 16))
			b.WriteString(strconv.FormatInt(int64(r)&0xF, 16))
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
}

// StripCode removes comments and insignificant whitespace from source-like
// text and joins it onto one line.
//
// This is a textual pass, not a parser: "//" inside a string literal (for
// example a URL) starts a comment too.
func StripCode(text string) string {
	text = lineComment.ReplaceAllString(text, "")
	text = blockComment.ReplaceAllString(text, "")
	text = punctuationSpaces.ReplaceAllString(text, "${1}")
	text = horizontalSpace.ReplaceAllString(text, " ")
	return newlineRun.ReplaceAllString(text, "")
}

// CompactCode minifies original when it is JSON; otherwise it strips
// comments and whitespace from text, the output of the earlier stages.
func CompactCode(original, text string) string {
	if minified, ok := MinifyJSON(original); ok {
		return minified
	}
	return StripCode(text)
}

// CodeCompact is the stage wrapping CompactCode.
type CodeCompact struct{}

// Name returns the stage name.
func (CodeCompact) Name() string { return NameCodeCompact }

// Apply compacts the document, preferring the JSON path for the original text.
func (CodeCompact) Apply(doc *domain.Document, text string) string {
	original := text
	if doc != nil {
		original = doc.Original
	}
	return CompactCode(original, text)
}
