package qsgen

import (
	"strings"
	"unicode"
)

// specials are the runes with syntactic meaning in the query grammar.
// The backslash is included so that escapes already present in the input
// can't combine with the ones we add.
const specials = `+-&|!(){}[]^~?*:;\`

func isSpecial(r rune) bool {
	return strings.ContainsRune(specials, r)
}

// isSpecialOrBlank counts all whitespace as blank, matching the tokens
// a split value is cut into.
func isSpecialOrBlank(r rune) bool {
	return unicode.IsSpace(r) || isSpecial(r)
}

// escapeFunc puts a backslash before every rune for which esc returns true.
func escapeFunc(s string, esc func(rune) bool) string {
	if strings.IndexFunc(s, esc) < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for _, r := range s {
		if esc(r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// EscapeWithBlanks escapes special characters and blanks.
func EscapeWithBlanks(s string) string {
	return escapeFunc(s, isSpecialOrBlank)
}

// EscapeKeepBlanks escapes special characters, leaving blanks alone.
func EscapeKeepBlanks(s string) string {
	return escapeFunc(s, isSpecial)
}

// EscapeQuotes turns every " into \".
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// RemoveQuotes deletes every ".
func RemoveQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// StripSpecials deletes special characters and blanks, then escapes quotes.
func StripSpecials(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if isSpecialOrBlank(r) {
			return -1
		}
		return r
	}, s)
	return EscapeQuotes(stripped)
}

// EscapeAll makes s safe to use as a single literal term.
func EscapeAll(s string) string {
	return EscapeQuotes(EscapeWithBlanks(s))
}

// escapePhrase makes s safe to use between the quotes of a phrase.
func escapePhrase(s string) string {
	return EscapeQuotes(strings.ReplaceAll(s, `\`, `\\`))
}
