package qsgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscaping(t *testing.T) {
	data := []struct {
		input      string
		withBlanks string
		keepBlanks string
		all        string
		stripped   string
	}{
		{``, ``, ``, ``, ``},
		{`plain`, `plain`, `plain`, `plain`, `plain`},
		{`a b`, `a\ b`, `a b`, `a\ b`, `ab`},
		{`c++`, `c\+\+`, `c\+\+`, `c\+\+`, `c`},
		{`AT&T`, `AT\&T`, `AT\&T`, `AT\&T`, `ATT`},
		{`title:(x)`, `title\:\(x\)`, `title\:\(x\)`, `title\:\(x\)`, `titlex`},
		{`[1 TO 5]`, `\[1\ TO\ 5\]`, `\[1 TO 5\]`, `\[1\ TO\ 5\]`, `1TO5`},
		{`a|b!c{d}e^f~g?h*i;j-k`, `a\|b\!c\{d\}e\^f\~g\?h\*i\;j\-k`, `a\|b\!c\{d\}e\^f\~g\?h\*i\;j\-k`, `a\|b\!c\{d\}e\^f\~g\?h\*i\;j\-k`, `abcdefghijk`},
		{`say "hi"`, `say\ "hi"`, `say "hi"`, `say\ \"hi\"`, `say\"hi\"`},
		{`back\slash`, `back\\slash`, `back\\slash`, `back\\slash`, `backslash`},
		{`trüffel`, `trüffel`, `trüffel`, `trüffel`, `trüffel`},
		{"a\tb\nc", "a\\\tb\\\nc", "a\tb\nc", "a\\\tb\\\nc", `abc`},
	}

	for _, dat := range data {
		assert.Equal(t, dat.withBlanks, EscapeWithBlanks(dat.input), "EscapeWithBlanks(%q)", dat.input)
		assert.Equal(t, dat.keepBlanks, EscapeKeepBlanks(dat.input), "EscapeKeepBlanks(%q)", dat.input)
		assert.Equal(t, dat.all, EscapeAll(dat.input), "EscapeAll(%q)", dat.input)
		assert.Equal(t, dat.stripped, StripSpecials(dat.input), "StripSpecials(%q)", dat.input)
	}
}

func TestQuotes(t *testing.T) {
	assert.Equal(t, `\"a\" b`, EscapeQuotes(`"a" b`))
	assert.Equal(t, `a b`, RemoveQuotes(`"a" b`))
	assert.Equal(t, ``, EscapeQuotes(``))
	assert.Equal(t, ``, RemoveQuotes(``))
	assert.Equal(t, `\"a\\b\"`, escapePhrase(`"a\b"`))
}

// EscapeAll output is always a single literal: no special, blank or quote
// is left without a backslash in front of it.
func TestEscapeAllLeavesNothingUnescaped(t *testing.T) {
	inputs := []string{
		``, ` `, `   `, `"`, `""`, `\`, `\\`, `\"`, `\ `, `a\+b`,
		`+-&|!(){}[]^~?*:;`, `"quoted phrase" -minus +plus`,
		`x*`, `*x`, `a b c`, "tab\tand space",
	}
	for _, in := range inputs {
		out := []rune(EscapeAll(in))
		for i := 0; i < len(out); i++ {
			r := out[i]
			if r == '\\' {
				i++
				continue
			}
			assert.False(t, r == '"' || isSpecialOrBlank(r), "unescaped %q in EscapeAll(%q) = %q", r, in, string(out))
		}
	}
}
