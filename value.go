package qsgen

import (
	"strconv"
	"strings"
)

// splitBoost weighs the per-token alternative of a split value.
const splitBoost = "0.5"

// exactBoost lifts the exact phrase over the prefix match of a wildcarded value.
const exactBoost = "2"

// AddValue appends value as a clause, honoring the wildcard, fuzzy and
// split settings of m. Blank values add nothing.
//
//	plain:      (v)
//	wildcarded: ("v"^2 v*)
//	fuzzy:      (v~0.7)
//	both:       ("v"^2 v* v~0.7)
//	split:      (a\ b ((a) (b))^0.5)   each token rendered without split
func (q *Query) AddValue(value string, m Modifier) *Query {
	if isBlank(value) {
		return q
	}
	q.write(valueClause(value, m))
	q.write(" ")
	return q
}

func valueClause(value string, m Modifier) string {
	body, _ := valueBody(value, m)
	return m.term.Prefix() + "(" + body + ")"
}

// valueBody returns the text inside the parentheses of a value clause.
// compound is true when the body offers more than one alternative, so it
// can't stand without parentheses.
func valueBody(value string, m Modifier) (body string, compound bool) {
	escaped := EscapeAll(value)

	var alts []string
	if m.wildcarded {
		alts = append(alts,
			`"`+escapePhrase(value)+`"^`+exactBoost,
			escaped+"*")
	}
	if m.fuzzy {
		alts = append(alts, escaped+"~"+formatFloat(m.fuzziness))
	}
	if len(alts) == 0 {
		alts = append(alts, escaped)
	}
	body = strings.Join(alts, " ")
	compound = len(alts) > 1

	if !m.split {
		return body, compound
	}
	tokens := strings.Fields(value)
	if len(tokens) < 2 {
		return body, compound
	}
	// tokens never split again, so this recurses exactly once
	tm := m
	tm.split = false
	clauses := make([]string, len(tokens))
	for i, tok := range tokens {
		clauses[i] = valueClause(tok, tm)
	}
	body += " (" + strings.Join(clauses, " ") + ")^" + splitBoost
	return body, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
