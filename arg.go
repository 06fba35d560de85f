package qsgen

import (
	"fmt"
	"reflect"
)

// SubQuery is query text to be nested as-is, without escaping.
type SubQuery string

type argKind int

const (
	argText argKind = iota
	argSeq
	argSub
)

// argument is a value classified for rendering.
type argument struct {
	kind  argKind
	text  string // argText, argSub
	items []any  // argSeq
}

// empty reports whether the argument has nothing to search for.
func (a argument) empty() bool {
	if a.kind == argSeq {
		return len(a.items) == 0
	}
	return isBlank(a.text)
}

// classify decides how v gets rendered. ok is false for nil.
//
// Strings are text; slices and arrays are sequences; *Query, *Builder
// and SubQuery are sub-queries. Anything else falls back to its textual
// form and is treated as text.
func classify(v any) (a argument, ok bool) {
	switch x := v.(type) {
	case nil:
		return a, false
	case string:
		return argument{kind: argText, text: x}, true
	case SubQuery:
		return argument{kind: argSub, text: string(x)}, true
	case *Query:
		if x == nil {
			return a, false
		}
		return argument{kind: argSub, text: x.String()}, true
	case *Builder:
		if x == nil {
			return a, false
		}
		return argument{kind: argSub, text: x.String()}, true
	case []any:
		return argument{kind: argSeq, items: x}, true
	case []string:
		items := make([]any, len(x))
		for i, s := range x {
			items[i] = s
		}
		return argument{kind: argSeq, items: items}, true
	case []byte:
		return argument{kind: argText, text: string(x)}, true
	case fmt.Stringer:
		rv := reflect.ValueOf(x)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return a, false
		}
		return argument{kind: argText, text: x.String()}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return a, false
		}
		return classify(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return a, false
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return argument{kind: argSeq, items: items}, true
	}
	return argument{kind: argText, text: fmt.Sprint(v)}, true
}

// AddArgument appends v with modifier m, whatever v is: text goes through
// AddValue, slices and arrays through AddGroup, and nested queries are
// wrapped in parentheses. nil adds nothing.
func (q *Query) AddArgument(v any, m Modifier) *Query {
	a, ok := classify(v)
	if !ok {
		return q
	}
	switch a.kind {
	case argText:
		q.AddValue(a.text, m)
	case argSeq:
		q.AddGroup(a.items, m)
	case argSub:
		q.addSub(a.text, m)
	}
	return q
}

// AddSubQuery nests the text of sub, which is not escaped again.
func (q *Query) AddSubQuery(sub *Query, m Modifier) *Query {
	if sub == nil {
		return q
	}
	return q.addSub(sub.String(), m)
}

func (q *Query) addSub(text string, m Modifier) *Query {
	if isBlank(text) {
		return q
	}
	q.write(m.term.Prefix() + "(" + text + ") ")
	return q
}
