package qsgen

import (
	"bytes"
)

// Query accumulates query text.
//
// It owns its buffer and a default Modifier, used by the calls which don't
// take an explicit one (Add, AddFieldDefault). A Query is not safe for
// concurrent use.
type Query struct {
	buf bytes.Buffer
	mod Modifier
}

// New returns an empty Query with the zero default Modifier.
func New() *Query {
	return &Query{}
}

// NewFrom returns a Query whose buffer starts out holding text, verbatim.
func NewFrom(text string, m Modifier) *Query {
	q := &Query{mod: m}
	q.buf.WriteString(text)
	return q
}

// String returns the query text built so far.
func (q *Query) String() string {
	return q.buf.String()
}

// Len returns the length of the query text in bytes.
func (q *Query) Len() int {
	return q.buf.Len()
}

// Reset empties the buffer, keeping the default Modifier.
func (q *Query) Reset() *Query {
	q.buf.Reset()
	return q
}

// Modifier returns the default Modifier.
func (q *Query) Modifier() Modifier {
	return q.mod
}

// SetModifier replaces the default Modifier.
func (q *Query) SetModifier(m Modifier) *Query {
	q.mod = m
	return q
}

// IsWildcarded reports whether the default Modifier is wildcarded.
func (q *Query) IsWildcarded() bool {
	return q.mod.wildcarded
}

// Add dispatches v using the default Modifier.
func (q *Query) Add(v any) *Query {
	return q.AddArgument(v, q.mod)
}

// AddFieldDefault adds a field clause using the default Modifier.
func (q *Query) AddFieldDefault(key string, v any) *Query {
	return q.AddField(key, v, q.mod)
}

// buffer primitives used for back-patching

func (q *Query) mark() int { return q.buf.Len() }

func (q *Query) truncate(n int) { q.buf.Truncate(n) }

// lastByte returns the final byte of the buffer, or 0 if it is empty.
func (q *Query) lastByte() byte {
	b := q.buf.Bytes()
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1]
}

func (q *Query) write(s string) { q.buf.WriteString(s) }
