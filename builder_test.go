package qsgen

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderForwards(t *testing.T) {
	b := NewBuilder(WithModifier(required)).
		Add("adidas").
		AddField("color", []any{"red", "blue"}, disjunct).
		AddRangeField("price", 10, 20, none).
		AddBoost(2)
	require.NoError(t, b.Err())
	assert.True(t, b.Succeeded())
	assert.Equal(t, `+(adidas) color:((red blue)) price:[10 TO 20] ^2 `, b.String())
	assert.Equal(t, required, b.Modifier())
	assert.False(t, b.IsWildcarded())
}

func TestBuilderRecordsFailures(t *testing.T) {
	b := NewBuilder().AddBoost(0)
	assert.False(t, b.Succeeded())
	assert.ErrorIs(t, b.Err(), ErrInvalidBoost)

	// a later success clears Succeeded but Err keeps the first failure
	b.AddValue("x", none)
	assert.True(t, b.Succeeded())
	assert.ErrorIs(t, b.Err(), ErrInvalidBoost)

	b.AddRange(nil, 1, none)
	assert.False(t, b.Succeeded())
	assert.ErrorIs(t, b.Err(), ErrInvalidBoost)
	assert.Equal(t, `(x) `, b.String())
}

func TestBuilderLock(t *testing.T) {
	b := NewBuilder(WithModifier(wild)).Add("adidas")
	assert.False(t, b.Locked())
	b.Lock()
	assert.True(t, b.Locked())

	text := b.String()
	mutators := map[string]func(){
		"SetModifier":     func() { b.SetModifier(required) },
		"Reset":           func() { b.Reset() },
		"Add":             func() { b.Add("x") },
		"AddArgument":     func() { b.AddArgument("x", none) },
		"AddValue":        func() { b.AddValue("x", none) },
		"AddGroup":        func() { b.AddGroup([]any{"x"}, none) },
		"AddSubQuery":     func() { b.AddSubQuery(New().Add("x"), none) },
		"StartField":      func() { b.StartField("f", none) },
		"EndField":        func() { b.EndField() },
		"AddField":        func() { b.AddField("f", "x", none) },
		"AddFieldDefault": func() { b.AddFieldDefault("f", "x") },
		"AddRange":        func() { b.AddRange(1, 2, none) },
		"AddRangeField":   func() { b.AddRangeField("f", 1, 2, none) },
		"AddBoost":        func() { b.AddBoost(2) },
	}
	for name, fn := range mutators {
		fn()
		assert.False(t, b.Succeeded(), name)
		assert.ErrorIs(t, b.Err(), ErrLocked, name)
		assert.Equal(t, text, b.String(), name)
	}

	// reads keep working
	assert.Equal(t, wild, b.Modifier())
	assert.True(t, b.IsWildcarded())
}

func TestBuilderBuild(t *testing.T) {
	b := NewBuilder(WithModifier(required)).AddField("type", `shoe "x"`, none).Lock()

	q := b.Build()
	assert.Equal(t, b.String(), q.String())
	assert.Equal(t, required, q.Modifier())

	// the copy is open and independent
	q.Add("adidas")
	assert.Equal(t, `type:((shoe\ \"x\") ) +(adidas) `, q.String())
	assert.Equal(t, `type:((shoe\ \"x\") ) `, b.String())

	q2 := b.Build()
	assert.Equal(t, `type:((shoe\ \"x\") ) `, q2.String())
	assert.NotSame(t, q, q2)

	// Build works on an open builder too, and doesn't lock it
	open := NewBuilder().Add("x")
	open.Build().Add("y")
	open.Add("z")
	assert.True(t, open.Succeeded())
	assert.Equal(t, `(x) (z) `, open.String())
}

func TestWrap(t *testing.T) {
	q := New().Add("x")
	b := Wrap(q).Add("y")
	assert.Equal(t, `(x) (y) `, q.String())
	b.Lock().Add("z")
	assert.Equal(t, `(x) (y) `, q.String())
}

func TestBuilderLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := NewBuilder(WithLogger(logger)).Lock().Add("x")
	assert.False(t, b.Succeeded())
	assert.Contains(t, buf.String(), "query builder call failed")
	assert.Contains(t, buf.String(), "op=Add")
	assert.Contains(t, buf.String(), "locked=true")
}
