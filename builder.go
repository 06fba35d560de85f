package qsgen

import (
	"fmt"
	"log/slog"
)

// Builder wraps a Query and can be locked against further writes.
//
// While open, every mutating call is passed on to the Query. Once Lock has
// been called every mutating call fails with ErrLocked; the text and
// default Modifier stay readable, and Build still works.
//
// Mutating calls return the Builder for chaining. Failures are recorded
// rather than returned: Succeeded reports on the most recent call, Err
// holds the first failure.
type Builder struct {
	q      *Query
	locked bool
	ok     bool
	err    error
	logger *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used to report failed calls (at debug level).
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithModifier sets the default Modifier of the wrapped Query.
func WithModifier(m Modifier) BuilderOption {
	return func(b *Builder) {
		b.q.SetModifier(m)
	}
}

// NewBuilder returns an open Builder around an empty Query.
func NewBuilder(opts ...BuilderOption) *Builder {
	return Wrap(New(), opts...)
}

// Wrap returns an open Builder around q.
func Wrap(q *Query, opts ...BuilderOption) *Builder {
	b := &Builder{
		q:      q,
		ok:     true,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) do(op string, fn func() error) *Builder {
	if b.locked {
		return b.fail(op, ErrLocked)
	}
	if err := fn(); err != nil {
		return b.fail(op, err)
	}
	b.ok = true
	return b
}

func (b *Builder) fail(op string, err error) *Builder {
	err = fmt.Errorf("%s: %w", op, err)
	b.ok = false
	if b.err == nil {
		b.err = err
	}
	b.logger.Debug("query builder call failed", "op", op, "locked", b.locked, "err", err)
	return b
}

// Lock makes the Builder read-only. There is no way back.
func (b *Builder) Lock() *Builder {
	b.locked = true
	return b
}

func (b *Builder) Locked() bool { return b.locked }

// Succeeded reports whether the most recent mutating call went through.
func (b *Builder) Succeeded() bool { return b.ok }

// Err returns the first failure since the Builder was created.
func (b *Builder) Err() error { return b.err }

// String returns the query text built so far.
func (b *Builder) String() string { return b.q.String() }

func (b *Builder) Modifier() Modifier { return b.q.Modifier() }

func (b *Builder) IsWildcarded() bool { return b.q.IsWildcarded() }

// Build returns a new, open Query holding a copy of the current text and
// default Modifier. It works whether or not the Builder is locked.
func (b *Builder) Build() *Query {
	return NewFrom(b.q.String(), b.q.Modifier())
}

func (b *Builder) SetModifier(m Modifier) *Builder {
	return b.do("SetModifier", func() error {
		b.q.SetModifier(m)
		return nil
	})
}

func (b *Builder) Reset() *Builder {
	return b.do("Reset", func() error {
		b.q.Reset()
		return nil
	})
}

func (b *Builder) Add(v any) *Builder {
	return b.do("Add", func() error {
		b.q.Add(v)
		return nil
	})
}

func (b *Builder) AddArgument(v any, m Modifier) *Builder {
	return b.do("AddArgument", func() error {
		b.q.AddArgument(v, m)
		return nil
	})
}

func (b *Builder) AddValue(value string, m Modifier) *Builder {
	return b.do("AddValue", func() error {
		b.q.AddValue(value, m)
		return nil
	})
}

func (b *Builder) AddGroup(items []any, m Modifier) *Builder {
	return b.do("AddGroup", func() error {
		b.q.AddGroup(items, m)
		return nil
	})
}

func (b *Builder) AddSubQuery(sub *Query, m Modifier) *Builder {
	return b.do("AddSubQuery", func() error {
		b.q.AddSubQuery(sub, m)
		return nil
	})
}

func (b *Builder) StartField(name string, m Modifier) *Builder {
	return b.do("StartField", func() error {
		b.q.StartField(name, m)
		return nil
	})
}

func (b *Builder) EndField() *Builder {
	return b.do("EndField", func() error {
		b.q.EndField()
		return nil
	})
}

func (b *Builder) AddField(key string, value any, m Modifier) *Builder {
	return b.do("AddField", func() error {
		b.q.AddField(key, value, m)
		return nil
	})
}

func (b *Builder) AddFieldDefault(key string, value any) *Builder {
	return b.do("AddFieldDefault", func() error {
		b.q.AddFieldDefault(key, value)
		return nil
	})
}

func (b *Builder) AddRange(from, to any, m Modifier) *Builder {
	return b.do("AddRange", func() error {
		return b.q.AddRange(from, to, m)
	})
}

func (b *Builder) AddRangeField(name string, from, to any, m Modifier) *Builder {
	return b.do("AddRangeField", func() error {
		return b.q.AddRangeField(name, from, to, m)
	})
}

func (b *Builder) AddBoost(f float64) *Builder {
	return b.do("AddBoost", func() error {
		return b.q.AddBoost(f)
	})
}
