package qsgen

import (
	"fmt"
	"math"
)

// TermModifier is the occurrence tag emitted in front of a clause.
type TermModifier int

const (
	None TermModifier = iota
	Required
	Prohibited
)

// Prefix returns the literal token written before a clause.
func (t TermModifier) Prefix() string {
	switch t {
	case Required:
		return "+"
	case Prohibited:
		return "-"
	default:
		return ""
	}
}

func (t TermModifier) String() string {
	switch t {
	case None:
		return "None"
	case Required:
		return "Required"
	case Prohibited:
		return "Prohibited"
	default:
		return fmt.Sprintf("TermModifier(%d)", int(t))
	}
}

// Modifier controls how a value, group or field is rendered.
// It is immutable; use a ModifierBuilder to make one. The zero Modifier
// is valid: no term modifier, no split, conjunct, no wildcard, no fuzziness.
type Modifier struct {
	term       TermModifier
	split      bool
	disjunct   bool
	wildcarded bool
	fuzzy      bool
	fuzziness  float64
}

// Mandatory maps a "must match" flag onto a Modifier.
func Mandatory(mandatory bool) Modifier {
	if mandatory {
		return Modifier{term: Required}
	}
	return Modifier{}
}

func (m Modifier) TermModifier() TermModifier { return m.term }
func (m Modifier) IsSplit() bool              { return m.split }
func (m Modifier) IsDisjunct() bool           { return m.disjunct }
func (m Modifier) IsWildcarded() bool         { return m.wildcarded }

// Fuzziness returns the fuzziness and whether it is set at all.
func (m Modifier) Fuzziness() (float64, bool) { return m.fuzziness, m.fuzzy }

// ElementModifier is the modifier for members of a group rendered with m.
// Members of a conjunct group are each required, members of a disjunct
// group are simply offered.
func (m Modifier) ElementModifier() Modifier {
	if m.disjunct {
		m.term = None
	} else {
		m.term = Required
	}
	return m
}

// NestedArgumentModifier is the modifier for a value inside a field scope.
// The scope already carries the term modifier.
func (m Modifier) NestedArgumentModifier() Modifier {
	m.term = None
	return m
}

func (m Modifier) String() string {
	fuzz := "-"
	if m.fuzzy {
		fuzz = formatFloat(m.fuzziness)
	}
	return fmt.Sprintf("Modifier{term:%s split:%t disjunct:%t wildcarded:%t fuzziness:%s}",
		m.term, m.split, m.disjunct, m.wildcarded, fuzz)
}

// ModifierBuilder stages the fields of a Modifier.
type ModifierBuilder struct {
	m   Modifier
	err error
}

// Start returns a builder for the zero Modifier.
func Start() *ModifierBuilder {
	return &ModifierBuilder{}
}

// Copy returns a builder preloaded with the fields of m.
func Copy(m Modifier) *ModifierBuilder {
	return &ModifierBuilder{m: m}
}

func (b *ModifierBuilder) Required() *ModifierBuilder {
	b.m.term = Required
	return b
}

func (b *ModifierBuilder) Prohibited() *ModifierBuilder {
	b.m.term = Prohibited
	return b
}

func (b *ModifierBuilder) NoTerm() *ModifierBuilder {
	b.m.term = None
	return b
}

// Term sets the term modifier directly.
func (b *ModifierBuilder) Term(t TermModifier) *ModifierBuilder {
	b.m.term = t
	return b
}

func (b *ModifierBuilder) Wildcarded(wildcarded bool) *ModifierBuilder {
	b.m.wildcarded = wildcarded
	return b
}

func (b *ModifierBuilder) DoSplit(split bool) *ModifierBuilder {
	b.m.split = split
	return b
}

func (b *ModifierBuilder) Disjunct() *ModifierBuilder {
	b.m.disjunct = true
	return b
}

func (b *ModifierBuilder) Conjunct() *ModifierBuilder {
	b.m.disjunct = false
	return b
}

// SetFuzziness enables fuzzy matching. f must lie in [0,1); anything else
// makes Build fail.
func (b *ModifierBuilder) SetFuzziness(f float64) *ModifierBuilder {
	if err := checkFuzziness(f); err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.m.fuzzy = true
	b.m.fuzziness = f
	return b
}

func (b *ModifierBuilder) NoFuzziness() *ModifierBuilder {
	b.m.fuzzy = false
	b.m.fuzziness = 0
	return b
}

// Build finalizes the Modifier. The builder may be reused afterwards.
func (b *ModifierBuilder) Build() (Modifier, error) {
	if b.err != nil {
		return Modifier{}, b.err
	}
	if b.m.term < None || b.m.term > Prohibited {
		return Modifier{}, fmt.Errorf("%w: %s", ErrInvalidTermModifier, b.m.term)
	}
	return b.m, nil
}

// MustBuild is like Build but panics on error.
func (b *ModifierBuilder) MustBuild() Modifier {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

func checkFuzziness(f float64) error {
	if math.IsNaN(f) || f < 0 || f >= 1 {
		return fmt.Errorf("%w: %v not in [0,1)", ErrInvalidFuzziness, f)
	}
	return nil
}
