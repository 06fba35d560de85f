package qsgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Intent is a declarative description of a query, usually loaded from YAML:
//
//	modifier: {term: required, wildcarded: true}
//	clauses:
//	  - value: adidas
//	  - field: title
//	    value: running shoe
//	    modifier: {split: true}
//	  - group: [red, blue]
//	    modifier: {disjunct: true}
//	  - range: {field: price, from: 10, to: 20}
//	  - boost: 2.5
//	  - sub:
//	      clauses: [{value: outlet}]
//
// Unlike the Query methods, an Intent is strict about empty input: a
// clause that renders nothing is an error (ErrEmptyClause).
type Intent struct {
	// Modifier is the default for every clause without one of its own.
	Modifier ModifierOptions `yaml:"modifier,omitempty"`
	Clauses  []Clause        `yaml:"clauses"`
}

// ModifierOptions is the serialized form of a Modifier.
type ModifierOptions struct {
	// Term is one of "none" (or empty), "required", "prohibited".
	Term       string   `yaml:"term,omitempty"`
	Split      bool     `yaml:"split,omitempty"`
	Disjunct   bool     `yaml:"disjunct,omitempty"`
	Wildcarded bool     `yaml:"wildcarded,omitempty"`
	Fuzziness  *float64 `yaml:"fuzziness,omitempty"`
}

// Clause is one entry of an Intent. Exactly one of Value, Group, Range,
// Boost and Sub must be set. Field scopes a Value, Group or Sub.
type Clause struct {
	Modifier *ModifierOptions `yaml:"modifier,omitempty"`
	Field    string           `yaml:"field,omitempty"`
	Value    any              `yaml:"value,omitempty"`
	Group    []any            `yaml:"group,omitempty"`
	Range    *RangeClause     `yaml:"range,omitempty"`
	Boost    *float64         `yaml:"boost,omitempty"`
	Sub      *Intent          `yaml:"sub,omitempty"`
}

// RangeClause describes an inclusive range, optionally on a field.
type RangeClause struct {
	Field string `yaml:"field,omitempty"`
	From  any    `yaml:"from"`
	To    any    `yaml:"to"`
}

// ParseTermModifier parses the serialized name of a TermModifier.
func ParseTermModifier(s string) (TermModifier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "required", "+":
		return Required, nil
	case "prohibited", "-":
		return Prohibited, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidTermModifier, s)
}

// Modifier validates the options and builds the Modifier.
func (o ModifierOptions) Modifier() (Modifier, error) {
	term, err := ParseTermModifier(o.Term)
	if err != nil {
		return Modifier{}, err
	}
	b := Start().Term(term).DoSplit(o.Split).Wildcarded(o.Wildcarded)
	if o.Disjunct {
		b.Disjunct()
	}
	if o.Fuzziness != nil {
		b.SetFuzziness(*o.Fuzziness)
	}
	return b.Build()
}

// ParseIntent decodes a YAML intent document. Unknown keys are rejected.
func ParseIntent(data []byte) (*Intent, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var in Intent
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidIntent)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidIntent, err)
	}
	return &in, nil
}

// Render returns the query text described by the intent.
func (in *Intent) Render() (string, error) {
	q, err := in.Query()
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

// Query builds the intent into a new Query, whose default Modifier is the
// intent's.
func (in *Intent) Query() (*Query, error) {
	return in.build("")
}

func (in *Intent) build(path string) (*Query, error) {
	def, err := in.Modifier.Modifier()
	if err != nil {
		return nil, &IntentError{Path: path + "modifier", Err: err}
	}
	if len(in.Clauses) == 0 {
		return nil, &IntentError{Path: path + "clauses", Err: fmt.Errorf("%w: no clauses", ErrInvalidIntent)}
	}

	b := NewBuilder(WithModifier(def))
	for i := range in.Clauses {
		if err := in.Clauses[i].apply(b, def, fmt.Sprintf("%sclauses[%d]", path, i)); err != nil {
			return nil, err
		}
	}
	return b.Lock().Build(), nil
}

func (c *Clause) kind() (string, error) {
	var kinds []string
	if c.Value != nil {
		kinds = append(kinds, "value")
	}
	if c.Group != nil {
		kinds = append(kinds, "group")
	}
	if c.Range != nil {
		kinds = append(kinds, "range")
	}
	if c.Boost != nil {
		kinds = append(kinds, "boost")
	}
	if c.Sub != nil {
		kinds = append(kinds, "sub")
	}
	switch len(kinds) {
	case 0:
		return "", fmt.Errorf("%w: clause has no value, group, range, boost or sub", ErrInvalidIntent)
	case 1:
	default:
		return "", fmt.Errorf("%w: clause mixes %s", ErrInvalidIntent, strings.Join(kinds, " and "))
	}
	if c.Field != "" && (kinds[0] == "range" || kinds[0] == "boost") {
		return "", fmt.Errorf("%w: field can't scope a %s", ErrInvalidIntent, kinds[0])
	}
	return kinds[0], nil
}

func (c *Clause) apply(b *Builder, def Modifier, path string) error {
	kind, err := c.kind()
	if err != nil {
		return &IntentError{Path: path, Err: err}
	}
	m := def
	if c.Modifier != nil {
		if m, err = c.Modifier.Modifier(); err != nil {
			return &IntentError{Path: path + ".modifier", Err: err}
		}
	}
	if err := checkScalars(c.Value); err != nil {
		return &IntentError{Path: path + ".value", Err: err}
	}
	if err := checkScalars(c.Group); err != nil {
		return &IntentError{Path: path + ".group", Err: err}
	}

	before := len(b.String())
	switch kind {
	case "value":
		if c.Field != "" {
			b.AddField(c.Field, c.Value, m)
		} else {
			b.AddArgument(c.Value, m)
		}
	case "group":
		if c.Field != "" {
			b.AddField(c.Field, c.Group, m)
		} else {
			b.AddGroup(c.Group, m)
		}
	case "range":
		b.AddRangeField(c.Range.Field, c.Range.From, c.Range.To, m)
	case "boost":
		b.AddBoost(*c.Boost)
	case "sub":
		sub, err := c.Sub.build(path + ".sub.")
		if err != nil {
			return err
		}
		if c.Field != "" {
			b.AddField(c.Field, sub, m)
		} else {
			b.AddSubQuery(sub, m)
		}
	}
	if !b.Succeeded() {
		return &IntentError{Path: path, Err: b.Err()}
	}
	// a boost of 1 legitimately renders nothing
	if kind != "boost" && len(b.String()) == before {
		return &IntentError{Path: path, Err: ErrEmptyClause}
	}
	return nil
}

// checkScalars rejects mappings, which have no rendering.
func checkScalars(v any) error {
	switch x := v.(type) {
	case map[string]any, map[any]any:
		return fmt.Errorf("%w: mappings can't be rendered", ErrInvalidIntent)
	case []any:
		for _, item := range x {
			if err := checkScalars(item); err != nil {
				return err
			}
		}
	}
	return nil
}
