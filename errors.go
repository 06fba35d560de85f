package qsgen

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFuzziness    = errors.New("fuzziness out of range")
	ErrInvalidTermModifier = errors.New("invalid term modifier")
	ErrInvalidBoost        = errors.New("boost factor out of range")
	ErrNilRangeBound       = errors.New("range bound is nil")
	ErrLocked              = errors.New("builder is locked")
	ErrEmptyClause         = errors.New("clause renders nothing")
	ErrInvalidIntent       = errors.New("invalid intent")
)

// IntentError reports a problem with one clause of an intent document.
type IntentError struct {
	// Path locates the clause, eg "clauses[2].sub.clauses[0]"
	Path string
	Err  error
}

func (e *IntentError) Error() string { return fmt.Sprintf("%s: %s", e.Path, e.Err) }

func (e *IntentError) Unwrap() error { return e.Err }
