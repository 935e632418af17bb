package rules

import "fmt"

// ErrInvalidRules indicates a rules document could not be decoded or
// failed schema or cross-reference validation.
type ErrInvalidRules struct {
	Source string
	Err    error
}

func (e *ErrInvalidRules) Error() string {
	return fmt.Sprintf("invalid rules %s: %v", e.Source, e.Err)
}

func (e *ErrInvalidRules) Unwrap() error { return e.Err }
