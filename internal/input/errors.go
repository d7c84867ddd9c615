package input

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is wrapped by InputError when the stream ends early.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrNegative is wrapped by InputError for negative counts or dimensions.
	ErrNegative = errors.New("value must not be negative")
)

// InputError describes a malformed, missing or out-of-range value.
type InputError struct {
	// Field names the value being read, e.g. "mote radius".
	Field string
	// Position is the 1-based mote or device number, or 0 for counts and
	// whole documents.
	Position int
	// Token is the offending raw token, if any.
	Token string
	Err   error
}

func (e *InputError) Error() string {
	msg := e.Field
	if e.Position > 0 {
		msg = fmt.Sprintf("%s #%d", msg, e.Position)
	}
	if e.Token != "" {
		msg = fmt.Sprintf("%s (%q)", msg, e.Token)
	}
	return fmt.Sprintf("input: %s: %v", msg, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// AllocationError reports a collection too large to reserve storage for.
type AllocationError struct {
	What  string
	Count int
	Limit int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("input: %d %s exceeds limit of %d", e.Count, e.What, e.Limit)
}
