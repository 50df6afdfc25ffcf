// Package errors defines the error type shared by every pipeline stage.
package errors

import (
	"fmt"
)

// Error code ranges, one range per pipeline stage. Each stage declares its
// own codes as offsets into its range.
const (
	LexicalErrors = 1 + 100*iota
	SyntaxErrors
	ReferenceErrors
	GrammarErrors
	PatternErrors
)

// Error is the single error kind surfaced by the pipeline. Code identifies
// the cause; Pos is a byte offset into the pattern, or -1 when the failure
// has no position.
type Error struct {
	Code    int
	Message string
	Pos     int
}

func New(code, pos int, msg string) *Error {
	if pos >= 0 {
		msg += fmt.Sprintf(" at offset %d", pos)
	}
	return &Error{code, msg, pos}
}

func (e *Error) Error() string {
	return e.Message
}

func Format(code, pos int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, pos, msg)
}
