package linger

import "fmt"

// ParseError is the base error type for all linger parse errors.
type ParseError struct {
	Message string
	Line    int // 1-based source line, 0 when unknown
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// GroupError represents a block-structure error (a block whose first line
// is not a spec line, or a group too short to hold a stimulus).
type GroupError struct{ ParseError }

// SpecError represents a malformed spec line (missing prefix, too few
// tokens, or a bad item number).
type SpecError struct{ ParseError }

// QuestionError represents a malformed question line (missing answer token
// or an unrecognized answer spelling).
type QuestionError struct{ ParseError }
