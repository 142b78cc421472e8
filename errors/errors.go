// Package errors defines the failure conditions reported by the decoder.
//
// Every failure is one of two kinds, testable with errors.Is from either the
// standard library or github.com/cockroachdb/errors:
//
//   - ErrMalformedInput: the text cannot be tokenized or structurally closed.
//   - ErrShapeMismatch: the decoded root value does not have the shape an adapter expects.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformedInput is the mark carried by every scanning and parsing failure.
	ErrMalformedInput = errors.New("malformed input")

	// ErrShapeMismatch is the mark carried by adapter failures, when the decoded
	// value is not of the expected variant.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// ParseError represents an error that occurred during scanning or parsing.
// Line and Char are 0-based, Offset is the byte offset in the input.
type ParseError struct {
	Message string
	Found   string
	Line    int
	Char    int
	Offset  int
}

// NewParseError returns a ParseError wrapped with a stack trace and marked
// with ErrMalformedInput.
func NewParseError(msg, found string, line, char, offset int) error {
	return errors.Mark(errors.WithStack(&ParseError{
		Message: msg,
		Found:   found,
		Line:    line,
		Char:    char,
		Offset:  offset,
	}), ErrMalformedInput)
}

// Error returns the string representation of the error.
func (e *ParseError) Error() string {
	if e.Found != "" {
		return fmt.Sprintf("%s: found %s at line %d, char %d", e.Message, e.Found, e.Line+1, e.Char+1)
	}
	return fmt.Sprintf("%s at line %d, char %d", e.Message, e.Line+1, e.Char+1)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

// ShapeError is returned by the result adapters when the decoded root value
// is not of the expected variant.
type ShapeError struct {
	// Expected describes what the adapter wanted, e.g. "vector of vectors".
	Expected string
	// Actual is the type name of the value that was found.
	Actual string
	// Path locates the offending value, e.g. "[2]" for the third row.
	Path string
}

// NewShapeError returns a ShapeError wrapped with a stack trace and marked
// with ErrShapeMismatch.
func NewShapeError(expected, actual, path string) error {
	return errors.Mark(errors.WithStack(&ShapeError{
		Expected: expected,
		Actual:   actual,
		Path:     path,
	}), ErrShapeMismatch)
}

func (e *ShapeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("expected %s at %s, got %s", e.Expected, e.Path, e.Actual)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// Malformedf returns an error marked with ErrMalformedInput, for failures
// that aren't located at a position of the text.
func Malformedf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrMalformedInput)
}

// WrapMalformed annotates err with msg and marks it with ErrMalformedInput.
// Errors already marked are returned unchanged.
func WrapMalformed(err error, msg string) error {
	if err == nil || errors.Is(err, ErrMalformedInput) {
		return err
	}
	return errors.Mark(errors.Wrap(err, msg), ErrMalformedInput)
}
