package errors

import "github.com/cockroachdb/errors"

// IsMalformedInput reports whether err was caused by text that could not be decoded.
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsShapeMismatch reports whether err was caused by a decoded value of the wrong shape.
func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

// AsParseError returns the ParseError wrapped in err, if any.
func AsParseError(err error) (*ParseError, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// AsShapeError returns the ShapeError wrapped in err, if any.
func AsShapeError(err error) (*ShapeError, bool) {
	var sErr *ShapeError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
