// Package assert provides error assertions printing the stack trace
// recorded by github.com/cockroachdb/errors when they fail.
package assert

import (
	"testing"

	"github.com/cockroachdb/errors"

	ednerrors "github.com/chaisql/edn/errors"
)

func Error(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Log("Expected error to be present, but got nil instead")
	t.FailNow()
}

func ErrorIs(t testing.TB, err error, target error) {
	t.Helper()
	ErrorIsf(t, err, target, "Expected error to be %v but got %v instead", target, err)
}

func ErrorIsf(t testing.TB, err error, target error, str string, args ...interface{}) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}
	t.Logf(str, args...)
	if err != nil {
		t.Logf("Stacktrace:\n%+v", err)
	}
	t.FailNow()
}

// MalformedInput fails the test if err isn't a malformed input error.
func MalformedInput(t testing.TB, err error) {
	t.Helper()
	ErrorIs(t, err, ednerrors.ErrMalformedInput)
}

// ShapeMismatch fails the test if err isn't a shape mismatch error.
func ShapeMismatch(t testing.TB, err error) {
	t.Helper()
	ErrorIs(t, err, ednerrors.ErrShapeMismatch)
}

func NoErrorf(t testing.TB, err error, str string, args ...interface{}) {
	t.Helper()

	if err == nil {
		return
	}
	t.Logf(str, args...)
	t.Logf("Stacktrace:\n%+v", err)
	t.FailNow()
}

func NoError(t testing.TB, err error) {
	t.Helper()

	NoErrorf(t, err, "Expected error to be nil but got %q instead", err)
}
