// Package testutil provides helpers to build and compare decoded values in tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/chaisql/edn/internal/parser"
	"github.com/chaisql/edn/types"
)

// Int creates an integer value.
func Int(v int64) types.Value {
	return types.NewIntegerValue(v)
}

// BigInt creates an integer value from its decimal text. It panics if s isn't an integer.
func BigInt(s string) types.Value {
	i, ok := types.ParseIntegerValue(s)
	if !ok {
		panic(fmt.Sprintf("invalid integer %q", s))
	}
	return i
}

// Double creates a double value.
func Double(v float64) types.Value {
	return types.NewDoubleValue(v)
}

// Str creates a string value.
func Str(v string) types.Value {
	return types.NewTextValue(v)
}

// Kw creates a keyword value. The leading ':' is optional.
func Kw(v string) types.Value {
	return types.NewKeywordValue(v)
}

// Sym creates a symbol value.
func Sym(v string) types.Value {
	return types.NewSymbolValue(v)
}

// Bool creates a boolean value.
func Bool(v bool) types.Value {
	return types.NewBooleanValue(v)
}

// Nil creates a nil value.
func Nil() types.Value {
	return types.NewNullValue()
}

// VecOf creates a vector holding vs.
func VecOf(vs ...types.Value) types.Value {
	return types.NewVectorValue(vs...)
}

// ListOf creates a list holding vs.
func ListOf(vs ...types.Value) types.Value {
	return types.NewListValue(vs...)
}

// SetOf creates a set holding vs.
func SetOf(vs ...types.Value) types.Value {
	return types.NewSetValue(vs...)
}

// MapOf creates a map from alternating keys and values.
// It panics if given an odd number of values.
func MapOf(kvs ...types.Value) types.Value {
	if len(kvs)%2 != 0 {
		panic("MapOf requires an even number of values")
	}

	entries := make([]types.MapEntry, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		entries = append(entries, types.MapEntry{Key: kvs[i], Value: kvs[i+1]})
	}
	return types.NewMapValue(entries...)
}

// MustDecode parses the first form of src with the default options
// and fails the test on error.
func MustDecode(t testing.TB, src string) types.Value {
	t.Helper()

	v, err := parser.ParseValue(src)
	require.NoErrorf(t, err, "failed to decode %q", src)
	return v
}

// RequireEqual fails the test if want and got aren't structurally equal.
func RequireEqual(t testing.TB, want, got types.Value) {
	t.Helper()

	if types.Equal(want, got) {
		return
	}

	var ws, gs string
	if want != nil {
		ws = want.String()
	}
	if got != nil {
		gs = got.String()
	}
	if diff := cmp.Diff(ws, gs); diff != "" {
		t.Fatalf("values differ (-want +got):\n%s", diff)
	}
	t.Fatalf("values print the same but are not equal: %s", ws)
}
