package testutil

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/edn/internal/testutil/edntests"
	"github.com/chaisql/edn/types"
)

// DecodeFunc decodes the input of a test statement.
type DecodeFunc func(src string) (types.Value, error)

// Runner runs the tests of an edntests file. Successful statements must
// decode to a value whose canonical text is the expected result, and that
// text must decode back to an equal value. Failing statements must return
// an error matching the expected regexp.
func Runner(t *testing.T, testfile string, decode DecodeFunc) {
	t.Helper()

	f, err := os.Open(testfile)
	require.NoErrorf(t, err, "failed to open test data %s", testfile)
	defer f.Close()

	ts, err := edntests.Parse(f)
	require.NoError(t, err)

	for _, test := range ts.Tests {
		t.Run(test.Name, func(t *testing.T) {
			for _, stmt := range test.Statements {
				stmt := stmt
				if !stmt.Fail {
					t.Run("OK "+stmt.Input, func(t *testing.T) {
						got, err := decode(stmt.Input)
						require.NoErrorf(t, err, "line %d", stmt.InputLine)
						require.Equalf(t, stmt.Res, got.String(), "line %d", stmt.ResLine)

						// the canonical text reads back as the same value
						back, err := decode(stmt.Res)
						require.NoErrorf(t, err, "line %d", stmt.ResLine)
						RequireEqual(t, got, back)
					})
				} else {
					t.Run("NOK "+stmt.Input, func(t *testing.T) {
						_, err := decode(stmt.Input)
						require.Errorf(t, err, "expected `%s` to return an error, got nil", stmt.Input)
						require.Regexp(t, regexp.MustCompile(stmt.Res), err.Error())
					})
				}
			}
		})
	}
}
