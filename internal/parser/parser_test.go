package parser_test

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/edn/errors"
	"github.com/chaisql/edn/internal/parser"
	"github.com/chaisql/edn/internal/testutil"
	"github.com/chaisql/edn/internal/testutil/assert"
	"github.com/chaisql/edn/tags"
	"github.com/chaisql/edn/types"
)

func TestParserFiles(t *testing.T) {
	files, err := filepath.Glob("testdata/*.test")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		f := f
		t.Run(filepath.Base(f), func(t *testing.T) {
			testutil.Runner(t, f, parser.ParseValue)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		expected types.Value
	}{
		{"scalar row", "[[17592186048482]]", testutil.VecOf(testutil.VecOf(testutil.Int(17592186048482)))},
		{"leading whitespace and comments", " ; a comment\n,, 42", testutil.Int(42)},
		{"comment inside a collection", "[1 ; two\n 3]", testutil.VecOf(testutil.Int(1), testutil.Int(3))},
		{"trailing text is ignored", "1 2 3", testutil.Int(1)},
		{"big integer", "123456789012345678901234567890", testutil.BigInt("123456789012345678901234567890")},
		{"double", "1.5", testutil.Double(1.5)},
		{"keyword map", "{:a 1 :b nil}", testutil.MapOf(testutil.Kw("a"), testutil.Int(1), testutil.Kw("b"), testutil.Nil())},
		{"set", "#{:a :b :a}", testutil.SetOf(testutil.Kw("a"), testutil.Kw("b"))},
		{"list", "(1 \"a\")", testutil.ListOf(testutil.Int(1), testutil.Str("a"))},
		{"symbols", "[?e my/sym]", testutil.VecOf(testutil.Sym("?e"), testutil.Sym("my/sym"))},
		{"booleans", "[true false]", testutil.VecOf(testutil.Bool(true), testutil.Bool(false))},
		{"surrogate pair", `"\uD83D\uDE00"`, testutil.Str("\U0001F600")},
		{"crlf", "[1\r\n2]", testutil.VecOf(testutil.Int(1), testutil.Int(2))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := parser.ParseValue(test.s)
			assert.NoError(t, err)
			testutil.RequireEqual(t, test.expected, v)
		})
	}
}

func TestParseValueKeepsIntegersApartFromDoubles(t *testing.T) {
	v := testutil.MustDecode(t, "[1 1.0]")
	s := types.AsSequence(v)
	require.Equal(t, types.TypeInteger, s.At(0).Type())
	require.Equal(t, types.TypeDouble, s.At(1).Type())
	require.False(t, types.Equal(s.At(0), s.At(1)))
}

func TestParseValueSymbolicDoubles(t *testing.T) {
	v := testutil.MustDecode(t, "[##Inf ##-Inf ##NaN]")
	s := types.AsSequence(v)
	require.True(t, math.IsInf(types.AsFloat64(s.At(0)), 1))
	require.True(t, math.IsInf(types.AsFloat64(s.At(1)), -1))
	require.True(t, math.IsNaN(types.AsFloat64(s.At(2))))
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		msg        string
		line, char int
		offset     int
	}{
		{"empty input", "", "unexpected EOF, expected a form", 0, 0, 0},
		{"whitespace only", "  \n ", "unexpected EOF, expected a form", 0, 0, 4},
		{"unclosed vector", "[1 2", "unexpected EOF, [ opened at line 1, char 1 is not closed", 0, 4, 4},
		{"mismatched delimiter", "{:a\n  [1}", "mismatched delimiter, expected ]", 1, 4, 8},
		{"odd map", "[\n {:a}]", "map literal must contain an even number of forms", 1, 1, 3},
		{"unterminated string", `[1 "abc`, "unterminated string", 0, 3, 3},
		{"invalid utf-8 in string", "[\"a\xffb\"]", "invalid UTF-8 encoding", 0, 3, 3},
		{"invalid utf-8 atom", "[1\n\xff]", "invalid UTF-8 encoding", 1, 0, 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parser.ParseValue(test.s)
			assert.MalformedInput(t, err)
			require.False(t, errors.IsShapeMismatch(err))

			perr, ok := errors.AsParseError(err)
			require.True(t, ok)
			require.Equal(t, test.msg, perr.Message)
			require.Equal(t, test.line, perr.Line)
			require.Equal(t, test.char, perr.Char)
			require.Equal(t, test.offset, perr.Offset)
		})
	}
}

func TestParseValueCharacterRoundTrip(t *testing.T) {
	runes := []rune{'a', '\n', ' ', ',', '\v', 0, 0x7f, 0xe9, 0x2028, 0xfffd, 0x1F600, 0xE0001, 0x10FFFF}

	for _, r := range runes {
		t.Run(fmt.Sprintf("U+%04X", r), func(t *testing.T) {
			want := types.NewCharacterValue(r)
			got, err := parser.ParseValue(want.String())
			require.NoError(t, err)
			testutil.RequireEqual(t, want, got)

			// inside a collection as well
			got, err = parser.ParseValue("[" + want.String() + "]")
			require.NoError(t, err)
			testutil.RequireEqual(t, types.NewVectorValue(want), got)
		})
	}
}

func TestParserMultipleForms(t *testing.T) {
	p := parser.NewParser("1 [2 3] ; comment\n :four #_ 5", nil)

	v, err := p.ParseValue()
	require.NoError(t, err)
	testutil.RequireEqual(t, testutil.Int(1), v)
	require.Equal(t, 1, p.Offset())

	v, err = p.ParseValue()
	require.NoError(t, err)
	testutil.RequireEqual(t, testutil.VecOf(testutil.Int(2), testutil.Int(3)), v)
	require.Equal(t, 7, p.Offset())

	v, err = p.ParseValue()
	require.NoError(t, err)
	testutil.RequireEqual(t, testutil.Kw("four"), v)

	// the trailing form is discarded
	_, err = p.ParseValue()
	require.Equal(t, io.EOF, err)

	_, err = p.ParseValue()
	require.Equal(t, io.EOF, err)
}

func TestParserMaxDepth(t *testing.T) {
	opts := parser.Options{MaxDepth: 2}

	v, err := parser.NewParser("[[1] {:a #{2}}]", &opts).ParseValue()
	require.Nil(t, v)
	assert.MalformedInput(t, err)

	v, err = parser.NewParser("[[1] {:a 2}]", &opts).ParseValue()
	require.NoError(t, err)
	require.Equal(t, "[[1] {:a 2}]", v.String())

	_, err = parser.NewParser("[[[1]]]", &opts).ParseValue()
	assert.MalformedInput(t, err)
	require.EqualError(t, err, "maximum nesting depth of 2 exceeded: found [ at line 1, char 3")

	// no limit by default
	deep := strings.Repeat("[", 5000) + strings.Repeat("]", 5000)
	_, err = parser.ParseValue(deep)
	require.NoError(t, err)
}

func TestParserKeepUnknownTags(t *testing.T) {
	opts := parser.Options{KeepUnknownTags: true}

	v, err := parser.NewParser(`[#myapp/point [1 2] #inst "2014-12-01T15:27:26.632Z"]`, &opts).ParseValue()
	require.NoError(t, err)

	s := types.AsSequence(v)
	tagged, ok := s.At(0).(*types.TaggedValue)
	require.True(t, ok)
	require.Equal(t, "myapp/point", tagged.Tag())
	testutil.RequireEqual(t, testutil.VecOf(testutil.Int(1), testutil.Int(2)), tagged.Inner())
	require.Equal(t, "#myapp/point [1 2]", tagged.String())

	// known tags are still interpreted
	require.Equal(t, types.TypeTimestamp, s.At(1).Type())
}

func TestParserCustomTags(t *testing.T) {
	reg, err := tags.Extend(tags.Default(), map[string]tags.Func{
		"myapp/upper": func(v types.Value) (types.Value, error) {
			return types.NewTextValue(strings.ToUpper(types.AsString(v))), nil
		},
	})
	require.NoError(t, err)

	p := parser.NewParser(`[#myapp/upper "abc" #inst "2014-12-01"]`, &parser.Options{Tags: reg})
	v, err := p.ParseValue()
	require.NoError(t, err)

	s := types.AsSequence(v)
	testutil.RequireEqual(t, testutil.Str("ABC"), s.At(0))
	require.True(t, time.Date(2014, 12, 1, 0, 0, 0, 0, time.UTC).Equal(types.AsTime(s.At(1))))

	// an empty registry interprets nothing
	p = parser.NewParser(`#inst "2014-12-01"`, &parser.Options{Tags: tags.NewRegistry()})
	v, err = p.ParseValue()
	require.NoError(t, err)
	testutil.RequireEqual(t, testutil.Str("2014-12-01"), v)
}

func TestParserTempIDs(t *testing.T) {
	v := testutil.MustDecode(t, `[#db/id [:db.part/user] #db/id [:db.part/user -1]]`)
	s := types.AsSequence(v)

	require.Equal(t, types.TypeTempID, s.At(0).Type())
	require.Equal(t, "#db/id [:db.part/user]", s.At(0).String())
	require.Equal(t, "#db/id [:db.part/user -1]", s.At(1).String())
	require.False(t, types.Equal(s.At(0), testutil.MustDecode(t, `#db/id [:db.part/user]`)))
}

func TestParseTxReport(t *testing.T) {
	const report = `{:db-before {:basis-t 63, :db/alias "dev/scratch"}, ` +
		`:db-after {:basis-t 1000, :db/alias "dev/scratch"}, ` +
		`:tx-data [{:e 13194139534312, :a 50, :v #inst "2014-12-01T15:27:26.632-00:00", :tx 13194139534312, :added true} ` +
		`{:e 17592186045417, :a 62, :v "hello REST world", :tx 13194139534312, :added true}], ` +
		`:tempids {-9223350046623220292 17592186045417}}`

	m := types.AsMap(testutil.MustDecode(t, report))
	require.Equal(t, 4, m.Len())

	before, ok := m.GetKeyword("db-before")
	require.True(t, ok)
	basis, _ := types.AsMap(before).GetKeyword("basis-t")
	require.Equal(t, int64(63), types.AsInt64(basis))

	txData, _ := m.GetKeyword("tx-data")
	datoms := types.AsSequence(txData)
	require.Equal(t, 2, datoms.Len())

	v, _ := types.AsMap(datoms.At(0)).GetKeyword("v")
	require.Equal(t, time.Date(2014, 12, 1, 15, 27, 26, 632000000, time.UTC), types.AsTime(v))

	v, _ = types.AsMap(datoms.At(1)).GetKeyword("v")
	testutil.RequireEqual(t, testutil.Str("hello REST world"), v)

	tempids, _ := m.GetKeyword("tempids")
	id, ok := types.AsMap(tempids).Get(testutil.Int(-9223350046623220292))
	require.True(t, ok)
	require.Equal(t, int64(17592186045417), types.AsInt64(id))
}

func FuzzParseValue(f *testing.F) {
	seeds := []string{
		"[[17592186048482]]",
		`{:a 1, :b [2 3.5 "x"], :c #{:d}}`,
		`#inst "2014-12-01T15:27:26.632-00:00"`,
		`#uuid "f81d4fae-7dec-11d0-a765-00a0c91e6bf6"`,
		`(\a \newline "é" ##NaN 12N 1.5M)`,
		"[1 #_2 3]",
		"{:a",
		`"unterminated`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		v, err := parser.ParseValue(src)
		if err != nil {
			require.True(t, errors.IsMalformedInput(err), "unexpected error kind: %v", err)
			return
		}

		out := v.String()
		back, err := parser.ParseValue(out)
		require.NoError(t, err, "cannot read back %q", out)
		if !strings.Contains(out, "#db/id") {
			testutil.RequireEqual(t, v, back)
		}
	})
}
