package edn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/edn"
	"github.com/chaisql/edn/errors"
	"github.com/chaisql/edn/internal/testutil"
	"github.com/chaisql/edn/internal/testutil/assert"
	"github.com/chaisql/edn/types"
)

const txReport = `{:db-before {:basis-t 63, :db/alias "dev/scratch"}, ` +
	`:db-after {:basis-t 1000, :db/alias "dev/scratch"}, ` +
	`:tx-data [{:e 13194139534312, :a 50, :v #inst "2014-12-01T15:27:26.632-00:00", :tx 13194139534312, :added true} ` +
	`{:e 17592186045417, :a 62, :v "hello REST world", :tx 13194139534312, :added true}], ` +
	`:tempids {-9223350046623220292 17592186045417}}`

func TestDecodeRows(t *testing.T) {
	t.Run("scalar result", func(t *testing.T) {
		rows, err := edn.DecodeRows("[[17592186048482]]")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Len(t, rows[0], 1)
		testutil.RequireEqual(t, testutil.Int(17592186048482), rows[0][0])
	})

	t.Run("relation", func(t *testing.T) {
		rows, err := edn.DecodeRows(`#{[17592186045417 "Peter"] [17592186045418 "Paul"]}`)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			require.Len(t, row, 2)
			require.Equal(t, types.TypeInteger, row[0].Type())
			require.Equal(t, types.TypeText, row[1].Type())
		}
	})

	t.Run("empty result", func(t *testing.T) {
		rows, err := edn.DecodeRows("[]")
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("lists are rows", func(t *testing.T) {
		rows, err := edn.DecodeRows("[(1 2)]")
		require.NoError(t, err)
		require.Len(t, rows[0], 2)
	})

	t.Run("not a sequence", func(t *testing.T) {
		_, err := edn.DecodeRows("{:a 1}")
		assert.ShapeMismatch(t, err)
		require.EqualError(t, err, "expected vector of vectors, got map")
	})

	t.Run("not a sequence of sequences", func(t *testing.T) {
		_, err := edn.DecodeRows("[[1] 2]")
		assert.ShapeMismatch(t, err)

		sErr, ok := errors.AsShapeError(err)
		require.True(t, ok)
		require.Equal(t, "integer", sErr.Actual)
		require.Equal(t, "[1]", sErr.Path)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := edn.DecodeRows("[[1]")
		assert.MalformedInput(t, err)
	})
}

func TestDecodeTxReport(t *testing.T) {
	r, err := edn.DecodeTxReport(txReport)
	require.NoError(t, err)
	require.Equal(t, 4, r.Len())

	before := types.AsMap(r.DBBefore())
	basis, ok := before.GetKeyword("basis-t")
	require.True(t, ok)
	require.Equal(t, int64(63), types.AsInt64(basis))

	after := types.AsMap(r.DBAfter())
	basis, _ = after.GetKeyword("basis-t")
	require.Equal(t, int64(1000), types.AsInt64(basis))

	txData := types.AsSequence(r.TxData())
	require.Equal(t, 2, txData.Len())

	first := types.AsMap(txData.At(0))
	v, ok := first.GetKeyword("v")
	require.True(t, ok)
	require.Equal(t, time.Date(2014, 12, 1, 15, 27, 26, 632000000, time.UTC), types.AsTime(v))
	added, _ := first.GetKeyword("added")
	require.True(t, types.AsBool(added))

	second := types.AsMap(txData.At(1))
	v, _ = second.GetKeyword("v")
	testutil.RequireEqual(t, testutil.Str("hello REST world"), v)

	tempids := types.AsMap(r.TempIDs())
	id, ok := tempids.Get(testutil.Int(-9223350046623220292))
	require.True(t, ok)
	require.Equal(t, int64(17592186045417), types.AsInt64(id))

	t.Run("missing keys", func(t *testing.T) {
		r, err := edn.DecodeTxReport("{:tempids {}}")
		require.NoError(t, err)
		require.Nil(t, r.DBBefore())
		require.Nil(t, r.DBAfter())
		require.Nil(t, r.TxData())
		require.NotNil(t, r.TempIDs())
	})

	t.Run("not a map", func(t *testing.T) {
		_, err := edn.DecodeTxReport("[1 2]")
		assert.ShapeMismatch(t, err)
		require.EqualError(t, err, "expected map, got vector")
	})
}

func TestDecodeDatoms(t *testing.T) {
	datoms, err := edn.DecodeDatoms(`[{:e 1 :a :person/name :v "Peter"} {:e 2 :a :person/age :v 42}]`)
	require.NoError(t, err)
	require.Len(t, datoms, 2)

	v, ok := datoms[1].GetKeyword("v")
	require.True(t, ok)
	testutil.RequireEqual(t, testutil.Int(42), v)

	_, err = edn.DecodeDatoms(`[{:e 1} [2]]`)
	assert.ShapeMismatch(t, err)
	require.EqualError(t, err, "expected map at [1], got vector")

	_, err = edn.DecodeDatoms(`#{}`)
	assert.ShapeMismatch(t, err)
}

func TestAsRows(t *testing.T) {
	v, err := edn.DecodeWithOptions("[[1 2] [3 4]]", &edn.Options{MaxDepth: 2})
	require.NoError(t, err)

	rows, err := edn.AsRows(v)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	testutil.RequireEqual(t, testutil.Int(4), rows[1][1])
}
