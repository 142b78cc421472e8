package edn

import (
	"fmt"

	"github.com/chaisql/edn/errors"
	"github.com/chaisql/edn/types"
)

// Keys of a transaction report.
const (
	KeyDBBefore = "db-before"
	KeyDBAfter  = "db-after"
	KeyTxData   = "tx-data"
	KeyTempIDs  = "tempids"
)

// DecodeRows decodes a query result: a vector of vectors, or a set of
// vectors as returned for relations. Each inner sequence is a row.
func DecodeRows(text string) ([][]types.Value, error) {
	v, err := Decode(text)
	if err != nil {
		return nil, err
	}

	return AsRows(v)
}

// AsRows returns the rows of a decoded query result.
func AsRows(v types.Value) ([][]types.Value, error) {
	var elems []types.Value
	switch x := v.(type) {
	case *types.SequenceValue:
		elems = x.Values()
	case *types.SetValue:
		elems = x.Values()
	default:
		return nil, errors.NewShapeError("vector of vectors", types.TypeName(v), "")
	}

	rows := make([][]types.Value, len(elems))
	for i, e := range elems {
		row, ok := e.(*types.SequenceValue)
		if !ok {
			return nil, errors.NewShapeError("vector", types.TypeName(e), fmt.Sprintf("[%d]", i))
		}
		rows[i] = row.Values()
	}

	return rows, nil
}

// TxReport is the map returned by the service after a transaction.
// The map is passed through unchanged: the accessors only look up
// well known keys.
type TxReport struct {
	*types.MapValue
}

// DBBefore returns the value of :db-before, or nil if absent.
func (r *TxReport) DBBefore() types.Value {
	return r.get(KeyDBBefore)
}

// DBAfter returns the value of :db-after, or nil if absent.
func (r *TxReport) DBAfter() types.Value {
	return r.get(KeyDBAfter)
}

// TxData returns the value of :tx-data, or nil if absent.
func (r *TxReport) TxData() types.Value {
	return r.get(KeyTxData)
}

// TempIDs returns the value of :tempids, or nil if absent.
func (r *TxReport) TempIDs() types.Value {
	return r.get(KeyTempIDs)
}

func (r *TxReport) get(name string) types.Value {
	v, ok := r.GetKeyword(name)
	if !ok {
		return nil
	}
	return v
}

// DecodeTxReport decodes a transaction report. The root must be a map.
func DecodeTxReport(text string) (*TxReport, error) {
	v, err := Decode(text)
	if err != nil {
		return nil, err
	}

	return AsTxReport(v)
}

// AsTxReport returns the decoded map as a transaction report.
func AsTxReport(v types.Value) (*TxReport, error) {
	m, ok := v.(*types.MapValue)
	if !ok {
		return nil, errors.NewShapeError("map", types.TypeName(v), "")
	}

	return &TxReport{MapValue: m}, nil
}

// DecodeDatoms decodes a list of datoms: a vector whose elements are maps.
func DecodeDatoms(text string) ([]*types.MapValue, error) {
	v, err := Decode(text)
	if err != nil {
		return nil, err
	}

	return AsDatoms(v)
}

// AsDatoms returns the maps of a decoded sequence of datoms.
func AsDatoms(v types.Value) ([]*types.MapValue, error) {
	s, ok := v.(*types.SequenceValue)
	if !ok {
		return nil, errors.NewShapeError("vector of maps", types.TypeName(v), "")
	}

	datoms := make([]*types.MapValue, 0, s.Len())
	err := s.Iterate(func(i int, e types.Value) error {
		m, ok := e.(*types.MapValue)
		if !ok {
			return errors.NewShapeError("map", types.TypeName(e), fmt.Sprintf("[%d]", i))
		}
		datoms = append(datoms, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return datoms, nil
}
