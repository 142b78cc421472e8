package types

import (
	"bytes"
)

// SequenceKind records which delimiters a sequence was read from.
// It only matters when printing the sequence: lists and vectors
// holding equal elements are equal.
type SequenceKind uint8

const (
	KindVector SequenceKind = iota
	KindList
)

func (k SequenceKind) String() string {
	if k == KindList {
		return "list"
	}
	return "vector"
}

var _ Value = NewVectorValue()

// SequenceValue is an ordered sequence of values, read from a
// vector or a list literal.
type SequenceValue struct {
	kind   SequenceKind
	values []Value
}

// NewVectorValue returns a vector holding the given values.
func NewVectorValue(values ...Value) *SequenceValue {
	return NewSequenceValue(KindVector, values)
}

// NewListValue returns a list holding the given values.
func NewListValue(values ...Value) *SequenceValue {
	return NewSequenceValue(KindList, values)
}

// NewSequenceValue returns a sequence of the given kind.
// The values slice is copied.
func NewSequenceValue(kind SequenceKind, values []Value) *SequenceValue {
	vs := make([]Value, len(values))
	copy(vs, values)
	return &SequenceValue{kind: kind, values: vs}
}

// Kind returns whether the sequence is a vector or a list.
func (s *SequenceValue) Kind() SequenceKind {
	return s.kind
}

// Len returns the number of elements of the sequence.
func (s *SequenceValue) Len() int {
	return len(s.values)
}

// At returns the i-th element. It panics if i is out of range.
func (s *SequenceValue) At(i int) Value {
	return s.values[i]
}

// Values returns a copy of the elements.
func (s *SequenceValue) Values() []Value {
	vs := make([]Value, len(s.values))
	copy(vs, s.values)
	return vs
}

// Iterate calls fn for each element, in order, and stops at the first error.
func (s *SequenceValue) Iterate(fn func(i int, v Value) error) error {
	for i, v := range s.values {
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

// V returns the elements as a []any of plain Go values.
func (s *SequenceValue) V() any {
	vs := make([]any, len(s.values))
	for i, v := range s.values {
		vs[i] = v.V()
	}
	return vs
}

func (s *SequenceValue) Type() Type {
	return TypeSequence
}

func (s *SequenceValue) String() string {
	data, _ := s.MarshalText()
	return string(data)
}

func (s *SequenceValue) MarshalText() ([]byte, error) {
	return MarshalTextIndent(s, "", "")
}

func (s *SequenceValue) MarshalJSON() ([]byte, error) {
	return marshalJSONArray(s.values)
}

func (*SequenceValue) value() {}

func marshalJSONArray(values []Value) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
