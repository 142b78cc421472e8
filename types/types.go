// Package types defines the values produced by the decoder.
//
// Value is a closed union: every variant lives in this package and
// implements an unexported method, so a type switch over the concrete
// types listed in Type is exhaustive.
package types

import (
	"fmt"
)

// Type represents the variant of a decoded value.
type Type uint8

// List of supported types.
const (
	TypeNull Type = iota + 1
	TypeBoolean
	TypeInteger
	TypeDouble
	TypeText
	TypeCharacter
	TypeSymbol
	TypeKeyword
	TypeSequence
	TypeSet
	TypeMap
	TypeTagged
	TypeTimestamp
	TypeTempID
	TypeUUID
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "nil"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeDouble:
		return "double"
	case TypeText:
		return "string"
	case TypeCharacter:
		return "character"
	case TypeSymbol:
		return "symbol"
	case TypeKeyword:
		return "keyword"
	case TypeSequence:
		return "sequence"
	case TypeSet:
		return "set"
	case TypeMap:
		return "map"
	case TypeTagged:
		return "tagged"
	case TypeTimestamp:
		return "instant"
	case TypeTempID:
		return "tempid"
	case TypeUUID:
		return "uuid"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsScalar returns true if t is neither a collection nor a tagged value.
func (t Type) IsScalar() bool {
	switch t {
	case TypeSequence, TypeSet, TypeMap, TypeTagged:
		return false
	}
	return true
}

// IsCollection returns true for sequences, sets and maps.
func (t Type) IsCollection() bool {
	return t == TypeSequence || t == TypeSet || t == TypeMap
}

// Value is a decoded value. Values are immutable once created.
type Value interface {
	// Type returns the variant of the value.
	Type() Type
	// V returns the value as a plain Go value.
	V() any
	// String returns the canonical text form of the value.
	String() string
	MarshalText() ([]byte, error)
	MarshalJSON() ([]byte, error)

	value()
}

// TypeName returns the name used to describe v in error messages.
// Sequences are described by their literal kind ("vector" or "list").
func TypeName(v Value) string {
	if v == nil {
		return "nothing"
	}
	if s, ok := v.(*SequenceValue); ok {
		return s.Kind().String()
	}
	return v.Type().String()
}
