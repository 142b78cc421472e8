package types

import (
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}

func AsBool(v Value) bool {
	return bool(v.(BooleanValue))
}

func AsBigInt(v Value) *big.Int {
	return v.(IntegerValue).BigInt()
}

// AsInt64 returns the integer as an int64. It panics if v isn't an integer
// or doesn't fit in 64 bits.
func AsInt64(v Value) int64 {
	i, ok := v.(IntegerValue).Int64()
	if !ok {
		panic(fmt.Errorf("value %s out of range for int64", v))
	}
	return i
}

func AsFloat64(v Value) float64 {
	return float64(v.(DoubleValue))
}

// AsString returns the text of strings, symbols and keywords.
func AsString(v Value) string {
	switch x := v.(type) {
	case SymbolValue:
		return string(x)
	case KeywordValue:
		return string(x)
	}
	return string(v.(TextValue))
}

func AsTime(v Value) time.Time {
	return time.Time(v.(TimestampValue))
}

func AsUUID(v Value) uuid.UUID {
	return uuid.UUID(v.(UUIDValue))
}

func AsSequence(v Value) *SequenceValue {
	return v.(*SequenceValue)
}

func AsMap(v Value) *MapValue {
	return v.(*MapValue)
}
