package types

import (
	"math/big"
)

var _ Value = NewIntegerValue(0)

// IntegerValue is an integer of arbitrary precision.
// The underlying big.Int is never exposed, so the value cannot be mutated.
type IntegerValue struct {
	i *big.Int
}

// NewIntegerValue returns an integer value.
func NewIntegerValue(x int64) IntegerValue {
	return IntegerValue{i: big.NewInt(x)}
}

// NewBigIntegerValue returns an integer value holding a copy of x.
func NewBigIntegerValue(x *big.Int) IntegerValue {
	return IntegerValue{i: new(big.Int).Set(x)}
}

// ParseIntegerValue parses a base 10 integer of any magnitude,
// with an optional leading sign.
func ParseIntegerValue(s string) (IntegerValue, bool) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return IntegerValue{}, false
	}
	return IntegerValue{i: i}, true
}

func (v IntegerValue) bigInt() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return v.i
}

// V returns a copy of the value as a *big.Int.
func (v IntegerValue) V() any {
	return v.BigInt()
}

// BigInt returns a copy of the value.
func (v IntegerValue) BigInt() *big.Int {
	return new(big.Int).Set(v.bigInt())
}

// Int64 returns the value as an int64 and whether it fits.
func (v IntegerValue) Int64() (int64, bool) {
	i := v.bigInt()
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// Cmp compares v and other and returns -1, 0 or +1.
func (v IntegerValue) Cmp(other IntegerValue) int {
	return v.bigInt().Cmp(other.bigInt())
}

func (v IntegerValue) Type() Type {
	return TypeInteger
}

func (v IntegerValue) String() string {
	return v.bigInt().String()
}

func (v IntegerValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v IntegerValue) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

func (IntegerValue) value() {}
