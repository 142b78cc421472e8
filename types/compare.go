package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b are structurally equal.
//
// Integers and doubles are never equal to each other, lists and vectors
// holding equal elements are equal, sets and maps are compared regardless
// of order and instants are compared with time.Time.Equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch x := a.(type) {
	case NullValue:
		return true
	case BooleanValue, TextValue, CharacterValue, SymbolValue, KeywordValue, UUIDValue:
		return a == b
	case IntegerValue:
		return x.Cmp(b.(IntegerValue)) == 0
	case DoubleValue:
		y := b.(DoubleValue)
		return x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y)))
	case TimestampValue:
		return time.Time(x).Equal(time.Time(b.(TimestampValue)))
	case *TempIDValue:
		return x == b.(*TempIDValue)
	case *TaggedValue:
		y := b.(*TaggedValue)
		return x.tag == y.tag && Equal(x.inner, y.inner)
	case *SequenceValue:
		y := b.(*SequenceValue)
		if len(x.values) != len(y.values) {
			return false
		}
		for i := range x.values {
			if !Equal(x.values[i], y.values[i]) {
				return false
			}
		}
		return true
	case *SetValue:
		y := b.(*SetValue)
		if len(x.values) != len(y.values) {
			return false
		}
		for _, v := range x.values {
			if !y.Contains(v) {
				return false
			}
		}
		return true
	case *MapValue:
		y := b.(*MapValue)
		if len(x.entries) != len(y.entries) {
			return false
		}
		for _, e := range x.entries {
			v, ok := y.Get(e.Key)
			if !ok || !Equal(e.Value, v) {
				return false
			}
		}
		return true
	}

	return false
}

// Key returns a string identifying v: two values have the same key
// if and only if they are Equal. It is used to index set elements and
// map keys.
func Key(v Value) string {
	var sb strings.Builder
	writeKey(&sb, v)
	return sb.String()
}

// writeKey writes a self-delimiting encoding of v, so that keys of
// collection elements can be concatenated without ambiguity.
func writeKey(sb *strings.Builder, v Value) {
	switch x := v.(type) {
	case nil, NullValue:
		sb.WriteByte('n')
	case BooleanValue:
		if x {
			sb.WriteString("b1")
		} else {
			sb.WriteString("b0")
		}
	case IntegerValue:
		sb.WriteByte('i')
		sb.WriteString(x.String())
		sb.WriteByte(';')
	case DoubleValue:
		f := float64(x)
		if f == 0 {
			// -0 == 0
			f = 0
		}
		sb.WriteByte('d')
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		sb.WriteByte(';')
	case TextValue:
		sb.WriteByte('s')
		sb.WriteString(strconv.Quote(string(x)))
	case CharacterValue:
		sb.WriteByte('c')
		sb.WriteString(strconv.Itoa(int(x)))
		sb.WriteByte(';')
	case SymbolValue:
		sb.WriteByte('y')
		sb.WriteString(strconv.Quote(string(x)))
	case KeywordValue:
		sb.WriteByte('k')
		sb.WriteString(strconv.Quote(string(x)))
	case TimestampValue:
		sb.WriteByte('t')
		sb.WriteString(time.Time(x).UTC().Format(time.RFC3339Nano))
		sb.WriteByte(';')
	case UUIDValue:
		sb.WriteByte('u')
		sb.WriteString(uuid.UUID(x).String())
		sb.WriteByte(';')
	case *TempIDValue:
		fmt.Fprintf(sb, "p%p;", x)
	case *TaggedValue:
		sb.WriteByte('g')
		sb.WriteString(strconv.Quote(x.tag))
		writeKey(sb, x.inner)
	case *SequenceValue:
		sb.WriteByte('[')
		for _, e := range x.values {
			writeKey(sb, e)
		}
		sb.WriteByte(']')
	case *SetValue:
		keys := make([]string, len(x.values))
		for i, e := range x.values {
			keys[i] = Key(e)
		}
		slices.Sort(keys)
		sb.WriteString("#{")
		for _, k := range keys {
			sb.WriteString(k)
		}
		sb.WriteByte('}')
	case *MapValue:
		pairs := make([]string, len(x.entries))
		for i, e := range x.entries {
			pairs[i] = Key(e.Key) + Key(e.Value)
		}
		slices.Sort(pairs)
		sb.WriteByte('{')
		for _, p := range pairs {
			sb.WriteString(p)
		}
		sb.WriteByte('}')
	default:
		panic(fmt.Sprintf("unsupported value %#v", v))
	}
}
