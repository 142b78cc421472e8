package edn

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/chaisql/edn/errors"
	"github.com/chaisql/edn/types"
)

// DecodeDatomsJSON decodes a list of datoms from its JSON representation:
// an array of objects. Object keys starting with ':' are decoded as
// keywords, so that lookups work the same as with DecodeDatoms, other keys
// as strings. Integral numbers are decoded as integers, whatever their
// magnitude, other numbers as doubles.
func DecodeDatomsJSON(data []byte) ([]*types.MapValue, error) {
	return DecodeDatomsJSONWithOptions(data, nil)
}

// DecodeDatomsJSONWithOptions is like DecodeDatomsJSON but enforces
// opts.MaxInputSize. Other options don't apply to JSON.
// If opts is nil, default options are used.
func DecodeDatomsJSONWithOptions(data []byte, opts *Options) ([]*types.MapValue, error) {
	if opts == nil {
		opts = defaultOptions()
	}
	if err := opts.checkSize(len(data)); err != nil {
		return nil, err
	}

	_, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.WrapMalformed(err, "invalid JSON")
	}
	if rest := skipJSONSpace(data[end:]); len(rest) > 0 {
		return nil, errors.Malformedf("invalid JSON: unexpected data after offset %d", end)
	}
	if dataType != jsonparser.Array {
		return nil, errors.NewShapeError("array of objects", jsonTypeName(dataType), "")
	}

	datoms := make([]*types.MapValue, 0)
	var cbErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if cbErr != nil {
			return
		}
		if err != nil {
			cbErr = err
			return
		}
		if dataType != jsonparser.Object {
			cbErr = errors.NewShapeError("object", jsonTypeName(dataType), fmt.Sprintf("[%d]", len(datoms)))
			return
		}

		m, err := parseJSONObject(value)
		if err != nil {
			cbErr = err
			return
		}
		datoms = append(datoms, m)
	})
	if cbErr != nil {
		if errors.IsShapeMismatch(cbErr) {
			return nil, cbErr
		}
		return nil, errors.WrapMalformed(cbErr, "invalid JSON")
	}
	if err != nil {
		return nil, errors.WrapMalformed(err, "invalid JSON")
	}

	return datoms, nil
}

func parseJSONObject(data []byte) (*types.MapValue, error) {
	var entries []types.MapEntry
	// offset following the last value
	end := -1
	// keys are already unescaped by ObjectEach
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		v, err := parseJSONValue(dataType, value)
		if err != nil {
			return err
		}

		entries = append(entries, types.MapEntry{Key: jsonKey(string(key)), Value: v})
		end = offset
		return nil
	})
	if err != nil {
		return nil, errors.WrapMalformed(err, "invalid JSON object")
	}
	// ObjectEach accepts a comma before the closing brace
	if end >= 0 {
		if rest := skipJSONSpace(data[end:]); len(rest) == 0 || rest[0] != '}' {
			return nil, errors.Malformedf("invalid JSON object: unexpected data after offset %d", end)
		}
	}

	return types.NewMapValue(entries...), nil
}

// skipJSONSpace returns b without its leading JSON whitespace.
func skipJSONSpace(b []byte) []byte {
	for len(b) > 0 {
		switch b[0] {
		case ' ', '\t', '\n', '\r':
			b = b[1:]
		default:
			return b
		}
	}
	return b
}

func jsonTypeName(t jsonparser.ValueType) string {
	switch t {
	case jsonparser.String:
		return "string"
	case jsonparser.Number:
		return "number"
	case jsonparser.Object:
		return "object"
	case jsonparser.Array:
		return "array"
	case jsonparser.Boolean:
		return "boolean"
	case jsonparser.Null:
		return "null"
	}
	return "unknown"
}

// jsonKey returns the map key for an object key.
func jsonKey(k string) types.Value {
	if strings.HasPrefix(k, ":") && len(k) > 1 {
		return types.NewKeywordValue(k)
	}
	return types.NewTextValue(k)
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (types.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return types.NewBooleanValue(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err == nil {
			return types.NewIntegerValue(i), nil
		}
		// too big to fit in an int64
		if bi, ok := types.ParseIntegerValue(string(data)); ok {
			return bi, nil
		}
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return nil, err
		}
		return types.NewDoubleValue(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	case jsonparser.Array:
		var values []types.Value
		var cbErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			if cbErr != nil {
				return
			}
			if err != nil {
				cbErr = err
				return
			}
			v, err := parseJSONValue(dataType, value)
			if err != nil {
				cbErr = err
				return
			}
			values = append(values, v)
		})
		if cbErr != nil {
			return nil, cbErr
		}
		if err != nil {
			return nil, err
		}
		return types.NewVectorValue(values...), nil
	case jsonparser.Object:
		return parseJSONObject(data)
	}

	return nil, errors.Malformedf("unexpected JSON value %q", data)
}
