package types

import (
	"bytes"
	"strings"
)

// MarshalTextIndent returns the text form of v. If indent is empty, the
// result is on a single line, otherwise each element of a collection starts
// on a new line beginning with prefix followed by one or more copies of
// indent, according to the nesting depth.
func MarshalTextIndent(v Value, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer

	err := marshalText(&buf, v, prefix, indent, 0)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalText(dst *bytes.Buffer, v Value, prefix, indent string, depth int) error {
	switch x := v.(type) {
	case *SequenceValue:
		open, closing := "[", "]"
		if x.kind == KindList {
			open, closing = "(", ")"
		}
		return marshalElements(dst, open, closing, x.values, prefix, indent, depth)
	case *SetValue:
		return marshalElements(dst, "#{", "}", x.values, prefix, indent, depth)
	case *MapValue:
		return marshalMap(dst, x, prefix, indent, depth)
	case *TaggedValue:
		dst.WriteByte('#')
		dst.WriteString(x.tag)
		dst.WriteByte(' ')
		return marshalText(dst, x.inner, prefix, indent, depth)
	}

	data, err := v.MarshalText()
	if err != nil {
		return err
	}
	dst.Write(data)
	return nil
}

func marshalElements(dst *bytes.Buffer, open, closing string, values []Value, prefix, indent string, depth int) error {
	dst.WriteString(open)
	if len(values) == 0 {
		dst.WriteString(closing)
		return nil
	}

	for i, v := range values {
		if indent != "" {
			newline(dst, prefix, indent, depth+1)
		} else if i > 0 {
			dst.WriteByte(' ')
		}

		if err := marshalText(dst, v, prefix, indent, depth+1); err != nil {
			return err
		}
	}

	if indent != "" {
		newline(dst, prefix, indent, depth)
	}
	dst.WriteString(closing)
	return nil
}

func marshalMap(dst *bytes.Buffer, m *MapValue, prefix, indent string, depth int) error {
	dst.WriteByte('{')
	if len(m.entries) == 0 {
		dst.WriteByte('}')
		return nil
	}

	for i, e := range m.entries {
		if indent != "" {
			newline(dst, prefix, indent, depth+1)
		} else if i > 0 {
			dst.WriteString(", ")
		}

		if err := marshalText(dst, e.Key, prefix, indent, depth+1); err != nil {
			return err
		}
		dst.WriteByte(' ')
		if err := marshalText(dst, e.Value, prefix, indent, depth+1); err != nil {
			return err
		}
	}

	if indent != "" {
		newline(dst, prefix, indent, depth)
	}
	dst.WriteByte('}')
	return nil
}

func newline(dst *bytes.Buffer, prefix, indent string, depth int) {
	dst.WriteByte('\n')
	dst.WriteString(prefix)
	dst.WriteString(strings.Repeat(indent, depth))
}
