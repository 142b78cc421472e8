package types

import (
	"encoding/json"
	"strings"
	"unicode"
)

var _ Value = NewCharacterValue('a')

type CharacterValue rune

// NewCharacterValue returns a character value.
func NewCharacterValue(x rune) CharacterValue {
	return CharacterValue(x)
}

// CharacterNames maps the named character literals to their rune.
var CharacterNames = map[string]rune{
	"newline":   '\n',
	"space":     ' ',
	"tab":       '\t',
	"return":    '\r',
	"backspace": '\b',
	"formfeed":  '\f',
}

func (v CharacterValue) V() any {
	return rune(v)
}

func (v CharacterValue) Type() Type {
	return TypeCharacter
}

func (v CharacterValue) String() string {
	r := rune(v)
	for name, c := range CharacterNames {
		if c == r {
			return `\` + name
		}
	}

	// \uXXXX can't express runes outside of the BMP, the reader
	// accepts them verbatim
	if r > 0xffff {
		return `\` + string(r)
	}

	// commas are whitespace for the reader
	if !unicode.IsPrint(r) || unicode.IsSpace(r) || r == ',' {
		var sb strings.Builder
		writeUnicodeEscape(&sb, r)
		return sb.String()
	}

	return `\` + string(r)
}

func (v CharacterValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v CharacterValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(rune(v)))
}

func (CharacterValue) value() {}
