package types

import (
	"encoding/json"
	"strings"
)

var _ Value = NewKeywordValue(":a")

// KeywordValue is a keyword, stored verbatim with its leading ':'
// so that it can be compared directly with keyword text such as ":db/id".
type KeywordValue string

// NewKeywordValue returns a keyword value. The leading ':' is added
// if x doesn't start with one.
func NewKeywordValue(x string) KeywordValue {
	if !strings.HasPrefix(x, ":") {
		x = ":" + x
	}
	return KeywordValue(x)
}

func (v KeywordValue) V() any {
	return string(v)
}

func (v KeywordValue) Type() Type {
	return TypeKeyword
}

// Namespace returns the namespace of the keyword, e.g. "db" for ":db/id".
func (v KeywordValue) Namespace() string {
	ns, _ := splitName(strings.TrimLeft(string(v), ":"))
	return ns
}

// Name returns the name of the keyword, e.g. "id" for ":db/id".
func (v KeywordValue) Name() string {
	_, name := splitName(strings.TrimLeft(string(v), ":"))
	return name
}

func (v KeywordValue) String() string {
	return string(v)
}

func (v KeywordValue) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v KeywordValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

func (KeywordValue) value() {}
