package types

import "encoding/json"

var _ Value = NewSymbolValue("")

// SymbolValue is a bare identifier, such as a query variable or a
// partition name.
type SymbolValue string

// NewSymbolValue returns a symbol value.
func NewSymbolValue(x string) SymbolValue {
	return SymbolValue(x)
}

func (v SymbolValue) V() any {
	return string(v)
}

func (v SymbolValue) Type() Type {
	return TypeSymbol
}

// Namespace returns the part of the symbol before the '/', if any.
func (v SymbolValue) Namespace() string {
	ns, _ := splitName(string(v))
	return ns
}

// Name returns the part of the symbol after the '/'.
func (v SymbolValue) Name() string {
	_, name := splitName(string(v))
	return name
}

func (v SymbolValue) String() string {
	return string(v)
}

func (v SymbolValue) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v SymbolValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

func (SymbolValue) value() {}

func splitName(s string) (string, string) {
	if s == "/" {
		return "", s
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return s[:i], s[i+1:]
		}
	}
	return "", s
}
