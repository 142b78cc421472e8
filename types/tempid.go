package types

import (
	"encoding/json"
)

// TempIDValue is an opaque marker standing for a temporary identifier.
// Temporary identifiers only mean something to the remote service at
// write time, so the client never interprets them: two markers are only
// equal if they are the same marker.
type TempIDValue struct {
	raw string
}

// NewTempIDValue returns a new marker. raw is the literal text it was
// read from and is only used to print the marker.
func NewTempIDValue(raw string) *TempIDValue {
	return &TempIDValue{raw: raw}
}

func (v *TempIDValue) V() any {
	return v
}

func (v *TempIDValue) Type() Type {
	return TypeTempID
}

func (v *TempIDValue) String() string {
	return v.raw
}

func (v *TempIDValue) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

func (v *TempIDValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

func (*TempIDValue) value() {}
