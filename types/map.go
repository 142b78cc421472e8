package types

import (
	"bytes"
	"encoding/json"
)

var _ Value = NewMapValue()

// A MapEntry is a key and its associated value.
type MapEntry struct {
	Key   Value
	Value Value
}

// MapValue associates keys with values. Keys are unique and entries are
// kept in the order their key was first seen.
type MapValue struct {
	entries []MapEntry
	index   map[string]int
}

// NewMapValue returns a map holding the given entries.
// If a key appears more than once, the last value wins, at the position
// of the first occurrence.
func NewMapValue(entries ...MapEntry) *MapValue {
	m := MapValue{
		entries: make([]MapEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		m.set(e.Key, e.Value)
	}
	return &m
}

func (m *MapValue) set(k, v Value) {
	key := Key(k)
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, MapEntry{Key: k, Value: v})
}

// Get returns the value associated with a key equal to k.
func (m *MapValue) Get(k Value) (Value, bool) {
	i, ok := m.index[Key(k)]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// GetKeyword returns the value associated with the keyword name.
// The leading ':' is optional: GetKeyword("db/id") and GetKeyword(":db/id")
// are the same lookup.
func (m *MapValue) GetKeyword(name string) (Value, bool) {
	return m.Get(NewKeywordValue(name))
}

// Len returns the number of entries.
func (m *MapValue) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries, in order.
func (m *MapValue) Entries() []MapEntry {
	es := make([]MapEntry, len(m.entries))
	copy(es, m.entries)
	return es
}

// Iterate calls fn for each entry, in order, and stops at the first error.
func (m *MapValue) Iterate(fn func(k, v Value) error) error {
	for _, e := range m.entries {
		if err := fn(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// V returns the map as a map[string]any. String keys are used as is,
// other keys are converted to their text form. If two keys would
// collide, like ":a" and :a, every key is converted to its text form.
func (m *MapValue) V() any {
	mm := make(map[string]any, len(m.entries))
	for _, e := range m.entries {
		mm[keyText(e.Key)] = e.Value.V()
	}
	if len(mm) == len(m.entries) {
		return mm
	}

	mm = make(map[string]any, len(m.entries))
	for _, e := range m.entries {
		mm[e.Key.String()] = e.Value.V()
	}
	return mm
}

func (m *MapValue) Type() Type {
	return TypeMap
}

func (m *MapValue) String() string {
	data, _ := m.MarshalText()
	return string(data)
}

func (m *MapValue) MarshalText() ([]byte, error) {
	return MarshalTextIndent(m, "", "")
}

// MarshalJSON encodes the map as a JSON object. Keys that aren't strings
// are encoded using their text form, e.g. ":db/id" or "42".
func (m *MapValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(keyText(e.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := e.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (*MapValue) value() {}

func keyText(k Value) string {
	if t, ok := k.(TextValue); ok {
		return string(t)
	}
	return k.String()
}
