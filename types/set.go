package types

var _ Value = NewSetValue()

// SetValue is a collection of distinct values. Elements are kept in the
// order they were first added, but that order is not significant.
type SetValue struct {
	values []Value
	index  map[string]struct{}
}

// NewSetValue returns a set holding the given values.
// Values that are equal to a previous one are dropped.
func NewSetValue(values ...Value) *SetValue {
	s := SetValue{
		values: make([]Value, 0, len(values)),
		index:  make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		s.add(v)
	}
	return &s
}

func (s *SetValue) add(v Value) bool {
	k := Key(v)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = struct{}{}
	s.values = append(s.values, v)
	return true
}

// Contains reports whether the set holds a value equal to v.
func (s *SetValue) Contains(v Value) bool {
	_, ok := s.index[Key(v)]
	return ok
}

// Len returns the number of distinct elements.
func (s *SetValue) Len() int {
	return len(s.values)
}

// Values returns a copy of the elements.
func (s *SetValue) Values() []Value {
	vs := make([]Value, len(s.values))
	copy(vs, s.values)
	return vs
}

// Iterate calls fn for each element and stops at the first error.
func (s *SetValue) Iterate(fn func(v Value) error) error {
	for _, v := range s.values {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *SetValue) V() any {
	vs := make([]any, len(s.values))
	for i, v := range s.values {
		vs[i] = v.V()
	}
	return vs
}

func (s *SetValue) Type() Type {
	return TypeSet
}

func (s *SetValue) String() string {
	data, _ := s.MarshalText()
	return string(data)
}

func (s *SetValue) MarshalText() ([]byte, error) {
	return MarshalTextIndent(s, "", "")
}

func (s *SetValue) MarshalJSON() ([]byte, error) {
	return marshalJSONArray(s.values)
}

func (*SetValue) value() {}
