package types

// TaggedValue is a tagged literal that wasn't interpreted.
// The decoder only produces it when asked to keep unknown tags,
// otherwise the inner value is returned as is.
type TaggedValue struct {
	tag   string
	inner Value
}

// NewTaggedValue returns a tagged value.
func NewTaggedValue(tag string, inner Value) *TaggedValue {
	return &TaggedValue{tag: tag, inner: inner}
}

// Tag returns the tag name, without the '#'.
func (v *TaggedValue) Tag() string {
	return v.tag
}

// Inner returns the tagged value.
func (v *TaggedValue) Inner() Value {
	return v.inner
}

func (v *TaggedValue) V() any {
	return v.inner.V()
}

func (v *TaggedValue) Type() Type {
	return TypeTagged
}

func (v *TaggedValue) String() string {
	return "#" + v.tag + " " + v.inner.String()
}

func (v *TaggedValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// MarshalJSON encodes the inner value only.
func (v *TaggedValue) MarshalJSON() ([]byte, error) {
	return v.inner.MarshalJSON()
}

func (*TaggedValue) value() {}
