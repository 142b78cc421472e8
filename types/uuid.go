package types

import (
	"strconv"

	"github.com/google/uuid"
)

var _ Value = NewUUIDValue(uuid.Nil)

// UUIDValue is a UUID, as read from a #uuid tagged literal.
type UUIDValue uuid.UUID

// NewUUIDValue returns a uuid value.
func NewUUIDValue(x uuid.UUID) UUIDValue {
	return UUIDValue(x)
}

func (v UUIDValue) V() any {
	return uuid.UUID(v)
}

func (v UUIDValue) Type() Type {
	return TypeUUID
}

func (v UUIDValue) String() string {
	return "#uuid " + strconv.Quote(uuid.UUID(v).String())
}

func (v UUIDValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v UUIDValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(uuid.UUID(v).String())), nil
}

func (UUIDValue) value() {}
