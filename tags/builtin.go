package tags

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/chaisql/edn/types"
)

// Names of the built-in tags.
const (
	InstTag   = "inst"
	UUIDTag   = "uuid"
	TempIDTag = "db/id"
)

var builtins = map[string]Func{
	InstTag:   DecodeInstant,
	UUIDTag:   DecodeUUID,
	TempIDTag: DecodeTempID,
}

// DecodeInstant decodes the string following #inst into an instant.
func DecodeInstant(v types.Value) (types.Value, error) {
	s, ok := v.(types.TextValue)
	if !ok {
		return nil, errors.Errorf("expected a string, got %s", types.TypeName(v))
	}

	ts, err := types.ParseTimestamp(string(s))
	if err != nil {
		return nil, err
	}

	return types.NewTimestampValue(ts), nil
}

// DecodeUUID decodes the string following #uuid.
func DecodeUUID(v types.Value) (types.Value, error) {
	s, ok := v.(types.TextValue)
	if !ok {
		return nil, errors.Errorf("expected a string, got %s", types.TypeName(v))
	}

	id, err := uuid.Parse(string(s))
	if err != nil {
		return nil, errors.Wrap(err, "invalid uuid")
	}

	return types.NewUUIDValue(id), nil
}

// DecodeTempID discards the partition following #db/id and returns an
// opaque marker: temporary ids are only meaningful to the remote service.
func DecodeTempID(v types.Value) (types.Value, error) {
	return types.NewTempIDValue("#" + TempIDTag + " " + v.String()), nil
}
