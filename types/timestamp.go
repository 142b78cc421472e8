package types

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-module/carbon/v2"
)

var _ Value = NewTimestampValue(time.Time{})

const instantLayout = "2006-01-02T15:04:05.000Z07:00"

// TimestampValue is an instant, as read from an #inst tagged literal.
type TimestampValue time.Time

// NewTimestampValue returns an instant value. Instants with a zero
// offset are normalized to UTC.
func NewTimestampValue(x time.Time) TimestampValue {
	if _, offset := x.Zone(); offset == 0 {
		x = x.UTC()
	}
	return TimestampValue(x)
}

// lenientLayouts are the layouts accepted when a timestamp isn't valid
// RFC 3339. Fractional seconds are accepted after the seconds field.
var lenientLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an RFC 3339 timestamp. Less strict forms,
// like "2014-12-01 15:27:26.632" or "2014-12-01", are accepted as well
// and are assumed to be in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("invalid timestamp: empty string")
	}

	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		ts, err = parseLenient(s)
		if err != nil {
			return time.Time{}, err
		}
	}

	if _, offset := ts.Zone(); offset == 0 {
		ts = ts.UTC()
	}
	return ts, nil
}

func parseLenient(s string) (time.Time, error) {
	for _, layout := range lenientLayouts {
		c := carbon.ParseByLayout(s, layout, "UTC")
		if c.IsValid() {
			return c.ToStdTime(), nil
		}
	}

	return time.Time{}, errors.Newf("invalid timestamp %q", s)
}

func (v TimestampValue) V() any {
	return time.Time(v)
}

func (v TimestampValue) Type() Type {
	return TypeTimestamp
}

func (v TimestampValue) format() string {
	t := time.Time(v)
	if t.Nanosecond()%int(time.Millisecond) == 0 {
		return t.Format(instantLayout)
	}
	return t.Format(time.RFC3339Nano)
}

func (v TimestampValue) String() string {
	return "#inst " + strconv.Quote(v.format())
}

func (v TimestampValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v TimestampValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.format())), nil
}

func (TimestampValue) value() {}
