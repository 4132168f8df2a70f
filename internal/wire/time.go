package wire

import (
	"bytes"
	"fmt"
	"net/url"
	"time"
)

// DateFormat is the timestamp layout of the engine REST API.
const DateFormat = "2006-01-02T15:04:05.000-0700"

// Time is a timestamp in the engine's date format.
type Time struct {
	time.Time
}

// TimeOf returns nil for the zero time so optional wire fields stay absent.
func TimeOf(t time.Time) *Time {
	if t.IsZero() {
		return nil
	}
	return &Time{Time: t}
}

// Std returns the wrapped time, or the zero time for nil.
func (t *Time) Std() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.Time
}

func (t Time) String() string {
	return t.Format(DateFormat)
}

// EncodeValues sets key to the engine date format when t is a query parameter.
func (t Time) EncodeValues(key string, v *url.Values) error {
	v.Set(key, t.String())
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(DateFormat) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("wire: invalid date %s", data)
	}
	parsed, err := ParseTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ParseTime accepts the engine date format and RFC 3339.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("wire: unsupported date %q", s)
}
