package wafregional

import (
	"bytes"
	"math"
	"strconv"
	"time"

	"github.com/Laisky/errors/v2"
)

// Timestamp is a point in time encoded as fractional epoch seconds, the
// format the JSON 1.1 protocol uses for timestamp members.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns a *Timestamp for t, convenient for optional members.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	secs := float64(t.UnixMilli()) / 1000
	return []byte(strconv.FormatFloat(secs, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts epoch seconds and, for tolerance, RFC 3339 strings.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return errors.Wrapf(err, "invalid timestamp %s", data)
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return errors.Wrapf(err, "invalid timestamp %q", s)
		}
		t.Time = parsed
		return nil
	}
	secs, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.Wrapf(err, "invalid timestamp %s", data)
	}
	whole, frac := math.Modf(secs)
	t.Time = time.Unix(int64(whole), int64(math.Round(frac*1000))*int64(time.Millisecond)).UTC()
	return nil
}
