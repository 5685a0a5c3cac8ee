package converters

import (
	"math"
	"strings"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// TimestampLayouts are tried in order when a timestamp arrives as a string.
// They cover the ISO forms plus the SQLite and Postgres text encodings.
var TimestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05-07",
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"20060102",
}

// ParseTimestamp converts a JSON timestamp into a time.Time. Numbers are epoch
// milliseconds; strings are parsed with TimestampLayouts.
func ParseTimestamp(src any) (time.Time, error) {
	const op errors.Op = "converters.ParseTimestamp"
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return time.Time{}, errors.New(op).Msg(ErrMsgBadTimestamp)
		}
		return time.UnixMilli(int64(v)).UTC(), nil
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return time.Time{}, errors.New(op).Err(err).Msg(ErrMsgBadTimestamp)
		}
		return time.UnixMilli(ms).UTC(), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, errors.New(op).Msg(ErrMsgTimestampParam)
		}
		var lastErr error
		for _, layout := range TimestampLayouts {
			t, err := time.Parse(layout, s)
			if err == nil {
				return t, nil
			}
			lastErr = err
		}
		return time.Time{}, errors.New(op).Err(lastErr).Msg(ErrMsgBadTimestamp)
	}
	return time.Time{}, errors.New(op).Errorf("Given parameter not a number or string, got %T", src)
}

// EpochMillis is the JSON form of a timestamp.
func EpochMillis(src any) (float64, error) {
	const op errors.Op = "converters.EpochMillis"
	t, err := CheckTime(op, src)
	if err != nil {
		return 0, errors.New(op).Err(err)
	}
	return float64(t.UnixMilli()), nil
}
