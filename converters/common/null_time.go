package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/jsonbind/converters"
	"github.com/aarondl/null/v8"
)

// JSONToNullTimeConverter converts any parseable JSON timestamp to a valid null.Time.
func JSONToNullTimeConverter(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToNullTimeConverter"
	t, err := converters.ParseTimestamp(src)
	if err != nil {
		return null.Time{}, errors.New(op).Err(err)
	}
	return null.TimeFrom(t), nil
}

// NullTimeToJSONConverter converts a null.Time to epoch milliseconds, or nil when invalid.
func NullTimeToJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullTimeToJSONConverter"
	nt, ok := src.(null.Time)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Time, got %T", src)
	}
	if !nt.Valid {
		return nil, nil
	}
	ms, err := converters.EpochMillis(nt.Time)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return ms, nil
}
