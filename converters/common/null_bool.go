package common

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// JSONToNullBoolConverter converts a JSON boolean to a valid null.Bool.
func JSONToNullBoolConverter(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToNullBoolConverter"
	srcVal, ok := src.(bool)
	if !ok {
		return null.Bool{}, errors.New(op).Errorf("Given parameter not a bool, got %T", src)
	}

	return null.BoolFrom(srcVal), nil
}

// NullBoolToJSONConverter converts a null.Bool to a JSON boolean, or nil when invalid.
func NullBoolToJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullBoolToJSONConverter"

	if nullBool, ok := src.(null.Bool); ok {
		if !nullBool.Valid {
			return nil, nil
		}
		return nullBool.Bool, nil
	}

	if b, ok := src.(bool); ok {
		return b, nil
	}

	return nil, errors.New(op).Errorf("Given parameter not a bool or null.Bool, got %T", src)
}
