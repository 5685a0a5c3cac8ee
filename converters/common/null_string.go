package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/jsonbind/converters"
	"github.com/aarondl/null/v8"
)

// JSONToNullStringConverter converts a JSON string into a valid null.String.
// JSON null never reaches this converter; the registry reads it as an invalid value.
func JSONToNullStringConverter(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToNullStringConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return null.String{}, errors.New(op).Err(err)
	}
	return null.StringFrom(srcVal), nil
}

// NullStringToJSONConverter converts a null.String to a JSON string, or nil when invalid.
func NullStringToJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullStringToJSONConverter"

	if nullStr, ok := src.(null.String); ok {
		if !nullStr.Valid {
			return nil, nil
		}
		return nullStr.String, nil
	}

	// Fallback to string check
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}

	return srcVal, nil
}
