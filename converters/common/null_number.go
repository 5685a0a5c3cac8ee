package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/jsonbind/converters"
	"github.com/aarondl/null/v8"
)

// JSONToNullFloat64Converter converts a JSON number to a valid null.Float64.
func JSONToNullFloat64Converter(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToNullFloat64Converter"
	srcVal, err := converters.CheckFloat64(op, src)
	if err != nil {
		return null.Float64{}, errors.New(op).Err(err)
	}
	return null.Float64From(srcVal), nil
}

// NullFloat64ToJSONConverter converts a null.Float64 to a JSON number, or nil when invalid.
func NullFloat64ToJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullFloat64ToJSONConverter"
	nf, ok := src.(null.Float64)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Float64, got %T", src)
	}
	if !nf.Valid {
		return nil, nil
	}
	return nf.Float64, nil
}

// JSONToNullInt64Converter converts an integral JSON number to a valid null.Int64.
func JSONToNullInt64Converter(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToNullInt64Converter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return null.Int64{}, errors.New(op).Err(err)
	}
	return null.Int64From(srcVal), nil
}

// NullInt64ToJSONConverter converts a null.Int64 to a JSON number, or nil when invalid.
func NullInt64ToJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullInt64ToJSONConverter"
	ni, ok := src.(null.Int64)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Int64, got %T", src)
	}
	if !ni.Valid {
		return nil, nil
	}
	return ni.Int64, nil
}

// JSONToNullIntConverter converts an integral JSON number to a valid null.Int.
func JSONToNullIntConverter(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToNullIntConverter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return null.Int{}, errors.New(op).Err(err)
	}
	return null.IntFrom(int(srcVal)), nil
}

// NullIntToJSONConverter converts a null.Int to a JSON number, or nil when invalid.
func NullIntToJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullIntToJSONConverter"
	ni, ok := src.(null.Int)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Int, got %T", src)
	}
	if !ni.Valid {
		return nil, nil
	}
	return int64(ni.Int), nil
}
