package common

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	"github.com/goccy/go-json"
)

// JSONToNullJSONConverter stores any JSON fragment, given in generic Go form, as a valid null.JSON.
func JSONToNullJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToNullJSONConverter"
	data, err := json.Marshal(src)
	if err != nil {
		return null.JSON{}, errors.New(op).Err(err)
	}
	return null.JSONFrom(data), nil
}

// NullJSONToJSONConverter decodes a null.JSON into generic Go form, or nil when invalid.
func NullJSONToJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullJSONToJSONConverter"
	nj, ok := src.(null.JSON)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.JSON, got %T", src)
	}
	if !nj.Valid || len(nj.JSON) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(nj.JSON, &out); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return out, nil
}
