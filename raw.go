package jsonbind

import (
	"reflect"

	"github.com/aarondl/sqlboiler/v4/types"
)

var boilerJSONType = reflect.TypeOf(types.JSON(nil))

var rawFactory = Factory{
	Name: "raw",
	Match: func(s Shape) bool {
		if !s.IsScalar() {
			return false
		}
		switch s.Type() {
		case valueType, anyType, boilerJSONType:
			return true
		}
		return false
	},
	Build: func(_ *Registry, s Shape) (Converter, error) {
		return &rawConverter{typ: s.Type()}, nil
	},
}

// rawConverter hands JSON values over untouched: as a Value, in generic Go
// form for `any`, or as encoded bytes for types.JSON columns.
type rawConverter struct {
	typ reflect.Type
}

func (c *rawConverter) Read(v Value) (any, error) {
	switch c.typ {
	case valueType:
		return v, nil
	case boilerJSONType:
		data, err := v.MarshalJSON()
		if err != nil {
			return nil, typeMismatch(v, "JSON", err)
		}
		return types.JSON(data), nil
	}
	return v.Interface(), nil
}

func (c *rawConverter) Write(src any) (Value, error) {
	if j, ok := src.(types.JSON); ok {
		if len(j) == 0 {
			return Null(), nil
		}
		return Parse(j)
	}
	return ValueOf(src)
}
