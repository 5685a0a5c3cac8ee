package jsonbind

import (
	"reflect"

	"github.com/Station-Manager/jsonbind/converters/common"
	"github.com/aarondl/null/v8"
)

// nullableConv pairs the two directions of a null.* column type. Both work on
// the generic Go form of JSON values.
type nullableConv struct {
	expected string
	fromJSON func(src any) (any, error)
	toJSON   func(src any) (any, error)
}

var nullableTypes = map[reflect.Type]nullableConv{
	reflect.TypeOf(null.String{}):  {"string", common.JSONToNullStringConverter, common.NullStringToJSONConverter},
	reflect.TypeOf(null.Bool{}):    {"boolean", common.JSONToNullBoolConverter, common.NullBoolToJSONConverter},
	reflect.TypeOf(null.Float64{}): {"number", common.JSONToNullFloat64Converter, common.NullFloat64ToJSONConverter},
	reflect.TypeOf(null.Int64{}):   {"integer", common.JSONToNullInt64Converter, common.NullInt64ToJSONConverter},
	reflect.TypeOf(null.Int{}):     {"integer", common.JSONToNullIntConverter, common.NullIntToJSONConverter},
	reflect.TypeOf(null.Time{}):    {"timestamp", common.JSONToNullTimeConverter, common.NullTimeToJSONConverter},
	reflect.TypeOf(null.JSON{}):    {"any JSON", common.JSONToNullJSONConverter, common.NullJSONToJSONConverter},
}

var nullableFactory = Factory{
	Name: "nullable",
	Match: func(s Shape) bool {
		if !s.IsScalar() {
			return false
		}
		_, ok := nullableTypes[s.Type()]
		return ok
	},
	Build: func(_ *Registry, s Shape) (Converter, error) {
		return &nullableConverter{conv: nullableTypes[s.Type()]}, nil
	},
}

// nullableConverter maps JSON null to an invalid null.* value, which the
// registry does by leaving the field at its zero value.
type nullableConverter struct {
	conv nullableConv
}

func (c *nullableConverter) Read(v Value) (any, error) {
	x, err := c.conv.fromJSON(v.Interface())
	if err != nil {
		return nil, typeMismatch(v, c.conv.expected, err)
	}
	return x, nil
}

func (c *nullableConverter) Write(src any) (Value, error) {
	x, err := c.conv.toJSON(src)
	if err != nil {
		return Value{}, writeMismatch(src, c.conv.expected)
	}
	return ValueOf(x)
}
