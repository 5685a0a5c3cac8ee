package jsonbind

import (
	"fmt"
	"reflect"
)

// Generic helpers as top-level functions (methods cannot have type parameters yet).
// Without an explicit shape they use the shape of the static type T.

func shapeFor[T any](shape []Shape) (Shape, error) {
	switch len(shape) {
	case 0:
		return ShapeOf(reflect.TypeOf((*T)(nil)).Elem()), nil
	case 1:
		return shape[0], nil
	}
	return Shape{}, fmt.Errorf("jsonbind: expected at most one shape, got %d", len(shape))
}

// Into reads v into dst. JSON null leaves dst untouched.
func Into[T any](r *Registry, dst *T, v Value, shape ...Shape) error {
	s, err := shapeFor[T](shape)
	if err != nil {
		return err
	}
	x, err := r.FromJSON(v, s)
	if err != nil {
		return err
	}
	return assign(reflect.ValueOf(dst).Elem(), x)
}

// From reads v as a T.
func From[T any](r *Registry, v Value, shape ...Shape) (T, error) {
	var d T
	err := Into(r, &d, v, shape...)
	return d, err
}

// To writes src using the shape of its static type, which unlike ToJSON
// keeps interface and slice element types as declared.
func To[T any](r *Registry, src T, shape ...Shape) (Value, error) {
	s, err := shapeFor[T](shape)
	if err != nil {
		return Value{}, err
	}
	return r.ToJSON(src, s)
}

// Unmarshal parses data and reads it as a T.
func Unmarshal[T any](r *Registry, data []byte, shape ...Shape) (T, error) {
	var d T
	v, err := Parse(data)
	if err != nil {
		return d, err
	}
	err = Into(r, &d, v, shape...)
	return d, err
}

// Marshal writes src to JSON and encodes it.
func Marshal(r *Registry, src any, shape ...Shape) ([]byte, error) {
	v, err := r.ToJSON(src, shape...)
	if err != nil {
		return nil, err
	}
	return v.MarshalJSON()
}
