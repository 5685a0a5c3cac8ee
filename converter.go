package jsonbind

import (
	"fmt"
	"reflect"
)

// Converter transforms values of one shape between their Go form and JSON.
//
// Converters never see JSON null on Read or a nil source on Write: the
// registry reads null as absence (nil) and writes nil sources as null.
// Read must return a value whose dynamic type is assignable or convertible to
// the shape's Go type, or nil to mean "no value".
type Converter interface {
	Read(v Value) (any, error)
	Write(src any) (Value, error)
}

// ReadFunc converts a non-null JSON value into its Go form.
type ReadFunc func(v Value) (any, error)

// WriteFunc converts a non-nil Go value into JSON.
type WriteFunc func(src any) (Value, error)

// Funcs adapts a pair of functions to the Converter interface. A missing
// direction fails when used.
type Funcs struct {
	ReadFunc  ReadFunc
	WriteFunc WriteFunc
}

func (f *Funcs) Read(v Value) (any, error) {
	if f.ReadFunc == nil {
		return nil, fmt.Errorf("jsonbind: converter does not support reading")
	}
	return f.ReadFunc(v)
}

func (f *Funcs) Write(src any) (Value, error) {
	if f.WriteFunc == nil {
		return Value{}, fmt.Errorf("jsonbind: converter does not support writing")
	}
	return f.WriteFunc(src)
}

// isNil reports whether src holds no value at all.
func isNil(src any) bool {
	if src == nil {
		return true
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// assign stores a converter result into dst. A nil result leaves dst untouched.
func assign(dst reflect.Value, x any) error {
	if x == nil {
		return nil
	}
	if !dst.CanSet() {
		return fmt.Errorf("jsonbind: cannot set %s (unexported or unsettable)", dst.Type())
	}
	xv := reflect.ValueOf(x)
	dt := dst.Type()
	xt := xv.Type()
	if xt.AssignableTo(dt) {
		dst.Set(xv)
		return nil
	}
	if convertible(xv, dt) {
		dst.Set(xv.Convert(dt))
		return nil
	}
	return fmt.Errorf("jsonbind: converter returned type %s, expected %s", xt, dt)
}

func convertible(xv reflect.Value, dt reflect.Type) bool {
	if !xv.Type().ConvertibleTo(dt) {
		return false
	}
	switch {
	case dt.Kind() == reflect.String && xv.Kind() != reflect.String:
		// integer to string conversion yields a rune, never what a converter meant
		return false
	case xv.Kind() == reflect.Slice && dt.Kind() == reflect.Array:
		return xv.Len() >= dt.Len()
	}
	return true
}

func writeMismatch(src any, expected string) *Error {
	return &Error{kind: ErrTypeMismatch, Message: fmt.Sprintf("cannot write %T as %s", src, expected)}
}
