package jsonbind

import (
	"errors"
	"reflect"
)

var arrayFactory = Factory{
	Name:  "array",
	Match: func(s Shape) bool { return s.IsSequence() || namedSlice(s) },
	Build: func(r *Registry, s Shape) (Converter, error) {
		elems := s.Elems()
		var sliceType reflect.Type
		if namedSlice(s) {
			if selfReferential(s.Type()) {
				return nil, unsupportedShape(s)
			}
			sliceType = s.Type()
			elems = []Shape{ShapeOf(sliceType.Elem())}
		}
		c := &arrayConverter{reg: r, shape: s, convs: make([]Converter, len(elems))}
		for i, e := range elems {
			conv, err := r.Resolve(e)
			if err != nil {
				return nil, err
			}
			c.convs[i] = conv
		}
		if !s.IsTuple() && len(elems) == 1 {
			c.elem = elems[0].GoType()
			c.slice = sliceType
			if c.slice == nil {
				c.slice = reflect.SliceOf(c.elem)
			}
		}
		return c, nil
	},
}

// namedSlice matches scalar shapes of named slice types. Named byte slices
// are left to a registered converter.
func namedSlice(s Shape) bool {
	return s.IsScalar() && s.Type().Kind() == reflect.Slice && s.Type().Elem().Kind() != reflect.Uint8
}

// arrayConverter handles both homogeneous arrays, read into []E, and tuples,
// read into []any with one entry per position. Nulls inside arrays are kept.
type arrayConverter struct {
	reg   *Registry
	shape Shape
	convs []Converter
	elem  reflect.Type // element type of homogeneous arrays
	slice reflect.Type
}

func (c *arrayConverter) Read(v Value) (any, error) {
	items, ok := v.AsArray()
	if !ok {
		return nil, typeMismatch(v, "array", nil)
	}
	if c.elem == nil {
		return c.readTuple(v, items)
	}
	out := reflect.MakeSlice(c.slice, len(items), len(items))
	for i, item := range items {
		x, err := c.reg.read(c.convs[0], item)
		if err != nil {
			return nil, c.elementError(v, err)
		}
		if err := assign(out.Index(i), x); err != nil {
			return nil, err
		}
	}
	return out.Interface(), nil
}

func (c *arrayConverter) readTuple(v Value, items []Value) (any, error) {
	if len(items) != len(c.convs) {
		return nil, lengthMismatch(v, len(c.convs), len(items))
	}
	out := make([]any, len(items))
	for i, item := range items {
		x, err := c.reg.read(c.convs[i], item)
		if err != nil {
			return nil, c.elementError(v, err)
		}
		out[i] = x
	}
	return out, nil
}

func (c *arrayConverter) elementError(v Value, err error) error {
	if errors.Is(err, ErrTypeMismatch) {
		return typeMismatch(v, describe(c.shape), err)
	}
	return err
}

func (c *arrayConverter) Write(src any) (Value, error) {
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Value{}, writeMismatch(src, describe(c.shape))
	}
	n := rv.Len()
	if c.elem == nil && n != len(c.convs) {
		return Value{}, writeMismatch(src, describe(c.shape))
	}
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		conv := c.convs[0]
		if c.elem == nil {
			conv = c.convs[i]
		}
		val, err := c.reg.write(conv, rv.Index(i).Interface())
		if err != nil {
			return Value{}, err
		}
		out[i] = val
	}
	return Value{kind: KindArray, arr: out}, nil
}
