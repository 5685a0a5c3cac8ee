package jsonbind

import (
	"errors"
	"reflect"
	"sort"
)

var mapFactory = Factory{
	Name: "map",
	Match: func(s Shape) bool {
		return s.IsScalar() && s.Type().Kind() == reflect.Map && s.Type().Key().Kind() == reflect.String
	},
	Build: func(r *Registry, s Shape) (Converter, error) {
		if selfReferential(s.Type()) {
			return nil, unsupportedShape(s)
		}
		conv, err := r.Resolve(ShapeOf(s.Type().Elem()))
		if err != nil {
			return nil, err
		}
		return &mapConverter{reg: r, typ: s.Type(), conv: conv}, nil
	},
}

// mapConverter maps string-keyed Go maps to JSON objects. Keys are written in
// sorted order; null entries are kept in both directions.
type mapConverter struct {
	reg  *Registry
	typ  reflect.Type
	conv Converter
}

func (c *mapConverter) Read(v Value) (any, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, typeMismatch(v, "object", nil)
	}
	out := reflect.MakeMapWithSize(c.typ, obj.Len())
	kt, et := c.typ.Key(), c.typ.Elem()
	for _, k := range obj.Keys() {
		inner, _ := obj.Get(k)
		x, err := c.reg.read(c.conv, inner)
		if err != nil {
			if errors.Is(err, ErrTypeMismatch) {
				return nil, propertyMismatch(k, c.typ.String(), k, v, err)
			}
			return nil, err
		}
		ev := reflect.New(et).Elem()
		if err := assign(ev, x); err != nil {
			return nil, err
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(kt), ev)
	}
	return out.Interface(), nil
}

func (c *mapConverter) Write(src any) (Value, error) {
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return Value{}, writeMismatch(src, "object")
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	obj := NewObject()
	for _, k := range keys {
		val, err := c.reg.write(c.conv, rv.MapIndex(k).Interface())
		if err != nil {
			return Value{}, err
		}
		obj.Set(k.String(), val)
	}
	return ObjectValue(obj), nil
}
