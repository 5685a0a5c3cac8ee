package jsonbind

import (
	"errors"
	"fmt"
	"reflect"
)

// Defaulter is implemented by types that need non-zero defaults before
// their fields are read from JSON.
type Defaulter interface {
	SetDefaults()
}

var objectFactory = Factory{
	Name: "object",
	Match: func(s Shape) bool {
		return s.IsScalar() && s.Type().Kind() == reflect.Struct
	},
	Build: func(r *Registry, s Shape) (Converter, error) {
		return newObjectConverter(r, s.Type()), nil
	},
}

type fieldInfo struct {
	index    []int
	name     string
	declared bool
	prop     Property
	jsonKey  string
	shape    Shape
}

// objectConverter maps a struct type to a JSON object. Its field table is
// built once, when the registry first resolves the type.
type objectConverter struct {
	reg    *Registry
	typ    reflect.Type
	owner  string
	fields []fieldInfo
}

func newObjectConverter(r *Registry, typ reflect.Type) *objectConverter {
	c := &objectConverter{reg: r, typ: typ, owner: typ.Name()}
	if c.owner == "" {
		c.owner = typ.String()
	}
	c.fields = make([]fieldInfo, 0, countFields(typ))
	c.buildFields(typ, nil)
	return c
}

func countFields(typ reflect.Type) int {
	c := 0
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				c += countFields(ft)
				continue
			}
		}
		if f.PkgPath != "" {
			continue
		}
		c++
	}
	return c
}

// buildFields flattens embedded structs, so their fields behave as if they
// were declared on the outer type.
func (c *objectConverter) buildFields(typ reflect.Type, prefix []int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if excludedByTag(f) {
			continue
		}
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			_, declared := c.lookup(typ, f)
			if ft.Kind() == reflect.Struct && !declared {
				c.buildFields(ft, idx)
				continue
			}
		}
		if f.PkgPath != "" {
			continue
		}
		fi := fieldInfo{index: idx, name: f.Name, jsonKey: f.Name}
		if p, ok := c.lookup(typ, f); ok {
			fi.declared = true
			fi.prop = p
			if p.Name != "" {
				fi.jsonKey = p.Name
			}
			fi.shape = p.Type
			if fi.shape.IsZero() {
				fi.shape = ShapeOf(f.Type)
			}
		}
		c.fields = append(c.fields, fi)
	}
}

// lookup asks the schema provider about a field, first on the converted type
// and then on the struct that declares it.
func (c *objectConverter) lookup(declaring reflect.Type, f reflect.StructField) (Property, bool) {
	if p, ok := c.reg.schemas.Property(c.typ, f); ok {
		return p, true
	}
	if declaring != c.typ {
		return c.reg.schemas.Property(declaring, f)
	}
	return Property{}, false
}

func (c *objectConverter) newInstance() reflect.Value {
	p := reflect.New(c.typ)
	if d, ok := p.Interface().(Defaulter); ok {
		d.SetDefaults()
	}
	return p.Elem()
}

func (c *objectConverter) Read(v Value) (any, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, typeMismatch(v, "object "+c.owner, nil)
	}
	out := c.newInstance()
	for i := range c.fields {
		fi := &c.fields[i]
		if !fi.declared {
			if err := c.copyUndeclared(out, fi, obj); err != nil {
				return nil, err
			}
			continue
		}
		inner, exists := obj.Get(fi.jsonKey)
		if !exists {
			if fi.prop.Required {
				return nil, requiredMissing(fi.name, c.owner, v)
			}
			continue
		}
		if fi.prop.Access == AccessToJSONOnly {
			continue
		}
		dst, ok := fieldForWrite(out, fi.index)
		if !ok {
			continue
		}
		if fi.prop.IgnoreType {
			if err := assignRaw(dst, inner); err != nil {
				return nil, fmt.Errorf("jsonbind: copying property %s of %s: %w", fi.name, c.owner, err)
			}
			continue
		}
		conv, err := c.reg.Resolve(fi.shape)
		if err != nil {
			return nil, err
		}
		x, err := c.reg.read(conv, inner)
		if err != nil {
			if errors.Is(err, ErrTypeMismatch) {
				return nil, propertyMismatch(fi.name, c.owner, fi.jsonKey, v, err)
			}
			return nil, err
		}
		if err := assign(dst, x); err != nil {
			return nil, fmt.Errorf("jsonbind: property %s of %s: %w", fi.name, c.owner, err)
		}
	}
	return out.Interface(), nil
}

func (c *objectConverter) copyUndeclared(out reflect.Value, fi *fieldInfo, obj *Object) error {
	if !c.reg.options.PassThroughUndeclared {
		return nil
	}
	inner, ok := obj.Get(fi.name)
	if !ok || inner.IsNull() {
		return nil
	}
	dst, ok := fieldForWrite(out, fi.index)
	if !ok {
		return nil
	}
	if err := assignRaw(dst, inner); err != nil {
		return fmt.Errorf("jsonbind: copying property %s of %s: %w", fi.name, c.owner, err)
	}
	return nil
}

func (c *objectConverter) Write(src any) (Value, error) {
	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Null(), nil
		}
		rv = rv.Elem()
	}
	if rv.Type() != c.typ {
		return Value{}, writeMismatch(src, "object "+c.owner)
	}
	obj := NewObject()
	for i := range c.fields {
		fi := &c.fields[i]
		fv, ok := safeFieldByIndex(rv, fi.index)
		if !ok || !fv.CanInterface() {
			continue
		}
		var (
			val Value
			err error
			key = fi.jsonKey
		)
		switch {
		case !fi.declared:
			if !c.reg.options.PassThroughUndeclared {
				continue
			}
			val, err = ValueOf(fv.Interface())
		case fi.prop.Access == AccessFromJSONOnly:
			continue
		case fi.prop.IgnoreType:
			val, err = ValueOf(fv.Interface())
		default:
			var conv Converter
			if conv, err = c.reg.Resolve(fi.shape); err != nil {
				return Value{}, err
			}
			val, err = c.reg.write(conv, fv.Interface())
		}
		if err != nil {
			return Value{}, err
		}
		if val.IsNull() && !c.reg.options.SerializeNulls {
			continue
		}
		obj.Set(key, val)
	}
	return ObjectValue(obj), nil
}

// safeFieldByIndex walks index without allocating; a nil embedded pointer
// on the way means the field has no value.
func safeFieldByIndex(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}

// fieldForWrite walks index, allocating nil embedded pointers on the way.
func fieldForWrite(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				if !val.CanSet() {
					return reflect.Value{}, false
				}
				val.Set(reflect.New(val.Type().Elem()))
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, val.CanSet()
}

// assignRaw copies a JSON value into dst without going through a converter.
func assignRaw(dst reflect.Value, v Value) error {
	switch {
	case dst.Type() == valueType:
		dst.Set(reflect.ValueOf(v))
		return nil
	case dst.Kind() == reflect.Interface && dst.NumMethod() == 0:
		if x := v.Interface(); x != nil {
			dst.Set(reflect.ValueOf(x))
		}
		return nil
	}
	if v.IsNull() {
		return nil
	}
	return v.Decode(dst.Addr().Interface())
}
