package jsonbind

import "reflect"

var pointerFactory = Factory{
	Name:  "pointer",
	Match: func(s Shape) bool { return s.IsScalar() && s.Type().Kind() == reflect.Ptr },
	Build: func(r *Registry, s Shape) (Converter, error) {
		if selfReferential(s.Type()) {
			return nil, unsupportedShape(s)
		}
		elem := s.Type().Elem()
		conv, err := r.Resolve(ShapeOf(elem))
		if err != nil {
			return nil, err
		}
		return &pointerConverter{reg: r, elem: elem, conv: conv}, nil
	},
}

// pointerConverter reads into a freshly allocated element; JSON null leaves
// the pointer nil.
type pointerConverter struct {
	reg  *Registry
	elem reflect.Type
	conv Converter
}

func (c *pointerConverter) Read(v Value) (any, error) {
	x, err := c.reg.read(c.conv, v)
	if err != nil {
		return nil, err
	}
	p := reflect.New(c.elem)
	if err := assign(p.Elem(), x); err != nil {
		return nil, err
	}
	return p.Interface(), nil
}

func (c *pointerConverter) Write(src any) (Value, error) {
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Ptr {
		return c.reg.write(c.conv, src)
	}
	if rv.IsNil() {
		return Null(), nil
	}
	return c.reg.write(c.conv, rv.Elem().Interface())
}
