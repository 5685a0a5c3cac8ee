package jsonbind

import (
	"reflect"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/jsonbind/converters"
)

var timeType = reflect.TypeOf(time.Time{})

func scalarKind(s Shape, kinds ...reflect.Kind) bool {
	if !s.IsScalar() {
		return false
	}
	k := s.Type().Kind()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

var boolFactory = Factory{
	Name:  "boolean",
	Match: func(s Shape) bool { return scalarKind(s, reflect.Bool) },
	Build: func(r *Registry, s Shape) (Converter, error) {
		return &boolConverter{typ: s.Type(), weak: r.options.WeaklyTypedInput}, nil
	},
}

var numberFactory = Factory{
	Name: "number",
	Match: func(s Shape) bool {
		return scalarKind(s,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64)
	},
	Build: func(r *Registry, s Shape) (Converter, error) {
		return &numberConverter{typ: s.Type(), weak: r.options.WeaklyTypedInput}, nil
	},
}

var stringFactory = Factory{
	Name:  "string",
	Match: func(s Shape) bool { return scalarKind(s, reflect.String) },
	Build: func(r *Registry, s Shape) (Converter, error) {
		return &stringConverter{typ: s.Type(), weak: r.options.WeaklyTypedInput}, nil
	},
}

var timeFactory = Factory{
	Name:  "timestamp",
	Match: func(s Shape) bool { return s.IsScalar() && s.Type() == timeType },
	Build: func(*Registry, Shape) (Converter, error) { return timeConverter{}, nil },
}

type boolConverter struct {
	typ  reflect.Type
	weak bool
}

func (c *boolConverter) Read(v Value) (any, error) {
	const op errors.Op = "jsonbind.boolConverter.Read"
	var (
		b   bool
		err error
	)
	if c.weak {
		b, err = converters.CoerceBool(op, v.Interface())
	} else {
		b, err = converters.CheckBool(op, v.Interface())
	}
	if err != nil {
		return nil, typeMismatch(v, "boolean", err)
	}
	out := reflect.New(c.typ).Elem()
	out.SetBool(b)
	return out.Interface(), nil
}

func (c *boolConverter) Write(src any) (Value, error) {
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Bool {
		return Value{}, writeMismatch(src, "boolean")
	}
	return Bool(rv.Bool()), nil
}

type numberConverter struct {
	typ  reflect.Type
	weak bool
}

func (c *numberConverter) Read(v Value) (any, error) {
	const op errors.Op = "jsonbind.numberConverter.Read"
	src := v.Interface()
	var (
		f   float64
		err error
	)
	if c.weak {
		f, err = converters.CoerceFloat64(op, src)
	} else {
		f, err = converters.CheckFloat64(op, src)
	}
	if err != nil {
		return nil, typeMismatch(v, "number", err)
	}
	if v.Kind() != KindNumber {
		src = f
	}
	out := reflect.New(c.typ).Elem()
	switch c.typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := converters.CheckInt64(op, src)
		if err != nil {
			return nil, typeMismatch(v, c.typ.String(), err)
		}
		if out.OverflowInt(i) {
			return nil, typeMismatch(v, c.typ.String(), errors.New(op).Msg(converters.ErrMsgOutOfRangeValue))
		}
		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := converters.CheckUint64(op, src)
		if err != nil {
			return nil, typeMismatch(v, c.typ.String(), err)
		}
		if out.OverflowUint(u) {
			return nil, typeMismatch(v, c.typ.String(), errors.New(op).Msg(converters.ErrMsgOutOfRangeValue))
		}
		out.SetUint(u)
	default:
		if out.OverflowFloat(f) {
			return nil, typeMismatch(v, c.typ.String(), errors.New(op).Msg(converters.ErrMsgOutOfRangeValue))
		}
		out.SetFloat(f)
	}
	return out.Interface(), nil
}

func (c *numberConverter) Write(src any) (Value, error) {
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	}
	return Value{}, writeMismatch(src, "number")
}

type stringConverter struct {
	typ  reflect.Type
	weak bool
}

func (c *stringConverter) Read(v Value) (any, error) {
	const op errors.Op = "jsonbind.stringConverter.Read"
	var (
		s   string
		err error
	)
	if c.weak {
		s, err = converters.CoerceString(op, v.Interface())
	} else {
		s, err = converters.CheckString(op, v.Interface())
	}
	if err != nil {
		return nil, typeMismatch(v, "string", err)
	}
	out := reflect.New(c.typ).Elem()
	out.SetString(s)
	return out.Interface(), nil
}

func (c *stringConverter) Write(src any) (Value, error) {
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.String {
		return Value{}, writeMismatch(src, "string")
	}
	return String(rv.String()), nil
}

// timeConverter reads epoch milliseconds or a timestamp string, and always
// writes epoch milliseconds.
type timeConverter struct{}

func (timeConverter) Read(v Value) (any, error) {
	t, err := converters.ParseTimestamp(v.Interface())
	if err != nil {
		return nil, typeMismatch(v, "timestamp", err)
	}
	return t, nil
}

func (timeConverter) Write(src any) (Value, error) {
	ms, err := converters.EpochMillis(src)
	if err != nil {
		return Value{}, writeMismatch(src, "timestamp")
	}
	return Number(ms), nil
}
