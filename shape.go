package jsonbind

import (
	"reflect"
	"strings"
)

const arrayHashPrefix = "Array:("

var (
	anyType   = reflect.TypeOf((*any)(nil)).Elem()
	valueType = reflect.TypeOf(Value{})
)

// Shape describes what is being converted: either a single Go type (scalar),
// or an ordered sequence of shapes. A one-element sequence is an array of that
// element; a longer one is a fixed-length tuple matched by position.
//
// Shapes are compared by Hash only.
type Shape struct {
	typ   reflect.Type
	elems []Shape
	hash  string
}

// Type returns the scalar shape for t.
func Type(t reflect.Type) Shape {
	if t == nil {
		return Shape{}
	}
	return Shape{typ: t, hash: typeName(t)}
}

// TypeOf returns the scalar shape for T.
func TypeOf[T any]() Shape {
	return Type(reflect.TypeOf((*T)(nil)).Elem())
}

// ArrayOf returns the shape of a homogeneous array of elem.
func ArrayOf(elem Shape) Shape {
	return sequence([]Shape{elem})
}

// TupleOf returns the shape of a fixed-length array whose positions hold the
// given shapes. TupleOf with a single shape is the same as ArrayOf.
func TupleOf(elems ...Shape) Shape {
	return sequence(append([]Shape(nil), elems...))
}

func sequence(elems []Shape) Shape {
	var b strings.Builder
	b.WriteString(arrayHashPrefix)
	for i, e := range elems {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(e.hash)
	}
	b.WriteByte(')')
	return Shape{elems: elems, hash: b.String()}
}

// ShapeOf infers a shape from a static Go type: unnamed slices become arrays
// of their element shape. Everything else is a scalar, including byte slices
// and named slice types, so a converter registered for a named slice applies.
func ShapeOf(t reflect.Type) Shape {
	if t == nil {
		return Shape{}
	}
	if t.Kind() == reflect.Slice && t.Name() == "" && t.Elem().Kind() != reflect.Uint8 {
		return ArrayOf(ShapeOf(t.Elem()))
	}
	return Type(t)
}

// selfReferential reports whether t leads back to itself through slice,
// array, map or pointer element types alone, as in type L []L.
func selfReferential(t reflect.Type) bool {
	seen := make(map[reflect.Type]bool)
	for t != nil {
		switch t.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Ptr:
		default:
			return false
		}
		if seen[t] {
			return true
		}
		seen[t] = true
		t = t.Elem()
	}
	return false
}

// Hash is the structural identity of the shape.
func (s Shape) Hash() string { return s.hash }

func (s Shape) String() string { return s.hash }

// IsZero reports whether s was never constructed.
func (s Shape) IsZero() bool { return s.typ == nil && s.elems == nil }

func (s Shape) IsScalar() bool   { return s.typ != nil }
func (s Shape) IsSequence() bool { return s.elems != nil }

// IsTuple reports whether s is a sequence of more than one shape.
func (s Shape) IsTuple() bool { return len(s.elems) > 1 }

// Type returns the Go type of a scalar shape, nil for sequences.
func (s Shape) Type() reflect.Type { return s.typ }

// Elems returns the entries of a sequence shape.
func (s Shape) Elems() []Shape { return s.elems }

// Equal compares shapes by hash.
func (s Shape) Equal(o Shape) bool { return s.hash == o.hash }

// GoType is the Go type produced when reading this shape from JSON: the scalar
// type itself, []E for arrays, and []any for tuples.
func (s Shape) GoType() reflect.Type {
	switch {
	case s.typ != nil:
		return s.typ
	case len(s.elems) == 1:
		if et := s.elems[0].GoType(); et != nil {
			return reflect.SliceOf(et)
		}
		return nil
	case len(s.elems) > 1:
		return reflect.TypeOf([]any(nil))
	}
	return nil
}

// typeName is the canonical name used in hashes: the import path qualified
// name for named types, the type literal otherwise.
func typeName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
