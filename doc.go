// Package jsonbind converts between plain JSON value trees and typed Go values,
// guided by per-type, per-property schema rather than hand-written marshalling code.
//
// A Registry resolves a Converter for each requested Shape and caches it.
// Converters for structs, slices, tuples and maps re-enter the same registry
// for nested shapes, so every converter is built at most once per registry.
//
// Basic Usage
//
//	type City struct {
//	    Name       string  `jsonbind:"name,required"`
//	    Population int     `jsonbind:"population"`
//	    Wards      []Ward  `jsonbind:"wards"`
//	    Internal   string  // no schema: not mapped
//	}
//
//	reg := jsonbind.New()
//	v, err := reg.ToJSON(city)
//	back, err := jsonbind.From[City](reg, v)
//
// # Shapes
//
// A Shape is either a single Go type or an ordered sequence of shapes:
//
//	jsonbind.TypeOf[City]()                                         // City
//	jsonbind.ArrayOf(jsonbind.TypeOf[City]())                       // []City
//	jsonbind.TupleOf(jsonbind.TypeOf[string](), jsonbind.TypeOf[int]()) // [string, int]
//
// Tuples are read into []any, one entry per position, and fail when the
// JSON array length differs from the tuple arity.
//
// # Schema
//
// Properties are declared with the jsonbind struct tag or with an explicit
// table registered on a SchemaStore (see TagKey and RegisterSchema). Fields
// without a declaration are left alone unless the registry is built with
// WithPassThroughUndeclared. Embedded struct fields (including pointer-to-struct)
// are flattened and treated as if they were defined directly in the parent struct.
//
// # Nulls
//
// JSON null reads as "no value": the target keeps its default. On write,
// properties converting to null are omitted unless WithSerializeNulls is set;
// nulls inside arrays are always kept.
//
// # Custom Converters
//
// Register a Converter for one exact shape, or a Factory for a family of
// shapes; both are consulted before the built-in ones:
//
//	reg := jsonbind.NewBuilder().
//	    RegisterConverter(jsonbind.TypeOf[Point](), &jsonbind.Funcs{ReadFunc: readPoint, WriteFunc: writePoint}).
//	    Build()
//
// # Thread Safety
//
// The Registry is safe for concurrent use. The converter cache uses an atomic
// insert-or-get, so every caller observes the same converter for a shape.
package jsonbind
