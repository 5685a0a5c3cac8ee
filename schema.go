package jsonbind

import (
	"reflect"
	"strings"
	"sync"
)

// TagKey is the struct tag read when a type has no explicit schema table.
//
//	type City struct {
//	    Name  string   `jsonbind:"_name,required"`
//	    Wards []string `jsonbind:"fractions"`
//	    Notes any      `jsonbind:",raw"`
//	    Hash  string   `jsonbind:",tojson"`
//	    Temp  string   `jsonbind:"-"`
//	}
//
// The first element is the JSON key ("" keeps the field name). Options:
// required, raw (copy the JSON value without conversion), fromjson (read
// only) and tojson (write only). A bare `jsonbind:""` declares the field
// with defaults; "-" excludes it even from pass-through copying.
const TagKey = "jsonbind"

// Access restricts the direction a property is converted in.
type Access uint8

const (
	AccessBoth         Access = iota // read and written
	AccessFromJSONOnly               // only read from JSON
	AccessToJSONOnly                 // only written to JSON
)

func (a Access) String() string {
	switch a {
	case AccessFromJSONOnly:
		return "fromjson"
	case AccessToJSONOnly:
		return "tojson"
	default:
		return "both"
	}
}

// Property is the declared schema of one struct field.
type Property struct {
	Name       string // JSON key; the field name when empty
	Type       Shape  // target shape; inferred from the field's Go type when zero
	Access     Access
	Required   bool // checked when reading only
	IgnoreType bool // copy the JSON value as-is, no conversion
}

// Schema maps struct field names to their declared properties.
type Schema map[string]Property

// SchemaProvider returns the declared schema of a struct field, if any.
// Fields without a declaration are not mapped unless the registry was
// built WithPassThroughUndeclared.
type SchemaProvider interface {
	Property(owner reflect.Type, field reflect.StructField) (Property, bool)
}

// SchemaStore is a SchemaProvider backed by explicit per-type tables, falling
// back to TagKey struct tags for types without a table.
type SchemaStore struct {
	tables sync.Map // map[reflect.Type]Schema
}

// DefaultSchemas is used by registries built without WithSchemaProvider.
var DefaultSchemas = NewSchemaStore()

func NewSchemaStore() *SchemaStore { return &SchemaStore{} }

// Register stores the schema table for owner, replacing any earlier one.
// Register tables during program initialization, before registries convert
// the type: object converters read the schema once, when first built.
func (s *SchemaStore) Register(owner reflect.Type, schema Schema) {
	if owner == nil {
		return
	}
	if owner.Kind() == reflect.Ptr {
		owner = owner.Elem()
	}
	table := make(Schema, len(schema))
	for k, v := range schema {
		table[k] = v
	}
	s.tables.Store(owner, table)
}

// RegisterSchema stores the schema table for T in s.
func RegisterSchema[T any](s *SchemaStore, schema Schema) {
	s.Register(reflect.TypeOf((*T)(nil)).Elem(), schema)
}

// Property implements SchemaProvider.
func (s *SchemaStore) Property(owner reflect.Type, field reflect.StructField) (Property, bool) {
	if t, ok := s.tables.Load(owner); ok {
		p, ok := t.(Schema)[field.Name]
		return p, ok
	}
	return PropertyFromTag(field)
}

// PropertyFromTag derives a property from the TagKey tag of field.
func PropertyFromTag(field reflect.StructField) (Property, bool) {
	tag, ok := field.Tag.Lookup(TagKey)
	if !ok || tag == "-" {
		return Property{}, false
	}
	name, rest, _ := strings.Cut(tag, ",")
	p := Property{Name: name}
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		switch strings.TrimSpace(opt) {
		case "required":
			p.Required = true
		case "raw":
			p.IgnoreType = true
		case "fromjson":
			p.Access = AccessFromJSONOnly
		case "tojson":
			p.Access = AccessToJSONOnly
		}
	}
	return p, true
}

func excludedByTag(field reflect.StructField) bool {
	return field.Tag.Get(TagKey) == "-"
}
