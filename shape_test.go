package jsonbind

import (
	"reflect"
	"testing"

	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/stretchr/testify/assert"
)

type shapeCity struct{ Name string }

type shapeTags []string

type (
	selfList []selfList
	selfMap  map[string]selfMap
	selfPtr  *selfPtr
)

func TestShape_Hash(t *testing.T) {
	city := TypeOf[shapeCity]()
	assert.Equal(t, "github.com/Station-Manager/jsonbind.shapeCity", city.Hash())
	assert.Equal(t, "int", TypeOf[int]().Hash())
	assert.Equal(t, "Array:(int)", ArrayOf(TypeOf[int]()).Hash())
	assert.Equal(t, "Array:(string+int+Array:(bool))",
		TupleOf(TypeOf[string](), TypeOf[int](), ArrayOf(TypeOf[bool]())).Hash())
	assert.Equal(t, "Array:(Array:(float64))", ArrayOf(ArrayOf(TypeOf[float64]())).Hash())
}

func TestShape_StructuralEquality(t *testing.T) {
	a := TupleOf(TypeOf[shapeCity](), ArrayOf(TypeOf[string]()))
	b := TupleOf(Type(reflect.TypeOf(shapeCity{})), ArrayOf(Type(reflect.TypeOf(""))))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	assert.True(t, ArrayOf(TypeOf[int]()).Equal(TupleOf(TypeOf[int]())))
	assert.False(t, ArrayOf(TypeOf[int]()).Equal(TypeOf[[]int]()))
}

func TestShape_Predicates(t *testing.T) {
	var zero Shape
	assert.True(t, zero.IsZero())
	assert.True(t, Type(nil).IsZero())

	s := TypeOf[int]()
	assert.True(t, s.IsScalar())
	assert.False(t, s.IsSequence())

	arr := ArrayOf(s)
	assert.True(t, arr.IsSequence())
	assert.False(t, arr.IsTuple())
	assert.Len(t, arr.Elems(), 1)

	tup := TupleOf(s, s)
	assert.True(t, tup.IsTuple())
	assert.Nil(t, tup.Type())
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		hash string
	}{
		{"scalar", reflect.TypeOf(0), "int"},
		{"slice", reflect.TypeOf([]string{}), "Array:(string)"},
		{"nested slice", reflect.TypeOf([][]int{}), "Array:(Array:(int))"},
		{"named slice stays scalar", reflect.TypeOf(shapeTags{}), "github.com/Station-Manager/jsonbind.shapeTags"},
		{"slice of named slice", reflect.TypeOf([]shapeTags{}), "Array:(github.com/Station-Manager/jsonbind.shapeTags)"},
		{"self-referential slice", reflect.TypeOf(selfList{}), "github.com/Station-Manager/jsonbind.selfList"},
		{"bytes stay scalar", reflect.TypeOf([]byte{}), "[]uint8"},
		{"named bytes stay scalar", reflect.TypeOf(types.JSON{}), "github.com/aarondl/sqlboiler/v4/types.JSON"},
		{"map", reflect.TypeOf(map[string]int{}), "map[string]int"},
		{"pointer", reflect.TypeOf(&shapeCity{}), "*jsonbind.shapeCity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hash, ShapeOf(tt.typ).Hash())
		})
	}
	assert.True(t, ShapeOf(nil).IsZero())
}

func TestShape_SelfReferential(t *testing.T) {
	assert.True(t, selfReferential(reflect.TypeOf(selfList{})))
	assert.True(t, selfReferential(reflect.TypeOf(selfMap{})))
	assert.True(t, selfReferential(reflect.TypeOf(selfPtr(nil))))
	assert.True(t, selfReferential(reflect.TypeOf([]selfList{})))

	assert.False(t, selfReferential(reflect.TypeOf(shapeTags{})))
	assert.False(t, selfReferential(reflect.TypeOf(map[string][]int{})))
	assert.False(t, selfReferential(reflect.TypeOf([]*tree{})))
}

func TestShape_GoType(t *testing.T) {
	assert.Equal(t, reflect.TypeOf(0), TypeOf[int]().GoType())
	assert.Equal(t, reflect.TypeOf([]shapeCity{}), ArrayOf(TypeOf[shapeCity]()).GoType())
	assert.Equal(t, reflect.TypeOf([][]int{}), ArrayOf(ArrayOf(TypeOf[int]())).GoType())
	assert.Equal(t, reflect.TypeOf([]any{}), TupleOf(TypeOf[int](), TypeOf[string]()).GoType())
	assert.Nil(t, Shape{}.GoType())
}
