package jsonbind

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float32

type status string

type flag bool

func TestPrimitives_Read(t *testing.T) {
	reg := New()

	tests := []struct {
		name  string
		in    Value
		shape Shape
		want  any
	}{
		{"bool", Bool(true), TypeOf[bool](), true},
		{"named bool", Bool(true), TypeOf[flag](), flag(true)},
		{"string", String("x"), TypeOf[string](), "x"},
		{"empty string", String(""), TypeOf[string](), ""},
		{"named string", String("ok"), TypeOf[status](), status("ok")},
		{"int", Number(42), TypeOf[int](), 42},
		{"int8", Number(-128), TypeOf[int8](), int8(-128)},
		{"uint16", Number(65535), TypeOf[uint16](), uint16(65535)},
		{"float64", Number(1.5), TypeOf[float64](), 1.5},
		{"named float32", Number(21.5), TypeOf[celsius](), celsius(21.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.FromJSON(tt.in, tt.shape)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrimitives_ReadMismatch(t *testing.T) {
	reg := New()

	tests := []struct {
		name  string
		in    Value
		shape Shape
	}{
		{"number as bool", Number(1), TypeOf[bool]()},
		{"string as number", String("1"), TypeOf[int]()},
		{"bool as string", Bool(true), TypeOf[string]()},
		{"fraction as int", Number(1.5), TypeOf[int]()},
		{"int8 overflow", Number(128), TypeOf[int8]()},
		{"negative uint", Number(-1), TypeOf[uint]()},
		{"uint8 overflow", Number(256), TypeOf[uint8]()},
		{"float32 overflow", Number(1e300), TypeOf[float32]()},
		{"object as string", ObjectValue(NewObject()), TypeOf[string]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.FromJSON(tt.in, tt.shape)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTypeMismatch)
		})
	}
}

func TestPrimitives_Write(t *testing.T) {
	reg := New()

	tests := []struct {
		name string
		src  any
		want string
	}{
		{"bool", true, `true`},
		{"named bool", flag(false), `false`},
		{"int", 42, `42`},
		{"uint64", uint64(7), `7`},
		{"float", 0.25, `0.25`},
		{"named float32", celsius(21.5), `21.5`},
		{"string", "x", `"x"`},
		{"named string", status("ok"), `"ok"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reg.ToJSON(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}

	_, err := reg.ToJSON("x", TypeOf[int]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = reg.ToJSON(1, TypeOf[bool]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = reg.ToJSON(true, TypeOf[string]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

type qsoRecord struct {
	ID     int64  `jsonbind:"id"`
	Serial uint64 `jsonbind:"serial"`
}

func TestPrimitives_LargeIntegersRoundTrip(t *testing.T) {
	reg := New()

	tests := []struct {
		name string
		rec  qsoRecord
		want string
	}{
		{"max int64", qsoRecord{ID: math.MaxInt64, Serial: math.MaxUint64}, `{"id":9223372036854775807,"serial":18446744073709551615}`},
		{"min int64", qsoRecord{ID: math.MinInt64}, `{"id":-9223372036854775808,"serial":0}`},
		{"just past 2^53", qsoRecord{ID: 9007199254740993, Serial: 9007199254740993}, `{"id":9007199254740993,"serial":9007199254740993}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reg.ToJSON(tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())

			back, err := From[qsoRecord](reg, v)
			require.NoError(t, err)
			assert.Equal(t, tt.rec, back)

			parsed, err := Unmarshal[qsoRecord](reg, []byte(tt.want))
			require.NoError(t, err)
			assert.Equal(t, tt.rec, parsed)
		})
	}
}

func TestPrimitives_LargeIntegerOutOfRange(t *testing.T) {
	reg := New()

	_, err := reg.FromJSON(mustParse(t, `9223372036854775808`), TypeOf[int64]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = reg.FromJSON(mustParse(t, `18446744073709551616`), TypeOf[uint64]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = reg.FromJSON(mustParse(t, `-9007199254740993`), TypeOf[uint64]())
	assert.ErrorIs(t, err, ErrTypeMismatch)

	got, err := reg.FromJSON(mustParse(t, `9007199254740993`), TypeOf[float64]())
	require.NoError(t, err)
	assert.Equal(t, float64(9007199254740992), got)
}

func TestPrimitives_WeaklyTypedInput(t *testing.T) {
	reg := New(WithWeaklyTypedInput(true))

	tests := []struct {
		name  string
		in    Value
		shape Shape
		want  any
	}{
		{"numeric string to int", String("42"), TypeOf[int](), 42},
		{"numeric string to float", String("2.5"), TypeOf[float64](), 2.5},
		{"bool to number", Bool(true), TypeOf[int](), 1},
		{"string to bool", String("true"), TypeOf[bool](), true},
		{"number to bool", Number(0), TypeOf[bool](), false},
		{"number to string", Number(7), TypeOf[string](), "7"},
		{"bool to string", Bool(true), TypeOf[string](), "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.FromJSON(tt.in, tt.shape)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := reg.FromJSON(String("many"), TypeOf[int]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = reg.FromJSON(Array(), TypeOf[string]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestTimestamp_Read(t *testing.T) {
	reg := New()
	want := time.Date(2024, time.March, 9, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   Value
		want time.Time
	}{
		{"epoch millis", Number(float64(want.UnixMilli())), want},
		{"rfc3339", String("2024-03-09T10:30:00Z"), want},
		{"datetime", String("2024-03-09 10:30:00"), want},
		{"date", String("2024-03-09"), time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)},
		{"compact date", String("20240309"), time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.FromJSON(tt.in, TypeOf[time.Time]())
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.(time.Time)), "got %v", got)
		})
	}

	_, err := reg.FromJSON(String("yesterday"), TypeOf[time.Time]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = reg.FromJSON(Bool(true), TypeOf[time.Time]())
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestTimestamp_WritesEpochMillis(t *testing.T) {
	ts := time.Date(2024, time.March, 9, 10, 30, 0, 0, time.UTC)

	v, err := New().ToJSON(ts)
	require.NoError(t, err)
	n, ok := v.AsNumber()
	require.True(t, ok)
	assert.Equal(t, float64(ts.UnixMilli()), n)

	type event struct {
		At *time.Time `jsonbind:"at"`
	}
	got, err := From[event](New(), ObjectValue(NewObject().Set("at", v)))
	require.NoError(t, err)
	require.NotNil(t, got.At)
	assert.True(t, ts.Equal(*got.At))
}
