package common

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullBoolConverters(t *testing.T) {
	got, err := JSONToNullBoolConverter(true)
	require.NoError(t, err)
	assert.Equal(t, null.BoolFrom(true), got)

	_, err = JSONToNullBoolConverter("true")
	assert.Error(t, err)

	out, err := NullBoolToJSONConverter(null.BoolFrom(false))
	require.NoError(t, err)
	assert.Equal(t, false, out)

	out, err = NullBoolToJSONConverter(null.Bool{})
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = NullBoolToJSONConverter(true)
	require.NoError(t, err)
	assert.Equal(t, true, out)

	_, err = NullBoolToJSONConverter(1)
	assert.Error(t, err)
}

func TestNullNumberConverters(t *testing.T) {
	tests := []struct {
		name     string
		fromJSON func(any) (any, error)
		toJSON   func(any) (any, error)
		in       any
		want     any
		out      any
		invalid  any
	}{
		{"float64", JSONToNullFloat64Converter, NullFloat64ToJSONConverter, 14.32, null.Float64From(14.32), 14.32, null.Float64{}},
		{"int64", JSONToNullInt64Converter, NullInt64ToJSONConverter, 14320000.0, null.Int64From(14320000), int64(14320000), null.Int64{}},
		{"int64 beyond float precision", JSONToNullInt64Converter, NullInt64ToJSONConverter, json.Number("9007199254740993"), null.Int64From(9007199254740993), int64(9007199254740993), null.Int64{}},
		{"int", JSONToNullIntConverter, NullIntToJSONConverter, 59.0, null.IntFrom(59), int64(59), null.Int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fromJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := tt.toJSON(got)
			require.NoError(t, err)
			assert.Equal(t, tt.out, back)

			back, err = tt.toJSON(tt.invalid)
			require.NoError(t, err)
			assert.Nil(t, back)

			_, err = tt.fromJSON("59")
			assert.Error(t, err)
			_, err = tt.toJSON("59")
			assert.Error(t, err)
		})
	}

	_, err := JSONToNullInt64Converter(1.5)
	assert.Error(t, err)
	_, err = JSONToNullIntConverter(1.5)
	assert.Error(t, err)
}

func TestNullTimeConverters(t *testing.T) {
	ts := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)

	got, err := JSONToNullTimeConverter("2025-11-07 12:00:00")
	require.NoError(t, err)
	nt, ok := got.(null.Time)
	require.True(t, ok)
	assert.True(t, nt.Valid)
	assert.True(t, ts.Equal(nt.Time))

	got, err = JSONToNullTimeConverter(float64(ts.UnixMilli()))
	require.NoError(t, err)
	assert.True(t, ts.Equal(got.(null.Time).Time))

	_, err = JSONToNullTimeConverter("later")
	assert.Error(t, err)

	out, err := NullTimeToJSONConverter(null.TimeFrom(ts))
	require.NoError(t, err)
	assert.Equal(t, float64(ts.UnixMilli()), out)

	out, err = NullTimeToJSONConverter(null.Time{})
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = NullTimeToJSONConverter(ts)
	assert.Error(t, err)
}

func TestNullJSONConverters(t *testing.T) {
	got, err := JSONToNullJSONConverter(map[string]any{"band": "20m", "rst": []any{59.0, 57.0}})
	require.NoError(t, err)
	nj, ok := got.(null.JSON)
	require.True(t, ok)
	assert.True(t, nj.Valid)
	assert.JSONEq(t, `{"band":"20m","rst":[59,57]}`, string(nj.JSON))

	out, err := NullJSONToJSONConverter(nj)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"band": "20m", "rst": []any{59.0, 57.0}}, out)

	out, err = NullJSONToJSONConverter(null.JSON{})
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = NullJSONToJSONConverter(null.JSONFrom([]byte(`{bad`)))
	assert.Error(t, err)

	_, err = NullJSONToJSONConverter("{}")
	assert.Error(t, err)
}
