package converters

import (
	"math"
	"strconv"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// CheckBool returns src as a bool, failing for any other dynamic type.
func CheckBool(op errors.Op, src any) (bool, error) {
	srcVal, ok := src.(bool)
	if !ok {
		return false, errors.New(op).Errorf("%s, got %T", ErrMsgNotBool, src)
	}
	return srcVal, nil
}

// CheckString returns src as a string, failing for any other dynamic type.
// Unlike column converters, the empty string is a valid JSON string.
func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("%s, got %T", ErrMsgNotString, src)
	}
	return srcVal, nil
}

// CheckFloat64 returns src as a float64. JSON numbers arrive as float64, or as
// json.Number when an integer is too large to be held exactly.
func CheckFloat64(op errors.Op, src any) (float64, error) {
	switch v := src.(type) {
	case float64:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.New(op).Err(err).Msg(ErrMsgNotNumber)
		}
		return f, nil
	}
	return 0, errors.New(op).Errorf("%s, got %T", ErrMsgNotNumber, src)
}

// CheckInt64 accepts any Go integer, a float64 holding an integral value, or
// an integral json.Number, as produced by JSON decoding.
func CheckInt64(op errors.Op, src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return -1, errors.New(op).Errorf("%s, got %d", ErrMsgOutOfRangeValue, v)
		}
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return -1, errors.New(op).Errorf("%s, got %d", ErrMsgOutOfRangeValue, v)
		}
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return -1, errors.New(op).Errorf("%s, got %v", ErrMsgNotInteger, v)
		}
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return -1, errors.New(op).Errorf("%s, got %v", ErrMsgOutOfRangeValue, v)
		}
		return int64(v), nil
	case json.Number:
		i, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			if isRangeErr(err) {
				return -1, errors.New(op).Errorf("%s, got %s", ErrMsgOutOfRangeValue, v)
			}
			f, ferr := CheckFloat64(op, v)
			if ferr != nil {
				return -1, ferr
			}
			return CheckInt64(op, f)
		}
		return i, nil
	}
	return -1, errors.New(op).Errorf("%s, got %T", ErrMsgNotInteger, src)
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// CheckUint64 is CheckInt64 for unsigned targets; negative values fail.
func CheckUint64(op errors.Op, src any) (uint64, error) {
	switch v := src.(type) {
	case uint64:
		return v, nil
	case uint:
		return uint64(v), nil
	case json.Number:
		if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return u, nil
		} else if isRangeErr(err) {
			return 0, errors.New(op).Errorf("%s, got %s", ErrMsgOutOfRangeValue, v)
		}
	}
	if f, ok := src.(float64); ok && f >= math.MaxInt64 && f == math.Trunc(f) {
		if f >= math.MaxUint64 {
			return 0, errors.New(op).Errorf("%s, got %v", ErrMsgOutOfRangeValue, f)
		}
		return uint64(f), nil
	}
	v, err := CheckInt64(op, src)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New(op).Errorf("%s, got %d", ErrMsgOutOfRangeValue, v)
	}
	return uint64(v), nil
}

// CheckTime returns src as a time.Time, failing for any other dynamic type.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	srcVal, ok := src.(time.Time)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
	}
	return srcVal, nil
}

// CoerceBool is the lenient form of CheckBool: strings such as "true" or "1"
// and numbers are accepted.
func CoerceBool(op errors.Op, src any) (bool, error) {
	if b, ok := src.(bool); ok {
		return b, nil
	}
	if n, ok := src.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			src = f
		}
	}
	switch src.(type) {
	case string, float64:
		v, err := cast.ToBoolE(src)
		if err != nil {
			return false, errors.New(op).Err(err).Msg(ErrMsgNotBool)
		}
		return v, nil
	}
	return false, errors.New(op).Errorf("%s, got %T", ErrMsgNotBool, src)
}

// CoerceFloat64 is the lenient form of CheckFloat64: numeric strings and
// booleans are accepted.
func CoerceFloat64(op errors.Op, src any) (float64, error) {
	switch v := src.(type) {
	case float64:
		return v, nil
	case json.Number:
		return CheckFloat64(op, v)
	}
	switch src.(type) {
	case string, bool:
		v, err := cast.ToFloat64E(src)
		if err != nil {
			return 0, errors.New(op).Err(err).Msg(ErrMsgNotNumber)
		}
		return v, nil
	}
	return 0, errors.New(op).Errorf("%s, got %T", ErrMsgNotNumber, src)
}

// CoerceString is the lenient form of CheckString: numbers and booleans are
// formatted.
func CoerceString(op errors.Op, src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	}
	switch src.(type) {
	case float64, bool:
		v, err := cast.ToStringE(src)
		if err != nil {
			return "", errors.New(op).Err(err).Msg(ErrMsgNotString)
		}
		return v, nil
	}
	return "", errors.New(op).Errorf("%s, got %T", ErrMsgNotString, src)
}
