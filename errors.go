package jsonbind

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedShape is matched by errors raised when no factory can build a converter.
	ErrUnsupportedShape = errors.New("jsonbind: unsupported shape")
	// ErrTypeMismatch is matched by errors raised when a JSON value does not fit the requested shape.
	ErrTypeMismatch = errors.New("jsonbind: type mismatch")
	// ErrRequiredField is matched by errors raised when a required property is missing from the JSON.
	ErrRequiredField = errors.New("jsonbind: required field missing")
)

// Error is the carrier for every failure raised by the conversion engine.
// Use errors.Is with ErrUnsupportedShape, ErrTypeMismatch or ErrRequiredField
// to tell them apart.
type Error struct {
	kind error

	// Message is the human readable description of this level of the failure.
	Message string
	// JSON is the offending fragment, when one is available.
	JSON    Value
	HasJSON bool
	// Property and Owner name the struct field and its type when the failure
	// was raised or re-raised by an object converter.
	Property string
	Owner    string
	// Err is the failure this one wraps, if any.
	Err error
}

func (e *Error) Error() string {
	var inner *Error
	if errors.As(e.Err, &inner) {
		return e.Message + ": " + inner.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinel of this level only; deeper levels are reached through Unwrap.
func (e *Error) Is(target error) bool { return e.kind == target }

// Path returns the property names from the outermost object down to the failing field.
func (e *Error) Path() []string {
	var path []string
	var cur error = e
	for cur != nil {
		var ee *Error
		if !errors.As(cur, &ee) {
			break
		}
		if ee.Property != "" {
			path = append(path, ee.Property)
		}
		cur = ee.Err
	}
	return path
}

func unsupportedShape(s Shape) *Error {
	return &Error{kind: ErrUnsupportedShape, Message: fmt.Sprintf("jsonbind: cannot handle %s", describe(s))}
}

func typeMismatch(v Value, expected string, cause error) *Error {
	return &Error{
		kind:    ErrTypeMismatch,
		Message: fmt.Sprintf("value '%s' does not match the expected type: %s", v, expected),
		JSON:    v,
		HasJSON: true,
		Err:     cause,
	}
}

func propertyMismatch(field, owner, jsonKey string, fragment Value, cause error) *Error {
	return &Error{
		kind:     ErrTypeMismatch,
		Message:  fmt.Sprintf("property '%s' of %s does not match type of '%s'", field, owner, jsonKey),
		JSON:     fragment,
		HasJSON:  true,
		Property: field,
		Owner:    owner,
		Err:      cause,
	}
}

func requiredMissing(field, owner string, fragment Value) *Error {
	return &Error{
		kind:     ErrRequiredField,
		Message:  fmt.Sprintf("property '%s' of %s is set as required, but missing on the JSON", field, owner),
		JSON:     fragment,
		HasJSON:  true,
		Property: field,
		Owner:    owner,
	}
}

func lengthMismatch(v Value, want, got int) *Error {
	return &Error{
		kind:    ErrTypeMismatch,
		Message: fmt.Sprintf("tuple of %d elements does not match array of %d elements", want, got),
		JSON:    v,
		HasJSON: true,
	}
}

func describe(s Shape) string {
	if s.IsZero() {
		return "an empty shape"
	}
	return s.Hash()
}
