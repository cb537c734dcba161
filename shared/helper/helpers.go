package helper

import (
	"fmt"
)

var ErrUnexpectedType = fmt.Errorf("unexpected type")

// TypedValueOf asserts a result to the expected type T, passing errors through.
// A nil result yields the zero value of T, so interface and pointer results
// can legitimately be nil.
func TypedValueOf[T any](res any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T, want %T", ErrUnexpectedType, res, zero)
	}
	return val, nil
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
// Use when failure can only mean a programming error.
func MustTypedValue[T any](res any, err error) T {
	val, err := TypedValueOf[T](res, err)
	if err != nil {
		panic(err)
	}
	return val
}

// ArgAs converts a stored argument back to T; nil becomes the zero value.
func ArgAs[T any](arg any) T {
	val, _ := arg.(T)
	return val
}
