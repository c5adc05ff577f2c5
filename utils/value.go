// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package utils

import "errors"

// ErrNotInitialized is returned when reading a Value which was never set.
var ErrNotInitialized = errors.New("value not initialized")

// Value represents either a value of type T or the error which prevented
// collecting it.
//
// The zero Value is an uninitialized value: reading it returns
// ErrNotInitialized. A Value is never mutated once built, so a field which
// failed to collect keeps its error and a collected field keeps its value.
type Value[T any] struct {
	value T
	err   error
	set   bool
}

// NewValue returns a Value containing the given value.
func NewValue[T any](value T) Value[T] {
	return Value[T]{value: value, set: true}
}

// NewErrorValue returns a Value containing the given error.
func NewErrorValue[T any](err error) Value[T] {
	return Value[T]{err: err, set: true}
}

// NewValueFrom returns a Value from a (value, error) pair, keeping the error
// if it is non-nil and the value otherwise.
func NewValueFrom[T any](value T, err error) Value[T] {
	if err != nil {
		return NewErrorValue[T](err)
	}
	return NewValue(value)
}

// Value returns the contained value, or the error which prevented its
// collection.
func (v *Value[T]) Value() (T, error) {
	if !v.set {
		var zero T
		return zero, ErrNotInitialized
	}
	if v.err != nil {
		var zero T
		return zero, v.err
	}
	return v.value, nil
}

// Error returns the error contained in the Value, if any.
func (v *Value[T]) Error() error {
	if !v.set {
		return ErrNotInitialized
	}
	return v.err
}

// ValueOrDefault returns the contained value, or the zero value of T if the
// Value contains an error.
func (v *Value[T]) ValueOrDefault() T {
	value, err := v.Value()
	if err != nil {
		var zero T
		return zero
	}
	return value
}
