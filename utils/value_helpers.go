// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package utils

import "strconv"

// ValueStringSetter returns a function which stores a (string, error) pair in
// the given Value.
func ValueStringSetter(value *Value[string]) func(string, error) {
	return func(str string, err error) {
		*value = NewValueFrom(str, err)
	}
}

// ValueParseInt64Setter returns a function which parses a string as a base-10
// integer and stores the result in the given Value. A parse failure is stored
// as the Value's error.
func ValueParseInt64Setter(value *Value[uint64]) func(string, error) {
	return func(str string, err error) {
		if err != nil {
			*value = NewErrorValue[uint64](err)
			return
		}
		parsed, parseErr := strconv.ParseInt(str, 10, 64)
		*value = NewValueFrom(uint64(parsed), parseErr)
	}
}

// ValueParseFloat64Setter returns a function which parses a string as a float
// and stores the result in the given Value. A parse failure is stored as the
// Value's error.
func ValueParseFloat64Setter(value *Value[float64]) func(string, error) {
	return func(str string, err error) {
		if err != nil {
			*value = NewErrorValue[float64](err)
			return
		}
		parsed, parseErr := strconv.ParseFloat(str, 64)
		*value = NewValueFrom(parsed, parseErr)
	}
}
