// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package utils provides the optional-value model and rendering helpers shared
// by the inventory packages.
package utils

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

var (
	// ErrNoFieldCollected means no field could be collected
	ErrNoFieldCollected = errors.New("no field was collected")
	// ErrArgNotStruct means the argument should be a struct but wasn't
	ErrArgNotStruct = errors.New("argument is not a struct")
	// ErrNotCollectable means the value can't be collected on the given platform
	ErrNotCollectable = fmt.Errorf("cannot be collected on %s %s", runtime.GOOS, runtime.GOARCH)
	// ErrNotExported means the struct has an unexported field
	ErrNotExported = errors.New("field not exported by the struct")
	// ErrCannotRender means a field which cannot be rendered
	ErrCannotRender = errors.New("field inner type cannot be rendered")
	// ErrNoValueMethod means a field doesn't have a Value method
	ErrNoValueMethod = errors.New("field doesn't have the expected Value method")
	// ErrNoJSONTag means a field doesn't have a json tag
	ErrNoJSONTag = errors.New("field doesn't have a json tag")
)

// Jsonable represents a type which can be converted to a marshallable object
type Jsonable interface {
	AsJSON() (interface{}, []string, error)
}

// canBeRendered returns whether the given kind converts to a string properly
func canBeRendered(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

// getValueMethod returns the Value method of the field if it has one with the
// expected signature.
//
// Since we don't know the specific T, we can't cast to an interface, and
// reflect can't check a generic type as long as
// https://github.com/golang/go/issues/54393 is not implemented.
func getValueMethod(fieldTy reflect.StructField) (reflect.Method, bool) {
	// Value is a method on *Value[T]
	valueMethod, ok := reflect.PtrTo(fieldTy.Type).MethodByName("Value")
	if !ok || valueMethod.Type.NumIn() != 1 || valueMethod.Type.NumOut() != 2 {
		return reflect.Method{}, false
	}

	errInterface := reflect.TypeOf((*error)(nil)).Elem()
	if !valueMethod.Type.Out(1).Implements(errInterface) {
		return reflect.Method{}, false
	}

	return valueMethod, true
}

// AsJSON takes a struct whose fields are Value[T] and returns a marshallable
// object with one entry per collected field, plus the list of per-field
// collection errors.
//
// If useDefault is true, fields which failed to be collected are rendered as
// the zero value of their type, otherwise they are omitted. Fields which are
// not collectable on the current platform are always omitted and do not count
// as errors.
//
// Fields which are unexported, lack a json tag, or are not Value[T] of a
// renderable T cause the function to return an error: that is a programming
// mistake in the caller, not a collection failure.
func AsJSON[T any](info *T, useDefault bool) (interface{}, []string, error) {
	reflVal := reflect.ValueOf(info).Elem()
	reflType := reflect.TypeOf(info).Elem()

	if reflVal.Kind() != reflect.Struct {
		return nil, nil, ErrArgNotStruct
	}

	values := make(map[string]interface{})
	warns := []string{}
	var lastErr error // kept so that errors.Is works on the aggregate error

	for i := 0; i < reflVal.NumField(); i++ {
		fieldTy := reflType.Field(i)
		fieldName := fieldTy.Name

		if !fieldTy.IsExported() {
			return nil, nil, fmt.Errorf("%s: %w", fieldName, ErrNotExported)
		}

		jsonName, ok := fieldTy.Tag.Lookup("json")
		if !ok {
			return nil, nil, fmt.Errorf("%s: %w", fieldName, ErrNoJSONTag)
		}

		valueMethod, ok := getValueMethod(fieldTy)
		if !ok {
			return nil, nil, fmt.Errorf("%s: %w", fieldName, ErrNoValueMethod)
		}

		ret := valueMethod.Func.Call([]reflect.Value{reflVal.Field(i).Addr()})
		retValue := ret[0]
		if ret[1].Interface() != nil {
			err := ret[1].Interface().(error)

			// fields not implemented on this platform are not failures
			if !errors.Is(err, ErrNotCollectable) {
				warns = append(warns, err.Error())
				lastErr = err
			}

			if !useDefault {
				continue
			}
			retValue = reflect.Zero(retValue.Type())
		}

		if !canBeRendered(retValue.Kind()) {
			return nil, nil, fmt.Errorf("%s: %w", fieldName, ErrCannotRender)
		}

		// Get returns an empty string when the tag is missing, which renders
		// as no unit
		unit := fieldTy.Tag.Get("unit")

		values[jsonName] = fmt.Sprintf("%v%s", retValue.Interface(), unit)
	}

	if len(values) == 0 {
		// when all fields failed for the same reason, surface that reason
		if len(warns) != 0 && allEqual(warns) {
			return nil, nil, fmt.Errorf("%w: %w", ErrNoFieldCollected, lastErr)
		}
		return nil, warns, ErrNoFieldCollected
	}

	return values, warns, nil
}

func allEqual[T comparable](values []T) bool {
	for _, val := range values {
		if val != values[0] {
			return false
		}
	}
	return true
}
