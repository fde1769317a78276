package argparse

import (
	"fmt"
	"reflect"
	"strconv"
)

// ConvertFunc converts a single command-line token into a typed value.
// Returning an error marks the token as a ConversionFailure; there is no
// silent fallback to a default value.
type ConvertFunc[T any] func(token string) (T, error)

// converters maps a value's reflect.Type to its ConvertFunc. Registration is
// expected to happen during tree construction, before any parsing, and is not
// safe for concurrent use.
var converters = map[reflect.Type]any{}

// RegisterConverter installs fn as the converter used by every subsequently
// registered value or list argument of type T. Registering a converter for a
// type that already has one replaces it, which allows overriding the built-in
// int and string conversions.
func RegisterConverter[T any](fn ConvertFunc[T]) {
	converters[reflect.TypeOf((*T)(nil)).Elem()] = fn
}

func converterFor[T any]() (ConvertFunc[T], bool) {
	fn, ok := converters[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return fn.(ConvertFunc[T]), true
}

// mustConverter resolves the converter for T at registration time and panics
// if none exists, so a missing conversion surfaces while the tree is being
// built instead of in the middle of a parse.
func mustConverter[T any]() ConvertFunc[T] {
	fn, ok := converterFor[T]()
	if !ok {
		panic(fmt.Errorf("argparse: no converter registered for type %v",
			reflect.TypeOf((*T)(nil)).Elem()))
	}
	return fn
}

func init() {
	RegisterConverter[int](func(token string) (int, error) {
		v, err := strconv.ParseInt(token, 10, 0)
		if err != nil {
			return 0, err
		}
		return int(v), nil
	})
	RegisterConverter[string](func(token string) (string, error) {
		return token, nil
	})
}
