package map2d

import (
	"fmt"
	"reflect"
)

// keyProblem describes why k cannot be used as a key, or returns "" when
// it can. Rejected are nil identities (nil interface values, nil pointers,
// channels and unsafe pointers) and interface values whose dynamic value
// cannot be hashed, which would otherwise panic inside the row map.
func keyProblem[K any](k K) string {
	switch any(k).(type) {
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return ""
	}
	rv := reflect.ValueOf(any(k))
	if !rv.IsValid() {
		return "nil"
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer,
		reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		if rv.IsNil() {
			return "nil"
		}
	}
	if !rv.Comparable() {
		return "unhashable"
	}
	return ""
}

func validateCell[R any, C any](r R, c C) error {
	if p := keyProblem(r); p != "" {
		return fmt.Errorf("%w: %s row key", ErrInvalidKey, p)
	}
	if p := keyProblem(c); p != "" {
		return fmt.Errorf("%w: %s column key for row %v", ErrInvalidKey, p, r)
	}
	return nil
}
