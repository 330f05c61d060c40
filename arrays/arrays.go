package arrays

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/reflectkit/introspector/utils"
)

var (
	// ErrNilValue is returned when the value to inspect is nil.
	ErrNilValue = errors.New("value is nil")
	// ErrNotArray is returned when the value is neither an array nor a slice.
	ErrNotArray = errors.New("value is not an array or slice")
	// ErrOutOfBounds is returned for an index outside the array or slice.
	ErrOutOfBounds = errors.New("index out of bounds")
)

// IsArrayKind reports whether k is array-shaped.
func IsArrayKind(k reflect.Kind) bool {
	return k == reflect.Array || k == reflect.Slice
}

// AssertType fails with ErrNotArray unless v holds an array or a slice.
func AssertType(v any) error {
	if v == nil {
		return ErrNilValue
	}

	t := reflect.TypeOf(v)
	if !IsArrayKind(t.Kind()) {
		return fmt.Errorf("%w: its type is %s", ErrNotArray, t)
	}

	return nil
}

// AssertIndex fails with ErrOutOfBounds unless index addresses an element of v.
// A negative index is rejected before v is inspected.
func AssertIndex(v any, index int) error {
	if index < 0 {
		return fmt.Errorf("%w: index must be non-negative, got %d", ErrOutOfBounds, index)
	}

	if err := AssertType(v); err != nil {
		return err
	}

	length := reflect.ValueOf(v).Len()
	if !utils.IsIndex(index, length) {
		return fmt.Errorf("%w: index must be less than %d, got %d", ErrOutOfBounds, length, index)
	}

	return nil
}

// ToSequence converts an array or slice into an ordered sequence of boxed
// elements. The caller must have established that v is array-shaped; any
// other value panics the same way reflect.Value.Len does.
func ToSequence(v any) []any {
	seq, _ := Walk(reflect.ValueOf(v), func(_ int, elem reflect.Value) (any, error) {
		return Box(elem), nil
	})

	return seq
}

// Walk applies elem to every element of the array-shaped value v, in order.
// It stops at the first error and returns it.
func Walk(v reflect.Value, elem func(i int, v reflect.Value) (any, error)) ([]any, error) {
	seq := make([]any, v.Len())
	for i := range seq {
		out, err := elem(i, v.Index(i))
		if err != nil {
			return nil, err
		}

		seq[i] = out
	}

	return seq, nil
}

// Box returns the element held by v as an interface value. Nested arrays and
// slices become sequences; nil interfaces and nil slices become nil.
func Box(v reflect.Value) any {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch {
	case !v.IsValid():
		return nil
	case v.Kind() == reflect.Slice && v.IsNil():
		return nil
	case IsArrayKind(v.Kind()):
		return ToSequence(v.Interface())
	default:
		return v.Interface()
	}
}
