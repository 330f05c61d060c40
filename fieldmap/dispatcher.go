package fieldmap

import (
	"reflect"

	"github.com/reflectkit/introspector/arrays"
	"github.com/reflectkit/introspector/internal/common"
	"github.com/reflectkit/introspector/options"
)

// Dispatch determines the category of v by inspecting its runtime type.
// Interfaces are unwrapped to their dynamic value, which is returned together
// with the category. A category disabled in allowed degrades to
// DispatcherBuiltin, so the value is kept untouched.
func Dispatch(v reflect.Value, allowed options.CategoryEnum) (DispatcherEnum, reflect.Value) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return DispatcherNil, v
		}
		v = v.Elem()
	}

	if !v.IsValid() {
		return DispatcherNil, v
	}

	t := v.Type()
	if isNilable(t.Kind()) && v.IsNil() {
		return DispatcherNil, v
	}

	switch k := t.Kind(); {
	case isScalar(k):
		return DispatcherScalar, v
	case isBuiltin(t):
		return DispatcherBuiltin, v
	case k == reflect.Ptr:
		return gate(allowed, options.CategoryPointer, DispatcherPointer), v
	case arrays.IsArrayKind(k):
		return gate(allowed, options.CategoryArray, DispatcherArray), v
	case k == reflect.Struct:
		return gate(allowed, options.CategoryComposite, DispatcherComposite), v
	default:
		// maps, channels, functions and unsafe pointers are opaque
		return DispatcherBuiltin, v
	}
}

func gate(allowed, flag options.CategoryEnum, d DispatcherEnum) DispatcherEnum {
	if allowed.Has(flag) {
		return d
	}

	return DispatcherBuiltin
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

// isBuiltin reports whether t, or the type it points to, is declared by the
// standard library.
func isBuiltin(t reflect.Type) bool {
	t = base(t)
	return t.Name() != "" && common.IsStdPkg(t.PkgPath())
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
