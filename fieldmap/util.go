package fieldmap

import (
	"reflect"
	"strconv"
)

// base strips pointer indirections from t. A named pointer type that points
// back to itself, directly or through other named pointers, ends the walk at
// the first repeated type.
func base(t reflect.Type) reflect.Type {
	var seen map[reflect.Type]struct{}
	for t.Kind() == reflect.Ptr {
		if t.Name() != "" {
			if _, ok := seen[t]; ok {
				return t
			}
			if seen == nil {
				seen = make(map[reflect.Type]struct{})
			}
			seen[t] = struct{}{}
		}
		t = t.Elem()
	}
	return t
}

func typeStr(t reflect.Type) string {
	// named types first so a self-referencing pointer type terminates
	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + typeStr(t.Elem())
	case reflect.Slice:
		return "[]" + typeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeStr(t.Elem())
	case reflect.Map:
		return "map[" + typeStr(t.Key()) + "]" + typeStr(t.Elem())
	default:
		return t.String()
	}
}
