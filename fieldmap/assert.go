package fieldmap

import (
	"fmt"
	"reflect"

	"github.com/reflectkit/introspector/internal/match"
)

// AssertFieldType checks that the field declared directly on the struct type
// of obj is assignable to expected. Promoted fields of embedded types are not
// considered.
func AssertFieldType(obj any, name string, expected reflect.Type) error {
	if obj == nil || expected == nil {
		return ErrNilValue
	}

	t := base(reflect.TypeOf(obj))
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %s", ErrNotStruct, typeStr(t))
	}

	declared := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name != name {
			declared = append(declared, sf.Name)
			continue
		}

		if !sf.Type.AssignableTo(expected) {
			return fmt.Errorf("%w: field %s of %s has type %s, expected %s",
				ErrTypeMismatch, name, typeStr(t), typeStr(sf.Type), typeStr(expected))
		}

		return nil
	}

	return fmt.Errorf("%w: %s has no field %q%s", ErrNoSuchField, typeStr(t), name, match.Hint(name, declared))
}
