package fieldmap

import "reflect"

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// trail holds the pointers on the path from the root to the value currently
// being read. Revisiting one of them means the graph loops back on itself.
// Shared references on separate branches are not cycles.
type trail struct {
	active map[visit]struct{}
}

// Enter records the pointer v on the path. It reports false if v is
// already there.
func (t *trail) Enter(v reflect.Value) bool {
	if t.active == nil {
		t.active = make(map[visit]struct{})
	}

	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if _, exists := t.active[key]; exists {
		return false
	}

	t.active[key] = struct{}{}

	return true
}

func (t *trail) Leave(v reflect.Value) {
	delete(t.active, visit{ptr: v.Pointer(), typ: v.Type()})
}
