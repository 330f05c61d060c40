package fieldmap

import (
	"fmt"
	"strings"
)

// Field is a single named entry of a FieldMap.
type Field struct {
	Name  string
	Value any
}

// FieldMap is a string-keyed map that remembers insertion order. Fields read
// from a struct appear in declaration order.
type FieldMap struct {
	fields []Field
	index  map[string]int
}

func NewFieldMap(capacity int) *FieldMap {
	return &FieldMap{
		fields: make([]Field, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

// Set stores value under name. An existing entry keeps its position.
func (m *FieldMap) Set(name string, value any) {
	if m.index == nil {
		m.index = make(map[string]int)
	}

	if i, ok := m.index[name]; ok {
		m.fields[i].Value = value
		return
	}

	m.index[name] = len(m.fields)
	m.fields = append(m.fields, Field{Name: name, Value: value})
}

func (m *FieldMap) Get(name string) (any, bool) {
	if m == nil {
		return nil, false
	}

	i, ok := m.index[name]
	if !ok {
		return nil, false
	}

	return m.fields[i].Value, true
}

func (m *FieldMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.fields)
}

func (m *FieldMap) Keys() []string {
	keys := make([]string, 0, m.Len())
	for _, f := range m.Fields() {
		keys = append(keys, f.Name)
	}

	return keys
}

// Fields returns a copy of the entries in order.
func (m *FieldMap) Fields() []Field {
	if m == nil {
		return nil
	}

	return append([]Field(nil), m.fields...)
}

// Range calls fn for every entry in order until fn returns false.
func (m *FieldMap) Range(fn func(name string, value any) bool) {
	if m == nil {
		return
	}

	for _, f := range m.fields {
		if !fn(f.Name, f.Value) {
			return
		}
	}
}

// ToMap converts m into a plain map. Nested field maps and sequences are
// converted as well; the order is lost.
func (m *FieldMap) ToMap() map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m.fields))
	for _, f := range m.fields {
		out[f.Name] = plain(f.Value)
	}

	return out
}

func plain(v any) any {
	switch v := v.(type) {
	case *FieldMap:
		return v.ToMap()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

func (m *FieldMap) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	m.Range(func(name string, value any) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", name, value)
		return true
	})
	sb.WriteByte('}')

	return sb.String()
}
