package fieldmap

import "reflect"

// fieldPlan describes how a declared struct field is read. Plans depend on
// the type only and are cached per Reader.
type fieldPlan struct {
	name     string
	index    int
	exported bool
	embedded bool
}

func buildPlan(t reflect.Type) []fieldPlan {
	plan := make([]fieldPlan, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}

		plan = append(plan, fieldPlan{
			name:     sf.Name,
			index:    i,
			exported: sf.IsExported(),
			embedded: sf.Anonymous,
		})
	}

	return plan
}

func (r *Reader) plan(t reflect.Type) []fieldPlan {
	if p, ok := r.plans.Get(t); ok {
		return p
	}

	p := buildPlan(t)
	r.plans.Add(t, p)

	return p
}
