package options

import (
	"fmt"
	"strings"

	"github.com/reflectkit/introspector/internal/match"
)

// CategoryEnum selects which value categories a field walk expands.
// Values of a disabled category are passed through untouched.
type CategoryEnum int

const (
	CategoryArray      CategoryEnum = 1 << iota // arrays and slices are converted into ordered sequences
	CategoryComposite                           // user-defined structs are destructured into nested field maps
	CategoryPointer                             // non-nil pointers are followed to their target
	CategoryUnexported                          // unexported fields are read, bypassing visibility
	CategoryEmbedded                            // embedded fields are listed under their type name

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

var categoryNames = []struct {
	flag CategoryEnum
	name string
}{
	{CategoryArray, "array"},
	{CategoryComposite, "composite"},
	{CategoryPointer, "pointer"},
	{CategoryUnexported, "unexported"},
	{CategoryEmbedded, "embedded"},
}

// Has reports whether every bit of flag is enabled in c.
func (c CategoryEnum) Has(flag CategoryEnum) bool {
	return c&flag == flag
}

// String renders the enabled categories as a comma separated list.
func (c CategoryEnum) String() string {
	switch c {
	case CategoryAll:
		return "all"
	case CategoryNone:
		return "none"
	}

	var parts []string
	for _, cn := range categoryNames {
		if c.Has(cn.flag) {
			parts = append(parts, cn.name)
		}
	}

	return strings.Join(parts, ",")
}

// ParseCategories is the inverse of String. It accepts "all", "none" or a
// comma separated list of category names.
func ParseCategories(s string) (CategoryEnum, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "all":
		return CategoryAll, nil
	case "", "none":
		return CategoryNone, nil
	}

	var c CategoryEnum
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		found := false
		for _, cn := range categoryNames {
			if cn.name == part {
				c |= cn.flag
				found = true
				break
			}
		}

		if !found {
			return CategoryNone, fmt.Errorf("unknown category %q%s", part, match.Hint(part, categoryList()))
		}
	}

	return c, nil
}

func categoryList() []string {
	names := make([]string, 0, len(categoryNames))
	for _, cn := range categoryNames {
		names = append(names, cn.name)
	}

	return names
}
