// Package fieldmap reads the declared fields of a struct value into an
// ordered FieldMap.
//
// Every field value falls into one closed category (see DispatcherEnum) and is
// transformed accordingly:
//   - nil values stay nil
//   - scalars (booleans, numbers, strings and named types over them) are kept as-is
//   - standard library values such as time.Time or *url.URL are kept as-is, as
//     are maps, channels and functions
//   - arrays and slices become []any sequences, element by element
//   - pointers are followed to their target
//   - any other struct becomes a nested *FieldMap
//
// Unexported fields are read as well. Fields that cannot be read are omitted
// from the result and reported through diagnostic.Diagnostics. Reference
// cycles fail with ErrCycle and graphs nested deeper than the configured
// maximum fail with ErrMaxDepth.
package fieldmap
