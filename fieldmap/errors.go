package fieldmap

import "errors"

var (
	// ErrNilValue is returned when the value to read is nil.
	ErrNilValue = errors.New("value is nil")
	// ErrNotStruct is returned when the value to read is not a struct or a
	// pointer to one.
	ErrNotStruct = errors.New("value is not a struct")
	// ErrInaccessible is returned when a field cannot be read, even through
	// its address.
	ErrInaccessible = errors.New("field is not accessible")
	// ErrCycle is returned when a pointer leads back to a value that is
	// still being read.
	ErrCycle = errors.New("reference cycle")
	// ErrMaxDepth is returned when arrays and structs nest deeper than the
	// Reader allows.
	ErrMaxDepth = errors.New("maximum depth exceeded")
	// ErrNoSuchField is returned when a struct declares no field of the
	// given name.
	ErrNoSuchField = errors.New("no such field")
	// ErrTypeMismatch is returned when a field is declared with a type other
	// than the expected one.
	ErrTypeMismatch = errors.New("field type mismatch")
)
