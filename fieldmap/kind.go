package fieldmap

//go:generate go tool stringer -type=DispatcherEnum -linecomment -output=kind_string.go

// DispatcherEnum is the category a field value is dispatched to.
type DispatcherEnum int

const (
	DispatcherUnknown   DispatcherEnum = iota // unknown
	DispatcherNil                             // nil
	DispatcherScalar                          // scalar
	DispatcherBuiltin                         // builtin
	DispatcherArray                           // array
	DispatcherPointer                         // pointer
	DispatcherComposite                       // composite
)
