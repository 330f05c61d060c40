// Package logging provides a small structured logging abstraction
//
// The caller and fieldmap packages never write to stderr on their own. They
// accept a Logger through their options and default to a no-op logger:
//
//	r := caller.New(caller.WithLogger(logging.NewZerolog(os.Stderr, zerolog.DebugLevel)))
//
// Implement Logger to route messages into an existing logging setup.
package logging
