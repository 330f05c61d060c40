// Package caller resolves which function invoked a given API frame.
//
// Two strategies read the calling goroutine's stack:
//   - "runtime" asks runtime.Callers for a single program counter at a given
//     skip; it is cheap and is preferred.
//   - "stack" formats the whole goroutine trace with runtime.Stack and
//     indexes the parsed frames; it is slower and serves as the fallback.
//
// The strategies count frames differently, so each one is calibrated once:
// the calibrator tries increasing skips until the strategy reports the
// calibrator itself, and the offset is published for the life of the
// process.
//
// Depth 0 always means the caller of the function that invoked the exported
// entry point:
//
//	func helper() {
//		name := caller.Name() // the function that called helper
//	}
//
// Resolution never crosses goroutine boundaries.
package caller
