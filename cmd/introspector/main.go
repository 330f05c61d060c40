// Package main provides the CLI entrypoint for introspector.
//
// introspector exposes the caller resolution and field map packages:
//   - calibration prints which caller strategies are usable and their offsets
//   - trace prints the callers of the command itself, depth by depth
//   - dump renders the effective configuration as a field map
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
