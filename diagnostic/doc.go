// Package diagnostic collects structured findings produced while walking a
// value graph, so callers can inspect what was skipped instead of relying on
// the log alone.
//
// Key capabilities:
//   - Omitted field warnings with the dotted field path
//   - Severity buckets (errors, warnings, infos)
//   - Lookup by diagnostic code
package diagnostic
