// Package match finds the closest known name to a misspelled one, for
// "did you mean" hints in error messages.
//
// Names are compared after normalization (case and separators are ignored)
// by normalized Levenshtein similarity.
package match
