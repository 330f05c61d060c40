// Package arrays validates and converts array-shaped values.
//
// Arrays and slices are both array-shaped. ToSequence boxes every element
// into an []any, converting nested arrays and slices recursively, so a
// [][]int becomes an []any of []any.
package arrays
