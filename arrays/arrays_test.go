package arrays_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectkit/introspector/arrays"
)

func TestAssertType(t *testing.T) {
	require.NoError(t, arrays.AssertType([]int{1}))
	require.NoError(t, arrays.AssertType([3]string{}))
	require.NoError(t, arrays.AssertType([]byte(nil)))

	err := arrays.AssertType(42)
	require.ErrorIs(t, err, arrays.ErrNotArray)
	assert.Contains(t, err.Error(), "its type is int")

	assert.ErrorIs(t, arrays.AssertType("abc"), arrays.ErrNotArray)
	assert.ErrorIs(t, arrays.AssertType(&[]int{1}), arrays.ErrNotArray)
	assert.ErrorIs(t, arrays.AssertType(nil), arrays.ErrNilValue)
}

func TestAssertIndex(t *testing.T) {
	arr := []string{"a", "b", "c"}

	for i := range arr {
		assert.NoError(t, arrays.AssertIndex(arr, i), "index %d", i)
	}

	for _, i := range []int{-1, -100, 3, 4} {
		assert.ErrorIs(t, arrays.AssertIndex(arr, i), arrays.ErrOutOfBounds, "index %d", i)
	}

	assert.ErrorIs(t, arrays.AssertIndex([0]int{}, 0), arrays.ErrOutOfBounds)
	assert.ErrorIs(t, arrays.AssertIndex(map[int]int{0: 1}, 0), arrays.ErrNotArray)
	assert.ErrorIs(t, arrays.AssertIndex(7, -1), arrays.ErrOutOfBounds, "negative index is checked first")
}

func TestToSequence_OneDimensional(t *testing.T) {
	seq := arrays.ToSequence([]int{3, 1, 2})
	assert.Equal(t, []any{3, 1, 2}, seq)

	seq = arrays.ToSequence([2]bool{true, false})
	assert.Equal(t, []any{true, false}, seq)

	assert.Equal(t, []any{}, arrays.ToSequence([]int(nil)))
}

func TestToSequence_Nested(t *testing.T) {
	grid := [][]int{{1, 2}, {3}, nil}

	seq := arrays.ToSequence(grid)
	require.Len(t, seq, 3)
	assert.Equal(t, []any{1, 2}, seq[0])
	assert.Equal(t, []any{3}, seq[1])
	assert.Nil(t, seq[2])

	mixed := []any{"x", []string{"y"}, [1][1]int{{9}}, nil}
	assert.Equal(t, []any{"x", []any{"y"}, []any{[]any{9}}, nil}, arrays.ToSequence(mixed))
}

func TestToSequence_PanicsOnNonArray(t *testing.T) {
	assert.Panics(t, func() { arrays.ToSequence(12) })
}

func ExampleToSequence() {
	fmt.Println(arrays.ToSequence([][]string{{"a", "b"}, {"c"}}))
	// Output:
	// [[a b] [c]]
}
