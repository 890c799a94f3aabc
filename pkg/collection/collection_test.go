package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestFilter(t *testing.T) {
	odd := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3}, odd)
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, ok)
	assert.Equal(t, "bb", v)

	_, ok = First([]string{"a"}, func(s string) bool { return len(s) == 2 })
	assert.False(t, ok)
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy([]int{1, 2, 3, 4, 5}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assert.Equal(t, []int{2, 4}, groups["even"])
	assert.Equal(t, []int{1, 3, 5}, groups["odd"])
}

func TestSortByDoesNotMutate(t *testing.T) {
	in := []string{"b", "c", "a"}
	out := SortBy(in, func(s string) string { return s })
	assert.Equal(t, []string{"a", "b", "c"}, out)
	assert.Equal(t, []string{"b", "c", "a"}, in)
}

func TestReduce(t *testing.T) {
	sum := Reduce([]float64{1.5, 2.5}, 0.0, func(acc, v float64) float64 { return acc + v })
	assert.Equal(t, 4.0, sum)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]uint{1, 2, 3}, uint(2)))
	assert.False(t, Contains([]uint{1, 2, 3}, uint(9)))
}
