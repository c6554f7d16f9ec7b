package internal

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(slices.All([]string{"a", "b"}), slices.All([]string{"c"}))

	var keys []int
	var vals []string
	for key, val := range seq {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, vals)

	for key := range seq {
		assert.Equal(0, key)
		break
	}

	empty := IterSeq2Concat[string, int]()
	assert.Empty(maps.Collect(empty))
}

func TestIterSeq2Map(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Map(slices.All([]int{10, 20}), func(idx int, val int) (string, int) {
		return fmt.Sprintf("r%d", idx), val * 2
	})
	assert.Equal(map[string]int{"r0": 20, "r1": 40}, maps.Collect(seq))

	var count int
	for range seq {
		count++
		break
	}
	assert.Equal(1, count)
}
