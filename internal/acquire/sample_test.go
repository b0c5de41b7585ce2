// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8}

	got := Sample(ids, 5, nil)
	assert.Len(t, got, 5)

	seen := map[int]bool{}
	for _, id := range got {
		assert.Contains(t, ids, id)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids, "input must not be modified")
}

func TestSampleLargerThanInput(t *testing.T) {
	got := Sample([]int{3, 1, 2}, 20, nil)
	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSampleEdgeCases(t *testing.T) {
	assert.Nil(t, Sample(nil, 3, nil))
	assert.Nil(t, Sample([]int{1, 2}, 0, nil))
	assert.Nil(t, Sample([]int{1, 2}, -1, nil))
}

func TestSampleUsesShuffle(t *testing.T) {
	reverse := func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}
	assert.Equal(t, []int{4, 3}, Sample([]int{1, 2, 3, 4}, 2, reverse))
}

func TestSampleIsUniform(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	ids := []int{10, 20, 30, 40}
	counts := map[int]int{}

	const trials = 8000
	for i := 0; i < trials; i++ {
		got := Sample(ids, 1, r.Shuffle)
		counts[got[0]]++
	}

	expected := trials / len(ids)
	for _, id := range ids {
		assert.InDelta(t, expected, counts[id], float64(expected)*0.1, "id %d drawn %d times", id, counts[id])
	}
}
