package kdtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionPoints_BruteForce(t *testing.T) {
	for tc := 0; tc < 200; tc++ {
		n := 1 + rand.Intn(200)
		elements := make([]int, n)
		keys := make([]Key, n)
		for i := range elements {
			elements[i] = i
			keys[i] = PointKey{X: rand.Float64() * 100, Y: 0}
		}
		split := rand.Float64() * 100

		mid := partitionPoints(elements, keys, 0, n, 0, split)

		for i := 0; i < mid; i++ {
			assert.Lessf(t, keys[i].LowBound(0), split, "low run element %d not below split", i)
		}
		for i := mid; i < n; i++ {
			assert.GreaterOrEqualf(t, keys[i].LowBound(0), split, "high run element %d not at/above split", i)
		}
		assert.ElementsMatch(t, originalIndices(n), elements, "partition must not lose or duplicate elements")
	}
}

func TestPartitionBoxes_BruteForce(t *testing.T) {
	for tc := 0; tc < 200; tc++ {
		n := 1 + rand.Intn(200)
		elements := make([]int, n)
		keys := make([]Key, n)
		for i := range elements {
			elements[i] = i
			lo := rand.Float64() * 100
			hi := lo + rand.Float64()*5
			keys[i] = BoxKey{Min: Vector{lo, 0}, Max: Vector{hi, 0}}
		}
		split := rand.Float64() * 100

		lowEnd, highStart := partitionBoxes(elements, keys, 0, n, 0, split)

		for i := 0; i < lowEnd; i++ {
			assert.Lessf(t, keys[i].HighBound(0), split, "low run element %d not entirely below split", i)
		}
		for i := lowEnd; i < highStart; i++ {
			k := keys[i]
			assert.True(t, k.LowBound(0) < split && split < k.HighBound(0), "middle run element %d doesn't straddle split", i)
		}
		for i := highStart; i < n; i++ {
			assert.GreaterOrEqualf(t, keys[i].LowBound(0), split, "high run element %d not entirely at/above split", i)
		}
		assert.ElementsMatch(t, originalIndices(n), elements, "partition must not lose or duplicate elements")
	}
}

func originalIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
