package kdtree

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestBoxOverlapsBox_SharedEdgeCounts(t *testing.T) {
	a := Box{Min: Vector{0, 0}, Max: Vector{1, 1}}
	b := Box{Min: Vector{1, 0}, Max: Vector{2, 1}}
	assert.True(t, a.OverlapsBox(b))
	assert.True(t, b.OverlapsBox(a))
}

func TestBoxOverlapsBox_Disjoint(t *testing.T) {
	a := Box{Min: Vector{0, 0}, Max: Vector{1, 1}}
	b := Box{Min: Vector{1.1, 0}, Max: Vector{2, 1}}
	assert.False(t, a.OverlapsBox(b))
}

func TestBoxClosestPoint(t *testing.T) {
	b := Box{Min: Vector{0, 0}, Max: Vector{10, 10}}
	assert.Equal(t, Vector{5, 5}, b.ClosestPoint(Vector{5, 5}))
	assert.Equal(t, Vector{0, 0}, b.ClosestPoint(Vector{-3, -7}))
	assert.Equal(t, Vector{10, 10}, b.ClosestPoint(Vector{20, 30}))
	assert.Equal(t, Vector{10, 5}, b.ClosestPoint(Vector{20, 5}))
}

func TestMergeBoxes_EmptyIsIdentity(t *testing.T) {
	b := Box{Min: Vector{1, 1}, Max: Vector{2, 2}}
	assert.True(t, MergeBoxes(EmptyBox, b).Equal(b))
	assert.True(t, MergeBoxes(b, EmptyBox).Equal(b))
}

func TestEmptyBox_AllEqual(t *testing.T) {
	assert.True(t, EmptyBox.Equal(Box{Min: Vector{math.NaN(), math.NaN()}, Max: Vector{1, 2}}))
}

func TestIntersectBoxes(t *testing.T) {
	a := Box{Min: Vector{0, 0}, Max: Vector{5, 5}}
	b := Box{Min: Vector{3, 3}, Max: Vector{8, 8}}
	got := IntersectBoxes(a, b)
	assert.Equal(t, Box{Min: Vector{3, 3}, Max: Vector{5, 5}}, got)

	c := Box{Min: Vector{6, 6}, Max: Vector{8, 8}}
	assert.True(t, IntersectBoxes(a, c).IsEmpty())
}

func TestDistanceSquared_QuickCheck(t *testing.T) {
	f := func(ax, ay, bx, by float64) bool {
		a := Vector{ax, ay}
		b := Vector{bx, by}
		want := (ax-bx)*(ax-bx) + (ay-by)*(ay-by)
		got := DistanceSquared(a, b)
		if math.IsNaN(want) || math.IsInf(want, 0) {
			return true // skip degenerate float inputs
		}
		return math.Abs(got-want) < 1e-6*math.Max(1, math.Abs(want))
	}
	assert.NoError(t, quick.Check(f, nil))
}
