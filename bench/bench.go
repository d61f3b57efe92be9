// Package bench builds random point and box workloads for timing the
// kdtree core, factored out of the tree's own test file so cmd/kdtreebench
// can drive the same workloads interactively.
package bench

import (
	"math/rand"
	"time"

	"github.com/dkern/kdtree"
)

// Point is a benchmark element carrying a 2D point key.
type Point struct {
	ID int
	At kdtree.Vector
}

// PointKey projects a Point to its kdtree.Key.
func PointKey(p Point) kdtree.Key { return kdtree.PointKey(p.At) }

// Rect is a benchmark element carrying an axis-aligned box key.
type Rect struct {
	ID int
	In kdtree.Box
}

// RectKey projects a Rect to its kdtree.Key.
func RectKey(r Rect) kdtree.Key { return kdtree.BoxKey(r.In) }

// RandomPoints generates n points uniformly distributed over [0, extent)^2.
func RandomPoints(n int, extent float64, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{ID: i, At: kdtree.Vector{
			X: rng.Float64() * extent,
			Y: rng.Float64() * extent,
		}}
	}
	return points
}

// RandomRects generates n boxes uniformly distributed over [0, extent)^2,
// each with a side length up to maxSize.
func RandomRects(n int, extent, maxSize float64, seed int64) []Rect {
	rng := rand.New(rand.NewSource(seed))
	rects := make([]Rect, n)
	for i := range rects {
		lo := kdtree.Vector{X: rng.Float64() * extent, Y: rng.Float64() * extent}
		size := kdtree.Vector{X: rng.Float64() * maxSize, Y: rng.Float64() * maxSize}
		rects[i] = Rect{ID: i, In: kdtree.Box{Min: lo, Max: kdtree.AddVectors(lo, size)}}
	}
	return rects
}

// Timed runs fn and returns how long it took. Usable outside of `go test`,
// unlike a testing.B-based benchmark.
func Timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
