package kdtree

// Key is the spatial key algebra the tree depends on. Everything the tree
// and its query iterators know about geometry flows through these three
// methods, so a caller may implement Key directly instead of using
// PointKey/BoxKey if their own point/box types already carry the right
// semantics.
type Key interface {
	// LowBound returns the key's lower bound along axis. For a point this
	// is the same as HighBound; for a box it is the min corner's coordinate.
	LowBound(axis int) float64
	// HighBound returns the key's upper bound along axis.
	HighBound(axis int) float64
	// IsBox reports whether this key represents a box rather than a point.
	IsBox() bool
}

// PointKey is a Key implementation wrapping a single point.
type PointKey Vector

// LowBound implements Key.
func (p PointKey) LowBound(axis int) float64 { return Vector(p).Axis(axis) }

// HighBound implements Key.
func (p PointKey) HighBound(axis int) float64 { return Vector(p).Axis(axis) }

// IsBox implements Key.
func (p PointKey) IsBox() bool { return false }

// BoxKey is a Key implementation wrapping an axis-aligned bounding box.
type BoxKey Box

// LowBound implements Key.
func (b BoxKey) LowBound(axis int) float64 { return Box(b).Min.Axis(axis) }

// HighBound implements Key.
func (b BoxKey) HighBound(axis int) float64 { return Box(b).Max.Axis(axis) }

// IsBox implements Key.
func (b BoxKey) IsBox() bool { return true }

// KeyFunc projects an element to its spatial key.
type KeyFunc[T any] func(elem T) Key

// keyBounds returns the tight bounding box of a key, degenerating to a
// single point for PointKey. Every place the tree needs a box for a key
// (node box unions, overlap tests, nearest-point clamping) goes through
// this so it works uniformly for any Key implementation, not just
// PointKey/BoxKey.
func keyBounds(k Key) Box {
	return Box{
		Min: Vector{X: k.LowBound(0), Y: k.LowBound(1)},
		Max: Vector{X: k.HighBound(0), Y: k.HighBound(1)},
	}
}
