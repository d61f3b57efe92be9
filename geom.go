package kdtree

import "math"

// Dims is the number of axes every Vector and Box in this package carries.
// The tree's build and query algorithms are written in terms of axis
// indices in [0, Dims). Porting to a different dimensionality touches this
// file (Vector/Box's field layout and the per-axis helpers), keyBounds in
// key.go, and the malformed-box check in RangeQuery, all of which name the
// two axes explicitly.
const Dims = 2

// Vector is a point in 2D space, or a displacement between two such points.
type Vector struct {
	X, Y float64
}

// Axis returns the vector's coordinate along the given axis index.
func (v Vector) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic("kdtree: axis index out of range")
	}
}

// AddVectors returns the componentwise sum of a and b.
func AddVectors(a, b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y}
}

// SubVectors returns the componentwise difference a - b.
func SubVectors(a, b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y}
}

// MulScalar returns v scaled componentwise by s.
func (v Vector) MulScalar(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// DivScalar returns v divided componentwise by s.
func (v Vector) DivScalar(s float64) Vector {
	return Vector{v.X / s, v.Y / s}
}

// MinVector returns the componentwise minimum of a and b.
func MinVector(a, b Vector) Vector {
	return Vector{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
}

// MaxVector returns the componentwise maximum of a and b.
func MaxVector(a, b Vector) Vector {
	return Vector{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Vector) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Box is an axis-aligned bounding box, given by its min and max corners.
// The invariant Min[i] <= Max[i] holds for every non-empty box. EmptyBox is
// the sentinel empty box, encoded with NaN in Min, which additionally lets
// Equal treat all empty boxes as interchangeable via a single
// self-inequality check.
type Box struct {
	Min, Max Vector
}

// EmptyBox is the identity element for MergeBoxes: merging it with any box
// yields that box unchanged.
var EmptyBox = Box{
	Min: Vector{X: math.NaN(), Y: math.NaN()},
	Max: Vector{X: math.NaN(), Y: math.NaN()},
}

// IsEmpty reports whether b is the empty box.
func (b Box) IsEmpty() bool {
	return b.Min.X != b.Min.X // NaN != NaN
}

// Equal reports whether a and b describe the same box. All empty boxes
// compare equal to each other.
func (a Box) Equal(b Box) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() == b.IsEmpty()
	}
	return a == b
}

// MergeBoxes returns the smallest box enclosing both a and b. Merging with
// an empty box returns the other box unchanged.
func MergeBoxes(a, b Box) Box {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	return Box{
		Min: MinVector(a.Min, b.Min),
		Max: MaxVector(a.Max, b.Max),
	}
}

// IntersectBoxes returns the componentwise intersection of a and b, or
// EmptyBox if they don't overlap on some axis.
func IntersectBoxes(a, b Box) Box {
	if a.IsEmpty() || b.IsEmpty() {
		return EmptyBox
	}
	min := MaxVector(a.Min, b.Min)
	max := MinVector(a.Max, b.Max)
	if min.X > max.X || min.Y > max.Y {
		return EmptyBox
	}
	return Box{Min: min, Max: max}
}

// ClosestPoint returns the point within b that is closest to p (p itself,
// if it already lies inside b).
func (b Box) ClosestPoint(p Vector) Vector {
	return Vector{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// OverlapsBox reports whether b and o share at least one point, counting a
// shared edge as overlap (closed intervals on both sides).
func (b Box) OverlapsBox(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Max.X >= o.Min.X && b.Min.X <= o.Max.X &&
		b.Max.Y >= o.Min.Y && b.Min.Y <= o.Max.Y
}

// OverlapsPoint reports whether p lies within b, inclusive of the boundary.
func (b Box) OverlapsPoint(p Vector) bool {
	if b.IsEmpty() {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Area returns the box's area, or 0 for an empty box.
func (b Box) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
