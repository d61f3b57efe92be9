package kdtree

import (
	"math"
	"sort"
)

// RangeIterator walks a Tree, yielding elements whose key overlaps a query
// box. It is single-pass, read-only, and safe to use alongside other
// iterators over the same tree; abandoning one early (simply not calling
// Next again) releases no resources, since it holds only indices into the
// tree's own arena.
type RangeIterator[T any] struct {
	tree  *Tree[T]
	query Box

	nodeIdx   int
	elemIdx   int
	goingDown bool
	done      bool
}

// RangeQuery returns an iterator over every element whose key overlaps
// query. The order elements are produced in is unspecified but
// deterministic for a given built tree.
func (t *Tree[T]) RangeQuery(query Box) (*RangeIterator[T], error) {
	if query.Max.X < query.Min.X || query.Max.Y < query.Min.Y {
		return nil, invalidArgumentf("malformed query box: max < min")
	}

	it := &RangeIterator[T]{tree: t, query: query}
	if len(t.nodes) == 0 || !t.nodes[0].box.OverlapsBox(query) {
		it.done = true
		return it, nil
	}
	it.nodeIdx = 0
	it.elemIdx = t.nodes[0].elementsBegin
	it.goingDown = true
	return it, nil
}

// Next produces the next matching element, reporting false once the
// iterator is exhausted. It never panics on an already-exhausted iterator.
func (it *RangeIterator[T]) Next() (elem T, index int, ok bool) {
	if it.done {
		return elem, -1, false
	}
	t := it.tree
	for {
		n := t.nodes[it.nodeIdx]
		for it.elemIdx < n.elementsEnd {
			i := it.elemIdx
			it.elemIdx++
			if keyBounds(t.keys[i]).OverlapsBox(it.query) {
				return t.elements[i], i, true
			}
		}
		if !it.advance() {
			it.done = true
			return elem, -1, false
		}
	}
}

// advance implements steps 2-4 of the range query iterator's state
// machine: descend into the first overlapping child, else move sideways
// to the next overlapping sibling, else ascend and retry from the parent.
func (it *RangeIterator[T]) advance() bool {
	t := it.tree
	for {
		if it.goingDown {
			if child, ok := t.firstChildOverlap(it.nodeIdx, it.query); ok {
				it.nodeIdx = child
				it.elemIdx = t.nodes[child].elementsBegin
				it.goingDown = true
				return true
			}
		}
		if sib, ok := t.nextSiblingOverlap(it.nodeIdx, it.query); ok {
			it.nodeIdx = sib
			it.elemIdx = t.nodes[sib].elementsBegin
			it.goingDown = true
			return true
		}
		parent := t.nodes[it.nodeIdx].parent
		if parent == noIndex {
			return false
		}
		it.nodeIdx = parent
		it.goingDown = false
	}
}

// firstChildOverlap returns the first of low/middle/high (in that order,
// skipping absent children) whose box overlaps q.
func (t *Tree[T]) firstChildOverlap(nodeIdx int, q Box) (int, bool) {
	n := t.nodes[nodeIdx]
	for _, c := range [3]int{n.lowChild, n.middleChild, n.highChild} {
		if c != noIndex && t.nodes[c].box.OverlapsBox(q) {
			return c, true
		}
	}
	return noIndex, false
}

// nextSiblingOverlap returns the first sibling after current under the
// same parent (in low/middle/high order) whose box overlaps q.
func (t *Tree[T]) nextSiblingOverlap(current int, q Box) (int, bool) {
	parent := t.nodes[current].parent
	if parent == noIndex {
		return noIndex, false
	}
	p := t.nodes[parent]
	order := [3]int{p.lowChild, p.middleChild, p.highChild}
	pos := -1
	for i, c := range order {
		if c == current {
			pos = i
			break
		}
	}
	for i := pos + 1; i < len(order); i++ {
		c := order[i]
		if c != noIndex && t.nodes[c].box.OverlapsBox(q) {
			return c, true
		}
	}
	return noIndex, false
}

// NearestResult is one entry of a NearestQuery result: the index of the
// matching element (into Tree.Elements()) and its squared distance from
// the query point.
type NearestResult struct {
	ElementIndex    int
	SquaredDistance float64
}

// NearestQuery returns up to k elements closest to target, ascending by
// squared distance. If maxDistance > 0, only elements within maxDistance
// are considered. At least one of k > 0 or maxDistance > 0 must hold.
func (t *Tree[T]) NearestQuery(target Vector, k int, maxDistance float64) ([]NearestResult, error) {
	if k < 0 {
		return nil, invalidArgumentf("k must not be negative, got %d", k)
	}
	if k == 0 && maxDistance <= 0 {
		return nil, invalidQueryBoundsf("nearest query requires k > 0 or maxDistance > 0")
	}
	if len(t.nodes) == 0 {
		return nil, nil
	}

	maxSq := math.Inf(1)
	if maxDistance > 0 {
		maxSq = maxDistance * maxDistance
	}
	acc := &nearestAccumulator{k: k, maxSq: maxSq}
	t.nearestVisit(0, target, acc)
	return acc.results, nil
}

// nearestVisit is the best-first nearest-neighbor traversal: consider every
// element held directly at this node, then walk its children in
// nearest-first order via firstChildNear/nextSiblingNear, re-checking the
// current worst-accepted distance before each sibling so pruning tightens
// as results fill in.
func (t *Tree[T]) nearestVisit(nodeIdx int, target Vector, acc *nearestAccumulator) {
	n := t.nodes[nodeIdx]
	for i := n.elementsBegin; i < n.elementsEnd; i++ {
		acc.consider(i, keyDistanceSquared(t.keys[i], target))
	}
	if n.isLeaf() {
		return
	}

	child, ok := t.firstChildNear(nodeIdx, target, acc.worstSq())
	for ok {
		t.nearestVisit(child, target, acc)
		child, ok = t.nextSiblingNear(nodeIdx, child, target, acc.worstSq())
	}
}

// nearOrder returns a node's children in nearest-search visitation order:
// the middle bucket first (box keys only -- it has no pruning geometry,
// since its keys straddle the split plane), then the side of the split
// plane target falls on, then the far side.
func (t *Tree[T]) nearOrder(nodeIdx int, target Vector) [3]int {
	n := t.nodes[nodeIdx]
	near, far := n.lowChild, n.highChild
	if target.Axis(n.splitAxis) >= n.splitPosition {
		near, far = n.highChild, n.lowChild
	}
	return [3]int{n.middleChild, near, far}
}

// firstChildNear returns the first child worth visiting, mirroring
// firstChildOverlap. If neither the middle bucket nor the near side
// exists, it falls through to the far side, but only when the far side
// isn't already prunable by worstSq.
func (t *Tree[T]) firstChildNear(nodeIdx int, target Vector, worstSq float64) (int, bool) {
	n := t.nodes[nodeIdx]
	order := t.nearOrder(nodeIdx, target)
	if order[0] != noIndex {
		return order[0], true
	}
	if order[1] != noIndex {
		return order[1], true
	}
	if order[2] != noIndex {
		d := n.splitPosition - target.Axis(n.splitAxis)
		if d*d < worstSq {
			return order[2], true
		}
	}
	return noIndex, false
}

// nextSiblingNear returns the next child after current worth visiting.
// The far side (the last slot in nearOrder) is only visited if its
// distance to the split plane is still less than worstSq; middle and near
// are never pruned this way.
func (t *Tree[T]) nextSiblingNear(nodeIdx, current int, target Vector, worstSq float64) (int, bool) {
	n := t.nodes[nodeIdx]
	order := t.nearOrder(nodeIdx, target)
	pos := -1
	for i, c := range order {
		if c == current {
			pos = i
			break
		}
	}
	for i := pos + 1; i < len(order); i++ {
		c := order[i]
		if c == noIndex {
			continue
		}
		if i == 2 {
			d := n.splitPosition - target.Axis(n.splitAxis)
			if d*d >= worstSq {
				continue
			}
		}
		return c, true
	}
	return noIndex, false
}

// keyDistanceSquared returns the squared distance from target to key: for
// a point key this is point-to-point distance; for a box key it is the
// distance to the box's closest point, which is zero when target lies
// inside it.
func keyDistanceSquared(k Key, target Vector) float64 {
	box := keyBounds(k)
	return DistanceSquared(target, box.ClosestPoint(target))
}

// nearestAccumulator maintains an ascending, k-bounded result list: entries
// are inserted in sorted order via a binary search, and the list is
// trimmed back to k whenever it grows past that. sort.Search returns the
// leftmost insertion point, so an element tied with entries already in the
// list is placed in front of them; once the list is full, a newly
// considered element at the current worst distance displaces the earlier
// one at the back.
type nearestAccumulator struct {
	k       int
	maxSq   float64
	results []NearestResult
}

func (a *nearestAccumulator) worstSq() float64 {
	if a.k > 0 && len(a.results) == a.k {
		return a.results[len(a.results)-1].SquaredDistance
	}
	return a.maxSq
}

func (a *nearestAccumulator) consider(index int, distSq float64) {
	if distSq > a.worstSq() {
		return
	}
	pos := sort.Search(len(a.results), func(i int) bool {
		return a.results[i].SquaredDistance >= distSq
	})
	a.results = append(a.results, NearestResult{})
	copy(a.results[pos+1:], a.results[pos:])
	a.results[pos] = NearestResult{ElementIndex: index, SquaredDistance: distSq}
	if a.k > 0 && len(a.results) > a.k {
		a.results = a.results[:a.k]
	}
}
