package kdtree

// noIndex marks an absent parent/child/element index, standing in for a
// nil pointer in a pointer-free node representation.
const noIndex = -1

// node is a single arena entry. Nodes are addressed by their index into
// Tree.nodes rather than owned by pointer, so children are always appended
// after their parent and the arena itself is a flat, contiguous,
// trivially-copyable slice.
type node struct {
	parent int

	lowChild    int
	highChild   int
	middleChild int // only ever set for box-keyed trees

	// elementsBegin/elementsEnd is the half-open range into Tree.elements
	// held directly at this node. Both are noIndex when the node has split
	// further along this axis and holds no elements of its own (except the
	// small-middle-bucket case, where an internal box node keeps its
	// straddling elements inline instead of spawning a middle child).
	elementsBegin int
	elementsEnd   int

	box Box

	// splitAxis is noIndex for a leaf, otherwise the axis this node split on.
	splitAxis     int
	splitPosition float64

	// lockedAxesMask bars an axis from being chosen as this subtree's split
	// axis again. Only meaningful for box keys; set on a middle child to the
	// axis that produced it, union'd with whatever was already locked above.
	lockedAxesMask uint8
}

func leafNode(parent, begin, end int, box Box, locked uint8) node {
	return node{
		parent:         parent,
		lowChild:       noIndex,
		highChild:      noIndex,
		middleChild:    noIndex,
		elementsBegin:  begin,
		elementsEnd:    end,
		box:            box,
		splitAxis:      noIndex,
		lockedAxesMask: locked,
	}
}

func (n *node) isLeaf() bool {
	return n.splitAxis == noIndex
}
