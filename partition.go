package kdtree

// swapElements swaps the element/key pair at i and j, keeping Tree.elements
// and Tree.keys permuted in lockstep.
func swapElements[T any](elements []T, keys []Key, i, j int) {
	elements[i], elements[j] = elements[j], elements[i]
	keys[i], keys[j] = keys[j], keys[i]
}

// partitionPoints performs an in-place two-way partition of elements[begin:end]
// (and the parallel keys slice) on the given axis: elements with key[axis] <
// split end up in [begin, result), everything else in [result, end). Uses a
// converging two-cursor scan driven by a fixed split value rather than a
// pivot element.
//
// A key exactly equal to split is not "less than" and so lands on the high
// side.
func partitionPoints[T any](elements []T, keys []Key, begin, end, axis int, split float64) int {
	low, high := begin, end-1
	for low <= high {
		for low <= high && keys[low].LowBound(axis) < split {
			low++
		}
		for low <= high && !(keys[high].LowBound(axis) < split) {
			high--
		}
		if low < high {
			swapElements(elements, keys, low, high)
			low++
			high--
		}
	}
	return low
}

// partitionBoxes performs an in-place three-way partition of elements[begin:end]
// on the given axis, classifying each key as:
//
//	Low:    key.HighBound(axis) < split  -- strictly below the plane
//	High:   key.LowBound(axis) >= split  -- entirely on or above the plane
//	Middle: otherwise                    -- straddles the plane
//
// It returns (lowEnd, highStart) such that [begin, lowEnd) is the Low run,
// [lowEnd, highStart) is the Middle run, and [highStart, end) is the High
// run. This is the classic single-pass Dutch-national-flag three-way
// partition: a scanning cursor classifies each element in turn, swapping
// Low elements down to the front and High elements up to the back, and
// only advances past an element once it's known not to need a further
// swap (for a High classification, the newly-swapped-in element at the
// scan cursor is re-examined rather than skipped). Middle elements are
// left where the scan finds them, so callers must not rely on any
// particular order among them.
func partitionBoxes[T any](elements []T, keys []Key, begin, end, axis int, split float64) (lowEnd, highStart int) {
	lowEnd = begin
	highEnd := end
	cur := begin
	for cur < highEnd {
		switch {
		case keys[cur].HighBound(axis) < split:
			swapElements(elements, keys, cur, lowEnd)
			lowEnd++
			cur++
		case keys[cur].LowBound(axis) >= split:
			highEnd--
			swapElements(elements, keys, cur, highEnd)
		default:
			cur++
		}
	}
	return lowEnd, highEnd
}
