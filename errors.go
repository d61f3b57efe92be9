package kdtree

import "github.com/pkg/errors"

// Error taxonomy. Callers match these with errors.Is; github.com/pkg/errors
// is used to attach context while keeping the sentinel matchable.
var (
	// ErrInvalidQueryBounds is returned by NearestQuery when neither a
	// positive k nor a positive max distance was given.
	ErrInvalidQueryBounds = errors.New("kdtree: invalid query bounds")

	// ErrInvalidArgument is returned for malformed query boxes, negative
	// counts, and a non-positive max-elements-per-node.
	ErrInvalidArgument = errors.New("kdtree: invalid argument")

	// ErrAllocationFailed is returned when the node arena could not be
	// reserved during New.
	ErrAllocationFailed = errors.New("kdtree: allocation failed")
)

func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func invalidQueryBoundsf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidQueryBounds, format, args...)
}

func allocationFailedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrAllocationFailed, format, args...)
}
