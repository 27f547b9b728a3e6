package merkle

import "errors"

var (
	// ErrIncompleteProof is returned by Root when the leaf or a path entry
	// is missing; the root is not computable from the supplied evidence.
	ErrIncompleteProof = errors.New("merkle: incomplete authentication path")

	// ErrBatchOutOfRange is returned by UpdateRoot when the updated range
	// exceeds the addressable capacity of the tree.
	ErrBatchOutOfRange = errors.New("merkle: batch exceeds tree capacity")

	// ErrEmptyBatch is returned by UpdateRoot when no leaves are supplied.
	ErrEmptyBatch = errors.New("merkle: empty leaf batch")

	// ErrDefaultsMismatch is returned by UpdateRoot when the defaults table
	// is shorter than the tree height implied by the path.
	ErrDefaultsMismatch = errors.New("merkle: defaults table shorter than tree height")

	// ErrTreeTooTall is returned when the implied height exceeds MaxTreeHeight.
	ErrTreeTooTall = errors.New("merkle: tree height exceeds supported maximum")
)
