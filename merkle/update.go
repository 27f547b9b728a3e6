package merkle

// UpdateRoot recomputes the root after overwriting a contiguous run of leaves
// starting at index, at a cost of O(height + len(leaves)) compressions: only
// the ancestors adjacent to the updated range are rebuilt. path carries the
// height-1 sibling hashes ordered leaf to root, without position bits —
// positions derive from index. defaults[i] must hold the hash of a fully
// empty subtree of height i (see EmptySubtreeDefaults); leaves to the right
// of the batch inside recomputed subtrees are taken to be empty.
//
// The computation is deterministic; every returned error is a caller error
// and not retriable.
func (h *Hasher[E]) UpdateRoot(path []E, index uint64, leaves []E, defaults []E) (E, error) {
	var zero E
	height := len(path) + 1
	if height > MaxTreeHeight {
		return zero, ErrTreeTooTall
	}
	if len(leaves) == 0 {
		return zero, ErrEmptyBatch
	}
	if len(defaults) < height {
		return zero, ErrDefaultsMismatch
	}
	capacity := uint64(1) << uint(height-1)
	if s := uint64(len(leaves)); s > capacity || index > capacity-s {
		return zero, ErrBatchOutOfRange
	}

	// Sliding working frame, starting at the leaf level. Each level gets its
	// own buffer so no slot ever aliases a value scoped to one iteration.
	// The extra slot holds the default paired with a trailing lone node.
	offset := int(index & 1)
	size := offset + len(leaves)
	frame := make([]E, size+1)
	copy(frame[offset:], leaves)
	frame[size] = defaults[0]
	if offset > 0 {
		frame[0] = path[0]
	}

	for i := 1; i < height; i++ {
		offset = int((index >> uint(i)) & 1)
		pairs := (size + 1) / 2
		next := make([]E, offset+pairs+1)
		for j := 0; j < pairs; j++ {
			// frame holds nodes of height i-1, so the pairing compresses
			// at tree level i-1.
			next[offset+j] = h.Compress(frame[2*j], frame[2*j+1], i-1)
		}
		size = offset + pairs
		if size&1 == 1 {
			next[size] = defaults[i]
		}
		if offset > 0 {
			next[0] = path[i]
		}
		frame = next
	}

	return frame[0], nil
}
