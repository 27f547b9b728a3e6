package merkle

// PathNode is one entry of an authentication path: the sibling hash at that
// level and the side it occupies. IsLeft set means the sibling takes the left
// slot and the running hash the right one.
type PathNode[E any] struct {
	Sibling E
	IsLeft  bool
}

// Root folds an authentication path and a leaf commitment into the tree root.
// The path is ordered leaf to root; nil entries mark missing evidence, in
// which case (and when leaf is nil) ErrIncompleteProof is returned instead of
// a root. No independent validation of height or index is performed: the
// caller supplies position bits consistent with the real tree topology. An
// empty path yields the leaf itself.
func (h *Hasher[E]) Root(path []*PathNode[E], leaf *E) (E, error) {
	var zero E
	if leaf == nil {
		return zero, ErrIncompleteProof
	}
	for _, node := range path {
		if node == nil {
			return zero, ErrIncompleteProof
		}
	}

	acc := *leaf
	for i, node := range path {
		if node.IsLeft {
			acc = h.Compress(node.Sibling, acc, i)
		} else {
			acc = h.Compress(acc, node.Sibling, i)
		}
	}
	return acc, nil
}
