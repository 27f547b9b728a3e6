package merkle

import "github.com/bits-and-blooms/bitset"

// Field describes what the engine needs from a field element type: a zero
// value, equality, and the canonical fixed-width little-endian bit
// serialization used as compression input.
type Field[E any] interface {
	// Zero returns the additive identity, which doubles as the empty-leaf
	// value.
	Zero() E

	// Equal reports whether two elements are the same field value.
	Equal(a, b E) bool

	// NumBits is the canonical bit width of a serialized element.
	NumBits() int

	// BitsLEFixed expands e to exactly n bits, least significant first,
	// zero-extending short values. When n is smaller than the natural bit
	// length of e, high bits are silently truncated.
	BitsLEFixed(e E, n int) *bitset.BitSet
}

// Compressor is the external collision-resistant two-input hash primitive:
// deterministic, and separated by the personalization so that outputs from
// distinct contexts never collide by construction.
type Compressor[E any] interface {
	Compress(p Personalization, bits *bitset.BitSet) E
}

// Hasher derives leaf commitments and internal node hashes for one field and
// compression primitive. It is stateless; a single value may be shared across
// goroutines.
type Hasher[E any] struct {
	f Field[E]
	c Compressor[E]
}

// New builds a Hasher from a field capability and a compression primitive.
func New[E any](f Field[E], c Compressor[E]) *Hasher[E] {
	return &Hasher[E]{f: f, c: c}
}

// HashBits commits to an arbitrary finite bit sequence under the leaf
// personalization.
func (h *Hasher[E]) HashBits(bits *bitset.BitSet) E {
	return h.c.Compress(LeafCommitment(), bits)
}

// Hash returns the canonical leaf commitment of a field element: its
// fixed-width little-endian bits hashed under the leaf personalization.
func (h *Hasher[E]) Hash(v E) E {
	return h.HashBits(h.f.BitsLEFixed(v, h.f.NumBits()))
}

// Compress hashes two child nodes into their parent at the given tree level,
// left bits first. It is the single building block for every internal node.
func (h *Hasher[E]) Compress(left, right E, level int) E {
	n := h.f.NumBits()
	bits := bitset.New(uint(2 * n))
	appendBits(bits, h.f.BitsLEFixed(left, n), 0)
	appendBits(bits, h.f.BitsLEFixed(right, n), uint(n))
	return h.c.Compress(TreeLevel(level), bits)
}

func appendBits(dst, src *bitset.BitSet, at uint) {
	for i, ok := src.NextSet(0); ok; i, ok = src.NextSet(i + 1) {
		dst.Set(at + i)
	}
}
