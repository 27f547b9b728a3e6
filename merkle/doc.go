// Package merkle implements a compression-based Merkle commitment engine:
// domain-separated leaf hashing, root reconstruction from an authentication
// path, and batched updates of a contiguous leaf range.
//
// The engine is generic over the field element type E and is parameterized by
// two capabilities: a Field (zero value, equality, canonical little-endian
// bit serialization) and a Compressor (a deterministic, domain-separated,
// collision-resistant hash over bit strings). See hash/bls381 for a concrete
// binding.
//
// Tree height is never stored; it is implied per call by the lengths of the
// supplied path and defaults. All operations are pure functions and safe for
// concurrent use, provided the capabilities are stateless.
package merkle
