// Package zmerkle provides the Merkle commitment primitives of the zwaves
// protocol: domain-separated leaf hashing, authentication-path root
// reconstruction and batched range updates over a fixed-height tree of
// prime-field elements.
//
// The engine lives in the merkle package and is generic over the field
// element type; hash/bls381 binds it to BLS12-381 scalars hashed with MiMC
// (github.com/consensys/gnark-crypto). Every exposed operation is a pure
// function: the module holds no tree state, callers supply paths and
// empty-subtree defaults per call.
package zmerkle
