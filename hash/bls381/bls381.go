// Package bls381 binds the merkle engine to BLS12-381: scalars from
// gnark-crypto are the field elements and MiMC over their field is the
// compression primitive.
package bls381

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/mimc"
	"github.com/zwaves/zmerkle/merkle"
)

// chunkBits is the number of input bits packed per absorbed field element;
// anything below fr.Bits keeps every chunk canonical.
const chunkBits = fr.Bits - 1

// Field implements merkle.Field over BLS12-381 scalars.
type Field struct{}

// Zero returns the zero scalar, which is also the empty-leaf value.
func (Field) Zero() fr.Element {
	var z fr.Element
	return z
}

func (Field) Equal(a, b fr.Element) bool {
	return a.Equal(&b)
}

// NumBits is the canonical width of a serialized scalar (fr.Bits).
func (Field) NumBits() int {
	return fr.Bits
}

// BitsLEFixed expands e to exactly n bits, least significant first. Values
// shorter than n are zero-extended; bits past n are silently dropped.
func (Field) BitsLEFixed(e fr.Element, n int) *bitset.BitSet {
	bits := bitset.New(uint(n))
	var v big.Int
	e.BigInt(&v)
	top := v.BitLen()
	if top > n {
		top = n
	}
	for i := 0; i < top; i++ {
		if v.Bit(i) == 1 {
			bits.Set(uint(i))
		}
	}
	return bits
}

// Compressor implements merkle.Compressor with MiMC. The personalization tag,
// the input bit length and the input bits — packed little-endian into
// chunkBits-wide canonical elements — are absorbed as successive blocks.
// A fresh MiMC instance is built per call, so a single Compressor value is
// safe for concurrent use.
type Compressor struct{}

func (Compressor) Compress(p merkle.Personalization, bits *bitset.BitSet) fr.Element {
	h := mimc.NewMiMC()

	writeElement := func(e *fr.Element) {
		b := e.Bytes()
		_, _ = h.Write(b[:]) // canonical blocks never error
	}

	var block fr.Element
	block.SetUint64(p.Tag())
	writeElement(&block)
	block.SetUint64(uint64(bits.Len()))
	writeElement(&block)

	var chunk big.Int
	for base := uint(0); base < bits.Len(); base += chunkBits {
		chunk.SetUint64(0)
		for j := uint(0); j < chunkBits && base+j < bits.Len(); j++ {
			if bits.Test(base + j) {
				chunk.SetBit(&chunk, int(j), 1)
			}
		}
		block.SetBigInt(&chunk)
		writeElement(&block)
	}

	var res fr.Element
	res.SetBytes(h.Sum(nil))
	return res
}

// NewHasher returns the commitment engine bound to BLS12-381 and MiMC.
func NewHasher() *merkle.Hasher[fr.Element] {
	return merkle.New[fr.Element](Field{}, Compressor{})
}
