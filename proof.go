// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package smt256

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

// ErrShortProof is returned by Proof.UnmarshalBinary when the input is
// too short to contain even the 32-byte bitmap and hash count, or when
// the bytes after them are not exactly count 32-byte hashes.
var ErrShortProof = errors.New("smt256: proof too short")

// ErrProofLengthMismatch is returned by Proof.UnmarshalBinary when the
// encoded hash count doesn't match popcount(bitmap), violating P1.
var ErrProofLengthMismatch = errors.New("smt256: proof hash count does not match bitmap popcount")

// Proof is a compact Merkle inclusion proof for a single key: a 256-bit
// bitmap with one bit per tree level, and the list of non-default
// sibling hashes it flags, ordered from the leaf level upward.
//
// Invariant P1: popcount(bitmap) == len(hashes). Every Proof produced by
// Tree.GetWithProof satisfies this by construction; Verify rejects any
// proof that doesn't (see the bitmap/hash desync cases in the negative
// test vectors).
type Proof struct {
	Bitmap Word256
	Hashes []Hash256
}

// GetWithProof returns the value at key together with a proof binding
// (key, value) to t.MerkleRoot() at the time of the call.
//
// It walks from the leaf up to the root, 256 steps. At step i (counting
// from the leaf, i.e. i=0 is the leaf's sibling), if the sibling's hash
// is materialised (non-default), bit i of the proof's bitmap is set and
// the hash is appended; otherwise the sibling is recoverable from D[i]
// by the verifier and nothing is recorded.
func (t *Tree) GetWithProof(key Word256) (Word256, Proof) {
	var proof Proof

	n := leafIndex(key)
	for i := 0; i < 256; i++ {
		sibling := n.sibling()
		if h, ok := t.hashes[sibling]; ok {
			proof.Bitmap = proof.Bitmap.SetBit(i)
			proof.Hashes = append(proof.Hashes, h)
		}
		n = n.moveUp()
	}

	return t.Get(key), proof
}

// Verify is the stateless counterpart to GetWithProof: it recomputes the
// claimed root from (key, value, proof) using the canonical Keccak256
// compressor and reports whether it matches root.
//
// Verify never panics on a malformed proof; every one of the four
// malformed-proof classes in §8 (extra hash, missing hash, a bitmap bit
// set with no corresponding hash, a bitmap bit missing for a sibling
// that was in fact non-default) simply yields false, same as a correct
// proof against the wrong root would.
func Verify(root Hash256, key Word256, value Word256, proof Proof) bool {
	return verifyWithCompressor(Keccak256Compress, canonicalDefaultHashes(), root, key, value, proof)
}

// verifyWithCompressor is Verify parameterised over the compression
// function and default-hash table, for trees built by NewWithCompressor.
// defaultHashes is unexported, so this has no usable exported signature;
// it stays internal and is reached in tests via computeDefaultHashes.
func verifyWithCompressor(h Compressor, d *defaultHashes, root Hash256, key Word256, value Word256, proof Proof) bool {
	acc := Hash256(value)
	next := 0
	for i := 0; i < 256; i++ {
		var sibling Hash256
		if proof.Bitmap.Bit(i) {
			if next >= len(proof.Hashes) {
				return false
			}
			sibling = proof.Hashes[next]
			next++
		} else {
			sibling = d.at(256 - i)
		}

		// The i-th step up from the leaf examines bit (255-i) of the
		// key: that's the bit the tree consulted when it was at depth
		// 256-i deciding whether this subtree was the left or right
		// child of its parent.
		if key.Bit(255 - i) {
			acc = h(sibling, acc)
		} else {
			acc = h(acc, sibling)
		}
	}

	if next != len(proof.Hashes) {
		return false
	}
	return acc == root
}

// Popcount returns the number of set bits in the proof's bitmap, i.e.
// the number of non-default siblings it carries. A well-formed proof
// (invariant P1) has Popcount(p) == len(p.Hashes).
func (p Proof) Popcount() int {
	n := 0
	for _, b := range p.Bitmap {
		n += bits.OnesCount8(b)
	}
	return n
}

// MarshalBinary encodes the proof as the 32-byte bitmap followed by a
// 4-byte big-endian hash count and that many 32-byte hashes, the wire
// form recommended (but not mandated) by §6.2.
func (p Proof) MarshalBinary() ([]byte, error) {
	out := make([]byte, 32+4+32*len(p.Hashes))
	copy(out[:32], p.Bitmap[:])
	binary.BigEndian.PutUint32(out[32:36], uint32(len(p.Hashes)))
	for i, h := range p.Hashes {
		copy(out[36+i*32:36+(i+1)*32], h[:])
	}
	return out, nil
}

// UnmarshalBinary decodes a proof encoded by MarshalBinary. It rejects
// truncated input and input whose declared hash count disagrees with
// the bitmap's popcount (P1) before ever calling Verify.
func (p *Proof) UnmarshalBinary(data []byte) error {
	if len(data) < 36 {
		return ErrShortProof
	}
	var bitmap Word256
	copy(bitmap[:], data[:32])

	count := binary.BigEndian.Uint32(data[32:36])
	rest := data[36:]
	if uint64(len(rest)) != uint64(count)*32 {
		return ErrShortProof
	}

	expected := 0
	for _, b := range bitmap {
		expected += bits.OnesCount8(b)
	}
	if expected != int(count) {
		return ErrProofLengthMismatch
	}

	proof := Proof{Bitmap: bitmap}
	proof.Hashes = make([]Hash256, count)
	for i := range proof.Hashes {
		copy(proof.Hashes[i][:], rest[i*32:(i+1)*32])
	}

	*p = proof
	return nil
}
