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
	"encoding/hex"

	"github.com/holiman/uint256"
)

// Word256 is a 256-bit value used as both key and value in the tree.
//
// It has two lexical interpretations that must not be confused: as a
// *path*, it is a sequence of 256 bits indexed 0..255 (see Bit/SetBit
// below); as a *scalar*, it is an opaque 32-byte value best handled
// through Scalar/WordFromScalar. Both views share the same byte layout;
// only the question "which bit is bit i" differs between callers that
// want path semantics and callers that want arithmetic.
type Word256 [32]byte

// Hash256 is the 32-byte output of the hash primitive and the type of
// every node digest.
type Hash256 [32]byte

// ZeroWord256 is the distinguished default value. A key is absent from
// the map iff its value equals ZeroWord256 (invariant I2).
var ZeroWord256 Word256

// IsZero reports whether w is the all-zero word.
func (w Word256) IsZero() bool {
	return w == ZeroWord256
}

// Bit returns the bit of w at index i, under the canonical bit order:
// bit i is byte i/8, bit 7-i%8, MSB-first within the byte. With the
// big-endian layout of Scalar, bit i is bit 255-i of the scalar, so the
// leaf-level path bit (255) is the key's least significant bit. i must
// be in 0..256; indices at or above 256 are a programmer error and
// panic, as does any negative index.
func (w Word256) Bit(i int) bool {
	if i < 0 || i >= 256 {
		panic("smt256: bit index out of range")
	}
	return w[i/8]&(0x80>>uint(i%8)) != 0
}

// SetBit returns a copy of w with bit i set to 1.
func (w Word256) SetBit(i int) Word256 {
	if i < 0 || i >= 256 {
		panic("smt256: bit index out of range")
	}
	w[i/8] |= 0x80 >> uint(i%8)
	return w
}

// ClearBit returns a copy of w with bit i set to 0.
func (w Word256) ClearBit(i int) Word256 {
	if i < 0 || i >= 256 {
		panic("smt256: bit index out of range")
	}
	w[i/8] &^= 0x80 >> uint(i%8)
	return w
}

// FlipBit returns a copy of w with bit i complemented.
func (w Word256) FlipBit(i int) Word256 {
	if i < 0 || i >= 256 {
		panic("smt256: bit index out of range")
	}
	w[i/8] ^= 0x80 >> uint(i%8)
	return w
}

// Scalar interprets w as a big-endian 256-bit unsigned integer and
// returns it as a *uint256.Int, for callers that need ordering or
// arithmetic on the value rather than path semantics (test-vector
// construction, diagnostics).
func (w Word256) Scalar() *uint256.Int {
	return new(uint256.Int).SetBytes(w[:])
}

// WordFromScalar is the inverse of Scalar: it packs a *uint256.Int back
// into a Word256 in big-endian byte order.
func WordFromScalar(s *uint256.Int) Word256 {
	var w Word256
	b := s.Bytes32()
	copy(w[:], b[:])
	return w
}

// String renders w as a 0x-prefixed hex string, for debugging.
func (w Word256) String() string {
	return "0x" + hex.EncodeToString(w[:])
}

// String renders h as a 0x-prefixed hex string, for debugging.
func (h Hash256) String() string {
	return "0x" + hex.EncodeToString(h[:])
}
