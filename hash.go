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

import "golang.org/x/crypto/sha3"

// Compressor is the injected 64-byte-to-32-byte compression function the
// tree is built on: H(a, b) = some deterministic, collision-resistant
// function of the 64-byte concatenation a || b. The tree never picks a
// hash variant on its own; it is always handed one at construction time.
type Compressor func(a, b Hash256) Hash256

// Keccak256Compress is the canonical compression function: the original
// Keccak submission with 256-bit output and Keccak (not NIST SHA-3)
// padding, applied to the 64-byte concatenation of a and b.
//
// sha3.NewLegacyKeccak256 is deliberately used in place of sha3.New256:
// the latter is NIST SHA-3, which pads differently and would produce a
// different digest for the same input.
func Keccak256Compress(a, b Hash256) Hash256 {
	d := sha3.NewLegacyKeccak256()
	d.Write(a[:])
	d.Write(b[:])
	var out Hash256
	d.Sum(out[:0])
	return out
}
