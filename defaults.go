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

import "sync"

// defaultHashes holds D[0..=256]: D[0] is the zero hash, and D[i] is the
// root of a complete subtree of height i in which every leaf is zero.
// Because both children of such a subtree are themselves all-default
// subtrees of height i-1, D[i] = H(D[i-1], D[i-1]).
type defaultHashes [257]Hash256

func computeDefaultHashes(h Compressor) *defaultHashes {
	var d defaultHashes
	// d[0] is already the zero value.
	for i := 1; i <= 256; i++ {
		d[i] = h(d[i-1], d[i-1])
	}
	return &d
}

var (
	canonicalDefaults     *defaultHashes
	canonicalDefaultsOnce sync.Once
)

// canonicalDefaultHashes returns the process-wide D table for the
// canonical Keccak256Compress primitive, computed exactly once no matter
// how many goroutines race to first-touch it.
func canonicalDefaultHashes() *defaultHashes {
	canonicalDefaultsOnce.Do(func() {
		canonicalDefaults = computeDefaultHashes(Keccak256Compress)
	})
	return canonicalDefaults
}

// at returns D[256-depth], the default hash of a subtree of height
// 256-depth rooted at a node at the given depth.
func (d *defaultHashes) at(depth int) Hash256 {
	return d[256-depth]
}
