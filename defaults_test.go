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
	"testing"
)

const canonicalEmptyRootHex = "a7ff9e28ffd3def443d324547688c2c4eb98edf7da757d6bfa22bff55b9ce24a"

func mustHash(t *testing.T, h string) Hash256 {
	t.Helper()
	b, err := hex.DecodeString(h)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", h, err)
	}
	if len(b) != 32 {
		t.Fatalf("hex fixture %q is not 32 bytes", h)
	}
	var out Hash256
	copy(out[:], b)
	return out
}

func TestDefaultHashesZeroIsZero(t *testing.T) {
	t.Parallel()

	d := canonicalDefaultHashes()
	if d[0] != (Hash256{}) {
		t.Fatalf("D[0] should be the zero hash, got %s", d[0])
	}
}

func TestDefaultHashesEmptyRoot(t *testing.T) {
	t.Parallel()

	d := canonicalDefaultHashes()
	want := mustHash(t, canonicalEmptyRootHex)
	if d[256] != want {
		t.Fatalf("D[256] mismatch: got %s, want %s", d[256], want)
	}
}

func TestDefaultHashesMemoized(t *testing.T) {
	t.Parallel()

	a := canonicalDefaultHashes()
	b := canonicalDefaultHashes()
	if a != b {
		t.Fatal("canonicalDefaultHashes should return the same table instance across calls")
	}
}

func TestDefaultHashesChain(t *testing.T) {
	t.Parallel()

	d := canonicalDefaultHashes()
	for i := 1; i <= 256; i++ {
		want := Keccak256Compress(d[i-1], d[i-1])
		if d[i] != want {
			t.Fatalf("D[%d] does not equal H(D[%d], D[%d])", i, i-1, i-1)
		}
	}
}
