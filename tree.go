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

// Package smt256 implements a sparse Merkle tree map over the full
// 256-bit key/value domain: an in-memory authenticated dictionary
// M : {0,1}^256 -> {0,1}^256, initialised to the everywhere-zero map,
// with point mutation, point lookup, and compact Merkle inclusion
// proofs binding a (key, value) pair to a single 256-bit root digest.
//
// Only the nodes whose subtree differs from the all-default subtree are
// ever materialised; an empty tree occupies O(1) space, and a tree with
// n non-default keys occupies O(n*256) node entries in the worst case.
// The tree is not safe for concurrent use by multiple goroutines; wrap
// it in the caller's own synchronization if that's needed.
package smt256

// Tree is a sparse Merkle tree map. The zero value is not usable; use
// New or NewWithCompressor.
type Tree struct {
	compress Compressor
	defaults *defaultHashes

	kvs    map[Word256]Word256
	hashes map[nodeIndex]Hash256
}

// New returns an empty tree using the canonical Keccak256 compression
// function.
func New() *Tree {
	return &Tree{
		compress: Keccak256Compress,
		defaults: canonicalDefaultHashes(),
		kvs:      make(map[Word256]Word256),
		hashes:   make(map[nodeIndex]Hash256),
	}
}

// NewWithCompressor returns an empty tree using a caller-supplied
// compression function instead of the canonical one.
//
// This exists because the hash primitive is the core's single point of
// polymorphism, and for tests that need to
// observe the tree's behavior independent of Keccak. Two trees built
// with different compressors are not proof-compatible with each other:
// verifying a proof against a root requires the same compressor that
// produced it.
func NewWithCompressor(h Compressor) *Tree {
	return &Tree{
		compress: h,
		defaults: computeDefaultHashes(h),
		kvs:      make(map[Word256]Word256),
		hashes:   make(map[nodeIndex]Hash256),
	}
}

// Len returns the number of keys currently mapped to a non-zero value.
func (t *Tree) Len() int {
	return len(t.kvs)
}

// Get returns the value mapped to key, or the zero word if key is
// absent. It has no side effects.
func (t *Tree) Get(key Word256) Word256 {
	return t.kvs[key]
}

// getHash returns the materialised hash at n, or the default hash for
// n's height if no entry is present (invariant I3).
func (t *Tree) getHash(n nodeIndex) Hash256 {
	if h, ok := t.hashes[n]; ok {
		return h
	}
	return t.defaults.at(n.depth)
}

// updateHash stores h at n, deleting the entry instead if h equals the
// default hash for n's height, preserving the sparseness invariant I3.
func (t *Tree) updateHash(n nodeIndex, h Hash256) {
	if h == t.defaults.at(n.depth) {
		delete(t.hashes, n)
		return
	}
	t.hashes[n] = h
}

// Set updates the map so that M[key] = value and returns the value that
// key held before the call (the zero word if it was absent).
//
// The leaf hash is the value itself, untagged (§6.2: "no domain
// separation, no tagging"); the update then walks from the leaf to the
// root, recomputing exactly the 256 node hashes on the path, consulting
// the default-hash table for every sibling that isn't itself
// materialised.
func (t *Tree) Set(key, value Word256) Word256 {
	old := t.kvs[key]

	n := leafIndex(key)
	h := Hash256(value)
	t.updateHash(n, h)

	for !n.isRoot() {
		sibling := t.getHash(n.sibling())
		if n.isLeft() {
			h = t.compress(h, sibling)
		} else {
			h = t.compress(sibling, h)
		}
		n = n.moveUp()
		t.updateHash(n, h)
	}

	if value.IsZero() {
		delete(t.kvs, key)
	} else {
		t.kvs[key] = value
	}

	return old
}

// MerkleRoot returns the current root digest. For an empty tree this is
// exactly D[256], the canonical empty-tree root.
func (t *Tree) MerkleRoot() Hash256 {
	return t.getHash(rootIndex())
}
