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

// nodeIndex identifies a node N = (path, depth) in the implicit
// depth-256 tree. depth 0 is the root, depth 256 is a leaf.
//
// Invariant I1: every bit of path at positions >= depth is zero. All of
// the navigation helpers below (sibling, moveUp) are written to preserve
// this by construction, so a nodeIndex is safe to use directly as a map
// key: two indices compare equal iff they name the same node.
type nodeIndex struct {
	path  Word256
	depth int
}

// leafIndex returns the leaf node addressed by key.
func leafIndex(key Word256) nodeIndex {
	return nodeIndex{path: key, depth: 256}
}

// rootIndex returns the index of the tree root.
func rootIndex() nodeIndex {
	return nodeIndex{depth: 0}
}

// isRoot reports whether n is the root.
func (n nodeIndex) isRoot() bool {
	return n.depth == 0
}

// isLeft reports whether n is the left child of its parent. n must not
// be the root. This examines the same bit position that the parent
// examined to route to this child: bit (depth-1) of path.
func (n nodeIndex) isLeft() bool {
	if n.isRoot() {
		panic("smt256: isLeft of root is undefined")
	}
	return !n.path.Bit(n.depth - 1)
}

// sibling returns the sibling of n: same depth, with bit (depth-1) of
// path flipped. n must not be the root.
func (n nodeIndex) sibling() nodeIndex {
	if n.isRoot() {
		panic("smt256: root has no sibling")
	}
	return nodeIndex{path: n.path.FlipBit(n.depth - 1), depth: n.depth}
}

// moveUp returns the parent of n: bit (depth-1) of path cleared (so I1
// keeps holding for the shallower depth) and depth decremented. n must
// not be the root.
func (n nodeIndex) moveUp() nodeIndex {
	if n.isRoot() {
		panic("smt256: cannot move up from the root")
	}
	return nodeIndex{path: n.path.ClearBit(n.depth - 1), depth: n.depth - 1}
}
