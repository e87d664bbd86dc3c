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

// Command smtfuzz differentially fuzzes the tree against a trivial
// in-memory model: it applies the same random sequence of sets to both,
// checks the value and proof of the key just set after every step, and
// panics the moment the
// two disagree or a proof fails to verify. It runs forever, attempt by
// attempt, printing progress so a hung or crashed run points at the
// last attempt number printed.
package main

import (
	"crypto/rand"
	"fmt"

	"github.com/authenticated-state/smt256"
)

const (
	keysPerAttempt = 2000
	opsPerAttempt  = 20000
)

func randomWord() smt256.Word256 {
	var w smt256.Word256
	if _, err := rand.Read(w[:]); err != nil {
		panic(err)
	}
	return w
}

func main() {
	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)
		runAttempt()
	}
}

func runAttempt() {
	tr := smt256.New()
	model := make(map[smt256.Word256]smt256.Word256)

	keys := make([]smt256.Word256, keysPerAttempt)
	for i := range keys {
		keys[i] = randomWord()
	}

	for op := 0; op < opsPerAttempt; op++ {
		var idx [1]byte
		if _, err := rand.Read(idx[:]); err != nil {
			panic(err)
		}
		key := keys[int(idx[0])%len(keys)]

		value := smt256.ZeroWord256
		var setOrClear [1]byte
		if _, err := rand.Read(setOrClear[:]); err != nil {
			panic(err)
		}
		if setOrClear[0]%4 != 0 {
			value = randomWord()
		}

		old := tr.Set(key, value)
		want := model[key]
		if old != want {
			panic(fmt.Sprintf("attempt diverged: Set(%s) returned prior value %s, model expected %s", key, old, want))
		}
		if value.IsZero() {
			delete(model, key)
		} else {
			model[key] = value
		}

		got, proof := tr.GetWithProof(key)
		if got != model[key] {
			panic(fmt.Sprintf("attempt diverged: GetWithProof(%s) = %s, model expected %s", key, got, model[key]))
		}
		if proof.Popcount() != len(proof.Hashes) {
			panic(fmt.Sprintf("attempt diverged: proof popcount %d != hash count %d for key %s", proof.Popcount(), len(proof.Hashes), key))
		}
		if !smt256.Verify(tr.MerkleRoot(), key, got, proof) {
			panic(fmt.Sprintf("attempt diverged: proof for key %s failed to verify at op %d", key, op))
		}
	}
}
