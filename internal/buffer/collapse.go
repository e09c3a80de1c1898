package buffer

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// hashKey domain-separates content hashes from any other keyed BLAKE3
// use. ASCII, zero padded to the 32 bytes the keyed mode requires.
var hashKey = func() [32]byte {
	var k [32]byte
	copy(k[:], "lazystr.content.v1")
	return k
}()

// Collapse replaces the buffer's representation with a contiguous leaf
// holding the same content. A leaf collapses to itself. Other buffers
// sharing this one through views or concats observe the new
// representation, never a content change.
func Collapse(b *Buffer) {
	if b.kind == KindLeaf {
		return
	}

	// Build the replacement completely before touching b, so a failed
	// allocation cannot leave b half-swapped.
	leaf := b.Materialize(0, b.Len(), 1)

	b.kind = KindLeaf
	b.width = leaf.width
	b.b8 = leaf.b8
	b.b16 = leaf.b16
	b.b32 = leaf.b32
	b.src = nil
	b.left = nil
	b.right = nil
	b.base = nil
	b.start = 0
	b.step = 0
	b.height = 0
	b.count = 0
	b.length = 0
}

const hashChunk = 512

// Hash returns a 64-bit content hash. Equal content hashes equal
// regardless of representation, because the hash is taken over the
// logical codepoint sequence. The result is cached on first use; zero
// is reserved as the cache's empty sentinel and remapped.
func (b *Buffer) Hash() uint64 {
	if h := b.hash.Load(); h != 0 {
		return h
	}

	hasher, err := blake3.NewKeyed(hashKey[:])
	if err != nil {
		// Only reachable with a key that is not 32 bytes.
		panic(err)
	}

	var chunk [hashChunk]rune
	var enc [hashChunk * 4]byte
	n := b.Len()
	for off := 0; off < n; off += hashChunk {
		m := n - off
		if m > hashChunk {
			m = hashChunk
		}
		b.CopyRange(chunk[:m], off)
		for i := 0; i < m; i++ {
			binary.LittleEndian.PutUint32(enc[i*4:], uint32(chunk[i]))
		}
		hasher.Write(enc[:m*4])
	}

	h := binary.LittleEndian.Uint64(hasher.Sum(nil))
	if h == 0 {
		h = 1
	}
	b.hash.Store(h)
	return h
}

// EqualContent reports whether two buffers hold the same codepoint
// sequence. Already-computed hashes give a fast negative; the positive
// answer always comes from comparing content.
func EqualContent(a, b *Buffer) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	if ha, hb := a.hash.Load(), b.hash.Load(); ha != 0 && hb != 0 && ha != hb {
		return false
	}
	return CompareContent(a, b) == 0
}

// CompareContent orders two buffers lexicographically by codepoint,
// returning -1, 0, or 1.
func CompareContent(a, b *Buffer) int {
	na, nb := a.Len(), b.Len()
	n := na
	if nb < n {
		n = nb
	}

	var ca, cb [hashChunk]rune
	for off := 0; off < n; off += hashChunk {
		m := n - off
		if m > hashChunk {
			m = hashChunk
		}
		a.CopyRange(ca[:m], off)
		b.CopyRange(cb[:m], off)
		for i := 0; i < m; i++ {
			if ca[i] != cb[i] {
				if ca[i] < cb[i] {
					return -1
				}
				return 1
			}
		}
	}

	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	return 0
}
