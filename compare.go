package lazystr

import "github.com/dshills/lazystr/internal/buffer"

// Equal reports whether s and t hold the same codepoint sequence,
// regardless of how either is represented. Cached hashes supply a fast
// negative; the positive answer comes from the content.
func (s *Str) Equal(t *Str) bool {
	return buffer.EqualContent(s.buf, t.buf)
}

// Compare orders s and t lexicographically by codepoint, returning -1,
// 0, or 1.
func (s *Str) Compare(t *Str) int {
	return buffer.CompareContent(s.buf, t.buf)
}

// Hash returns a 64-bit content hash, stable across representations:
// equal strings hash equal whether flat, sliced, joined, or repeated.
// The hash is computed once per representation and cached.
func (s *Str) Hash() uint64 {
	return s.buf.Hash()
}
