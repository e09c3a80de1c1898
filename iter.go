package lazystr

import "iter"

// Runes returns an iterator over the string's codepoints in order. The
// walk copies the content out in chunks, so deep representations pay
// their traversal cost once per chunk rather than once per codepoint.
func (s *Str) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		var chunk [256]rune
		n := s.buf.Len()
		for off := 0; off < n; off += len(chunk) {
			m := n - off
			if m > len(chunk) {
				m = len(chunk)
			}
			s.buf.CopyRange(chunk[:m], off)
			for _, r := range chunk[:m] {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// AppendRunes appends the string's codepoints to dst and returns the
// extended slice.
func (s *Str) AppendRunes(dst []rune) []rune {
	n := s.buf.Len()
	if n == 0 {
		return dst
	}
	off := len(dst)
	dst = append(dst, make([]rune, n)...)
	s.buf.CopyRange(dst[off:], 0)
	return dst
}
