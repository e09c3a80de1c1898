package buffer

// FindSub returns the smallest index i in [start, end-len(sub)] where
// sub occurs, or -1. An empty sub matches immediately at start.
//
// Candidates come from the structural single-codepoint scan on sub's
// first codepoint, then each candidate is verified in place, so only
// the verification touches more than one codepoint per position.
func FindSub(b *Buffer, sub []rune, start, end int) int {
	if len(sub) == 0 {
		return start
	}
	if end-start < len(sub) {
		return -1
	}

	last := end - len(sub) + 1
	scratch := make([]rune, len(sub))
	for i := start; i < last; {
		i = FindRune(b, sub[0], i, last)
		if i < 0 {
			return -1
		}
		if matchAt(b, sub, i, scratch) {
			return i
		}
		i++
	}
	return -1
}

// RFindSub returns the largest index i in [start, end-len(sub)] where
// sub occurs, or -1. An empty sub matches immediately at end.
func RFindSub(b *Buffer, sub []rune, start, end int) int {
	if len(sub) == 0 {
		return end
	}
	if end-start < len(sub) {
		return -1
	}

	last := end - len(sub) + 1
	scratch := make([]rune, len(sub))
	for hi := last; hi > start; {
		i := RFindRune(b, sub[0], start, hi)
		if i < 0 {
			return -1
		}
		if matchAt(b, sub, i, scratch) {
			return i
		}
		hi = i
	}
	return -1
}

// CountSub counts non-overlapping occurrences of sub in [start, end).
// An empty sub matches at every position including end, hence
// end-start+1 occurrences.
func CountSub(b *Buffer, sub []rune, start, end int) int {
	if len(sub) == 0 {
		return end - start + 1
	}

	n := 0
	for {
		i := FindSub(b, sub, start, end)
		if i < 0 {
			return n
		}
		n++
		start = i + len(sub)
	}
}

// matchAt reports whether sub occurs at index i. scratch must have
// length len(sub).
func matchAt(b *Buffer, sub []rune, i int, scratch []rune) bool {
	b.CopyRange(scratch, i)
	for j, r := range sub {
		if scratch[j] != r {
			return false
		}
	}
	return true
}
