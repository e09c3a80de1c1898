package lazystr

import "github.com/dshills/lazystr/internal/buffer"

// normRange clamps a [start, end) search window to the string the way
// find-style ranges behave: negatives count from the end, and anything
// out of range clamps to the string.
func (s *Str) normRange(start, end int) (int, int) {
	n := s.buf.Len()
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	} else if start > n {
		start = n
	}
	if end < 0 {
		end += n
		if end < 0 {
			end = 0
		}
	} else if end > n {
		end = n
	}
	return start, end
}

// runes materializes the string's codepoints for use as a search
// needle.
func (s *Str) runes() []rune {
	rs := make([]rune, s.buf.Len())
	s.buf.CopyRange(rs, 0)
	return rs
}

// Find returns the smallest index in [start, end) where sub begins, or
// -1. An empty sub is found at the clamped start. The window follows
// normRange conventions; pass 0 and Len() for the whole string.
func (s *Str) Find(sub *Str, start, end int) int {
	start, end = s.normRange(start, end)
	if start > end {
		return -1
	}
	return buffer.FindSub(s.buf, sub.runes(), start, end)
}

// RFind returns the largest index in [start, end) where sub begins, or
// -1. An empty sub is found at the clamped end.
func (s *Str) RFind(sub *Str, start, end int) int {
	start, end = s.normRange(start, end)
	if start > end {
		return -1
	}
	return buffer.RFindSub(s.buf, sub.runes(), start, end)
}

// Count returns the number of non-overlapping occurrences of sub in
// [start, end). An empty sub occurs at every position including the
// end of the window.
func (s *Str) Count(sub *Str, start, end int) int {
	start, end = s.normRange(start, end)
	if start > end {
		return 0
	}
	return buffer.CountSub(s.buf, sub.runes(), start, end)
}

// Contains reports whether sub occurs anywhere in s.
func (s *Str) Contains(sub *Str) bool {
	return s.Find(sub, 0, s.buf.Len()) >= 0
}

// FindRune returns the smallest index in [start, end) holding c, or -1.
func (s *Str) FindRune(c rune, start, end int) int {
	start, end = s.normRange(start, end)
	return buffer.FindRune(s.buf, c, start, end)
}

// RFindRune returns the largest index in [start, end) holding c, or -1.
func (s *Str) RFindRune(c rune, start, end int) int {
	start, end = s.normRange(start, end)
	return buffer.RFindRune(s.buf, c, start, end)
}

// FindFunc returns the smallest index in [start, end) whose codepoint
// satisfies pred, or -1.
func (s *Str) FindFunc(pred func(rune) bool, start, end int) int {
	start, end = s.normRange(start, end)
	return buffer.FindFunc(s.buf, pred, start, end)
}

// RFindFunc returns the largest index in [start, end) whose codepoint
// satisfies pred, or -1.
func (s *Str) RFindFunc(pred func(rune) bool, start, end int) int {
	start, end = s.normRange(start, end)
	return buffer.RFindFunc(s.buf, pred, start, end)
}

// FindSet returns the smallest index in [start, end) whose codepoint is
// in set, or -1. With invert, membership is negated.
func (s *Str) FindSet(set *Charset, invert bool, start, end int) int {
	return s.FindFunc(setPred(set, invert), start, end)
}

// RFindSet is FindSet scanning from the end of the window.
func (s *Str) RFindSet(set *Charset, invert bool, start, end int) int {
	return s.RFindFunc(setPred(set, invert), start, end)
}

// FindClass returns the smallest index in [start, end) whose codepoint
// belongs to class, or -1. With invert, membership is negated.
func (s *Str) FindClass(class Class, invert bool, start, end int) int {
	return s.FindFunc(classPred(class, invert), start, end)
}

// RFindClass is FindClass scanning from the end of the window.
func (s *Str) RFindClass(class Class, invert bool, start, end int) int {
	return s.RFindFunc(classPred(class, invert), start, end)
}

// FindRange returns the smallest index in [start, end) whose codepoint
// falls in rr, or -1. With invert, membership is negated.
func (s *Str) FindRange(rr RuneRange, invert bool, start, end int) int {
	return s.FindFunc(rangePred(rr, invert), start, end)
}

// RFindRange is FindRange scanning from the end of the window.
func (s *Str) RFindRange(rr RuneRange, invert bool, start, end int) int {
	return s.RFindFunc(rangePred(rr, invert), start, end)
}

// StartsWith reports whether the window [start, end) begins with
// prefix. The empty prefix matches any window.
func (s *Str) StartsWith(prefix *Str, start, end int) bool {
	start, end = s.normRange(start, end)
	return s.matchesAt(prefix, start, end-start)
}

// EndsWith reports whether the window [start, end) ends with suffix.
func (s *Str) EndsWith(suffix *Str, start, end int) bool {
	start, end = s.normRange(start, end)
	return s.matchesAt(suffix, end-suffix.buf.Len(), end-start)
}

// matchesAt reports whether other occurs at index at, given the window
// has room codepoints available.
func (s *Str) matchesAt(other *Str, at, room int) bool {
	n := other.buf.Len()
	if n > room || at < 0 {
		return false
	}
	if n == 0 {
		return true
	}
	got := make([]rune, n)
	s.buf.CopyRange(got, at)
	want := other.runes()
	for i, r := range want {
		if got[i] != r {
			return false
		}
	}
	return true
}

func setPred(set *Charset, invert bool) func(rune) bool {
	if invert {
		return func(r rune) bool { return !set.Contains(r) }
	}
	return set.Contains
}

func classPred(class Class, invert bool) func(rune) bool {
	if invert {
		return func(r rune) bool { return !class.Contains(r) }
	}
	return class.Contains
}

func rangePred(rr RuneRange, invert bool) func(rune) bool {
	if invert {
		return func(r rune) bool { return !rr.Contains(r) }
	}
	return rr.Contains
}
