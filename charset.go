package lazystr

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Charset is an immutable codepoint membership tester. Codepoints below
// 0x100 are answered from a bitmap; everything above goes through a
// range table, so sparse sets of high codepoints stay compact.
type Charset struct {
	low  [4]uint64
	high *unicode.RangeTable
}

// NewCharset builds the set of codepoints occurring in chars.
func NewCharset(chars string) *Charset {
	return NewCharsetRunes([]rune(chars))
}

// NewCharsetRunes builds the set of codepoints in rs. Duplicates are
// harmless.
func NewCharsetRunes(rs []rune) *Charset {
	cs := &Charset{}
	var high []rune
	for _, r := range rs {
		if r < 0x100 {
			cs.low[r>>6] |= 1 << (uint(r) & 63)
		} else {
			high = append(high, r)
		}
	}
	if len(high) > 0 {
		cs.high = rangetable.New(high...)
	}
	return cs
}

// NewCharsetStr builds the set of codepoints occurring in s.
func NewCharsetStr(s *Str) *Charset {
	return NewCharsetRunes(s.runes())
}

// Contains reports whether r is in the set.
func (cs *Charset) Contains(r rune) bool {
	if r < 0 {
		return false
	}
	if r < 0x100 {
		return cs.low[r>>6]&(1<<(uint(r)&63)) != 0
	}
	return cs.high != nil && unicode.Is(cs.high, r)
}

// RuneRange is a half-open codepoint interval [Lo, Hi).
type RuneRange struct {
	Lo rune
	Hi rune
}

// NewRuneRange builds the interval [lo, hi). The bounds must be
// non-negative with lo strictly below hi.
func NewRuneRange(lo, hi rune) (RuneRange, error) {
	if lo < 0 || hi <= lo {
		return RuneRange{}, ErrBadRange
	}
	return RuneRange{Lo: lo, Hi: hi}, nil
}

// Contains reports whether r falls in the interval.
func (rr RuneRange) Contains(r rune) bool {
	return r >= rr.Lo && r < rr.Hi
}
