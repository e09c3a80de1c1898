package lazystr

import (
	"unicode"

	"github.com/dshills/lazystr/internal/buffer"
)

// Whole-string predicates. Each one is an offender scan: the string
// satisfies the predicate when no codepoint violates it, which lets the
// structural search do the walking. On a repeat the scan touches the
// base at most twice instead of count times.

// IsSpace reports whether the string is non-empty and every codepoint
// is whitespace.
func (s *Str) IsSpace() bool {
	return s.all(ClassSpace)
}

// IsAlpha reports whether the string is non-empty and every codepoint
// is a letter.
func (s *Str) IsAlpha() bool {
	return s.all(ClassAlpha)
}

// IsDigit reports whether the string is non-empty and every codepoint
// is a digit.
func (s *Str) IsDigit() bool {
	return s.all(ClassDigit)
}

// IsDecimal reports whether the string is non-empty and every codepoint
// is a decimal digit.
func (s *Str) IsDecimal() bool {
	return s.all(ClassDecimal)
}

// IsNumeric reports whether the string is non-empty and every codepoint
// is numeric.
func (s *Str) IsNumeric() bool {
	return s.all(ClassNumeric)
}

// IsAlnum reports whether the string is non-empty and every codepoint
// is a letter or numeric.
func (s *Str) IsAlnum() bool {
	return s.all(ClassAlnum)
}

// IsPrintable reports whether every codepoint is printable. The empty
// string is printable.
func (s *Str) IsPrintable() bool {
	return s.offender(func(r rune) bool {
		return !ClassPrintable.Contains(r)
	}) < 0
}

// IsASCII reports whether every codepoint is below 0x80. The empty
// string is ASCII.
func (s *Str) IsASCII() bool {
	return s.offender(func(r rune) bool { return r >= 0x80 }) < 0
}

// IsLower reports whether the string has at least one cased codepoint
// and no uppercase or titlecase ones.
func (s *Str) IsLower() bool {
	if s.offender(func(r rune) bool {
		return unicode.IsUpper(r) || unicode.IsTitle(r)
	}) >= 0 {
		return false
	}
	return s.offender(isCased) >= 0
}

// IsUpper reports whether the string has at least one cased codepoint
// and no lowercase or titlecase ones.
func (s *Str) IsUpper() bool {
	if s.offender(func(r rune) bool {
		return unicode.IsLower(r) || unicode.IsTitle(r)
	}) >= 0 {
		return false
	}
	return s.offender(isCased) >= 0
}

// IsTitle reports whether the string is titlecased: every cased run
// starts with an uppercase or titlecase codepoint followed only by
// lowercase ones, and at least one cased codepoint exists.
//
// The scan is stateful, so it cannot ride the offender machinery.
// Instead it walks the structure carrying the state across boundaries,
// and a repeat anywhere in the tree is scanned at most twice: the state
// entering a period is determined by the period's last codepoint alone,
// so the second pass already sees the steady state of every later one.
func (s *Str) IsTitle() bool {
	if s.buf.Len() == 0 {
		return false
	}
	_, hasCased, ok := titleScan(s.buf, false)
	return ok && hasCased
}

func titleScan(b *buffer.Buffer, prevCased bool) (outCased, hasCased, ok bool) {
	switch b.Kind() {
	case buffer.KindConcat:
		left, right := b.Children()
		mid, hcL, okL := titleScan(left, prevCased)
		if !okL {
			return false, false, false
		}
		end, hcR, okR := titleScan(right, mid)
		return end, hcL || hcR, okR

	case buffer.KindRepeat:
		base, count := b.RepeatParts()
		s1, hc1, ok1 := titleScan(base, prevCased)
		if !ok1 || count == 1 {
			return s1, hc1, ok1
		}
		s2, hc2, ok2 := titleScan(base, s1)
		return s2, hc1 || hc2, ok2

	default:
		// Leaves and views are linear in their own length.
		return titleScanFlat(b, prevCased)
	}
}

func titleScanFlat(b *buffer.Buffer, prevCased bool) (outCased, hasCased, ok bool) {
	var chunk [256]rune
	n := b.Len()
	for off := 0; off < n; off += len(chunk) {
		m := n - off
		if m > len(chunk) {
			m = len(chunk)
		}
		b.CopyRange(chunk[:m], off)
		for _, r := range chunk[:m] {
			switch {
			case unicode.IsUpper(r) || unicode.IsTitle(r):
				if prevCased {
					return false, false, false
				}
				prevCased = true
				hasCased = true
			case unicode.IsLower(r):
				if !prevCased {
					return false, false, false
				}
				prevCased = true
				hasCased = true
			default:
				prevCased = false
			}
		}
	}
	return prevCased, hasCased, true
}

// IsIdentifier reports whether the string is a valid identifier: a
// letter, underscore, or other identifier-start codepoint followed by
// identifier-continue codepoints.
func (s *Str) IsIdentifier() bool {
	n := s.buf.Len()
	if n == 0 {
		return false
	}
	if !isIdentStart(s.buf.RuneAt(0)) {
		return false
	}
	return buffer.FindFunc(s.buf, func(r rune) bool {
		return !isIdentContinue(r)
	}, 1, n) < 0
}

// all reports whether the string is non-empty and every codepoint
// belongs to class.
func (s *Str) all(class Class) bool {
	if s.buf.Len() == 0 {
		return false
	}
	return s.offender(func(r rune) bool {
		return !class.Contains(r)
	}) < 0
}

// offender returns the first index whose codepoint satisfies bad, or
// -1.
func (s *Str) offender(bad func(rune) bool) int {
	return buffer.FindFunc(s.buf, bad, 0, s.buf.Len())
}

func isCased(r rune) bool {
	return unicode.IsLower(r) || unicode.IsUpper(r) || unicode.IsTitle(r)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Other_ID_Continue, r)
}
