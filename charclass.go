package lazystr

import "unicode"

// Class is a bitmask of codepoint categories. A mask with several bits
// matches a codepoint belonging to any of them.
type Class uint16

const (
	ClassSpace Class = 1 << iota
	ClassAlpha
	ClassDigit
	ClassDecimal
	ClassNumeric
	ClassLower
	ClassUpper
	ClassPrintable

	// ClassAlnum matches letters and anything numeric.
	ClassAlnum = ClassAlpha | ClassNumeric
)

// Contains reports whether r belongs to any category in the mask.
func (c Class) Contains(r rune) bool {
	return classOf(r)&c != 0
}

// classOf computes the full category mask for one codepoint.
func classOf(r rune) Class {
	var c Class
	if unicode.IsSpace(r) {
		c |= ClassSpace
	}
	if unicode.IsLetter(r) {
		c |= ClassAlpha
	}
	if unicode.Is(unicode.Nd, r) {
		c |= ClassDigit | ClassDecimal
	}
	if unicode.IsNumber(r) {
		c |= ClassNumeric
	}
	if unicode.IsLower(r) {
		c |= ClassLower
	}
	if unicode.IsUpper(r) {
		c |= ClassUpper
	}
	if unicode.IsPrint(r) {
		c |= ClassPrintable
	}
	return c
}
