package lazystr

import "github.com/dshills/lazystr/internal/buffer"

// Repeat returns s repeated count times without copying s. A count of
// zero yields the empty string and a count of one yields s itself; a
// negative count is an error. Repeating a repeat folds into a single
// node with the product count.
func Repeat(s *Str, count int) (*Str, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if count == 0 || s.buf.Len() == 0 {
		return emptyStr, nil
	}
	if count == 1 {
		return s, nil
	}
	return wrap(buffer.NewRepeat(s.buf, count)), nil
}
