package lazystr

import "github.com/dshills/lazystr/internal/buffer"

// Slice returns the window s[start:stop] with step 1. Indices follow
// slice conventions: negatives count from the end and out-of-range
// bounds clamp, so Slice never fails. A slice covering the whole string
// returns s itself.
func (s *Str) Slice(start, stop int) *Str {
	out, _ := s.SliceStep(start, stop, 1)
	return out
}

// SliceStep returns the window s[start:stop:step]. A negative step
// walks backward, with the same index conventions as Slice. The only
// error is a zero step.
//
// The result is a view sharing s's storage; a view of a view composes
// into a single view over the original source.
func (s *Str) SliceStep(start, stop, step int) (*Str, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}

	n := s.buf.Len()
	start, stop = adjustIndices(start, stop, step, n)
	length := sliceLen(start, stop, step)

	if length == n && step == 1 {
		return s, nil
	}
	if length == 0 {
		return emptyStr, nil
	}
	return wrap(buffer.NewView(s.buf, start, step, length)), nil
}

// adjustIndices clamps slice bounds the way extended slicing does: a
// negative index counts from the end, and anything still out of range
// clamps to the end the step walks away from.
func adjustIndices(start, stop, step, n int) (int, int) {
	if start < 0 {
		start += n
		if start < 0 {
			if step < 0 {
				start = -1
			} else {
				start = 0
			}
		}
	} else if start >= n {
		if step < 0 {
			start = n - 1
		} else {
			start = n
		}
	}

	if stop < 0 {
		stop += n
		if stop < 0 {
			if step < 0 {
				stop = -1
			} else {
				stop = 0
			}
		}
	} else if stop >= n {
		if step < 0 {
			stop = n - 1
		} else {
			stop = n
		}
	}

	return start, stop
}

// sliceLen counts the elements the adjusted (start, stop, step) selects.
func sliceLen(start, stop, step int) int {
	if step > 0 {
		if start >= stop {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if start <= stop {
		return 0
	}
	return (start - stop - step - 1) / -step
}
