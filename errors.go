package lazystr

import "errors"

var (
	// ErrZeroStep is returned by SliceStep when step is zero.
	ErrZeroStep = errors.New("lazystr: slice step cannot be zero")

	// ErrNegativeCount is returned by Repeat when count is negative.
	ErrNegativeCount = errors.New("lazystr: repeat count cannot be negative")

	// ErrIndexOutOfRange is returned by At for an index outside the
	// string.
	ErrIndexOutOfRange = errors.New("lazystr: index out of range")

	// ErrBadRange is returned by NewRuneRange when the bounds do not
	// form a valid codepoint interval.
	ErrBadRange = errors.New("lazystr: invalid codepoint range")
)
