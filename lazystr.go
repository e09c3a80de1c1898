package lazystr

import (
	"fmt"

	"github.com/dshills/lazystr/internal/buffer"
)

// Str is an immutable string whose representation may be a composite of
// shared pieces rather than contiguous storage. Operations that build
// new strings (Concat, Repeat, Slice) describe their result instead of
// copying it; the description is walked lazily by searches and
// classification, and can be flattened on demand with Collapse.
//
// Str values are safe for concurrent readers. Collapse and Optimize
// mutate the representation and must not race with other access to the
// same Str or to strings sharing its pieces.
type Str struct {
	buf *buffer.Buffer
}

// emptyStr backs Empty and every operation whose result is empty,
// keeping the zero-length case allocation free.
var emptyStr = &Str{buf: buffer.Empty()}

// New builds a string from s. The codepoints are stored at the
// narrowest width that holds them.
func New(s string) *Str {
	if s == "" {
		return emptyStr
	}
	return &Str{buf: buffer.NewLeaf(s)}
}

// NewRunes builds a string from a codepoint slice. The slice is copied.
func NewRunes(rs []rune) *Str {
	if len(rs) == 0 {
		return emptyStr
	}
	return &Str{buf: buffer.NewLeafRunes(rs)}
}

// Empty returns the shared empty string.
func Empty() *Str {
	return emptyStr
}

// Len returns the number of codepoints.
func (s *Str) Len() int {
	return s.buf.Len()
}

// At returns the codepoint at index i. Negative indices count from the
// end. Out-of-range indices return an error matching ErrIndexOutOfRange.
func (s *Str) At(i int) (rune, error) {
	n := s.buf.Len()
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, fmt.Errorf("index %d with length %d: %w", i, n, ErrIndexOutOfRange)
	}
	return s.buf.RuneAt(j), nil
}

// String materializes the full content. The representation is not
// modified; use Collapse to also flatten it.
func (s *Str) String() string {
	return s.buf.String()
}

// Describe renders the representation structure: quoted leaves, slice
// windows, (a + b) joins, and (a * n) repeats.
func (s *Str) Describe() string {
	return s.buf.Describe()
}

// IsFlat reports whether the string is currently backed by contiguous
// storage.
func (s *Str) IsFlat() bool {
	return s.buf.IsLeaf()
}

// wrap attaches a freshly built buffer, reusing the shared empty and
// applying the collapse policy to composite results.
func wrap(b *buffer.Buffer) *Str {
	if b.Len() == 0 {
		return emptyStr
	}
	s := &Str{buf: b}
	s.maybeCollapse()
	return s
}
