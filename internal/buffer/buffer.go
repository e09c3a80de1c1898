package buffer

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

// Kind discriminates the four buffer representations. The set is closed:
// every algorithm in this package switches exhaustively over it.
type Kind uint8

const (
	// KindLeaf owns a contiguous codepoint array at a fixed storage width.
	KindLeaf Kind = iota

	// KindView is a (start, step, length) window over another buffer.
	KindView

	// KindConcat is an internal node holding a left and a right buffer.
	KindConcat

	// KindRepeat represents its base repeated count times.
	KindRepeat
)

// Width is the storage width of a leaf: the narrowest element size that
// losslessly holds every codepoint in the leaf.
type Width uint8

const (
	// Width1 stores codepoints below 0x100 one byte each.
	Width1 Width = 1

	// Width2 stores codepoints below 0x10000 two bytes each.
	Width2 Width = 2

	// Width4 stores arbitrary codepoints four bytes each.
	Width4 Width = 4
)

// Buffer is a tagged union over the four representations. Content is
// immutable after construction; only Collapse may swap the representation
// for an equivalent leaf. Children and view sources are shared, never
// copied, so buffers form a DAG.
type Buffer struct {
	kind Kind

	// Cached content hash. Zero means not yet computed; computed hashes
	// are remapped away from zero. Collapse never touches it because the
	// hash depends on content only.
	hash atomic.Uint64

	// Leaf fields. Exactly one of b8/b16/b32 is in use, selected by width.
	width Width
	b8    []byte
	b16   []uint16
	b32   []rune

	// View fields. start and step address the source's coordinate space;
	// element i of the view is src[start+i*step].
	src   *Buffer
	start int
	step  int

	// Concat fields.
	left   *Buffer
	right  *Buffer
	height int

	// Repeat fields.
	base  *Buffer
	count int

	// Cached logical length for the composite kinds.
	length int
}

// empty is the canonical empty buffer shared by every operation that
// produces a zero-length result.
var empty = &Buffer{kind: KindLeaf, width: Width1}

// Empty returns the canonical empty buffer.
func Empty() *Buffer {
	return empty
}

// NewLeaf builds a leaf from a string, choosing the narrowest width that
// holds every codepoint.
func NewLeaf(s string) *Buffer {
	if len(s) == 0 {
		return empty
	}

	// All-ASCII fast path: bytes are codepoints.
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return &Buffer{kind: KindLeaf, width: Width1, b8: []byte(s)}
	}

	return NewLeafRunes([]rune(s))
}

// NewLeafRunes builds a leaf from a rune slice, choosing the narrowest
// width. The slice is not retained unless it is already the narrowest
// representation.
func NewLeafRunes(rs []rune) *Buffer {
	if len(rs) == 0 {
		return empty
	}

	var max rune
	for _, r := range rs {
		if r > max {
			max = r
		}
	}

	switch {
	case max < 0x100:
		b := make([]byte, len(rs))
		for i, r := range rs {
			b[i] = byte(r)
		}
		return &Buffer{kind: KindLeaf, width: Width1, b8: b}
	case max < 0x10000:
		b := make([]uint16, len(rs))
		for i, r := range rs {
			b[i] = uint16(r)
		}
		return &Buffer{kind: KindLeaf, width: Width2, b16: b}
	default:
		b := make([]rune, len(rs))
		copy(b, rs)
		return &Buffer{kind: KindLeaf, width: Width4, b32: b}
	}
}

// Kind returns the current representation kind.
func (b *Buffer) Kind() Kind {
	return b.kind
}

// IsLeaf reports whether the buffer is currently leaf-backed.
func (b *Buffer) IsLeaf() bool {
	return b.kind == KindLeaf
}

// Width returns the storage width. A leaf answers its own width; a
// composite answers the widest of its constituents without scanning.
func (b *Buffer) Width() Width {
	switch b.kind {
	case KindLeaf:
		return b.width
	case KindView:
		return b.src.Width()
	case KindConcat:
		lw, rw := b.left.Width(), b.right.Width()
		if lw > rw {
			return lw
		}
		return rw
	case KindRepeat:
		return b.base.Width()
	}
	return Width1
}

// Len returns the number of codepoints.
func (b *Buffer) Len() int {
	if b.kind == KindLeaf {
		switch b.width {
		case Width1:
			return len(b.b8)
		case Width2:
			return len(b.b16)
		default:
			return len(b.b32)
		}
	}
	return b.length
}

// RuneAt returns the codepoint at index i. The index must be in
// [0, Len()); callers validate before descending.
func (b *Buffer) RuneAt(i int) rune {
	for {
		switch b.kind {
		case KindLeaf:
			switch b.width {
			case Width1:
				return rune(b.b8[i])
			case Width2:
				return rune(b.b16[i])
			default:
				return b.b32[i]
			}
		case KindView:
			i = b.start + i*b.step
			b = b.src
		case KindConcat:
			if ll := b.left.Len(); i < ll {
				b = b.left
			} else {
				i -= ll
				b = b.right
			}
		case KindRepeat:
			i %= b.base.Len()
			b = b.base
		}
	}
}

// CopyRange copies len(dst) codepoints starting at logical index start
// into dst. The requested range must lie within the buffer.
func (b *Buffer) CopyRange(dst []rune, start int) {
	if len(dst) == 0 {
		return
	}

	switch b.kind {
	case KindLeaf:
		switch b.width {
		case Width1:
			for i := range dst {
				dst[i] = rune(b.b8[start+i])
			}
		case Width2:
			for i := range dst {
				dst[i] = rune(b.b16[start+i])
			}
		default:
			copy(dst, b.b32[start:start+len(dst)])
		}

	case KindView:
		if b.step == 1 {
			b.src.CopyRange(dst, b.start+start)
			return
		}
		for i := range dst {
			dst[i] = b.src.RuneAt(b.start + (start+i)*b.step)
		}

	case KindConcat:
		ll := b.left.Len()
		if start < ll {
			n := ll - start
			if n > len(dst) {
				n = len(dst)
			}
			b.left.CopyRange(dst[:n], start)
			if n < len(dst) {
				b.right.CopyRange(dst[n:], 0)
			}
			return
		}
		b.right.CopyRange(dst, start-ll)

	case KindRepeat:
		// Copy period by period so each stretch is a single pass over
		// the base instead of a modulo per codepoint.
		period := b.base.Len()
		off := start % period
		copied := 0
		for copied < len(dst) {
			n := period - off
			if n > len(dst)-copied {
				n = len(dst) - copied
			}
			b.base.CopyRange(dst[copied:copied+n], off)
			copied += n
			off = 0
		}
	}
}

// Materialize returns a fresh leaf owning a copy of the codepoints
// selected by (start, stop, step) over this buffer. Bounds must already
// be normalized; step must be nonzero.
func (b *Buffer) Materialize(start, stop, step int) *Buffer {
	n := progressionLen(start, stop, step)
	if n == 0 {
		return empty
	}

	rs := make([]rune, n)
	if step == 1 {
		b.CopyRange(rs, start)
	} else {
		for i := 0; i < n; i++ {
			rs[i] = b.RuneAt(start + i*step)
		}
	}
	return NewLeafRunes(rs)
}

// String materializes the full content.
func (b *Buffer) String() string {
	n := b.Len()
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(n)
	b.appendTo(&sb)
	return sb.String()
}

// appendTo writes the buffer's content into sb without intermediate
// allocation for the common leaf layouts.
func (b *Buffer) appendTo(sb *strings.Builder) {
	switch b.kind {
	case KindLeaf:
		switch b.width {
		case Width1:
			for _, c := range b.b8 {
				sb.WriteRune(rune(c))
			}
		case Width2:
			for _, c := range b.b16 {
				sb.WriteRune(rune(c))
			}
		default:
			for _, r := range b.b32 {
				sb.WriteRune(r)
			}
		}
	case KindView:
		n := b.length
		for i := 0; i < n; i++ {
			sb.WriteRune(b.src.RuneAt(b.start + i*b.step))
		}
	case KindConcat:
		b.left.appendTo(sb)
		b.right.appendTo(sb)
	case KindRepeat:
		for i := 0; i < b.count; i++ {
			b.base.appendTo(sb)
		}
	}
}

// progressionLen counts the elements of the arithmetic progression from
// start toward stop with the given nonzero step.
func progressionLen(start, stop, step int) int {
	if step > 0 {
		if start >= stop {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if start <= stop {
		return 0
	}
	neg := -step
	return (start - stop + neg - 1) / neg
}
