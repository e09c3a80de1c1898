package buffer

// NewView builds a window over src selecting the progression
// src[start], src[start+step], ... for the given element count. Bounds
// must already be normalized to src's coordinate space and step must be
// nonzero.
//
// A view over a view composes into a single view over the underlying
// source, so chains of slicing never deepen the structure.
func NewView(src *Buffer, start, step, length int) *Buffer {
	if length == 0 {
		return empty
	}
	if start == 0 && step == 1 && length == src.Len() {
		return src
	}

	// Tiny results cost more as views than as leaves.
	if length == 1 {
		return NewLeafRunes([]rune{src.RuneAt(start)})
	}

	if src.kind == KindView {
		start = src.start + start*src.step
		step *= src.step
		src = src.src
	}

	return &Buffer{
		kind:   KindView,
		src:    src,
		start:  start,
		step:   step,
		length: length,
	}
}

// ViewSource exposes the view's decomposition for algorithms that walk
// the structure. It must only be called on a view.
func (b *Buffer) ViewSource() (src *Buffer, start, step int) {
	return b.src, b.start, b.step
}
