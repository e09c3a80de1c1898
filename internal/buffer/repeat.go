package buffer

// NewRepeat represents base repeated count times. Degenerate shapes are
// canonicalized: count below 1 or an empty base yields the empty buffer,
// count 1 yields the base itself, and a repeat of a repeat folds into a
// single node with the product count.
func NewRepeat(base *Buffer, count int) *Buffer {
	if count <= 0 || base.Len() == 0 {
		return empty
	}
	if count == 1 {
		return base
	}
	if base.kind == KindRepeat {
		count *= base.count
		base = base.base
	}
	return &Buffer{
		kind:   KindRepeat,
		base:   base,
		count:  count,
		length: base.Len() * count,
	}
}

// RepeatParts exposes a repeat's base and count. It must only be called
// on a repeat.
func (b *Buffer) RepeatParts() (base *Buffer, count int) {
	return b.base, b.count
}
