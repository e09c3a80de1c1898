package buffer

// heightOf treats every non-concat buffer as a tree of height 1, so
// balancing only sees the concat skeleton.
func heightOf(b *Buffer) int {
	if b.kind == KindConcat {
		return b.height
	}
	return 1
}

func newNode(l, r *Buffer) *Buffer {
	h := heightOf(l)
	if hr := heightOf(r); hr > h {
		h = hr
	}
	return &Buffer{
		kind:   KindConcat,
		left:   l,
		right:  r,
		height: h + 1,
		length: l.Len() + r.Len(),
	}
}

// NewConcat joins two buffers, eliding empty operands and rotating so
// the resulting concat skeleton stays height-balanced. Neither operand
// is copied.
func NewConcat(l, r *Buffer) *Buffer {
	if l.Len() == 0 {
		return r
	}
	if r.Len() == 0 {
		return l
	}
	return balanced(l, r)
}

// balanced is AVL-style concatenation: when one side is more than one
// level taller, the join point is pushed down that side's spine with
// single or double rotations.
func balanced(l, r *Buffer) *Buffer {
	hl, hr := heightOf(l), heightOf(r)

	if hl > hr+1 && l.kind == KindConcat {
		if heightOf(l.left) >= heightOf(l.right) {
			return newNode(l.left, balanced(l.right, r))
		}
		if lr := l.right; lr.kind == KindConcat {
			return newNode(newNode(l.left, lr.left), balanced(lr.right, r))
		}
	}

	if hr > hl+1 && r.kind == KindConcat {
		if heightOf(r.right) >= heightOf(r.left) {
			return newNode(balanced(l, r.left), r.right)
		}
		if rl := r.left; rl.kind == KindConcat {
			return newNode(balanced(l, rl.left), newNode(rl.right, r.right))
		}
	}

	return newNode(l, r)
}

// JoinMany joins parts into a balanced binary tree by recursive halving,
// so K parts produce a tree of depth O(log K) regardless of join order.
func JoinMany(parts []*Buffer) *Buffer {
	switch len(parts) {
	case 0:
		return empty
	case 1:
		return parts[0]
	case 2:
		return NewConcat(parts[0], parts[1])
	}
	mid := len(parts) / 2
	return NewConcat(JoinMany(parts[:mid]), JoinMany(parts[mid:]))
}

// Children exposes a concat's operands. It must only be called on a
// concat.
func (b *Buffer) Children() (left, right *Buffer) {
	return b.left, b.right
}

// Height returns the concat skeleton height, counting any non-concat
// buffer as 1.
func (b *Buffer) Height() int {
	return heightOf(b)
}
