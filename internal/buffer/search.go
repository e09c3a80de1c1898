package buffer

import "bytes"

// FindRune returns the smallest index in [start, end) whose codepoint
// equals c, or -1. The range must be normalized to [0, Len()].
//
// The scan is structural: views translate the range into source
// coordinates, concats split it across their children, and repeats
// reduce it to at most two scans of the base using period arithmetic.
func FindRune(b *Buffer, c rune, start, end int) int {
	if start >= end {
		return -1
	}

	switch b.kind {
	case KindLeaf:
		switch b.width {
		case Width1:
			if c >= 0x100 {
				return -1
			}
			if i := bytes.IndexByte(b.b8[start:end], byte(c)); i >= 0 {
				return start + i
			}
			return -1
		case Width2:
			if c >= 0x10000 {
				return -1
			}
			u := uint16(c)
			for i := start; i < end; i++ {
				if b.b16[i] == u {
					return i
				}
			}
			return -1
		default:
			for i := start; i < end; i++ {
				if b.b32[i] == c {
					return i
				}
			}
			return -1
		}

	case KindView:
		if b.step == 1 {
			if i := FindRune(b.src, c, b.start+start, b.start+end); i >= 0 {
				return i - b.start
			}
			return -1
		}
		for i := start; i < end; i++ {
			if b.src.RuneAt(b.start+i*b.step) == c {
				return i
			}
		}
		return -1

	case KindConcat:
		ll := b.left.Len()
		if start < ll {
			stop := end
			if stop > ll {
				stop = ll
			}
			if i := FindRune(b.left, c, start, stop); i >= 0 {
				return i
			}
		}
		if end > ll {
			from := start - ll
			if from < 0 {
				from = 0
			}
			if i := FindRune(b.right, c, from, end-ll); i >= 0 {
				return ll + i
			}
		}
		return -1

	default: // KindRepeat
		return repeatFind(b, start, end, func(from, to int) int {
			return FindRune(b.base, c, from, to)
		})
	}
}

// RFindRune returns the largest index in [start, end) whose codepoint
// equals c, or -1.
func RFindRune(b *Buffer, c rune, start, end int) int {
	if start >= end {
		return -1
	}

	switch b.kind {
	case KindLeaf:
		switch b.width {
		case Width1:
			if c >= 0x100 {
				return -1
			}
			if i := bytes.LastIndexByte(b.b8[start:end], byte(c)); i >= 0 {
				return start + i
			}
			return -1
		case Width2:
			if c >= 0x10000 {
				return -1
			}
			u := uint16(c)
			for i := end - 1; i >= start; i-- {
				if b.b16[i] == u {
					return i
				}
			}
			return -1
		default:
			for i := end - 1; i >= start; i-- {
				if b.b32[i] == c {
					return i
				}
			}
			return -1
		}

	case KindView:
		if b.step == 1 {
			if i := RFindRune(b.src, c, b.start+start, b.start+end); i >= 0 {
				return i - b.start
			}
			return -1
		}
		for i := end - 1; i >= start; i-- {
			if b.src.RuneAt(b.start+i*b.step) == c {
				return i
			}
		}
		return -1

	case KindConcat:
		ll := b.left.Len()
		if end > ll {
			from := start - ll
			if from < 0 {
				from = 0
			}
			if i := RFindRune(b.right, c, from, end-ll); i >= 0 {
				return ll + i
			}
		}
		if start < ll {
			stop := end
			if stop > ll {
				stop = ll
			}
			if i := RFindRune(b.left, c, start, stop); i >= 0 {
				return i
			}
		}
		return -1

	default: // KindRepeat
		return repeatRFind(b, start, end, func(from, to int) int {
			return RFindRune(b.base, c, from, to)
		})
	}
}

// FindFunc returns the smallest index in [start, end) whose codepoint
// satisfies pred, or -1. Structure handling matches FindRune.
func FindFunc(b *Buffer, pred func(rune) bool, start, end int) int {
	if start >= end {
		return -1
	}

	switch b.kind {
	case KindLeaf:
		for i := start; i < end; i++ {
			if pred(b.RuneAt(i)) {
				return i
			}
		}
		return -1

	case KindView:
		if b.step == 1 {
			if i := FindFunc(b.src, pred, b.start+start, b.start+end); i >= 0 {
				return i - b.start
			}
			return -1
		}
		for i := start; i < end; i++ {
			if pred(b.src.RuneAt(b.start + i*b.step)) {
				return i
			}
		}
		return -1

	case KindConcat:
		ll := b.left.Len()
		if start < ll {
			stop := end
			if stop > ll {
				stop = ll
			}
			if i := FindFunc(b.left, pred, start, stop); i >= 0 {
				return i
			}
		}
		if end > ll {
			from := start - ll
			if from < 0 {
				from = 0
			}
			if i := FindFunc(b.right, pred, from, end-ll); i >= 0 {
				return ll + i
			}
		}
		return -1

	default: // KindRepeat
		return repeatFind(b, start, end, func(from, to int) int {
			return FindFunc(b.base, pred, from, to)
		})
	}
}

// RFindFunc returns the largest index in [start, end) whose codepoint
// satisfies pred, or -1.
func RFindFunc(b *Buffer, pred func(rune) bool, start, end int) int {
	if start >= end {
		return -1
	}

	switch b.kind {
	case KindLeaf:
		for i := end - 1; i >= start; i-- {
			if pred(b.RuneAt(i)) {
				return i
			}
		}
		return -1

	case KindView:
		if b.step == 1 {
			if i := RFindFunc(b.src, pred, b.start+start, b.start+end); i >= 0 {
				return i - b.start
			}
			return -1
		}
		for i := end - 1; i >= start; i-- {
			if pred(b.src.RuneAt(b.start + i*b.step)) {
				return i
			}
		}
		return -1

	case KindConcat:
		ll := b.left.Len()
		if end > ll {
			from := start - ll
			if from < 0 {
				from = 0
			}
			if i := RFindFunc(b.right, pred, from, end-ll); i >= 0 {
				return ll + i
			}
		}
		if start < ll {
			stop := end
			if stop > ll {
				stop = ll
			}
			if i := RFindFunc(b.left, pred, start, stop); i >= 0 {
				return i
			}
		}
		return -1

	default: // KindRepeat
		return repeatRFind(b, start, end, func(from, to int) int {
			return RFindFunc(b.base, pred, from, to)
		})
	}
}

// repeatFind searches a repeat's range by scanning the base at most
// twice. scan searches base offsets [from, to) and returns a base
// offset or -1.
//
// With the range split into period-sized blocks there are three shapes:
// a range inside one block is one scan; a range touching two blocks is
// the tail of the first then the head of the second; a range spanning
// more covers at least one full block, so the tail of the first block
// and the head wrapped into the next block together see every base
// offset, each at its earliest occurrence.
func repeatFind(b *Buffer, start, end int, scan func(from, to int) int) int {
	period := b.base.Len()
	firstBlock := start / period
	lastBlock := (end - 1) / period
	offStart := start - firstBlock*period
	offEnd := end - lastBlock*period

	if firstBlock == lastBlock {
		if i := scan(offStart, offEnd); i >= 0 {
			return firstBlock*period + i
		}
		return -1
	}

	if i := scan(offStart, period); i >= 0 {
		return firstBlock*period + i
	}
	head := offStart
	if lastBlock == firstBlock+1 && offEnd < head {
		head = offEnd
	}
	if i := scan(0, head); i >= 0 {
		return (firstBlock+1)*period + i
	}
	return -1
}

// repeatRFind is the mirror of repeatFind: the head of the last block,
// then the tail wrapped into the previous block.
func repeatRFind(b *Buffer, start, end int, scan func(from, to int) int) int {
	period := b.base.Len()
	firstBlock := start / period
	lastBlock := (end - 1) / period
	offStart := start - firstBlock*period
	offEnd := end - lastBlock*period

	if firstBlock == lastBlock {
		if i := scan(offStart, offEnd); i >= 0 {
			return firstBlock*period + i
		}
		return -1
	}

	if i := scan(0, offEnd); i >= 0 {
		return lastBlock*period + i
	}
	tail := offEnd
	if lastBlock == firstBlock+1 && offStart > tail {
		tail = offStart
	}
	if i := scan(tail, period); i >= 0 {
		return (lastBlock-1)*period + i
	}
	return -1
}
