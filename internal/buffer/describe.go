package buffer

import (
	"strconv"
	"strings"
)

// Describe renders the buffer's structure: leaves as quoted content,
// views as src[start:stop] with the step appended when it is not 1,
// concats as (left + right), repeats as (base * count).
func (b *Buffer) Describe() string {
	var sb strings.Builder
	b.describe(&sb)
	return sb.String()
}

func (b *Buffer) describe(sb *strings.Builder) {
	switch b.kind {
	case KindLeaf:
		sb.WriteString(strconv.Quote(b.String()))
	case KindView:
		b.src.describe(sb)
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(b.start))
		sb.WriteByte(':')
		// The raw stop start+length*step may overshoot the source for a
		// positive step or fall below zero for a negative one; clamp it
		// into the source, leaving a negative-step stop of the start of
		// the source empty, slice-notation style.
		stop := b.start + b.length*b.step
		if b.step > 0 {
			if n := b.src.Len(); stop > n {
				stop = n
			}
			sb.WriteString(strconv.Itoa(stop))
		} else if stop >= 0 {
			sb.WriteString(strconv.Itoa(stop))
		}
		if b.step != 1 {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(b.step))
		}
		sb.WriteByte(']')
	case KindConcat:
		sb.WriteByte('(')
		b.left.describe(sb)
		sb.WriteString(" + ")
		b.right.describe(sb)
		sb.WriteByte(')')
	case KindRepeat:
		sb.WriteByte('(')
		b.base.describe(sb)
		sb.WriteString(" * ")
		sb.WriteString(strconv.Itoa(b.count))
		sb.WriteByte(')')
	}
}
