package lazystr

import "github.com/dshills/lazystr/internal/buffer"

// Concat returns the string s followed by t without copying either.
// Joining an empty operand returns the other operand itself. Chains of
// Concat stay balanced, so a K-way join built pairwise still reads in
// O(log K) per codepoint.
func (s *Str) Concat(t *Str) *Str {
	if t.buf.Len() == 0 {
		return s
	}
	if s.buf.Len() == 0 {
		return t
	}
	return wrap(buffer.NewConcat(s.buf, t.buf))
}

// Join concatenates parts in order into one string, building a balanced
// tree directly so the result has depth O(log K) for K parts. A nil or
// empty parts list yields the empty string; a single part is returned
// as is.
func Join(parts []*Str) *Str {
	bufs := make([]*buffer.Buffer, 0, len(parts))
	for _, p := range parts {
		if p.buf.Len() > 0 {
			bufs = append(bufs, p.buf)
		}
	}
	switch len(bufs) {
	case 0:
		return emptyStr
	case 1:
		for _, p := range parts {
			if p.buf.Len() > 0 {
				return p
			}
		}
	}
	return wrap(buffer.JoinMany(bufs))
}

// JoinSep concatenates parts with sep between consecutive parts.
func JoinSep(sep *Str, parts []*Str) *Str {
	if sep.buf.Len() == 0 || len(parts) < 2 {
		return Join(parts)
	}

	interleaved := make([]*Str, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			interleaved = append(interleaved, sep)
		}
		interleaved = append(interleaved, p)
	}
	return Join(interleaved)
}
