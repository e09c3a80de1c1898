package buffer

import (
	"testing"
)

func TestNewLeafWidths(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width Width
	}{
		{"ascii", "hello", Width1},
		{"latin1", "café", Width1},
		{"bmp", "Жук", Width2},
		{"astral", "a\U0001F600b", Width4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewLeaf(tt.in)
			if b.Width() != tt.width {
				t.Errorf("width = %d, want %d", b.Width(), tt.width)
			}
			if got := b.String(); got != tt.in {
				t.Errorf("String() = %q, want %q", got, tt.in)
			}
			if b.Len() != len([]rune(tt.in)) {
				t.Errorf("Len() = %d, want %d", b.Len(), len([]rune(tt.in)))
			}
		})
	}
}

func TestEmptyCanonical(t *testing.T) {
	if NewLeaf("") != Empty() {
		t.Error("NewLeaf(\"\") did not return the shared empty buffer")
	}
	if NewLeafRunes(nil) != Empty() {
		t.Error("NewLeafRunes(nil) did not return the shared empty buffer")
	}
	if Empty().Len() != 0 {
		t.Errorf("Empty().Len() = %d", Empty().Len())
	}
}

func TestRuneAtAcrossShapes(t *testing.T) {
	// (("abcdef"[1:5]) + ("XY" * 3)) exercises every kind on the path.
	leaf := NewLeaf("abcdef")
	view := NewView(leaf, 1, 1, 4)                 // bcde
	rep := NewRepeat(NewLeaf("XY"), 3)             // XYXYXY
	cat := NewConcat(view, rep)                    // bcdeXYXYXY
	want := "bcdeXYXYXY"

	if cat.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", cat.Len(), len(want))
	}
	for i, r := range want {
		if got := cat.RuneAt(i); got != r {
			t.Errorf("RuneAt(%d) = %q, want %q", i, got, r)
		}
	}
	if got := cat.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCopyRange(t *testing.T) {
	rep := NewRepeat(NewLeaf("abc"), 4) // abcabcabcabc
	full := "abcabcabcabc"
	for start := 0; start < len(full); start++ {
		for n := 0; n <= len(full)-start; n++ {
			dst := make([]rune, n)
			rep.CopyRange(dst, start)
			if got, want := string(dst), full[start:start+n]; got != want {
				t.Fatalf("CopyRange(start=%d, n=%d) = %q, want %q", start, n, got, want)
			}
		}
	}
}

func TestViewComposition(t *testing.T) {
	leaf := NewLeaf("0123456789")
	outer := NewView(NewView(leaf, 1, 1, 8), 1, 2, 3) // "246"
	if got := outer.String(); got != "246" {
		t.Fatalf("composed view = %q, want %q", got, "246")
	}
	src, start, step := outer.ViewSource()
	if src != leaf {
		t.Error("view over view did not compose onto the original source")
	}
	if start != 2 || step != 2 {
		t.Errorf("composed (start, step) = (%d, %d), want (2, 2)", start, step)
	}
}

func TestViewNegativeStep(t *testing.T) {
	leaf := NewLeaf("abcdef")
	rev := NewView(leaf, 5, -1, 6)
	if got := rev.String(); got != "fedcba" {
		t.Errorf("reverse view = %q, want %q", got, "fedcba")
	}
	every2 := NewView(leaf, 5, -2, 3)
	if got := every2.String(); got != "fdb" {
		t.Errorf("step -2 view = %q, want %q", got, "fdb")
	}
}

func TestConcatElidesEmpty(t *testing.T) {
	leaf := NewLeaf("abc")
	if NewConcat(leaf, Empty()) != leaf {
		t.Error("concat with empty right operand did not return the left")
	}
	if NewConcat(Empty(), leaf) != leaf {
		t.Error("concat with empty left operand did not return the right")
	}
}

func TestJoinManyBalanced(t *testing.T) {
	parts := make([]*Buffer, 1024)
	for i := range parts {
		parts[i] = NewLeaf("x")
	}
	b := JoinMany(parts)
	if b.Len() != 1024 {
		t.Fatalf("Len() = %d, want 1024", b.Len())
	}
	// A balanced tree of 1024 single-codepoint leaves has height 11;
	// leave slack for rotation placement but reject linear chains.
	if h := b.Height(); h > 15 {
		t.Errorf("Height() = %d, want a balanced tree", h)
	}
}

func TestPairwiseConcatStaysBalanced(t *testing.T) {
	b := NewLeaf("x")
	for i := 0; i < 1023; i++ {
		b = NewConcat(b, NewLeaf("x"))
	}
	if b.Len() != 1024 {
		t.Fatalf("Len() = %d, want 1024", b.Len())
	}
	if h := b.Height(); h > 15 {
		t.Errorf("Height() = %d after 1023 appends, want a balanced tree", h)
	}
	// Prepending is the mirror case.
	b = NewLeaf("x")
	for i := 0; i < 1023; i++ {
		b = NewConcat(NewLeaf("x"), b)
	}
	if h := b.Height(); h > 15 {
		t.Errorf("Height() = %d after 1023 prepends, want a balanced tree", h)
	}
}

func TestRepeatCanonical(t *testing.T) {
	leaf := NewLeaf("ab")
	if NewRepeat(leaf, 0) != Empty() {
		t.Error("repeat count 0 is not the empty buffer")
	}
	if NewRepeat(Empty(), 5) != Empty() {
		t.Error("repeat of an empty base is not the empty buffer")
	}
	if NewRepeat(leaf, 1) != leaf {
		t.Error("repeat count 1 did not return the base")
	}
	nested := NewRepeat(NewRepeat(leaf, 3), 4)
	base, count := nested.RepeatParts()
	if base != leaf || count != 12 {
		t.Errorf("nested repeat = (%v, %d), want base with count 12", base, count)
	}
	if nested.Len() != 24 {
		t.Errorf("Len() = %d, want 24", nested.Len())
	}
}

func TestMaterialize(t *testing.T) {
	rep := NewRepeat(NewLeaf("abc"), 3)
	tests := []struct {
		name              string
		start, stop, step int
		want              string
	}{
		{"full", 0, 9, 1, "abcabcabc"},
		{"middle", 2, 7, 1, "cabca"},
		{"every-second", 0, 9, 2, "acbac"},
		{"reverse", 8, -1, -1, "cbacbacba"},
		{"empty", 4, 4, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := rep.Materialize(tt.start, tt.stop, tt.step)
			if !m.IsLeaf() {
				t.Error("Materialize did not return a leaf")
			}
			if got := m.String(); got != tt.want {
				t.Errorf("Materialize(%d, %d, %d) = %q, want %q",
					tt.start, tt.stop, tt.step, got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	leaf := NewLeaf("ab")
	tests := []struct {
		name string
		b    *Buffer
		want string
	}{
		{"leaf", leaf, `"ab"`},
		{"concat", NewConcat(leaf, NewLeaf("cd")), `("ab" + "cd")`},
		{"repeat", NewRepeat(leaf, 3), `("ab" * 3)`},
		{"view", NewView(NewLeaf("abcdef"), 1, 1, 4), `"abcdef"[1:5]`},
		{"stepped-view", NewView(NewLeaf("abcdef"), 0, 2, 3), `"abcdef"[0:6:2]`},
		{"overshooting-step", NewView(NewLeaf("abcde"), 0, 2, 3), `"abcde"[0:5:2]`},
		{"reverse-view", NewView(NewLeaf("abcdef"), 5, -1, 6), `"abcdef"[5::-1]`},
		{"reverse-window", NewView(NewLeaf("abcdef"), 4, -2, 2), `"abcdef"[4:0:-2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Describe(); got != tt.want {
				t.Errorf("Describe() = %s, want %s", got, tt.want)
			}
		})
	}
}
