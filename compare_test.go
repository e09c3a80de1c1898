package lazystr

import "testing"

func TestEqualAcrossShapes(t *testing.T) {
	rep, _ := Repeat(New("ab"), 3)
	variants := map[string]*Str{
		"flat":   New("ababab"),
		"repeat": rep,
		"joined": New("aba").Concat(New("bab")),
		"window": New("xababab").Slice(1, 7),
	}
	for na, a := range variants {
		for nb, b := range variants {
			if !a.Equal(b) {
				t.Errorf("Equal(%s, %s) = false for identical content", na, nb)
			}
			if a.Hash() != b.Hash() {
				t.Errorf("Hash mismatch between %s and %s", na, nb)
			}
			if a.Compare(b) != 0 {
				t.Errorf("Compare(%s, %s) != 0 for identical content", na, nb)
			}
		}
	}
}

func TestEqualNegative(t *testing.T) {
	a := New("abcdef")
	tests := []struct {
		name string
		b    *Str
	}{
		{"shorter", New("abcde")},
		{"longer", New("abcdefg")},
		{"different", New("abcdeg")},
		{"empty", Empty()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a.Equal(tt.b) {
				t.Errorf("Equal(%q, %q) = true", a.String(), tt.b.String())
			}
		})
	}
}

func TestCompareOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b *Str
		want int
	}{
		{"equal-empty", Empty(), Empty(), 0},
		{"less", New("apple"), New("banana"), -1},
		{"greater", New("cherry"), New("banana"), 1},
		{"prefix-less", New("app"), New("apple"), -1},
		{"codepoint-order", New("a"), New("é"), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reversed Compare = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestHashStableAcrossCollapse(t *testing.T) {
	s := New("abc").Concat(New("def"))
	before := s.Hash()
	s.Collapse()
	if after := s.Hash(); after != before {
		t.Errorf("Hash changed across Collapse: %#x != %#x", after, before)
	}
}
