package lazystr

import "testing"

func TestClassifyPredicates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		pred func(*Str) bool
		want bool
	}{
		{"space-true", " \t\n", (*Str).IsSpace, true},
		{"space-mixed", " a ", (*Str).IsSpace, false},
		{"space-empty", "", (*Str).IsSpace, false},
		{"alpha-true", "abcXYZ", (*Str).IsAlpha, true},
		{"alpha-unicode", "é世", (*Str).IsAlpha, true},
		{"alpha-with-digit", "abc1", (*Str).IsAlpha, false},
		{"alpha-empty", "", (*Str).IsAlpha, false},
		{"digit-true", "0123", (*Str).IsDigit, true},
		{"digit-mixed", "12a", (*Str).IsDigit, false},
		{"decimal-arabic-indic", "٠١", (*Str).IsDecimal, true},
		{"numeric-roman", "ⅠⅡ", (*Str).IsNumeric, true},
		{"numeric-roman-not-digit", "ⅠⅡ", (*Str).IsDigit, false},
		{"alnum-true", "abc123", (*Str).IsAlnum, true},
		{"alnum-with-space", "abc 123", (*Str).IsAlnum, false},
		{"lower-true", "hello", (*Str).IsLower, true},
		{"lower-with-uncased", "hello, world!", (*Str).IsLower, true},
		{"lower-with-upper", "Hello", (*Str).IsLower, false},
		{"lower-no-cased", "123!", (*Str).IsLower, false},
		{"upper-true", "HELLO", (*Str).IsUpper, true},
		{"upper-with-uncased", "HELLO 123", (*Str).IsUpper, true},
		{"upper-with-lower", "HELLo", (*Str).IsUpper, false},
		{"title-true", "Hello World", (*Str).IsTitle, true},
		{"title-lower-start", "hello World", (*Str).IsTitle, false},
		{"title-inner-upper", "HeLlo", (*Str).IsTitle, false},
		{"title-uncased-breaks", "Hello-World", (*Str).IsTitle, true},
		{"title-no-cased", "123", (*Str).IsTitle, false},
		{"title-empty", "", (*Str).IsTitle, false},
		{"printable-true", "abc 123!", (*Str).IsPrintable, true},
		{"printable-control", "ab\x01c", (*Str).IsPrintable, false},
		{"printable-empty", "", (*Str).IsPrintable, true},
		{"ascii-true", "plain text 42", (*Str).IsASCII, true},
		{"ascii-false", "café", (*Str).IsASCII, false},
		{"ascii-empty", "", (*Str).IsASCII, true},
		{"ident-simple", "foo_bar2", (*Str).IsIdentifier, true},
		{"ident-underscore-start", "_x", (*Str).IsIdentifier, true},
		{"ident-digit-start", "2fast", (*Str).IsIdentifier, false},
		{"ident-space", "a b", (*Str).IsIdentifier, false},
		{"ident-empty", "", (*Str).IsIdentifier, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(New(tt.in)); got != tt.want {
				t.Errorf("%s(%q) = %v, want %v", tt.name, tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyOnComposites(t *testing.T) {
	digits, _ := Repeat(New("123"), 1000)
	if !digits.IsDigit() {
		t.Error("IsDigit = false on repeated digits")
	}
	if !digits.Concat(New("456")).IsDigit() {
		t.Error("IsDigit = false on join of digit strings")
	}
	if digits.Concat(New("x")).IsDigit() {
		t.Error("IsDigit = true with a trailing letter")
	}

	sliced := New("abc123def").Slice(3, 6)
	if !sliced.IsDigit() {
		t.Error("IsDigit = false on a digit window")
	}
}

func TestIsTitleOnNestedComposites(t *testing.T) {
	// Counts this large are only tractable because a repeat is scanned
	// at most twice wherever it sits in the tree.
	huge, err := Repeat(New("Ab "), 1<<30)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		s    *Str
		want bool
	}{
		{"repeat-under-concat", New("Once ").Concat(huge), true},
		{"repeat-under-concat-bad-tail", huge.Concat(New("end")), false},
		{"concat-seam-violation", New("A").Concat(New("B")), false},
		{"concat-seam-continuation", New("A").Concat(New("b")), true},
		{"repeat-of-concat", mustRepeat(t, New("Xy").Concat(New(" ")), 1<<30), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsTitle(); got != tt.want {
				t.Errorf("IsTitle = %v, want %v", got, tt.want)
			}
		})
	}
}

func mustRepeat(t *testing.T, s *Str, n int) *Str {
	t.Helper()
	r, err := Repeat(s, n)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestIsTitleOnRepeat(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		count int
		want  bool
	}{
		// "Ab " repeated keeps each run starting uppercase.
		{"valid", "Ab ", 1000, true},
		// "Ab" repeated gives "AbAb...": the second A follows a cased
		// b, a violation only visible across the period boundary.
		{"boundary-violation", "Ab", 1000, false},
		{"uncased", "--", 1000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Repeat(New(tt.base), tt.count)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.IsTitle(); got != tt.want {
				t.Errorf("IsTitle(%q * %d) = %v, want %v", tt.base, tt.count, got, tt.want)
			}
		})
	}
}
