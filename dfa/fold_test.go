package dfa

import "testing"

func TestFold(t *testing.T) {
	for b := 0; b < 256; b++ {
		c := byte(b)
		got := Fold(c)
		switch {
		case c >= 'A' && c <= 'Z':
			if got != c+('a'-'A') {
				t.Errorf("Fold(%q) = %q, want lower-case", c, got)
			}
		default:
			if got != c {
				t.Errorf("Fold(0x%02x) = 0x%02x, want identity", c, got)
			}
		}
	}
}

func TestFoldVariants(t *testing.T) {
	tests := []struct {
		in           byte
		lower, upper byte
		ok           bool
	}{
		{'a', 'a', 'A', true},
		{'Z', 'z', 'Z', true},
		{'0', '0', '0', false},
		{'/', '/', '/', false},
		{'@', '@', '@', false}, // just below 'A'
		{'[', '[', '[', false}, // just above 'Z'
		{'`', '`', '`', false}, // just below 'a'
		{'{', '{', '{', false}, // just above 'z'
		{0xC1, 0xC1, 0xC1, false},
	}
	for _, tt := range tests {
		lower, upper, ok := FoldVariants(tt.in)
		if lower != tt.lower || upper != tt.upper || ok != tt.ok {
			t.Errorf("FoldVariants(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, lower, upper, ok, tt.lower, tt.upper, tt.ok)
		}
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Text/Html", "text/html", true},
		{"GET", "get", true},
		{"", "", true},
		{"a", "ab", false},
		{"[", "{", false}, // 0x5B and 0x7B differ only in bit 5 but are not letters
		{"\xc3\x89", "\xc3\xa9", false},
	}
	for _, tt := range tests {
		if got := EqualFold([]byte(tt.a), []byte(tt.b)); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAppendFold(t *testing.T) {
	got := AppendFold([]byte("x:"), []byte("Content-TYPE"))
	if string(got) != "x:content-type" {
		t.Errorf("AppendFold = %q", got)
	}
}
