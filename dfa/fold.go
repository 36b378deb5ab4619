package dfa

// foldTable maps every byte to its canonical form: ASCII upper-case letters
// become lower-case, everything else maps to itself.
var foldTable = func() [256]byte {
	var t [256]byte
	for i := 0; i < 256; i++ {
		c := byte(i)
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		t[i] = c
	}
	return t
}()

// Fold returns the canonical form of b under ASCII case folding.
// The builder applies it before creating or following a transition and the
// matcher applies it before lookup, so both cases of a letter route to the
// same state.
func Fold(b byte) byte {
	return foldTable[b]
}

// IsFoldable reports whether b is an ASCII letter, i.e. whether b has a
// distinct case variant.
func IsFoldable(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// FoldVariants returns the lower- and upper-case forms of b.
// For bytes that are not ASCII letters both results equal b and ok is false.
func FoldVariants(b byte) (lower, upper byte, ok bool) {
	if !IsFoldable(b) {
		return b, b, false
	}
	lower = foldTable[b]
	return lower, lower - ('a' - 'A'), true
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if foldTable[a[i]] != foldTable[b[i]] {
			return false
		}
	}
	return true
}

// AppendFold appends the folded form of src to dst and returns the result.
func AppendFold(dst, src []byte) []byte {
	for _, c := range src {
		dst = append(dst, foldTable[c])
	}
	return dst
}
