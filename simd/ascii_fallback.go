//go:build !amd64

package simd

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
// Returns true if all bytes have the high bit clear (values 0x00-0x7F).
//
// On non-AMD64 platforms, this function uses the pure Go SWAR implementation,
// which processes 8 bytes at a time using uint64 bitwise operations.
//
// See isASCIIGeneric for implementation details.
func IsASCII(data []byte) bool {
	return isASCIIGeneric(data)
}
