//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasWideLoads reports a core with 256-bit load paths (AVX2 generation:
	// Intel Haswell, AMD Excavator and later). On such cores the four
	// independent word loads of isASCIIWide retire in parallel.
	hasWideLoads = cpu.X86.HasAVX2
)

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
// Returns true if all bytes have the high bit clear (values 0x00-0x7F).
//
// Performance characteristics (on x86-64):
//   - Small inputs (< 32 bytes): SWAR, 8 bytes at a time
//   - Larger inputs with wide load paths: 32 bytes per iteration
//
// Example:
//
//	if simd.IsASCII([]byte("text/html")) {
//	    // ASCII-only fast path
//	}
func IsASCII(data []byte) bool {
	if len(data) == 0 {
		return true
	}

	if hasWideLoads && len(data) >= 32 {
		return isASCIIWide(data)
	}

	return isASCIIGeneric(data)
}
