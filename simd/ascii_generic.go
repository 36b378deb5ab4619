package simd

import (
	"encoding/binary"
)

// hi8 has the high bit of every byte lane set. ASCII bytes have bit 7 clear
// (0x00-0x7F), so chunk&hi8 != 0 means some lane holds a non-ASCII byte.
const hi8 = uint64(0x8080808080808080)

// isASCIIGeneric implements pure Go ASCII detection using SWAR.
// It processes 8 bytes at a time using uint64 bitwise operations.
//
// Algorithm:
//  1. Read 8 bytes from data as uint64
//  2. AND with 0x8080808080808080 to extract high bits
//  3. If result != 0, at least one byte has high bit set (non-ASCII)
//  4. If result == 0 for all chunks, all bytes are ASCII
func isASCIIGeneric(data []byte) bool {
	dataLen := len(data)

	// For small inputs, byte-by-byte is simpler and has no setup overhead
	if dataLen < 8 {
		for i := 0; i < dataLen; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	idx := 0
	for idx+8 <= dataLen {
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return false
		}
		idx += 8
	}

	// Remaining 0-7 bytes
	for idx < dataLen {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}

	return true
}

// isASCIIWide checks 32 bytes per iteration by OR-ing four words before the
// single high-bit test, then hands the tail to isASCIIGeneric.
func isASCIIWide(data []byte) bool {
	idx := 0
	for idx+32 <= len(data) {
		w := binary.LittleEndian.Uint64(data[idx:]) |
			binary.LittleEndian.Uint64(data[idx+8:]) |
			binary.LittleEndian.Uint64(data[idx+16:]) |
			binary.LittleEndian.Uint64(data[idx+24:])
		if w&hi8 != 0 {
			return false
		}
		idx += 32
	}
	return isASCIIGeneric(data[idx:])
}

// FirstNonASCII returns the index of the first non-ASCII byte, or -1 if all
// bytes are ASCII.
func FirstNonASCII(data []byte) int {
	idx := 0
	for idx+8 <= len(data) {
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			break
		}
		idx += 8
	}
	for ; idx < len(data); idx++ {
		if data[idx] >= 0x80 {
			return idx
		}
	}
	return -1
}
