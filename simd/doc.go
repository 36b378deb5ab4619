// Package simd provides word-at-a-time byte scanning helpers.
//
// The automaton builder uses IsASCII and FirstNonASCII to enforce ASCII-only
// pattern sets.
//
// Implementations process 8 bytes per step with SWAR (SIMD Within A Register)
// arithmetic; on x86-64 cores with 256-bit load paths a 32-byte stride is
// selected at package initialization.
package simd
