package dfa

// ByteClasses maps each byte value to its equivalence class.
//
// Two bytes belong to the same class if no state of the automaton
// distinguishes them. The table strategy of the code emitter uses the classes
// to shrink each row of its transition array from 256 entries to
// AlphabetLen() entries.
//
// Example for the patterns {"ab", "b"}:
//   - Class 0: bytes 0x00-0x60 (before 'a')
//   - Class 1: 'a'
//   - Class 2: 'b'
//   - Class 3: bytes 0x63-0xff (after 'b')
type ByteClasses struct {
	// classes maps each byte (0-255) to its equivalence class
	classes [256]byte
}

// Get returns the equivalence class for the given byte.
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the total number of equivalence classes.
func (bc *ByteClasses) AlphabetLen() int {
	// Classes are assigned in increasing byte order, so the last byte
	// carries the largest class number.
	return int(bc.classes[255]) + 1
}

// Representatives returns one representative byte per class, in class order.
// Each representative can be used to compute transitions for all bytes in
// that class.
func (bc *ByteClasses) Representatives() []byte {
	reps := make([]byte, 0, bc.AlphabetLen())
	for b := 0; b < 256; b++ {
		if b == 0 || bc.classes[b] != bc.classes[b-1] {
			reps = append(reps, byte(b))
		}
	}
	return reps
}

// ByteClassSet tracks class boundaries while the builder adds transitions.
//
// Algorithm:
//  1. For each transition byte b:
//     - If b > 0: mark b-1 as boundary
//     - Mark b as boundary
//  2. Convert boundaries to classes by incrementing class at each boundary
type ByteClassSet struct {
	// bits is a 256-bit bitset where bit i is set if byte i is a class boundary
	bits [4]uint64
}

// SetRange marks a byte range [start, end] as having distinct transitions.
func (bcs *ByteClassSet) SetRange(start, end byte) {
	if start > 0 {
		bcs.setBit(start - 1)
	}
	bcs.setBit(end)
}

// SetByte marks a single byte as having a distinct transition.
func (bcs *ByteClassSet) SetByte(b byte) {
	bcs.SetRange(b, b)
}

func (bcs *ByteClassSet) setBit(b byte) {
	bcs.bits[b/64] |= 1 << (b % 64)
}

func (bcs *ByteClassSet) getBit(b byte) bool {
	return bcs.bits[b/64]&(1<<(b%64)) != 0
}

// ByteClasses converts the boundary set into a ByteClasses lookup table.
func (bcs *ByteClassSet) ByteClasses() ByteClasses {
	var bc ByteClasses
	class := byte(0)

	for b := 0; b < 256; b++ {
		bc.classes[b] = class
		if bcs.getBit(byte(b)) {
			class++
		}
	}

	return bc
}
