package types

// Word composes a 16-bit value from two bytes in the order they
// appear in the program stream, low byte first.
//
//	Word(0x34, 0x12) == 0x1234
func Word(low, high uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// MakeAddress composes the port-style address used by the LDH family
// of instructions. Note that high ends up in the low byte of the result:
//
//	MakeAddress(0xFF, 0x80) == 0x80FF
//
// This is not the same composition as Word, and the two must not be
// used interchangeably.
func MakeAddress(high, low uint8) uint16 {
	return uint16(low)<<8 | uint16(high)
}

// SplitWord splits w into its low and high bytes.
func SplitWord(w uint16) (low, high uint8) {
	return uint8(w), uint8(w >> 8)
}
