package types

import "fmt"

// Register represents a GB Register which is used to hold an 8-bit value.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The word is the canonical storage, the High and Low halves are
// derived from it, so a write through either view is seen by the other.
type RegisterPair struct {
	value uint16
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return r.value
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	r.value = value
}

// High returns the upper Register of the pair.
func (r *RegisterPair) High() Register {
	return Register(r.value >> 8)
}

// Low returns the lower Register of the pair.
func (r *RegisterPair) Low() Register {
	return Register(r.value)
}

// SetHigh replaces the upper Register of the pair.
func (r *RegisterPair) SetHigh(v Register) {
	r.value = uint16(v)<<8 | r.value&0x00FF
}

// SetLow replaces the lower Register of the pair.
func (r *RegisterPair) SetLow(v Register) {
	r.value = r.value&0xFF00 | uint16(v)
}

// Increment increments the pair and returns the value it held before.
func (r *RegisterPair) Increment() uint16 {
	v := r.value
	r.value++
	return v
}

// Decrement decrements the pair and returns the value it held before.
func (r *RegisterPair) Decrement() uint16 {
	v := r.value
	r.value--
	return v
}

// Registers represents the GB CPU registers.
type Registers struct {
	// A is the accumulator.
	A Register
	// F holds the status flags.
	F Flags

	BC RegisterPair
	DE RegisterPair
	HL RegisterPair

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
}

func (r *Registers) B() Register { return r.BC.High() }
func (r *Registers) C() Register { return r.BC.Low() }
func (r *Registers) D() Register { return r.DE.High() }
func (r *Registers) E() Register { return r.DE.Low() }
func (r *Registers) H() Register { return r.HL.High() }
func (r *Registers) L() Register { return r.HL.Low() }

func (r *Registers) SetB(v Register) { r.BC.SetHigh(v) }
func (r *Registers) SetC(v Register) { r.BC.SetLow(v) }
func (r *Registers) SetD(v Register) { r.DE.SetHigh(v) }
func (r *Registers) SetE(v Register) { r.DE.SetLow(v) }
func (r *Registers) SetH(v Register) { r.HL.SetHigh(v) }
func (r *Registers) SetL(v Register) { r.HL.SetLow(v) }

// AF returns the accumulator and flags as a single word.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F.Byte())
}

// SetAF loads the accumulator and flags from a word. The lower
// nibble of F is discarded.
func (r *Registers) SetAF(v uint16) {
	low, high := SplitWord(v)
	r.A = high
	r.F = FlagsFromByte(low)
}

func (r *Registers) String() string {
	return fmt.Sprintf("A: %02x F: %02x B: %02x C: %02x D: %02x E: %02x H: %02x L: %02x SP: %04x PC: %04x [%s]",
		r.A, r.F.Byte(), r.B(), r.C(), r.D(), r.E(), r.H(), r.L(), r.SP, r.PC, r.F)
}
