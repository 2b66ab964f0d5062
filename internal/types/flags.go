package types

import "fmt"

// Flag identifies one of the status flags by its bit position in
// the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags is the unpacked view of the F register. The lower nibble of
// F is not backed by anything and always reads as zero.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// FlagsFromByte unpacks the upper nibble of b.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      b&MaskZero != 0,
		Subtract:  b&MaskSubtract != 0,
		HalfCarry: b&MaskHalfCarry != 0,
		Carry:     b&MaskCarry != 0,
	}
}

// Byte packs the flags into their F register representation.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b |= MaskZero
	}
	if f.Subtract {
		b |= MaskSubtract
	}
	if f.HalfCarry {
		b |= MaskHalfCarry
	}
	if f.Carry {
		b |= MaskCarry
	}
	return b
}

// Get returns the state of the given flag.
func (f Flags) Get(flag Flag) bool {
	switch flag {
	case FlagZero:
		return f.Zero
	case FlagSubtract:
		return f.Subtract
	case FlagHalfCarry:
		return f.HalfCarry
	case FlagCarry:
		return f.Carry
	}
	panic(fmt.Sprintf("invalid flag: %d", flag))
}

// Set sets the given flag to v.
func (f *Flags) Set(flag Flag, v bool) {
	switch flag {
	case FlagZero:
		f.Zero = v
	case FlagSubtract:
		f.Subtract = v
	case FlagHalfCarry:
		f.HalfCarry = v
	case FlagCarry:
		f.Carry = v
	default:
		panic(fmt.Sprintf("invalid flag: %d", flag))
	}
}

// Assign copies the flags selected by mask from src, leaving the
// others untouched. mask is any combination of the Mask constants.
func (f *Flags) Assign(src Flags, mask uint8) {
	*f = FlagsFromByte(f.Byte()&^mask | src.Byte()&mask)
}

// String renders the flags in the ZNHC notation used by most
// instruction references, with '-' for a cleared flag.
func (f Flags) String() string {
	b := []byte("----")
	if f.Zero {
		b[0] = 'Z'
	}
	if f.Subtract {
		b[1] = 'N'
	}
	if f.HalfCarry {
		b[2] = 'H'
	}
	if f.Carry {
		b[3] = 'C'
	}
	return string(b)
}
