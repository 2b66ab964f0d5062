// Package alu implements the arithmetic and logic unit of the SM83.
//
// Every function is pure: it takes its operands explicitly and
// returns the result together with the status flags the operation
// produces. Callers decide which of those flags reach the F register.
package alu

import (
	"math/bits"

	"github.com/thelolagemann/sm83/internal/types"
)

// Unsigned is the set of operand widths the ALU works on.
type Unsigned interface {
	~uint8 | ~uint16
}

// masks returns the mask covering the lower half of T and the mask
// covering all of T. For uint8 that is 0x0F/0xFF, for uint16 0xFF/0xFFFF.
func masks[T Unsigned]() (half, full uint32) {
	full = uint32(^T(0))
	width := bits.Len32(full)
	half = 1<<(width/2) - 1
	return half, full
}

func carryIn(carry bool) uint32 {
	if carry {
		return 1
	}
	return 0
}

// Add returns a + b + carry.
//
// Flags:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry out of the lower half (bit 3 for bytes).
//	C - Set if carry out of the top bit.
func Add[T Unsigned](a, b T, carry bool) (T, types.Flags) {
	half, full := masks[T]()
	c := carryIn(carry)

	sum := uint32(a) + uint32(b) + c
	result := T(sum)

	return result, types.Flags{
		Zero:      result == 0,
		Subtract:  false,
		HalfCarry: uint32(a)&half+uint32(b)&half+c > half,
		Carry:     sum > full,
	}
}

// Subtract returns a - b - carry.
//
// Flags:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from the upper half (bit 4 for bytes).
//	C - Set if borrow.
func Subtract[T Unsigned](a, b T, carry bool) (T, types.Flags) {
	half, _ := masks[T]()
	c := int64(carryIn(carry))

	diff := int64(a) - int64(b) - c
	result := T(diff)

	return result, types.Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: int64(uint32(a)&half)-int64(uint32(b)&half)-c < 0,
		Carry:     diff < 0,
	}
}

// And returns a & b.
//
// Flags:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func And(a, b uint8) (uint8, types.Flags) {
	result := a & b
	return result, types.Flags{Zero: result == 0, HalfCarry: true}
}

// Or returns a | b.
//
// Flags:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func Or(a, b uint8) (uint8, types.Flags) {
	result := a | b
	return result, types.Flags{Zero: result == 0}
}

// Xor returns a ^ b.
//
// Flags:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func Xor(a, b uint8) (uint8, types.Flags) {
	result := a ^ b
	return result, types.Flags{Zero: result == 0}
}

// DecimalAdjust corrects value, the result of a previous Add or
// Subtract on two packed BCD operands, so that it is valid BCD again.
// in are the flags that operation produced.
//
// Flags:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if a high digit correction was applied after an addition,
//	    otherwise not affected.
func DecimalAdjust(value uint8, in types.Flags) (uint8, types.Flags) {
	var adjust uint8
	carry := in.Carry

	if in.Subtract {
		// after a subtraction only the borrows tell us what went wrong
		if in.HalfCarry {
			adjust |= 0x06
		}
		if in.Carry {
			adjust |= 0x60
		}
		value -= adjust
	} else {
		if in.Carry || value > 0x99 {
			adjust |= 0x60
			carry = true
		}
		if in.HalfCarry || value&0x0F > 0x09 {
			adjust |= 0x06
		}
		value += adjust
	}

	return value, types.Flags{
		Zero:      value == 0,
		Subtract:  in.Subtract,
		HalfCarry: false,
		Carry:     carry,
	}
}
