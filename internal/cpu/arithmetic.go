package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/alu"
	"github.com/thelolagemann/sm83/internal/types"
)

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result, flags := alu.Add(n, 1, false)
	c.F.Assign(flags, types.MaskZero|types.MaskSubtract|types.MaskHalfCarry)
	return result
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result, flags := alu.Subtract(n, 1, false)
	c.F.Assign(flags, types.MaskZero|types.MaskSubtract|types.MaskHalfCarry)
	return result
}

// addHL adds nn to the HL RegisterPair. The addition is carried out a
// byte at a time, low byte first, the way the hardware does it.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(nn uint16) {
	low, high := types.SplitWord(nn)

	l, flags := alu.Add(c.L(), low, false)
	h, flags := alu.Add(c.H(), high, flags.Carry)

	c.HL.SetUint16(types.Word(l, h))
	c.F.Assign(flags, types.MaskSubtract|types.MaskHalfCarry|types.MaskCarry)
}

// addSPSigned reads a signed offset and returns SP plus that offset.
// H and C come from the unsigned addition of the offset to the low
// byte of SP.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()

	_, flags := alu.Add(uint8(c.SP), value, false)
	flags.Zero = false
	c.F = flags

	return uint16(int32(c.SP) + int32(int8(value)))
}

func init() {
	// INC r / DEC r
	for r := regB; r <= regA; r++ {
		cycles := uint8(4)
		if r == regHL {
			cycles = 12
		}

		r := r
		defineInstruction(0x04|r<<3, fmt.Sprintf("INC %s", registerNames[r]), cycles, func(c *CPU) {
			c.writeRegister(r, c.increment(c.readRegister(r)))
		})
		defineInstruction(0x05|r<<3, fmt.Sprintf("DEC %s", registerNames[r]), cycles, func(c *CPU) {
			c.writeRegister(r, c.decrement(c.readRegister(r)))
		})
	}

	// INC rr / DEC rr / ADD HL, rr
	for pair := pairBC; pair <= pairSP; pair++ {
		pair := pair
		defineInstruction(0x03|pair<<4, fmt.Sprintf("INC %s", pairNames[pair]), 8, func(c *CPU) {
			c.writePair(pair, c.readPair(pair)+1)
		})
		defineInstruction(0x0B|pair<<4, fmt.Sprintf("DEC %s", pairNames[pair]), 8, func(c *CPU) {
			c.writePair(pair, c.readPair(pair)-1)
		})
		defineInstruction(0x09|pair<<4, fmt.Sprintf("ADD HL, %s", pairNames[pair]), 8, func(c *CPU) {
			c.addHL(c.readPair(pair))
		})
	}

	defineInstruction(0xE8, "ADD SP, r8", 16, func(c *CPU) {
		c.SP = c.addSPSigned()
	})
	defineInstruction(0xF8, "LD HL, SP+r8", 12, func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	})

	defineInstruction(0x27, "DAA", 4, func(c *CPU) {
		c.A, c.F = alu.DecimalAdjust(c.A, c.F)
	})
	defineInstruction(0x2F, "CPL", 4, func(c *CPU) {
		c.A = ^c.A
		c.F.Subtract = true
		c.F.HalfCarry = true
	})
	defineInstruction(0x37, "SCF", 4, func(c *CPU) {
		c.F.Subtract = false
		c.F.HalfCarry = false
		c.F.Carry = true
	})
	defineInstruction(0x3F, "CCF", 4, func(c *CPU) {
		c.F.Subtract = false
		c.F.HalfCarry = false
		c.F.Carry = !c.F.Carry
	})
}
