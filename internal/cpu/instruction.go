package cpu

import (
	"fmt"
)

// Instruction describes a single opcode: its mnemonic, its fixed cost
// in clock cycles, and the function that carries it out.
type Instruction struct {
	name   string
	cycles uint8
	fn     func(*CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the number of clock cycles the instruction takes.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// Defined reports whether the opcode has an implementation.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// instructionSet is filled in by the init functions of this package
// and is never written to afterwards.
var instructionSet [256]Instruction

// defineInstruction defines the instruction in the instructionSet,
// with the provided opcode. Defining an opcode twice is a programming
// error.
func defineInstruction(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	if instructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("opcode %02X defined twice (%s, %s)", opcode, instructionSet[opcode].name, name))
	}
	instructionSet[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		fn:     fn,
	}
}

// Instructions returns a copy of the instruction table, indexed by opcode.
func Instructions() [256]Instruction {
	return instructionSet
}

// register indices as encoded in bits 0-2 and 3-5 of an opcode.
const (
	regB uint8 = iota
	regC
	regD
	regE
	regH
	regL
	regHL // (HL), memory addressed by HL
	regA
)

var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// register pair indices as encoded in bits 4-5 of an opcode.
const (
	pairBC uint8 = iota
	pairDE
	pairHL
	pairSP
)

var pairNames = [4]string{"BC", "DE", "HL", "SP"}

// readRegister returns the value of the register with the given index.
func (c *CPU) readRegister(index uint8) uint8 {
	switch index {
	case regB:
		return c.B()
	case regC:
		return c.C()
	case regD:
		return c.D()
	case regE:
		return c.E()
	case regH:
		return c.H()
	case regL:
		return c.L()
	case regHL:
		return c.readByte(c.HL.Uint16())
	case regA:
		return c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// writeRegister sets the register with the given index.
func (c *CPU) writeRegister(index uint8, value uint8) {
	switch index {
	case regB:
		c.SetB(value)
	case regC:
		c.SetC(value)
	case regD:
		c.SetD(value)
	case regE:
		c.SetE(value)
	case regH:
		c.SetH(value)
	case regL:
		c.SetL(value)
	case regHL:
		c.writeByte(c.HL.Uint16(), value)
	case regA:
		c.A = value
	default:
		panic(fmt.Sprintf("invalid register index: %d", index))
	}
}

// readPair returns the value of the register pair with the given index.
func (c *CPU) readPair(index uint8) uint16 {
	switch index {
	case pairBC:
		return c.BC.Uint16()
	case pairDE:
		return c.DE.Uint16()
	case pairHL:
		return c.HL.Uint16()
	case pairSP:
		return c.SP
	}
	panic(fmt.Sprintf("invalid register pair index: %d", index))
}

// writePair sets the register pair with the given index.
func (c *CPU) writePair(index uint8, value uint16) {
	switch index {
	case pairBC:
		c.BC.SetUint16(value)
	case pairDE:
		c.DE.SetUint16(value)
	case pairHL:
		c.HL.SetUint16(value)
	case pairSP:
		c.SP = value
	default:
		panic(fmt.Sprintf("invalid register pair index: %d", index))
	}
}

func init() {
	defineInstruction(0x00, "NOP", 4, func(c *CPU) {})
}
