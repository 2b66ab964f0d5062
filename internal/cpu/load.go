package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// ioPortAddress returns the address of the IO port n.
func ioPortAddress(n uint8) uint16 {
	return types.MakeAddress(0xFF, n)
}

func init() {
	// LD r, r' / LD r, (HL) / LD (HL), r
	for dst := regB; dst <= regA; dst++ {
		for src := regB; src <= regA; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue // HALT
			}

			cycles := uint8(4)
			if dst == regHL || src == regHL {
				cycles = 8
			}

			dst, src := dst, src
			defineInstruction(opcode, fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), cycles, func(c *CPU) {
				c.writeRegister(dst, c.readRegister(src))
			})
		}
	}

	// LD r, d8 / LD (HL), d8
	for dst := regB; dst <= regA; dst++ {
		cycles := uint8(8)
		if dst == regHL {
			cycles = 12
		}

		dst := dst
		defineInstruction(0x06|dst<<3, fmt.Sprintf("LD %s, d8", registerNames[dst]), cycles, func(c *CPU) {
			c.writeRegister(dst, c.readOperand())
		})
	}

	// LD rr, d16
	for pair := pairBC; pair <= pairSP; pair++ {
		pair := pair
		defineInstruction(0x01|pair<<4, fmt.Sprintf("LD %s, d16", pairNames[pair]), 12, func(c *CPU) {
			c.writePair(pair, c.readOperand16())
		})
	}

	// LD (BC), A / LD (DE), A / LD A, (BC) / LD A, (DE)
	defineInstruction(0x02, "LD (BC), A", 8, func(c *CPU) {
		c.writeByte(c.BC.Uint16(), c.A)
	})
	defineInstruction(0x12, "LD (DE), A", 8, func(c *CPU) {
		c.writeByte(c.DE.Uint16(), c.A)
	})
	defineInstruction(0x0A, "LD A, (BC)", 8, func(c *CPU) {
		c.A = c.readByte(c.BC.Uint16())
	})
	defineInstruction(0x1A, "LD A, (DE)", 8, func(c *CPU) {
		c.A = c.readByte(c.DE.Uint16())
	})

	// load and increment/decrement through HL
	defineInstruction(0x22, "LD (HL+), A", 8, func(c *CPU) {
		c.writeByte(c.HL.Increment(), c.A)
	})
	defineInstruction(0x2A, "LD A, (HL+)", 8, func(c *CPU) {
		c.A = c.readByte(c.HL.Increment())
	})
	defineInstruction(0x32, "LD (HL-), A", 8, func(c *CPU) {
		c.writeByte(c.HL.Decrement(), c.A)
	})
	defineInstruction(0x3A, "LD A, (HL-)", 8, func(c *CPU) {
		c.A = c.readByte(c.HL.Decrement())
	})

	// IO ports
	defineInstruction(0xE0, "LDH (a8), A", 12, func(c *CPU) {
		c.writeByte(ioPortAddress(c.readOperand()), c.A)
	})
	defineInstruction(0xF0, "LDH A, (a8)", 12, func(c *CPU) {
		c.A = c.readByte(ioPortAddress(c.readOperand()))
	})
	defineInstruction(0xE2, "LD (C), A", 8, func(c *CPU) {
		c.writeByte(ioPortAddress(c.C()), c.A)
	})
	defineInstruction(0xF2, "LD A, (C)", 8, func(c *CPU) {
		c.A = c.readByte(ioPortAddress(c.C()))
	})

	// absolute addressing
	defineInstruction(0xEA, "LD (a16), A", 16, func(c *CPU) {
		c.writeByte(c.readOperand16(), c.A)
	})
	defineInstruction(0xFA, "LD A, (a16)", 16, func(c *CPU) {
		c.A = c.readByte(c.readOperand16())
	})

	defineInstruction(0xF9, "LD SP, HL", 8, func(c *CPU) {
		c.SP = c.HL.Uint16()
	})
}
