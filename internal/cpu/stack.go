package cpu

import "github.com/thelolagemann/sm83/internal/types"

// push pushes the two registers onto the stack, high first.
//
//	PUSH nn
//	nn = BC, DE, HL, AF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Not affected.
//	H - Not affected.
//	C - Not affected.
func (c *CPU) push(high, low uint8) {
	c.SP--
	c.writeByte(c.SP, high)
	c.SP--
	c.writeByte(c.SP, low)
}

// pop pops two registers off the stack, low first.
//
//	POP nn
//	nn = BC, DE, HL, AF
//
// Flags affected (POP AF only):
//
//	Z - Loaded from the stack.
//	N - Loaded from the stack.
//	H - Loaded from the stack.
//	C - Loaded from the stack.
func (c *CPU) pop() (high, low uint8) {
	low = c.readByte(c.SP)
	c.SP++
	high = c.readByte(c.SP)
	c.SP++
	return high, low
}

func (c *CPU) pushPair(p *types.RegisterPair) {
	c.push(p.High(), p.Low())
}

func (c *CPU) popPair(p *types.RegisterPair) {
	high, low := c.pop()
	p.SetUint16(types.Word(low, high))
}

func init() {
	defineInstruction(0xC1, "POP BC", 12, func(c *CPU) { c.popPair(&c.BC) })
	defineInstruction(0xD1, "POP DE", 12, func(c *CPU) { c.popPair(&c.DE) })
	defineInstruction(0xE1, "POP HL", 12, func(c *CPU) { c.popPair(&c.HL) })
	defineInstruction(0xF1, "POP AF", 12, func(c *CPU) {
		high, low := c.pop()
		c.A = high
		c.F = types.FlagsFromByte(low)
	})

	defineInstruction(0xC5, "PUSH BC", 16, func(c *CPU) { c.pushPair(&c.BC) })
	defineInstruction(0xD5, "PUSH DE", 16, func(c *CPU) { c.pushPair(&c.DE) })
	defineInstruction(0xE5, "PUSH HL", 16, func(c *CPU) { c.pushPair(&c.HL) })
	defineInstruction(0xF5, "PUSH AF", 16, func(c *CPU) { c.push(c.A, c.F.Byte()) })
}
