package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/alu"
	"github.com/thelolagemann/sm83/internal/types"
)

// aluOperation is one of the eight accumulator operations encoded in
// bits 3-5 of the 0x80-0xBF and 0xC6-0xFE opcodes.
type aluOperation struct {
	name string
	fn   func(a, n uint8, carry bool) (uint8, types.Flags)
	// withCarry feeds the carry flag into fn.
	withCarry bool
	// discard keeps only the flags of the result (CP).
	discard bool
}

func logical(fn func(a, n uint8) (uint8, types.Flags)) func(uint8, uint8, bool) (uint8, types.Flags) {
	return func(a, n uint8, _ bool) (uint8, types.Flags) {
		return fn(a, n)
	}
}

var aluOperations = [8]aluOperation{
	{name: "ADD A,", fn: alu.Add[uint8]},
	{name: "ADC A,", fn: alu.Add[uint8], withCarry: true},
	{name: "SUB", fn: alu.Subtract[uint8]},
	{name: "SBC A,", fn: alu.Subtract[uint8], withCarry: true},
	{name: "AND", fn: logical(alu.And)},
	{name: "XOR", fn: logical(alu.Xor)},
	{name: "OR", fn: logical(alu.Or)},
	{name: "CP", fn: alu.Subtract[uint8], discard: true},
}

// accumulate applies op to the A register and n, replacing every flag
// with the ones produced by the ALU.
//
//	ADD A, n / ADC A, n / SUB n / SBC A, n
//	AND n / XOR n / OR n / CP n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) accumulate(op *aluOperation, n uint8) {
	result, flags := op.fn(c.A, n, op.withCarry && c.F.Carry)
	if !op.discard {
		c.A = result
	}
	c.F = flags
}

func init() {
	for i := range aluOperations {
		op := &aluOperations[i]

		// op r / op (HL)
		for src := regB; src <= regA; src++ {
			cycles := uint8(4)
			if src == regHL {
				cycles = 8
			}

			src := src
			defineInstruction(0x80|uint8(i)<<3|src, fmt.Sprintf("%s %s", op.name, registerNames[src]), cycles, func(c *CPU) {
				c.accumulate(op, c.readRegister(src))
			})
		}

		// op d8
		defineInstruction(0xC6|uint8(i)<<3, fmt.Sprintf("%s d8", op.name), 8, func(c *CPU) {
			c.accumulate(op, c.readOperand())
		})
	}
}
