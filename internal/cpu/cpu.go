package cpu

import (
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
	// CyclesPerFrame is the number of clock cycles in one video frame
	// (154 scanlines of 456 cycles). The cycle counter wraps at this value.
	CyclesPerFrame = 70224
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	types.Registers

	// Debug logs every executed instruction along with the register state.
	Debug bool

	mem ram.RAM
	log log.Logger

	cycle  uint32
	frames uint64
}

// NewCPU creates a new CPU instance with the given RAM.
// The RAM is used to read and write to the memory, and
// remains owned by the caller.
func NewCPU(mem ram.RAM, opts ...Opt) *CPU {
	c := &CPU{
		mem: mem,
		log: log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Step fetches the instruction at PC, executes it and advances the
// cycle counter by its cost, which is returned. Fetching an opcode
// that has no instruction defined panics with an *UnimplementedOpcodeError.
func (c *CPU) Step() uint8 {
	pc := c.PC
	opcode := c.readOperand()

	instruction := &instructionSet[opcode]
	if instruction.fn == nil {
		err := &UnimplementedOpcodeError{Opcode: opcode, PC: pc}
		c.log.Errorf("%v (%s)", err, c.Registers.String())
		panic(err)
	}

	instruction.fn(c)
	c.tick(instruction.cycles)

	if c.Debug {
		c.log.Debugf("%04x: %-14s (%2d cycles) %s", pc, instruction.name, instruction.cycles, c.Registers.String())
	}

	return instruction.cycles
}

// RunFrame steps the CPU until the cycle counter wraps around to the
// next frame, and returns the number of instructions executed.
func (c *CPU) RunFrame() int {
	frame := c.frames
	executed := 0
	for c.frames == frame {
		c.Step()
		executed++
	}
	return executed
}

// Cycle returns the position of the cycle counter within the current frame.
func (c *CPU) Cycle() uint32 {
	return c.cycle
}

// Frames returns the number of times the cycle counter has wrapped.
func (c *CPU) Frames() uint64 {
	return c.frames
}

func (c *CPU) tick(cycles uint8) {
	c.cycle += uint32(cycles)
	if c.cycle >= CyclesPerFrame {
		c.cycle %= CyclesPerFrame
		c.frames++
	}
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() uint8 {
	value := c.mem.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian word at PC and advances PC past it.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return types.Word(low, high)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.mem.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.mem.Write(addr, val)
}
