package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a CPU
// instance.
type Opt func(c *CPU)

// Debug enables per-instruction tracing through the CPU's logger.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(c *CPU) {
		c.log = log
	}
}

// WithRegisters sets the initial register state.
func WithRegisters(r types.Registers) Opt {
	return func(c *CPU) {
		c.Registers = r
	}
}

// SkipBoot initializes the registers to the values the DMG boot ROM
// leaves behind when it hands control to the cartridge at 0x0100.
func SkipBoot() Opt {
	return func(c *CPU) {
		c.A = 0x01
		c.F = types.FlagsFromByte(0xB0)
		c.BC.SetUint16(0x0013)
		c.DE.SetUint16(0x00D8)
		c.HL.SetUint16(0x014D)
		c.SP = 0xFFFE
		c.PC = 0x0100
	}
}
