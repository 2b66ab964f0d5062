package cpu

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestInstruction_LoadRegister(t *testing.T) {
	for dst := regB; dst <= regA; dst++ {
		for src := regB; src <= regA; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue
			}

			t.Run(fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), func(t *testing.T) {
				c, mem := newTestCPU(opcode)
				c.BC.SetUint16(0x0102)
				c.DE.SetUint16(0x0304)
				c.HL.SetUint16(0xC005)
				c.A = 0x07
				mem.Write(0xC005, 0x66)

				want := c.readRegister(src)
				c.Step()

				if got := c.readRegister(dst); got != want {
					t.Errorf("expected %s to be 0x%02X, got 0x%02X", registerNames[dst], want, got)
				}
				if c.F.Byte() != 0 {
					t.Errorf("expected flags to be untouched, got %s", c.F)
				}
			})
		}
	}
}

func TestInstruction_LoadImmediate(t *testing.T) {
	for dst := regB; dst <= regA; dst++ {
		t.Run(fmt.Sprintf("LD %s, d8", registerNames[dst]), func(t *testing.T) {
			value := uint8(rand.Intn(256))
			c, _ := newTestCPU(0x06|dst<<3, value)
			c.HL.SetUint16(0xC000)

			c.Step()

			if got := c.readRegister(dst); got != value {
				t.Errorf("expected %s to be 0x%02X, got 0x%02X", registerNames[dst], value, got)
			}
			if c.PC != 2 {
				t.Errorf("expected PC to be 0x0002, got 0x%04X", c.PC)
			}
		})
	}
}

func TestInstruction_LoadImmediate16(t *testing.T) {
	for pair := pairBC; pair <= pairSP; pair++ {
		t.Run(fmt.Sprintf("LD %s, d16", pairNames[pair]), func(t *testing.T) {
			c, _ := newTestCPU(0x01|pair<<4, 0x34, 0x12)
			c.Step()

			if got := c.readPair(pair); got != 0x1234 {
				t.Errorf("expected %s to be 0x1234, got 0x%04X", pairNames[pair], got)
			}
			if c.PC != 3 {
				t.Errorf("expected PC to be 0x0003, got 0x%04X", c.PC)
			}
		})
	}
}

func TestInstruction_LoadIndirect(t *testing.T) {
	t.Run("LD (BC), A", func(t *testing.T) {
		c, mem := newTestCPU(0x02)
		c.BC.SetUint16(0xC123)
		c.A = 0x99
		c.Step()
		if mem.Read(0xC123) != 0x99 {
			t.Errorf("expected 0xC123 to be 0x99, got 0x%02X", mem.Read(0xC123))
		}
	})
	t.Run("LD (DE), A", func(t *testing.T) {
		c, mem := newTestCPU(0x12)
		c.DE.SetUint16(0xC124)
		c.A = 0x98
		c.Step()
		if mem.Read(0xC124) != 0x98 {
			t.Errorf("expected 0xC124 to be 0x98, got 0x%02X", mem.Read(0xC124))
		}
	})
	t.Run("LD A, (BC)", func(t *testing.T) {
		c, mem := newTestCPU(0x0A)
		c.BC.SetUint16(0xC125)
		mem.Write(0xC125, 0x97)
		c.Step()
		if c.A != 0x97 {
			t.Errorf("expected A to be 0x97, got 0x%02X", c.A)
		}
	})
	t.Run("LD A, (DE)", func(t *testing.T) {
		c, mem := newTestCPU(0x1A)
		c.DE.SetUint16(0xC126)
		mem.Write(0xC126, 0x96)
		c.Step()
		if c.A != 0x96 {
			t.Errorf("expected A to be 0x96, got 0x%02X", c.A)
		}
	})
}

func TestInstruction_LoadIncrementDecrement(t *testing.T) {
	for _, test := range []struct {
		name   string
		opcode uint8
		store  bool
		wantHL uint16
	}{
		{"LD (HL+), A", 0x22, true, 0xC001},
		{"LD A, (HL+)", 0x2A, false, 0xC001},
		{"LD (HL-), A", 0x32, true, 0xBFFF},
		{"LD A, (HL-)", 0x3A, false, 0xBFFF},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, mem := newTestCPU(test.opcode)
			c.HL.SetUint16(0xC000)
			if test.store {
				c.A = 0x5A
			} else {
				mem.Write(0xC000, 0x5A)
			}

			c.Step()

			if c.A != 0x5A || mem.Read(0xC000) != 0x5A {
				t.Errorf("expected A and (0xC000) to be 0x5A, got 0x%02X and 0x%02X", c.A, mem.Read(0xC000))
			}
			if c.HL.Uint16() != test.wantHL {
				t.Errorf("expected HL to be 0x%04X, got 0x%04X", test.wantHL, c.HL.Uint16())
			}
		})
	}

	t.Run("wraps", func(t *testing.T) {
		c, _ := newTestCPU(0x22, 0x32)
		c.HL.SetUint16(0xFFFF)
		c.Step()
		if c.HL.Uint16() != 0x0000 {
			t.Errorf("expected HL to wrap to 0x0000, got 0x%04X", c.HL.Uint16())
		}
		c.Step()
		if c.HL.Uint16() != 0xFFFF {
			t.Errorf("expected HL to wrap to 0xFFFF, got 0x%04X", c.HL.Uint16())
		}
	})
}

func TestInstruction_LoadAbsolute(t *testing.T) {
	c, mem := newTestCPU(
		0x3E, 0x77,       // LD A, 0x77
		0xEA, 0x00, 0xC0, // LD (0xC000), A
		0x3E, 0x00,       // LD A, 0x00
		0xFA, 0x00, 0xC0, // LD A, (0xC000)
	)

	c.Step()
	c.Step()
	if mem.Read(0xC000) != 0x77 {
		t.Errorf("expected 0xC000 to be 0x77, got 0x%02X", mem.Read(0xC000))
	}
	c.Step()
	c.Step()
	if c.A != 0x77 {
		t.Errorf("expected A to be 0x77, got 0x%02X", c.A)
	}
	if c.PC != 10 {
		t.Errorf("expected PC to be 0x000A, got 0x%04X", c.PC)
	}
	if c.Cycle() != 8+16+8+16 {
		t.Errorf("expected 48 cycles, got %d", c.Cycle())
	}
}

// the IO port instructions address ports through MakeAddress(0xFF, n),
// which puts n in the high byte of the address.
func TestInstruction_LoadIOPort(t *testing.T) {
	t.Run("LDH (a8), A", func(t *testing.T) {
		c, mem := newTestCPU(0xE0, 0x80)
		c.A = 0x42
		c.Step()
		if mem.Read(0x80FF) != 0x42 {
			t.Errorf("expected 0x80FF to be 0x42, got 0x%02X", mem.Read(0x80FF))
		}
		if c.PC != 2 {
			t.Errorf("expected PC to be 0x0002, got 0x%04X", c.PC)
		}
	})
	t.Run("LDH A, (a8)", func(t *testing.T) {
		c, mem := newTestCPU(0xF0, 0x81)
		mem.Write(0x81FF, 0x43)
		c.Step()
		if c.A != 0x43 {
			t.Errorf("expected A to be 0x43, got 0x%02X", c.A)
		}
	})
	t.Run("LD (C), A", func(t *testing.T) {
		c, mem := newTestCPU(0xE2)
		c.SetC(0x82)
		c.A = 0x44
		c.Step()
		if mem.Read(0x82FF) != 0x44 {
			t.Errorf("expected 0x82FF to be 0x44, got 0x%02X", mem.Read(0x82FF))
		}
	})
	t.Run("LD A, (C)", func(t *testing.T) {
		c, mem := newTestCPU(0xF2)
		c.SetC(0x83)
		mem.Write(0x83FF, 0x45)
		c.Step()
		if c.A != 0x45 {
			t.Errorf("expected A to be 0x45, got 0x%02X", c.A)
		}
	})
}

func TestInstruction_LoadSPHL(t *testing.T) {
	c, _ := newTestCPU(0xF9)
	c.HL.SetUint16(0xDFF0)
	c.Step()
	if c.SP != 0xDFF0 {
		t.Errorf("expected SP to be 0xDFF0, got 0x%04X", c.SP)
	}
}
