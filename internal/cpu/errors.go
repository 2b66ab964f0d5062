package cpu

import "fmt"

// UnimplementedOpcodeError is raised (via panic) when the CPU fetches
// an opcode that has no instruction defined. Execution cannot continue
// past it without corrupting the processor state.
type UnimplementedOpcodeError struct {
	Opcode uint8
	// PC is the address the opcode was fetched from.
	PC uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}
