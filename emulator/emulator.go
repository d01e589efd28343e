// Package emulator provides the external facade over the Cpu and Bus: the
// only surface a host (debugger, conformance harness, animation loop) needs
// to drive the core.
package emulator

import (
	"fmt"

	"gone6502/cpu"
	"gone6502/mem"
)

// Emulator owns a Cpu and a Bus as sibling fields. Every Cpu operation that
// touches memory is handed the Bus explicitly by this package; the Cpu
// itself never stores a back-pointer to it.
type Emulator struct {
	CPU *cpu.Cpu
	Bus *mem.Bus
}

// New returns an Emulator in a zeroed, not-yet-reset state. Call Reset or
// LoadProgram before expecting meaningful execution.
func New() *Emulator {
	return &Emulator{
		CPU: &cpu.Cpu{},
		Bus: mem.New(),
	}
}

// Reset establishes the defined post-reset Cpu state.
func (e *Emulator) Reset() { e.CPU.Reset(e.Bus) }

// Clock advances one master cycle. It never fails.
func (e *Emulator) Clock() { e.CPU.Clock(e.Bus) }

// StepInstruction completes exactly one instruction, first draining any
// instruction left in flight.
func (e *Emulator) StepInstruction() { e.CPU.StepInstruction(e.Bus) }

// RunCycles calls Clock exactly n times.
func (e *Emulator) RunCycles(n uint32) { e.CPU.RunCycles(e.Bus, n) }

// OutOfRangeError is returned by LoadProgram when the program would write
// past the end of the address space. No state is mutated when it is
// returned.
type OutOfRangeError struct {
	Offset uint16
	Len    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("load_program: offset %#04x + len %d exceeds 0x10000", e.Offset, e.Len)
}

// LoadProgram writes program to the bus starting at offset, points the
// reset vector at offset, and resets the Cpu. It fails with OutOfRangeError
// (and mutates nothing) if offset+len(program) would run past 0xFFFF.
func (e *Emulator) LoadProgram(program []byte, offset uint16) error {
	if int(offset)+len(program) > 0x10000 {
		return &OutOfRangeError{Offset: offset, Len: len(program)}
	}

	for i, b := range program {
		e.Bus.Write(offset+uint16(i), b)
	}

	e.Bus.Write(0xFFFC, byte(offset))
	e.Bus.Write(0xFFFD, byte(offset>>8))

	e.Reset()
	return nil
}

// Registers is the fixed 6-tuple returned by GetRegisters.
type Registers struct {
	A, X, Y, SP byte
	PC          uint16
	P           byte
}

// GetRegisters returns a snapshot of the Cpu's externally visible registers.
func (e *Emulator) GetRegisters() Registers {
	return Registers{
		A:  e.CPU.A,
		X:  e.CPU.X,
		Y:  e.CPU.Y,
		SP: e.CPU.SP,
		PC: e.CPU.PC,
		P:  byte(e.CPU.P),
	}
}

// State is the fixed 5-tuple returned by GetCPUState.
type State struct {
	Fetched byte
	AddrAbs uint16
	AddrRel uint16
	Opcode  byte
	Cycles  byte
}

// GetCPUState returns a snapshot of the Cpu's in-flight decode state.
func (e *Emulator) GetCPUState() State {
	return State{
		Fetched: e.CPU.Fetched,
		AddrAbs: e.CPU.AddrAbs,
		AddrRel: e.CPU.AddrRel,
		Opcode:  e.CPU.Opcode,
		Cycles:  e.CPU.Cycles,
	}
}

// GetRAM returns a copy of the bus RAM in [start, start+len), clamped to the
// size of the address space. A copy, not a live view: callers must not be
// able to mutate emulator state through the returned slice.
func (e *Emulator) GetRAM(start uint16, length uint32) []byte {
	end := uint32(start) + length
	if end > uint32(len(e.Bus.Ram)) {
		end = uint32(len(e.Bus.Ram))
	}
	if uint32(start) > end {
		return []byte{}
	}
	out := make([]byte, end-uint32(start))
	copy(out, e.Bus.Ram[start:end])
	return out
}
