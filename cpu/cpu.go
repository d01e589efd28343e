// Package cpu implements the fetch/decode/execute core of the MOS
// Technology 6502 microprocessor, as used in the NES.

package cpu

import "gone6502/mem"

// https://www.nesdev.org/wiki/CPU#Frequencies
// https://www.nesdev.org/wiki/Cycle_reference_chart#Clock_rates

// The Cpu has no memory of its own (aside from a handful of registers).
// Instead, every operation that touches memory is handed a Bus explicitly.
// The Cpu never stores a pointer back to a Bus: the natural
// object-pointing-at-object sketch gives the Cpu a mutable back-pointer,
// which is awkward to hold alongside exclusive access from the facade. The
// facade owns the Cpu and the Bus as sibling fields and passes the Bus in on
// every call instead.
type Cpu struct {
	A, X, Y byte
	SP      byte
	PC      uint16
	P       Flags

	Fetched byte   // operand value most recently resolved for the current op
	AddrAbs uint16 // effective address computed by the addressing-mode unit
	AddrRel uint16 // sign-extended branch offset, only set by Relative
	Opcode  byte   // opcode byte of the instruction in flight
	Cycles  byte   // countdown of remaining cycles until the next fetch

	TotalCycles uint64 // monotonic cycle counter, for diagnostics/tests

	NmiPending bool
	IrqPending bool

	curMode AddressingMode // addressing mode of the instruction in flight
}

const (
	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// Reset establishes the defined post-reset state. a, x, y are cleared; sp is
// set to 0xFD; the interrupt-disable flag is set and U is forced to 1; pc is
// read from the reset vector.
func (c *Cpu) Reset(bus *mem.Bus) {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD

	c.P = 0
	c.P.SetUnused(true)
	c.P.SetInterrupt(true)

	c.Fetched = 0
	c.AddrRel = 0
	c.AddrAbs = resetVector
	lo := bus.Read(resetVector)
	hi := bus.Read(resetVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.AddrAbs = 0

	c.Cycles = 8
	c.NmiPending = false
	c.IrqPending = false
}

// Irq requests an IRQ. It is only honored at the next instruction boundary,
// and only if the interrupt-disable flag is clear.
func (c *Cpu) Irq() { c.IrqPending = true }

// Nmi requests an NMI. It is honored at the next clock() regardless of the
// interrupt-disable flag.
func (c *Cpu) Nmi() { c.NmiPending = true }

// Clock advances the Cpu by one master cycle. When the internal cycle
// countdown reaches zero it performs a full instruction: fetch the opcode,
// resolve its addressing mode, execute it, and reload the countdown from
// the opcode's base cycles plus any earned page-cross penalty.
func (c *Cpu) Clock(bus *mem.Bus) {
	if c.NmiPending {
		c.serviceInterrupt(bus, nmiVector, 8)
		c.NmiPending = false
		return
	}

	if c.Cycles == 0 {
		if c.IrqPending && !c.P.Interrupt() {
			c.serviceInterrupt(bus, irqVector, 7)
			c.IrqPending = false
			return
		}

		c.Opcode = bus.Read(c.PC)
		c.P.SetUnused(true)
		c.PC++

		op := Opcodes[c.Opcode]
		c.curMode = op.Mode
		c.Cycles = op.Cycles

		addrExtra := c.decode(op.Mode, bus)
		c.fetch(op.Mode, bus)
		opExtra := op.Instruction(c, bus)
		c.Cycles += addrExtra & opExtra

		c.P.SetUnused(true)
	}

	c.Cycles--
	c.TotalCycles++
}

// serviceInterrupt runs the shared IRQ/NMI sequence: push pc, push P (with
// B cleared, U set), set I, load pc from vector, reload Cycles.
func (c *Cpu) serviceInterrupt(bus *mem.Bus, vector uint16, cycles byte) {
	c.push(bus, byte(c.PC>>8))
	c.push(bus, byte(c.PC))
	c.push(bus, c.P.pushedByte(false))
	c.P.SetInterrupt(true)

	lo := bus.Read(vector)
	hi := bus.Read(vector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)

	c.Cycles = cycles
}

// StepInstruction drives Clock until any in-flight instruction finishes,
// then drives exactly one fresh instruction to completion.
func (c *Cpu) StepInstruction(bus *mem.Bus) {
	for c.Cycles != 0 {
		c.Clock(bus)
	}
	c.Clock(bus)
	for c.Cycles != 0 {
		c.Clock(bus)
	}
}

// RunCycles calls Clock exactly n times.
func (c *Cpu) RunCycles(bus *mem.Bus, n uint32) {
	for i := uint32(0); i < n; i++ {
		c.Clock(bus)
	}
}
