package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone6502/mem"
)

func load(bus *mem.Bus, offset uint16, program ...byte) {
	for i, b := range program {
		bus.Write(offset+uint16(i), b)
	}
}

func resetTo(c *Cpu, bus *mem.Bus, pc uint16) {
	bus.Write(0xFFFC, byte(pc))
	bus.Write(0xFFFD, byte(pc>>8))
	c.Reset(bus)
}

// TestThirty runs the classic multiply-10-by-3 program and checks the
// accumulated result, mirroring the shape of the original single-stepping
// test this corpus is built around.
func TestThirty(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}

	program := []byte{
		0xA2, 0x0A, // LDX #$0a
		0x8E, 0x00, 0x00, // STX $0000
		0xA2, 0x03, // LDX #$03
		0x8E, 0x01, 0x00, // STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #$00
		0x18,       // CLC
		0x6D, 0x01, 0x00, // ADC $0001
		0x88,       // DEY
		0xD0, 0xFA, // BNE -6
		0x8D, 0x02, 0x00, // STA $0002
		0xEA, 0xEA, 0xEA, // NOP NOP NOP
	}
	load(bus, 0x8000, program...)
	resetTo(c, bus, 0x8000)

	for c.PC != 0x801C || c.Cycles != 0 {
		c.StepInstruction(bus)
		if c.TotalCycles > 10_000 {
			t.Fatal("program did not terminate")
		}
	}

	assert.Equal(t, byte(30), c.A)
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(10), bus.Read(0x0000))
	assert.Equal(t, byte(3), bus.Read(0x0001))
	assert.Equal(t, byte(30), bus.Read(0x0002))
}

func TestResetVector(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}
	resetTo(c, bus, 0x1234)

	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.True(t, c.P.Unused())
	assert.True(t, c.P.Interrupt())
	assert.Equal(t, byte(8), c.Cycles)
}

// TestIndirectJumpPageBug reproduces the documented NMOS JMP ($nnnn) bug:
// when the pointer's low byte is 0xFF, the high byte of the target wraps
// within the same page instead of crossing into the next one.
func TestIndirectJumpPageBug(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}

	bus.Write(0x10FF, 0x34)
	bus.Write(0x1000, 0x12)
	bus.Write(0x1100, 0x56)

	load(bus, 0x8000, 0x6C, 0xFF, 0x10) // JMP ($10FF)
	resetTo(c, bus, 0x8000)

	c.StepInstruction(bus)

	assert.Equal(t, uint16(0x1234), c.PC)
}

func instructionCost(t *testing.T, c *Cpu, bus *mem.Bus) uint64 {
	t.Helper()
	for c.Cycles != 0 {
		c.Clock(bus)
	}
	before := c.TotalCycles
	c.StepInstruction(bus)
	return c.TotalCycles - before
}

func TestPageCrossPenaltyOnlyAppliesToReadFamily(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}
	load(bus, 0x8000, 0xBD, 0xFF, 0x12) // LDA $12FF,X
	bus.Write(0x1300, 0x99)
	resetTo(c, bus, 0x8000)
	c.X = 1

	assert.Equal(t, uint64(5), instructionCost(t, c, bus)) // base 4 + 1 page-cross

	bus2 := &mem.Bus{}
	c2 := &Cpu{}
	load(bus2, 0x8000, 0x9D, 0xFF, 0x12) // STA $12FF,X
	resetTo(c2, bus2, 0x8000)
	c2.X = 1

	assert.Equal(t, uint64(5), instructionCost(t, c2, bus2)) // base 5, no extra despite page cross
}

func TestAdcCarryAndOverflow(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}
	load(bus, 0x8000, 0x69, 0x50) // ADC #$50
	resetTo(c, bus, 0x8000)
	c.A = 0x50
	c.P.SetCarry(false)

	c.StepInstruction(bus)

	assert.Equal(t, byte(0xA0), c.A)
	assert.False(t, c.P.Carry())
	assert.True(t, c.P.Overflow())
	assert.True(t, c.P.Negative())
	assert.False(t, c.P.Zero())
}

func TestStackWrap(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}
	resetTo(c, bus, 0x8000)
	c.SP = 0x00

	c.push(bus, 0x7F)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0x7F), bus.Read(0x0100))

	got := c.pop(bus)
	assert.Equal(t, byte(0x00), c.SP)
	assert.Equal(t, byte(0x7F), got)
}

func TestFlagIdempotence(t *testing.T) {
	var p Flags
	p.SetCarry(true)
	p.SetCarry(false)
	assert.False(t, p.Carry())

	p.SetInterrupt(true)
	p.SetInterrupt(false)
	assert.False(t, p.Interrupt())
}

func TestBranchTakenWithPageCross(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}
	// Opcode at 0x80FD, operand at 0x80FE; post-operand PC is 0x80FF, so
	// +4 lands at 0x8103 -- a genuine crossing into page 0x81.
	load(bus, 0x80FD, 0xF0, 0x04) // BEQ +4
	resetTo(c, bus, 0x80FD)
	c.P.SetZero(true)

	cost := instructionCost(t, c, bus)

	assert.Equal(t, uint16(0x8103), c.PC)
	assert.Equal(t, uint64(4), cost) // base 2 + taken 1 + page-cross 1
}

// TestNmiService reproduces the NMI-service scenario, with B also set in
// the live P: pc/P/SP are pushed and updated exactly as the shared
// interrupt sequence specifies, and the pushed copy of P forces B to 0
// regardless of the live flag.
func TestNmiService(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}
	c.PC = 0x9000
	c.P = Flags(0x34) // U=1, B=1, I=1, rest 0
	c.SP = 0xFD

	bus.Write(nmiVector, 0x00)
	bus.Write(nmiVector+1, 0x80) // vector -> 0x8000

	c.Nmi()
	c.Clock(bus)

	assert.Equal(t, byte(0x90), bus.Read(0x01FD)) // pc hi
	assert.Equal(t, byte(0x00), bus.Read(0x01FC)) // pc lo
	assert.Equal(t, byte(0x24), bus.Read(0x01FB)) // P with B forced 0, U forced 1
	assert.Equal(t, byte(0xFA), c.SP)
	assert.True(t, c.P.Interrupt())
	assert.True(t, c.P.Break()) // live P is untouched by the pushed copy's forcing
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(8), c.Cycles)
	assert.False(t, c.NmiPending)
}

// TestIrqService mirrors TestNmiService for the IRQ path, with the
// interrupt-disable flag clear so the IRQ is honored; the masked case is
// covered by TestIrqNotHonoredWhenInterruptDisabled.
func TestIrqService(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}
	c.PC = 0x9000
	c.P = Flags(0x00)
	c.SP = 0xFD

	bus.Write(irqVector, 0x00)
	bus.Write(irqVector+1, 0x90) // vector -> 0x9000

	c.Irq()
	c.Clock(bus)

	assert.Equal(t, byte(0x90), bus.Read(0x01FD)) // pc hi
	assert.Equal(t, byte(0x00), bus.Read(0x01FC)) // pc lo
	assert.Equal(t, byte(0x20), bus.Read(0x01FB)) // P with B forced 0, U forced 1
	assert.Equal(t, byte(0xFA), c.SP)
	assert.True(t, c.P.Interrupt())
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, byte(7), c.Cycles)
	assert.False(t, c.IrqPending)
}

func TestIrqNotHonoredWhenInterruptDisabled(t *testing.T) {
	bus := &mem.Bus{}
	c := &Cpu{}
	load(bus, 0x8000, 0xEA) // NOP
	resetTo(c, bus, 0x8000) // reset leaves I=1

	c.Irq()
	c.StepInstruction(bus) // runs the NOP instead of servicing the IRQ

	assert.True(t, c.IrqPending) // still pending: never serviced
	assert.Equal(t, uint16(0x8001), c.PC)
}
