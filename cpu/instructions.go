package cpu

import "gone6502/mem"

// Instruction semantics, ported from the obelisk 6502 reference. Each
// function reads c.Fetched/c.AddrAbs (as resolved by the addressing mode)
// and returns 1 if it belongs to the read-family (eligible for the
// page-cross cycle penalty), 0 otherwise. Stores and read-modify-write
// instructions always return 0: they never earn the penalty even on an
// indexed addressing mode that crossed a page.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// ADC - Add with Carry
func (c *Cpu) ADC(bus *mem.Bus) byte {
	c.addWithCarry(c.Fetched)
	return 1
}

// SBC - Subtract with Carry. Implemented as ADC with the operand's
// one's-complement, the classic 6502 identity.
func (c *Cpu) SBC(bus *mem.Bus) byte {
	c.addWithCarry(^c.Fetched)
	return 1
}

func (c *Cpu) addWithCarry(operand byte) {
	var carryIn uint16
	if c.P.Carry() {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(operand) + carryIn
	result := byte(sum)

	c.P.SetCarry(sum > 0xFF)
	c.P.SetOverflow((uint16(c.A)^sum)&(uint16(operand)^sum)&0x80 != 0)
	c.A = result
	c.P.SetZN(c.A)
}

// AND - Logical AND
func (c *Cpu) AND(bus *mem.Bus) byte {
	c.A &= c.Fetched
	c.P.SetZN(c.A)
	return 1
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(bus *mem.Bus) byte {
	result := c.Fetched << 1
	c.P.SetCarry(c.Fetched&0x80 != 0)
	c.writeBack(bus, result)
	c.P.SetZN(result)
	return 0
}

// LSR - Logical Shift Right
func (c *Cpu) LSR(bus *mem.Bus) byte {
	result := c.Fetched >> 1
	c.P.SetCarry(c.Fetched&0x01 != 0)
	c.writeBack(bus, result)
	c.P.SetZN(result)
	return 0
}

// ROL - Rotate Left
func (c *Cpu) ROL(bus *mem.Bus) byte {
	var carryIn byte
	if c.P.Carry() {
		carryIn = 1
	}
	result := c.Fetched<<1 | carryIn
	c.P.SetCarry(c.Fetched&0x80 != 0)
	c.writeBack(bus, result)
	c.P.SetZN(result)
	return 0
}

// ROR - Rotate Right
func (c *Cpu) ROR(bus *mem.Bus) byte {
	var carryIn byte
	if c.P.Carry() {
		carryIn = 0x80
	}
	result := c.Fetched>>1 | carryIn
	c.P.SetCarry(c.Fetched&0x01 != 0)
	c.writeBack(bus, result)
	c.P.SetZN(result)
	return 0
}

// writeBack stores a shift/rotate result to A when the current instruction
// used Implied/Accumulator addressing, or to memory otherwise.
func (c *Cpu) writeBack(bus *mem.Bus, result byte) {
	if c.curMode == Implied || c.curMode == Accumulator {
		c.A = result
	} else {
		bus.Write(c.AddrAbs, result)
	}
}

// BIT - Bit Test
func (c *Cpu) BIT(bus *mem.Bus) byte {
	t := c.A & c.Fetched
	c.P.SetZero(t == 0)
	c.P.SetNegative(c.Fetched&0x80 != 0)
	c.P.SetOverflow(c.Fetched&0x40 != 0)
	return 0
}

// CMP - Compare Accumulator
func (c *Cpu) CMP(bus *mem.Bus) byte {
	c.P.SetCarry(c.A >= c.Fetched)
	c.P.SetZN(c.A - c.Fetched)
	return 1
}

// CPX - Compare X Register
func (c *Cpu) CPX(bus *mem.Bus) byte {
	c.P.SetCarry(c.X >= c.Fetched)
	c.P.SetZN(c.X - c.Fetched)
	return 1
}

// CPY - Compare Y Register
func (c *Cpu) CPY(bus *mem.Bus) byte {
	c.P.SetCarry(c.Y >= c.Fetched)
	c.P.SetZN(c.Y - c.Fetched)
	return 1
}

// DEC - Decrement Memory
func (c *Cpu) DEC(bus *mem.Bus) byte {
	result := c.Fetched - 1
	bus.Write(c.AddrAbs, result)
	c.P.SetZN(result)
	return 0
}

// INC - Increment Memory
func (c *Cpu) INC(bus *mem.Bus) byte {
	result := c.Fetched + 1
	bus.Write(c.AddrAbs, result)
	c.P.SetZN(result)
	return 0
}

// DEX - Decrement X Register
func (c *Cpu) DEX(bus *mem.Bus) byte {
	c.X--
	c.P.SetZN(c.X)
	return 0
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(bus *mem.Bus) byte {
	c.Y--
	c.P.SetZN(c.Y)
	return 0
}

// INX - Increment X Register
func (c *Cpu) INX(bus *mem.Bus) byte {
	c.X++
	c.P.SetZN(c.X)
	return 0
}

// INY - Increment Y Register
func (c *Cpu) INY(bus *mem.Bus) byte {
	c.Y++
	c.P.SetZN(c.Y)
	return 0
}

// EOR - Exclusive OR
func (c *Cpu) EOR(bus *mem.Bus) byte {
	c.A ^= c.Fetched
	c.P.SetZN(c.A)
	return 1
}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(bus *mem.Bus) byte {
	c.A |= c.Fetched
	c.P.SetZN(c.A)
	return 1
}

// LDA - Load Accumulator
func (c *Cpu) LDA(bus *mem.Bus) byte {
	c.A = c.Fetched
	c.P.SetZN(c.A)
	return 1
}

// LDX - Load X Register
func (c *Cpu) LDX(bus *mem.Bus) byte {
	c.X = c.Fetched
	c.P.SetZN(c.X)
	return 1
}

// LDY - Load Y Register
func (c *Cpu) LDY(bus *mem.Bus) byte {
	c.Y = c.Fetched
	c.P.SetZN(c.Y)
	return 1
}

// STA - Store Accumulator
func (c *Cpu) STA(bus *mem.Bus) byte {
	bus.Write(c.AddrAbs, c.A)
	return 0
}

// STX - Store X Register
func (c *Cpu) STX(bus *mem.Bus) byte {
	bus.Write(c.AddrAbs, c.X)
	return 0
}

// STY - Store Y Register
func (c *Cpu) STY(bus *mem.Bus) byte {
	bus.Write(c.AddrAbs, c.Y)
	return 0
}

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(bus *mem.Bus) byte {
	c.X = c.A
	c.P.SetZN(c.X)
	return 0
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(bus *mem.Bus) byte {
	c.Y = c.A
	c.P.SetZN(c.Y)
	return 0
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(bus *mem.Bus) byte {
	c.A = c.X
	c.P.SetZN(c.A)
	return 0
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(bus *mem.Bus) byte {
	c.A = c.Y
	c.P.SetZN(c.A)
	return 0
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(bus *mem.Bus) byte {
	c.X = c.SP
	c.P.SetZN(c.X)
	return 0
}

// TXS - Transfer X to Stack Pointer. Unlike the other transfers, flags are
// untouched.
func (c *Cpu) TXS(bus *mem.Bus) byte {
	c.SP = c.X
	return 0
}

// PHA - Push Accumulator
func (c *Cpu) PHA(bus *mem.Bus) byte {
	c.push(bus, c.A)
	return 0
}

// PLA - Pull Accumulator
func (c *Cpu) PLA(bus *mem.Bus) byte {
	c.A = c.pop(bus)
	c.P.SetZN(c.A)
	return 0
}

// PHP - Push Processor Status, with B and U forced to 1 in the pushed copy.
func (c *Cpu) PHP(bus *mem.Bus) byte {
	c.push(bus, c.P.pushedByte(true))
	return 0
}

// PLP - Pull Processor Status. B is forced 0 and U forced 1 after load.
func (c *Cpu) PLP(bus *mem.Bus) byte {
	c.P = Flags(c.pop(bus))
	c.P.SetBreak(false)
	c.P.SetUnused(true)
	return 0
}

func (c *Cpu) push(bus *mem.Bus, v byte) {
	bus.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *Cpu) pop(bus *mem.Bus) byte {
	c.SP++
	return bus.Read(0x0100 | uint16(c.SP))
}

// branch applies the common taken/page-cross cycle accounting shared by all
// conditional branches.
func (c *Cpu) branch(taken bool) byte {
	if taken {
		c.Cycles++
		newPC := c.PC + c.AddrRel
		if newPC&0xFF00 != c.PC&0xFF00 {
			c.Cycles++
		}
		c.PC = newPC
	}
	return 0
}

func (c *Cpu) BCC(bus *mem.Bus) byte { return c.branch(!c.P.Carry()) }
func (c *Cpu) BCS(bus *mem.Bus) byte { return c.branch(c.P.Carry()) }
func (c *Cpu) BEQ(bus *mem.Bus) byte { return c.branch(c.P.Zero()) }
func (c *Cpu) BNE(bus *mem.Bus) byte { return c.branch(!c.P.Zero()) }
func (c *Cpu) BMI(bus *mem.Bus) byte { return c.branch(c.P.Negative()) }
func (c *Cpu) BPL(bus *mem.Bus) byte { return c.branch(!c.P.Negative()) }
func (c *Cpu) BVC(bus *mem.Bus) byte { return c.branch(!c.P.Overflow()) }
func (c *Cpu) BVS(bus *mem.Bus) byte { return c.branch(c.P.Overflow()) }

// JMP - Jump
func (c *Cpu) JMP(bus *mem.Bus) byte {
	c.PC = c.AddrAbs
	return 0
}

// JSR - Jump to Subroutine
func (c *Cpu) JSR(bus *mem.Bus) byte {
	ret := c.PC - 1
	c.push(bus, byte(ret>>8))
	c.push(bus, byte(ret))
	c.PC = c.AddrAbs
	return 0
}

// RTS - Return from Subroutine
func (c *Cpu) RTS(bus *mem.Bus) byte {
	lo := c.pop(bus)
	hi := c.pop(bus)
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return 0
}

// BRK - Force Interrupt
func (c *Cpu) BRK(bus *mem.Bus) byte {
	ret := c.PC + 1
	c.push(bus, byte(ret>>8))
	c.push(bus, byte(ret))
	c.push(bus, c.P.pushedByte(true))
	c.P.SetInterrupt(true)
	lo := bus.Read(0xFFFE)
	hi := bus.Read(0xFFFF)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}

// RTI - Return from Interrupt
func (c *Cpu) RTI(bus *mem.Bus) byte {
	c.P = Flags(c.pop(bus))
	c.P.SetBreak(false)
	c.P.SetUnused(true)
	lo := c.pop(bus)
	hi := c.pop(bus)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}

// CLC - Clear Carry Flag
func (c *Cpu) CLC(bus *mem.Bus) byte { c.P.SetCarry(false); return 0 }

// SEC - Set Carry Flag
func (c *Cpu) SEC(bus *mem.Bus) byte { c.P.SetCarry(true); return 0 }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(bus *mem.Bus) byte { c.P.SetInterrupt(false); return 0 }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(bus *mem.Bus) byte { c.P.SetInterrupt(true); return 0 }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(bus *mem.Bus) byte { c.P.SetDecimal(false); return 0 }

// SED - Set Decimal Flag
func (c *Cpu) SED(bus *mem.Bus) byte { c.P.SetDecimal(true); return 0 }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(bus *mem.Bus) byte { c.P.SetOverflow(false); return 0 }

// NOP - No Operation
func (c *Cpu) NOP(bus *mem.Bus) byte { return 0 }

// XXX - placeholder for illegal/undocumented opcodes. Behaves as NOP; richer
// illegal-opcode emulation is left for a future extension.
func (c *Cpu) XXX(bus *mem.Bus) byte { return 0 }
