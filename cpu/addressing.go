package cpu

import (
	"gone6502/mask"
	"gone6502/mem"
)

// An AddressingMode tells the Cpu where to look for the operand of the
// current instruction. There are 13 possible modes; most can index the full
// 64 kB range, the exception being ZeroPage-family modes, which are confined
// to the first page.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX
	IndirectY
	Relative

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect
)

// decode resolves the effective address for mode, advancing pc past any
// operand bytes and setting AddrAbs or AddrRel. It returns 1 iff the mode
// itself requests an extra cycle (a page cross on an indexed read), 0
// otherwise. decode never touches Cycles directly -- the caller combines the
// returned value with the operation's own extra-cycle request.
func (c *Cpu) decode(mode AddressingMode, bus *mem.Bus) byte {
	switch mode {

	case Implied, Accumulator:
		return 0

	case Immediate:
		c.AddrAbs = c.PC
		c.PC++
		return 0

	case ZeroPage:
		b := bus.Read(c.PC)
		c.PC++
		c.AddrAbs = uint16(b) & 0x00FF
		return 0

	case ZeroPageX:
		b := bus.Read(c.PC)
		c.PC++
		c.AddrAbs = uint16(b+c.X) & 0x00FF
		return 0

	case ZeroPageY:
		b := bus.Read(c.PC)
		c.PC++
		c.AddrAbs = uint16(b+c.Y) & 0x00FF
		return 0

	case Relative:
		d := bus.Read(c.PC)
		c.PC++
		c.AddrRel = signExtend(d)
		return 0

	case Absolute:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		c.AddrAbs = mask.Word(hi, lo)
		return 0

	case AbsoluteX:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		base := mask.Word(hi, lo)
		c.AddrAbs = base + uint16(c.X)
		return pageCrossed(base, c.AddrAbs)

	case AbsoluteY:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		base := mask.Word(hi, lo)
		c.AddrAbs = base + uint16(c.Y)
		return pageCrossed(base, c.AddrAbs)

	case Indirect:
		// JMP ($nnnn): fetch a pointer, then fetch the target from it.
		ptrLo := bus.Read(c.PC)
		c.PC++
		ptrHi := bus.Read(c.PC)
		c.PC++
		ptr := mask.Word(ptrHi, ptrLo)

		lo := bus.Read(ptr)
		var hi byte
		if ptrLo == 0xFF {
			// Hardware bug: the high byte wraps within the same page
			// instead of crossing into the next one.
			hi = bus.Read(ptr & 0xFF00)
		} else {
			hi = bus.Read(ptr + 1)
		}
		c.AddrAbs = mask.Word(hi, lo)
		return 0

	case IndirectX:
		t := bus.Read(c.PC)
		c.PC++
		lo := bus.Read(uint16(t+c.X) & 0x00FF)
		hi := bus.Read(uint16(t+c.X+1) & 0x00FF)
		c.AddrAbs = mask.Word(hi, lo)
		return 0

	case IndirectY:
		t := bus.Read(c.PC)
		c.PC++
		lo := bus.Read(uint16(t) & 0x00FF)
		hi := bus.Read(uint16(t+1) & 0x00FF)
		base := mask.Word(hi, lo)
		c.AddrAbs = base + uint16(c.Y)
		return pageCrossed(base, c.AddrAbs)
	}

	return 0
}

// fetch populates c.Fetched with the operand for the current instruction.
func (c *Cpu) fetch(mode AddressingMode, bus *mem.Bus) {
	if mode == Implied || mode == Accumulator {
		c.Fetched = c.A
		return
	}
	c.Fetched = bus.Read(c.AddrAbs)
}

func pageCrossed(base, resolved uint16) byte {
	if base&0xFF00 != resolved&0xFF00 {
		return 1
	}
	return 0
}

// signExtend widens a signed byte branch offset to a 16-bit two's-complement
// value, so that adding it to pc wraps exactly like hardware.
func signExtend(d byte) uint16 {
	if d&0x80 != 0 {
		return uint16(d) | 0xFF00
	}
	return uint16(d)
}
