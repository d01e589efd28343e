package cpu

import "gone6502/mask"

// Flags is the 8-bit status register (P), packed as:
//
//	7654 3210
//	NV1B DIZC
//
// It is modeled as a single byte with named bit accessors, not eight
// booleans: PHP/PLP/BRK/RTI all move the whole byte atomically, including
// the B and U bits, which only have meaning in the pushed copy.
type Flags byte

func (f Flags) Carry() bool     { return mask.IsSet(byte(f), mask.I8) }
func (f Flags) Zero() bool      { return mask.IsSet(byte(f), mask.I7) }
func (f Flags) Interrupt() bool { return mask.IsSet(byte(f), mask.I6) } // IRQ disable
func (f Flags) Decimal() bool   { return mask.IsSet(byte(f), mask.I5) }
func (f Flags) Break() bool     { return mask.IsSet(byte(f), mask.I4) }
func (f Flags) Unused() bool    { return mask.IsSet(byte(f), mask.I3) }
func (f Flags) Overflow() bool  { return mask.IsSet(byte(f), mask.I2) }
func (f Flags) Negative() bool  { return mask.IsSet(byte(f), mask.I1) }

func set(b byte, pos byte, v bool) byte {
	switch pos {
	case 8:
		if v {
			return mask.Set(b, mask.I8, 1)
		}
		return mask.Unset(b, mask.I8, mask.I8)
	case 7:
		if v {
			return mask.Set(b, mask.I7, 1)
		}
		return mask.Unset(b, mask.I7, mask.I7)
	case 6:
		if v {
			return mask.Set(b, mask.I6, 1)
		}
		return mask.Unset(b, mask.I6, mask.I6)
	case 5:
		if v {
			return mask.Set(b, mask.I5, 1)
		}
		return mask.Unset(b, mask.I5, mask.I5)
	case 4:
		if v {
			return mask.Set(b, mask.I4, 1)
		}
		return mask.Unset(b, mask.I4, mask.I4)
	case 3:
		if v {
			return mask.Set(b, mask.I3, 1)
		}
		return mask.Unset(b, mask.I3, mask.I3)
	case 2:
		if v {
			return mask.Set(b, mask.I2, 1)
		}
		return mask.Unset(b, mask.I2, mask.I2)
	default: // 1
		if v {
			return mask.Set(b, mask.I1, 1)
		}
		return mask.Unset(b, mask.I1, mask.I1)
	}
}

func (f *Flags) SetCarry(v bool)     { *f = Flags(set(byte(*f), 8, v)) }
func (f *Flags) SetZero(v bool)      { *f = Flags(set(byte(*f), 7, v)) }
func (f *Flags) SetInterrupt(v bool) { *f = Flags(set(byte(*f), 6, v)) }
func (f *Flags) SetDecimal(v bool)   { *f = Flags(set(byte(*f), 5, v)) }
func (f *Flags) SetBreak(v bool)     { *f = Flags(set(byte(*f), 4, v)) }
func (f *Flags) SetUnused(v bool)    { *f = Flags(set(byte(*f), 3, v)) }
func (f *Flags) SetOverflow(v bool)  { *f = Flags(set(byte(*f), 2, v)) }
func (f *Flags) SetNegative(v bool)  { *f = Flags(set(byte(*f), 1, v)) }

// SetZN sets Zero iff value == 0, and Negative to bit 7 of value.
func (f *Flags) SetZN(value byte) {
	f.SetZero(value == 0)
	f.SetNegative(value&0x80 != 0)
}

// pushedByte returns the byte that PHP/BRK/IRQ/NMI actually write to the
// stack: the live flags with B forced to brk and U forced to 1.
func (f Flags) pushedByte(brk bool) byte {
	p := f
	p.SetBreak(brk)
	p.SetUnused(true)
	return byte(p)
}
