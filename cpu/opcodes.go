package cpu

import "gone6502/mem"

// An Opcode binds a single byte value (0x00-0xff) to the addressing mode
// that resolves its operand, the operation that executes it, and the base
// number of clock cycles it takes. Multiple Opcodes may share the same
// Instruction, differing only in how the operand is fetched; that is the
// addressing mode's job, not the Instruction's.
type Opcode struct {
	Name        string // mnemonic, for diagnostics/debugging
	Mode        AddressingMode
	Instruction func(c *Cpu, bus *mem.Bus) byte
	Cycles      byte
}

// Opcodes is the 256-entry static dispatch table: opcode byte -> (mode, op,
// base cycles). Illegal byte values are pre-filled with an XXX/NOP-equivalent
// entry by init, then the 151 documented opcodes overwrite their slots
// below.
var Opcodes [256]Opcode

func init() {
	for i := range Opcodes {
		Opcodes[i] = Opcode{Name: "XXX", Mode: Implied, Instruction: (*Cpu).XXX, Cycles: 2}
	}

	set := func(b byte, name string, mode AddressingMode, fn func(*Cpu, *mem.Bus) byte, cycles byte) {
		Opcodes[b] = Opcode{Name: name, Mode: mode, Instruction: fn, Cycles: cycles}
	}

	set(0x69, "ADC", Immediate, (*Cpu).ADC, 2)
	set(0x65, "ADC", ZeroPage, (*Cpu).ADC, 3)
	set(0x75, "ADC", ZeroPageX, (*Cpu).ADC, 4)
	set(0x6D, "ADC", Absolute, (*Cpu).ADC, 4)
	set(0x7D, "ADC", AbsoluteX, (*Cpu).ADC, 4)
	set(0x79, "ADC", AbsoluteY, (*Cpu).ADC, 4)
	set(0x61, "ADC", IndirectX, (*Cpu).ADC, 6)
	set(0x71, "ADC", IndirectY, (*Cpu).ADC, 5)

	set(0x29, "AND", Immediate, (*Cpu).AND, 2)
	set(0x25, "AND", ZeroPage, (*Cpu).AND, 3)
	set(0x35, "AND", ZeroPageX, (*Cpu).AND, 4)
	set(0x2D, "AND", Absolute, (*Cpu).AND, 4)
	set(0x3D, "AND", AbsoluteX, (*Cpu).AND, 4)
	set(0x39, "AND", AbsoluteY, (*Cpu).AND, 4)
	set(0x21, "AND", IndirectX, (*Cpu).AND, 6)
	set(0x31, "AND", IndirectY, (*Cpu).AND, 5)

	set(0x0A, "ASL", Accumulator, (*Cpu).ASL, 2)
	set(0x06, "ASL", ZeroPage, (*Cpu).ASL, 5)
	set(0x16, "ASL", ZeroPageX, (*Cpu).ASL, 6)
	set(0x0E, "ASL", Absolute, (*Cpu).ASL, 6)
	set(0x1E, "ASL", AbsoluteX, (*Cpu).ASL, 7)

	set(0x90, "BCC", Relative, (*Cpu).BCC, 2)
	set(0xB0, "BCS", Relative, (*Cpu).BCS, 2)
	set(0xF0, "BEQ", Relative, (*Cpu).BEQ, 2)

	set(0x24, "BIT", ZeroPage, (*Cpu).BIT, 3)
	set(0x2C, "BIT", Absolute, (*Cpu).BIT, 4)

	set(0x30, "BMI", Relative, (*Cpu).BMI, 2)
	set(0xD0, "BNE", Relative, (*Cpu).BNE, 2)
	set(0x10, "BPL", Relative, (*Cpu).BPL, 2)

	set(0x00, "BRK", Implied, (*Cpu).BRK, 7)

	set(0x50, "BVC", Relative, (*Cpu).BVC, 2)
	set(0x70, "BVS", Relative, (*Cpu).BVS, 2)

	set(0x18, "CLC", Implied, (*Cpu).CLC, 2)
	set(0xD8, "CLD", Implied, (*Cpu).CLD, 2)
	set(0x58, "CLI", Implied, (*Cpu).CLI, 2)
	set(0xB8, "CLV", Implied, (*Cpu).CLV, 2)

	set(0xC9, "CMP", Immediate, (*Cpu).CMP, 2)
	set(0xC5, "CMP", ZeroPage, (*Cpu).CMP, 3)
	set(0xD5, "CMP", ZeroPageX, (*Cpu).CMP, 4)
	set(0xCD, "CMP", Absolute, (*Cpu).CMP, 4)
	set(0xDD, "CMP", AbsoluteX, (*Cpu).CMP, 4)
	set(0xD9, "CMP", AbsoluteY, (*Cpu).CMP, 4)
	set(0xC1, "CMP", IndirectX, (*Cpu).CMP, 6)
	set(0xD1, "CMP", IndirectY, (*Cpu).CMP, 5)

	set(0xE0, "CPX", Immediate, (*Cpu).CPX, 2)
	set(0xE4, "CPX", ZeroPage, (*Cpu).CPX, 3)
	set(0xEC, "CPX", Absolute, (*Cpu).CPX, 4)

	set(0xC0, "CPY", Immediate, (*Cpu).CPY, 2)
	set(0xC4, "CPY", ZeroPage, (*Cpu).CPY, 3)
	set(0xCC, "CPY", Absolute, (*Cpu).CPY, 4)

	set(0xC6, "DEC", ZeroPage, (*Cpu).DEC, 5)
	set(0xD6, "DEC", ZeroPageX, (*Cpu).DEC, 6)
	set(0xCE, "DEC", Absolute, (*Cpu).DEC, 6)
	set(0xDE, "DEC", AbsoluteX, (*Cpu).DEC, 7)

	set(0xCA, "DEX", Implied, (*Cpu).DEX, 2)
	set(0x88, "DEY", Implied, (*Cpu).DEY, 2)

	set(0x49, "EOR", Immediate, (*Cpu).EOR, 2)
	set(0x45, "EOR", ZeroPage, (*Cpu).EOR, 3)
	set(0x55, "EOR", ZeroPageX, (*Cpu).EOR, 4)
	set(0x4D, "EOR", Absolute, (*Cpu).EOR, 4)
	set(0x5D, "EOR", AbsoluteX, (*Cpu).EOR, 4)
	set(0x59, "EOR", AbsoluteY, (*Cpu).EOR, 4)
	set(0x41, "EOR", IndirectX, (*Cpu).EOR, 6)
	set(0x51, "EOR", IndirectY, (*Cpu).EOR, 5)

	set(0xE6, "INC", ZeroPage, (*Cpu).INC, 5)
	set(0xF6, "INC", ZeroPageX, (*Cpu).INC, 6)
	set(0xEE, "INC", Absolute, (*Cpu).INC, 6)
	set(0xFE, "INC", AbsoluteX, (*Cpu).INC, 7)

	set(0xE8, "INX", Implied, (*Cpu).INX, 2)
	set(0xC8, "INY", Implied, (*Cpu).INY, 2)

	set(0x4C, "JMP", Absolute, (*Cpu).JMP, 3)
	set(0x6C, "JMP", Indirect, (*Cpu).JMP, 5)

	set(0x20, "JSR", Absolute, (*Cpu).JSR, 6)

	set(0xA9, "LDA", Immediate, (*Cpu).LDA, 2)
	set(0xA5, "LDA", ZeroPage, (*Cpu).LDA, 3)
	set(0xB5, "LDA", ZeroPageX, (*Cpu).LDA, 4)
	set(0xAD, "LDA", Absolute, (*Cpu).LDA, 4)
	set(0xBD, "LDA", AbsoluteX, (*Cpu).LDA, 4)
	set(0xB9, "LDA", AbsoluteY, (*Cpu).LDA, 4)
	set(0xA1, "LDA", IndirectX, (*Cpu).LDA, 6)
	set(0xB1, "LDA", IndirectY, (*Cpu).LDA, 5)

	set(0xA2, "LDX", Immediate, (*Cpu).LDX, 2)
	set(0xA6, "LDX", ZeroPage, (*Cpu).LDX, 3)
	set(0xB6, "LDX", ZeroPageY, (*Cpu).LDX, 4)
	set(0xAE, "LDX", Absolute, (*Cpu).LDX, 4)
	set(0xBE, "LDX", AbsoluteY, (*Cpu).LDX, 4)

	set(0xA0, "LDY", Immediate, (*Cpu).LDY, 2)
	set(0xA4, "LDY", ZeroPage, (*Cpu).LDY, 3)
	set(0xB4, "LDY", ZeroPageX, (*Cpu).LDY, 4)
	set(0xAC, "LDY", Absolute, (*Cpu).LDY, 4)
	set(0xBC, "LDY", AbsoluteX, (*Cpu).LDY, 4)

	set(0x4A, "LSR", Accumulator, (*Cpu).LSR, 2)
	set(0x46, "LSR", ZeroPage, (*Cpu).LSR, 5)
	set(0x56, "LSR", ZeroPageX, (*Cpu).LSR, 6)
	set(0x4E, "LSR", Absolute, (*Cpu).LSR, 6)
	set(0x5E, "LSR", AbsoluteX, (*Cpu).LSR, 7)

	set(0xEA, "NOP", Implied, (*Cpu).NOP, 2)

	set(0x09, "ORA", Immediate, (*Cpu).ORA, 2)
	set(0x05, "ORA", ZeroPage, (*Cpu).ORA, 3)
	set(0x15, "ORA", ZeroPageX, (*Cpu).ORA, 4)
	set(0x0D, "ORA", Absolute, (*Cpu).ORA, 4)
	set(0x1D, "ORA", AbsoluteX, (*Cpu).ORA, 4)
	set(0x19, "ORA", AbsoluteY, (*Cpu).ORA, 4)
	set(0x01, "ORA", IndirectX, (*Cpu).ORA, 6)
	set(0x11, "ORA", IndirectY, (*Cpu).ORA, 5)

	set(0x48, "PHA", Implied, (*Cpu).PHA, 3)
	set(0x08, "PHP", Implied, (*Cpu).PHP, 3)
	set(0x68, "PLA", Implied, (*Cpu).PLA, 4)
	set(0x28, "PLP", Implied, (*Cpu).PLP, 4)

	set(0x2A, "ROL", Accumulator, (*Cpu).ROL, 2)
	set(0x26, "ROL", ZeroPage, (*Cpu).ROL, 5)
	set(0x36, "ROL", ZeroPageX, (*Cpu).ROL, 6)
	set(0x2E, "ROL", Absolute, (*Cpu).ROL, 6)
	set(0x3E, "ROL", AbsoluteX, (*Cpu).ROL, 7)

	set(0x6A, "ROR", Accumulator, (*Cpu).ROR, 2)
	set(0x66, "ROR", ZeroPage, (*Cpu).ROR, 5)
	set(0x76, "ROR", ZeroPageX, (*Cpu).ROR, 6)
	set(0x6E, "ROR", Absolute, (*Cpu).ROR, 6)
	set(0x7E, "ROR", AbsoluteX, (*Cpu).ROR, 7)

	set(0x40, "RTI", Implied, (*Cpu).RTI, 6)
	set(0x60, "RTS", Implied, (*Cpu).RTS, 6)

	set(0xE9, "SBC", Immediate, (*Cpu).SBC, 2)
	set(0xE5, "SBC", ZeroPage, (*Cpu).SBC, 3)
	set(0xF5, "SBC", ZeroPageX, (*Cpu).SBC, 4)
	set(0xED, "SBC", Absolute, (*Cpu).SBC, 4)
	set(0xFD, "SBC", AbsoluteX, (*Cpu).SBC, 4)
	set(0xF9, "SBC", AbsoluteY, (*Cpu).SBC, 4)
	set(0xE1, "SBC", IndirectX, (*Cpu).SBC, 6)
	set(0xF1, "SBC", IndirectY, (*Cpu).SBC, 5)

	set(0x38, "SEC", Implied, (*Cpu).SEC, 2)
	set(0xF8, "SED", Implied, (*Cpu).SED, 2)
	set(0x78, "SEI", Implied, (*Cpu).SEI, 2)

	set(0x85, "STA", ZeroPage, (*Cpu).STA, 3)
	set(0x95, "STA", ZeroPageX, (*Cpu).STA, 4)
	set(0x8D, "STA", Absolute, (*Cpu).STA, 4)
	set(0x9D, "STA", AbsoluteX, (*Cpu).STA, 5)
	set(0x99, "STA", AbsoluteY, (*Cpu).STA, 5)
	set(0x81, "STA", IndirectX, (*Cpu).STA, 6)
	set(0x91, "STA", IndirectY, (*Cpu).STA, 6)

	set(0x86, "STX", ZeroPage, (*Cpu).STX, 3)
	set(0x96, "STX", ZeroPageY, (*Cpu).STX, 4)
	set(0x8E, "STX", Absolute, (*Cpu).STX, 4)

	set(0x84, "STY", ZeroPage, (*Cpu).STY, 3)
	set(0x94, "STY", ZeroPageX, (*Cpu).STY, 4)
	set(0x8C, "STY", Absolute, (*Cpu).STY, 4)

	set(0xAA, "TAX", Implied, (*Cpu).TAX, 2)
	set(0xA8, "TAY", Implied, (*Cpu).TAY, 2)
	set(0xBA, "TSX", Implied, (*Cpu).TSX, 2)
	set(0x8A, "TXA", Implied, (*Cpu).TXA, 2)
	set(0x9A, "TXS", Implied, (*Cpu).TXS, 2)
	set(0x98, "TYA", Implied, (*Cpu).TYA, 2)
}
