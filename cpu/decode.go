package cpu

// opcodeEntry is one row of the 256-entry opcode decode table: the
// (Mnemonic, Mode) pair an opcode byte maps to, its nominal cycle
// count, and whether it is one of the 151 documented opcodes. Entries
// with Legal == false are never executed; Step surfaces them as
// IllegalOpcode without consulting the rest of the entry.
type opcodeEntry struct {
	Mnemonic Mnemonic
	Mode     Mode
	Cycles   int
	Legal    bool
}

// op is a small constructor to keep the table below dense and
// reviewable as a grid rather than 151 duplicated struct literals.
func op(m Mnemonic, mode Mode, cycles int) opcodeEntry {
	return opcodeEntry{Mnemonic: m, Mode: mode, Cycles: cycles, Legal: true}
}

// Decode exposes the opcode decode table to collaborators, such as the
// disassemble package, that need to know an opcode's mnemonic and
// addressing mode without executing it. legal is false for any of the
// 105 undocumented opcode values.
func Decode(opcode uint8) (mnemonic Mnemonic, mode Mode, cycles int, legal bool) {
	e := opcodeTable[opcode]
	return e.Mnemonic, e.Mode, e.Cycles, e.Legal
}

// opcodeTable maps every possible opcode byte to its decode. Byte
// values not assigned below default to the zero opcodeEntry, whose
// Legal field is false, matching the "undocumented opcodes are a
// single explicit illegal outcome" contract.
var opcodeTable = [256]opcodeEntry{
	0x00: op(BRK, ModeImplied, 7),
	0x01: op(ORA, ModeIndirectX, 6),
	0x05: op(ORA, ModeZeroPage, 3),
	0x06: op(ASL, ModeZeroPage, 5),
	0x08: op(PHP, ModeImplied, 3),
	0x09: op(ORA, ModeImmediate, 2),
	0x0A: op(ASL, ModeAccumulator, 2),
	0x0D: op(ORA, ModeAbsolute, 4),
	0x0E: op(ASL, ModeAbsolute, 6),

	0x10: op(BPL, ModeRelative, 2),
	0x11: op(ORA, ModeIndirectY, 5),
	0x15: op(ORA, ModeZeroPageX, 4),
	0x16: op(ASL, ModeZeroPageX, 6),
	0x18: op(CLC, ModeImplied, 2),
	0x19: op(ORA, ModeAbsoluteY, 4),
	0x1D: op(ORA, ModeAbsoluteX, 4),
	0x1E: op(ASL, ModeAbsoluteX, 7),

	0x20: op(JSR, ModeAbsolute, 6),
	0x21: op(AND, ModeIndirectX, 6),
	0x24: op(BIT, ModeZeroPage, 3),
	0x25: op(AND, ModeZeroPage, 3),
	0x26: op(ROL, ModeZeroPage, 5),
	0x28: op(PLP, ModeImplied, 4),
	0x29: op(AND, ModeImmediate, 2),
	0x2A: op(ROL, ModeAccumulator, 2),
	0x2C: op(BIT, ModeAbsolute, 4),
	0x2D: op(AND, ModeAbsolute, 4),
	0x2E: op(ROL, ModeAbsolute, 6),

	0x30: op(BMI, ModeRelative, 2),
	0x31: op(AND, ModeIndirectY, 5),
	0x35: op(AND, ModeZeroPageX, 4),
	0x36: op(ROL, ModeZeroPageX, 6),
	0x38: op(SEC, ModeImplied, 2),
	0x39: op(AND, ModeAbsoluteY, 4),
	0x3D: op(AND, ModeAbsoluteX, 4),
	0x3E: op(ROL, ModeAbsoluteX, 7),

	0x40: op(RTI, ModeImplied, 6),
	0x41: op(EOR, ModeIndirectX, 6),
	0x45: op(EOR, ModeZeroPage, 3),
	0x46: op(LSR, ModeZeroPage, 5),
	0x48: op(PHA, ModeImplied, 3),
	0x49: op(EOR, ModeImmediate, 2),
	0x4A: op(LSR, ModeAccumulator, 2),
	0x4C: op(JMP, ModeAbsolute, 3),
	0x4D: op(EOR, ModeAbsolute, 4),
	0x4E: op(LSR, ModeAbsolute, 6),

	0x50: op(BVC, ModeRelative, 2),
	0x51: op(EOR, ModeIndirectY, 5),
	0x55: op(EOR, ModeZeroPageX, 4),
	0x56: op(LSR, ModeZeroPageX, 6),
	0x58: op(CLI, ModeImplied, 2),
	0x59: op(EOR, ModeAbsoluteY, 4),
	0x5D: op(EOR, ModeAbsoluteX, 4),
	0x5E: op(LSR, ModeAbsoluteX, 7),

	0x60: op(RTS, ModeImplied, 6),
	0x61: op(ADC, ModeIndirectX, 6),
	0x65: op(ADC, ModeZeroPage, 3),
	0x66: op(ROR, ModeZeroPage, 5),
	0x68: op(PLA, ModeImplied, 4),
	0x69: op(ADC, ModeImmediate, 2),
	0x6A: op(ROR, ModeAccumulator, 2),
	0x6C: op(JMP, ModeIndirect, 5),
	0x6D: op(ADC, ModeAbsolute, 4),
	0x6E: op(ROR, ModeAbsolute, 6),

	0x70: op(BVS, ModeRelative, 2),
	0x71: op(ADC, ModeIndirectY, 5),
	0x75: op(ADC, ModeZeroPageX, 4),
	0x76: op(ROR, ModeZeroPageX, 6),
	0x78: op(SEI, ModeImplied, 2),
	0x79: op(ADC, ModeAbsoluteY, 4),
	0x7D: op(ADC, ModeAbsoluteX, 4),
	0x7E: op(ROR, ModeAbsoluteX, 7),

	0x81: op(STA, ModeIndirectX, 6),
	0x84: op(STY, ModeZeroPage, 3),
	0x85: op(STA, ModeZeroPage, 3),
	0x86: op(STX, ModeZeroPage, 3),
	0x88: op(DEY, ModeImplied, 2),
	0x8A: op(TXA, ModeImplied, 2),
	0x8C: op(STY, ModeAbsolute, 4),
	0x8D: op(STA, ModeAbsolute, 4),
	0x8E: op(STX, ModeAbsolute, 4),

	0x90: op(BCC, ModeRelative, 2),
	0x91: op(STA, ModeIndirectY, 6),
	0x94: op(STY, ModeZeroPageX, 4),
	0x95: op(STA, ModeZeroPageX, 4),
	0x96: op(STX, ModeZeroPageY, 4),
	0x98: op(TYA, ModeImplied, 2),
	0x99: op(STA, ModeAbsoluteY, 5),
	0x9A: op(TXS, ModeImplied, 2),
	0x9D: op(STA, ModeAbsoluteX, 5),

	0xA0: op(LDY, ModeImmediate, 2),
	0xA1: op(LDA, ModeIndirectX, 6),
	0xA2: op(LDX, ModeImmediate, 2),
	0xA4: op(LDY, ModeZeroPage, 3),
	0xA5: op(LDA, ModeZeroPage, 3),
	0xA6: op(LDX, ModeZeroPage, 3),
	0xA8: op(TAY, ModeImplied, 2),
	0xA9: op(LDA, ModeImmediate, 2),
	0xAA: op(TAX, ModeImplied, 2),
	0xAC: op(LDY, ModeAbsolute, 4),
	0xAD: op(LDA, ModeAbsolute, 4),
	0xAE: op(LDX, ModeAbsolute, 4),

	0xB0: op(BCS, ModeRelative, 2),
	0xB1: op(LDA, ModeIndirectY, 5),
	0xB4: op(LDY, ModeZeroPageX, 4),
	0xB5: op(LDA, ModeZeroPageX, 4),
	0xB6: op(LDX, ModeZeroPageY, 4),
	0xB8: op(CLV, ModeImplied, 2),
	0xB9: op(LDA, ModeAbsoluteY, 4),
	0xBA: op(TSX, ModeImplied, 2),
	0xBC: op(LDY, ModeAbsoluteX, 4),
	0xBD: op(LDA, ModeAbsoluteX, 4),
	0xBE: op(LDX, ModeAbsoluteY, 4),

	0xC0: op(CPY, ModeImmediate, 2),
	0xC1: op(CMP, ModeIndirectX, 6),
	0xC4: op(CPY, ModeZeroPage, 3),
	0xC5: op(CMP, ModeZeroPage, 3),
	0xC6: op(DEC, ModeZeroPage, 5),
	0xC8: op(INY, ModeImplied, 2),
	0xC9: op(CMP, ModeImmediate, 2),
	0xCA: op(DEX, ModeImplied, 2),
	0xCC: op(CPY, ModeAbsolute, 4),
	0xCD: op(CMP, ModeAbsolute, 4),
	0xCE: op(DEC, ModeAbsolute, 6),

	0xD0: op(BNE, ModeRelative, 2),
	0xD1: op(CMP, ModeIndirectY, 5),
	0xD5: op(CMP, ModeZeroPageX, 4),
	0xD6: op(DEC, ModeZeroPageX, 6),
	0xD8: op(CLD, ModeImplied, 2),
	0xD9: op(CMP, ModeAbsoluteY, 4),
	0xDD: op(CMP, ModeAbsoluteX, 4),
	0xDE: op(DEC, ModeAbsoluteX, 7),

	0xE0: op(CPX, ModeImmediate, 2),
	0xE1: op(SBC, ModeIndirectX, 6),
	0xE4: op(CPX, ModeZeroPage, 3),
	0xE5: op(SBC, ModeZeroPage, 3),
	0xE6: op(INC, ModeZeroPage, 5),
	0xE8: op(INX, ModeImplied, 2),
	0xE9: op(SBC, ModeImmediate, 2),
	0xEA: op(NOP, ModeImplied, 2),
	0xEC: op(CPX, ModeAbsolute, 4),
	0xED: op(SBC, ModeAbsolute, 4),
	0xEE: op(INC, ModeAbsolute, 6),

	0xF0: op(BEQ, ModeRelative, 2),
	0xF1: op(SBC, ModeIndirectY, 5),
	0xF5: op(SBC, ModeZeroPageX, 4),
	0xF6: op(INC, ModeZeroPageX, 6),
	0xF8: op(SED, ModeImplied, 2),
	0xF9: op(SBC, ModeAbsoluteY, 4),
	0xFD: op(SBC, ModeAbsoluteX, 4),
	0xFE: op(INC, ModeAbsoluteX, 7),
}
