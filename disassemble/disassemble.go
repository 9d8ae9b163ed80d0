// Package disassemble implements a disassembler for the documented
// 6502 opcode set. It shares the decode table with package cpu so the
// mnemonic/mode pair it prints can never drift from what the
// interpreter actually executes, but it never mutates CPU or memory
// state: this is a read-only collaborator, not part of the core.
package disassemble

import (
	"fmt"

	"github.com/jchacon-labs/mos6502/cpu"
	"github.com/jchacon-labs/mos6502/memory"
)

// Instruction decodes the instruction at pc into human-readable
// mnemonic + operand text (e.g. "LDA #$10", "JMP ($30FF)") and returns
// the instruction's length in bytes, including the opcode. For every
// documented opcode it reads the two bytes after pc, whatever the
// mode, so the caller must ensure those addresses are valid (any
// 64KiB memory.Bank qualifies, since reads are total).
//
// An undocumented opcode disassembles to ".byte $xx" with a length of
// 1 and never fails.
func Instruction(mem memory.Bank, pc uint16) (text string, length int) {
	opcode := mem.Read(pc)
	mnemonic, mode, _, legal := cpu.Decode(opcode)
	if !legal {
		return fmt.Sprintf(".byte $%.2X", opcode), 1
	}

	b1 := mem.Read(pc + 1)
	b2 := mem.Read(pc + 2)

	switch mode {
	case cpu.ModeImplied:
		return mnemonic.String(), 1
	case cpu.ModeAccumulator:
		return fmt.Sprintf("%s A", mnemonic), 1
	case cpu.ModeImmediate:
		return fmt.Sprintf("%s #$%.2X", mnemonic, b1), 2
	case cpu.ModeZeroPage:
		return fmt.Sprintf("%s $%.2X", mnemonic, b1), 2
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("%s $%.2X,X", mnemonic, b1), 2
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("%s $%.2X,Y", mnemonic, b1), 2
	case cpu.ModeIndirectX:
		return fmt.Sprintf("%s ($%.2X,X)", mnemonic, b1), 2
	case cpu.ModeIndirectY:
		return fmt.Sprintf("%s ($%.2X),Y", mnemonic, b1), 2
	case cpu.ModeRelative:
		target := uint16(int32(pc) + 2 + int32(int8(b1)))
		return fmt.Sprintf("%s $%.4X", mnemonic, target), 2
	case cpu.ModeAbsolute:
		addr := uint16(b1) | uint16(b2)<<8
		return fmt.Sprintf("%s $%.4X", mnemonic, addr), 3
	case cpu.ModeAbsoluteX:
		addr := uint16(b1) | uint16(b2)<<8
		return fmt.Sprintf("%s $%.4X,X", mnemonic, addr), 3
	case cpu.ModeAbsoluteY:
		addr := uint16(b1) | uint16(b2)<<8
		return fmt.Sprintf("%s $%.4X,Y", mnemonic, addr), 3
	case cpu.ModeIndirect:
		addr := uint16(b1) | uint16(b2)<<8
		return fmt.Sprintf("%s ($%.4X)", mnemonic, addr), 3
	}
	return fmt.Sprintf(".byte $%.2X", opcode), 1
}
