// Package cpu implements the instruction interpreter for the MOS 6502
// microprocessor: the fetch-decode-execute loop, the addressing-mode
// resolver, and the per-opcode semantics for all 151 documented
// opcodes. It depends only on the memory.Bank interface, never a
// concrete implementation, and owns no process-wide mutable state —
// every Chip is an independent, synchronous interpreter.
package cpu

import (
	"fmt"

	"github.com/jchacon-labs/mos6502/irq"
	"github.com/jchacon-labs/mos6502/memory"
)

// Processor status byte layout (bit7 -> bit0): N V 1 B D I Z C.
const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_UNUSED    = uint8(0x20) // Always reads as 1.
	P_BREAK     = uint8(0x10) // Only meaningful on a stack image.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// IllegalOpcode is the sole failure the core can raise. It is returned
// by Step when the fetched opcode is not one of the 151 documented
// values. No state beyond the opcode fetch itself (PC advancing by
// one) is mutated before this is returned.
type IllegalOpcode struct {
	PC     uint16
	Opcode uint8
}

// Error implements the error interface.
func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%.2X at PC 0x%.4X", e.Opcode, e.PC)
}

// StepInfo describes the instruction a single Step executed.
type StepInfo struct {
	PC        uint16   // Address the opcode was fetched from; for an interrupt entry, the address loaded from the vector.
	Opcode    uint8    // The raw opcode byte.
	Mnemonic  Mnemonic // Decoded mnemonic.
	Mode      Mode     // Decoded addressing mode.
	Cycles    int      // Nominal cycle count for this opcode.
	Length    int      // Total instruction length in bytes, including the opcode.
	Interrupt bool     // True if this step ran an NMI/IRQ entry sequence instead of an opcode.
}

// Options carries the optional interrupt-line collaborators a Chip can
// be wired to. A nil Options, or nil fields within one, means that
// line is never asserted. Neither line is simulated with clock-level
// timing; both are polled once per Step, between instructions, never
// mid-instruction.
type Options struct {
	IRQ irq.Sender
	NMI irq.Sender
}

// Chip is one MOS 6502 interpreter instance. It exclusively owns its
// register file for the duration of any Step call; the memory.Bank it
// was constructed with is borrowed mutably during that same call.
// Callers may only read or mutate Chip/memory state between Step
// calls.
type Chip struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16

	mem memory.Bank
	irq irq.Sender
	nmi irq.Sender
}

// New constructs an interpreter bound to mem. opts may be nil, meaning
// no interrupt lines are wired. The Chip is not reset; call Reset
// before the first Step to load PC from the reset vector.
func New(mem memory.Bank, opts *Options) *Chip {
	p := &Chip{mem: mem}
	if opts != nil {
		p.irq = opts.IRQ
		p.nmi = opts.NMI
	}
	return p
}

// Reset loads the interpreter from the reset vector. SP is set to
// 0xFD, I is set, D is cleared, and A/X/Y are cleared for determinism.
// Other flags are left as they were (spec leaves them
// unspecified-but-clearable; a freshly constructed Chip already has
// them clear).
func (p *Chip) Reset() {
	p.A, p.X, p.Y = 0, 0, 0
	p.SP = 0xFD
	p.P |= P_UNUSED | P_INTERRUPT
	p.P &^= P_DECIMAL
	p.PC = memory.ReadU16LE(p.mem, RESET_VECTOR)
}

// Mem returns the memory.Bank this interpreter is bound to, for
// collaborators such as loaders and disassemblers that need direct
// access between steps.
func (p *Chip) Mem() memory.Bank {
	return p.mem
}

// fetch reads the byte at PC and advances PC by one, wrapping modulo
// 2^16.
func (p *Chip) fetch() uint8 {
	v := p.mem.Read(p.PC)
	p.PC++
	return v
}

// push writes val to the stack page and decrements SP, wrapping
// modulo 2^8.
func (p *Chip) push(val uint8) {
	p.mem.Write(0x0100+uint16(p.SP), val)
	p.SP--
}

// pull increments SP, wrapping modulo 2^8, and reads the resulting
// stack location.
func (p *Chip) pull() uint8 {
	p.SP++
	return p.mem.Read(0x0100 + uint16(p.SP))
}

// pushAddr pushes a 16 bit address high byte first, then low byte, as
// JSR/BRK/interrupt entry require.
func (p *Chip) pushAddr(addr uint16) {
	p.push(uint8(addr >> 8))
	p.push(uint8(addr & 0xFF))
}

// pullAddr pulls a 16 bit address low byte first, then high byte, the
// inverse of pushAddr.
func (p *Chip) pullAddr() uint16 {
	lo := p.pull()
	hi := p.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// setNZ sets the Z and N flags from the given byte, per the NZ
// contract shared by every load/transfer/arithmetic/logic/shift
// operation.
func (p *Chip) setNZ(val uint8) {
	p.P &^= P_ZERO | P_NEGATIVE
	if val == 0 {
		p.P |= P_ZERO
	}
	if val&P_NEGATIVE != 0 {
		p.P |= P_NEGATIVE
	}
}

func (p *Chip) setFlag(mask uint8, set bool) {
	if set {
		p.P |= mask
	} else {
		p.P &^= mask
	}
}

// C, Z, I, D, B, V, N are read-only accessors for the individual
// status flags.
func (p *Chip) C() bool { return p.P&P_CARRY != 0 }
func (p *Chip) Z() bool { return p.P&P_ZERO != 0 }
func (p *Chip) I() bool { return p.P&P_INTERRUPT != 0 }
func (p *Chip) D() bool { return p.P&P_DECIMAL != 0 }
func (p *Chip) B() bool { return p.P&P_BREAK != 0 }
func (p *Chip) V() bool { return p.P&P_OVERFLOW != 0 }
func (p *Chip) N() bool { return p.P&P_NEGATIVE != 0 }

// interrupt runs the shared IRQ/NMI/BRK stack-frame sequence: push PC
// high, PC low, status (with B set according to brk), set I, then
// load PC from vec.
func (p *Chip) interrupt(vec uint16, brk bool) {
	p.pushAddr(p.PC)
	status := p.P | P_UNUSED
	if brk {
		status |= P_BREAK
	} else {
		status &^= P_BREAK
	}
	p.push(status)
	p.P |= P_INTERRUPT
	p.PC = memory.ReadU16LE(p.mem, vec)
}

// pendingInterrupt reports whether an interrupt line collaborator
// requires servicing before the next opcode is fetched, and which
// vector it should enter through. NMI always wins over IRQ. IRQ is
// masked by the I flag; NMI is not maskable.
func (p *Chip) pendingInterrupt() (uint16, bool) {
	if p.nmi != nil && p.nmi.Raised() {
		return NMI_VECTOR, true
	}
	if p.irq != nil && p.irq.Raised() && !p.I() {
		return IRQ_VECTOR, true
	}
	return 0, false
}

// Step executes exactly one instruction, or one pending interrupt
// entry sequence if an IRQ/NMI line collaborator is asserted. It never
// panics: memory access is total, arithmetic wraps, and stack
// operations wrap SP with no fault. The only error it can return is
// IllegalOpcode.
func (p *Chip) Step() (StepInfo, error) {
	if vec, ok := p.pendingInterrupt(); ok {
		p.interrupt(vec, false)
		return StepInfo{PC: p.PC, Interrupt: true}, nil
	}

	startPC := p.PC
	op := p.fetch()
	entry := opcodeTable[op]
	if !entry.Legal {
		return StepInfo{PC: startPC, Opcode: op}, IllegalOpcode{PC: startPC, Opcode: op}
	}

	addr := p.resolve(entry.Mode)
	length := int(p.PC - startPC)
	p.execute(entry.Mnemonic, entry.Mode, addr)

	return StepInfo{
		PC:       startPC,
		Opcode:   op,
		Mnemonic: entry.Mnemonic,
		Mode:     entry.Mode,
		Cycles:   entry.Cycles,
		Length:   length,
	}, nil
}

// Budget bounds a RunFor call by instruction count, cycle count, or
// both. A zero field means that dimension is unbounded; at least one
// must be non-zero or RunFor will run until an illegal opcode is hit.
type Budget struct {
	Instructions int
	Cycles       int
}

// RunFor executes instructions until the budget is exhausted or an
// illegal opcode is hit, whichever comes first. It returns the number
// of instructions executed and the cycles consumed (nominal counts
// from the opcode table, not wall-clock accurate). The budget check is
// the sole halt point and is only evaluated between instructions.
func (p *Chip) RunFor(b Budget) (instructions int, cycles int, err error) {
	for {
		if b.Instructions > 0 && instructions >= b.Instructions {
			return instructions, cycles, nil
		}
		if b.Cycles > 0 && cycles >= b.Cycles {
			return instructions, cycles, nil
		}
		info, serr := p.Step()
		if serr != nil {
			return instructions, cycles, serr
		}
		if !info.Interrupt {
			instructions++
			cycles += info.Cycles
		}
	}
}
