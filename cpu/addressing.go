package cpu

// Mode is an addressing mode. Decoding a byte produces a (Mnemonic,
// Mode) pair; resolving a Mode consumes 0, 1, or 2 operand bytes from
// PC and produces an effective address.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

var modeNames = [...]string{
	ModeImplied:     "implied",
	ModeAccumulator: "accumulator",
	ModeImmediate:   "immediate",
	ModeZeroPage:    "zeropage",
	ModeZeroPageX:   "zeropage,x",
	ModeZeroPageY:   "zeropage,y",
	ModeAbsolute:    "absolute",
	ModeAbsoluteX:   "absolute,x",
	ModeAbsoluteY:   "absolute,y",
	ModeIndirect:    "indirect",
	ModeIndirectX:   "(indirect,x)",
	ModeIndirectY:   "(indirect),y",
	ModeRelative:    "relative",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if int(m) < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// resolve consumes whatever operand bytes the mode requires from PC
// and returns the effective address for that operand. For
// ModeImplied and ModeAccumulator the result is unused by the kernel
// (the kernel targets A directly in the accumulator case). For
// ModeImmediate the "address" is simply the location of the operand
// byte itself, which is already correct to Read from since nothing
// mutates memory between resolution and execution.
func (p *Chip) resolve(mode Mode) uint16 {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return 0

	case ModeImmediate:
		addr := p.PC
		p.fetch()
		return addr

	case ModeZeroPage:
		return uint16(p.fetch())

	case ModeZeroPageX:
		return uint16(p.fetch() + p.X)

	case ModeZeroPageY:
		return uint16(p.fetch() + p.Y)

	case ModeAbsolute:
		lo := p.fetch()
		hi := p.fetch()
		return uint16(lo) | uint16(hi)<<8

	case ModeAbsoluteX:
		lo := p.fetch()
		hi := p.fetch()
		return (uint16(lo) | uint16(hi)<<8) + uint16(p.X)

	case ModeAbsoluteY:
		lo := p.fetch()
		hi := p.fetch()
		return (uint16(lo) | uint16(hi)<<8) + uint16(p.Y)

	case ModeIndirect:
		lo := p.fetch()
		hi := p.fetch()
		ptr := uint16(lo) | uint16(hi)<<8
		// JMP (ind) page-wrap bug: the high byte is read from the
		// same page as the pointer, not the next page, when the low
		// byte of ptr is 0xFF.
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		return uint16(p.mem.Read(ptr)) | uint16(p.mem.Read(hiAddr))<<8

	case ModeIndirectX:
		zp := p.fetch() + p.X
		lo := p.mem.Read(uint16(zp))
		hi := p.mem.Read(uint16(zp + 1))
		return uint16(lo) | uint16(hi)<<8

	case ModeIndirectY:
		zp := p.fetch()
		lo := p.mem.Read(uint16(zp))
		hi := p.mem.Read(uint16(zp + 1))
		base := uint16(lo) | uint16(hi)<<8
		return base + uint16(p.Y)

	case ModeRelative:
		offset := int8(p.fetch())
		return uint16(int32(p.PC) + int32(offset))
	}
	return 0
}
