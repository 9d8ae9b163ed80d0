// Package loader implements the binary-image loading collaborator the
// core assumes is already done before Reset: writing a program image
// into a memory.Bank and setting the reset vector. None of this is
// part of the interpreter; it exists so cmd/runsix and tests have a
// single, shared way to get a program into memory.
package loader

import (
	"fmt"

	"github.com/jchacon-labs/mos6502/cpu"
	"github.com/jchacon-labs/mos6502/memory"
)

// ErrImageTooLarge is returned by LoadFlat when image is longer than
// the entire 64KiB address space.
type ErrImageTooLarge struct {
	At     uint16
	Length int
}

// Error implements the error interface.
func (e ErrImageTooLarge) Error() string {
	return fmt.Sprintf("image of %d bytes at 0x%.4X does not fit in a 64KiB address space", e.Length, e.At)
}

// LoadFlat copies image into bank starting at address at, wrapping the
// write address modulo 2^16. It is a static, pre-execution check: it
// fails only if image is longer than the entire 64KiB address space,
// never mid-run.
func LoadFlat(bank memory.Bank, image []byte, at uint16) error {
	if len(image) > 1<<16 {
		return ErrImageTooLarge{At: at, Length: len(image)}
	}
	for i, b := range image {
		bank.Write(at+uint16(i), b)
	}
	return nil
}

// SetResetVector writes addr, little-endian, to $FFFC/$FFFD.
func SetResetVector(bank memory.Bank, addr uint16) {
	memory.WriteU16LE(bank, cpu.RESET_VECTOR, addr)
}

// SetIRQVector writes addr, little-endian, to $FFFE/$FFFF.
func SetIRQVector(bank memory.Bank, addr uint16) {
	memory.WriteU16LE(bank, cpu.IRQ_VECTOR, addr)
}

// SetNMIVector writes addr, little-endian, to $FFFA/$FFFB.
func SetNMIVector(bank memory.Bank, addr uint16) {
	memory.WriteU16LE(bank, cpu.NMI_VECTOR, addr)
}
