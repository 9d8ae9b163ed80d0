package loader

import (
	"testing"

	"github.com/jchacon-labs/mos6502/cpu"
	"github.com/jchacon-labs/mos6502/memory"
)

func TestLoadFlatWritesImage(t *testing.T) {
	mem := memory.NewFlat(nil)
	mem.PowerOn()
	image := []byte{0xA9, 0x10, 0x00}
	if err := LoadFlat(mem, image, 0x2000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range image {
		if got := mem.Read(0x2000 + uint16(i)); got != want {
			t.Errorf("byte %d = %.2X, want %.2X", i, got, want)
		}
	}
}

func TestLoadFlatRejectsImageLargerThanAddressSpace(t *testing.T) {
	mem := memory.NewFlat(nil)
	mem.PowerOn()
	image := make([]byte, 1<<16+1)
	err := LoadFlat(mem, image, 0)
	if err == nil {
		t.Fatal("expected ErrImageTooLarge")
	}
	if _, ok := err.(ErrImageTooLarge); !ok {
		t.Errorf("err = %T, want ErrImageTooLarge", err)
	}
}

func TestLoadFlatExactFitSucceeds(t *testing.T) {
	mem := memory.NewFlat(nil)
	mem.PowerOn()
	image := make([]byte, 1<<16)
	if err := LoadFlat(mem, image, 0); err != nil {
		t.Fatalf("exact-fit image should not overflow: %v", err)
	}
}

func TestLoadFlatWrapsAtTopOfAddressSpace(t *testing.T) {
	mem := memory.NewFlat(nil)
	mem.PowerOn()
	image := []byte{0x11, 0x22, 0x33, 0x44}
	if err := LoadFlat(mem, image, 0xFFFE); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Read(0xFFFE); got != 0x11 {
		t.Errorf("byte at 0xFFFE = %.2X, want 0x11", got)
	}
	if got := mem.Read(0xFFFF); got != 0x22 {
		t.Errorf("byte at 0xFFFF = %.2X, want 0x22", got)
	}
	if got := mem.Read(0x0000); got != 0x33 {
		t.Errorf("byte wrapped to 0x0000 = %.2X, want 0x33", got)
	}
	if got := mem.Read(0x0001); got != 0x44 {
		t.Errorf("byte wrapped to 0x0001 = %.2X, want 0x44", got)
	}
}

func TestSetVectors(t *testing.T) {
	mem := memory.NewFlat(nil)
	mem.PowerOn()

	SetResetVector(mem, 0x1234)
	if got := memory.ReadU16LE(mem, cpu.RESET_VECTOR); got != 0x1234 {
		t.Errorf("reset vector = %.4X, want 0x1234", got)
	}

	SetIRQVector(mem, 0x5678)
	if got := memory.ReadU16LE(mem, cpu.IRQ_VECTOR); got != 0x5678 {
		t.Errorf("irq vector = %.4X, want 0x5678", got)
	}

	SetNMIVector(mem, 0x9ABC)
	if got := memory.ReadU16LE(mem, cpu.NMI_VECTOR); got != 0x9ABC {
		t.Errorf("nmi vector = %.4X, want 0x9ABC", got)
	}
}
