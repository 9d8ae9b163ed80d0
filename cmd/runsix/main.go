// runsix is a minimal command-line driver for the cpu package: it
// loads a raw binary image into a flat 64KiB memory.Bank, resets the
// interpreter, and runs it for an instruction or cycle budget,
// optionally logging each instruction, disassembled from the address it
// was fetched from, after it executes.
//
// It is purely a consumer of the core; nothing under cpu or memory
// imports it.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/jchacon-labs/mos6502/cpu"
	"github.com/jchacon-labs/mos6502/disassemble"
	"github.com/jchacon-labs/mos6502/loader"
	"github.com/jchacon-labs/mos6502/memory"

	"gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "runsix",
		Usage:   "Run a raw 6502 binary image against the mos6502 interpreter",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "path to the raw binary image to load",
			},
			&cli.IntFlag{
				Name:  "load_addr",
				Usage: "address to load the image at",
				Value: 0x0000,
			},
			&cli.IntFlag{
				Name:  "reset_vector",
				Usage: "override the reset vector; defaults to the image's load address",
				Value: -1,
			},
			&cli.IntFlag{
				Name:  "instructions",
				Usage: "stop after N instructions (0 = unbounded)",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  "cycles",
				Usage: "stop after N nominal cycles (0 = unbounded)",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log each instruction and interrupt entry after it executes",
			},
		},
		Action: run,
	}
	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	imagePath := c.String("image")
	if imagePath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("--image is required", 86)
	}

	image, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("can't read %q: %w", imagePath, err)
	}

	mem := memory.NewFlat(nil)
	mem.PowerOn()

	loadAddr := uint16(c.Int("load_addr"))
	if err := loader.LoadFlat(mem, image, loadAddr); err != nil {
		return fmt.Errorf("can't load %q: %w", imagePath, err)
	}

	resetAddr := loadAddr
	if rv := c.Int("reset_vector"); rv >= 0 {
		resetAddr = uint16(rv)
	}
	loader.SetResetVector(mem, resetAddr)

	chip := cpu.New(mem, nil)
	chip.Reset()

	trace := c.Bool("trace")
	budget := cpu.Budget{Instructions: c.Int("instructions"), Cycles: c.Int("cycles")}

	instructions, cycles, runErr := runTraced(chip, mem, budget, trace)
	log.Printf("executed %d instructions (%d nominal cycles)", instructions, cycles)
	if runErr != nil {
		var illegal cpu.IllegalOpcode
		if errors.As(runErr, &illegal) {
			return fmt.Errorf("halted on illegal opcode 0x%.2X at PC 0x%.4X", illegal.Opcode, illegal.PC)
		}
		return runErr
	}
	return nil
}

// runTraced is RunFor with an optional trace hook interposed, since
// cpu.RunFor itself has no tracing knob (the core has no logging
// dependency at all).
func runTraced(chip *cpu.Chip, mem memory.Bank, budget cpu.Budget, trace bool) (int, int, error) {
	instructions, cycles := 0, 0
	for {
		if budget.Instructions > 0 && instructions >= budget.Instructions {
			return instructions, cycles, nil
		}
		if budget.Cycles > 0 && cycles >= budget.Cycles {
			return instructions, cycles, nil
		}
		startPC := chip.PC
		info, err := chip.Step()
		if err != nil {
			return instructions, cycles, err
		}
		if info.Interrupt {
			if trace {
				log.Printf("%.4X: interrupt entry -> $%.4X", startPC, info.PC)
			}
			continue
		}
		if trace {
			text, _ := disassemble.Instruction(mem, startPC)
			log.Printf("%.4X: %s", startPC, text)
		}
		instructions++
		cycles += info.Cycles
	}
}
