// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/dcpu16/binfile"
	"github.com/ezrec/dcpu16/cpu"
	"github.com/ezrec/dcpu16/monitor"
)

// Emulator state. CPU + loaded image + observers.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded image listing.

	Tracer  *monitor.Tracer  // Optional tracer.
	Watch   *monitor.Watch   // Optional watch condition.
	Stepper *monitor.Stepper // Optional single step pause.

	pc cpu.Word // Address of the instruction being stepped.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Reset wipes memory and registers, and attaches the configured observers.
// Callbacks registered directly on the CPU are removed.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Memory.Wipe()
	emu.Cpu.Reset()
	emu.Cpu.Clear()
	emu.pc = 0

	err = emu.Cpu.On(func(c *cpu.Cpu, _ *cpu.Trace) {
		emu.pc = c.Registers.Get(cpu.REG_PC)
	}, cpu.EVENT_BEFORE_STEP)
	if err != nil {
		return
	}

	if emu.Tracer != nil {
		err = emu.Tracer.Attach(emu.Cpu)
		if err != nil {
			return
		}
	}

	if emu.Watch != nil {
		err = emu.Watch.Attach(emu.Cpu)
		if err != nil {
			return
		}
	}

	if emu.Stepper != nil {
		err = emu.Stepper.Attach(emu.Cpu)
		if err != nil {
			return
		}
	}

	return
}

// Load resets the emulator, and loads an image at offset 0.
func (emu *Emulator) Load(words []cpu.Word) (err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	emu.Program = &cpu.Program{Words: words}
	emu.Cpu.Memory.Load(words)

	if emu.Verbose {
		log.Printf("emulator: loaded %d words", len(words))
	}

	return
}

// LoadFile loads a binary image, or a text dump if dump is set.
func (emu *Emulator) LoadFile(path string, dump bool, wordsPerLine int) (err error) {
	var words []cpu.Word
	if dump {
		words, err = binfile.ReadDumpFile(path, wordsPerLine)
	} else {
		words, err = binfile.ReadFile(path)
	}
	if err != nil {
		return
	}

	return emu.Load(words)
}

// Pc returns the address of the most recently stepped instruction.
func (emu *Emulator) Pc() cpu.Word {
	return emu.pc
}

// Listing returns the disassembly of the instruction at pc, if it is
// part of the loaded image.
func (emu *Emulator) Listing(pc cpu.Word) (text string, ok bool) {
	lst, ok := emu.Program.Debug(pc)
	if !ok {
		return
	}

	text = lst.Disassemble(emu.Cpu.Table)
	return
}

// Run executes until the cycle counter reaches maxCycles.
func (emu *Emulator) Run(maxCycles int) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Run(maxCycles)
	if err != nil {
		if emu.Verbose {
			if text, ok := emu.Listing(emu.pc); ok {
				log.Printf("emulator: failed at %04x: %v", uint16(emu.pc), text)
			}
		}
		err = &ErrRuntime{Pc: emu.pc, Cycles: emu.Cpu.Cycles, Err: err}
	}

	return
}
