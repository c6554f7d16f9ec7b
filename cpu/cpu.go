// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"strings"
)

// Cpu is the simulation context for a DCPU-16.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers RegisterFile // Register file.
	Memory    Memory       // Main memory.
	Table     Table        // Instruction set.
	Skip      bool         // Skip the next instruction.
	Cycles    int          // Cycles counter.

	Instrumentation // Event callbacks.
}

// NewCpu creates a new CPU, with zeroed memory and reset registers.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Table: NewTable(),
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers, and empties the stack.
// - Zeros the cycle counter.
// - Clears the skip flag.
//
// Memory and event callbacks are preserved.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Cycles = 0
	cpu.Skip = false
}

// Tick adds n cycles to the cycle counter.
func (cpu *Cpu) Tick(n int) {
	cpu.Cycles += n
}

// FetchWord reads the word at PC, and advances PC.
func (cpu *Cpu) FetchWord() (word Word) {
	word = cpu.Memory.Read(int(cpu.Registers.Get(REG_PC)))
	cpu.Registers.Increment(REG_PC)
	return
}

// Step performs one fetch-decode-execute cycle, firing EVENT_BEFORE_STEP
// and EVENT_AFTER_STEP around it. A failed step does not fire
// EVENT_AFTER_STEP.
func (cpu *Cpu) Step() (err error) {
	err = cpu.Fire(EVENT_BEFORE_STEP, cpu, nil)
	if err != nil {
		return
	}

	pc := cpu.Registers.Get(REG_PC)
	code := Code(cpu.FetchWord())

	err = cpu.Execute(pc, code)
	if err != nil {
		return
	}

	err = cpu.Fire(EVENT_AFTER_STEP, cpu, nil)

	return
}

// Execute decodes and executes, or skips, a fetched instruction word.
// pc is the address the word was fetched from.
func (cpu *Cpu) Execute(pc Word, code Code) (err error) {
	key, a_code, b_code, hasB := code.Key()

	inst, err := cpu.Table.Lookup(key)
	if err != nil {
		return
	}

	trace := &Trace{
		Pc:          pc,
		Code:        code,
		Instruction: inst,
	}

	// Operands are resolved even when skipped, so extension words are consumed.
	trace.A, err = cpu.MakeValue(a_code)
	if err != nil {
		return
	}
	if hasB {
		trace.B, err = cpu.MakeValue(b_code)
		if err != nil {
			return
		}
	}

	if cpu.Skip {
		if cpu.Verbose {
			log.Printf("%04x: skipped %v", uint16(pc), inst.Mnemonic)
		}
		cpu.Tick(1)
		cpu.Skip = false
		err = cpu.Fire(EVENT_SKIPPED_INSTRUCTION, cpu, trace)
		return
	}

	if cpu.Verbose {
		log.Print(cpu.TraceString(trace))
	}

	err = cpu.Fire(EVENT_BEFORE_EXECUTION, cpu, trace)
	if err != nil {
		return
	}

	inst.Execute(cpu, trace.A, trace.B)

	err = cpu.Fire(EVENT_AFTER_EXECUTION, cpu, trace)

	return
}

// Run steps the CPU while the cycle counter is below maxCycles.
// The budget is only checked between whole instructions, so the
// final instruction may overrun it.
func (cpu *Cpu) Run(maxCycles int) (err error) {
	for cpu.Cycles < maxCycles {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}

// dumpOrder is the register order of String().
var dumpOrder = []Register{
	REG_A, REG_B, REG_C, REG_X, REG_Y, REG_Z, REG_I, REG_J,
	REG_O, REG_SP, REG_PC,
}

// Snapshot iterates over the registers, in dump order.
func (cpu *Cpu) Snapshot() iter.Seq2[Register, Word] {
	return func(yield func(reg Register, word Word) bool) {
		for _, reg := range dumpOrder {
			if !yield(reg, cpu.Registers.Get(reg)) {
				return
			}
		}
	}
}

// String returns the registers as NAME:xxxx pairs.
func (cpu *Cpu) String() string {
	var regs []string
	for reg, word := range cpu.Snapshot() {
		regs = append(regs, fmt.Sprintf("%v:%04x", reg, uint16(word)))
	}

	return strings.Join(regs, " ")
}

// TraceString returns a single line disassembly of a traced instruction.
func (cpu *Cpu) TraceString(trace *Trace) string {
	text := fmt.Sprintf("%04x: %v %v", uint16(trace.Pc), trace.Instruction.Mnemonic, trace.A)
	if trace.B != nil {
		text += fmt.Sprintf(", %v", trace.B)
	}

	return text
}
