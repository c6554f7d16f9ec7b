package cpu

import (
	"iter"
	"maps"
	"slices"
)

// Semantic is the behaviour of an instruction. b is nil for extended
// instructions.
type Semantic func(cpu *Cpu, a, b *Value)

// Instruction describes one entry of the instruction table.
type Instruction struct {
	Opcode   Opcode   // Table key.
	Mnemonic string   // Assembler mnemonic.
	Cost     int      // Cycles charged on execution.
	Semantic Semantic // Behaviour.
}

// Execute charges the cost of the instruction, then runs it.
func (inst *Instruction) Execute(cpu *Cpu, a, b *Value) {
	cpu.Tick(inst.Cost)
	inst.Semantic(cpu, a, b)
}

// Table maps opcode keys to instructions.
type Table map[Opcode]*Instruction

// Implement adds, or replaces, an instruction in the table.
func (tbl Table) Implement(op Opcode, mnemonic string, cost int, semantic Semantic) {
	tbl[op] = &Instruction{
		Opcode:   op,
		Mnemonic: mnemonic,
		Cost:     cost,
		Semantic: semantic,
	}
}

// Lookup finds the instruction for an opcode key.
func (tbl Table) Lookup(op Opcode) (inst *Instruction, err error) {
	inst, ok := tbl[op]
	if !ok {
		err = ErrOpcode(op)
	}
	return
}

// Instructions iterates over the table in opcode order.
func (tbl Table) Instructions() iter.Seq[*Instruction] {
	return func(yield func(inst *Instruction) bool) {
		for _, op := range slices.Sorted(maps.Keys(tbl)) {
			if !yield(tbl[op]) {
				return
			}
		}
	}
}

// setOverflow stores the low word of result in a, and the overflow in O.
func setOverflow(cpu *Cpu, a *Value, result int) {
	word, overflow := WrapWithOverflow(result)
	cpu.Registers.Set(REG_O, overflow)
	a.Set(word)
}

// divide guards against a zero divisor, which yields 0 and clears O.
func divide(cpu *Cpu, a, b *Value, op func(x, y Word) Word) {
	divisor := b.Get()
	if divisor == 0 {
		cpu.Registers.Set(REG_O, 0)
		a.Set(0)
		return
	}
	a.Set(op(a.Get(), divisor))
}

// NewTable returns the DCPU-16 instruction set.
func NewTable() (tbl Table) {
	tbl = Table{}

	tbl.Implement(OP_SET, "SET", 1, func(cpu *Cpu, a, b *Value) {
		a.Set(b.Get())
	})
	tbl.Implement(OP_ADD, "ADD", 2, func(cpu *Cpu, a, b *Value) {
		setOverflow(cpu, a, int(a.Get())+int(b.Get()))
	})
	tbl.Implement(OP_SUB, "SUB", 2, func(cpu *Cpu, a, b *Value) {
		setOverflow(cpu, a, int(a.Get())-int(b.Get()))
	})
	tbl.Implement(OP_MUL, "MUL", 2, func(cpu *Cpu, a, b *Value) {
		setOverflow(cpu, a, int(a.Get())*int(b.Get()))
	})
	tbl.Implement(OP_DIV, "DIV", 3, func(cpu *Cpu, a, b *Value) {
		divide(cpu, a, b, func(x, y Word) Word {
			cpu.Registers.Set(REG_O, Word((uint64(x)<<16)/uint64(y)))
			return x / y
		})
	})
	tbl.Implement(OP_MOD, "MOD", 3, func(cpu *Cpu, a, b *Value) {
		divide(cpu, a, b, func(x, y Word) Word {
			return x % y
		})
	})
	tbl.Implement(OP_SHL, "SHL", 2, func(cpu *Cpu, a, b *Value) {
		shifted := uint64(a.Get()) << uint64(b.Get())
		cpu.Registers.Set(REG_O, Word(shifted>>16))
		a.Set(Word(shifted))
	})
	tbl.Implement(OP_SHR, "SHR", 2, func(cpu *Cpu, a, b *Value) {
		x, y := uint64(a.Get()), uint64(b.Get())
		// O is computed from a before the shift. b = 0 gives a << 16, so O = 0.
		if y <= 16 {
			cpu.Registers.Set(REG_O, Word(x<<(16-y)))
		} else {
			cpu.Registers.Set(REG_O, Word(x>>(y-16)))
		}
		a.Set(Word(x >> y))
	})
	tbl.Implement(OP_AND, "AND", 1, func(cpu *Cpu, a, b *Value) {
		a.Set(a.Get() & b.Get())
	})
	tbl.Implement(OP_BOR, "BOR", 1, func(cpu *Cpu, a, b *Value) {
		a.Set(a.Get() | b.Get())
	})
	tbl.Implement(OP_XOR, "XOR", 1, func(cpu *Cpu, a, b *Value) {
		a.Set(a.Get() ^ b.Get())
	})
	tbl.Implement(OP_IFE, "IFE", 2, func(cpu *Cpu, a, b *Value) {
		if a.Get() != b.Get() {
			cpu.Skip = true
		}
	})
	tbl.Implement(OP_IFN, "IFN", 2, func(cpu *Cpu, a, b *Value) {
		if a.Get() == b.Get() {
			cpu.Skip = true
		}
	})
	tbl.Implement(OP_IFG, "IFG", 2, func(cpu *Cpu, a, b *Value) {
		if a.Get() <= b.Get() {
			cpu.Skip = true
		}
	})
	tbl.Implement(OP_IFB, "IFB", 2, func(cpu *Cpu, a, b *Value) {
		if (a.Get() & b.Get()) == 0 {
			cpu.Skip = true
		}
	})

	tbl.Implement(OP_JSR, "JSR", 2, func(cpu *Cpu, a, _ *Value) {
		cpu.Push(cpu.Registers.Get(REG_PC))
		cpu.Registers.Set(REG_PC, a.Get())
	})

	return
}
