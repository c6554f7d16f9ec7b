package cpu

import (
	"fmt"
)

// ValueKind selects the addressing mode of a Value.
type ValueKind int

const (
	VALUE_REGISTER = ValueKind(iota) // Register direct.
	VALUE_ADDRESS                    // Memory at a fixed address.
	VALUE_STACK                      // Pop on read, push on write.
	VALUE_PEEK                       // Top of stack, read only.
	VALUE_LITERAL                    // Constant, read only.
)

// Value is a resolved instruction operand.
type Value struct {
	Kind     ValueKind
	Register Register // Register, for VALUE_REGISTER.
	Word     Word     // Address for VALUE_ADDRESS, constant for VALUE_LITERAL.

	cpu    *Cpu
	popped bool
	cached Word
}

// Get reads the operand. A VALUE_STACK operand pops only on its first Get;
// later calls return the same word.
func (v *Value) Get() (word Word) {
	switch v.Kind {
	case VALUE_REGISTER:
		word = v.cpu.Registers.Get(v.Register)
	case VALUE_ADDRESS:
		word = v.cpu.Memory.Read(int(v.Word))
	case VALUE_STACK:
		if !v.popped {
			v.cached = v.cpu.Pop()
			v.popped = true
		}
		word = v.cached
	case VALUE_PEEK:
		word = v.cpu.Peek()
	case VALUE_LITERAL:
		word = v.Word
	}

	return
}

// Set writes the operand. Writes to VALUE_PEEK and VALUE_LITERAL
// operands are ignored.
func (v *Value) Set(word Word) {
	switch v.Kind {
	case VALUE_REGISTER:
		v.cpu.Registers.Set(v.Register, word)
	case VALUE_ADDRESS:
		v.cpu.Memory.Write(int(v.Word), word)
	case VALUE_STACK:
		v.cpu.Push(word)
	}
}

// String returns the operand in assembler notation.
func (v *Value) String() string {
	if v == nil {
		return ""
	}

	switch v.Kind {
	case VALUE_REGISTER:
		return v.Register.String()
	case VALUE_ADDRESS:
		return fmt.Sprintf("[%v]", v.Word)
	case VALUE_STACK:
		return "STACK"
	case VALUE_PEEK:
		return "PEEK"
	case VALUE_LITERAL:
		return v.Word.String()
	}

	return fmt.Sprintf("?%d", v.Kind)
}

// RegisterValue returns a register direct operand.
func (cpu *Cpu) RegisterValue(reg Register) *Value {
	return &Value{Kind: VALUE_REGISTER, Register: reg, cpu: cpu}
}

// AddressValue returns a memory operand.
func (cpu *Cpu) AddressValue(address Word) *Value {
	return &Value{Kind: VALUE_ADDRESS, Word: address, cpu: cpu}
}

// StackValue returns a push/pop operand.
func (cpu *Cpu) StackValue() *Value {
	return &Value{Kind: VALUE_STACK, cpu: cpu}
}

// PeekValue returns a top of stack operand.
func (cpu *Cpu) PeekValue() *Value {
	return &Value{Kind: VALUE_PEEK, cpu: cpu}
}

// LiteralValue returns a constant operand.
func LiteralValue(word Word) *Value {
	return &Value{Kind: VALUE_LITERAL, Word: word}
}

// MakeValue resolves an operand code. Codes with an extension word fetch
// it from PC, and cost one extra cycle.
func (cpu *Cpu) MakeValue(code Word) (value *Value, err error) {
	switch {
	case code < VALUE_CODE_INDIRECT:
		value = cpu.RegisterValue(Register(code - VALUE_CODE_REGISTER))
	case code < VALUE_CODE_INDIRECT_OFFSET:
		reg := Register(code - VALUE_CODE_INDIRECT)
		value = cpu.AddressValue(cpu.Registers.Get(reg))
	case code < VALUE_CODE_POP:
		cpu.Tick(1)
		reg := Register(code - VALUE_CODE_INDIRECT_OFFSET)
		value = cpu.AddressValue(cpu.Registers.Get(reg) + cpu.FetchWord())
	case code == VALUE_CODE_POP, code == VALUE_CODE_PUSH:
		value = cpu.StackValue()
	case code == VALUE_CODE_PEEK:
		value = cpu.PeekValue()
	case code == VALUE_CODE_SP:
		value = cpu.RegisterValue(REG_SP)
	case code == VALUE_CODE_PC:
		value = cpu.RegisterValue(REG_PC)
	case code == VALUE_CODE_O:
		value = cpu.RegisterValue(REG_O)
	case code == VALUE_CODE_ADDRESS:
		cpu.Tick(1)
		value = cpu.AddressValue(cpu.FetchWord())
	case code == VALUE_CODE_NEXT_WORD:
		cpu.Tick(1)
		value = LiteralValue(cpu.FetchWord())
	case code <= VALUE_CODE_MAX:
		value = LiteralValue(code - VALUE_CODE_LITERAL)
	default:
		err = ErrValue(code)
	}

	return
}
