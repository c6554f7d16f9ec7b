package cpu

import (
	"fmt"
)

// Opcode is an instruction table key.
type Opcode uint16

// EXTENDED prefixes non-basic opcodes, keeping them clear of the
// basic opcode keys 0x1-0xf.
const EXTENDED = Opcode(0xff00)

// Basic opcodes.
const (
	OP_SET = Opcode(0x1) // a = b
	OP_ADD = Opcode(0x2) // a = a + b, O = carry
	OP_SUB = Opcode(0x3) // a = a - b, O = borrow
	OP_MUL = Opcode(0x4) // a = a * b, O = high word
	OP_DIV = Opcode(0x5) // a = a / b, O = fraction
	OP_MOD = Opcode(0x6) // a = a % b
	OP_SHL = Opcode(0x7) // a = a << b, O = shifted out
	OP_SHR = Opcode(0x8) // a = a >> b, O = shifted out
	OP_AND = Opcode(0x9) // a = a & b
	OP_BOR = Opcode(0xa) // a = a | b
	OP_XOR = Opcode(0xb) // a = a ^ b
	OP_IFE = Opcode(0xc) // skip unless a == b
	OP_IFN = Opcode(0xd) // skip unless a != b
	OP_IFG = Opcode(0xe) // skip unless a > b
	OP_IFB = Opcode(0xf) // skip unless (a & b) != 0
)

// Extended opcodes.
const (
	OP_JSR = EXTENDED | Opcode(0x01) // push PC, PC = a
)

// Operand code ranges.
const (
	VALUE_CODE_REGISTER        = Word(0x00) // A..J
	VALUE_CODE_INDIRECT        = Word(0x08) // [A..J]
	VALUE_CODE_INDIRECT_OFFSET = Word(0x10) // [next word + A..J]
	VALUE_CODE_POP             = Word(0x18) // POP
	VALUE_CODE_PEEK            = Word(0x19) // PEEK
	VALUE_CODE_PUSH            = Word(0x1a) // PUSH
	VALUE_CODE_SP              = Word(0x1b) // SP
	VALUE_CODE_PC              = Word(0x1c) // PC
	VALUE_CODE_O               = Word(0x1d) // O
	VALUE_CODE_ADDRESS         = Word(0x1e) // [next word]
	VALUE_CODE_NEXT_WORD       = Word(0x1f) // next word
	VALUE_CODE_LITERAL         = Word(0x20) // 0x00..0x1f
	VALUE_CODE_MAX             = Word(0x3f)
)

// Code is a single instruction word.
//
//	bits [0:4)   opcode (0 for extended instructions)
//	bits [4:10)  operand a (extended opcode for extended instructions)
//	bits [10:16) operand b (operand a for extended instructions)
type Code Word

const (
	CODE_OPCODE_MASK  = 0xf
	CODE_OPERAND_MASK = 0x3f
)

// MakeCode creates a basic instruction word.
func MakeCode(op Opcode, a, b Word) Code {
	return Code((uint16(op) & CODE_OPCODE_MASK) |
		((uint16(a) & CODE_OPERAND_MASK) << 4) |
		((uint16(b) & CODE_OPERAND_MASK) << 10))
}

// MakeCodeExtended creates an extended instruction word.
func MakeCodeExtended(op Opcode, a Word) Code {
	return MakeCode(0, Word(op&^EXTENDED), a)
}

// Opcode returns bits [0:4) of the instruction word.
func (code Code) Opcode() Opcode {
	return Opcode(uint16(code) & CODE_OPCODE_MASK)
}

// A returns bits [4:10) of the instruction word.
func (code Code) A() Word {
	return Word((uint16(code) >> 4) & CODE_OPERAND_MASK)
}

// B returns bits [10:16) of the instruction word.
func (code Code) B() Word {
	return Word((uint16(code) >> 10) & CODE_OPERAND_MASK)
}

// Decode returns the opcode and both operand codes.
func (code Code) Decode() (op Opcode, a, b Word) {
	return code.Opcode(), code.A(), code.B()
}

// Extended returns true if the word encodes an extended instruction.
func (code Code) Extended() bool {
	return code.Opcode() == 0
}

// Key returns the instruction table key and the operand codes of the
// instruction. Extended instructions have no operand b, and hasB is false.
func (code Code) Key() (key Opcode, a, b Word, hasB bool) {
	key, a, b = code.Decode()
	if code.Extended() {
		return EXTENDED | Opcode(a), b, 0, false
	}

	return key, a, b, true
}

// ValueNeed returns the number of extension words an operand code consumes.
func ValueNeed(value Word) int {
	switch {
	case value >= VALUE_CODE_INDIRECT_OFFSET && value < VALUE_CODE_POP:
		return 1
	case value == VALUE_CODE_ADDRESS, value == VALUE_CODE_NEXT_WORD:
		return 1
	}

	return 0
}

// WordsNeed returns the total number of words of the instruction,
// including the instruction word itself.
func (code Code) WordsNeed() int {
	_, a, b, hasB := code.Key()
	need := 1 + ValueNeed(a)
	if hasB {
		need += ValueNeed(b)
	}
	return need
}

// String returns the raw fields of the instruction word.
func (code Code) String() string {
	op, a, b := code.Decode()
	return fmt.Sprintf("0x%04x (op:0x%x a:0x%02x b:0x%02x)", uint16(code), uint16(op), uint16(a), uint16(b))
}
