package cpu

import (
	"fmt"
	"iter"
)

// Program is a memory image, loaded at offset 0.
type Program struct {
	Words []Word
}

// Listing is a single instruction of a Program.
type Listing struct {
	Pc    Word   // Address of the instruction word.
	Code  Code   // Instruction word.
	Extra []Word // Extension words, in fetch order.
}

// Codes iterates over the instructions of the program, in address order.
// A truncated final instruction has fewer Extra words than it needs.
func (prog *Program) Codes() iter.Seq[Listing] {
	return func(yield func(lst Listing) bool) {
		for pc := 0; pc < len(prog.Words); {
			code := Code(prog.Words[pc])
			end := min(pc+code.WordsNeed(), len(prog.Words))
			lst := Listing{
				Pc:    Word(pc),
				Code:  code,
				Extra: prog.Words[pc+1 : end],
			}
			if !yield(lst) {
				return
			}
			pc = end
		}
	}
}

// Debug finds the instruction that contains the word at pc.
func (prog *Program) Debug(pc Word) (lst Listing, ok bool) {
	for lst = range prog.Codes() {
		if pc >= lst.Pc && int(pc) < int(lst.Pc)+1+len(lst.Extra) {
			ok = true
			return
		}
	}

	lst = Listing{}
	return
}

// operandString disassembles an operand code. next is consumed for
// operands with an extension word.
func operandString(code Word, next func() Word) string {
	switch {
	case code < VALUE_CODE_INDIRECT:
		return Register(code).String()
	case code < VALUE_CODE_INDIRECT_OFFSET:
		return fmt.Sprintf("[%v]", Register(code-VALUE_CODE_INDIRECT))
	case code < VALUE_CODE_POP:
		return fmt.Sprintf("[%v+%v]", next(), Register(code-VALUE_CODE_INDIRECT_OFFSET))
	case code == VALUE_CODE_POP:
		return "POP"
	case code == VALUE_CODE_PEEK:
		return "PEEK"
	case code == VALUE_CODE_PUSH:
		return "PUSH"
	case code == VALUE_CODE_SP:
		return "SP"
	case code == VALUE_CODE_PC:
		return "PC"
	case code == VALUE_CODE_O:
		return "O"
	case code == VALUE_CODE_ADDRESS:
		return fmt.Sprintf("[%v]", next())
	case code == VALUE_CODE_NEXT_WORD:
		return next().String()
	case code <= VALUE_CODE_MAX:
		return (code - VALUE_CODE_LITERAL).String()
	}

	return fmt.Sprintf("?0x%02x", uint16(code))
}

// Disassemble returns the assembler form of the instruction.
// Opcodes missing from tbl are shown as DAT.
func (lst Listing) Disassemble(tbl Table) string {
	key, a, b, hasB := lst.Code.Key()

	inst, err := tbl.Lookup(key)
	if err != nil {
		return fmt.Sprintf("DAT %v", Word(lst.Code))
	}

	extra := lst.Extra
	next := func() (word Word) {
		if len(extra) != 0 {
			word = extra[0]
			extra = extra[1:]
		}
		return
	}

	text := fmt.Sprintf("%v %v", inst.Mnemonic, operandString(a, next))
	if hasB {
		text += ", " + operandString(b, next)
	}

	return text
}
