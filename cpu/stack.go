package cpu

import (
	"fmt"
	"strings"
)

// Push a word onto the stack.
func (cpu *Cpu) Push(word Word) {
	cpu.Registers.Decrement(REG_SP)
	cpu.Memory.Write(int(cpu.Registers.Get(REG_SP)), word)
}

// Pop a word off the stack.
func (cpu *Cpu) Pop() (word Word) {
	word = cpu.Peek()
	cpu.Registers.Increment(REG_SP)
	return
}

// Peek returns the word at the top of the stack.
func (cpu *Cpu) Peek() Word {
	return cpu.Memory.Read(int(cpu.Registers.Get(REG_SP)))
}

// StackString returns the words on the stack, top first.
func (cpu *Cpu) StackString() string {
	var words []string
	for sp := int(cpu.Registers.Get(REG_SP)); sp < int(STACK_EMPTY); sp++ {
		words = append(words, fmt.Sprintf("%04x", uint16(cpu.Memory.Read(sp))))
	}

	return "[" + strings.Join(words, " ") + "]"
}
