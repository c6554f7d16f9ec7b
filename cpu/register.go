package cpu

// Register names an entry in the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A  = Register(0)  // A
	REG_B  = Register(1)  // B
	REG_C  = Register(2)  // C
	REG_X  = Register(3)  // X
	REG_Y  = Register(4)  // Y
	REG_Z  = Register(5)  // Z
	REG_I  = Register(6)  // I
	REG_J  = Register(7)  // J
	REG_SP = Register(8)  // SP
	REG_PC = Register(9)  // PC
	REG_O  = Register(10) // O

	REGISTER_COUNT = 11
)

// STACK_EMPTY is the reset value of SP. The stack grows downward.
const STACK_EMPTY = Word(0xffff)

// RegisterFile holds every register of the CPU.
type RegisterFile [REGISTER_COUNT]Word

// Reset zeros the registers, and empties the stack.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
	rf[REG_SP] = STACK_EMPTY
}

// Get the value of a register.
func (rf *RegisterFile) Get(reg Register) Word {
	return rf[reg]
}

// Set the value of a register.
func (rf *RegisterFile) Set(reg Register, word Word) {
	rf[reg] = word
}

// Increment a register, wrapping at 0xffff.
func (rf *RegisterFile) Increment(reg Register) {
	rf[reg]++
}

// Decrement a register, wrapping at 0.
func (rf *RegisterFile) Decrement(reg Register) {
	rf[reg]--
}
