// Package cpu implements a DCPU-16 processor.
//
// The CPU consists of eight general-purpose registers (A, B, C, X, Y, Z, I, J),
// a program counter (PC), a stack pointer (SP), an overflow register (O), and
// 64K words of memory. Each instruction word holds a 4-bit opcode and two 6-bit
// operand codes; opcode 0 selects an extended instruction with a single operand.
//
// Execution can be observed through instrumentation events fired around each
// step. Observers never change the outcome of a program.
package cpu
