package cpu

import (
	"fmt"
)

// Word is the 16-bit unit of every register and memory cell.
type Word uint16

const (
	WORD_MASK = 0xffff  // Mask of the bits of a word.
	WORD_SIZE = 0x10000 // Number of distinct word values.
)

// Wrap reduces an intermediate result to a word, modulo 0x10000.
func Wrap(value int) Word {
	return Word(value & WORD_MASK)
}

// Overflow returns the bits of an intermediate result above the low word,
// reduced to a word. Negative results give 0xffff.
func Overflow(value int) Word {
	return Wrap((value &^ WORD_MASK) >> 16)
}

// WrapWithOverflow returns both the wrapped word and its overflow.
func WrapWithOverflow(value int) (word Word, overflow Word) {
	word = Wrap(value)
	overflow = Overflow(value)
	return
}

// String returns the word as 0x-prefixed, 4 digit hex.
func (w Word) String() string {
	return fmt.Sprintf("0x%04x", uint16(w))
}
