package cpu

import (
	"fmt"
	"iter"
	"strings"
)

const (
	MEMORY_SIZE         = WORD_SIZE // Words of addressable memory.
	DUMP_WORDS_PER_LINE = 8         // Default words per Dump() line.
)

// Memory is the 64K word store. Every offset wraps modulo MEMORY_SIZE.
type Memory struct {
	words [MEMORY_SIZE]Word
}

// Read the word at offset.
func (mem *Memory) Read(offset int) Word {
	return mem.words[offset&WORD_MASK]
}

// Write the word at offset.
func (mem *Memory) Write(offset int, word Word) {
	mem.words[offset&WORD_MASK] = word
}

// Load writes words starting at offset 0.
// Memory past the end of words is left untouched.
func (mem *Memory) Load(words []Word) {
	for offset, word := range words {
		mem.Write(offset, word)
	}
}

// Wipe zeros all of memory.
func (mem *Memory) Wipe() {
	clear(mem.words[:])
}

// Words iterates over every offset and word in memory.
func (mem *Memory) Words() iter.Seq2[int, Word] {
	return func(yield func(offset int, word Word) bool) {
		for offset, word := range mem.words {
			if !yield(offset, word) {
				return
			}
		}
	}
}

// Dump renders all of memory, wordsPerLine words per line, each line
// prefixed by the offset of its first word.
func (mem *Memory) Dump(wordsPerLine int) string {
	if wordsPerLine <= 0 {
		wordsPerLine = DUMP_WORDS_PER_LINE
	}

	var text strings.Builder
	for offset := 0; offset < MEMORY_SIZE; offset += wordsPerLine {
		if offset != 0 {
			text.WriteByte('\n')
		}
		fmt.Fprintf(&text, "%04x:", offset)
		for n := range wordsPerLine {
			if offset+n >= MEMORY_SIZE {
				break
			}
			fmt.Fprintf(&text, " %04x", uint16(mem.words[offset+n]))
		}
	}

	return text.String()
}
