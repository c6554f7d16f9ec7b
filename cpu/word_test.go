package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithOverflow(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		value    int
		word     Word
		overflow Word
	}){
		{"zero", 0, 0, 0},
		{"max", 0xffff, 0xffff, 0},
		{"carry", 0xffff + 5, 4, 1},
		{"high", 0x1ffff, 0xffff, 1},
		{"borrow", 5 - 7, 0xfffe, 0xffff},
		{"minus_one", -1, 0xffff, 0xffff},
		{"product", 0x8001 * 4, 4, 2},
		{"wide", 0x1234_5678, 0x5678, 0x1234},
	}

	for _, entry := range table {
		word, overflow := WrapWithOverflow(entry.value)
		assert.Equal(entry.word, word, entry.name)
		assert.Equal(entry.overflow, overflow, entry.name)
		assert.Equal(entry.word, Wrap(entry.value), entry.name)
		assert.Equal(entry.overflow, Overflow(entry.value), entry.name)
	}
}

func TestWord_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0x0000", Word(0).String())
	assert.Equal("0x1234", Word(0x1234).String())
	assert.Equal("0xabcd", Word(0xabcd).String())
}
