package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Words: factorial5}

	var lines []string
	var pcs []Word
	for lst := range prog.Codes() {
		pcs = append(pcs, lst.Pc)
		lines = append(lines, lst.Disassemble(NewTable()))
	}

	assert.Equal([]Word{0, 1, 2, 3, 4, 5, 7}, pcs)
	assert.Equal([]string{
		"SET X, 0x0001",
		"SET C, 0x0005",
		"MUL X, C",
		"SUB C, 0x0001",
		"IFN C, 0x0000",
		"SET PC, 0x0002",
		"SET PC, 0x0007",
	}, lines)
}

func TestProgram_Disassemble(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()

	table := [](struct {
		words []Word
		text  string
	}){
		{[]Word{Word(MakeCode(OP_SET, 0x0e, 0x19))}, "SET [I], PEEK"},
		{[]Word{Word(MakeCode(OP_ADD, 0x12, 0x18)), 0x0010}, "ADD [0x0010+C], POP"},
		{[]Word{Word(MakeCode(OP_SUB, 0x1a, 0x1b))}, "SUB PUSH, SP"},
		{[]Word{Word(MakeCode(OP_XOR, 0x1d, 0x1c))}, "XOR O, PC"},
		{[]Word{Word(MakeCode(OP_SET, 0x1e, 0x1f)), 0x1000, 0x0020}, "SET [0x1000], 0x0020"},
		{[]Word{Word(MakeCodeExtended(OP_JSR, 0x3f))}, "JSR 0x001f"},
		{[]Word{Word(MakeCodeExtended(EXTENDED|0x33, 0x00))}, "DAT 0x0330"},
	}

	for _, entry := range table {
		prog := &Program{Words: entry.words}
		for lst := range prog.Codes() {
			assert.Equal(entry.text, lst.Disassemble(tbl))
			assert.Equal(len(entry.words)-1, len(lst.Extra), entry.text)
		}
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Words: factorial5}

	lst, ok := prog.Debug(0)
	assert.True(ok)
	assert.Equal(Word(0), lst.Pc)

	lst, ok = prog.Debug(6)
	assert.True(ok)
	assert.Equal(Word(5), lst.Pc)
	assert.Equal([]Word{0x0002}, lst.Extra)

	lst, ok = prog.Debug(7)
	assert.True(ok)
	assert.Equal(Word(7), lst.Pc)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Words: factorial5}

	lst, ok := prog.Debug(0x100)
	assert.False(ok)
	assert.Equal(Listing{}, lst)
}

func TestProgram_Codes_Truncated(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Words: []Word{Word(MakeCode(OP_SET, 0x1e, 0x1f)), 0x1000}}

	var count int
	for lst := range prog.Codes() {
		count++
		assert.Equal([]Word{0x1000}, lst.Extra)
	}
	assert.Equal(1, count)
}
