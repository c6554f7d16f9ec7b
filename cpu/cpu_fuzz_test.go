package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	for _, word := range factorial5 {
		f.Add(uint16(word), uint16(0x1234), uint16(0x5678), false)
		f.Add(uint16(word), uint16(0xffff), uint16(0x0000), true)
	}
	f.Add(uint16(MakeCodeExtended(OP_JSR, 0x1f)), uint16(0x0010), uint16(0), false)
	f.Add(uint16(0x0000), uint16(0), uint16(0), false)
	f.Add(uint16(0xffff), uint16(0xffff), uint16(0xffff), true)

	f.Fuzz(func(t *testing.T, code uint16, ext1 uint16, ext2 uint16, skip bool) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.Memory.Load([]Word{Word(code), Word(ext1), Word(ext2)})
		for reg := range REG_SP {
			cpu.Registers.Set(reg, Word(0x1000+int(reg)))
		}
		cpu.Skip = skip

		err := cpu.Step()
		if err != nil {
			var opErr ErrOpcode
			assert.True(errors.As(err, &opErr), err.Error())
			assert.Equal(0, cpu.Cycles)
			assert.Equal(Word(1), cpu.Registers.Get(REG_PC))
			return
		}

		assert.False(cpu.Skip && skip, "skip flag survived a skipped instruction")

		pc := cpu.Registers.Get(REG_PC)
		words := Code(code).WordsNeed()
		if skip {
			assert.Equal(Word(words), pc)
			assert.Equal(words, cpu.Cycles)
			assert.Equal(Word(0xffff), cpu.Registers.Get(REG_SP))
			return
		}

		assert.GreaterOrEqual(cpu.Cycles, 1)
		assert.LessOrEqual(cpu.Cycles, words+4)
	})
}
