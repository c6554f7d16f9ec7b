package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Names(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{
		"before_step",
		"after_step",
		"before_execution",
		"after_execution",
		"skipped_instruction",
	}, EventNames())

	for _, name := range EventNames() {
		ev, err := ParseEvent(name)
		assert.NoError(err)
		assert.Equal(name, ev.String())
	}
}

func TestEvent_Unknown(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseEvent("before_lunch")
	assert.ErrorIs(err, ErrEvent{})
	assert.Contains(err.Error(), "before_lunch")
	assert.Contains(err.Error(), "skipped_instruction")

	ins := &Instrumentation{}
	err = ins.OnName("before_lunch", func(*Cpu, *Trace) {})
	assert.ErrorIs(err, ErrEvent{})

	err = ins.On(func(*Cpu, *Trace) {}, EVENT_AFTER_STEP, Event(42))
	assert.ErrorIs(err, ErrEvent{})
	assert.Empty(ins.callbacks[EVENT_AFTER_STEP], "partial registration")

	err = ins.Fire(Event(-1), nil, nil)
	assert.ErrorIs(err, ErrEvent{})
	var evErr ErrEvent
	assert.ErrorAs(err, &evErr)
	assert.Equal("Event(-1)", evErr.Name)
	assert.Equal(EventNames(), evErr.Valid)
}

func TestEvent_Fire(t *testing.T) {
	assert := assert.New(t)

	ins := &Instrumentation{}

	// No callbacks is a no-op.
	assert.NoError(ins.Fire(EVENT_BEFORE_STEP, nil, nil))

	var order []string
	assert.NoError(ins.On(func(*Cpu, *Trace) { order = append(order, "first") }, EVENT_AFTER_STEP))
	assert.NoError(ins.OnName("after_step", func(*Cpu, *Trace) { order = append(order, "second") }))
	assert.NoError(ins.On(func(*Cpu, *Trace) { order = append(order, "both") }, EVENT_AFTER_STEP, EVENT_BEFORE_STEP))

	cpu := NewCpu()
	assert.NoError(ins.Fire(EVENT_AFTER_STEP, cpu, nil))
	assert.Equal([]string{"first", "second", "both"}, order)

	order = nil
	assert.NoError(ins.Fire(EVENT_BEFORE_STEP, cpu, nil))
	assert.Equal([]string{"both"}, order)

	ins.Clear()
	order = nil
	assert.NoError(ins.Fire(EVENT_AFTER_STEP, cpu, nil))
	assert.Nil(order)
}

func TestEvent_Step(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Memory.Load([]Word{
		Word(MakeCode(OP_IFE, 0x20, 0x21)), // IFE 0, 1
		Word(MakeCode(OP_SET, 0x00, 0x1f)), // SET A, 0x1234
		0x1234,
		Word(MakeCodeExtended(OP_JSR, 0x1f)), // JSR 0x0000
		0x0000,
	})

	var events []string
	var traces []*Trace
	record := func(ev Event) Callback {
		return func(c *Cpu, trace *Trace) {
			assert.Same(cpu, c)
			events = append(events, ev.String())
			if trace != nil {
				traces = append(traces, trace)
			}
		}
	}
	for ev := range Event(EVENT_COUNT) {
		assert.NoError(cpu.On(record(ev), ev))
	}

	for range 3 {
		assert.NoError(cpu.Step())
	}

	assert.Equal([]string{
		"before_step", "before_execution", "after_execution", "after_step",
		"before_step", "skipped_instruction", "after_step",
		"before_step", "before_execution", "after_execution", "after_step",
	}, events)

	assert.Equal(5, len(traces))
	assert.Equal("IFE", traces[0].Instruction.Mnemonic)
	assert.Equal(Word(0), traces[0].Pc)

	skipped := traces[2]
	assert.Equal("SET", skipped.Instruction.Mnemonic)
	assert.Equal(Word(1), skipped.Pc)
	assert.Equal(VALUE_REGISTER, skipped.A.Kind)
	assert.Equal(Word(0x1234), skipped.B.Get())

	jsr := traces[3]
	assert.Equal("JSR", jsr.Instruction.Mnemonic)
	assert.Equal(Word(3), jsr.Pc)
	assert.Nil(jsr.B)
	assert.Equal("0003: JSR 0x0000", cpu.TraceString(jsr))
	assert.Equal("0001: SET A, 0x1234", cpu.TraceString(skipped))
}

func TestEvent_ObserversDoNotChangeResults(t *testing.T) {
	assert := assert.New(t)

	plain := NewCpu()
	plain.Memory.Load(fibonacci)
	assert.NoError(plain.Run(300))

	observed := NewCpu()
	observed.Memory.Load(fibonacci)
	steps := 0
	assert.NoError(observed.On(func(c *Cpu, trace *Trace) {
		steps++
		_ = c.String()
		_ = c.StackString()
	}, EVENT_BEFORE_STEP, EVENT_AFTER_STEP))
	assert.NoError(observed.On(func(c *Cpu, trace *Trace) {
		_ = c.TraceString(trace)
	}, EVENT_BEFORE_EXECUTION, EVENT_SKIPPED_INSTRUCTION))
	assert.NoError(observed.Run(300))

	assert.Equal(plain.Registers, observed.Registers)
	assert.Equal(plain.Cycles, observed.Cycles)
	assert.Equal(plain.Memory, observed.Memory)
	assert.NotZero(steps)
}
