package monitor

import (
	"log"

	"github.com/ezrec/dcpu16/cpu"
)

// Tracer logs the state of the CPU as it runs.
type Tracer struct {
	Logger    *log.Logger // Destination, or the standard logger if nil.
	Registers bool        // Log the cycle count and registers before each step.
	Stack     bool        // Log the stack before each step.
}

func (tr *Tracer) printf(format string, args ...any) {
	if tr.Logger == nil {
		log.Printf(format, args...)
	} else {
		tr.Logger.Printf(format, args...)
	}
}

// Attach registers the tracer callbacks on c.
func (tr *Tracer) Attach(c *cpu.Cpu) (err error) {
	err = c.On(func(c *cpu.Cpu, _ *cpu.Trace) {
		if tr.Registers {
			tr.printf("cycles: %d", c.Cycles)
			tr.printf("%v", c)
		}
		if tr.Stack {
			tr.printf("stack: %v", c.StackString())
		}
	}, cpu.EVENT_BEFORE_STEP)
	if err != nil {
		return
	}

	err = c.On(func(c *cpu.Cpu, trace *cpu.Trace) {
		tr.printf("%v", c.TraceString(trace))
	}, cpu.EVENT_BEFORE_EXECUTION)
	if err != nil {
		return
	}

	err = c.On(func(c *cpu.Cpu, trace *cpu.Trace) {
		tr.printf("*skipped* %v", c.TraceString(trace))
	}, cpu.EVENT_SKIPPED_INSTRUCTION)

	return
}
