package monitor

import (
	"iter"
	"log"
	"maps"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/dcpu16/cpu"
	"github.com/ezrec/dcpu16/internal"
)

// Pause is called when the CPU should stop for the user.
type Pause func(c *cpu.Cpu)

// Watch pauses the CPU when a condition becomes true.
//
// The condition is a starlark expression over the registers (A, B, C, X,
// Y, Z, I, J, SP, PC and O), the cycle counter CYCLES, and the skip flag
// SKIP. It is evaluated after every step.
type Watch struct {
	Expr   string      // Condition.
	Pause  Pause       // Called when the condition is true.
	Logger *log.Logger // Destination for errors, or the standard logger if nil.
	Err    error       // First evaluation error. No evaluation is done once set.
	Hits   int         // Number of times the condition was true.

	program *starlark.Program
}

// watchNames are the predeclared names of a watch expression.
var watchNames = func() (names []string) {
	for reg := range cpu.Register(cpu.REGISTER_COUNT) {
		names = append(names, reg.String())
	}
	return append(names, "CYCLES", "SKIP")
}()

// NewWatch compiles a watch condition.
func NewWatch(expr string) (w *Watch, err error) {
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	_, program, err := starlark.SourceProgramOptions(&opts, "watch", prog, func(name string) bool {
		return slices.Contains(watchNames, name)
	})
	if err != nil {
		err = &ErrWatch{Expr: expr, Err: err}
		return
	}

	w = &Watch{
		Expr:    expr,
		program: program,
	}

	return
}

// globals returns the values of the predeclared names.
func globals(c *cpu.Cpu) iter.Seq2[string, starlark.Value] {
	registers := internal.IterSeq2Map(c.Snapshot(), func(reg cpu.Register, word cpu.Word) (string, starlark.Value) {
		return reg.String(), starlark.MakeInt(int(word))
	})

	state := map[string]starlark.Value{
		"CYCLES": starlark.MakeInt(c.Cycles),
		"SKIP":   starlark.Bool(c.Skip),
	}

	return internal.IterSeq2Concat(registers, maps.All(state))
}

// Eval evaluates the condition against the current state of c.
func (w *Watch) Eval(c *cpu.Cpu) (ok bool, err error) {
	thread := starlark.Thread{Name: "watch"}
	pred := starlark.StringDict(maps.Collect(globals(c)))

	dict, err := w.program.Init(&thread, pred)
	if err != nil {
		return
	}

	rc, found := dict["rc"]
	ok = found && bool(rc.Truth())
	return
}

// Attach registers the watch on c.
func (w *Watch) Attach(c *cpu.Cpu) (err error) {
	return c.On(func(c *cpu.Cpu, _ *cpu.Trace) {
		if w.Err != nil {
			return
		}

		ok, err := w.Eval(c)
		if err != nil {
			w.Err = &ErrWatch{Expr: w.Expr, Err: err}
			if w.Logger == nil {
				log.Print(w.Err)
			} else {
				w.Logger.Print(w.Err)
			}
			return
		}

		if ok {
			w.Hits++
			if w.Pause != nil {
				w.Pause(c)
			}
		}
	}, cpu.EVENT_AFTER_STEP)
}

// Stepper pauses the CPU after every step.
type Stepper struct {
	Pause Pause // Called after each step.
	Steps int   // Number of pauses so far.
}

// Attach registers the stepper on c.
func (st *Stepper) Attach(c *cpu.Cpu) (err error) {
	return c.On(func(c *cpu.Cpu, _ *cpu.Trace) {
		st.Steps++
		if st.Pause != nil {
			st.Pause(c)
		}
	}, cpu.EVENT_AFTER_STEP)
}
