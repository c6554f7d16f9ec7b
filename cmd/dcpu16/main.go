// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/ezrec/dcpu16/cpu"
	"github.com/ezrec/dcpu16/emulator"
	"github.com/ezrec/dcpu16/monitor"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// run parses args, then loads and runs an image. The terminal is always
// restored before run returns.
func run(args []string, stdin *os.File, stdout io.Writer, stderr io.Writer) (err error) {
	var binary string
	var dump string
	var width int
	var cycles int
	var trace bool
	var step bool
	var watch string
	var memory bool
	var list bool
	var verbose bool

	flags := flag.NewFlagSet("dcpu16", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&binary, "b", "", "Binary image to load")
	flags.StringVar(&dump, "d", "", "Hex dump image to load")
	flags.IntVar(&width, "w", cpu.DUMP_WORDS_PER_LINE, "Words per line of the hex dump")
	flags.IntVar(&cycles, "n", 150, "Cycle budget")
	flags.BoolVar(&trace, "t", false, "Trace registers, stack, and instructions")
	flags.BoolVar(&step, "s", false, "Step mode, wait for a key after each instruction")
	flags.StringVar(&watch, "u", "", "Pause when the watch expression is true")
	flags.BoolVar(&memory, "m", false, "Dump memory on exit")
	flags.BoolVar(&list, "l", false, "List the instruction set, and exit")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		return errors.Errorf("unknown arguments: %v", flags.Args())
	}

	if list {
		for inst := range cpu.NewTable().Instructions() {
			fmt.Fprintf(stdout, "%-4s 0x%04x %d\n", inst.Mnemonic, uint16(inst.Opcode), inst.Cost)
		}
		return
	}

	if (len(binary) == 0) == (len(dump) == 0) {
		return errors.New("exactly one of -b or -d is required")
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if trace {
		emu.Tracer = &monitor.Tracer{Registers: true, Stack: true}
	}

	var kb *keyboard
	pause := func(c *cpu.Cpu) {
		if kb == nil {
			return
		}
		fmt.Fprintf(stderr, "%v\n-- press a key --", c)
		err := kb.WaitKey()
		fmt.Fprintln(stderr)
		if err != nil {
			log.Printf("dcpu16: %v", err)
		}
	}

	if step {
		emu.Stepper = &monitor.Stepper{Pause: pause}
	}

	if len(watch) != 0 {
		emu.Watch, err = monitor.NewWatch(watch)
		if err != nil {
			return
		}
		emu.Watch.Pause = pause
	}

	if len(binary) != 0 {
		err = emu.LoadFile(binary, false, width)
	} else {
		err = emu.LoadFile(dump, true, width)
	}
	if err != nil {
		return
	}

	if step || len(watch) != 0 {
		kb, err = openKeyboard(stdin)
		if err != nil {
			return
		}
		defer kb.Close()
	}

	err = emu.Run(cycles)

	fmt.Fprintln(stdout, emu.Cpu)
	if memory {
		fmt.Fprintln(stdout, emu.Memory.Dump(width))
	}

	return
}
