package emulator

import (
	"github.com/ezrec/dcpu16/cpu"
	"github.com/ezrec/dcpu16/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     cpu.Word
	Cycles int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x, cycle %d: %v", uint16(err.Pc), err.Cycles, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
