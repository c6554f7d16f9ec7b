package cpu

import (
	"strings"

	"github.com/ezrec/dcpu16/translate"
)

var f = translate.From

// ErrOpcode is returned when an instruction word names an opcode that is
// not in the instruction table. The value is the table key, so extended
// opcodes carry the EXTENDED prefix.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("unexpected opcode 0x%04x", uint16(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrValue is returned when an operand code has no addressing mode.
type ErrValue Word

func (ev ErrValue) Error() string {
	return f("unexpected value 0x%02x", uint16(ev))
}

func (ev ErrValue) Is(err error) (ok bool) {
	_, ok = err.(ErrValue)
	return
}

// ErrEvent is returned when registering or firing an unknown event.
type ErrEvent struct {
	Name  string   // Offending event name.
	Valid []string // All valid event names.
}

func (err ErrEvent) Error() string {
	return f("unknown event: %q, valid events: %v", err.Name, strings.Join(err.Valid, ", "))
}

func (err ErrEvent) Is(target error) (ok bool) {
	_, ok = target.(ErrEvent)
	return
}
