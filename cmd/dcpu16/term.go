//go:build !windows

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// keyboard reads single keypresses from a terminal in cbreak mode.
type keyboard struct {
	input *os.File
	canon unix.Termios
}

func openKeyboard(input *os.File) (kb *keyboard, err error) {
	kb = &keyboard{input: input}

	err = termios.Tcgetattr(input.Fd(), &kb.canon)
	if err != nil {
		return nil, errors.Wrap(err, "keyboard")
	}

	cbreak := kb.canon
	termios.Cfmakecbreak(&cbreak)
	err = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &cbreak)
	if err != nil {
		termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &kb.canon)
		return nil, errors.Wrap(err, "keyboard")
	}

	return
}

// WaitKey blocks until a key is pressed.
func (kb *keyboard) WaitKey() (err error) {
	var key [1]byte
	_, err = kb.input.Read(key[:])
	return
}

// Close restores the terminal mode.
func (kb *keyboard) Close() error {
	return termios.Tcsetattr(kb.input.Fd(), termios.TCIFLUSH, &kb.canon)
}
