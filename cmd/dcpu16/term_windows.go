package main

import (
	"bufio"
	"os"
)

// keyboard reads whole lines, as the console has no cbreak mode.
type keyboard struct {
	input *bufio.Reader
}

func openKeyboard(input *os.File) (kb *keyboard, err error) {
	kb = &keyboard{input: bufio.NewReader(input)}
	return
}

// WaitKey blocks until enter is pressed.
func (kb *keyboard) WaitKey() (err error) {
	_, err = kb.input.ReadString('\n')
	return
}

// Close does nothing.
func (kb *keyboard) Close() error {
	return nil
}
