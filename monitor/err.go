package monitor

import (
	"github.com/ezrec/dcpu16/translate"
)

var f = translate.From

// ErrWatch is returned when a watch expression does not compile.
type ErrWatch struct {
	Expr string
	Err  error
}

func (err *ErrWatch) Error() string {
	return f("watch %q: %v", err.Expr, err.Err)
}

func (err *ErrWatch) Unwrap() error {
	return err.Err
}
