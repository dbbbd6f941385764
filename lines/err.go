package lines

import (
	"github.com/svonstrauss/mipsdis/translate"
)

var f = translate.From

// ErrLineLength reports a line that is not exactly WordBits long.
type ErrLineLength int

func (err ErrLineLength) Error() string {
	return f("%v characters, want %v", int(err), WordBits)
}

func (err ErrLineLength) Is(target error) (ok bool) {
	_, ok = target.(ErrLineLength)
	return
}

// ErrLineChar reports a character other than '0' or '1'.
type ErrLineChar byte

func (err ErrLineChar) Error() string {
	return f("character %q is not a bit", rune(err))
}

func (err ErrLineChar) Is(target error) (ok bool) {
	_, ok = target.(ErrLineChar)
	return
}

// ErrLine locates a malformed line in its input.
type ErrLine struct {
	No   int
	Text string
	Err  error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.No, err.Text, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
