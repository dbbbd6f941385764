package disasm

import (
	"github.com/svonstrauss/mipsdis/translate"
)

var f = translate.From

// ErrConfigValue reports a profile global with the wrong type or range.
type ErrConfigValue string

func (err ErrConfigValue) Error() string {
	return f("profile value %v invalid", string(err))
}
