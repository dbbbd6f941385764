package mips

import (
	"github.com/svonstrauss/mipsdis/translate"
)

var f = translate.From

// ErrOpcode reports an opcode with no mnemonic table entry.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("opcode %#02x unrecognized", uint32(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrFunct reports a register-family function code with no table entry.
type ErrFunct Code

func (ef ErrFunct) Error() string {
	return f("function code %#02x unrecognized", uint32(ef))
}

func (ef ErrFunct) Is(err error) (ok bool) {
	_, ok = err.(ErrFunct)
	return
}

// ErrRegimm reports a branch variant (the rt field under OP_REGIMM) with
// no table entry.
type ErrRegimm Reg

func (er ErrRegimm) Error() string {
	return f("branch variant %#02x unrecognized", uint32(er))
}

func (er ErrRegimm) Is(err error) (ok bool) {
	_, ok = err.(ErrRegimm)
	return
}
