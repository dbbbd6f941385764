package disasm

import (
	"fmt"

	"github.com/svonstrauss/mipsdis/mips"
)

// Record is the rendering of one word at one address.
type Record struct {
	Addr uint32
	Word mips.Word
	Mode Mode
	Inst *mips.Inst // Decoded view; nil in data mode.
	Err  error      // Unrecognized opcode or function code, if any.
}

// Value returns the unsigned interpretation of a data word.
func (rec Record) Value() uint32 {
	return uint32(rec.Word)
}

// Signed returns the two's complement interpretation of a data word.
func (rec Record) Signed() int32 {
	return int32(rec.Word)
}

// String renders the record as one output line. Instructions show the six
// spaced bit fields, the address, the mnemonic, and its operands; data
// words show the raw bits, the address, and the signed decimal value.
func (rec Record) String() string {
	if rec.Mode == MODE_DATA {
		return fmt.Sprintf("%v      \t%d\t%d", rec.Word, rec.Addr, rec.Signed())
	}

	return fmt.Sprintf("%v\t%d\t%v", rec.Word.FieldString(), rec.Addr, rec.Inst)
}
