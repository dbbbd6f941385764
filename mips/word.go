package mips

import (
	"fmt"
)

// Word is one 32-bit machine word, in program order.
type Word uint32

// Code is a 6-bit opcode or function code.
type Code uint32

// Reg is a 5-bit register index.
type Reg uint32

// String returns the register name.
func (r Reg) String() string {
	return fmt.Sprintf("R%d", uint32(r))
}

// Opcode returns bits 31-26.
func (w Word) Opcode() Code {
	return Code(w >> 26)
}

// Rs returns the source register, bits 25-21.
func (w Word) Rs() Reg {
	return Reg((w >> 21) & 0x1f)
}

// Rt returns the target register, bits 20-16.
func (w Word) Rt() Reg {
	return Reg((w >> 16) & 0x1f)
}

// Rd returns the destination register, bits 15-11.
func (w Word) Rd() Reg {
	return Reg((w >> 11) & 0x1f)
}

// Shamt returns the shift amount, bits 10-6.
func (w Word) Shamt() uint32 {
	return uint32(w>>6) & 0x1f
}

// Funct returns the function code, bits 5-0.
func (w Word) Funct() Code {
	return Code(w & 0x3f)
}

// Uimm returns the immediate, bits 15-0, zero extended.
func (w Word) Uimm() uint32 {
	return uint32(w) & 0xffff
}

// Imm returns the immediate, bits 15-0, as a 16-bit two's complement value.
func (w Word) Imm() int32 {
	return int32(int16(w))
}

// Target returns the jump target, bits 25-0.
func (w Word) Target() uint32 {
	return uint32(w) & 0x3ffffff
}

// Fields is the full field record of one word. Extraction never consults
// the opcode: every field is always populated, and the instruction family
// decides which are meaningful.
type Fields struct {
	Opcode Code
	Rs     Reg
	Rt     Reg
	Rd     Reg
	Shamt  uint32
	Funct  Code
	Imm    int32
	Uimm   uint32
	Target uint32
}

// Fields extracts the complete field record from the word.
func (w Word) Fields() Fields {
	return Fields{
		Opcode: w.Opcode(),
		Rs:     w.Rs(),
		Rt:     w.Rt(),
		Rd:     w.Rd(),
		Shamt:  w.Shamt(),
		Funct:  w.Funct(),
		Imm:    w.Imm(),
		Uimm:   w.Uimm(),
		Target: w.Target(),
	}
}

// String returns the word as 32 ASCII bits, most significant first.
func (w Word) String() string {
	return fmt.Sprintf("%032b", uint32(w))
}

// FieldString returns the word as its six instruction fields, space
// separated (opcode rs rt rd shamt funct).
func (w Word) FieldString() string {
	bits := w.String()
	return bits[0:6] + " " + bits[6:11] + " " + bits[11:16] + " " +
		bits[16:21] + " " + bits[21:26] + " " + bits[26:32]
}
