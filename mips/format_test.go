package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word     Word
		expected string
	}){
		{MakeRegister(0x20, 1, 2, 3, 0), "ADD\tR3, R1, R2"},
		{MakeRegister(0x22, 4, 5, 6, 0), "SUB\tR6, R4, R5"},
		{MakeRegister(0x27, 1, 2, 3, 0), "NOR\tR3, R1, R2"},
		{MakeRegister(0x00, 0, 2, 3, 4), "SLL\tR3, R2, #4"},
		{MakeRegister(0x03, 0, 2, 3, 31), "SRA\tR3, R2, #31"},
		{MakeRegister(0x04, 1, 2, 3, 0), "SLLV\tR3, R2, R1"},
		{MakeRegister(0x08, 31, 0, 0, 0), "JR\tR31"},
		{MakeRegister(0x09, 4, 0, 31, 0), "JALR\tR31, R4"},
		{MakeRegister(0x0c, 0, 0, 0, 0), "SYSCALL"},
		{MakeRegister(0x0d, 0, 0, 0, 0), "BREAK"},
		{MakeRegister(0x10, 0, 0, 5, 0), "MFHI\tR5"},
		{MakeRegister(0x13, 7, 0, 0, 0), "MTLO\tR7"},
		{Word(0), "NOP"},

		{MakeImmediate(0x08, 1, 2, -4), "ADDI\tR2, R1, #-4"},
		{MakeImmediate(0x0d, 1, 2, 0xff), "ORI\tR2, R1, #255"},
		{MakeImmediate(0x23, 29, 8, -12), "LW\tR8, -12(R29)"},
		{MakeImmediate(0x2b, 29, 8, 16), "SW\tR8, 16(R29)"},
		{MakeImmediate(0x04, 10, 8, 4), "BEQ\tR10, R8, #4"},
		{MakeImmediate(0x05, 10, 8, -8), "BNE\tR10, R8, #-8"},
		{MakeImmediate(0x07, 9, 0, -2), "BGTZ\tR9, #-2"},
		{MakeImmediate(OP_REGIMM, 9, 0x00, 3), "BLTZ\tR9, #3"},
		{MakeImmediate(OP_REGIMM, 9, 0x11, 3), "BGEZAL\tR9, #3"},
		{MakeImmediate(0x0f, 0, 4, -0x8000), "LUI\tR4, #32768"},

		{MakeJump(0x02, 160), "J\t#640"},
		{MakeJump(0x03, 150), "JAL\t#600"},
	}

	for _, entry := range table {
		inst, err := Decode(entry.word)
		assert.NoError(err, entry.expected)
		assert.Equal(entry.expected, inst.String())
	}
}

func TestInstStringUnknown(t *testing.T) {
	assert := assert.New(t)

	// The raw bits and address on the record line identify the word; the
	// mnemonic column carries only the marker.
	inst, err := Decode(MakeImmediate(0x3f, 1, 2, 3))
	assert.Error(err)
	assert.Equal("UNKNOWN", inst.String())
	assert.Equal("", inst.Operands())
}
