// Package mips decodes the fixed 32-bit MIPS32 instruction encoding.
//
// A Word is one 32-bit machine word. Field accessors slice the documented
// bit ranges out of a word; Decode classifies a word into its instruction
// family (register, immediate, or jump) through 64-entry opcode and
// function-code tables and returns an Inst, which renders its operands in
// the field order conventional for its mnemonic.
//
// Decoding is total and pure: every word yields a complete field record,
// and a word without a table entry decodes to the UNKNOWN mnemonic rather
// than failing.
package mips
