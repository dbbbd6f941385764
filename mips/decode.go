package mips

// Distinguished mnemonics produced outside the tables.
const (
	MNEMONIC_UNKNOWN = "UNKNOWN" // no table entry for the word
	MNEMONIC_NOP     = "NOP"     // the all-zero word
)

// Inst is the ephemeral decoded view of one word. It is computed per word
// and discarded after formatting; nothing in the package retains it.
type Inst struct {
	Family   Family
	Mnemonic string
	Layout   Layout
	Fields   Fields
}

// Decode classifies a word and returns its instruction view. Decoding is
// total: a word without a table entry yields the UNKNOWN mnemonic and a
// non-nil error naming the unrecognized code, never a failure.
func Decode(w Word) (inst Inst, err error) {
	inst.Fields = w.Fields()
	inst.Layout = LAYOUT_NONE
	inst.Mnemonic = MNEMONIC_UNKNOWN

	switch op := inst.Fields.Opcode; op {
	case OP_SPECIAL:
		inst.Family = FAMILY_REGISTER
		if w == 0 {
			// SLL R0, R0, #0 is the canonical no-op.
			inst.Mnemonic = MNEMONIC_NOP
			return
		}
		ent := functTable[inst.Fields.Funct]
		if len(ent.Mnemonic) == 0 {
			err = ErrFunct(inst.Fields.Funct)
			return
		}
		inst.Mnemonic = ent.Mnemonic
		inst.Layout = ent.Layout
	case OP_REGIMM:
		inst.Family = FAMILY_IMMEDIATE
		ent := regimmTable[inst.Fields.Rt]
		if len(ent.Mnemonic) == 0 {
			err = ErrRegimm(inst.Fields.Rt)
			return
		}
		inst.Mnemonic = ent.Mnemonic
		inst.Layout = ent.Layout
	default:
		ent := opTable[op]
		if len(ent.Mnemonic) == 0 {
			err = ErrOpcode(op)
			return
		}
		inst.Family = ent.Family
		inst.Mnemonic = ent.Mnemonic
		inst.Layout = ent.Layout
	}

	return
}
