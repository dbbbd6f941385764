package mips

import (
	"fmt"
)

// Operands returns the operand text for the instruction, in the field
// order fixed by its layout. A layout without operands (SYSCALL, BREAK,
// NOP, UNKNOWN) returns the empty string.
func (inst Inst) Operands() string {
	fl := inst.Fields

	switch inst.Layout {
	case LAYOUT_REG3:
		return fmt.Sprintf("%v, %v, %v", fl.Rd, fl.Rs, fl.Rt)
	case LAYOUT_SHIFT:
		return fmt.Sprintf("%v, %v, #%d", fl.Rd, fl.Rt, fl.Shamt)
	case LAYOUT_SHIFTV:
		return fmt.Sprintf("%v, %v, %v", fl.Rd, fl.Rt, fl.Rs)
	case LAYOUT_JREG:
		return fl.Rs.String()
	case LAYOUT_JLINK:
		return fmt.Sprintf("%v, %v", fl.Rd, fl.Rs)
	case LAYOUT_MFROM:
		return fl.Rd.String()
	case LAYOUT_MTO:
		return fl.Rs.String()
	case LAYOUT_IMM3:
		return fmt.Sprintf("%v, %v, #%d", fl.Rt, fl.Rs, fl.Imm)
	case LAYOUT_LOADSTORE:
		return fmt.Sprintf("%v, %d(%v)", fl.Rt, fl.Imm, fl.Rs)
	case LAYOUT_BRANCH2:
		return fmt.Sprintf("%v, %v, #%d", fl.Rs, fl.Rt, fl.Imm)
	case LAYOUT_BRANCH1:
		return fmt.Sprintf("%v, #%d", fl.Rs, fl.Imm)
	case LAYOUT_UPPER:
		return fmt.Sprintf("%v, #%d", fl.Rt, fl.Uimm)
	case LAYOUT_TARGET:
		// Jump targets are word indexes; scale to a byte address.
		return fmt.Sprintf("#%d", fl.Target*4)
	}

	return ""
}

// String returns the mnemonic and its operand text, tab separated. A
// mnemonic without operands stands alone, with no trailing tab.
func (inst Inst) String() string {
	operands := inst.Operands()
	if len(operands) == 0 {
		return inst.Mnemonic
	}

	return inst.Mnemonic + "\t" + operands
}
