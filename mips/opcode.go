package mips

// Family classifies a word by its opcode field.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_UNKNOWN   = Family(0) // unknown
	FAMILY_REGISTER  = Family(1) // register
	FAMILY_IMMEDIATE = Family(2) // immediate
	FAMILY_JUMP      = Family(3) // jump
)

// Layout selects the operand order and syntax for a mnemonic. Formatting
// dispatches on the layout tag, never on the mnemonic text.
type Layout int

//go:generate go tool stringer -linecomment -type=Layout
const (
	LAYOUT_NONE       = Layout(0)  // none
	LAYOUT_REG3       = Layout(1)  // reg3
	LAYOUT_SHIFT      = Layout(2)  // shift
	LAYOUT_SHIFTV     = Layout(3)  // shiftv
	LAYOUT_JREG       = Layout(4)  // jreg
	LAYOUT_JLINK      = Layout(5)  // jlink
	LAYOUT_MFROM      = Layout(6)  // mfrom
	LAYOUT_MTO        = Layout(7)  // mto
	LAYOUT_IMM3       = Layout(8)  // imm3
	LAYOUT_LOADSTORE  = Layout(9)  // loadstore
	LAYOUT_BRANCH2    = Layout(10) // branch2
	LAYOUT_BRANCH1    = Layout(11) // branch1
	LAYOUT_UPPER      = Layout(12) // upper
	LAYOUT_TARGET     = Layout(13) // target
)

// Distinguished opcodes that dispatch through a second table.
const (
	OP_SPECIAL = Code(0x00) // register family, dispatch on funct
	OP_REGIMM  = Code(0x01) // single-register branches, dispatch on rt
)

// entry is one mnemonic table slot. A slot with an empty mnemonic has no
// documented instruction.
type entry struct {
	Mnemonic string
	Layout   Layout
}

// opEntry is one opcode table slot.
type opEntry struct {
	Family   Family
	Mnemonic string
	Layout   Layout
}

// opTable maps the 6-bit opcode field. OP_SPECIAL and OP_REGIMM carry no
// mnemonic of their own and defer to functTable and regimmTable.
var opTable = [64]opEntry{
	OP_SPECIAL: {Family: FAMILY_REGISTER},
	OP_REGIMM:  {Family: FAMILY_IMMEDIATE},

	0x02: {FAMILY_JUMP, "J", LAYOUT_TARGET},
	0x03: {FAMILY_JUMP, "JAL", LAYOUT_TARGET},

	0x04: {FAMILY_IMMEDIATE, "BEQ", LAYOUT_BRANCH2},
	0x05: {FAMILY_IMMEDIATE, "BNE", LAYOUT_BRANCH2},
	0x06: {FAMILY_IMMEDIATE, "BLEZ", LAYOUT_BRANCH1},
	0x07: {FAMILY_IMMEDIATE, "BGTZ", LAYOUT_BRANCH1},

	0x08: {FAMILY_IMMEDIATE, "ADDI", LAYOUT_IMM3},
	0x09: {FAMILY_IMMEDIATE, "ADDIU", LAYOUT_IMM3},
	0x0a: {FAMILY_IMMEDIATE, "SLTI", LAYOUT_IMM3},
	0x0c: {FAMILY_IMMEDIATE, "ANDI", LAYOUT_IMM3},
	0x0d: {FAMILY_IMMEDIATE, "ORI", LAYOUT_IMM3},
	0x0e: {FAMILY_IMMEDIATE, "XORI", LAYOUT_IMM3},
	0x0f: {FAMILY_IMMEDIATE, "LUI", LAYOUT_UPPER},

	0x20: {FAMILY_IMMEDIATE, "LB", LAYOUT_LOADSTORE},
	0x21: {FAMILY_IMMEDIATE, "LH", LAYOUT_LOADSTORE},
	0x23: {FAMILY_IMMEDIATE, "LW", LAYOUT_LOADSTORE},
	0x24: {FAMILY_IMMEDIATE, "LBU", LAYOUT_LOADSTORE},
	0x25: {FAMILY_IMMEDIATE, "LHU", LAYOUT_LOADSTORE},
	0x28: {FAMILY_IMMEDIATE, "SB", LAYOUT_LOADSTORE},
	0x29: {FAMILY_IMMEDIATE, "SH", LAYOUT_LOADSTORE},
	0x2b: {FAMILY_IMMEDIATE, "SW", LAYOUT_LOADSTORE},
}

// functTable maps the 6-bit function code within the register family.
var functTable = [64]entry{
	0x00: {"SLL", LAYOUT_SHIFT},
	0x02: {"SRL", LAYOUT_SHIFT},
	0x03: {"SRA", LAYOUT_SHIFT},
	0x04: {"SLLV", LAYOUT_SHIFTV},
	0x06: {"SRLV", LAYOUT_SHIFTV},
	0x07: {"SRAV", LAYOUT_SHIFTV},

	0x08: {"JR", LAYOUT_JREG},
	0x09: {"JALR", LAYOUT_JLINK},
	0x0c: {"SYSCALL", LAYOUT_NONE},
	0x0d: {"BREAK", LAYOUT_NONE},

	0x10: {"MFHI", LAYOUT_MFROM},
	0x11: {"MTHI", LAYOUT_MTO},
	0x12: {"MFLO", LAYOUT_MFROM},
	0x13: {"MTLO", LAYOUT_MTO},

	0x20: {"ADD", LAYOUT_REG3},
	0x21: {"ADDU", LAYOUT_REG3},
	0x22: {"SUB", LAYOUT_REG3},
	0x23: {"SUBU", LAYOUT_REG3},
	0x24: {"AND", LAYOUT_REG3},
	0x25: {"OR", LAYOUT_REG3},
	0x26: {"XOR", LAYOUT_REG3},
	0x27: {"NOR", LAYOUT_REG3},
	0x2a: {"SLT", LAYOUT_REG3},
}

// regimmTable maps the rt field when the opcode is OP_REGIMM.
var regimmTable = [32]entry{
	0x00: {"BLTZ", LAYOUT_BRANCH1},
	0x01: {"BGEZ", LAYOUT_BRANCH1},
	0x10: {"BLTZAL", LAYOUT_BRANCH1},
	0x11: {"BGEZAL", LAYOUT_BRANCH1},
}

// MakeRegister builds a register-family word from its fields.
func MakeRegister(funct Code, rs, rt, rd Reg, shamt uint32) Word {
	return Word(uint32(rs&0x1f)<<21 | uint32(rt&0x1f)<<16 |
		uint32(rd&0x1f)<<11 | (shamt&0x1f)<<6 | uint32(funct&0x3f))
}

// MakeImmediate builds an immediate-family word. The immediate is
// truncated to its 16-bit two's complement encoding.
func MakeImmediate(op Code, rs, rt Reg, imm int32) Word {
	return Word(uint32(op&0x3f)<<26 | uint32(rs&0x1f)<<21 |
		uint32(rt&0x1f)<<16 | uint32(uint16(imm)))
}

// MakeJump builds a jump-family word from the raw 26-bit target field.
func MakeJump(op Code, target uint32) Word {
	return Word(uint32(op&0x3f)<<26 | target&0x3ffffff)
}
