// Package isa holds the static mnemonic table for the target machine: the
// compile-time {name, opcode, prototype} triples described in spec.md §4.3,
// plus the opcode-range rules for short/long toggling and fixed-size
// instructions. Grounded on original_source/src/instruction_list.h (the
// generated table spec.md §1 calls out as an external collaborator) and
// original_source/src/instruction.c (instr_info, togglable_instruction,
// fixed_instruction).
package isa

import "strings"

// Prototype is the operand-shape contract of an instruction.
type Prototype byte

const (
	ProtoN Prototype = 'N' // no operands
	ProtoA Prototype = 'A' // any, reg/ind — op2 not Const
	ProtoX Prototype = 'X' // reg/ind, reg/ind — neither Const
	ProtoI Prototype = 'I' // const, reg/ind — op1 Const only
	ProtoP Prototype = 'P' // reg/ind alone — not Const
	ProtoU Prototype = 'U' // any alone
	ProtoT Prototype = 'T' // const alone
)

// HasOperands reports whether a prototype requires at least one operand.
func (p Prototype) HasOperands() bool { return p != ProtoN }

// HasTwoOperands reports whether a prototype requires exactly two operands.
func (p Prototype) HasTwoOperands() bool {
	switch p {
	case ProtoA, ProtoX, ProtoI:
		return true
	default:
		return false
	}
}

// Mnemonic is one entry of the static instruction table.
type Mnemonic struct {
	Name      string
	Opcode    byte
	Prototype Prototype
}

// OpcodeInt is the INT opcode, which is encoded specially (spec.md §4.5):
// no descriptor byte, a single immediate byte follows the opcode directly.
const OpcodeInt byte = 0x8E

// table is the static mnemonic table. Entries compare case-insensitively.
// Concrete opcodes are unique except where noted; the five synthetic
// mnemonics (NOP, INC, DEC, NEG, CLR) use opcode 0xFF as a sentinel —
// unalias (internal/assembler/unalias.go) replaces it before emission.
//
// The MOVcc synthetic block present in the generator's source config
// (MOVE/MOVZ/MOVNE/.../MOVGEU) is intentionally omitted: it reuses the
// existing JMPcc opcodes (0x80-0x8A) under new names, which would make two
// live mnemonics share one concrete opcode outside of the five blessed
// synthetics. Conditional data moves are out of scope until the table is
// regenerated without that conflict.
var table = []Mnemonic{
	{"ADD", 0x00, ProtoA},
	{"SUB", 0x02, ProtoA},
	{"ADC", 0x04, ProtoA},
	{"SBB", 0x06, ProtoA},
	{"RSUB", 0x08, ProtoA},
	{"NOR", 0x20, ProtoA},
	{"NAND", 0x24, ProtoA},
	{"OR", 0x28, ProtoA},
	{"ORN", 0x2A, ProtoA},
	{"AND", 0x2C, ProtoA},
	{"ANDN", 0x2E, ProtoA},
	{"MOV", 0x30, ProtoA},
	{"XNOR", 0x34, ProtoA},
	{"NOT", 0x38, ProtoP},
	{"XOR", 0x3C, ProtoA},
	{"CMP", 0x42, ProtoA},
	{"TEST", 0x6C, ProtoA},

	{"JMP", 0x80, ProtoU},
	{"JE", 0x81, ProtoU},
	{"JZ", 0x81, ProtoU},
	{"JNE", 0x82, ProtoU},
	{"JNZ", 0x82, ProtoU},
	{"JL", 0x83, ProtoU},
	{"JLE", 0x84, ProtoU},
	{"JG", 0x85, ProtoU},
	{"JGE", 0x86, ProtoU},
	{"JLU", 0x87, ProtoU},
	{"JLEU", 0x88, ProtoU},
	{"JGU", 0x89, ProtoU},
	{"JGEU", 0x8A, ProtoU},

	{"CALL", 0x8B, ProtoU},
	{"RET", 0x8C, ProtoN},
	{"HLT", 0x8D, ProtoN},
	{"INT", OpcodeInt, ProtoT},
	{"IRET", 0x8F, ProtoN},

	{"LOM", 0x70, ProtoU},
	{"ROM", 0x71, ProtoP},
	{"LOI", 0x72, ProtoU},
	{"ROI", 0x73, ProtoP},
	{"ROP", 0x75, ProtoP},
	{"LFL", 0x76, ProtoU},
	{"RFL", 0x77, ProtoP},
	{"LOT", 0x78, ProtoU},
	{"ROT", 0x79, ProtoP},
	{"LOS", 0x7A, ProtoU},
	{"ROS", 0x7B, ProtoP},
	{"LOF", 0x7C, ProtoU},
	{"ROF", 0x7D, ProtoP},

	{"POP", 0xA0, ProtoP},
	{"PUSH", 0xA2, ProtoU},
	{"IN", 0xA4, ProtoI},
	{"OUT", 0xA6, ProtoI},
	{"XCHG", 0xA8, ProtoX},
	{"POPR", 0xAA, ProtoN},
	{"PUSHR", 0xAB, ProtoN},

	// Synthetic mnemonics. Opcode 0xFF is a sentinel — never written to
	// output. internal/assembler's unaliaser rewrites these in place.
	{"NOP", 0xFF, ProtoN},
	{"INC", 0xFF, ProtoP},
	{"DEC", 0xFF, ProtoP},
	{"NEG", 0xFF, ProtoP},
	{"CLR", 0xFF, ProtoP},
}

// Lookup finds a mnemonic record by name, case-insensitively. It returns
// ok=false for unrecognized mnemonics.
func Lookup(name string) (Mnemonic, bool) {
	for _, m := range table {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Mnemonic{}, false
}

// IsSynthetic reports whether name resolves to one of the five synthetic
// mnemonics that get rewritten before emission.
func IsSynthetic(name string) bool {
	switch strings.ToUpper(name) {
	case "NOP", "INC", "DEC", "NEG", "CLR":
		return true
	default:
		return false
	}
}

// nonToggleable is the opcode range that has no short-form (opcode+1)
// counterpart. original_source/src/instruction.c's togglable_instruction
// treats everything outside [0x70, 0x8F] as toggleable; that single
// contiguous range is wider than — but a superset consistent with — the two
// sub-ranges spec.md §4.5 names ([0x70,0x7D] special-register load/read and
// [0x80,0x8A] jumps/calls): it additionally covers CALL/RET/HLT/INT/IRET,
// which plainly have no short form either. We follow the original's wider,
// internally-consistent range.
func nonToggleable(opcode byte) bool {
	return opcode >= 0x70 && opcode <= 0x8F
}

// Toggleable reports whether opcode has a short-form variant at opcode+1.
func Toggleable(opcode byte) bool {
	return !nonToggleable(opcode)
}

// Fixed reports whether an instruction with this prototype can never carry
// a length modifier at all — used for prototype N (no-operand) instructions,
// mirroring original_source/src/instruction.c's fixed_instruction check
// folded into the IT_N test in parse_length_modifier.
func Fixed(proto Prototype) bool {
	return proto == ProtoN
}
