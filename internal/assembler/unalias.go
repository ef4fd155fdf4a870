package assembler

import (
	"github.com/keurnel/vasm/internal/isa"
	"github.com/keurnel/vasm/internal/operand"
)

// unalias rewrites a synthetic mnemonic's opcode/prototype/operands into
// its concrete form in place, run between prototype agreement and size
// agreement (spec.md §4.6 step 6, §9 "keep the aliases as a tiny rewrite
// pass between parse and emit"). Grounded on
// original_source/src/instruction.c's unalias_instruction.
func unalias(instr *instruction) {
	if !isa.IsSynthetic(instr.name) {
		return
	}

	rewrite := func(concreteName string) {
		m, _ := isa.Lookup(concreteName)
		instr.name, instr.opcode, instr.proto = m.Name, m.Opcode, m.Prototype
	}

	switch instr.name {
	case "NOP":
		rewrite("XCHG")
		r0 := operand.Register{ID: 0, OperSize: operand.Long}
		instr.op1, instr.op2 = r0, r0

	case "INC":
		rewrite("ADD")
		instr.op2 = instr.op1
		instr.op1 = operand.Const{Value: 1, CSize: operand.Byte, OperSize: operand.Short}

	case "DEC":
		rewrite("SUB")
		instr.op2 = instr.op1
		instr.op1 = operand.Const{Value: 1, CSize: operand.Byte, OperSize: operand.Short}

	case "NEG":
		rewrite("SUB")
		instr.op2 = instr.op1
		instr.op1 = operand.Const{Value: 0, CSize: operand.Byte, OperSize: operand.Short}

	case "CLR":
		rewrite("XOR")
		instr.op2 = instr.op1
	}
}
