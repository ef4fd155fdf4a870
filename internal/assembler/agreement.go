package assembler

import (
	"github.com/keurnel/vasm/internal/isa"
	"github.com/keurnel/vasm/internal/operand"
	"github.com/keurnel/vasm/internal/width"
)

// checkPrototype implements the §4.6 prototype-agreement table: operand
// presence/kind must match what the instruction's prototype requires.
// Grounded on original_source/src/instruction.c's instr_type_agreement.
func checkPrototype(proto isa.Prototype, op1, op2 operand.Operand) bool {
	switch proto {
	case isa.ProtoN:
		return op1 == nil && op2 == nil
	case isa.ProtoA:
		return op1 != nil && op2 != nil && !operand.IsConst(op2)
	case isa.ProtoX:
		return op1 != nil && op2 != nil && !operand.IsConst(op1) && !operand.IsConst(op2)
	case isa.ProtoI:
		return op1 != nil && op2 != nil && operand.IsConst(op1) && !operand.IsConst(op2)
	case isa.ProtoP:
		return op1 != nil && op2 == nil && !operand.IsConst(op1)
	case isa.ProtoU:
		return op1 != nil && op2 == nil
	case isa.ProtoT:
		return op1 != nil && op2 == nil && operand.IsConst(op1)
	default:
		return false
	}
}

// sizeAgreement implements §4.6 size agreement: coerce indirect operands
// to the instruction's size, fit/widen Const operands, then require
// equality across every present operand and the instruction itself.
// Grounded on original_source/src/instruction.c's instr_size_agreement
// and op_size_agreement.
func sizeAgreement(proto isa.Prototype, instrSize operand.Size, op1, op2 operand.Operand) (operand.Operand, operand.Operand, bool) {
	if proto == isa.ProtoN {
		return op1, op2, true
	}

	newOp1, ok1 := opSizeAgreement(instrSize, op1)
	if op2 == nil {
		return newOp1, nil, ok1
	}
	newOp2, ok2 := opSizeAgreement(instrSize, op2)

	if c1, isC1 := newOp1.(operand.Const); isC1 && c1.OperSize < newOp2.Size() {
		c1.OperSize = newOp2.Size()
		newOp1 = c1
	} else if c2, isC2 := newOp2.(operand.Const); isC2 && c2.OperSize < newOp1.Size() {
		c2.OperSize = newOp1.Size()
		newOp2 = c2
	}

	return newOp1, newOp2, ok1 && ok2 && newOp1.Size() == newOp2.Size()
}

// opSizeAgreement reconciles a single operand against the instruction's
// resolved size, returning its (possibly adjusted) form and whether it
// now agrees.
func opSizeAgreement(instrSize operand.Size, op operand.Operand) (operand.Operand, bool) {
	if op == nil {
		return nil, true
	}
	switch v := op.(type) {
	case operand.Const:
		if v.Value >= 0 {
			v = setConstSize(v, fitWidth(int64(v.Value)))
		}
		switch {
		case instrSize == operand.Short && v.Value < 0 && v.Value >= width.SByteMin:
			v.CSize, v.OperSize = operand.Byte, operand.Short
		case instrSize == operand.Long:
			// Force the immediate up to a full word, the way the original's
			// op_size_agreement consults fit_size_hint rather than assuming
			// Word outright.
			w := width.FitHint(int64(v.Value), 4)
			if w == -1 {
				w = 4
			}
			v = setConstSize(v, w)
		}
		return v, v.OperSize == instrSize

	case operand.Indirect, operand.ScaledIndirect:
		widened := operand.WithSize(op, instrSize)
		return widened, widened.Size() == instrSize

	case operand.Register:
		return v, v.OperSize == instrSize

	default:
		return op, true
	}
}

func setConstSize(c operand.Const, w int) operand.Const {
	widened := operand.WithConstSize(c, constSizeFromWidth(w)).(operand.Const)
	widened.OperSize = sizeFromWidth(w)
	return widened
}
