package assembler

import (
	"github.com/keurnel/vasm/internal/debugcontext"
	"github.com/keurnel/vasm/internal/operand"
	"github.com/keurnel/vasm/internal/token"
)

// parseIndirect parses a bracketed memory reference: a sum of terms,
// each a signed constant, a bare register, or a scaled `N*R`/`R*N` term.
// Grounded on original_source/src/parser.c's parse_register_indirect and
// reg_accumulate: two (register, accumulated-scale) slots are filled as
// registers are seen, then the accumulated shape is classified into
// Indirect or ScaledIndirect (spec.md §4.6).
func (a *Assembler) parseIndirect() operand.Operand {
	a.advance() // eat '['

	var constant int32
	reg1, reg2 := -1, -1
	scale1, scale2 := 0, 0
	first := true

	accumulate := func(id, scale int) {
		switch {
		case reg1 == id:
			scale1 += scale
		case reg2 == id:
			scale2 += scale
		case reg1 == -1:
			reg1, scale1 = id, scale
		case reg2 == -1:
			reg2, scale2 = id, scale
		default:
			a.errorHere(debugcontext.KindSemantic, "cannot process indirect with more than 2 registers")
		}
	}

	for {
		if !first {
			switch a.cur.Kind {
			case token.RBracket:
				a.advance()
				goto shape
			case token.Plus:
				a.advance()
			default:
				a.errorHere(debugcontext.KindSyntactic, "expected '+' or ']'")
				return nil
			}
		} else {
			first = false
		}

		switch a.cur.Kind {
		case token.Int:
			scale := int(a.cur.Int)
			a.advance()
			switch a.cur.Kind {
			case token.Star:
				a.advance()
				if a.cur.Kind != token.RegLong && a.cur.Kind != token.RegShort {
					a.errorHere(debugcontext.KindSyntactic, "expected register following offset multiplication")
					return nil
				}
				id := int(a.cur.Int)
				a.advance()
				accumulate(id, scale)
			case token.RBracket, token.Plus:
				constant += int32(scale)
			default:
				a.errorHere(debugcontext.KindSyntactic, "expected '+', '*', or ']'")
				return nil
			}

		case token.RegLong, token.RegShort:
			id := int(a.cur.Int)
			a.advance()
			switch a.cur.Kind {
			case token.Star:
				a.advance()
				if a.cur.Kind != token.Int {
					a.errorHere(debugcontext.KindSyntactic, "expected number following register multiplication")
					return nil
				}
				scale := int(a.cur.Int)
				a.advance()
				accumulate(id, scale)
			case token.RBracket, token.Plus:
				accumulate(id, 1)
			default:
				a.errorHere(debugcontext.KindSyntactic, "expected '+', '*', or ']'")
				return nil
			}

		default:
			a.errorHere(debugcontext.KindSyntactic, "expected integer or register")
			return nil
		}
	}

shape:
	cs := constSizeFromWidth(fitWidth(int64(constant)))
	if constant == 0 {
		cs = operand.Skip
	}

	if reg2 == -1 {
		if reg1 == -1 {
			a.errorHere(debugcontext.KindSemantic, "need at least 1 register in an indirect access")
			return nil
		}
		switch scale1 {
		case 1:
			return operand.Indirect{Reg: uint8(reg1), Disp: constant, CSize: cs, OperSize: operand.Short}
		case 2, 3, 5, 9:
			return operand.ScaledIndirect{Base: uint8(reg1), Index: uint8(reg1), Scale: scaleCode(scale1 - 1), Disp: constant, CSize: cs, OperSize: operand.Short}
		default:
			a.errorHere(debugcontext.KindSemantic, "invalid scale for single-register indirect access")
			return nil
		}
	}

	switch {
	case scale1 == 1:
		if !isPow2Scale(scale2) {
			a.errorHere(debugcontext.KindSemantic, "offset register needs to be a power of 2")
			return nil
		}
		return operand.ScaledIndirect{Base: uint8(reg1), Index: uint8(reg2), Scale: scaleCode(scale2), Disp: constant, CSize: cs, OperSize: operand.Short}
	case scale2 == 1:
		if !isPow2Scale(scale1) {
			a.errorHere(debugcontext.KindSemantic, "offset register needs to be a power of 2")
			return nil
		}
		return operand.ScaledIndirect{Base: uint8(reg2), Index: uint8(reg1), Scale: scaleCode(scale1), Disp: constant, CSize: cs, OperSize: operand.Short}
	default:
		a.errorHere(debugcontext.KindSemantic, "indirect access needs a base register with scale 1")
		return nil
	}
}

func isPow2Scale(s int) bool {
	return s == 1 || s == 2 || s == 4 || s == 8
}

// scaleCode maps an actual scale multiplier (1, 2, 4, or 8) to its 2-bit
// wire code, per spec.md §4.5 ("bits2-3 = scale"). original_source's
// output.c stores the raw multiplier unmasked into the descriptor byte,
// which only works because its descriptor layout isn't actually bounded
// to 2 bits there; spec.md is explicit that the field is 2 bits, so the
// multiplier is log2-encoded instead of stored raw.
func scaleCode(m int) uint8 {
	switch m {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	default:
		return 0
	}
}
