// Package operand models the four operand shapes the target machine
// accepts (spec.md §3, §4.6) as a closed sum type, following the teacher's
// Statement/Operand interface pattern in v0/kasm/ast.go: an unexported
// marker method prevents unrelated types from satisfying the Operand
// interface, and each concrete kind only carries the fields that make
// sense for it, so "Register has no constant" is enforced by construction
// rather than by leaving unused fields zeroed on a single everything-struct.
// ScaledIndirect's Scale is a plain uint8 code: its power-of-2 rule is
// checked by the indirect-operand parser, not by the type.
package operand

// Size is the logical width of an operand or instruction.
type Size byte

const (
	Indet Size = 0
	Short Size = 1
	Long  Size = 4
)

// ConstSize is the width of an embedded immediate, as encoded on the wire.
type ConstSize byte

const (
	Skip ConstSize = 0
	Byte ConstSize = 1
	Half ConstSize = 2
	Word ConstSize = 3 // on-wire code; decodes to a 4-byte immediate
)

// Width returns the number of bytes a ConstSize occupies in the output
// buffer (distinct from its on-wire descriptor-bit encoding).
func (c ConstSize) Width() int {
	switch c {
	case Skip:
		return 0
	case Byte:
		return 1
	case Half:
		return 2
	case Word:
		return 4
	default:
		return 0
	}
}

// Operand is satisfied by exactly the four operand kinds below.
type Operand interface {
	operandNode()
	// Size reports the operand's logical width.
	Size() Size
}

// Const is a bare numeric or label-reference constant.
type Const struct {
	Value     int32
	CSize     ConstSize
	OperSize  Size
}

func (Const) operandNode() {}
func (c Const) Size() Size { return c.OperSize }

// Register is a bare general register reference, long or short.
type Register struct {
	ID       uint8
	OperSize Size
}

func (Register) operandNode() {}
func (r Register) Size() Size { return r.OperSize }

// Indirect is a single-register memory reference with an optional
// constant displacement: `[reg]` or `[reg + disp]`.
type Indirect struct {
	Reg      uint8
	Disp     int32
	CSize    ConstSize
	OperSize Size
}

func (Indirect) operandNode() {}
func (i Indirect) Size() Size { return i.OperSize }

// ScaledIndirect is a base+scale*index memory reference: `[base + scale*index]`.
// Scale is the 2-bit wire code (0/1/2/3) for an actual multiplier of
// 1/2/4/8 — see DESIGN.md's Open Question decisions for why this is
// log2-coded rather than storing the multiplier itself.
type ScaledIndirect struct {
	Base     uint8
	Index    uint8
	Scale    uint8
	Disp     int32
	CSize    ConstSize
	OperSize Size
}

func (ScaledIndirect) operandNode() {}
func (s ScaledIndirect) Size() Size { return s.OperSize }

// IsConst reports whether op is the Const variant — used throughout
// prototype/size agreement checks (spec.md §4.6), which repeatedly ask
// "is this operand a bare constant" without caring about its value.
func IsConst(op Operand) bool {
	_, ok := op.(Const)
	return ok
}

// WithSize returns a copy of op with its logical size replaced by size,
// used by size-agreement coercion (spec.md §4.6) to widen/narrow indirect
// and constant operands to match an instruction's resolved size.
func WithSize(op Operand, size Size) Operand {
	switch v := op.(type) {
	case Const:
		v.OperSize = size
		return v
	case Register:
		v.OperSize = size
		return v
	case Indirect:
		v.OperSize = size
		return v
	case ScaledIndirect:
		v.OperSize = size
		return v
	default:
		return op
	}
}

// WithConstSize returns a copy of op with its embedded-immediate width
// replaced, for Const/Indirect/ScaledIndirect variants; Register is
// returned unchanged since it carries no immediate.
func WithConstSize(op Operand, cs ConstSize) Operand {
	switch v := op.(type) {
	case Const:
		v.CSize = cs
		return v
	case Indirect:
		v.CSize = cs
		return v
	case ScaledIndirect:
		v.CSize = cs
		return v
	default:
		return op
	}
}
