// Package emitter is the output buffer and instruction/operand encoder:
// a growable byte sequence plus the loc_ctr cursor (spec.md §3, §4.5).
// Grounded on original_source/src/output.c (assemble, save_operand,
// save_instruction, write_instructions) for the descriptor-byte bit
// layout, and on the teacher's append-only buffer style in
// v0/kasm/codegen.go for the owning-struct shape (spec.md §9's "hand-rolled
// growable arrays -> sequence containers": Go's append already gives
// amortized growth, so Buffer just wraps a []byte with a cursor).
package emitter

import (
	"encoding/binary"
	"fmt"

	"github.com/keurnel/vasm/internal/isa"
	"github.com/keurnel/vasm/internal/operand"
)

// MaxInstrSize is the largest number of bytes a single encoded
// instruction can occupy: 1 opcode + 2 * (2 descriptor bytes + 4
// immediate bytes) = 13 (spec.md §4.5).
const MaxInstrSize = 13

// operand kind codes, the low 2 bits of a descriptor byte.
const (
	kindConst byte = 0
	kindInd   byte = 1
	kindReg   byte = 2
	kindSc    byte = 3
)

// Buffer is the output byte sequence and its loc_ctr cursor. The zero
// value is ready to use.
type Buffer struct {
	bytes []byte
}

// Len returns loc_ctr: the number of bytes emitted so far, which is also
// the address a label defined right now would take.
func (b *Buffer) Len() int { return len(b.bytes) }

// Bytes returns the accumulated output. The slice is owned by Buffer;
// callers must not mutate it except through Buffer's own methods.
func (b *Buffer) Bytes() []byte { return b.bytes }

func (b *Buffer) appendByte(v byte) { b.bytes = append(b.bytes, v) }

func (b *Buffer) appendImmediate(v int32, cs operand.ConstSize) {
	switch cs.Width() {
	case 0:
	case 1:
		b.appendByte(byte(v))
	case 2:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(v))
		b.bytes = append(b.bytes, buf[:]...)
	case 4:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		b.bytes = append(b.bytes, buf[:]...)
	}
}

// constSizeCode maps a ConstSize to its 2-bit wire code (identity, kept
// as a named step since Skip/Byte/Half/Word already equal 0/1/2/3).
func constSizeCode(cs operand.ConstSize) byte { return byte(cs) }

// Patch overwrites the 4 bytes at offset with addr, little-endian. Used
// by symtab resolution to fill in forward-referenced label addresses.
func (b *Buffer) Patch(offset int, addr int32) error {
	if offset < 0 || offset+4 > len(b.bytes) {
		return fmt.Errorf("patch offset %d out of range [0,%d)", offset, len(b.bytes))
	}
	binary.LittleEndian.PutUint32(b.bytes[offset:offset+4], uint32(addr))
	return nil
}

// EmitOperand appends one operand's descriptor (and any extra byte and
// immediate) to the buffer, per the table in spec.md §4.5.
func (b *Buffer) EmitOperand(op operand.Operand) error {
	switch o := op.(type) {
	case operand.Const:
		desc := kindConst | constSizeCode(o.CSize)<<2
		b.appendByte(desc)
		b.appendImmediate(o.Value, o.CSize)
	case operand.Indirect:
		desc := kindInd | constSizeCode(o.CSize)<<2 | (o.Reg&0x0F)<<4
		b.appendByte(desc)
		b.appendImmediate(o.Disp, o.CSize)
	case operand.Register:
		desc := kindReg | (o.ID&0x0F)<<2
		b.appendByte(desc)
	case operand.ScaledIndirect:
		desc := kindSc | (o.Scale&0x03)<<2 | (o.Base&0x0F)<<4
		b.appendByte(desc)
		extra := (o.Index & 0x0F) | constSizeCode(o.CSize)<<4
		b.appendByte(extra)
		b.appendImmediate(o.Disp, o.CSize)
	default:
		return fmt.Errorf("emitter: unrecognized operand type %T", op)
	}
	return nil
}

// EmitInstruction writes opcode followed by op1 and op2 (either may be
// nil for fewer-operand prototypes). OPCODE_INT (0x8E) is special-cased
// per spec.md §4.5: no descriptor byte at all, just the opcode followed
// by a single raw immediate byte carrying the interrupt vector — taken
// directly from op1's constant value.
func (b *Buffer) EmitInstruction(opcode byte, op1, op2 operand.Operand) error {
	b.appendByte(opcode)

	if opcode == isa.OpcodeInt {
		c, ok := op1.(operand.Const)
		if !ok {
			return fmt.Errorf("emitter: INT requires a constant operand")
		}
		b.appendByte(byte(c.Value))
		return nil
	}

	if op1 != nil {
		if err := b.EmitOperand(op1); err != nil {
			return err
		}
	}
	if op2 != nil {
		if err := b.EmitOperand(op2); err != nil {
			return err
		}
	}
	return nil
}

// EmitBytes appends raw bytes verbatim, advancing loc_ctr by len(p). Used
// by the `ds`/`db`/`dh`/`dw` directive handlers.
func (b *Buffer) EmitBytes(p []byte) { b.bytes = append(b.bytes, p...) }
