// Package assembler drives the lexer, symbol table, and emitter to turn
// one token stream into a flat object file (spec.md §4.6, §9 "global
// mutable state -> owned context"). All per-run state — the lexer, the
// output buffer, the symbol table, the current token, and the
// diagnostic context — lives on the Assembler value returned by New,
// mirroring the teacher's *Generator receiver pattern in
// v0/kasm/codegen.go rather than the source's process-wide globals.
package assembler

import (
	"bytes"
	"fmt"
	"io"

	"github.com/keurnel/vasm/internal/debugcontext"
	"github.com/keurnel/vasm/internal/emitter"
	"github.com/keurnel/vasm/internal/isa"
	"github.com/keurnel/vasm/internal/lexer"
	"github.com/keurnel/vasm/internal/operand"
	"github.com/keurnel/vasm/internal/symtab"
	"github.com/keurnel/vasm/internal/token"
)

// instruction is the in-flight record for one parsed instruction,
// mutated in place by the length-modifier, unalias, and size-agreement
// steps — spec.md §3's Instruction record.
type instruction struct {
	name   string
	opcode byte
	proto  isa.Prototype
	size   operand.Size
	op1    operand.Operand
	op2    operand.Operand
	line   int
	col    int
}

// Assembler owns one assemble pass's mutable state.
type Assembler struct {
	lex  *lexer.Lexer
	ctx  *debugcontext.DebugContext
	buf  emitter.Buffer
	syms symtab.Table
	cur  token.Token
}

// New returns an Assembler ready to parse src, reporting diagnostics
// into ctx.
func New(src io.Reader, ctx *debugcontext.DebugContext) *Assembler {
	a := &Assembler{lex: lexer.New(src, ctx), ctx: ctx}
	a.advance()
	return a
}

func (a *Assembler) advance() { a.cur = a.lex.Next() }

// errorHere records a semantic/syntactic diagnostic at the current
// token's position.
func (a *Assembler) errorHere(kind, msg string) {
	a.ctx.ErrorKind(kind, a.ctx.LocSpan(a.cur.Line, a.cur.ColLo, a.cur.ColHi), msg)
}

// flushLine consumes tokens through the next newline (or EOF), letting
// the parser recover from an error and keep reporting subsequent ones in
// the same run (spec.md §7).
func (a *Assembler) flushLine() {
	for a.cur.Kind != token.Newline && a.cur.Kind != token.EOF {
		a.advance()
	}
	if a.cur.Kind == token.Newline {
		a.advance()
	}
}

// Run parses and emits the whole program, then resolves forward label
// references. It does not decide whether to write output — callers
// should check a.ctx.HasErrors() afterward (spec.md §7: "if the flag is
// set at end-of-parse, the output buffer is not written").
func (a *Assembler) Run() {
	for a.cur.Kind != token.EOF {
		a.parseLine()
	}
	a.resolve()
}

// resolve patches every forward label reference, reporting every name
// that never resolved (spec.md §4.4/§9; matches
// original_source/src/labels.c's exhaustive-report behavior rather than
// stopping at the first miss).
func (a *Assembler) resolve() {
	patches, unresolved := a.syms.Resolve()
	for _, u := range unresolved {
		a.ctx.ErrorKind(debugcontext.KindResolution, a.ctx.Loc(u.Line, u.Col), fmt.Sprintf("unresolved label %q", u.Name))
	}
	for _, p := range patches {
		if err := a.buf.Patch(p.Offset, p.Address); err != nil {
			a.ctx.ErrorKind(debugcontext.KindResolution, a.ctx.Loc(0, 0), err.Error())
			continue
		}
		a.ctx.Trace(a.ctx.Loc(0, 0), fmt.Sprintf("patched offset %d with address %d", p.Offset, p.Address))
	}
}

// Bytes returns the accumulated output buffer, valid regardless of
// whether errors were reported — callers gate whether to actually write
// it to the output stream.
func (a *Assembler) Bytes() []byte { return a.buf.Bytes() }

func (a *Assembler) parseLine() {
	if a.cur.Kind == token.Newline {
		a.advance()
		return
	}

	if a.cur.Kind == token.LabelDef {
		a.syms.SaveLabel(a.cur.Str, int32(a.buf.Len()))
		a.advance()
		if a.cur.Kind == token.Newline {
			a.advance()
			return
		}
	}

	switch a.cur.Kind {
	case token.Instruction:
		a.parseInstruction()
	case token.Directive:
		a.parseDirective()
	default:
		a.errorHere(debugcontext.KindSyntactic, "line must start with a label, instruction, or directive")
		a.flushLine()
		return
	}

	if a.cur.Kind == token.Newline {
		a.advance()
	} else if a.cur.Kind != token.EOF {
		a.errorHere(debugcontext.KindSyntactic, "expected end of line")
		a.flushLine()
	}
}

func (a *Assembler) parseInstruction() {
	name := a.cur.Str
	line, col := a.cur.Line, a.cur.ColLo
	mnem, ok := isa.Lookup(name)
	if !ok {
		a.errorHere(debugcontext.KindSemantic, fmt.Sprintf("unknown mnemonic %q", name))
		a.flushLine()
		return
	}
	instr := &instruction{name: mnem.Name, opcode: mnem.Opcode, proto: mnem.Prototype, size: operand.Long, line: line, col: col}
	a.advance()

	if a.cur.Kind == token.Dot {
		a.parseLengthModifier(instr)
	}

	a.parseOperands(instr)

	if !checkPrototype(instr.proto, instr.op1, instr.op2) {
		a.ctx.ErrorKind(debugcontext.KindSemantic, a.ctx.Loc(line, col), "instruction operands do not agree with its prototype")
		return
	}

	unalias(instr)

	op1, op2, ok := sizeAgreement(instr.proto, instr.size, instr.op1, instr.op2)
	instr.op1, instr.op2 = op1, op2
	if !ok {
		a.ctx.ErrorKind(debugcontext.KindSemantic, a.ctx.Loc(line, col), "instruction operands' sizes are not in agreement")
	}

	if !a.ctx.HasErrors() {
		if err := a.buf.EmitInstruction(instr.opcode, instr.op1, instr.op2); err != nil {
			a.ctx.ErrorKind(debugcontext.KindSemantic, a.ctx.Loc(line, col), err.Error())
		}
	}
}

// parseLengthModifier handles the `.s`/`.l` suffix (spec.md §4.6 step 3).
func (a *Assembler) parseLengthModifier(instr *instruction) {
	a.advance() // eat '.'

	if isa.Fixed(instr.proto) {
		a.errorHere(debugcontext.KindSemantic, "instruction cannot have a length modifier")
	}

	if a.cur.Kind != token.Identifier || len(a.cur.Str) == 0 {
		a.errorHere(debugcontext.KindSyntactic, "invalid length modifier, expecting 's' or 'l'")
		return
	}

	switch a.cur.Str[0] {
	case 's', 'S':
		instr.size = operand.Short
		if isa.Toggleable(instr.opcode) {
			instr.opcode++
		} else {
			a.errorHere(debugcontext.KindSemantic, "instruction has no short form")
		}
	case 'l', 'L':
		instr.size = operand.Long
	default:
		a.errorHere(debugcontext.KindSyntactic, "invalid length modifier, expecting 's' or 'l'")
	}
	a.advance()
}

func (a *Assembler) parseOperands(instr *instruction) {
	if a.cur.Kind == token.Newline || a.cur.Kind == token.EOF {
		return
	}
	if !instr.proto.HasOperands() {
		a.errorHere(debugcontext.KindSemantic, "instruction prototype doesn't have operands")
	}

	instr.op1 = a.parseOperand()
	if a.cur.Kind == token.Newline || a.cur.Kind == token.EOF {
		return
	}

	if !instr.proto.HasTwoOperands() {
		a.errorHere(debugcontext.KindSemantic, "instruction prototype doesn't have two operands")
	}
	if a.cur.Kind != token.Comma {
		a.errorHere(debugcontext.KindSyntactic, "expected ','")
		return
	}
	a.advance()
	instr.op2 = a.parseOperand()
}

// parseOperand reads one of the four operand shapes (spec.md §4.6).
func (a *Assembler) parseOperand() operand.Operand {
	switch a.cur.Kind {
	case token.Int:
		v := a.cur.Int
		w := fitWidth(int64(v))
		a.advance()
		return operand.Const{Value: v, CSize: constSizeFromWidth(w), OperSize: sizeFromWidth(w)}

	case token.RegLong, token.RegShort:
		id := uint8(a.cur.Int)
		sz := operand.Long
		if a.cur.Kind == token.RegShort {
			sz = operand.Short
		}
		a.advance()
		return operand.Register{ID: id, OperSize: sz}

	case token.LBracket:
		return a.parseIndirect()

	case token.Identifier:
		name := a.cur.Str
		line, col := a.cur.Line, a.cur.ColLo
		addr := a.syms.LabelAddress(name)
		if addr == -1 {
			// Patch offset = current loc_ctr + 2 (1 opcode + 1 descriptor
			// byte), per original_source/src/parser.c's parse_operand.
			// Every prototype that allows a second operand forbids that
			// operand from being Const, so a label reference — always
			// Const — can only ever land in op1, where "+2" is exact.
			a.syms.SaveUndefLabel(name, a.buf.Len()+2, line, col)
		}
		a.advance()
		return operand.Const{Value: addr, CSize: operand.Word, OperSize: operand.Long}

	default:
		a.errorHere(debugcontext.KindSyntactic, "unrecognizable operand")
		a.advance()
		return nil
	}
}

func (a *Assembler) parseDirective() {
	switch a.cur.Str {
	case "DS":
		a.parseDataStr()
	case "DB":
		a.parseDataByte()
	case "DH":
		a.parseDataHalf()
	case "DW":
		a.parseDataWord()
	default:
		a.errorHere(debugcontext.KindSyntactic, "unrecognized directive")
		a.flushLine()
	}
}

// Assemble runs the full pipeline for one input stream and returns the
// assembled bytes along with the diagnostic context. Per spec.md §7, the
// caller must not treat the returned bytes as output unless
// !ctx.HasErrors() — they may still be partially populated after a
// failed run.
func Assemble(src io.Reader, filePath string) ([]byte, *debugcontext.DebugContext) {
	ctx := debugcontext.NewDebugContext(filePath)
	a := New(src, ctx)
	a.Run()
	return a.Bytes(), ctx
}

// AssembleTo runs Assemble and writes the result to w only if the pass
// produced no errors, matching spec.md §7's "no-output-on-error"
// requirement. It returns an error (non-nil) if assembly failed; w is
// left untouched in that case.
func AssembleTo(src io.Reader, w io.Writer, filePath string) (*debugcontext.DebugContext, error) {
	out, ctx := Assemble(src, filePath)
	if ctx.HasErrors() {
		return ctx, fmt.Errorf("assembly failed with %d error(s)", len(ctx.Errors()))
	}
	var buf bytes.Buffer
	buf.Write(out)
	if _, err := buf.WriteTo(w); err != nil {
		return ctx, err
	}
	return ctx, nil
}
