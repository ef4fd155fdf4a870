// Package token defines the lexical tokens produced by the lexer: their
// kinds, source position, and optional string/integer payloads. Grounded
// on the teacher's ast.Token (v0/kasm/ast/token.go), generalised from an
// x86_64-shaped token set to the 32-bit register machine's token set in
// spec.md §3.
package token

import "fmt"

// Kind identifies the syntactic category of a Token.
type Kind int

const (
	Unknown Kind = iota
	EOF
	Newline

	Identifier
	LabelDef // identifier immediately followed by ':'

	Instruction // a recognised mnemonic, including synthetic aliases
	RegLong     // a general long (32-bit) register
	RegShort    // a general short (8-bit) sub-register

	Int    // integer literal
	Char   // character literal (payload is the byte value)
	String // string literal (Int payload carries the decoded length)

	Directive // ds | db | dh | dw

	Plus     // +
	Minus    // -
	Dot      // .
	Star     // *
	Comma    // ,
	LBracket // [
	RBracket // ]
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Newline:
		return "newline"
	case Identifier:
		return "identifier"
	case LabelDef:
		return "label"
	case Instruction:
		return "instruction"
	case RegLong:
		return "register(long)"
	case RegShort:
		return "register(short)"
	case Int:
		return "integer"
	case Char:
		return "char"
	case String:
		return "string"
	case Directive:
		return "directive"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	case Dot:
		return "'.'"
	case Star:
		return "'*'"
	case Comma:
		return "','"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	default:
		return "unknown"
	}
}

// Token is a single tagged lexical unit. Line and the [ColLo, ColHi] span
// are 1-based. Str carries identifier/label/string payloads; Int carries
// numeric, character, or string-length payloads depending on Kind.
type Token struct {
	Kind  Kind
	Line  int
	ColLo int
	ColHi int
	Str   string
	Int   int32
}

// String renders a human-readable token description, used in diagnostics
// and test failure messages.
func (t Token) String() string {
	switch t.Kind {
	case Identifier, LabelDef, Instruction, RegLong, RegShort, Directive:
		return fmt.Sprintf("%s %q", t.Kind, t.Str)
	case Int, Char:
		return fmt.Sprintf("%s %d", t.Kind, t.Int)
	case String:
		return fmt.Sprintf("%s %q", t.Kind, t.Str)
	default:
		return t.Kind.String()
	}
}
