// Package lexer streams assembly source into typed tokens with line/column
// tracking (spec.md §4.1). Grounded on original_source/src/lexer.c's
// next_tok() state machine, reworked from its global curr_char/eat/peek
// trio into a Lexer value that owns its own bufio.Reader — the teacher's
// v0/kasm/lexer.go struct-owns-its-scanner shape generalized to this
// token set. peekByte uses bufio.Reader.Peek(1), which (like the original's
// fgetc+ungetc pair) looks one raw byte ahead without skipping whitespace
// — this is load-bearing for the numeric sign-merge rule below.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/keurnel/vasm/internal/debugcontext"
	"github.com/keurnel/vasm/internal/isa"
	"github.com/keurnel/vasm/internal/register"
	"github.com/keurnel/vasm/internal/token"
)

// Lexer scans one input stream into a sequence of tokens.
type Lexer struct {
	r     *bufio.Reader
	ctx   *debugcontext.DebugContext
	line  int
	col   int
	cur   byte
	curOk bool
}

// New returns a Lexer reading from r, reporting diagnostics into ctx.
func New(r io.Reader, ctx *debugcontext.DebugContext) *Lexer {
	l := &Lexer{r: bufio.NewReader(r), ctx: ctx, line: 1, col: 0}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	b, err := l.r.ReadByte()
	if err != nil {
		l.curOk = false
		l.cur = 0
		return
	}
	if l.cur == '\n' {
		l.line++
		l.col = 0
	}
	l.col++
	l.cur = b
	l.curOk = true
}

// peekByte looks at the next raw byte after l.cur without consuming it, or
// returns ok=false at EOF.
func (l *Lexer) peekByte() (byte, bool) {
	b, err := l.r.Peek(1)
	if err != nil || len(b) == 0 {
		return 0, false
	}
	return b[0], true
}

func isIDStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '$' || c == '_'
}

func isIDCont(c byte) bool {
	return isIDStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isOct(c byte) bool   { return c >= '0' && c <= '7' }
func isBin(c byte) bool   { return c == '0' || c == '1' }
func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isSign(c byte) bool { return c == '+' || c == '-' }

func escapeByte(c byte) byte {
	switch c {
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	case '0':
		return 0
	default:
		return c
	}
}

// Next returns the next token, advancing lexer state. It never returns an
// error directly — lexical errors are reported through the DebugContext,
// per spec.md §4.1 ("Lexer errors set the global error flag but do not
// abort"). A malformed number, character or string literal surfaces as a
// token.Unknown; an unknown character is reported and skipped, and
// scanning continues with the next character.
func (l *Lexer) Next() token.Token {
	for l.curOk {
		loCol := l.col

		if l.cur == '\n' {
			l.advance()
			return token.Token{Kind: token.Newline, Line: l.line, ColLo: loCol, ColHi: loCol}
		}

		if isSpace(l.cur) {
			l.advance()
			continue
		}

		if l.cur == ';' {
			for l.curOk && l.cur != '\n' {
				l.advance()
			}
			continue
		}

		if isIDStart(l.cur) {
			return l.scanIdentLike(loCol)
		}

		if l.cur == '\'' {
			return l.scanCharLit(loCol)
		}

		if l.cur == '"' {
			return l.scanStringLit(loCol)
		}

		if next, hasNext := l.peekByte(); (isSign(l.cur) && hasNext && isDigit(next)) || isDigit(l.cur) {
			return l.scanNumber(loCol)
		}

		switch l.cur {
		case ',':
			l.advance()
			return token.Token{Kind: token.Comma, Line: l.line, ColLo: loCol, ColHi: loCol}
		case '.':
			l.advance()
			return token.Token{Kind: token.Dot, Line: l.line, ColLo: loCol, ColHi: loCol}
		case '+':
			l.advance()
			return token.Token{Kind: token.Plus, Line: l.line, ColLo: loCol, ColHi: loCol}
		case '-':
			l.advance()
			return token.Token{Kind: token.Minus, Line: l.line, ColLo: loCol, ColHi: loCol}
		case '*':
			l.advance()
			return token.Token{Kind: token.Star, Line: l.line, ColLo: loCol, ColHi: loCol}
		case '[':
			l.advance()
			return token.Token{Kind: token.LBracket, Line: l.line, ColLo: loCol, ColHi: loCol}
		case ']':
			l.advance()
			return token.Token{Kind: token.RBracket, Line: l.line, ColLo: loCol, ColHi: loCol}
		}

		l.ctx.ErrorKind(debugcontext.KindLexical, l.ctx.Loc(l.line, loCol), "unknown character encountered")
		l.advance()
	}

	return token.Token{Kind: token.EOF, Line: l.line, ColLo: l.col, ColHi: l.col}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

// scanIdentLike reads an identifier and classifies it in priority order:
// register, directive, instruction, label, plain identifier (spec.md §4.1).
func (l *Lexer) scanIdentLike(loCol int) token.Token {
	var sb strings.Builder
	for l.curOk && isIDCont(l.cur) {
		sb.WriteByte(l.cur)
		l.advance()
	}
	word := sb.String()
	hiCol := l.col - 1

	if register.IsRegisterLexeme(word) {
		id, short, _ := register.Decode(word)
		kind := token.RegLong
		if short {
			kind = token.RegShort
		}
		return token.Token{Kind: kind, Line: l.line, ColLo: loCol, ColHi: hiCol, Str: word, Int: int32(id)}
	}

	switch strings.ToLower(word) {
	case "ds", "db", "dh", "dw":
		return token.Token{Kind: token.Directive, Line: l.line, ColLo: loCol, ColHi: hiCol, Str: strings.ToUpper(word)}
	}

	if _, ok := isa.Lookup(word); ok {
		return token.Token{Kind: token.Instruction, Line: l.line, ColLo: loCol, ColHi: hiCol, Str: strings.ToUpper(word)}
	}

	if l.curOk && l.cur == ':' {
		l.advance()
		return token.Token{Kind: token.LabelDef, Line: l.line, ColLo: loCol, ColHi: hiCol, Str: word}
	}

	return token.Token{Kind: token.Identifier, Line: l.line, ColLo: loCol, ColHi: hiCol, Str: word}
}

func (l *Lexer) scanCharLit(loCol int) token.Token {
	l.advance() // eat opening quote
	var v byte
	if l.curOk && l.cur == '\\' {
		l.advance()
		v = escapeByte(l.cur)
	} else {
		v = l.cur
	}
	l.advance()
	hiCol := l.col

	if !l.curOk || l.cur != '\'' {
		l.ctx.ErrorKind(debugcontext.KindLexical, l.ctx.LocSpan(l.line, loCol, hiCol), "character literal missing closing quote")
		return token.Token{Kind: token.Unknown, Line: l.line, ColLo: loCol, ColHi: hiCol}
	}
	l.advance() // eat closing quote

	return token.Token{Kind: token.Char, Line: l.line, ColLo: loCol, ColHi: hiCol, Int: int32(v)}
}

func (l *Lexer) scanStringLit(loCol int) token.Token {
	l.advance() // eat opening quote
	var sb strings.Builder
	for {
		if !l.curOk {
			l.ctx.ErrorKind(debugcontext.KindLexical, l.ctx.Loc(l.line, l.col), "EOF while parsing string literal")
			return token.Token{Kind: token.Unknown, Line: l.line, ColLo: loCol, ColHi: l.col}
		}
		if l.cur == '"' {
			break
		}
		if l.cur == '\\' {
			l.advance()
			sb.WriteByte(escapeByte(l.cur))
		} else {
			sb.WriteByte(l.cur)
		}
		l.advance()
	}
	hiCol := l.col
	l.advance() // eat closing quote

	s := sb.String()
	return token.Token{Kind: token.String, Line: l.line, ColLo: loCol, ColHi: hiCol, Str: s, Int: int32(len(s))}
}

// scanNumber parses a signed or unsigned numeric literal: optional sign
// (only merged when immediately followed by a digit — no whitespace may
// intervene, per the peekByte check in Next), then a 0x/0b/0-prefixed or
// plain decimal run of digits.
func (l *Lexer) scanNumber(loCol int) token.Token {
	sign := int64(1)
	if isSign(l.cur) {
		if l.cur == '-' {
			sign = -1
		}
		l.advance()
	}

	base := 10
	if l.cur == '0' {
		if next, ok := l.peekByte(); ok {
			switch next {
			case 'x', 'X':
				l.advance()
				l.advance()
				base = 16
			case 'b', 'B':
				l.advance()
				l.advance()
				base = 2
			default:
				base = 8
			}
		} else {
			base = 8
		}
	}

	var sb strings.Builder
	var digitCheck func(byte) bool
	switch base {
	case 16:
		digitCheck = isHex
	case 2:
		digitCheck = isBin
	case 8:
		digitCheck = isOct
	default:
		digitCheck = isDigit
	}
	for l.curOk && digitCheck(l.cur) {
		sb.WriteByte(l.cur)
		l.advance()
	}
	hiCol := l.col - 1

	digits := sb.String()
	if digits == "" {
		digits = "0"
	}
	mag, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		l.ctx.ErrorKind(debugcontext.KindLexical, l.ctx.LocSpan(l.line, loCol, hiCol), fmt.Sprintf("malformed numeric literal %q", digits))
		return token.Token{Kind: token.Unknown, Line: l.line, ColLo: loCol, ColHi: hiCol}
	}

	value := sign * int64(mag)
	if !fitsInt32Range(value) {
		l.ctx.ErrorKind(debugcontext.KindLexical, l.ctx.LocSpan(l.line, loCol, hiCol), "integer larger than 32 bits")
		return token.Token{Kind: token.Unknown, Line: l.line, ColLo: loCol, ColHi: hiCol}
	}

	return token.Token{Kind: token.Int, Line: l.line, ColLo: loCol, ColHi: hiCol, Int: int32(value)}
}

// fitsInt32Range mirrors original_source's fit_size != -1 check: the value
// must fit either as an unsigned 32-bit quantity or a sign-extending
// negative 32-bit quantity.
func fitsInt32Range(v int64) bool {
	if v < 0 {
		return v >= -2147483648
	}
	return v <= 4294967295
}
