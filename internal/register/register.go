// Package register decodes register-name lexemes into their 8-bit machine
// IDs, per spec.md §4.2. Grounded on original_source/src/registers.c
// (register_id), reworked from the C strtol-based decoder into explicit
// Go parsing with an ok-bool instead of a sentinel, matching the teacher's
// general avoidance of magic-number error signalling (e.g. Instruction.Validate
// in v0/internal/architecture/instruction.go returns an explicit error).
package register

import "strconv"

// Decode parses a register lexeme (without the leading 'r' already
// stripped — callers pass the full identifier, e.g. "r3a", "rr", "r12").
// It returns the register ID, whether the register is a short (8-bit)
// sub-register, and whether decoding succeeded.
func Decode(name string) (id uint8, short bool, ok bool) {
	if len(name) == 0 || (name[0] != 'r' && name[0] != 'R') {
		return 0, false, false
	}
	rest := name[1:]
	if rest == "" {
		return 0, false, false
	}

	switch rest {
	case "r", "R":
		return 14, false, true
	case "s", "S":
		return 15, false, true
	}

	// Split the numeric prefix from an optional trailing a|b|c|d sub-register
	// letter.
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false, false
	}
	numPart := rest[:i]
	suffix := rest[i:]

	n, err := strconv.Atoi(numPart)
	if err != nil || n < 0 || n > 15 {
		return 0, false, false
	}

	switch suffix {
	case "":
		return uint8(n), false, true
	case "a", "b", "c", "d":
		return uint8(n*4 + int(suffix[0]-'a')), true, true
	default:
		return 0, false, false
	}
}

// IsRegisterLexeme reports whether word is a valid register lexeme. It runs
// the full Decode, so out-of-range numbers such as "r16" are rejected —
// used by the lexer to decide classification priority (spec.md §4.1:
// "starts with r").
func IsRegisterLexeme(word string) bool {
	_, _, ok := Decode(word)
	return ok
}
