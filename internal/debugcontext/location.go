package debugcontext

import "fmt"

// Location identifies a position, or span, in source code. It is a value
// type — safe to copy and compare. The column range mirrors the lexer's
// token span: ColumnLo is where the token started, ColumnHi is the column
// of its last character (equal to ColumnLo for single-character tokens).
type Location struct {
	filePath string // Absolute or relative path to the source file.
	line     int    // 1-based line number.
	columnLo int    // 1-based starting column, or 0 for "entire line".
	columnHi int    // 1-based ending column.
}

// Loc creates a single-column Location (columnLo == columnHi).
func Loc(filePath string, line, column int) Location {
	return Location{filePath: filePath, line: line, columnLo: column, columnHi: column}
}

// LocSpan creates a Location covering a column range.
func LocSpan(filePath string, line, columnLo, columnHi int) Location {
	return Location{filePath: filePath, line: line, columnLo: columnLo, columnHi: columnHi}
}

// FilePath returns the file path of the location.
func (l Location) FilePath() string { return l.filePath }

// Line returns the 1-based line number.
func (l Location) Line() int { return l.line }

// Column returns the 1-based starting column, or 0 for "entire line".
func (l Location) Column() int { return l.columnLo }

// ColumnHi returns the 1-based ending column.
func (l Location) ColumnHi() int { return l.columnHi }

// String returns a human-readable representation of the location.
// Format: "filePath:line:lo-hi", "filePath:line:lo" when lo==hi, or
// "filePath:line" when columnLo is 0 (entire line).
func (l Location) String() string {
	if l.columnLo == 0 {
		return fmt.Sprintf("%s:%d", l.filePath, l.line)
	}
	if l.columnHi > l.columnLo {
		return fmt.Sprintf("%s:%d:%d-%d", l.filePath, l.line, l.columnLo, l.columnHi)
	}
	return fmt.Sprintf("%s:%d:%d", l.filePath, l.line, l.columnLo)
}
