package debugcontext

import (
	"fmt"
	"strings"
)

// Render formats a single entry the way spec.md §7 describes: file name,
// line, column range, a human-readable message, and — when a snippet was
// attached via WithSnippet — the offending source line followed by a
// caret line underlining the reported column span.
func (e *Entry) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: %s", e.location.String(), e.severity, e.message)
	if e.kind != KindNone {
		fmt.Fprintf(&b, " [%s]", e.kind)
	}
	if e.hint != "" {
		fmt.Fprintf(&b, "\n  hint: %s", e.hint)
	}
	if e.snippet != "" {
		b.WriteString("\n  ")
		b.WriteString(e.snippet)
		b.WriteString("\n  ")
		b.WriteString(caretLine(e.snippet, e.location.Column(), e.location.ColumnHi()))
	}
	return b.String()
}

// caretLine builds a line of spaces with '^' characters under columns
// [lo, hi] (1-based, inclusive). Columns beyond the snippet length are
// clamped so malformed spans never panic.
func caretLine(snippet string, lo, hi int) string {
	if lo <= 0 {
		lo = 1
	}
	if n := len(snippet); n > 0 {
		if lo > n {
			lo = n
		}
		if hi > n {
			hi = n
		}
	}
	if hi < lo {
		hi = lo
	}
	width := hi - lo + 1
	var b strings.Builder
	for i := 1; i < lo; i++ {
		b.WriteByte(' ')
	}
	for i := 0; i < width; i++ {
		b.WriteByte('^')
	}
	return b.String()
}

// RenderAll renders every entry in c, one per paragraph, in insertion order.
// This is the report the CLI driver writes to stderr.
func (c *DebugContext) RenderAll() string {
	entries := c.Entries()
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Render())
	}
	return strings.Join(parts, "\n")
}
