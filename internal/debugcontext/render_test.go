package debugcontext

import (
	"strings"
	"testing"
)

func TestEntry_RenderWithSnippet(t *testing.T) {
	ctx := NewDebugContext("main.vasm")
	ctx.SetPhase("lexing")
	entry := ctx.ErrorKind(KindLexical, LocSpan(ctx.FilePath(), 3, 5, 7), "unknown character").
		WithSnippet("  mov $$$, r0")

	out := entry.Render()
	if !strings.Contains(out, "main.vasm:3:5-7") {
		t.Errorf("expected location span in output, got %q", out)
	}
	if !strings.Contains(out, "unknown character") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "[lexical]") {
		t.Errorf("expected kind tag in output, got %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header, snippet, carets), got %d: %q", len(lines), out)
	}
	caretLine := lines[2]
	if strings.Count(caretLine, "^") != 3 {
		t.Errorf("expected 3 carets for a 3-column span, got %q", caretLine)
	}
}

func TestEntry_RenderWithoutSnippet(t *testing.T) {
	ctx := NewDebugContext("main.vasm")
	entry := ctx.Error(ctx.Loc(1, 0), "line must start with label, instruction, or directive")
	out := entry.Render()
	if strings.Contains(out, "^") {
		t.Errorf("expected no caret line without a snippet, got %q", out)
	}
}

func TestDebugContext_RenderAll(t *testing.T) {
	ctx := NewDebugContext("main.vasm")
	ctx.Error(ctx.Loc(1, 1), "first")
	ctx.Error(ctx.Loc(2, 1), "second")

	out := ctx.RenderAll()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("expected both entries rendered, got %q", out)
	}
}
