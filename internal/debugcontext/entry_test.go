package debugcontext

import "testing"

func TestEntry_WithSnippet(t *testing.T) {
	entry := &Entry{severity: SeverityError, message: "test"}

	returned := entry.WithSnippet("  mov r0, 1")

	if returned != entry {
		t.Fatal("WithSnippet must return the same *Entry for chaining")
	}
	if entry.Snippet() != "  mov r0, 1" {
		t.Errorf("Expected snippet '  mov r0, 1', got '%s'", entry.Snippet())
	}
}

func TestEntry_WithHint(t *testing.T) {
	entry := &Entry{severity: SeverityWarning, message: "test"}

	returned := entry.WithHint("did you mean 'MOV'?")

	if returned != entry {
		t.Fatal("WithHint must return the same *Entry for chaining")
	}
	if entry.Hint() != "did you mean 'MOV'?" {
		t.Errorf("Expected hint \"did you mean 'MOV'?\", got '%s'", entry.Hint())
	}
}

func TestEntry_Chaining(t *testing.T) {
	entry := &Entry{severity: SeverityError, message: "unknown mnemonic"}

	entry.WithSnippet("  mvo r0, 1").WithHint("did you mean 'MOV'?")

	if entry.Snippet() != "  mvo r0, 1" {
		t.Errorf("Expected snippet '  mvo r0, 1', got '%s'", entry.Snippet())
	}
	if entry.Hint() != "did you mean 'MOV'?" {
		t.Errorf("Expected hint, got '%s'", entry.Hint())
	}
}

func TestEntry_String(t *testing.T) {
	entry := &Entry{
		severity: SeverityError,
		phase:    "resolving",
		message:  "unresolved label \"end\"",
		location: Loc("main.vasm", 12, 0),
	}

	expected := "error [resolving] main.vasm:12: unresolved label \"end\""
	if entry.String() != expected {
		t.Errorf("Expected %q, got %q", expected, entry.String())
	}
}

func TestEntry_Accessors(t *testing.T) {
	loc := Loc("test.vasm", 5, 3)
	entry := &Entry{
		severity: SeverityWarning,
		kind:     KindSemantic,
		phase:    "parsing",
		message:  "test message",
		location: loc,
		snippet:  "some code",
		hint:     "fix it",
	}

	if entry.Severity() != SeverityWarning {
		t.Errorf("Expected severity '%s', got '%s'", SeverityWarning, entry.Severity())
	}
	if entry.Kind() != KindSemantic {
		t.Errorf("Expected kind '%s', got '%s'", KindSemantic, entry.Kind())
	}
	if entry.Phase() != "parsing" {
		t.Errorf("Expected phase 'parsing', got '%s'", entry.Phase())
	}
	if entry.Message() != "test message" {
		t.Errorf("Expected message 'test message', got '%s'", entry.Message())
	}
	if entry.Location() != loc {
		t.Errorf("Expected location %v, got %v", loc, entry.Location())
	}
	if entry.Snippet() != "some code" {
		t.Errorf("Expected snippet 'some code', got '%s'", entry.Snippet())
	}
	if entry.Hint() != "fix it" {
		t.Errorf("Expected hint 'fix it', got '%s'", entry.Hint())
	}
}

func TestEntry_Kind_DefaultsToNone(t *testing.T) {
	entry := &Entry{severity: SeverityInfo, message: "label resolved"}

	if entry.Kind() != KindNone {
		t.Errorf("Expected default kind '%s', got '%s'", KindNone, entry.Kind())
	}
}

func TestEntry_KindClassification(t *testing.T) {
	cases := []struct {
		kind string
	}{
		{KindLexical}, {KindSyntactic}, {KindSemantic}, {KindResolution}, {KindIO},
	}
	for _, c := range cases {
		ctx := NewDebugContext("main.vasm")
		entry := ctx.ErrorKind(c.kind, ctx.Loc(1, 0), "boom")
		if entry.Kind() != c.kind {
			t.Errorf("ErrorKind(%q, ...).Kind() = %q, want %q", c.kind, entry.Kind(), c.kind)
		}
	}
}
