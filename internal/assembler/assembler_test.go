package assembler_test

import (
	"strings"
	"testing"

	"github.com/keurnel/vasm/internal/assembler"
)

func assemble(t *testing.T, src string) []byte {
	t.Helper()
	out, ctx := assembler.Assemble(strings.NewReader(src), "test.vasm")
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors assembling %q: %v", src, ctx.Entries())
	}
	return out
}

func requireBytes(t *testing.T, got []byte, want ...byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got % X (%d bytes), want % X (%d bytes)", got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %#02x, want %#02x (full: got % X want % X)", i, got[i], want[i], got, want)
		}
	}
}

// Scenario 1 (spec.md §8): NOP lowers to XCHG r0, r0.
func TestScenario_NOP(t *testing.T) {
	out := assemble(t, "NOP\n")
	requireBytes(t, out, 0xA8, 0x02, 0x02)
}

// Scenario 2 (spec.md §8): MOV 1, r0 in long form. The Const operand
// must widen to match the Register operand's Long size — per §4.6 ("Widen
// a Const operand so its size equals the other operand's size... reselect
// const_size with a hint to ensure the immediate will be encoded at the
// larger width") this means the 1-byte value is encoded as a full 4-byte
// Word immediate, not left at Byte width as the scenario's prose
// shorthand suggests; the worked byte sequence here follows the
// governing widening rule instead.
func TestScenario_MovConstRegLong(t *testing.T) {
	out := assemble(t, "MOV 1, r0\n")
	requireBytes(t, out,
		0x30,                   // MOV, long form
		0x0C,                   // Const descriptor: kind=0, const_size=Word(3)<<2
		0x01, 0x00, 0x00, 0x00, // widened 4-byte immediate
		0x02, // Register descriptor: kind=2, reg=0
	)
}

// Scenario 3 (spec.md §8): MOV.s 1, r0a — short form, both operands
// already agree at Short, so the immediate stays a single byte.
func TestScenario_MovConstRegShort(t *testing.T) {
	out := assemble(t, "MOV.s 1, r0a\n")
	requireBytes(t, out,
		0x31, // MOV short form (opcode+1)
		0x04, // Const descriptor: kind=0, const_size=Byte(1)<<2
		0x01,
		0x02, // Register descriptor: kind=2, reg=0 (r0a decodes to id 0)
	)
}

// Scenario 4 (spec.md §8): forward-referenced label patched by JMP.
func TestScenario_ForwardJumpToHalt(t *testing.T) {
	out := assemble(t, "start: JMP end\nend: HLT\n")
	requireBytes(t, out,
		0x80,                   // JMP
		0x0C,                   // Const descriptor, const_size=Word
		0x06, 0x00, 0x00, 0x00, // patched address of HLT (offset 6)
		0x8D, // HLT, no operands
	)
}

// Scenario 5 (spec.md §8): dw referencing an already-defined label.
func TestScenario_DwLabelReference(t *testing.T) {
	out := assemble(t, "lbl:\ndw lbl\n")
	requireBytes(t, out, 0x00, 0x00, 0x00, 0x00)
}

// Scenario 6 (spec.md §8): ds with an escaped newline.
func TestScenario_DsString(t *testing.T) {
	out := assemble(t, "ds \"hi\\n\"\n")
	requireBytes(t, out, 0x68, 0x69, 0x0A)
}

func TestUnresolvedLabel_ReportsError(t *testing.T) {
	_, ctx := assembler.Assemble(strings.NewReader("JMP nowhere\n"), "test.vasm")
	if !ctx.HasErrors() {
		t.Fatal("expected an unresolved-label error")
	}
}

func TestPrototypeMismatch_ReportsError(t *testing.T) {
	// HLT (N, no operands) given an operand.
	_, ctx := assembler.Assemble(strings.NewReader("HLT r0\n"), "test.vasm")
	if !ctx.HasErrors() {
		t.Fatal("expected a prototype-agreement error")
	}
}

func TestIndirect_ScaledIndex(t *testing.T) {
	// [r0 + r1*4]: base r0 (scale 1), index r1 (scale 4) -> ScaledIndirect.
	out := assemble(t, "MOV [r0 + r1*4], r2\n")
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
	// opcode, then a 2-byte ScaledIndirect descriptor (desc + extra, no
	// displacement since constant is 0/Skip), then the Register descriptor.
	if out[0] != 0x30 {
		t.Fatalf("opcode = %#02x, want 0x30", out[0])
	}
	if out[1]&0x03 != 0x03 {
		t.Fatalf("descriptor kind bits = %#02x, want ScaledIndirect(3)", out[1]&0x03)
	}
}

func TestIndirect_NonPowerOfTwoScale_IsError(t *testing.T) {
	_, ctx := assembler.Assemble(strings.NewReader("MOV [r0 + r1*3], r2\n"), "test.vasm")
	if !ctx.HasErrors() {
		t.Fatal("expected an error for a non-power-of-2 index scale")
	}
}

func TestNoOutputOnError(t *testing.T) {
	var w strings.Builder
	_, err := assembler.AssembleTo(strings.NewReader("JMP nowhere\n"), &wCounter{&w}, "test.vasm")
	if err == nil {
		t.Fatal("expected an error")
	}
	if w.Len() != 0 {
		t.Fatalf("expected no bytes written on error, got %d", w.Len())
	}
}

// wCounter adapts strings.Builder to io.Writer for AssembleTo.
type wCounter struct{ b *strings.Builder }

func (w *wCounter) Write(p []byte) (int, error) { return w.b.Write(p) }
