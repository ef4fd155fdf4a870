package operand

import "testing"

func TestIsConst(t *testing.T) {
	if !IsConst(Const{Value: 1}) {
		t.Error("Const should report IsConst true")
	}
	if IsConst(Register{ID: 0}) {
		t.Error("Register should report IsConst false")
	}
}

func TestWithSize(t *testing.T) {
	got := WithSize(Const{Value: 1, OperSize: Short}, Long)
	c, ok := got.(Const)
	if !ok || c.Size() != Long {
		t.Fatalf("WithSize did not widen Const: %#v", got)
	}

	got = WithSize(Register{ID: 2, OperSize: Short}, Long)
	r, ok := got.(Register)
	if !ok || r.Size() != Long {
		t.Fatalf("WithSize did not widen Register: %#v", got)
	}
}

func TestWithConstSize(t *testing.T) {
	got := WithConstSize(Const{Value: 1, CSize: Byte}, Word)
	c, ok := got.(Const)
	if !ok || c.CSize != Word {
		t.Fatalf("WithConstSize did not update Const: %#v", got)
	}

	unchanged := WithConstSize(Register{ID: 1}, Word)
	if _, ok := unchanged.(Register); !ok {
		t.Fatalf("WithConstSize should leave Register unchanged: %#v", unchanged)
	}
}

func TestConstSize_Width(t *testing.T) {
	cases := map[ConstSize]int{Skip: 0, Byte: 1, Half: 2, Word: 4}
	for cs, want := range cases {
		if got := cs.Width(); got != want {
			t.Errorf("%v.Width() = %d, want %d", cs, got, want)
		}
	}
}
