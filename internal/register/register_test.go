package register_test

import (
	"testing"

	"github.com/keurnel/vasm/internal/register"
)

func TestDecode_Long(t *testing.T) {
	cases := []struct {
		name string
		id   uint8
	}{
		{"r0", 0},
		{"r15", 15},
		{"rr", 14},
		{"rs", 15},
	}
	for _, c := range cases {
		id, short, ok := register.Decode(c.name)
		if !ok {
			t.Fatalf("Decode(%q) failed", c.name)
		}
		if short {
			t.Errorf("Decode(%q) reported short, want long", c.name)
		}
		if id != c.id {
			t.Errorf("Decode(%q) = %d, want %d", c.name, id, c.id)
		}
	}
}

func TestDecode_Short(t *testing.T) {
	cases := []struct {
		name string
		id   uint8
	}{
		{"r0a", 0},
		{"r0b", 1},
		{"r0c", 2},
		{"r0d", 3},
		{"r1a", 4},
		{"r15d", 63},
	}
	for _, c := range cases {
		id, short, ok := register.Decode(c.name)
		if !ok {
			t.Fatalf("Decode(%q) failed", c.name)
		}
		if !short {
			t.Errorf("Decode(%q) reported long, want short", c.name)
		}
		if id != c.id {
			t.Errorf("Decode(%q) = %d, want %d", c.name, id, c.id)
		}
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, name := range []string{"", "x0", "r", "r16", "rx", "r1e", "rax"} {
		if _, _, ok := register.Decode(name); ok {
			t.Errorf("Decode(%q) unexpectedly succeeded", name)
		}
	}
}
