package isa

import "testing"

func TestLookup_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"mov", "MOV", "Mov", "mOv"} {
		m, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if m.Name != "MOV" || m.Opcode != 0x30 || m.Prototype != ProtoA {
			t.Errorf("Lookup(%q) = %+v, want MOV/0x30/A", name, m)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("BOGUS"); ok {
		t.Error("Lookup(BOGUS) unexpectedly succeeded")
	}
}

func TestLookup_JumpAliases(t *testing.T) {
	je, _ := Lookup("JE")
	jz, _ := Lookup("JZ")
	if je.Opcode != jz.Opcode {
		t.Errorf("JE/JZ opcodes differ: %#x vs %#x", je.Opcode, jz.Opcode)
	}
}

func TestIsSynthetic(t *testing.T) {
	for _, name := range []string{"NOP", "inc", "Dec", "NEG", "clr"} {
		if !IsSynthetic(name) {
			t.Errorf("IsSynthetic(%q) = false, want true", name)
		}
	}
	if IsSynthetic("MOV") {
		t.Error("IsSynthetic(MOV) = true, want false")
	}
}

func TestToggleable(t *testing.T) {
	cases := []struct {
		opcode byte
		want   bool
	}{
		{0x30, true},  // MOV
		{0x70, false}, // LOM
		{0x7D, false}, // ROF
		{0x80, false}, // JMP
		{0x8F, false}, // IRET
		{0x8B, false}, // CALL
		{0xA8, true},  // XCHG
	}
	for _, c := range cases {
		if got := Toggleable(c.opcode); got != c.want {
			t.Errorf("Toggleable(%#x) = %v, want %v", c.opcode, got, c.want)
		}
	}
}

func TestNoDuplicateConcreteOpcodes(t *testing.T) {
	seen := map[byte][]string{}
	for _, m := range table {
		if m.Opcode == 0xFF {
			continue // synthetic sentinel, duplicates expected
		}
		seen[m.Opcode] = append(seen[m.Opcode], m.Name)
	}
	aliasGroups := map[byte]bool{0x81: true, 0x82: true} // JE/JZ, JNE/JNZ
	for opcode, names := range seen {
		if len(names) > 1 && !aliasGroups[opcode] {
			t.Errorf("opcode %#x shared by non-alias mnemonics %v", opcode, names)
		}
	}
}
