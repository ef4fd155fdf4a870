package debugcontext

import "testing"

func TestLocation_String(t *testing.T) {
	t.Run("with column", func(t *testing.T) {
		loc := Loc("main.vasm", 12, 5)
		if loc.String() != "main.vasm:12:5" {
			t.Errorf("Expected 'main.vasm:12:5', got '%s'", loc.String())
		}
	})

	t.Run("without column", func(t *testing.T) {
		loc := Loc("main.vasm", 12, 0)
		if loc.String() != "main.vasm:12" {
			t.Errorf("Expected 'main.vasm:12', got '%s'", loc.String())
		}
	})

	t.Run("with span", func(t *testing.T) {
		loc := LocSpan("main.vasm", 12, 5, 8)
		if loc.String() != "main.vasm:12:5-8" {
			t.Errorf("Expected 'main.vasm:12:5-8', got '%s'", loc.String())
		}
	})
}

func TestLocation_Accessors(t *testing.T) {
	loc := LocSpan("test.vasm", 7, 3, 9)

	if loc.FilePath() != "test.vasm" {
		t.Errorf("Expected FilePath 'test.vasm', got '%s'", loc.FilePath())
	}
	if loc.Line() != 7 {
		t.Errorf("Expected Line 7, got %d", loc.Line())
	}
	if loc.Column() != 3 {
		t.Errorf("Expected Column 3, got %d", loc.Column())
	}
	if loc.ColumnHi() != 9 {
		t.Errorf("Expected ColumnHi 9, got %d", loc.ColumnHi())
	}
}
