package assembler

import (
	"github.com/keurnel/vasm/internal/operand"
	"github.com/keurnel/vasm/internal/width"
)

// fitWidth wraps width.Fit, treating an unrepresentable value as the
// widest size rather than failing. Every caller passes an int32 value,
// for which width.Fit never reports -1, so the fallback is only a guard.
func fitWidth(v int64) int {
	if w := width.Fit(v); w != -1 {
		return w
	}
	return 4
}

func constSizeFromWidth(w int) operand.ConstSize {
	switch w {
	case 0:
		return operand.Skip
	case 1:
		return operand.Byte
	case 2:
		return operand.Half
	default:
		return operand.Word
	}
}

func sizeFromWidth(w int) operand.Size {
	if w > 1 {
		return operand.Long
	}
	return operand.Short
}
