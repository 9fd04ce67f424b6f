// Package ptg decodes and stringifies the binary formula token stream
// ("Ptg", short for "parsed token") embedded in XLSB formula cells and
// defined names, re-expressed as a tagged-union decoder in the idiom the
// rest of this module already uses (record.RecordReader-style typed reads,
// fmt.Errorf("ptg: ...: %w", err) wrapping).
package ptg

// Kind identifies the decoded shape of a Token. It is the "base opcode"
// for class-bearing tokens (classification bits stripped) and the literal
// opcode for everything below 0x20.
type Kind byte

// Base opcodes, matching the MS-XLS/MS-XLSB operand-layout table.
// Gaps (0x18, 0x1A, 0x1B, 0x30-0x38) are intentionally absent: XLSB never
// emits them and they decode through the Unknown fallback.
const (
	KindUnknown Kind = 0x00

	KindExp   Kind = 0x01
	KindTable Kind = 0x02

	KindAdd           Kind = 0x03
	KindSubtract      Kind = 0x04
	KindMultiply      Kind = 0x05
	KindDivide        Kind = 0x06
	KindPower         Kind = 0x07
	KindConcat        Kind = 0x08
	KindLess          Kind = 0x09
	KindLessEqual     Kind = 0x0A
	KindEqual         Kind = 0x0B
	KindGreaterEqual  Kind = 0x0C
	KindGreater       Kind = 0x0D
	KindNotEqual      Kind = 0x0E
	KindIntersection  Kind = 0x0F
	KindUnion         Kind = 0x10
	KindRange         Kind = 0x11

	KindUPlus   Kind = 0x12
	KindUMinus  Kind = 0x13
	KindPercent Kind = 0x14

	KindParen   Kind = 0x15
	KindMissArg Kind = 0x16
	KindString  Kind = 0x17
	KindAttr    Kind = 0x19
	KindError   Kind = 0x1C
	KindBool    Kind = 0x1D
	KindInt     Kind = 0x1E
	KindNumber  Kind = 0x1F

	KindArray      Kind = 0x20
	KindFunc       Kind = 0x21
	KindFuncVar    Kind = 0x22
	KindName       Kind = 0x23
	KindRef        Kind = 0x24
	KindArea       Kind = 0x25
	KindMemArea    Kind = 0x26
	KindMemErr     Kind = 0x27
	KindMemNoMem   Kind = 0x28
	KindMemFunc    Kind = 0x29
	KindRefErr     Kind = 0x2A
	KindAreaErr    Kind = 0x2B
	KindRefN       Kind = 0x2C
	KindAreaN      Kind = 0x2D
	KindMemAreaN   Kind = 0x2E
	KindMemNoMemN  Kind = 0x2F

	KindNameX     Kind = 0x39
	KindRef3d     Kind = 0x3A
	KindArea3d    Kind = 0x3B
	KindRefErr3d  Kind = 0x3C
	KindAreaErr3d Kind = 0x3D
)

// classMask isolates the 2-bit classification tag on class-bearing opcodes.
const classMask = 0x60

// BaseOpcode returns the dispatch opcode for a raw token byte, stripping
// the classification bits: for opcodes carrying the
// "value" bit (0x40), the base is (opcode|0x20)&0x3F; otherwise it is
// opcode&0x3F. Opcodes below 0x20 (no classification bits) pass through
// the &0x3F mask harmlessly since they are already below that range.
func BaseOpcode(raw byte) Kind {
	if raw&0x40 == 0x40 {
		return Kind((raw | 0x20) & 0x3F)
	}
	return Kind(raw & 0x3F)
}

// Classification describes the reference/value/array tag carried by
// class-bearing opcodes (>=0x20). It never affects stringified output —
// it exists purely for completeness/introspection.
type Classification byte

const (
	ClassNone      Classification = iota
	ClassReference                // (opcode & 0x60) == 0x20
	ClassValue                    // (opcode & 0x60) == 0x40
	ClassArray                    // (opcode & 0x60) == 0x60
)

// ClassificationOf returns the classification tag of a raw opcode byte.
func ClassificationOf(raw byte) Classification {
	switch raw & classMask {
	case 0x20:
		return ClassReference
	case 0x40:
		return ClassValue
	case 0x60:
		return ClassArray
	default:
		return ClassNone
	}
}
