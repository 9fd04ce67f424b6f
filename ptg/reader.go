package ptg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf16"
)

// ErrTruncated reports that the formula byte stream ended mid-token.
var ErrTruncated = errors.New("ptg: truncated formula token stream")

// tokenReader is a small cursor over the formula's byte slice. It mirrors
// record.RecordReader's typed-accessor style but operates on formula bytes
// specifically, since formula streams are not themselves BIFF12 records —
// they are the payload embedded inside a cell or defined-name record.
type tokenReader struct {
	data []byte
	pos  int
}

func (r *tokenReader) remaining() int { return len(r.data) - r.pos }

func (r *tokenReader) u8() (byte, error) {
	if r.remaining() < 1 {
		return 0, ErrTruncated
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *tokenReader) u16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *tokenReader) u32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *tokenReader) f64() (float64, error) {
	if r.remaining() < 8 {
		return 0, ErrTruncated
	}
	bits := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

func (r *tokenReader) skip(n int) error {
	if r.remaining() < n {
		return ErrTruncated
	}
	r.pos += n
	return nil
}

func (r *tokenReader) bytes(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, ErrTruncated
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// utf16str reads a u16 character count followed by that many UTF-16LE code
// units (the StringPtg operand layout).
func (r *tokenReader) utf16str() (string, error) {
	n, err := r.u16()
	if err != nil {
		return "", err
	}
	raw, err := r.bytes(int(n) * 2)
	if err != nil {
		return "", err
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return string(utf16.Decode(units)), nil
}

// refFlags decodes the 16-bit "column-with-flags" field shared by Ref,
// Area, RefN, AreaN, Ref3d, and Area3d: bit 15 = row-relative, bit 14 =
// col-relative, low 14 bits = column index. Absoluteness is the negation
// of the relative bit.
func refFlags(row int, colWithFlags uint16) RefFlags {
	rowRel := colWithFlags&0x8000 != 0
	colRel := colWithFlags&0x4000 != 0
	col := int(colWithFlags & 0x3FFF)
	return RefFlags{
		Row:    row,
		Col:    col,
		RowAbs: !rowRel,
		ColAbs: !colRel,
	}
}

// ReadTokens decodes data (a formula's raw byte stream) into an ordered
// sequence of tokens, one per opcode encountered. Unrecognized opcodes decode as a KindUnknown
// token bearing the raw byte and consume no further bytes (the decoder has
// no way to know their length); ReadTokens returns no error for them, and
// such a token stringifies to #PTG!.
func ReadTokens(data []byte) ([]Token, error) {
	r := &tokenReader{data: data}
	var tokens []Token
	for r.remaining() > 0 {
		raw, err := r.u8()
		if err != nil {
			return tokens, err
		}
		tok, err := readOne(r, raw)
		if err != nil {
			return tokens, fmt.Errorf("ptg: decode opcode 0x%02X at offset %d: %w", raw, r.pos-1, err)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func readOne(r *tokenReader, raw byte) (Token, error) {
	base := BaseOpcode(raw)
	if raw < 0x20 {
		base = Kind(raw)
	}
	tok := Token{Kind: base, Raw: raw}

	switch base {
	case KindExp, KindTable:
		row, err := r.u32()
		if err != nil {
			return tok, err
		}
		col, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.ExpRow = int(row)
		tok.ExpCol = int(col)
		return tok, nil

	case KindAdd, KindSubtract, KindMultiply, KindDivide, KindPower, KindConcat,
		KindLess, KindLessEqual, KindEqual, KindGreaterEqual, KindGreater, KindNotEqual,
		KindIntersection, KindUnion, KindRange,
		KindUPlus, KindUMinus, KindPercent,
		KindParen, KindMissArg:
		return tok, nil

	case KindString:
		s, err := r.utf16str()
		if err != nil {
			return tok, err
		}
		tok.Str = s
		return tok, nil

	case KindAttr:
		flags, err := r.u8()
		if err != nil {
			return tok, err
		}
		data, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.AttrFlags = flags
		tok.AttrData = data
		return tok, nil

	case KindError:
		b, err := r.u8()
		if err != nil {
			return tok, err
		}
		tok.ErrorCode = b
		return tok, nil

	case KindBool:
		b, err := r.u8()
		if err != nil {
			return tok, err
		}
		tok.BoolVal = b != 0
		return tok, nil

	case KindInt:
		v, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.IntVal = v
		return tok, nil

	case KindNumber:
		v, err := r.f64()
		if err != nil {
			return tok, err
		}
		tok.NumVal = v
		return tok, nil

	case KindArray:
		cols, err := r.u8()
		if err != nil {
			return tok, err
		}
		nCols := int(cols)
		if nCols == 0 {
			nCols = 256
		}
		rows, err := r.u16()
		if err != nil {
			return tok, err
		}
		nRows := int(rows)
		tok.ArrayCols = nCols
		tok.ArrayRows = nRows
		total := nCols * nRows
		vals := make([]ArrayValue, 0, total)
		for i := 0; i < total; i++ {
			flag, err := r.u8()
			if err != nil {
				return tok, err
			}
			var v any
			switch flag {
			case 1:
				f, err := r.f64()
				if err != nil {
					return tok, err
				}
				v = f
			case 2:
				s, err := r.utf16str()
				if err != nil {
					return tok, err
				}
				v = s
			default:
				v = nil
			}
			vals = append(vals, ArrayValue{V: v})
		}
		tok.ArrayVals = vals
		return tok, nil

	case KindFunc:
		idx, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.FuncIdx = idx
		return tok, nil

	case KindFuncVar:
		argcByte, err := r.u8()
		if err != nil {
			return tok, err
		}
		idxRaw, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.FuncVarArgc = int(argcByte & 0x7F)
		tok.FuncVarPrompt = argcByte&0x80 != 0
		tok.FuncVarCE = idxRaw&0x8000 != 0
		tok.FuncVarIdx = idxRaw &^ 0x8000
		return tok, nil

	case KindName:
		idx, err := r.u16()
		if err != nil {
			return tok, err
		}
		if err := r.skip(2); err != nil {
			return tok, err
		}
		tok.NameIdx = int(idx)
		return tok, nil

	case KindRef, KindRefN:
		row, err := r.u32()
		if err != nil {
			return tok, err
		}
		colFlags, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.Ref1 = refFlags(int(row), colFlags)
		return tok, nil

	case KindArea, KindAreaN:
		r1, err := r.u32()
		if err != nil {
			return tok, err
		}
		r2, err := r.u32()
		if err != nil {
			return tok, err
		}
		c1, err := r.u16()
		if err != nil {
			return tok, err
		}
		c2, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.Ref1 = refFlags(int(r1), c1)
		tok.Ref2 = refFlags(int(r2), c2)
		return tok, nil

	case KindMemArea:
		if err := r.skip(4); err != nil {
			return tok, err
		}
		subexLen, err := r.u16()
		if err != nil {
			return tok, err
		}
		if subexLen > 0 {
			// rect-count (u16) then rect-count * (u32,u32,u16,u16); treated
			// as opaque memoization data, never re-interpreted.
			b, err := r.bytes(int(subexLen))
			if err != nil {
				return tok, err
			}
			tok.MemBytes = b
		}
		return tok, nil

	case KindMemErr, KindMemNoMem:
		if err := r.skip(4); err != nil {
			return tok, err
		}
		subexLen, err := r.u16()
		if err != nil {
			return tok, err
		}
		b, err := r.bytes(int(subexLen))
		if err != nil {
			return tok, err
		}
		tok.MemBytes = b
		return tok, nil

	case KindMemFunc, KindMemAreaN, KindMemNoMemN:
		// Unlike MemErr/MemNoMem, these three carry no 4-byte reserved
		// prefix — subex_len is their first field.
		subexLen, err := r.u16()
		if err != nil {
			return tok, err
		}
		b, err := r.bytes(int(subexLen))
		if err != nil {
			return tok, err
		}
		tok.MemBytes = b
		return tok, nil

	case KindRefErr:
		if err := r.skip(6); err != nil {
			return tok, err
		}
		return tok, nil

	case KindAreaErr:
		if err := r.skip(12); err != nil {
			return tok, err
		}
		return tok, nil

	case KindNameX:
		sheetIdx, err := r.u16()
		if err != nil {
			return tok, err
		}
		nameIdx, err := r.u16()
		if err != nil {
			return tok, err
		}
		if err := r.skip(2); err != nil {
			return tok, err
		}
		tok.NameXSheetIdx = int(sheetIdx)
		tok.NameXNameIdx = int(nameIdx)
		return tok, nil

	case KindRef3d:
		externIdx, err := r.u16()
		if err != nil {
			return tok, err
		}
		row, err := r.u32()
		if err != nil {
			return tok, err
		}
		colFlags, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.ExternSheetIdx = int(externIdx)
		tok.Ref1 = refFlags(int(row), colFlags)
		return tok, nil

	case KindArea3d:
		externIdx, err := r.u16()
		if err != nil {
			return tok, err
		}
		r1, err := r.u32()
		if err != nil {
			return tok, err
		}
		r2, err := r.u32()
		if err != nil {
			return tok, err
		}
		c1, err := r.u16()
		if err != nil {
			return tok, err
		}
		c2, err := r.u16()
		if err != nil {
			return tok, err
		}
		tok.ExternSheetIdx = int(externIdx)
		tok.Ref1 = refFlags(int(r1), c1)
		tok.Ref2 = refFlags(int(r2), c2)
		return tok, nil

	case KindRefErr3d:
		externIdx, err := r.u16()
		if err != nil {
			return tok, err
		}
		if err := r.skip(6); err != nil {
			return tok, err
		}
		tok.ExternSheetIdx = int(externIdx)
		return tok, nil

	case KindAreaErr3d:
		externIdx, err := r.u16()
		if err != nil {
			return tok, err
		}
		if err := r.skip(12); err != nil {
			return tok, err
		}
		tok.ExternSheetIdx = int(externIdx)
		return tok, nil

	default:
		// Unrecognized opcode: no known operand layout, consume nothing
		// further. The surrounding expression is still best-effort rendered.
		tok.Kind = KindUnknown
		tok.Raw = raw
		return tok, nil
	}
}
