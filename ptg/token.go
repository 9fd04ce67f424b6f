package ptg

// ArrayValue is one cell of an Array token's constant matrix. The dynamic
// type is one of: nil (empty cell), float64, string, or bool.
type ArrayValue struct {
	V any
}

// RefFlags holds the decoded row/column addressing bits shared by Ref,
// Area, RefN, AreaN, Ref3d, and Area3d tokens.
//
// RowAbs/ColAbs are already negated from the raw relative bit: the raw bit
// SET means "relative" (no $), CLEAR means "absolute" ($ prefix). RowAbs/ColAbs
// here store the *absolute-ness*, ready for direct use when rendering.
type RefFlags struct {
	Row    int
	Col    int
	RowAbs bool
	ColAbs bool
}

// Token is a single decoded formula token ("Ptg"). It is a flat tagged
// union: Kind selects which fields are meaningful, mirroring a 256-slot
// function table indexed by base opcode without requiring a parallel
// interface hierarchy for 40-some variants that mostly differ in which two
// or three integer/string fields they carry.
type Token struct {
	Kind Kind
	// Raw is the verbatim opcode byte as read from the stream, including
	// classification bits for class-bearing tokens. Unknown carries the
	// unrecognized opcode here for diagnostics.
	Raw byte

	// Exp / Table: anchor cell of the shared formula / data table.
	ExpRow int
	ExpCol int

	// String
	Str string

	// Error
	ErrorCode byte

	// Bool
	BoolVal bool

	// Int
	IntVal uint16

	// Number
	NumVal float64

	// Attr
	AttrFlags byte
	AttrData  uint16

	// Array: Cols x Rows matrix of constant values, row-major.
	ArrayCols int
	ArrayRows int
	ArrayVals []ArrayValue

	// Func
	FuncIdx uint16

	// FuncVar
	FuncVarIdx    uint16
	FuncVarArgc   int
	FuncVarPrompt bool
	FuncVarCE     bool

	// Name (one-based index into the workbook's defined-name list)
	NameIdx int

	// Ref / Area / RefN / AreaN: decoded row/col with absolute flags.
	Ref1 RefFlags // Ref's only ref; Area/AreaN's first corner
	Ref2 RefFlags // Area/AreaN's second corner

	// NameX
	NameXSheetIdx int
	NameXNameIdx  int

	// Ref3d / Area3d / RefErr3d / AreaErr3d
	ExternSheetIdx int

	// MemArea / MemErr / MemNoMem / MemFunc / MemAreaN / MemNoMemN: the
	// subexpression bytes are opaque memoization data, never re-interpreted —
	// only the tag and length matter for decoding.
	MemBytes []byte
}
