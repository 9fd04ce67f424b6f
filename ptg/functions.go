package ptg

// Function is one entry in the built-in function-index table: a name and,
// for fixed-arity functions, the number of arguments the Func opcode
// expects. HasArity is false for variable-arity functions, which are always
// encountered via the FuncVar opcode instead.
type Function struct {
	Name     string
	Arity    int
	HasArity bool
}

// functionNames maps a function index (as carried by Func/FuncVar tokens) to
// its name and, where fixed, its arity. This is the MS-XLS/MS-XLSB function
// and command-equivalent index space. Index 0x00FF is reserved for
// UserDefinedFunction and is handled specially by the stringifier, not
// looked up here for its name.
var functionNames = map[uint16]Function{
	0x0000: {Name: "COUNT"},
	0x0001: {Name: "IF"},
	0x0002: {Name: "ISNA", Arity: 1, HasArity: true},
	0x0003: {Name: "ISERROR", Arity: 1, HasArity: true},
	0x0004: {Name: "SUM"},
	0x0005: {Name: "AVERAGE"},
	0x0006: {Name: "MIN"},
	0x0007: {Name: "MAX"},
	0x0008: {Name: "ROW"},
	0x0009: {Name: "COLUMN"},
	0x000A: {Name: "NA"},
	0x000B: {Name: "NPV"},
	0x000C: {Name: "STDEV"},
	0x000D: {Name: "DOLLAR"},
	0x000E: {Name: "FIXED"},
	0x000F: {Name: "SIN", Arity: 1, HasArity: true},
	0x0010: {Name: "COS", Arity: 1, HasArity: true},
	0x0011: {Name: "TAN", Arity: 1, HasArity: true},
	0x0012: {Name: "ATAN", Arity: 1, HasArity: true},
	0x0013: {Name: "PI"},
	0x0014: {Name: "SQRT", Arity: 1, HasArity: true},
	0x0015: {Name: "EXP", Arity: 1, HasArity: true},
	0x0016: {Name: "LN", Arity: 1, HasArity: true},
	0x0017: {Name: "LOG10", Arity: 1, HasArity: true},
	0x0018: {Name: "ABS", Arity: 1, HasArity: true},
	0x0019: {Name: "INT", Arity: 1, HasArity: true},
	0x001A: {Name: "SIGN", Arity: 1, HasArity: true},
	0x001B: {Name: "ROUND", Arity: 2, HasArity: true},
	0x001C: {Name: "LOOKUP"},
	0x001D: {Name: "INDEX"},
	0x001E: {Name: "REPT", Arity: 2, HasArity: true},
	0x001F: {Name: "MID", Arity: 3, HasArity: true},
	0x0020: {Name: "LEN", Arity: 1, HasArity: true},
	0x0021: {Name: "VALUE", Arity: 1, HasArity: true},
	0x0022: {Name: "TRUE"},
	0x0023: {Name: "FALSE"},
	0x0024: {Name: "AND"},
	0x0025: {Name: "OR"},
	0x0026: {Name: "NOT", Arity: 1, HasArity: true},
	0x0027: {Name: "MOD", Arity: 2, HasArity: true},
	0x0028: {Name: "DCOUNT", Arity: 3, HasArity: true},
	0x0029: {Name: "DSUM", Arity: 3, HasArity: true},
	0x002A: {Name: "DAVERAGE", Arity: 3, HasArity: true},
	0x002B: {Name: "DMIN", Arity: 3, HasArity: true},
	0x002C: {Name: "DMAX", Arity: 3, HasArity: true},
	0x002D: {Name: "DSTDEV", Arity: 3, HasArity: true},
	0x002E: {Name: "VAR"},
	0x002F: {Name: "DVAR", Arity: 3, HasArity: true},
	0x0030: {Name: "TEXT", Arity: 2, HasArity: true},
	0x0031: {Name: "LINEST"},
	0x0032: {Name: "TREND"},
	0x0033: {Name: "LOGEST"},
	0x0034: {Name: "GROWTH"},
	0x0035: {Name: "GOTO", Arity: 1, HasArity: true},
	0x0036: {Name: "HALT"},
	0x0037: {Name: "RETURN"},
	0x0038: {Name: "PV"},
	0x0039: {Name: "FV"},
	0x003A: {Name: "NPER"},
	0x003B: {Name: "PMT"},
	0x003C: {Name: "RATE"},
	0x003D: {Name: "MIRR", Arity: 3, HasArity: true},
	0x003E: {Name: "IRR"},
	0x003F: {Name: "RAND"},
	0x0040: {Name: "MATCH"},
	0x0041: {Name: "DATE", Arity: 3, HasArity: true},
	0x0042: {Name: "TIME", Arity: 3, HasArity: true},
	0x0043: {Name: "DAY", Arity: 1, HasArity: true},
	0x0044: {Name: "MONTH", Arity: 1, HasArity: true},
	0x0045: {Name: "YEAR", Arity: 1, HasArity: true},
	0x0046: {Name: "WEEKDAY"},
	0x0047: {Name: "HOUR", Arity: 1, HasArity: true},
	0x0048: {Name: "MINUTE", Arity: 1, HasArity: true},
	0x0049: {Name: "SECOND", Arity: 1, HasArity: true},
	0x004A: {Name: "NOW"},
	0x004B: {Name: "AREAS", Arity: 1, HasArity: true},
	0x004C: {Name: "ROWS", Arity: 1, HasArity: true},
	0x004D: {Name: "COLUMNS", Arity: 1, HasArity: true},
	0x004E: {Name: "OFFSET"},
	0x004F: {Name: "ABSREF", Arity: 2, HasArity: true},
	0x0050: {Name: "RELREF", Arity: 2, HasArity: true},
	0x0051: {Name: "ARGUMENT"},
	0x0052: {Name: "SEARCH"},
	0x0053: {Name: "TRANSPOSE", Arity: 1, HasArity: true},
	0x0054: {Name: "ERROR"},
	0x0055: {Name: "STEP"},
	0x0056: {Name: "TYPE", Arity: 1, HasArity: true},
	0x0057: {Name: "ECHO"},
	0x0058: {Name: "SET.NAME"},
	0x0059: {Name: "CALLER"},
	0x005A: {Name: "DEREF", Arity: 1, HasArity: true},
	0x005B: {Name: "WINDOWS"},
	0x005C: {Name: "SERIES"},
	0x005D: {Name: "DOCUMENTS"},
	0x005E: {Name: "ACTIVE.CELL"},
	0x005F: {Name: "SELECTION"},
	0x0060: {Name: "RESULT"},
	0x0061: {Name: "ATAN2", Arity: 2, HasArity: true},
	0x0062: {Name: "ASIN", Arity: 1, HasArity: true},
	0x0063: {Name: "ACOS", Arity: 1, HasArity: true},
	0x0064: {Name: "CHOOSE"},
	0x0065: {Name: "HLOOKUP"},
	0x0066: {Name: "VLOOKUP"},
	0x0067: {Name: "LINKS"},
	0x0068: {Name: "INPUT"},
	0x0069: {Name: "ISREF", Arity: 1, HasArity: true},
	0x006A: {Name: "GET.FORMULA", Arity: 1, HasArity: true},
	0x006B: {Name: "GET.NAME"},
	0x006C: {Name: "SET.VALUE", Arity: 2, HasArity: true},
	0x006D: {Name: "LOG"},
	0x006E: {Name: "EXEC"},
	0x006F: {Name: "CHAR", Arity: 1, HasArity: true},
	0x0070: {Name: "LOWER", Arity: 1, HasArity: true},
	0x0071: {Name: "UPPER", Arity: 1, HasArity: true},
	0x0072: {Name: "PROPER", Arity: 1, HasArity: true},
	0x0073: {Name: "LEFT"},
	0x0074: {Name: "RIGHT"},
	0x0075: {Name: "EXACT", Arity: 2, HasArity: true},
	0x0076: {Name: "TRIM", Arity: 1, HasArity: true},
	0x0077: {Name: "REPLACE", Arity: 4, HasArity: true},
	0x0078: {Name: "SUBSTITUTE"},
	0x0079: {Name: "CODE", Arity: 1, HasArity: true},
	0x007A: {Name: "NAMES"},
	0x007B: {Name: "DIRECTORY"},
	0x007C: {Name: "FIND"},
	0x007D: {Name: "CELL"},
	0x007E: {Name: "ISERR", Arity: 1, HasArity: true},
	0x007F: {Name: "ISTEXT", Arity: 1, HasArity: true},
	0x0080: {Name: "ISNUMBER", Arity: 1, HasArity: true},
	0x0081: {Name: "ISBLANK", Arity: 1, HasArity: true},
	0x0082: {Name: "T", Arity: 1, HasArity: true},
	0x0083: {Name: "N", Arity: 1, HasArity: true},
	0x0084: {Name: "FOPEN"},
	0x0085: {Name: "FCLOSE", Arity: 1, HasArity: true},
	0x0086: {Name: "FSIZE", Arity: 1, HasArity: true},
	0x0087: {Name: "FREADLN", Arity: 1, HasArity: true},
	0x0088: {Name: "FREAD", Arity: 2, HasArity: true},
	0x0089: {Name: "FWRITELN", Arity: 2, HasArity: true},
	0x008A: {Name: "FWRITE", Arity: 2, HasArity: true},
	0x008B: {Name: "FPOS"},
	0x008C: {Name: "DATEVALUE", Arity: 1, HasArity: true},
	0x008D: {Name: "TIMEVALUE", Arity: 1, HasArity: true},
	0x008E: {Name: "SLN", Arity: 3, HasArity: true},
	0x008F: {Name: "SYD", Arity: 4, HasArity: true},
	0x0090: {Name: "DDB"},
	0x0091: {Name: "GET.DEF"},
	0x0092: {Name: "REFTEXT"},
	0x0093: {Name: "TEXTREF"},
	0x0094: {Name: "INDIRECT"},
	0x0095: {Name: "REGISTER"},
	0x0096: {Name: "CALL"},
	0x0097: {Name: "ADD.BAR"},
	0x0098: {Name: "ADD.MENU"},
	0x0099: {Name: "ADD.COMMAND"},
	0x009A: {Name: "ENABLE.COMMAND"},
	0x009B: {Name: "CHECK.COMMAND"},
	0x009C: {Name: "RENAME.COMMAND"},
	0x009D: {Name: "SHOW.BAR"},
	0x009E: {Name: "DELETE.MENU"},
	0x009F: {Name: "DELETE.COMMAND"},
	0x00A0: {Name: "GET.CHART.ITEM"},
	0x00A1: {Name: "DIALOG.BOX", Arity: 1, HasArity: true},
	0x00A2: {Name: "CLEAN", Arity: 1, HasArity: true},
	0x00A3: {Name: "MDETERM", Arity: 1, HasArity: true},
	0x00A4: {Name: "MINVERSE", Arity: 1, HasArity: true},
	0x00A5: {Name: "MMULT", Arity: 2, HasArity: true},
	0x00A6: {Name: "FILES"},
	0x00A7: {Name: "IPMT"},
	0x00A8: {Name: "PPMT"},
	0x00A9: {Name: "COUNTA"},
	0x00AA: {Name: "CANCEL.KEY"},
	0x00AB: {Name: "FOR"},
	0x00AC: {Name: "WHILE", Arity: 1, HasArity: true},
	0x00AD: {Name: "BREAK"},
	0x00AE: {Name: "NEXT"},
	0x00AF: {Name: "INITIATE", Arity: 2, HasArity: true},
	0x00B0: {Name: "REQUEST", Arity: 2, HasArity: true},
	0x00B1: {Name: "POKE", Arity: 3, HasArity: true},
	0x00B2: {Name: "EXECUTE", Arity: 2, HasArity: true},
	0x00B3: {Name: "TERMINATE", Arity: 1, HasArity: true},
	0x00B4: {Name: "RESTART"},
	0x00B5: {Name: "HELP"},
	0x00B6: {Name: "GET.BAR"},
	0x00B7: {Name: "PRODUCT"},
	0x00B8: {Name: "FACT", Arity: 1, HasArity: true},
	0x00B9: {Name: "GET.CELL"},
	0x00BA: {Name: "GET.WORKSPACE", Arity: 1, HasArity: true},
	0x00BB: {Name: "GET.WINDOW"},
	0x00BC: {Name: "GET.DOCUMENT"},
	0x00BD: {Name: "DPRODUCT", Arity: 3, HasArity: true},
	0x00BE: {Name: "ISNONTEXT", Arity: 1, HasArity: true},
	0x00BF: {Name: "GET.NOTE"},
	0x00C0: {Name: "NOTE"},
	0x00C1: {Name: "STDEVP"},
	0x00C2: {Name: "VARP"},
	0x00C3: {Name: "DSTDEVP", Arity: 3, HasArity: true},
	0x00C4: {Name: "DVARP", Arity: 3, HasArity: true},
	0x00C5: {Name: "TRUNC"},
	0x00C6: {Name: "ISLOGICAL", Arity: 1, HasArity: true},
	0x00C7: {Name: "DCOUNTA", Arity: 3, HasArity: true},
	0x00C8: {Name: "DELETE.BAR", Arity: 1, HasArity: true},
	0x00C9: {Name: "UNREGISTER", Arity: 1, HasArity: true},
	0x00CC: {Name: "USDOLLAR"},
	0x00CD: {Name: "FINDB"},
	0x00CE: {Name: "SEARCHB"},
	0x00CF: {Name: "REPLACEB", Arity: 4, HasArity: true},
	0x00D0: {Name: "LEFTB"},
	0x00D1: {Name: "RIGHTB"},
	0x00D2: {Name: "MIDB", Arity: 3, HasArity: true},
	0x00D3: {Name: "LENB", Arity: 1, HasArity: true},
	0x00D4: {Name: "ROUNDUP", Arity: 2, HasArity: true},
	0x00D5: {Name: "ROUNDDOWN", Arity: 2, HasArity: true},
	0x00D6: {Name: "ASC", Arity: 1, HasArity: true},
	0x00D7: {Name: "DBCS", Arity: 1, HasArity: true},
	0x00D8: {Name: "RANK"},
	0x00DB: {Name: "ADDRESS"},
	0x00DC: {Name: "DAYS360"},
	0x00DD: {Name: "TODAY"},
	0x00DE: {Name: "VDB"},
	0x00DF: {Name: "ELSE"},
	0x00E0: {Name: "ELSE.IF", Arity: 1, HasArity: true},
	0x00E1: {Name: "END.IF"},
	0x00E2: {Name: "FOR.CELL"},
	0x00E3: {Name: "MEDIAN"},
	0x00E4: {Name: "SUMPRODUCT"},
	0x00E5: {Name: "SINH", Arity: 1, HasArity: true},
	0x00E6: {Name: "COSH", Arity: 1, HasArity: true},
	0x00E7: {Name: "TANH", Arity: 1, HasArity: true},
	0x00E8: {Name: "ASINH", Arity: 1, HasArity: true},
	0x00E9: {Name: "ACOSH", Arity: 1, HasArity: true},
	0x00EA: {Name: "ATANH", Arity: 1, HasArity: true},
	0x00EB: {Name: "DGET", Arity: 3, HasArity: true},
	0x00EC: {Name: "CREATE.OBJECT"},
	0x00ED: {Name: "VOLATILE"},
	0x00EE: {Name: "LAST.ERROR"},
	0x00EF: {Name: "CUSTOM.UNDO"},
	0x00F0: {Name: "CUSTOM.REPEAT"},
	0x00F1: {Name: "FORMULA.CONVERT"},
	0x00F2: {Name: "GET.LINK.INFO"},
	0x00F3: {Name: "TEXT.BOX"},
	0x00F4: {Name: "INFO", Arity: 1, HasArity: true},
	0x00F5: {Name: "GROUP"},
	0x00F6: {Name: "GET.OBJECT"},
	0x00F7: {Name: "DB"},
	0x00F8: {Name: "PAUSE"},
	0x00FB: {Name: "RESUME"},
	0x00FC: {Name: "FREQUENCY", Arity: 2, HasArity: true},
	0x00FD: {Name: "ADD.TOOLBAR"},
	0x00FE: {Name: "DELETE.TOOLBAR", Arity: 1, HasArity: true},
	0x00FF: {Name: "UserDefinedFunction"},
	0x0100: {Name: "RESET.TOOLBAR", Arity: 1, HasArity: true},
	0x0101: {Name: "EVALUATE", Arity: 1, HasArity: true},
	0x0102: {Name: "GET.TOOLBAR"},
	0x0103: {Name: "GET.TOOL"},
	0x0104: {Name: "SPELLING.CHECK"},
	0x0105: {Name: "ERROR.TYPE", Arity: 1, HasArity: true},
	0x0106: {Name: "APP.TITLE"},
	0x0107: {Name: "WINDOW.TITLE"},
	0x0108: {Name: "SAVE.TOOLBAR"},
	0x0109: {Name: "ENABLE.TOOL", Arity: 3, HasArity: true},
	0x010A: {Name: "PRESS.TOOL", Arity: 3, HasArity: true},
	0x010B: {Name: "REGISTER.ID"},
	0x010C: {Name: "GET.WORKBOOK"},
	0x010D: {Name: "AVEDEV"},
	0x010E: {Name: "BETADIST"},
	0x010F: {Name: "GAMMALN", Arity: 1, HasArity: true},
	0x0110: {Name: "BETAINV"},
	0x0111: {Name: "BINOMDIST", Arity: 4, HasArity: true},
	0x0112: {Name: "CHIDIST", Arity: 2, HasArity: true},
	0x0113: {Name: "CHIINV", Arity: 2, HasArity: true},
	0x0114: {Name: "COMBIN", Arity: 2, HasArity: true},
	0x0115: {Name: "CONFIDENCE", Arity: 3, HasArity: true},
	0x0116: {Name: "CRITBINOM", Arity: 3, HasArity: true},
	0x0117: {Name: "EVEN", Arity: 1, HasArity: true},
	0x0118: {Name: "EXPONDIST", Arity: 3, HasArity: true},
	0x0119: {Name: "FDIST", Arity: 3, HasArity: true},
	0x011A: {Name: "FINV", Arity: 3, HasArity: true},
	0x011B: {Name: "FISHER", Arity: 1, HasArity: true},
	0x011C: {Name: "FISHERINV", Arity: 1, HasArity: true},
	0x011D: {Name: "FLOOR", Arity: 2, HasArity: true},
	0x011E: {Name: "GAMMADIST", Arity: 4, HasArity: true},
	0x011F: {Name: "GAMMAINV", Arity: 3, HasArity: true},
	0x0120: {Name: "CEILING", Arity: 2, HasArity: true},
	0x0121: {Name: "HYPGEOMDIST", Arity: 4, HasArity: true},
	0x0122: {Name: "LOGNORMDIST", Arity: 3, HasArity: true},
	0x0123: {Name: "LOGINV", Arity: 3, HasArity: true},
	0x0124: {Name: "NEGBINOMDIST", Arity: 3, HasArity: true},
	0x0125: {Name: "NORMDIST", Arity: 4, HasArity: true},
	0x0126: {Name: "NORMSDIST", Arity: 1, HasArity: true},
	0x0127: {Name: "NORMINV", Arity: 3, HasArity: true},
	0x0128: {Name: "NORMSINV", Arity: 1, HasArity: true},
	0x0129: {Name: "STANDARDIZE", Arity: 3, HasArity: true},
	0x012A: {Name: "ODD", Arity: 1, HasArity: true},
	0x012B: {Name: "PERMUT", Arity: 2, HasArity: true},
	0x012C: {Name: "POISSON", Arity: 3, HasArity: true},
	0x012D: {Name: "TDIST", Arity: 3, HasArity: true},
	0x012E: {Name: "WEIBULL", Arity: 4, HasArity: true},
	0x012F: {Name: "SUMXMY2", Arity: 2, HasArity: true},
	0x0130: {Name: "SUMX2MY2", Arity: 2, HasArity: true},
	0x0131: {Name: "SUMX2PY2", Arity: 2, HasArity: true},
	0x0132: {Name: "CHITEST", Arity: 2, HasArity: true},
	0x0133: {Name: "CORREL", Arity: 2, HasArity: true},
	0x0134: {Name: "COVAR", Arity: 2, HasArity: true},
	0x0135: {Name: "FORECAST", Arity: 3, HasArity: true},
	0x0136: {Name: "FTEST", Arity: 2, HasArity: true},
	0x0137: {Name: "INTERCEPT", Arity: 2, HasArity: true},
	0x0138: {Name: "PEARSON", Arity: 2, HasArity: true},
	0x0139: {Name: "RSQ", Arity: 2, HasArity: true},
	0x013A: {Name: "STEYX", Arity: 2, HasArity: true},
	0x013B: {Name: "SLOPE", Arity: 2, HasArity: true},
	0x013C: {Name: "TTEST", Arity: 4, HasArity: true},
	0x013D: {Name: "PROB"},
	0x013E: {Name: "DEVSQ"},
	0x013F: {Name: "GEOMEAN"},
	0x0140: {Name: "HARMEAN"},
	0x0141: {Name: "SUMSQ"},
	0x0142: {Name: "KURT"},
	0x0143: {Name: "SKEW"},
	0x0144: {Name: "ZTEST"},
	0x0145: {Name: "LARGE", Arity: 2, HasArity: true},
	0x0146: {Name: "SMALL", Arity: 2, HasArity: true},
	0x0147: {Name: "QUARTILE", Arity: 2, HasArity: true},
	0x0148: {Name: "PERCENTILE", Arity: 2, HasArity: true},
	0x0149: {Name: "PERCENTRANK"},
	0x014A: {Name: "MODE"},
	0x014B: {Name: "TRIMMEAN", Arity: 2, HasArity: true},
	0x014C: {Name: "TINV", Arity: 2, HasArity: true},
	0x014E: {Name: "MOVIE.COMMAND"},
	0x014F: {Name: "GET.MOVIE"},
	0x0150: {Name: "CONCATENATE"},
	0x0151: {Name: "POWER", Arity: 2, HasArity: true},
	0x0152: {Name: "PIVOT.ADD.DATA"},
	0x0153: {Name: "GET.PIVOT.TABLE"},
	0x0154: {Name: "GET.PIVOT.FIELD"},
	0x0155: {Name: "GET.PIVOT.ITEM"},
	0x0156: {Name: "RADIANS", Arity: 1, HasArity: true},
	0x0157: {Name: "DEGREES", Arity: 1, HasArity: true},
	0x0158: {Name: "SUBTOTAL"},
	0x0159: {Name: "SUMIF"},
	0x015A: {Name: "COUNTIF", Arity: 2, HasArity: true},
	0x015B: {Name: "COUNTBLANK", Arity: 1, HasArity: true},
	0x015C: {Name: "SCENARIO.GET"},
	0x015D: {Name: "OPTIONS.LISTS.GET", Arity: 1, HasArity: true},
	0x015E: {Name: "ISPMT", Arity: 4, HasArity: true},
	0x015F: {Name: "DATEDIF", Arity: 3, HasArity: true},
	0x0160: {Name: "DATESTRING", Arity: 1, HasArity: true},
	0x0161: {Name: "NUMBERSTRING", Arity: 2, HasArity: true},
	0x0162: {Name: "ROMAN"},
	0x0163: {Name: "OPEN.DIALOG"},
	0x0164: {Name: "SAVE.DIALOG"},
	0x0165: {Name: "VIEW.GET"},
	0x0166: {Name: "GETPIVOTDATA"},
	0x0167: {Name: "HYPERLINK"},
	0x0168: {Name: "PHONETIC", Arity: 1, HasArity: true},
	0x0169: {Name: "AVERAGEA"},
	0x016A: {Name: "MAXA"},
	0x016B: {Name: "MINA"},
	0x016C: {Name: "STDEVPA"},
	0x016D: {Name: "VARPA"},
	0x016E: {Name: "STDEVA"},
	0x016F: {Name: "VARA"},
	0x0170: {Name: "BAHTTEXT", Arity: 1, HasArity: true},
	0x0171: {Name: "THAIDAYOFWEEK", Arity: 1, HasArity: true},
	0x0172: {Name: "THAIDIGIT", Arity: 1, HasArity: true},
	0x0173: {Name: "THAIMONTHOFYEAR", Arity: 1, HasArity: true},
	0x0174: {Name: "THAINUMSOUND", Arity: 1, HasArity: true},
	0x0175: {Name: "THAINUMSTRING", Arity: 1, HasArity: true},
	0x0176: {Name: "THAISTRINGLENGTH", Arity: 1, HasArity: true},
	0x0177: {Name: "ISTHAIDIGIT", Arity: 1, HasArity: true},
	0x0178: {Name: "ROUNDBAHTDOWN", Arity: 1, HasArity: true},
	0x0179: {Name: "ROUNDBAHTUP", Arity: 1, HasArity: true},
	0x017A: {Name: "THAIYEAR", Arity: 1, HasArity: true},
	0x017B: {Name: "RTD"},
	0x017C: {Name: "CUBEVALUE"},
	0x017D: {Name: "CUBEMEMBER"},
	0x017E: {Name: "CUBEMEMBERPROPERTY", Arity: 3, HasArity: true},
	0x017F: {Name: "CUBERANKEDMEMBER"},
	0x0180: {Name: "HEX2BIN"},
	0x0181: {Name: "HEX2DEC", Arity: 1, HasArity: true},
	0x0182: {Name: "HEX2OCT"},
	0x0183: {Name: "DEC2BIN"},
	0x0184: {Name: "DEC2HEX"},
	0x0185: {Name: "DEC2OCT"},
	0x0186: {Name: "OCT2BIN"},
	0x0187: {Name: "OCT2HEX"},
	0x0188: {Name: "OCT2DEC", Arity: 1, HasArity: true},
	0x0189: {Name: "BIN2DEC", Arity: 1, HasArity: true},
	0x018A: {Name: "BIN2OCT"},
	0x018B: {Name: "BIN2HEX"},
	0x018C: {Name: "IMSUB", Arity: 2, HasArity: true},
	0x018D: {Name: "IMDIV", Arity: 2, HasArity: true},
	0x018E: {Name: "IMPOWER", Arity: 2, HasArity: true},
	0x018F: {Name: "IMABS", Arity: 1, HasArity: true},
	0x0190: {Name: "IMSQRT", Arity: 1, HasArity: true},
	0x0191: {Name: "IMLN", Arity: 1, HasArity: true},
	0x0192: {Name: "IMLOG2", Arity: 1, HasArity: true},
	0x0193: {Name: "IMLOG10", Arity: 1, HasArity: true},
	0x0194: {Name: "IMSIN", Arity: 1, HasArity: true},
	0x0195: {Name: "IMCOS", Arity: 1, HasArity: true},
	0x0196: {Name: "IMEXP", Arity: 1, HasArity: true},
	0x0197: {Name: "IMARGUMENT", Arity: 1, HasArity: true},
	0x0198: {Name: "IMCONJUGATE", Arity: 1, HasArity: true},
	0x0199: {Name: "IMAGINARY", Arity: 1, HasArity: true},
	0x019A: {Name: "IMREAL", Arity: 1, HasArity: true},
	0x019B: {Name: "COMPLEX"},
	0x019C: {Name: "IMSUM"},
	0x019D: {Name: "IMPRODUCT"},
	0x019E: {Name: "SERIESSUM", Arity: 4, HasArity: true},
	0x019F: {Name: "FACTDOUBLE", Arity: 1, HasArity: true},
	0x01A0: {Name: "SQRTPI", Arity: 1, HasArity: true},
	0x01A1: {Name: "QUOTIENT", Arity: 2, HasArity: true},
	0x01A2: {Name: "DELTA"},
	0x01A3: {Name: "GESTEP"},
	0x01A4: {Name: "ISEVEN", Arity: 1, HasArity: true},
	0x01A5: {Name: "ISODD", Arity: 1, HasArity: true},
	0x01A6: {Name: "MROUND", Arity: 2, HasArity: true},
	0x01A7: {Name: "ERF"},
	0x01A8: {Name: "ERFC", Arity: 1, HasArity: true},
	0x01A9: {Name: "BESSELJ", Arity: 2, HasArity: true},
	0x01AA: {Name: "BESSELK", Arity: 2, HasArity: true},
	0x01AB: {Name: "BESSELY", Arity: 2, HasArity: true},
	0x01AC: {Name: "BESSELI", Arity: 2, HasArity: true},
	0x01AD: {Name: "XIRR"},
	0x01AE: {Name: "XNPV", Arity: 3, HasArity: true},
	0x01AF: {Name: "PRICEMAT"},
	0x01B0: {Name: "YIELDMAT"},
	0x01B1: {Name: "INTRATE"},
	0x01B2: {Name: "RECEIVED"},
	0x01B3: {Name: "DISC"},
	0x01B4: {Name: "PRICEDISC"},
	0x01B5: {Name: "YIELDDISC"},
	0x01B6: {Name: "TBILLEQ", Arity: 3, HasArity: true},
	0x01B7: {Name: "TBILLPRICE", Arity: 3, HasArity: true},
	0x01B8: {Name: "TBILLYIELD", Arity: 3, HasArity: true},
	0x01B9: {Name: "PRICE"},
	0x01BA: {Name: "YIELD"},
	0x01BB: {Name: "DOLLARDE", Arity: 2, HasArity: true},
	0x01BC: {Name: "DOLLARFR", Arity: 2, HasArity: true},
	0x01BD: {Name: "NOMINAL", Arity: 2, HasArity: true},
	0x01BE: {Name: "EFFECT", Arity: 2, HasArity: true},
	0x01BF: {Name: "CUMPRINC", Arity: 6, HasArity: true},
	0x01C0: {Name: "CUMIPMT", Arity: 6, HasArity: true},
	0x01C1: {Name: "EDATE", Arity: 2, HasArity: true},
	0x01C2: {Name: "EOMONTH", Arity: 2, HasArity: true},
	0x01C3: {Name: "YEARFRAC"},
	0x01C4: {Name: "COUPDAYBS"},
	0x01C5: {Name: "COUPDAYS"},
	0x01C6: {Name: "COUPDAYSNC"},
	0x01C7: {Name: "COUPNCD"},
	0x01C8: {Name: "COUPNUM"},
	0x01C9: {Name: "COUPPCD"},
	0x01CA: {Name: "DURATION"},
	0x01CB: {Name: "MDURATION"},
	0x01CC: {Name: "ODDLPRICE"},
	0x01CD: {Name: "ODDLYIELD"},
	0x01CE: {Name: "ODDFPRICE"},
	0x01CF: {Name: "ODDFYIELD"},
	0x01D0: {Name: "RANDBETWEEN", Arity: 2, HasArity: true},
	0x01D1: {Name: "WEEKNUM"},
	0x01D2: {Name: "AMORDEGRC"},
	0x01D3: {Name: "AMORLINC"},
	0x01D5: {Name: "ACCRINT"},
	0x01D6: {Name: "ACCRINTM"},
	0x01D7: {Name: "WORKDAY"},
	0x01D8: {Name: "NETWORKDAYS"},
	0x01D9: {Name: "GCD"},
	0x01DA: {Name: "MULTINOMIAL"},
	0x01DB: {Name: "LCM"},
	0x01DC: {Name: "FVSCHEDULE", Arity: 2, HasArity: true},
	0x01DD: {Name: "CUBEKPIMEMBER"},
	0x01DE: {Name: "CUBESET"},
	0x01DF: {Name: "CUBESETCOUNT", Arity: 1, HasArity: true},
	0x01E0: {Name: "IFERROR", Arity: 2, HasArity: true},
	0x01E1: {Name: "COUNTIFS"},
	0x01E2: {Name: "SUMIFS"},
	0x01E3: {Name: "AVERAGEIF"},
	0x8000: {Name: "BEEP"},
	0x8001: {Name: "OPEN"},
	0x8002: {Name: "OPEN.LINKS"},
	0x8003: {Name: "CLOSE.ALL"},
	0x8004: {Name: "SAVE"},
	0x8005: {Name: "SAVE.AS"},
	0x8006: {Name: "FILE.DELETE"},
	0x8007: {Name: "PAGE.SETUP"},
	0x8008: {Name: "PRINT"},
	0x8009: {Name: "PRINTER.SETUP"},
	0x800A: {Name: "QUIT"},
	0x800B: {Name: "NEW.WINDOW"},
	0x800C: {Name: "ARRANGE.ALL"},
	0x800D: {Name: "WINDOW.SIZE"},
	0x800E: {Name: "WINDOW.MOVE"},
	0x800F: {Name: "FULL"},
	0x8010: {Name: "CLOSE"},
	0x8011: {Name: "RUN"},
	0x8016: {Name: "SET.PRINT.AREA"},
	0x8017: {Name: "SET.PRINT.TITLES"},
	0x8018: {Name: "SET.PAGE.BREAK"},
	0x8019: {Name: "REMOVE.PAGE.BREAK"},
	0x801A: {Name: "FONT"},
	0x801B: {Name: "DISPLAY"},
	0x801C: {Name: "PROTECT.DOCUMENT"},
	0x801D: {Name: "PRECISION"},
	0x801E: {Name: "A1.R1C1"},
	0x801F: {Name: "CALCULATE.NOW"},
	0x8020: {Name: "CALCULATION"},
	0x8022: {Name: "DATA.FIND"},
	0x8023: {Name: "EXTRACT"},
	0x8024: {Name: "DATA.DELETE"},
	0x8025: {Name: "SET.DATABASE"},
	0x8026: {Name: "SET.CRITERIA"},
	0x8027: {Name: "SORT"},
	0x8028: {Name: "DATA.SERIES"},
	0x8029: {Name: "TABLE"},
	0x802A: {Name: "FORMAT.NUMBER"},
	0x802B: {Name: "ALIGNMENT"},
	0x802C: {Name: "STYLE"},
	0x802D: {Name: "BORDER"},
	0x802E: {Name: "CELL.PROTECTION"},
	0x802F: {Name: "COLUMN.WIDTH"},
	0x8030: {Name: "UNDO"},
	0x8031: {Name: "CUT"},
	0x8032: {Name: "COPY"},
	0x8033: {Name: "PASTE"},
	0x8034: {Name: "CLEAR"},
	0x8035: {Name: "PASTE.SPECIAL"},
	0x8036: {Name: "EDIT.DELETE"},
	0x8037: {Name: "INSERT"},
	0x8038: {Name: "FILL.RIGHT"},
	0x8039: {Name: "FILL.DOWN"},
	0x803D: {Name: "DEFINE.NAME"},
	0x803E: {Name: "CREATE.NAMES"},
	0x803F: {Name: "FORMULA.GOTO"},
	0x8040: {Name: "FORMULA.FIND"},
	0x8041: {Name: "SELECT.LAST.CELL"},
	0x8042: {Name: "SHOW.ACTIVE.CELL"},
	0x8043: {Name: "GALLERY.AREA"},
	0x8044: {Name: "GALLERY.BAR"},
	0x8045: {Name: "GALLERY.COLUMN"},
	0x8046: {Name: "GALLERY.LINE"},
	0x8047: {Name: "GALLERY.PIE"},
	0x8048: {Name: "GALLERY.SCATTER"},
	0x8049: {Name: "COMBINATION"},
	0x804A: {Name: "PREFERRED"},
	0x804B: {Name: "ADD.OVERLAY"},
	0x804C: {Name: "GRIDLINES"},
	0x804D: {Name: "SET.PREFERRED"},
	0x804E: {Name: "AXES"},
	0x804F: {Name: "LEGEND"},
	0x8050: {Name: "ATTACH.TEXT"},
	0x8051: {Name: "ADD.ARROW"},
	0x8052: {Name: "SELECT.CHART"},
	0x8053: {Name: "SELECT.PLOT.AREA"},
	0x8054: {Name: "PATTERNS"},
	0x8055: {Name: "MAIN.CHART"},
	0x8056: {Name: "OVERLAY"},
	0x8057: {Name: "SCALE"},
	0x8058: {Name: "FORMAT.LEGEND"},
	0x8059: {Name: "FORMAT.TEXT"},
	0x805A: {Name: "EDIT.REPEAT"},
	0x805B: {Name: "PARSE"},
	0x805C: {Name: "JUSTIFY"},
	0x805D: {Name: "HIDE"},
	0x805E: {Name: "UNHIDE"},
	0x805F: {Name: "WORKSPACE"},
	0x8060: {Name: "FORMULA"},
	0x8061: {Name: "FORMULA.FILL"},
	0x8062: {Name: "FORMULA.ARRAY"},
	0x8063: {Name: "DATA.FIND.NEXT"},
	0x8064: {Name: "DATA.FIND.PREV"},
	0x8065: {Name: "FORMULA.FIND.NEXT"},
	0x8066: {Name: "FORMULA.FIND.PREV"},
	0x8067: {Name: "ACTIVATE"},
	0x8068: {Name: "ACTIVATE.NEXT"},
	0x8069: {Name: "ACTIVATE.PREV"},
	0x806A: {Name: "UNLOCKED.NEXT"},
	0x806B: {Name: "UNLOCKED.PREV"},
	0x806C: {Name: "COPY.PICTURE"},
	0x806D: {Name: "SELECT"},
	0x806E: {Name: "DELETE.NAME"},
	0x806F: {Name: "DELETE.FORMAT"},
	0x8070: {Name: "VLINE"},
	0x8071: {Name: "HLINE"},
	0x8072: {Name: "VPAGE"},
	0x8073: {Name: "HPAGE"},
	0x8074: {Name: "VSCROLL"},
	0x8075: {Name: "HSCROLL"},
	0x8076: {Name: "ALERT"},
	0x8077: {Name: "NEW"},
	0x8078: {Name: "CANCEL.COPY"},
	0x8079: {Name: "SHOW.CLIPBOARD"},
	0x807A: {Name: "MESSAGE"},
	0x807C: {Name: "PASTE.LINK"},
	0x807D: {Name: "APP.ACTIVATE"},
	0x807E: {Name: "DELETE.ARROW"},
	0x807F: {Name: "ROW.HEIGHT"},
	0x8080: {Name: "FORMAT.MOVE"},
	0x8081: {Name: "FORMAT.SIZE"},
	0x8082: {Name: "FORMULA.REPLACE"},
	0x8083: {Name: "SEND.KEYS"},
	0x8084: {Name: "SELECT.SPECIAL"},
	0x8085: {Name: "APPLY.NAMES"},
	0x8086: {Name: "REPLACE.FONT"},
	0x8087: {Name: "FREEZE.PANES"},
	0x8088: {Name: "SHOW.INFO"},
	0x8089: {Name: "SPLIT"},
	0x808A: {Name: "ON.WINDOW"},
	0x808B: {Name: "ON.DATA"},
	0x808C: {Name: "DISABLE.INPUT"},
	0x808E: {Name: "OUTLINE"},
	0x808F: {Name: "LIST.NAMES"},
	0x8090: {Name: "FILE.CLOSE"},
	0x8091: {Name: "SAVE.WORKBOOK"},
	0x8092: {Name: "DATA.FORM"},
	0x8093: {Name: "COPY.CHART"},
	0x8094: {Name: "ON.TIME"},
	0x8095: {Name: "WAIT"},
	0x8096: {Name: "FORMAT.FONT"},
	0x8097: {Name: "FILL.UP"},
	0x8098: {Name: "FILL.LEFT"},
	0x8099: {Name: "DELETE.OVERLAY"},
	0x809B: {Name: "SHORT.MENUS"},
	0x809F: {Name: "SET.UPDATE.STATUS"},
	0x80A1: {Name: "COLOR.PALETTE"},
	0x80A2: {Name: "DELETE.STYLE"},
	0x80A3: {Name: "WINDOW.RESTORE"},
	0x80A4: {Name: "WINDOW.MAXIMIZE"},
	0x80A6: {Name: "CHANGE.LINK"},
	0x80A7: {Name: "CALCULATE.DOCUMENT"},
	0x80A8: {Name: "ON.KEY"},
	0x80A9: {Name: "APP.RESTORE"},
	0x80AA: {Name: "APP.MOVE"},
	0x80AB: {Name: "APP.SIZE"},
	0x80AC: {Name: "APP.MINIMIZE"},
	0x80AD: {Name: "APP.MAXIMIZE"},
	0x80AE: {Name: "BRING.TO.FRONT"},
	0x80AF: {Name: "SEND.TO.BACK"},
	0x80B9: {Name: "MAIN.CHART.TYPE"},
	0x80BA: {Name: "OVERLAY.CHART.TYPE"},
	0x80BB: {Name: "SELECT.END"},
	0x80BC: {Name: "OPEN.MAIL"},
	0x80BD: {Name: "SEND.MAIL"},
	0x80BE: {Name: "STANDARD.FONT"},
	0x80BF: {Name: "CONSOLIDATE"},
	0x80C0: {Name: "SORT.SPECIAL"},
	0x80C1: {Name: "GALLERY.3D.AREA"},
	0x80C2: {Name: "GALLERY.3D.COLUMN"},
	0x80C3: {Name: "GALLERY.3D.LINE"},
	0x80C4: {Name: "GALLERY.3D.PIE"},
	0x80C5: {Name: "VIEW.3D"},
	0x80C6: {Name: "GOAL.SEEK"},
	0x80C7: {Name: "WORKGROUP"},
	0x80C8: {Name: "FILL.GROUP"},
	0x80C9: {Name: "UPDATE.LINK"},
	0x80CA: {Name: "PROMOTE"},
	0x80CB: {Name: "DEMOTE"},
	0x80CC: {Name: "SHOW.DETAIL"},
	0x80CE: {Name: "UNGROUP"},
	0x80CF: {Name: "OBJECT.PROPERTIES"},
	0x80D0: {Name: "SAVE.NEW.OBJECT"},
	0x80D1: {Name: "SHARE"},
	0x80D2: {Name: "SHARE.NAME"},
	0x80D3: {Name: "DUPLICATE"},
	0x80D4: {Name: "APPLY.STYLE"},
	0x80D5: {Name: "ASSIGN.TO.OBJECT"},
	0x80D6: {Name: "OBJECT.PROTECTION"},
	0x80D7: {Name: "HIDE.OBJECT"},
	0x80D8: {Name: "SET.EXTRACT"},
	0x80D9: {Name: "CREATE.PUBLISHER"},
	0x80DA: {Name: "SUBSCRIBE.TO"},
	0x80DB: {Name: "ATTRIBUTES"},
	0x80DC: {Name: "SHOW.TOOLBAR"},
	0x80DE: {Name: "PRINT.PREVIEW"},
	0x80DF: {Name: "EDIT.COLOR"},
	0x80E0: {Name: "SHOW.LEVELS"},
	0x80E1: {Name: "FORMAT.MAIN"},
	0x80E2: {Name: "FORMAT.OVERLAY"},
	0x80E3: {Name: "ON.RECALC"},
	0x80E4: {Name: "EDIT.SERIES"},
	0x80E5: {Name: "DEFINE.STYLE"},
	0x80F0: {Name: "LINE.PRINT"},
	0x80F3: {Name: "ENTER.DATA"},
	0x80F9: {Name: "GALLERY.RADAR"},
	0x80FA: {Name: "MERGE.STYLES"},
	0x80FB: {Name: "EDITION.OPTIONS"},
	0x80FC: {Name: "PASTE.PICTURE"},
	0x80FD: {Name: "PASTE.PICTURE.LINK"},
	0x80FE: {Name: "SPELLING"},
	0x8100: {Name: "ZOOM"},
	0x8103: {Name: "INSERT.OBJECT"},
	0x8104: {Name: "WINDOW.MINIMIZE"},
	0x8109: {Name: "SOUND.NOTE"},
	0x810A: {Name: "SOUND.PLAY"},
	0x810B: {Name: "FORMAT.SHAPE"},
	0x810C: {Name: "EXTEND.POLYGON"},
	0x810D: {Name: "FORMAT.AUTO"},
	0x8110: {Name: "GALLERY.3D.BAR"},
	0x8111: {Name: "GALLERY.3D.SURFACE"},
	0x8112: {Name: "FILL.AUTO"},
	0x8114: {Name: "CUSTOMIZE.TOOLBAR"},
	0x8115: {Name: "ADD.TOOL"},
	0x8116: {Name: "EDIT.OBJECT"},
	0x8117: {Name: "ON.DOUBLECLICK"},
	0x8118: {Name: "ON.ENTRY"},
	0x8119: {Name: "WORKBOOK.ADD"},
	0x811A: {Name: "WORKBOOK.MOVE"},
	0x811B: {Name: "WORKBOOK.COPY"},
	0x811C: {Name: "WORKBOOK.OPTIONS"},
	0x811D: {Name: "SAVE.WORKSPACE"},
	0x8120: {Name: "CHART.WIZARD"},
	0x8121: {Name: "DELETE.TOOL"},
	0x8122: {Name: "MOVE.TOOL"},
	0x8123: {Name: "WORKBOOK.SELECT"},
	0x8124: {Name: "WORKBOOK.ACTIVATE"},
	0x8125: {Name: "ASSIGN.TO.TOOL"},
	0x8127: {Name: "COPY.TOOL"},
	0x8128: {Name: "RESET.TOOL"},
	0x8129: {Name: "CONSTRAIN.NUMERIC"},
	0x812A: {Name: "PASTE.TOOL"},
	0x812E: {Name: "WORKBOOK.NEW"},
	0x8131: {Name: "SCENARIO.CELLS"},
	0x8132: {Name: "SCENARIO.DELETE"},
	0x8133: {Name: "SCENARIO.ADD"},
	0x8134: {Name: "SCENARIO.EDIT"},
	0x8135: {Name: "SCENARIO.SHOW"},
	0x8136: {Name: "SCENARIO.SHOW.NEXT"},
	0x8137: {Name: "SCENARIO.SUMMARY"},
	0x8138: {Name: "PIVOT.TABLE.WIZARD"},
	0x8139: {Name: "PIVOT.FIELD.PROPERTIES"},
	0x813A: {Name: "PIVOT.FIELD"},
	0x813B: {Name: "PIVOT.ITEM"},
	0x813C: {Name: "PIVOT.ADD.FIELDS"},
	0x813E: {Name: "OPTIONS.CALCULATION"},
	0x813F: {Name: "OPTIONS.EDIT"},
	0x8140: {Name: "OPTIONS.VIEW"},
	0x8141: {Name: "ADDIN.MANAGER"},
	0x8142: {Name: "MENU.EDITOR"},
	0x8143: {Name: "ATTACH.TOOLBARS"},
	0x8144: {Name: "VBAActivate"},
	0x8145: {Name: "OPTIONS.CHART"},
	0x8148: {Name: "VBA.INSERT.FILE"},
	0x814A: {Name: "VBA.PROCEDURE.DEFINITION"},
	0x8150: {Name: "ROUTING.SLIP"},
	0x8152: {Name: "ROUTE.DOCUMENT"},
	0x8153: {Name: "MAIL.LOGON"},
	0x8156: {Name: "INSERT.PICTURE"},
	0x8157: {Name: "EDIT.TOOL"},
	0x8158: {Name: "GALLERY.DOUGHNUT"},
	0x815E: {Name: "CHART.TREND"},
	0x8160: {Name: "PIVOT.ITEM.PROPERTIES"},
	0x8162: {Name: "WORKBOOK.INSERT"},
	0x8163: {Name: "OPTIONS.TRANSITION"},
	0x8164: {Name: "OPTIONS.GENERAL"},
	0x8172: {Name: "FILTER.ADVANCED"},
	0x8175: {Name: "MAIL.ADD.MAILER"},
	0x8176: {Name: "MAIL.DELETE.MAILER"},
	0x8177: {Name: "MAIL.REPLY"},
	0x8178: {Name: "MAIL.REPLY.ALL"},
	0x8179: {Name: "MAIL.FORWARD"},
	0x817A: {Name: "MAIL.NEXT.LETTER"},
	0x817B: {Name: "DATA.LABEL"},
	0x817C: {Name: "INSERT.TITLE"},
	0x817D: {Name: "FONT.PROPERTIES"},
	0x817E: {Name: "MACRO.OPTIONS"},
	0x817F: {Name: "WORKBOOK.HIDE"},
	0x8180: {Name: "WORKBOOK.UNHIDE"},
	0x8181: {Name: "WORKBOOK.DELETE"},
	0x8182: {Name: "WORKBOOK.NAME"},
	0x8184: {Name: "GALLERY.CUSTOM"},
	0x8186: {Name: "ADD.CHART.AUTOFORMAT"},
	0x8187: {Name: "DELETE.CHART.AUTOFORMAT"},
	0x8188: {Name: "CHART.ADD.DATA"},
	0x8189: {Name: "AUTO.OUTLINE"},
	0x818A: {Name: "TAB.ORDER"},
	0x818B: {Name: "SHOW.DIALOG"},
	0x818C: {Name: "SELECT.ALL"},
	0x818D: {Name: "UNGROUP.SHEETS"},
	0x818E: {Name: "SUBTOTAL.CREATE"},
	0x818F: {Name: "SUBTOTAL.REMOVE"},
	0x8190: {Name: "RENAME.OBJECT"},
	0x819C: {Name: "WORKBOOK.SCROLL"},
	0x819D: {Name: "WORKBOOK.NEXT"},
	0x819E: {Name: "WORKBOOK.PREV"},
	0x819F: {Name: "WORKBOOK.TAB.SPLIT"},
	0x81A0: {Name: "FULL.SCREEN"},
	0x81A1: {Name: "WORKBOOK.PROTECT"},
	0x81A4: {Name: "SCROLLBAR.PROPERTIES"},
	0x81A5: {Name: "PIVOT.SHOW.PAGES"},
	0x81A6: {Name: "TEXT.TO.COLUMNS"},
	0x81A7: {Name: "FORMAT.CHARTTYPE"},
	0x81A8: {Name: "LINK.FORMAT"},
	0x81A9: {Name: "TRACER.DISPLAY"},
	0x81AE: {Name: "TRACER.NAVIGATE"},
	0x81AF: {Name: "TRACER.CLEAR"},
	0x81B0: {Name: "TRACER.ERROR"},
	0x81B1: {Name: "PIVOT.FIELD.GROUP"},
	0x81B2: {Name: "PIVOT.FIELD.UNGROUP"},
	0x81B3: {Name: "CHECKBOX.PROPERTIES"},
	0x81B4: {Name: "LABEL.PROPERTIES"},
	0x81B5: {Name: "LISTBOX.PROPERTIES"},
	0x81B6: {Name: "EDITBOX.PROPERTIES"},
	0x81B7: {Name: "PIVOT.REFRESH"},
	0x81B8: {Name: "LINK.COMBO"},
	0x81B9: {Name: "OPEN.TEXT"},
	0x81BA: {Name: "HIDE.DIALOG"},
	0x81BB: {Name: "SET.DIALOG.FOCUS"},
	0x81BC: {Name: "ENABLE.OBJECT"},
	0x81BD: {Name: "PUSHBUTTON.PROPERTIES"},
	0x81BE: {Name: "SET.DIALOG.DEFAULT"},
	0x81BF: {Name: "FILTER"},
	0x81C0: {Name: "FILTER.SHOW.ALL"},
	0x81C1: {Name: "CLEAR.OUTLINE"},
	0x81C2: {Name: "FUNCTION.WIZARD"},
	0x81C3: {Name: "ADD.LIST.ITEM"},
	0x81C4: {Name: "SET.LIST.ITEM"},
	0x81C5: {Name: "REMOVE.LIST.ITEM"},
	0x81C6: {Name: "SELECT.LIST.ITEM"},
	0x81C7: {Name: "SET.CONTROL.VALUE"},
	0x81C8: {Name: "SAVE.COPY.AS"},
	0x81CA: {Name: "OPTIONS.LISTS.ADD"},
	0x81CB: {Name: "OPTIONS.LISTS.DELETE"},
	0x81CC: {Name: "SERIES.AXES"},
	0x81CD: {Name: "SERIES.X"},
	0x81CE: {Name: "SERIES.Y"},
	0x81CF: {Name: "ERRORBAR.X"},
	0x81D0: {Name: "ERRORBAR.Y"},
	0x81D1: {Name: "FORMAT.CHART"},
	0x81D2: {Name: "SERIES.ORDER"},
	0x81D3: {Name: "MAIL.LOGOFF"},
	0x81D4: {Name: "CLEAR.ROUTING.SLIP"},
	0x81D5: {Name: "APP.ACTIVATE.MICROSOFT"},
	0x81D6: {Name: "MAIL.EDIT.MAILER"},
	0x81D7: {Name: "ON.SHEET"},
	0x81D8: {Name: "STANDARD.WIDTH"},
	0x81D9: {Name: "SCENARIO.MERGE"},
	0x81DA: {Name: "SUMMARY.INFO"},
	0x81DB: {Name: "FIND.FILE"},
	0x81DC: {Name: "ACTIVE.CELL.FONT"},
	0x81DD: {Name: "ENABLE.TIPWIZARD"},
	0x81DE: {Name: "VBA.MAKE.ADDIN"},
	0x81E0: {Name: "INSERTDATATABLE"},
	0x81E1: {Name: "WORKGROUP.OPTIONS"},
	0x81E2: {Name: "MAIL.SEND.MAILER"},
	0x81E5: {Name: "AUTOCORRECT"},
	0x81E9: {Name: "POST.DOCUMENT"},
	0x81EB: {Name: "PICKLIST"},
	0x81ED: {Name: "VIEW.SHOW"},
	0x81EE: {Name: "VIEW.DEFINE"},
	0x81EF: {Name: "VIEW.DELETE"},
	0x81FD: {Name: "SHEET.BACKGROUND"},
	0x81FE: {Name: "INSERT.MAP.OBJECT"},
	0x81FF: {Name: "OPTIONS.MENONO"},
	0x8205: {Name: "MSOCHECKS"},
	0x8206: {Name: "NORMAL"},
	0x8207: {Name: "LAYOUT"},
	0x8208: {Name: "RM.PRINT.AREA"},
	0x8209: {Name: "CLEAR.PRINT.AREA"},
	0x820A: {Name: "ADD.PRINT.AREA"},
	0x820B: {Name: "MOVE.BRK"},
	0x8221: {Name: "HIDECURR.NOTE"},
	0x8222: {Name: "HIDEALL.NOTES"},
	0x8223: {Name: "DELETE.NOTE"},
	0x8224: {Name: "TRAVERSE.NOTES"},
	0x8225: {Name: "ACTIVATE.NOTES"},
	0x826C: {Name: "PROTECT.REVISIONS"},
	0x826D: {Name: "UNPROTECT.REVISIONS"},
	0x8287: {Name: "OPTIONS.ME"},
	0x828D: {Name: "WEB.PUBLISH"},
	0x829B: {Name: "NEWWEBQUERY"},
	0x82A1: {Name: "PIVOT.TABLE.CHART"},
	0x82F1: {Name: "OPTIONS.SAVE"},
	0x82F3: {Name: "OPTIONS.SPELL"},
	0x8328: {Name: "HIDEALL.INKANNOTS"},
}

// LookupFunction returns the function-table entry for idx and whether it
// was found. Callers needing arity information should check HasArity.
func LookupFunction(idx uint16) (Function, bool) {
	f, ok := functionNames[idx]
	return f, ok
}

// UserDefinedFunctionIndex is the reserved Func/FuncVar index whose name is
// sourced from the first popped argument rather than this table.
const UserDefinedFunctionIndex = 0x00FF
