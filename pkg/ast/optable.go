package ast

// OpTag identifies a built-in operator.
type OpTag int

const (
	OpAdd OpTag = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAbs
	OpCeil
	OpFloor
	OpMin
	OpMax

	OpEq
	OpNeq
	OpStrictEq
	OpStrictNeq
	OpLt
	OpLe
	OpGt
	OpGe

	OpAnd
	OpOr
	OpCoalesce
	OpIf

	OpMap
	OpFilter
	OpReduce
	OpAll
	OpSome
	OpNone
	OpMerge
	OpIn
	OpLength
	OpSlice
	OpSort
	OpFind

	OpCat
	OpSubstr
	OpStartsWith
	OpEndsWith
	OpUpper
	OpLower
	OpTrim
	OpSplit

	OpDatetime
	OpTimestamp

	OpThrow
	OpTry

	OpType
)

// opInfo describes flattening/folding eligibility for one operator.
type opInfo struct {
	name         string
	associative  bool // absorbs same-tag children during flattening
	shortCircuit bool // folds prefix-only, must not evaluate past the first decisive operand
	pure         bool // deterministic and data-independent; eligible for constant folding
}

// opTable maps the canonical JSON key (the single object key the parser
// dispatches on) to its OpTag and flattening/folding metadata. "var" is
// handled as an alias for "val" at the parser level, not via this table.
var opTable = map[string]struct {
	tag  OpTag
	info opInfo
}{
	"+":   {OpAdd, opInfo{"+", true, false, true}},
	"-":   {OpSub, opInfo{"-", false, false, true}},
	"*":   {OpMul, opInfo{"*", true, false, true}},
	"/":   {OpDiv, opInfo{"/", false, false, true}},
	"%":   {OpMod, opInfo{"%", false, false, true}},
	"abs": {OpAbs, opInfo{"abs", false, false, true}},

	"ceil":  {OpCeil, opInfo{"ceil", false, false, true}},
	"floor": {OpFloor, opInfo{"floor", false, false, true}},
	"min":   {OpMin, opInfo{"min", true, false, true}},
	"max":   {OpMax, opInfo{"max", true, false, true}},

	"==":  {OpEq, opInfo{"==", false, false, true}},
	"!=":  {OpNeq, opInfo{"!=", false, false, true}},
	"===": {OpStrictEq, opInfo{"===", false, false, true}},
	"!==": {OpStrictNeq, opInfo{"!==", false, false, true}},
	"<":   {OpLt, opInfo{"<", false, false, true}},
	"<=":  {OpLe, opInfo{"<=", false, false, true}},
	">":   {OpGt, opInfo{">", false, false, true}},
	">=":  {OpGe, opInfo{">=", false, false, true}},

	"and": {OpAnd, opInfo{"and", true, true, true}},
	"&&":  {OpAnd, opInfo{"&&", true, true, true}},
	"or":  {OpOr, opInfo{"or", true, true, true}},
	"||":  {OpOr, opInfo{"||", true, true, true}},
	"??":  {OpCoalesce, opInfo{"??", false, true, true}},
	"if":  {OpIf, opInfo{"if", false, true, false}},

	"map":    {OpMap, opInfo{"map", false, false, false}},
	"filter": {OpFilter, opInfo{"filter", false, false, false}},
	"reduce": {OpReduce, opInfo{"reduce", false, false, false}},
	"all":    {OpAll, opInfo{"all", false, false, false}},
	"some":   {OpSome, opInfo{"some", false, false, false}},
	"none":   {OpNone, opInfo{"none", false, false, false}},
	"merge":  {OpMerge, opInfo{"merge", true, false, true}},
	"in":     {OpIn, opInfo{"in", false, false, true}},
	"length": {OpLength, opInfo{"length", false, false, true}},
	"slice":  {OpSlice, opInfo{"slice", false, false, true}},
	"sort":   {OpSort, opInfo{"sort", false, false, false}},
	"find":   {OpFind, opInfo{"find", false, false, false}},

	"cat":         {OpCat, opInfo{"cat", true, false, true}},
	"substr":      {OpSubstr, opInfo{"substr", false, false, true}},
	"starts_with": {OpStartsWith, opInfo{"starts_with", false, false, true}},
	"ends_with":   {OpEndsWith, opInfo{"ends_with", false, false, true}},
	"upper":       {OpUpper, opInfo{"upper", false, false, true}},
	"lower":       {OpLower, opInfo{"lower", false, false, true}},
	"trim":        {OpTrim, opInfo{"trim", false, false, true}},
	"split":       {OpSplit, opInfo{"split", false, false, true}},

	"datetime":  {OpDatetime, opInfo{"datetime", false, false, true}},
	"timestamp": {OpTimestamp, opInfo{"timestamp", false, false, true}},

	"throw": {OpThrow, opInfo{"throw", false, false, false}},
	"try":   {OpTry, opInfo{"try", false, true, false}},

	"type": {OpType, opInfo{"type", false, false, true}},
}

// LookupOp returns the OpTag and metadata for a JSON operator key, or
// ok == false if name is not a built-in operator (the parser then emits a
// KCustom node for it).
func LookupOp(name string) (tag OpTag, associative bool, shortCircuit bool, pure bool, ok bool) {
	e, found := opTable[name]
	if !found {
		return 0, false, false, false, false
	}
	return e.tag, e.info.associative, e.info.shortCircuit, e.info.pure, true
}

// OpName returns the canonical JSON key for tag (used in error messages).
func OpName(tag OpTag) string {
	for name, e := range opTable {
		if e.tag == tag && e.info.name == name {
			return name
		}
	}
	for _, e := range opTable {
		if e.tag == tag {
			return e.info.name
		}
	}
	return "?"
}
