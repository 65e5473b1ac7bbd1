package ops

import (
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// Call dispatches to the pure-operator implementation for tag, given
// already-evaluated operands. It is shared by the parser's constant
// folder (pkg/parser) and the evaluator (pkg/evaluator) so that constant
// folding and runtime evaluation of the same expression always agree,
// holding by construction rather than by two implementations kept in
// sync by hand. ok is false for operators that are not pure (if, map,
// filter, reduce, all, some, none, sort, find, throw, try) — those can
// only be evaluated against a scope and live entirely in pkg/evaluator.
func Call(tag ast.OpTag, args []value.Value) (result value.Value, err *value.Error, ok bool) {
	switch tag {
	case ast.OpAdd:
		result, err = Add(args)
	case ast.OpSub:
		result, err = Sub(args)
	case ast.OpMul:
		result, err = Mul(args)
	case ast.OpDiv:
		result, err = Div(args)
	case ast.OpMod:
		result, err = Mod(args)
	case ast.OpAbs:
		result, err = Abs(args)
	case ast.OpCeil:
		result, err = Ceil(args)
	case ast.OpFloor:
		result, err = Floor(args)
	case ast.OpMin:
		result, err = Min(args)
	case ast.OpMax:
		result, err = Max(args)
	case ast.OpEq:
		result, err = Eq(args)
	case ast.OpNeq:
		result, err = Neq(args)
	case ast.OpStrictEq:
		result, err = StrictEq(args)
	case ast.OpStrictNeq:
		result, err = StrictNeq(args)
	case ast.OpLt:
		result, err = Chain(args, RelLt)
	case ast.OpLe:
		result, err = Chain(args, RelLe)
	case ast.OpGt:
		result, err = Chain(args, RelGt)
	case ast.OpGe:
		result, err = Chain(args, RelGe)
	case ast.OpAnd:
		result, err = And(args)
	case ast.OpOr:
		result, err = Or(args)
	case ast.OpCoalesce:
		result, err = Coalesce(args)
	case ast.OpMerge:
		result, err = Merge(args)
	case ast.OpIn:
		result, err = In(args)
	case ast.OpLength:
		result, err = Length(args)
	case ast.OpSlice:
		result, err = Slice(args)
	case ast.OpCat:
		result, err = Cat(args)
	case ast.OpSubstr:
		result, err = Substr(args)
	case ast.OpStartsWith:
		result, err = StartsWith(args)
	case ast.OpEndsWith:
		result, err = EndsWith(args)
	case ast.OpUpper:
		result, err = Upper(args)
	case ast.OpLower:
		result, err = Lower(args)
	case ast.OpTrim:
		result, err = Trim(args)
	case ast.OpSplit:
		result, err = Split(args)
	case ast.OpDatetime:
		result, err = Datetime(args)
	case ast.OpTimestamp:
		result, err = Timestamp(args)
	case ast.OpType:
		result, err = Type(args)
	default:
		return value.Null, nil, false
	}
	return result, err, true
}
