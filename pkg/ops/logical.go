package ops

import "github.com/sandrolain/rulelogic/pkg/value"

// And implements `and`/`&&` over already-evaluated operands: first falsy
// operand, else the last operand. Used only by the constant folder, where
// every operand is already a Literal and evaluating all of them ahead of
// time has no observable effect. The evaluator's own and/or dispatch
// short-circuits over un-evaluated sub-expressions directly and does not
// call this function.
func And(args []value.Value) (value.Value, *value.Error) {
	if len(args) == 0 {
		return value.Null, nil
	}
	for _, v := range args[:len(args)-1] {
		if !value.Truthy(v) {
			return v, nil
		}
	}
	return args[len(args)-1], nil
}

// Or implements `or`/`||`: first truthy operand, else the last operand.
func Or(args []value.Value) (value.Value, *value.Error) {
	if len(args) == 0 {
		return value.Null, nil
	}
	for _, v := range args[:len(args)-1] {
		if value.Truthy(v) {
			return v, nil
		}
	}
	return args[len(args)-1], nil
}

// Coalesce implements `??`: first non-null operand, else Null.
func Coalesce(args []value.Value) (value.Value, *value.Error) {
	for _, v := range args {
		if !v.IsNull() {
			return v, nil
		}
	}
	return value.Null, nil
}
