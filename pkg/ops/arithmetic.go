// Package ops implements the operators that are pure and data-independent:
// given already-evaluated operand Values, they always return the same
// result. This is exactly the operator subset constant folder
// can fold ahead of time, so the parser/optimizer (pkg/parser) and the
// evaluator (pkg/evaluator) share this single implementation — the
// optimizer calls it with literal operands at parse time, the evaluator
// calls it with evaluated operands at run time, and invariant
// ("the optimizer produces a Literal node equal to the evaluator's
// result") holds by construction rather than by careful duplication.
//
// Operators that must observe short-circuiting (and/or/??) appear here
// only in a fold form over already-evaluated operands (see logical.go),
// which the constant folder uses; the evaluator short-circuits them over
// un-evaluated sub-expressions itself. Operators that need to evaluate
// sub-expression bodies against a scope (if/map/filter/reduce/all/some/
// none/sort/find/throw/try) are NOT here — they live in pkg/evaluator
// because they cannot be reduced to "a function of already evaluated
// arguments".
package ops

import (
	"math"

	"github.com/sandrolain/rulelogic/pkg/value"
)

// Add implements `+` including the Duration/DateTime overloads
// ("DateTime ± Duration shifts").
func Add(args []value.Value) (value.Value, *value.Error) {
	if len(args) == 0 {
		return value.Int(0), nil
	}
	if len(args) == 1 {
		return value.ToNumber(args[0])
	}
	acc := args[0]
	for _, next := range args[1:] {
		var err *value.Error
		acc, err = addPair(acc, next)
		if err != nil {
			return value.Null, err
		}
	}
	return acc, nil
}

func addPair(a, b value.Value) (value.Value, *value.Error) {
	switch {
	case a.Kind() == value.KindDateTime && b.Kind() == value.KindDuration:
		return value.ShiftDateTime(a, b), nil
	case a.Kind() == value.KindDuration && b.Kind() == value.KindDateTime:
		return value.ShiftDateTime(b, a), nil
	case a.Kind() == value.KindDuration && b.Kind() == value.KindDuration:
		return value.AddDurations(a, b), nil
	}
	an, err := value.ToNumber(a)
	if err != nil {
		return value.Null, err
	}
	bn, err := value.ToNumber(b)
	if err != nil {
		return value.Null, err
	}
	return checkFinite(value.AddNumbers(an, bn))
}

// Sub implements `-`: subtraction for 2+ operands, unary negation for 1.
func Sub(args []value.Value) (value.Value, *value.Error) {
	if len(args) == 0 {
		return value.Null, value.NewError(value.InvalidArguments, "\"-\" requires at least one operand")
	}
	if len(args) == 1 {
		n, err := value.ToNumber(args[0])
		if err != nil {
			return value.Null, err
		}
		return value.NegNumber(n), nil
	}
	acc := args[0]
	for _, next := range args[1:] {
		var err *value.Error
		acc, err = subPair(acc, next)
		if err != nil {
			return value.Null, err
		}
	}
	return acc, nil
}

func subPair(a, b value.Value) (value.Value, *value.Error) {
	switch {
	case a.Kind() == value.KindDateTime && b.Kind() == value.KindDateTime:
		return value.DiffDateTime(a, b), nil
	case a.Kind() == value.KindDateTime && b.Kind() == value.KindDuration:
		return value.ShiftDateTime(a, value.DurationFromSeconds(-b.DurationSeconds())), nil
	case a.Kind() == value.KindDuration && b.Kind() == value.KindDuration:
		return value.SubDurations(a, b), nil
	}
	an, err := value.ToNumber(a)
	if err != nil {
		return value.Null, err
	}
	bn, err := value.ToNumber(b)
	if err != nil {
		return value.Null, err
	}
	return checkFinite(value.SubNumbers(an, bn))
}

// Mul implements `*`, including the Duration × number scaling overload.
func Mul(args []value.Value) (value.Value, *value.Error) {
	if len(args) == 0 {
		return value.Int(1), nil
	}
	if len(args) == 1 {
		return value.ToNumber(args[0])
	}
	acc := args[0]
	for _, next := range args[1:] {
		var err *value.Error
		acc, err = mulPair(acc, next)
		if err != nil {
			return value.Null, err
		}
	}
	return acc, nil
}

func mulPair(a, b value.Value) (value.Value, *value.Error) {
	switch {
	case a.Kind() == value.KindDuration && b.Kind() == value.KindNumber:
		return value.ScaleDuration(a, b.Float64()), nil
	case b.Kind() == value.KindDuration && a.Kind() == value.KindNumber:
		return value.ScaleDuration(b, a.Float64()), nil
	}
	an, err := value.ToNumber(a)
	if err != nil {
		return value.Null, err
	}
	bn, err := value.ToNumber(b)
	if err != nil {
		return value.Null, err
	}
	return checkFinite(value.MulNumbers(an, bn))
}

// Div implements `/`: zero operands is Invalid Arguments, any division by
// zero or non-numeric operand is NaN. Division always yields a float
// result (no integer-truncating division), since "/" is not named in the
// integer-stays-integer list of (only +, -, * are).
func Div(args []value.Value) (value.Value, *value.Error) {
	if len(args) == 0 {
		return value.Null, value.NewError(value.InvalidArguments, "\"/\" requires at least one operand")
	}
	an, err := value.ToNumber(args[0])
	if err != nil {
		return value.Null, value.NewError(value.NaN, "dividend is not numeric")
	}
	if len(args) == 1 {
		return an, nil
	}
	acc := an.Float64()
	for _, next := range args[1:] {
		bn, err := value.ToNumber(next)
		if err != nil {
			return value.Null, value.NewError(value.NaN, "divisor is not numeric")
		}
		bf := bn.Float64()
		if bf == 0 {
			return value.Null, value.NewError(value.NaN, "division by zero")
		}
		acc = acc / bf
	}
	return value.Float(acc), nil
}

// Mod implements `%`: left-to-right modulo over 2+ operands.
func Mod(args []value.Value) (value.Value, *value.Error) {
	if len(args) < 2 {
		return value.Null, value.NewError(value.InvalidArguments, "\"%\" requires at least two operands")
	}
	acc, err := value.ToNumber(args[0])
	if err != nil {
		return value.Null, value.NewError(value.NaN, "operand is not numeric")
	}
	for _, next := range args[1:] {
		bn, err := value.ToNumber(next)
		if err != nil {
			return value.Null, value.NewError(value.NaN, "operand is not numeric")
		}
		if bn.Float64() == 0 {
			return value.Null, value.NewError(value.NaN, "modulo by zero")
		}
		if acc.IsInt() && bn.IsInt() {
			acc = value.Int(acc.Int64() % bn.Int64())
		} else {
			acc = value.Float(math.Mod(acc.Float64(), bn.Float64()))
		}
	}
	return acc, nil
}

func checkFinite(v value.Value) (value.Value, *value.Error) {
	f := v.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return value.Null, value.NewError(value.NaN, "arithmetic result is not a finite number")
	}
	return v, nil
}

// roundingOp applies fn to a single number or element-wise to an array of
// numbers, rejecting non-numeric input strictly (Invalid Arguments, not
// NaN — .
func roundingOp(args []value.Value, fn func(float64) float64, intFn func(int64) int64) (value.Value, *value.Error) {
	if len(args) != 1 {
		return value.Null, value.NewError(value.InvalidArguments, "expects exactly one operand")
	}
	apply := func(n value.Value) (value.Value, *value.Error) {
		nv, err := value.ToNumberStrict(n)
		if err != nil {
			return value.Null, err
		}
		if nv.IsInt() {
			return value.Int(intFn(nv.Int64())), nil
		}
		return value.Float(fn(nv.Float64())), nil
	}
	v := args[0]
	if v.Kind() == value.KindArray {
		items := v.Items()
		out := make([]value.Value, len(items))
		for i, it := range items {
			r, err := apply(it)
			if err != nil {
				return value.Null, err
			}
			out[i] = r
		}
		return value.Array(out), nil
	}
	return apply(v)
}

// Abs implements `abs`.
func Abs(args []value.Value) (value.Value, *value.Error) {
	return roundingOp(args, math.Abs, func(i int64) int64 {
		if i < 0 {
			return -i
		}
		return i
	})
}

func intIdentity(i int64) int64 { return i }

// Ceil implements `ceil`.
func Ceil(args []value.Value) (value.Value, *value.Error) {
	return roundingOp(args, math.Ceil, intIdentity)
}

// Floor implements `floor`.
func Floor(args []value.Value) (value.Value, *value.Error) {
	return roundingOp(args, math.Floor, intIdentity)
}

// Min implements `min`: variadic over numbers only (strict, no coercion).
func Min(args []value.Value) (value.Value, *value.Error) {
	return minMax(args, true)
}

// Max implements `max`: variadic over numbers only (strict, no coercion).
func Max(args []value.Value) (value.Value, *value.Error) {
	return minMax(args, false)
}

func minMax(args []value.Value, wantMin bool) (value.Value, *value.Error) {
	if len(args) == 0 {
		return value.Null, value.NewError(value.InvalidArguments, "requires at least one operand")
	}
	best, err := value.ToNumberStrict(args[0])
	if err != nil {
		return value.Null, err
	}
	for _, next := range args[1:] {
		nv, err := value.ToNumberStrict(next)
		if err != nil {
			return value.Null, err
		}
		if (wantMin && nv.Float64() < best.Float64()) || (!wantMin && nv.Float64() > best.Float64()) {
			best = nv
		}
	}
	return best, nil
}
