package value

import "strconv"

// ToNumber implements the numeric coercion rule: true→1,
// false→0, null→0, empty string→0, otherwise parse a string as a decimal
// number (leading sign, fractional part, exponent all accepted); strings
// that do not fully parse, arrays, and non-empty objects yield a NaN
// failure. An empty object coerces to 0, matching its falsy/empty-string
// treatment elsewhere in the value model.
func ToNumber(v Value) (Value, *Error) {
	switch v.kind {
	case KindNumber:
		return v, nil
	case KindBool:
		if v.b {
			return Int(1), nil
		}
		return Int(0), nil
	case KindNull:
		return Int(0), nil
	case KindString:
		if v.s == "" {
			return Int(0), nil
		}
		if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return Int(i), nil
		}
		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return Float(f), nil
		}
		return Null, NewError(NaN, "cannot coerce string to number: "+v.s)
	case KindObject:
		if len(v.obj) == 0 {
			return Int(0), nil
		}
		return Null, NewError(NaN, "cannot coerce non-empty object to number")
	case KindArray:
		return Null, NewError(NaN, "cannot coerce array to number")
	default:
		return Null, NewError(NaN, "cannot coerce "+v.kind.String()+" to number")
	}
}

// ToNumberStrict rejects every non-numeric Kind (used by operators such as
// max/min/abs/ceil/floor that reject non-numeric inputs strictly rather
// than coercing them).
func ToNumberStrict(v Value) (Value, *Error) {
	if v.kind != KindNumber {
		return Null, NewError(InvalidArguments, "expected number, got "+v.kind.String())
	}
	return v, nil
}

// AddNumbers adds two numeric Values, staying integer iff both operands are.
func AddNumbers(a, b Value) Value {
	if a.isInt && b.isInt {
		return Int(a.i + b.i)
	}
	return Float(a.Float64() + b.Float64())
}

// SubNumbers subtracts b from a, staying integer iff both operands are.
func SubNumbers(a, b Value) Value {
	if a.isInt && b.isInt {
		return Int(a.i - b.i)
	}
	return Float(a.Float64() - b.Float64())
}

// MulNumbers multiplies two numeric Values, staying integer iff both operands are.
func MulNumbers(a, b Value) Value {
	if a.isInt && b.isInt {
		return Int(a.i * b.i)
	}
	return Float(a.Float64() * b.Float64())
}

// NegNumber negates a numeric Value, preserving the integer discriminator.
func NegNumber(a Value) Value {
	if a.isInt {
		return Int(-a.i)
	}
	return Float(-a.f)
}
