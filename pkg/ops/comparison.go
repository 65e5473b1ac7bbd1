package ops

import "github.com/sandrolain/rulelogic/pkg/value"

// Eq implements loose `==`.
func Eq(args []value.Value) (value.Value, *value.Error) {
	a, b, err := pair(args, "==")
	if err != nil {
		return value.Null, err
	}
	return value.Bool(value.Equal(a, b)), nil
}

// Neq implements loose `!=`.
func Neq(args []value.Value) (value.Value, *value.Error) {
	a, b, err := pair(args, "!=")
	if err != nil {
		return value.Null, err
	}
	return value.Bool(!value.Equal(a, b)), nil
}

// StrictEq implements `===`.
func StrictEq(args []value.Value) (value.Value, *value.Error) {
	a, b, err := pair(args, "===")
	if err != nil {
		return value.Null, err
	}
	return value.Bool(value.StrictEqual(a, b)), nil
}

// StrictNeq implements `!==`.
func StrictNeq(args []value.Value) (value.Value, *value.Error) {
	a, b, err := pair(args, "!==")
	if err != nil {
		return value.Null, err
	}
	return value.Bool(!value.StrictEqual(a, b)), nil
}

func pair(args []value.Value, op string) (value.Value, value.Value, *value.Error) {
	if len(args) != 2 {
		return value.Null, value.Null, value.NewError(value.InvalidArguments, "\""+op+"\" requires exactly two operands")
	}
	return args[0], args[1], nil
}

// Relation identifies one of the four variadic chained comparisons.
type Relation int

const (
	RelLt Relation = iota
	RelLe
	RelGt
	RelGe
)

// Chain implements the variadic, chained `<`, `<=`, `>`, `>=` operators:
// true iff every consecutive pair satisfies rel; a pair that cannot be
// ordered (non-numeric, non-string, mixed) short-circuits the whole
// chain to false rather than raising an error.
func Chain(args []value.Value, rel Relation) (value.Value, *value.Error) {
	if len(args) < 2 {
		return value.Bool(true), nil
	}
	for i := 0; i < len(args)-1; i++ {
		cmp, ok := value.CompareChain(args[i], args[i+1])
		if !ok {
			return value.Bool(false), nil
		}
		var holds bool
		switch rel {
		case RelLt:
			holds = cmp < 0
		case RelLe:
			holds = cmp <= 0
		case RelGt:
			holds = cmp > 0
		case RelGe:
			holds = cmp >= 0
		}
		if !holds {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}
