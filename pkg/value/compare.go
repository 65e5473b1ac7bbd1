package value

import "strings"

// CompareChain is used by the variadic, chained comparison operators
// (`<`, `<=`, `>`, `>=`): for two string operands, string
// ordering applies; two DateTimes or two Durations compare
// chronologically; otherwise both sides are numerically coerced and
// failure short-circuits the whole chain to false (ok == false).
func CompareChain(a, b Value) (cmp int, ok bool) {
	if a.kind == KindString && b.kind == KindString {
		return strings.Compare(a.s, b.s), true
	}
	if a.kind == KindDateTime && b.kind == KindDateTime {
		return compareDateTime(a, b), true
	}
	if a.kind == KindDuration && b.kind == KindDuration {
		return compareInt64(a.durSeconds, b.durSeconds), true
	}
	an, aerr := ToNumber(a)
	if aerr != nil {
		return 0, false
	}
	bn, berr := ToNumber(b)
	if berr != nil {
		return 0, false
	}
	af, bf := an.Float64(), bn.Float64()
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

func compareDateTime(a, b Value) int {
	if a.sec != b.sec {
		return compareInt64(a.sec, b.sec)
	}
	return compareInt64(int64(a.nsec), int64(b.nsec))
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sortRank implements the cross-type ordering required of `sort`:
// null < false < true < numbers < strings. Arrays/objects rarely appear
// as sort keys in practice; they rank after strings so sort remains
// total rather than panicking on unexpected input.
func sortRank(v Value) int {
	switch v.kind {
	case KindNull:
		return 0
	case KindBool:
		if !v.b {
			return 1
		}
		return 2
	case KindNumber:
		return 3
	case KindString:
		return 4
	case KindDateTime:
		return 5
	case KindDuration:
		return 6
	default:
		return 7
	}
}

// CompareForSort orders two sort-key values per the cross-type rule above,
// falling back to a same-kind comparison when ranks tie.
func CompareForSort(a, b Value) int {
	ra, rb := sortRank(a), sortRank(b)
	if ra != rb {
		return compareInt64(int64(ra), int64(rb))
	}
	switch a.kind {
	case KindBool, KindNull:
		return 0
	case KindNumber:
		af, bf := a.Float64(), b.Float64()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	case KindString:
		return strings.Compare(a.s, b.s)
	case KindDateTime:
		return compareDateTime(a, b)
	case KindDuration:
		return compareInt64(a.durSeconds, b.durSeconds)
	default:
		return 0
	}
}
