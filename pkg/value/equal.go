package value

// StrictEqual implements `===`: same variant and contents, no coercion.
func StrictEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.Float64() == b.Float64()
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !StrictEqual(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for _, pa := range a.obj {
			bv, ok := b.Get(pa.Key)
			if !ok || !StrictEqual(pa.Val, bv) {
				return false
			}
		}
		return true
	case KindDateTime:
		return a.sec == b.sec && a.nsec == b.nsec
	case KindDuration:
		return a.durSeconds == b.durSeconds
	default:
		return false
	}
}

// Equal implements loose `==`: scalars coerce per JSONLogic rules (strings
// compare numerically to numbers, booleans coerce to 0/1); `null == null`
// only — null never coerces for equality purposes even though it coerces
// to 0 elsewhere.
func Equal(a, b Value) bool {
	if a.kind == KindNull || b.kind == KindNull {
		return a.kind == KindNull && b.kind == KindNull
	}
	if a.kind == b.kind {
		return StrictEqual(a, b)
	}

	// Scalar cross-type coercion: bool/number/string compare numerically.
	isScalar := func(k Kind) bool {
		return k == KindBool || k == KindNumber || k == KindString
	}
	if isScalar(a.kind) && isScalar(b.kind) {
		an, aerr := ToNumber(a)
		bn, berr := ToNumber(b)
		if aerr != nil || berr != nil {
			return false
		}
		return an.Float64() == bn.Float64()
	}

	// Different non-scalar kinds are never loosely equal.
	return false
}
