package value

// Truthy implements the uniform truthiness rule: Null, false,
// 0, empty string, empty array, and a zero-key object are falsy; everything
// else — including a non-empty object — is truthy.
func Truthy(v Value) bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.Float64() != 0
	case KindString:
		return v.s != ""
	case KindArray:
		return len(v.arr) != 0
	case KindObject:
		return len(v.obj) != 0
	case KindDateTime, KindDuration:
		return true
	default:
		return false
	}
}
