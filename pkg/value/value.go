// Package value implements the tagged value model shared by rule data and
// evaluation results. A Value is a small, trivially copyable
// struct. String payloads are ordinary Go strings and array and object
// backings are ordinary Go slices; none of them is allocated from an
// [arena.Arena]. Go's garbage collector reclaims them once the evaluation
// result is dropped, without the manual lifetime bookkeeping a bump
// allocator gives a non-GC'd language.
package value

import "fmt"

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindDateTime
	KindDuration
)

// String returns the lowercase type name used by the `type` operator
// and in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindDateTime:
		return "datetime"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Pair is one key/value entry of an Object value. Object preserves
// insertion order; lookups are linear, which is acceptable for the small
// objects JSON rules and data typically carry.
type Pair struct {
	Key string
	Val Value
}

// Value is a tagged union over the JSON-plus-temporal value space of
// Zero Value is KindNull.
type Value struct {
	kind Kind

	b bool

	// Number: isInt selects which of i/f is authoritative. Integer
	// arithmetic stays integer; mixing with a float operand promotes to f.
	isInt bool
	i     int64
	f     float64

	s string

	arr []Value
	obj []Pair

	// DateTime: instant in UTC, nanosecond precision.
	sec  int64 // unix seconds
	nsec int32

	// Duration: normalized total whole seconds. Spec carries only
	// day/hour/minute/second granularity ("<d>d:<h>h:<m>m:<s>s").
	durSeconds int64
}

// Null is the singleton falsy null value.
var Null = Value{kind: KindNull}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer-discriminated numeric Value.
func Int(i int64) Value { return Value{kind: KindNumber, isInt: true, i: i} }

// Float returns a float-discriminated numeric Value.
func Float(f float64) Value { return Value{kind: KindNumber, f: f} }

// String returns a string Value. The caller is responsible for arena
// ownership if the string must outlive a transient buffer (see
// [arena.Arena.AllocString]); Value itself stores whatever Go string it
// is given.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array Value over items (arena-backed or otherwise).
func Array(items []Value) Value { return Value{kind: KindArray, arr: items} }

// Object returns an object Value over pairs, preserving pairs' order.
func Object(pairs []Pair) Value { return Value{kind: KindObject, obj: pairs} }

// DateTimeFromUnix returns a DateTime Value for the given UTC instant.
func DateTimeFromUnix(sec int64, nsec int32) Value {
	return Value{kind: KindDateTime, sec: sec, nsec: nsec}
}

// DurationFromSeconds returns a Duration Value normalized to total seconds.
func DurationFromSeconds(totalSeconds int64) Value {
	return Value{kind: KindDuration, durSeconds: totalSeconds}
}

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns the string tag used by the `type` operator.
func (v Value) TypeName() string { return v.kind.String() }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.b }

// IsInt reports whether a KindNumber value carries its integer discriminator.
func (v Value) IsInt() bool { return v.kind == KindNumber && v.isInt }

// Int64 returns the integer payload, converting from float if necessary.
func (v Value) Int64() int64 {
	if v.isInt {
		return v.i
	}
	return int64(v.f)
}

// Float64 returns the numeric payload as a float64 regardless of discriminator.
func (v Value) Float64() float64 {
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

// Str returns the string payload; only meaningful when Kind() == KindString.
func (v Value) Str() string { return v.s }

// Items returns the array backing; only meaningful when Kind() == KindArray.
func (v Value) Items() []Value { return v.arr }

// Pairs returns the object backing; only meaningful when Kind() == KindObject.
func (v Value) Pairs() []Pair { return v.obj }

// Get looks up a key in an object value, linear scan over Pairs.
func (v Value) Get(key string) (Value, bool) {
	for _, p := range v.obj {
		if p.Key == key {
			return p.Val, true
		}
	}
	return Null, false
}

// UnixSeconds and Nanos expose the DateTime payload.
func (v Value) UnixSeconds() int64 { return v.sec }
func (v Value) Nanos() int32       { return v.nsec }

// DurationSeconds exposes the Duration payload.
func (v Value) DurationSeconds() int64 { return v.durSeconds }

// GoString renders a Value for debugging/error messages.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindNumber:
		if v.isInt {
			return fmt.Sprintf("%d", v.i)
		}
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindArray:
		return fmt.Sprintf("array[%d]", len(v.arr))
	case KindObject:
		return fmt.Sprintf("object[%d]", len(v.obj))
	case KindDateTime:
		return fmt.Sprintf("datetime(%d)", v.sec)
	case KindDuration:
		return fmt.Sprintf("duration(%ds)", v.durSeconds)
	default:
		return "<invalid>"
	}
}
