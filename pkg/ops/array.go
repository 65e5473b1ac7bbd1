package ops

import "github.com/sandrolain/rulelogic/pkg/value"

// Merge flattens a single level: non-array operands are appended as-is,
// array operands have their elements appended.
func Merge(args []value.Value) (value.Value, *value.Error) {
	out := make([]value.Value, 0, len(args))
	for _, v := range args {
		if v.Kind() == value.KindArray {
			out = append(out, v.Items()...)
		} else {
			out = append(out, v)
		}
	}
	return value.Array(out), nil
}

// In implements membership: `[needle, array]` or `[needle, string]` (substring).
func In(args []value.Value) (value.Value, *value.Error) {
	if len(args) != 2 {
		return value.Null, value.NewError(value.InvalidArguments, "\"in\" requires exactly two operands")
	}
	needle, haystack := args[0], args[1]
	switch haystack.Kind() {
	case value.KindArray:
		for _, item := range haystack.Items() {
			if value.StrictEqual(needle, item) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	case value.KindString:
		if needle.Kind() != value.KindString {
			return value.Null, value.NewError(value.InvalidArguments, "\"in\" substring needle must be a string")
		}
		return value.Bool(containsSubstring(haystack.Str(), needle.Str())), nil
	default:
		return value.Null, value.NewError(value.InvalidArguments, "\"in\" requires an array or string haystack")
	}
}

func containsSubstring(s, sub string) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// Length returns string character count, array length, or object key count.
func Length(args []value.Value) (value.Value, *value.Error) {
	if len(args) != 1 {
		return value.Null, value.NewError(value.InvalidArguments, "\"length\" requires exactly one operand")
	}
	v := args[0]
	switch v.Kind() {
	case value.KindString:
		return value.Int(int64(len([]rune(v.Str())))), nil
	case value.KindArray:
		return value.Int(int64(len(v.Items()))), nil
	case value.KindObject:
		return value.Int(int64(len(v.Pairs()))), nil
	default:
		return value.Null, value.NewError(value.InvalidArguments, "\"length\" requires a string, array, or object")
	}
}

// Slice implements Python-style slicing of a string or array: `[v, start?,
// end?, step?]`. Negative indices count from the end, out-of-range bounds
// clamp, step 0 is an error, and a missing (Null) collection returns Null.
func Slice(args []value.Value) (value.Value, *value.Error) {
	if len(args) < 1 || len(args) > 4 {
		return value.Null, value.NewError(value.InvalidArguments, "\"slice\" takes 1 to 4 operands")
	}
	v := args[0]
	if v.IsNull() {
		return value.Null, nil
	}

	var length int
	switch v.Kind() {
	case value.KindString:
		length = len([]rune(v.Str()))
	case value.KindArray:
		length = len(v.Items())
	default:
		return value.Null, value.NewError(value.InvalidArguments, "\"slice\" requires a string or array")
	}

	step := 1
	if len(args) > 3 && !args[3].IsNull() {
		n, err := value.ToNumber(args[3])
		if err != nil {
			return value.Null, value.NewError(value.NaN, "slice step is not numeric")
		}
		step = int(n.Int64())
		if step == 0 {
			return value.Null, value.NewError(value.InvalidArguments, "slice step cannot be 0")
		}
	}

	start, end, err := sliceBounds(args, length, step)
	if err != nil {
		return value.Null, err
	}

	if v.Kind() == value.KindString {
		runes := []rune(v.Str())
		out := collectRunes(runes, start, end, step)
		return value.String(string(out)), nil
	}
	items := v.Items()
	out := collectItems(items, start, end, step)
	return value.Array(out), nil
}

func sliceBounds(args []value.Value, length, step int) (start, end int, err *value.Error) {
	if step > 0 {
		start, end = 0, length
	} else {
		start, end = length-1, -1
	}

	if len(args) > 1 && !args[1].IsNull() {
		n, e := value.ToNumber(args[1])
		if e != nil {
			return 0, 0, value.NewError(value.NaN, "slice start is not numeric")
		}
		start = resolveIndex(int(n.Int64()), length)
	}
	if len(args) > 2 && !args[2].IsNull() {
		n, e := value.ToNumber(args[2])
		if e != nil {
			return 0, 0, value.NewError(value.NaN, "slice end is not numeric")
		}
		end = resolveIndex(int(n.Int64()), length)
	}
	return start, end, nil
}

func resolveIndex(i, length int) int {
	if i < 0 {
		i += length
	}
	return clamp(i, length)
}

func clamp(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

func collectRunes(runes []rune, start, end, step int) []rune {
	out := make([]rune, 0)
	if step > 0 {
		for i := start; i < end && i < len(runes); i += step {
			if i >= 0 {
				out = append(out, runes[i])
			}
		}
	} else {
		for i := start; i > end; i += step {
			if i >= 0 && i < len(runes) {
				out = append(out, runes[i])
			}
		}
	}
	return out
}

func collectItems(items []value.Value, start, end, step int) []value.Value {
	out := make([]value.Value, 0)
	if step > 0 {
		for i := start; i < end && i < len(items); i += step {
			if i >= 0 {
				out = append(out, items[i])
			}
		}
	} else {
		for i := start; i > end; i += step {
			if i >= 0 && i < len(items) {
				out = append(out, items[i])
			}
		}
	}
	return out
}
