package value

import "sort"

// FromJSON converts a generic value produced by encoding/json.Unmarshal
// (nil, bool, float64, string, []interface{}, map[string]interface{}) into
// a Value tree. Object key order is not preserved by encoding/json, so
// object pairs are emitted in sorted key order — matching the
// "key-sorted" order object iteration uses in pkg/evaluator.
func FromJSON(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case bool:
		return Bool(x)
	case float64:
		return Float(x)
	case int:
		return Int(int64(x))
	case int64:
		return Int(x)
	case string:
		return String(x)
	case []interface{}:
		items := make([]Value, len(x))
		for i, e := range x {
			items[i] = FromJSON(e)
		}
		return Array(items)
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]Pair, len(keys))
		for i, k := range keys {
			pairs[i] = Pair{Key: k, Val: FromJSON(x[k])}
		}
		return Object(pairs)
	case Value:
		return x
	default:
		return Null
	}
}

// ToJSON converts a Value tree back into a generic JSON-marshalable value.
func ToJSON(v Value) interface{} {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		if v.isInt {
			return v.i
		}
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]interface{}, len(v.arr))
		for i, e := range v.arr {
			out[i] = ToJSON(e)
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.obj))
		for _, p := range v.obj {
			out[p.Key] = ToJSON(p.Val)
		}
		return out
	case KindDateTime:
		return v.FormatISO()
	case KindDuration:
		return v.FormatDuration()
	default:
		return nil
	}
}
