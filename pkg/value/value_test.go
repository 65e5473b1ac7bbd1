package value

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Null, false},
		{Bool(false), false},
		{Bool(true), true},
		{Int(0), false},
		{Int(1), true},
		{Float(0), false},
		{String(""), false},
		{String("x"), true},
		{Array(nil), false},
		{Array([]Value{Int(1)}), true},
		{Object(nil), false},
		{Object([]Pair{{Key: "a", Val: Int(1)}}), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%s) = %v, want %v", c.v.GoString(), got, c.want)
		}
	}
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		v    Value
		want float64
		err  bool
	}{
		{Bool(true), 1, false},
		{Bool(false), 0, false},
		{Null, 0, false},
		{String(""), 0, false},
		{String("3.5"), 3.5, false},
		{String("-2e2"), -200, false},
		{String("abc"), 0, true},
		{Array([]Value{Int(1)}), 0, true},
		{Object(nil), 0, false},
		{Object([]Pair{{Key: "a", Val: Int(1)}}), 0, true},
	}
	for _, c := range cases {
		got, err := ToNumber(c.v)
		if c.err {
			if err == nil {
				t.Errorf("ToNumber(%s): expected error", c.v.GoString())
			}
			continue
		}
		if err != nil {
			t.Errorf("ToNumber(%s): unexpected error %v", c.v.GoString(), err)
			continue
		}
		if got.Float64() != c.want {
			t.Errorf("ToNumber(%s) = %v, want %v", c.v.GoString(), got.Float64(), c.want)
		}
	}
}

func TestStrictEqual(t *testing.T) {
	if !StrictEqual(Int(1), Int(1)) {
		t.Error("Int(1) === Int(1) should be true")
	}
	if !StrictEqual(Int(1), Float(1)) {
		t.Error("Int(1) === Float(1) should be true (same Number variant)")
	}
	if StrictEqual(Int(1), String("1")) {
		t.Error("Int(1) === String(\"1\") should be false")
	}
	if StrictEqual(Null, Bool(false)) {
		t.Error("Null === false should be false")
	}
}

func TestLooseEqual(t *testing.T) {
	if !Equal(String("1"), Int(1)) {
		t.Error("\"1\" == 1 should be true")
	}
	if !Equal(Bool(true), Int(1)) {
		t.Error("true == 1 should be true")
	}
	if !Equal(Null, Null) {
		t.Error("null == null should be true")
	}
	if Equal(Null, Int(0)) {
		t.Error("null == 0 should be false")
	}
	if Equal(Null, Bool(false)) {
		t.Error("null == false should be false")
	}
}

func TestCompareChain(t *testing.T) {
	cmp, ok := CompareChain(Int(1), Int(2))
	if !ok || cmp >= 0 {
		t.Errorf("CompareChain(1,2) = %d,%v", cmp, ok)
	}
	cmp, ok = CompareChain(String("a"), String("b"))
	if !ok || cmp >= 0 {
		t.Errorf("CompareChain(a,b) = %d,%v", cmp, ok)
	}
	_, ok = CompareChain(Array(nil), Int(1))
	if ok {
		t.Error("CompareChain with array should fail (not ok)")
	}
}

func TestSortRankOrdering(t *testing.T) {
	vals := []Value{Null, Bool(false), Bool(true), Int(5), String("x")}
	for i := 0; i < len(vals); i++ {
		for j := i + 1; j < len(vals); j++ {
			if CompareForSort(vals[i], vals[j]) >= 0 {
				t.Errorf("expected %s < %s in sort rank", vals[i].GoString(), vals[j].GoString())
			}
		}
	}
}

func TestDurationParseAndProperties(t *testing.T) {
	d, err := ParseDuration("1d:2h:3m:4s")
	if err != nil {
		t.Fatalf("ParseDuration error: %v", err)
	}
	want := int64(86400 + 2*3600 + 3*60 + 4)
	if d.DurationSeconds() != want {
		t.Errorf("DurationSeconds() = %d, want %d", d.DurationSeconds(), want)
	}
	if days, _ := d.DurationProperty("days"); days.Int64() != 1 {
		t.Errorf("days = %d, want 1", days.Int64())
	}
	if total, _ := d.DurationProperty("total_seconds"); total.Int64() != want {
		t.Errorf("total_seconds = %d, want %d", total.Int64(), want)
	}
}

func TestFromJSONRoundTrip(t *testing.T) {
	in := map[string]interface{}{"a": 1.0, "b": []interface{}{"x", nil, true}}
	v := FromJSON(in)
	if v.Kind() != KindObject {
		t.Fatalf("expected object, got %s", v.Kind())
	}
	out := ToJSON(v).(map[string]interface{})
	arr := out["b"].([]interface{})
	if arr[0] != "x" || arr[1] != nil || arr[2] != true {
		t.Errorf("round-trip mismatch: %#v", out)
	}
}
