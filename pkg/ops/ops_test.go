package ops

import (
	"testing"

	"github.com/sandrolain/rulelogic/pkg/value"
)

func TestAddVariants(t *testing.T) {
	v, err := Add([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	if err != nil || v.Int64() != 6 || !v.IsInt() {
		t.Fatalf("Add ints = %v, %v", v, err)
	}
	v, err = Add([]value.Value{value.Int(1), value.Float(2.5)})
	if err != nil || v.Float64() != 3.5 || v.IsInt() {
		t.Fatalf("Add mixed = %v, %v", v, err)
	}
}

func TestSubUnary(t *testing.T) {
	v, err := Sub([]value.Value{value.Int(5)})
	if err != nil || v.Int64() != -5 {
		t.Fatalf("Sub unary = %v, %v", v, err)
	}
}

func TestDivAlwaysFloat(t *testing.T) {
	v, err := Div([]value.Value{value.Int(4), value.Int(2)})
	if err != nil || v.IsInt() || v.Float64() != 2 {
		t.Fatalf("Div = %v, %v", v, err)
	}
	_, err = Div([]value.Value{value.Int(4), value.Int(0)})
	if err == nil || err.Code != value.NaN {
		t.Fatalf("Div by zero should NaN, got %v", err)
	}
}

func TestModIntPreserving(t *testing.T) {
	v, err := Mod([]value.Value{value.Int(7), value.Int(3)})
	if err != nil || !v.IsInt() || v.Int64() != 1 {
		t.Fatalf("Mod = %v, %v", v, err)
	}
}

func TestAbsOnArray(t *testing.T) {
	v, err := Abs([]value.Value{value.Array([]value.Value{value.Int(-1), value.Int(2)})})
	if err != nil {
		t.Fatalf("Abs err = %v", err)
	}
	items := v.Items()
	if items[0].Int64() != 1 || items[1].Int64() != 2 {
		t.Fatalf("Abs array = %v", items)
	}
}

func TestMinMaxStrict(t *testing.T) {
	v, err := Min([]value.Value{value.Int(3), value.Int(1), value.Int(2)})
	if err != nil || v.Int64() != 1 {
		t.Fatalf("Min = %v, %v", v, err)
	}
	_, err = Max([]value.Value{value.String("x")})
	if err == nil {
		t.Fatal("Max over non-number should error")
	}
}

func TestComparisonOperators(t *testing.T) {
	v, err := Eq([]value.Value{value.String("1"), value.Int(1)})
	if err != nil || !v.Bool() {
		t.Fatalf("Eq loose = %v, %v", v, err)
	}
	v, _ = StrictEq([]value.Value{value.String("1"), value.Int(1)})
	if v.Bool() {
		t.Fatal("StrictEq should be false across kinds")
	}
}

func TestChainComparison(t *testing.T) {
	v, err := Chain([]value.Value{value.Int(1), value.Int(2), value.Int(3)}, RelLt)
	if err != nil || !v.Bool() {
		t.Fatalf("Chain < = %v, %v", v, err)
	}
	v, _ = Chain([]value.Value{value.Int(1), value.Array(nil), value.Int(3)}, RelLt)
	if v.Bool() {
		t.Fatal("Chain should short-circuit false on non-orderable pair")
	}
}

func TestLogicalFold(t *testing.T) {
	v, _ := And([]value.Value{value.Bool(true), value.Int(0), value.Int(5)})
	if v.Int64() != 0 {
		t.Fatalf("And fold = %v", v)
	}
	v, _ = Coalesce([]value.Value{value.Null, value.Null, value.Int(7)})
	if v.Int64() != 7 {
		t.Fatalf("Coalesce = %v", v)
	}
}

func TestMergeFlattensOneLevel(t *testing.T) {
	v, err := Merge([]value.Value{
		value.Array([]value.Value{value.Int(1), value.Int(2)}),
		value.Int(3),
	})
	if err != nil || len(v.Items()) != 3 {
		t.Fatalf("Merge = %v, %v", v, err)
	}
}

func TestInArrayAndSubstring(t *testing.T) {
	v, err := In([]value.Value{value.Int(2), value.Array([]value.Value{value.Int(1), value.Int(2)})})
	if err != nil || !v.Bool() {
		t.Fatalf("In array = %v, %v", v, err)
	}
	v, err = In([]value.Value{value.String("ell"), value.String("hello")})
	if err != nil || !v.Bool() {
		t.Fatalf("In substring = %v, %v", v, err)
	}
}

func TestLengthVariants(t *testing.T) {
	v, _ := Length([]value.Value{value.String("hello")})
	if v.Int64() != 5 {
		t.Fatalf("Length string = %v", v)
	}
	v, _ = Length([]value.Value{value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3)})})
	if v.Int64() != 3 {
		t.Fatalf("Length array = %v", v)
	}
}

func TestSliceNegativeStep(t *testing.T) {
	arr := value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	v, err := Slice([]value.Value{arr, value.Null, value.Null, value.Int(-1)})
	if err != nil {
		t.Fatalf("Slice err = %v", err)
	}
	items := v.Items()
	if len(items) != 3 || items[0].Int64() != 3 || items[2].Int64() != 1 {
		t.Fatalf("Slice reverse = %v", items)
	}
}

func TestSliceClampsOutOfRange(t *testing.T) {
	arr := value.Array([]value.Value{value.Int(1), value.Int(2)})
	v, err := Slice([]value.Value{arr, value.Int(-100), value.Int(100)})
	if err != nil || len(v.Items()) != 2 {
		t.Fatalf("Slice clamp = %v, %v", v, err)
	}
}

func TestSlicePositiveStepSkipsElements(t *testing.T) {
	arr := value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3), value.Int(4), value.Int(5), value.Int(6)})
	v, err := Slice([]value.Value{arr, value.Int(0), value.Int(6), value.Int(2)})
	if err != nil {
		t.Fatalf("Slice err = %v", err)
	}
	items := v.Items()
	if len(items) != 3 || items[0].Int64() != 1 || items[1].Int64() != 3 || items[2].Int64() != 5 {
		t.Fatalf("Slice step 2 = %v", items)
	}
}

func TestCatConcatenatesArrayElementsDirectly(t *testing.T) {
	v, _ := Cat([]value.Value{
		value.Array([]value.Value{value.String("a"), value.String("b")}),
		value.String("c"),
	})
	if v.Str() != "abc" {
		t.Fatalf("Cat = %q", v.Str())
	}
}

func TestSubstrNegativeStart(t *testing.T) {
	v, err := Substr([]value.Value{value.String("hello"), value.Int(-3)})
	if err != nil || v.Str() != "llo" {
		t.Fatalf("Substr = %v, %v", v, err)
	}
}

func TestStartsEndsWith(t *testing.T) {
	v, _ := StartsWith([]value.Value{value.String("hello"), value.String("he")})
	if !v.Bool() {
		t.Fatal("StartsWith should be true")
	}
	v, _ = EndsWith([]value.Value{value.String("hello"), value.String("lo")})
	if !v.Bool() {
		t.Fatal("EndsWith should be true")
	}
}

func TestTrimAndCase(t *testing.T) {
	v, _ := Trim([]value.Value{value.String("  hi \n")})
	if v.Str() != "hi" {
		t.Fatalf("Trim = %q", v.Str())
	}
	v, _ = Upper([]value.Value{value.String("hi")})
	if v.Str() != "HI" {
		t.Fatalf("Upper = %q", v.Str())
	}
	v, _ = Lower([]value.Value{value.String("HI")})
	if v.Str() != "hi" {
		t.Fatalf("Lower = %q", v.Str())
	}
}

func TestSplitNamedGroupsReturnsObject(t *testing.T) {
	v, err := Split([]value.Value{
		value.String("2024-01-02"),
		value.String(`(?P<year>\d+)-(?P<month>\d+)-(?P<day>\d+)`),
	})
	if err != nil {
		t.Fatalf("Split err = %v", err)
	}
	if v.Kind() != value.KindObject {
		t.Fatalf("Split with named groups should return object, got %v", v.Kind())
	}
	year, ok := v.Get("year")
	if !ok || year.Str() != "2024" {
		t.Fatalf("Split year = %v, %v", year, ok)
	}
}

func TestSplitNoNamedGroupsReturnsArray(t *testing.T) {
	v, err := Split([]value.Value{value.String("a,b,c"), value.String(",")})
	if err != nil {
		t.Fatalf("Split err = %v", err)
	}
	if v.Kind() != value.KindArray || len(v.Items()) != 3 {
		t.Fatalf("Split literal = %v", v)
	}
}

func TestDatetimeAndTimestampOps(t *testing.T) {
	v, err := Datetime([]value.Value{value.String("2024-01-02T03:04:05Z")})
	if err != nil {
		t.Fatalf("Datetime err = %v", err)
	}
	if v.Kind() != value.KindDateTime {
		t.Fatalf("Datetime kind = %v", v.Kind())
	}
	d, err := Timestamp([]value.Value{value.String("1d:2h:3m:4s")})
	if err != nil {
		t.Fatalf("Timestamp err = %v", err)
	}
	if d.DurationSeconds() != 86400+2*3600+3*60+4 {
		t.Fatalf("Timestamp seconds = %d", d.DurationSeconds())
	}
}

func TestTypeOperator(t *testing.T) {
	v, err := Type([]value.Value{value.Int(1)})
	if err != nil || v.Str() != "number" {
		t.Fatalf("Type = %v, %v", v, err)
	}
}
