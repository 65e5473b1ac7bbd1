package parser

import (
	"encoding/json"
	"testing"

	"github.com/sandrolain/rulelogic/pkg/ast"
)

func decodeJSON(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("invalid test JSON: %v", err)
	}
	return v
}

func TestFlatteningFoldsToLiteral(t *testing.T) {
	rule := decodeJSON(t, `{"+":[1,{"+":[2,3]},4]}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.Kind != ast.KLiteral {
		t.Fatalf("expected fully-folded literal, got kind %v", expr.Kind)
	}
	if expr.Lit.Int64() != 10 {
		t.Fatalf("expected 10, got %v", expr.Lit.GoString())
	}
}

func TestAssociativeFlatteningWithoutFullFold(t *testing.T) {
	rule := decodeJSON(t, `{"+":[{"val":"a"},{"+":[{"val":"b"},1]}]}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.Kind != ast.KOp || expr.Op != ast.OpAdd {
		t.Fatalf("expected flattened Add op, got %v", expr.Kind)
	}
	if len(expr.Items) != 3 {
		t.Fatalf("expected 3 flattened operands, got %d", len(expr.Items))
	}
}

func TestAndOfOrDoesNotFlatten(t *testing.T) {
	rule := decodeJSON(t, `{"and":[{"val":"a"},{"or":[{"val":"b"},{"val":"c"}]}]}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(expr.Items) != 2 {
		t.Fatalf("and-of-or must not flatten, got %d operands", len(expr.Items))
	}
	if expr.Items[1].Op != ast.OpOr {
		t.Fatalf("second operand should remain an Or op")
	}
}

func TestShortCircuitFoldsDecisivePrefix(t *testing.T) {
	rule := decodeJSON(t, `{"and":[false,{"val":"x"}]}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.Kind != ast.KLiteral || expr.Lit.Bool() != false {
		t.Fatalf("expected folded false literal, got %v", expr.Kind)
	}
}

func TestShortCircuitDoesNotFoldWhenPrefixInconclusive(t *testing.T) {
	rule := decodeJSON(t, `{"and":[{"val":"x"},false]}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.Kind != ast.KOp {
		t.Fatalf("expected unfolded Op since first operand isn't literal, got %v", expr.Kind)
	}
}

func TestValPathStringNotSplitOnDots(t *testing.T) {
	rule := decodeJSON(t, `{"val":"a.b"}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(expr.Path) != 1 || expr.Path[0].Key != "a.b" {
		t.Fatalf("expected single key 'a.b', got %v", expr.Path)
	}
}

func TestValScopeTraversalPath(t *testing.T) {
	rule := decodeJSON(t, `{"val":[[-2],"k"]}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(expr.Path) != 2 {
		t.Fatalf("expected 2 path segments, got %d", len(expr.Path))
	}
	if expr.Path[0].Kind != ast.SegTraverse || expr.Path[0].Offset != -2 {
		t.Fatalf("expected traversal offset -2, got %v", expr.Path[0])
	}
	if expr.Path[1].Kind != ast.SegKey || expr.Path[1].Key != "k" {
		t.Fatalf("expected key segment 'k', got %v", expr.Path[1])
	}
}

func TestVarAliasesVal(t *testing.T) {
	rule := decodeJSON(t, `{"var":"age"}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.Kind != ast.KVal {
		t.Fatalf("var should alias val, got kind %v", expr.Kind)
	}
}

func TestOperatorSugarSingleValueBecomesOneElementList(t *testing.T) {
	rule := decodeJSON(t, `{"+":5}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.Kind != ast.KLiteral || expr.Lit.Int64() != 5 {
		t.Fatalf("expected folded literal 5, got %v", expr.Kind)
	}
}

func TestUnknownOperatorBecomesCustomNode(t *testing.T) {
	rule := decodeJSON(t, `{"my_custom_op":[1,2]}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.Kind != ast.KCustom || expr.Name != "my_custom_op" {
		t.Fatalf("expected Custom node, got %v", expr.Kind)
	}
}

func TestPlainObjectBecomesObjectNode(t *testing.T) {
	rule := decodeJSON(t, `{"a":1,"b":2}`)
	expr, err := Parse(rule)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.Kind != ast.KObject || len(expr.Pairs) != 2 {
		t.Fatalf("expected Object node with 2 pairs, got %v", expr.Kind)
	}
}
