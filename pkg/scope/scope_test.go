package scope

import (
	"testing"

	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/value"
)

func TestResolveEmptyPath(t *testing.T) {
	f := Root(value.Int(42))
	v, ok := Resolve(f, nil)
	if !ok || v.Int64() != 42 {
		t.Fatalf("Resolve empty = %v, %v", v, ok)
	}
}

func TestResolveKeyAndIndex(t *testing.T) {
	data := value.Object([]value.Pair{
		{Key: "items", Val: value.Array([]value.Value{value.Int(10), value.Int(20)})},
	})
	f := Root(data)
	v, ok := Resolve(f, []ast.PathSeg{
		{Kind: ast.SegKey, Key: "items"},
		{Kind: ast.SegIndex, Index: 1},
	})
	if !ok || v.Int64() != 20 {
		t.Fatalf("Resolve key+index = %v, %v", v, ok)
	}
}

func TestResolveMissingKey(t *testing.T) {
	f := Root(value.Object(nil))
	v, ok := Resolve(f, []ast.PathSeg{{Kind: ast.SegKey, Key: "nope"}})
	if ok || !v.IsNull() {
		t.Fatalf("Resolve missing = %v, %v", v, ok)
	}
}

func TestResolveOutOfRangeIndex(t *testing.T) {
	f := Root(value.Array([]value.Value{value.Int(1)}))
	_, ok := Resolve(f, []ast.PathSeg{{Kind: ast.SegIndex, Index: 5}})
	if ok {
		t.Fatal("out-of-range index should not exist")
	}
}

func TestResolveScopeTraversal(t *testing.T) {
	root := Root(value.Object([]value.Pair{{Key: "k", Val: value.Int(5)}}))
	child := root.PushIndex(value.Int(1), 0)

	v, ok := Resolve(child, []ast.PathSeg{
		{Kind: ast.SegTraverse, Offset: -2},
		{Kind: ast.SegKey, Key: "k"},
	})
	if !ok || v.Int64() != 5 {
		t.Fatalf("scope traversal = %v, %v", v, ok)
	}
}

func TestResolveTraverseIndexMetadata(t *testing.T) {
	root := Root(value.Array([]value.Value{value.Int(1), value.Int(2)}))
	child := root.PushIndex(value.Int(2), 1)

	v, ok := Resolve(child, []ast.PathSeg{
		{Kind: ast.SegTraverse, Offset: 0},
		{Kind: ast.SegKey, Key: "index"},
	})
	if !ok || v.Int64() != 1 {
		t.Fatalf("traverse index metadata = %v, %v", v, ok)
	}
}

func TestResolveTemporalVirtualProperty(t *testing.T) {
	dt := value.DateTimeFromUnix(0, 0)
	f := Root(dt)
	v, ok := Resolve(f, []ast.PathSeg{{Kind: ast.SegKey, Key: "year"}})
	if !ok || v.Int64() != 1970 {
		t.Fatalf("temporal property = %v, %v", v, ok)
	}
}

func TestExistsNullLeafStillExists(t *testing.T) {
	data := value.Object([]value.Pair{{Key: "x", Val: value.Null}})
	f := Root(data)
	if !Exists(f, []ast.PathSeg{{Kind: ast.SegKey, Key: "x"}}) {
		t.Fatal("explicit null leaf should exist")
	}
	if Exists(f, []ast.PathSeg{{Kind: ast.SegKey, Key: "y"}}) {
		t.Fatal("missing key should not exist")
	}
}

func TestFramePoolRoundTrip(t *testing.T) {
	root := Root(value.Int(1))
	child := AcquireIndex(root, value.Int(2), 3)
	if idx, ok := child.Index(); !ok || idx != 3 {
		t.Fatalf("pooled frame index = %v, %v", idx, ok)
	}
	Release(child)
}
