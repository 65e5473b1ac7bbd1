package parser

import (
	"fmt"

	"github.com/sandrolain/rulelogic/pkg/ast"
)

// parseVal builds a Val or Exists node from a val/var/exists operand:
// a string is a single key segment (dots are not split —
// "." is a legal key); a number is a single index segment; an array is a
// sequence of segments, where a segment that is itself an array encodes a
// scope traversal whose single integer element is the relative frame
// offset.
func (p *parser) parseVal(val interface{}, isExists bool) (*ast.Expr, error) {
	path, err := pathSegments(val)
	if err != nil {
		return nil, err
	}
	kind := ast.KVal
	if isExists {
		kind = ast.KExists
	}
	n := p.arena.Alloc(kind)
	n.Path = path
	return n, nil
}

func pathSegments(val interface{}) ([]ast.PathSeg, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []ast.PathSeg{{Kind: ast.SegKey, Key: v}}, nil
	case float64:
		return []ast.PathSeg{{Kind: ast.SegIndex, Index: int(v)}}, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, nil
		}
		segs := make([]ast.PathSeg, 0, len(v))
		for _, elem := range v {
			seg, err := pathSegment(elem)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		}
		return segs, nil
	default:
		return nil, fmt.Errorf("val: unsupported path element of type %T", val)
	}
}

func pathSegment(elem interface{}) (ast.PathSeg, error) {
	switch e := elem.(type) {
	case string:
		return ast.PathSeg{Kind: ast.SegKey, Key: e}, nil
	case float64:
		return ast.PathSeg{Kind: ast.SegIndex, Index: int(e)}, nil
	case []interface{}:
		if len(e) != 1 {
			return ast.PathSeg{}, fmt.Errorf("val: scope traversal segment must have exactly one element")
		}
		offsetF, ok := e[0].(float64)
		if !ok {
			return ast.PathSeg{}, fmt.Errorf("val: scope traversal offset must be a number")
		}
		return ast.PathSeg{Kind: ast.SegTraverse, Offset: int(offsetF)}, nil
	default:
		return ast.PathSeg{}, fmt.Errorf("val: unsupported path segment of type %T", elem)
	}
}
