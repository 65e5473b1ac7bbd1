package scope

import (
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// Resolve walks path against frame: an empty path returns the
// current frame's data; a numeric segment indexes into an array; a string
// segment reads an object property (falling back to a DateTime/Duration
// virtual property when the current value is temporal); a traversal
// segment switches the frame the rest of the path is read against, and a
// traversal immediately followed by the literal segment "index" or "key"
// reads that frame's iteration metadata instead of its data.
//
// The second return value reports whether the path resolved to an actual
// value as opposed to a missing lookup (Null). A leaf value that is
// itself explicitly Null still counts as existing.
func Resolve(frame *Frame, path []ast.PathSeg) (value.Value, bool) {
	if len(path) == 0 {
		return frame.Data(), true
	}

	cur := frame
	curVal := frame.Data()

	for i := 0; i < len(path); i++ {
		seg := path[i]

		if seg.Kind == ast.SegTraverse {
			cur = walkFrame(cur, seg.Offset)
			if i+1 < len(path) && path[i+1].Kind == ast.SegKey {
				switch path[i+1].Key {
				case "index":
					idx, ok := cur.Index()
					if !ok {
						return value.Null, false
					}
					return value.Int(int64(idx)), true
				case "key":
					k, ok := cur.Key()
					if !ok {
						return value.Null, false
					}
					return value.String(k), true
				}
			}
			curVal = cur.Data()
			continue
		}

		switch seg.Kind {
		case ast.SegKey:
			v, ok := curVal.Get(seg.Key)
			if !ok {
				if tv, ok2 := curVal.DateTimeProperty(seg.Key); ok2 {
					return tv, true
				}
				if tv, ok2 := curVal.DurationProperty(seg.Key); ok2 {
					return tv, true
				}
				return value.Null, false
			}
			curVal = v
		case ast.SegIndex:
			items := curVal.Items()
			if seg.Index < 0 || seg.Index >= len(items) {
				return value.Null, false
			}
			curVal = items[seg.Index]
		}
	}

	return curVal, true
}

// Exists is Resolve's boolean-only counterpart.
func Exists(frame *Frame, path []ast.PathSeg) bool {
	_, ok := Resolve(frame, path)
	return ok
}

// walkFrame moves |offset| frames toward the caller (parent chain),
// clamping at the root when the chain is shallower than the requested
// offset. Both signs of offset mean "walk outward"; offset 0 stays put.
func walkFrame(f *Frame, offset int) *Frame {
	n := offset
	if n < 0 {
		n = -n
	}
	cur := f
	for i := 0; i < n && cur.parent != nil; i++ {
		cur = cur.parent
	}
	return cur
}
