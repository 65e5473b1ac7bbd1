// Package scope implements the frame stack that threads data context and
// array/object iteration metadata through evaluation.
package scope

import "github.com/sandrolain/rulelogic/pkg/value"

// Frame is one entry of the scope stack: the data value visible at that
// point plus, when the frame was pushed by an iterating combinator, the
// index or key of the element being visited.
type Frame struct {
	data   value.Value
	parent *Frame
	index  *int
	key    *string
}

// Root creates the bottom-most frame: the caller-supplied data document.
func Root(data value.Value) *Frame {
	return &Frame{data: data}
}

// PushIndex pushes a child frame for array iteration at position idx.
func (f *Frame) PushIndex(data value.Value, idx int) *Frame {
	return &Frame{data: data, parent: f, index: &idx}
}

// PushKey pushes a child frame for object iteration at key.
func (f *Frame) PushKey(data value.Value, key string) *Frame {
	return &Frame{data: data, parent: f, key: &key}
}

// Push pushes a plain child frame carrying new data with no iteration
// metadata (used by reduce's {current, accumulator} scope and try's
// error-payload scope).
func (f *Frame) Push(data value.Value) *Frame {
	return &Frame{data: data, parent: f}
}

// Data returns the data value visible at this frame.
func (f *Frame) Data() value.Value { return f.data }

// Parent returns the enclosing frame, or nil at the root.
func (f *Frame) Parent() *Frame { return f.parent }

// Index returns the array position this frame was pushed for, if any.
func (f *Frame) Index() (int, bool) {
	if f.index == nil {
		return 0, false
	}
	return *f.index, true
}

// Key returns the object key this frame was pushed for, if any.
func (f *Frame) Key() (string, bool) {
	if f.key == nil {
		return "", false
	}
	return *f.key, true
}
