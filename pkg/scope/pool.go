package scope

import (
	"sync"

	"github.com/sandrolain/rulelogic/pkg/value"
)

// framePool is a process-wide pool of *Frame used by the evaluator's
// array-iterating combinators (map, filter, all, some, none) to avoid a
// heap allocation per visited element.
//
// THREAD-SAFETY AUDIT: safe.
//   - sync.Pool handles concurrent Get/Put without external locking.
//   - Each acquired Frame is owned exclusively by the evaluation that
//     acquired it until Release is called; frames are never shared
//     between goroutines.
//   - Callers MUST NOT Release a frame that a custom operator or a
//     lambda-like body might retain past the current iteration step.
var framePool = sync.Pool{
	New: func() interface{} { return new(Frame) },
}

// AcquireIndex returns a pooled Frame configured as an array-item child of
// parent at position idx.
func AcquireIndex(parent *Frame, data value.Value, idx int) *Frame {
	f := framePool.Get().(*Frame)
	f.data = data
	f.parent = parent
	f.index = &idx
	f.key = nil
	return f
}

// AcquireKey returns a pooled Frame configured as an object-entry child of
// parent at key.
func AcquireKey(parent *Frame, data value.Value, key string) *Frame {
	f := framePool.Get().(*Frame)
	f.data = data
	f.parent = parent
	f.index = nil
	f.key = &key
	return f
}

// AcquirePush returns a pooled Frame carrying new data with no iteration
// metadata (used by reduce's {current, accumulator} scope).
func AcquirePush(parent *Frame, data value.Value) *Frame {
	f := framePool.Get().(*Frame)
	f.data = data
	f.parent = parent
	f.index = nil
	f.key = nil
	return f
}

// Release returns f to the pool. It is a no-op when f is nil.
func Release(f *Frame) {
	if f == nil {
		return
	}
	f.data = value.Null
	f.parent = nil
	f.index = nil
	f.key = nil
	framePool.Put(f)
}
