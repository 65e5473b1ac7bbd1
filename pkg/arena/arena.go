// Package arena implements the bump-style allocator that backs every value,
// string, and node-child slice produced during one rule parse/evaluation.
//
// An Arena never frees individual allocations. Instead it grows by fixed-size
// chunks and is reset in O(1): the caller drops all chunk slices at once and
// lets the garbage collector reclaim them in bulk. This trades per-allocation
// free bookkeeping for a single reset that invalidates every outstanding
// reference at once, which is the contract documented on [Arena.Reset].
package arena

// stringChunkSize is the number of bytes pre-allocated per string chunk.
// Most rule/data strings are short; one chunk covers a typical evaluation.
const stringChunkSize = 4096

// refChunkSize is the number of interface{} slots pre-allocated per
// child-reference chunk (used for array/object backings and Expr children).
const refChunkSize = 64

// Arena is a bump allocator with O(1) reset.
//
// # Lifetime
//
// The Arena MUST outlive every value, string, and slice it returned until
// Reset is called. Holding a reference across a Reset is undefined behavior;
// callers that need a result to survive a reset must copy it out first.
//
// # Thread safety
//
// An Arena is NOT safe for concurrent use. Each evaluation must own its own
// Arena; sharing one Arena between two concurrent evaluations is undefined
// behavior (spec: "two evaluations sharing one arena is undefined behavior").
type Arena struct {
	strChunks [][]byte
	refChunks [][]interface{}
}

// New returns an Arena pre-warmed with one chunk of each kind.
func New() *Arena {
	return &Arena{
		strChunks: [][]byte{make([]byte, 0, stringChunkSize)},
		refChunks: [][]interface{}{make([]interface{}, 0, refChunkSize)},
	}
}

// AllocString copies s into arena-owned storage and returns the copy.
// The returned string shares no backing memory with s, so the caller's
// original buffer can be reused or discarded immediately.
func (a *Arena) AllocString(s string) string {
	if s == "" {
		return ""
	}
	chunk := a.strChunks[len(a.strChunks)-1]
	if cap(chunk)-len(chunk) < len(s) {
		size := stringChunkSize
		if len(s) > size {
			size = len(s)
		}
		chunk = make([]byte, 0, size)
		a.strChunks = append(a.strChunks, chunk)
	}
	start := len(chunk)
	chunk = append(chunk, s...)
	a.strChunks[len(a.strChunks)-1] = chunk
	return string(chunk[start:len(chunk)])
}

// AllocRefs returns an arena-backed slice of length n, ready to hold n
// values (child expressions, array elements, object pairs flattened to
// key/value pairs). The returned slice is exactly length n; append beyond
// it is not guaranteed to stay arena-backed.
func (a *Arena) AllocRefs(n int) []interface{} {
	if n == 0 {
		return nil
	}
	chunk := a.refChunks[len(a.refChunks)-1]
	avail := cap(chunk) - len(chunk)
	if avail < n {
		size := refChunkSize
		if n > size {
			size = n
		}
		chunk = make([]interface{}, 0, size)
		a.refChunks = append(a.refChunks, chunk)
		avail = cap(chunk)
	}
	start := len(chunk)
	chunk = chunk[:start+n]
	a.refChunks[len(a.refChunks)-1] = chunk
	return chunk[start : start+n : start+n]
}

// Reset invalidates every reference the Arena has ever returned and frees
// the underlying chunks for garbage collection. Callers must not use any
// previously-returned string or slice after calling Reset.
func (a *Arena) Reset() {
	a.strChunks = [][]byte{make([]byte, 0, stringChunkSize)}
	a.refChunks = [][]interface{}{make([]interface{}, 0, refChunkSize)}
}
