package evaluator

import "context"

// depthKey stores a *int pointer so recursion depth can be incremented and
// decremented stack-style as evalNode enters and leaves each node.
type depthKey struct{}

// withNewDepthCounter returns a context carrying a fresh depth counter.
func withNewDepthCounter(ctx context.Context) context.Context {
	d := 0
	return context.WithValue(ctx, depthKey{}, &d)
}

// getDepthCounter returns the depth counter pointer from ctx, or nil if
// none was installed (MaxDepth <= 0).
func getDepthCounter(ctx context.Context) *int {
	if p, ok := ctx.Value(depthKey{}).(*int); ok {
		return p
	}
	return nil
}
