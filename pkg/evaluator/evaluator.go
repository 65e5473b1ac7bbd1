// Package evaluator implements the dispatch-per-node-kind walk over a
// compiled expression tree: arithmetic, comparison, logical,
// conditional, array higher-order, string, temporal, and control-flow
// operator families, plus custom-operator dispatch to native Go
// callbacks or WASM modules.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandrolain/rulelogic/pkg/arena"
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/cache"
	"github.com/sandrolain/rulelogic/pkg/scope"
	"github.com/sandrolain/rulelogic/pkg/value"
	"github.com/sandrolain/rulelogic/pkg/wasmop"
)

// CustomFunc is a registered native custom operator: it receives
// already-evaluated arguments and returns a value or a structured error.
type CustomFunc func(ctx context.Context, args []value.Value) (value.Value, *value.Error)

// Evaluator evaluates compiled expression trees against data.
type Evaluator struct {
	opts      EvalOptions
	logger    *slog.Logger
	cache     *cache.Cache
	customFns map[string]CustomFunc
	wasmOps   map[string]*wasmop.Module
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Caching enables compiled-expression caching keyed by rule JSON.
	Caching bool
	// CacheSize bounds the cache when Caching is true and no explicit
	// Cache is supplied. Defaults to 256.
	CacheSize int
	// Cache is a custom expression cache; non-nil implies Caching.
	Cache *cache.Cache
	// MaxDepth limits evaluator recursion depth. Zero disables the guard.
	MaxDepth int
	// Timeout bounds total evaluation wall-clock time via context.
	Timeout time.Duration
	// Debug enables per-node debug logging.
	Debug bool
	// Logger receives structured evaluation logs.
	Logger *slog.Logger
}

// New creates an Evaluator with default options applied.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		MaxDepth: 4096,
		Timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		size := options.CacheSize
		if size <= 0 {
			size = 256
		}
		c = cache.New(size)
	}

	return &Evaluator{
		opts:      options,
		logger:    options.Logger,
		cache:     c,
		customFns: make(map[string]CustomFunc),
		wasmOps:   make(map[string]*wasmop.Module),
	}
}

// Cache returns the expression cache, or nil if caching is disabled.
func (e *Evaluator) Cache() *cache.Cache { return e.cache }

// RegisterCustom registers a native Go callback for the custom operator
// name.
func (e *Evaluator) RegisterCustom(name string, fn CustomFunc) {
	e.customFns[name] = fn
}

// RegisterCustomWASM loads wasmBytes as a WebAssembly module backing the
// custom operator name. The module must export a function matching
// pkg/wasmop's JSON-in/JSON-out protocol.
func (e *Evaluator) RegisterCustomWASM(ctx context.Context, name string, wasmBytes []byte) error {
	mod, err := wasmop.Load(ctx, wasmBytes)
	if err != nil {
		return fmt.Errorf("register custom wasm operator %q: %w", name, err)
	}
	e.wasmOps[name] = mod
	return nil
}

// Eval evaluates expr against data. data is typically produced by
// value.FromJSON.
func (e *Evaluator) Eval(ctx context.Context, expr *ast.Expr, data value.Value) (value.Value, error) {
	if expr == nil {
		return value.Null, fmt.Errorf("evaluator: nil expression")
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}
	if e.opts.MaxDepth > 0 {
		ctx = withNewDepthCounter(ctx)
	}

	a := arena.New()
	frame := scope.Root(data)

	result, evalErr := e.evalNode(ctx, expr, frame, a)
	if evalErr != nil {
		return value.Null, evalErr
	}
	return result, nil
}

// EvalOption configures evaluator behavior.
type EvalOption func(*EvalOptions)

// WithCaching toggles compiled-expression caching.
func WithCaching(enabled bool) EvalOption {
	return func(o *EvalOptions) { o.Caching = enabled }
}

// WithCacheSize sets the cache capacity (only used with the default cache).
func WithCacheSize(size int) EvalOption {
	return func(o *EvalOptions) { o.CacheSize = size }
}

// WithCache installs a pre-built cache, implicitly enabling caching.
func WithCache(c *cache.Cache) EvalOption {
	return func(o *EvalOptions) { o.Cache = c }
}

// WithMaxDepth sets the recursion depth guard.
func WithMaxDepth(depth int) EvalOption {
	return func(o *EvalOptions) { o.MaxDepth = depth }
}

// WithTimeout bounds total evaluation time.
func WithTimeout(d time.Duration) EvalOption {
	return func(o *EvalOptions) { o.Timeout = d }
}

// WithDebug enables per-node debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(o *EvalOptions) { o.Debug = enabled }
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(o *EvalOptions) { o.Logger = logger }
}
