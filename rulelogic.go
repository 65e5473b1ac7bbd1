// Package rulelogic provides a JSON rule-evaluation engine in the
// JSONLogic family: a JSON-encoded rule is compiled into an immutable
// expression tree and evaluated against a JSON data document to produce
// a JSON result or a structured error.
//
// # Quick Start
//
//	// Simple evaluation
//	result, err := rulelogic.Evaluate(rule, data)
//
//	// Compile once, evaluate many times
//	expr, err := rulelogic.Parse(rule)
//	result1, _ := rulelogic.New().Eval(ctx, expr, data1)
//	result2, _ := rulelogic.New().Eval(ctx, expr, data2)
//
//	// With options
//	result, err := rulelogic.Evaluate(rule, data,
//	    rulelogic.WithCaching(true),
//	    rulelogic.WithTimeout(5*time.Second),
//	)
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/sandrolain/rulelogic/pkg/parser
//   - Evaluator: github.com/sandrolain/rulelogic/pkg/evaluator
//   - Value model: github.com/sandrolain/rulelogic/pkg/value
package rulelogic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/evaluator"
	"github.com/sandrolain/rulelogic/pkg/parser"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// Parse compiles a decoded rule (as produced by encoding/json.Unmarshal
// into interface{}) into an immutable expression tree for repeated
// evaluation. It is safe for concurrent use.
func Parse(rule interface{}, opts ...parser.ParseOption) (*ast.Expr, error) {
	return parser.Parse(rule, opts...)
}

// ParseString decodes ruleJSON and compiles it, combining json.Unmarshal
// with Parse for callers that have raw JSON bytes rather than a
// pre-decoded interface{}.
func ParseString(ruleJSON string, opts ...parser.ParseOption) (*ast.Expr, error) {
	var rule interface{}
	if err := json.Unmarshal([]byte(ruleJSON), &rule); err != nil {
		return nil, fmt.Errorf("rulelogic: invalid rule JSON: %w", err)
	}
	return Parse(rule, opts...)
}

// ParseData decodes a JSON data document into the Value the evaluator
// evaluates rules against.
func ParseData(dataJSON string) (value.Value, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return value.Null, fmt.Errorf("rulelogic: invalid data JSON: %w", err)
	}
	return value.FromJSON(data), nil
}

// Evaluate is a convenience function that compiles and evaluates rule
// against data in a single call.
//
// For repeated evaluations of the same rule, Parse once and reuse the
// compiled expression with a single Evaluator via Eval instead.
func Evaluate(rule, data interface{}, opts ...evaluator.EvalOption) (value.Value, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return EvaluateWithContext(ctx, rule, data, opts...)
}

// EvaluateWithContext evaluates rule against data with a caller-supplied
// context. If WithCaching(true) is among opts, the compiled expression is
// cached (keyed by the rule's JSON encoding) and reused on subsequent
// calls with an identical rule.
func EvaluateWithContext(ctx context.Context, rule, data interface{}, opts ...evaluator.EvalOption) (value.Value, error) {
	ev := evaluator.New(opts...)

	var (
		expr *ast.Expr
		err  error
	)
	if c := ev.Cache(); c != nil {
		key, marshalErr := json.Marshal(rule)
		if marshalErr != nil {
			return value.Null, fmt.Errorf("rulelogic: rule is not JSON-marshalable: %w", marshalErr)
		}
		expr, err = c.GetOrCompile(string(key), func() (*ast.Expr, error) {
			return Parse(rule)
		})
	} else {
		expr, err = Parse(rule)
	}
	if err != nil {
		return value.Null, err
	}

	return ev.Eval(ctx, expr, value.FromJSON(data))
}

// EvaluateString is EvaluateWithContext's raw-JSON-string counterpart:
// both rule and data are parsed from JSON text.
func EvaluateString(ctx context.Context, ruleJSON, dataJSON string, opts ...evaluator.EvalOption) (value.Value, error) {
	var rule interface{}
	if err := json.Unmarshal([]byte(ruleJSON), &rule); err != nil {
		return value.Null, fmt.Errorf("rulelogic: invalid rule JSON: %w", err)
	}
	var data interface{}
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return value.Null, fmt.Errorf("rulelogic: invalid data JSON: %w", err)
	}
	return EvaluateWithContext(ctx, rule, data, opts...)
}

// New creates an Evaluator with default options applied, re-exported so
// callers only need to import the top-level rulelogic package for the
// compile-once/evaluate-many workflow.
func New(opts ...evaluator.EvalOption) *evaluator.Evaluator {
	return evaluator.New(opts...)
}

// CustomFunc is the signature for native custom operators registered via
// (*evaluator.Evaluator).RegisterCustom.
type CustomFunc = evaluator.CustomFunc

// EvalOption re-exports evaluator.EvalOption so callers do not need to
// import the evaluator package directly.
type EvalOption = evaluator.EvalOption

// WithCaching re-exports evaluator.WithCaching for convenience.
func WithCaching(enabled bool) EvalOption { return evaluator.WithCaching(enabled) }

// WithCacheSize re-exports evaluator.WithCacheSize for convenience.
func WithCacheSize(size int) EvalOption { return evaluator.WithCacheSize(size) }

// WithMaxDepth re-exports evaluator.WithMaxDepth for convenience.
func WithMaxDepth(depth int) EvalOption { return evaluator.WithMaxDepth(depth) }

// WithTimeout re-exports evaluator.WithTimeout for convenience.
func WithTimeout(d time.Duration) EvalOption { return evaluator.WithTimeout(d) }

// WithDebug re-exports evaluator.WithDebug for convenience.
func WithDebug(enabled bool) EvalOption { return evaluator.WithDebug(enabled) }
