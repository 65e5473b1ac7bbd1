package evaluator

import (
	"context"

	"github.com/sandrolain/rulelogic/pkg/arena"
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/scope"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// evalCustom dispatches a KCustom node to its registered native callback
// or WASM module. Arguments are always evaluated eagerly first: custom
// operators cannot observe short-circuiting.
func (e *Evaluator) evalCustom(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	args, err := e.evalOperands(ctx, expr.Items, frame, a)
	if err != nil {
		return value.Null, err
	}

	if fn, ok := e.customFns[expr.Name]; ok {
		return fn(ctx, args)
	}
	if mod, ok := e.wasmOps[expr.Name]; ok {
		return mod.Invoke(ctx, args)
	}
	return value.Null, value.NewError(value.UnknownOperator, "custom operator \""+expr.Name+"\" is not registered")
}
