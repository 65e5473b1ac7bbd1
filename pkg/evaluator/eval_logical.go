package evaluator

import (
	"context"

	"github.com/sandrolain/rulelogic/pkg/arena"
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/scope"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// evalLogical implements and/or/??/if with real short-circuiting: unlike
// pkg/ops's fold-only And/Or/Coalesce, operands here are sub-expressions
// evaluated one at a time, and evaluation stops as soon as the result is
// decided.
func (e *Evaluator) evalLogical(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	switch expr.Op {
	case ast.OpAnd:
		return e.evalAndOr(ctx, expr, frame, a, false)
	case ast.OpOr:
		return e.evalAndOr(ctx, expr, frame, a, true)
	case ast.OpCoalesce:
		return e.evalCoalesce(ctx, expr, frame, a)
	case ast.OpIf:
		return e.evalIf(ctx, expr, frame, a)
	}
	return value.Null, value.NewError(value.InvalidArguments, "not a logical operator")
}

// evalAndOr implements both and (wantTruthy=false) and or (wantTruthy=true):
// the first operand whose truthiness decides the result short-circuits;
// otherwise the last operand's value is returned. Zero operands is Null.
func (e *Evaluator) evalAndOr(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena, wantTruthy bool) (value.Value, *value.Error) {
	if len(expr.Items) == 0 {
		return value.Null, nil
	}
	var last value.Value
	for i, item := range expr.Items {
		v, err := e.evalNode(ctx, item, frame, a)
		if err != nil {
			return value.Null, err
		}
		if i == len(expr.Items)-1 {
			return v, nil
		}
		if value.Truthy(v) == wantTruthy {
			return v, nil
		}
		last = v
	}
	return last, nil
}

func (e *Evaluator) evalCoalesce(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	for _, item := range expr.Items {
		v, err := e.evalNode(ctx, item, frame, a)
		if err != nil {
			return value.Null, err
		}
		if !v.IsNull() {
			return v, nil
		}
	}
	return value.Null, nil
}

// evalIf implements `if` as `[cond1, then1, cond2, then2, ..., else?]`.
// A single operand returns itself (`{"if":[x]}`); zero operands returns
// Null. A non-array operand never reaches here: the parser rejects it
// with Invalid Arguments.
func (e *Evaluator) evalIf(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	items := expr.Items
	if len(items) == 0 {
		return value.Null, nil
	}
	if len(items) == 1 {
		return e.evalNode(ctx, items[0], frame, a)
	}

	i := 0
	for i+1 < len(items) {
		cond, err := e.evalNode(ctx, items[i], frame, a)
		if err != nil {
			return value.Null, err
		}
		if value.Truthy(cond) {
			return e.evalNode(ctx, items[i+1], frame, a)
		}
		i += 2
	}
	if i < len(items) {
		return e.evalNode(ctx, items[i], frame, a)
	}
	return value.Null, nil
}
