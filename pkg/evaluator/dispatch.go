package evaluator

import (
	"context"

	"github.com/sandrolain/rulelogic/pkg/arena"
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/ops"
	"github.com/sandrolain/rulelogic/pkg/scope"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// evalNode dispatches on expr.Kind, threading ctx (cancellation/timeout/
// depth), the current scope frame, and the per-Eval-call arena through
// every recursive call.
func (e *Evaluator) evalNode(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	select {
	case <-ctx.Done():
		return value.Null, value.NewError(value.InvalidArguments, ctx.Err().Error())
	default:
	}

	if p := getDepthCounter(ctx); p != nil {
		*p++
		if *p > e.opts.MaxDepth {
			*p--
			return value.Null, value.NewError(value.StackOverflow, "evaluation exceeded maximum recursion depth")
		}
		defer func() { *p-- }()
	}

	if e.opts.Debug {
		e.logger.Debug("evaluating node", "kind", expr.Kind, "op", expr.Op)
	}

	switch expr.Kind {
	case ast.KLiteral:
		return expr.Lit, nil
	case ast.KVal:
		v, _ := scope.Resolve(frame, expr.Path)
		return v, nil
	case ast.KExists:
		return value.Bool(scope.Exists(frame, expr.Path)), nil
	case ast.KArray:
		return e.evalArrayLiteral(ctx, expr, frame, a)
	case ast.KObject:
		return e.evalObjectLiteral(ctx, expr, frame, a)
	case ast.KOp:
		return e.evalOp(ctx, expr, frame, a)
	case ast.KCustom:
		return e.evalCustom(ctx, expr, frame, a)
	default:
		return value.Null, value.NewError(value.InvalidArguments, "unknown expression node kind")
	}
}

func (e *Evaluator) evalArrayLiteral(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	items := make([]value.Value, len(expr.Items))
	for i, item := range expr.Items {
		v, err := e.evalNode(ctx, item, frame, a)
		if err != nil {
			return value.Null, err
		}
		items[i] = v
	}
	return value.Array(items), nil
}

func (e *Evaluator) evalObjectLiteral(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	pairs := make([]value.Pair, len(expr.Pairs))
	for i, p := range expr.Pairs {
		v, err := e.evalNode(ctx, p.Val, frame, a)
		if err != nil {
			return value.Null, err
		}
		pairs[i] = value.Pair{Key: p.Key, Val: v}
	}
	return value.Object(pairs), nil
}

// evalOperands evaluates every sub-expression in order, stopping and
// propagating on the first error.
func (e *Evaluator) evalOperands(ctx context.Context, items []*ast.Expr, frame *scope.Frame, a *arena.Arena) ([]value.Value, *value.Error) {
	vals := make([]value.Value, len(items))
	for i, item := range items {
		v, err := e.evalNode(ctx, item, frame, a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// evalOp routes an Op node either to a lazy control-flow handler (whose
// operands must not all be evaluated eagerly) or to eager evaluation
// followed by the shared pure-operator dispatcher in pkg/ops.
func (e *Evaluator) evalOp(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	switch expr.Op {
	case ast.OpAnd, ast.OpOr, ast.OpCoalesce, ast.OpIf:
		return e.evalLogical(ctx, expr, frame, a)
	case ast.OpMap, ast.OpFilter, ast.OpReduce, ast.OpAll, ast.OpSome, ast.OpNone, ast.OpSort, ast.OpFind:
		return e.evalArrayOp(ctx, expr, frame, a)
	case ast.OpThrow, ast.OpTry:
		return e.evalControl(ctx, expr, frame, a)
	default:
		args, err := e.evalOperands(ctx, expr.Items, frame, a)
		if err != nil {
			return value.Null, err
		}
		result, opErr, ok := ops.Call(expr.Op, args)
		if !ok {
			return value.Null, value.NewError(value.UnknownOperator, "operator \""+expr.Name+"\" has no evaluator dispatch")
		}
		return result, opErr
	}
}
