package evaluator

import (
	"context"

	"github.com/sandrolain/rulelogic/pkg/arena"
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/scope"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// evalControl implements throw and try.
func (e *Evaluator) evalControl(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	switch expr.Op {
	case ast.OpThrow:
		return e.evalThrow(ctx, expr, frame, a)
	case ast.OpTry:
		return e.evalTry(ctx, expr, frame, a)
	}
	return value.Null, value.NewError(value.InvalidArguments, "not a control operator")
}

// evalThrow raises a structured error whose type is either the string
// operand or, if the operand is an object, that whole object.
func (e *Evaluator) evalThrow(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	if len(expr.Items) == 0 {
		return value.Null, value.NewUserError(value.String(""))
	}
	payload, err := e.evalNode(ctx, expr.Items[0], frame, a)
	if err != nil {
		return value.Null, err
	}
	return value.Null, value.NewUserError(payload)
}

// evalTry evaluates each operand in order. When an operand raises, the next
// operand is evaluated with a new scope frame whose data is the raised
// error's Payload, so val("type") and val([]) resolve against it. If every
// operand raises, the final error propagates.
func (e *Evaluator) evalTry(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	if len(expr.Items) == 0 {
		return value.Null, nil
	}

	cur := frame
	var lastErr *value.Error
	for i, item := range expr.Items {
		v, err := e.evalNode(ctx, item, cur, a)
		if cur != frame {
			scope.Release(cur)
		}
		if err == nil {
			return v, nil
		}
		lastErr = err
		if i == len(expr.Items)-1 {
			break
		}
		cur = scope.AcquirePush(frame, err.Payload)
	}
	return value.Null, lastErr
}
