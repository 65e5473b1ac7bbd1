package evaluator

import (
	"context"
	"sort"

	"github.com/sandrolain/rulelogic/pkg/arena"
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/scope"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// iterItem is one element visited by an array higher-order operator,
// carrying whichever iteration metadata (array index or object key) the
// source collection supplies.
type iterItem struct {
	data value.Value
	idx  *int
	key  *string
}

// iterationItems implements the per-collection-kind iteration rule shared
// by map/filter/reduce/all/some/none: arrays iterate by
// index, objects iterate entries in key-sorted order, a scalar is wrapped as a single element, and Null
// (an unresolved variable) yields no elements at all.
func iterationItems(coll value.Value) []iterItem {
	switch coll.Kind() {
	case value.KindArray:
		items := coll.Items()
		out := make([]iterItem, len(items))
		for i, it := range items {
			idx := i
			out[i] = iterItem{data: it, idx: &idx}
		}
		return out
	case value.KindObject:
		pairs := append([]value.Pair(nil), coll.Pairs()...)
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
		out := make([]iterItem, len(pairs))
		for i, p := range pairs {
			key := p.Key
			out[i] = iterItem{data: p.Val, key: &key}
		}
		return out
	case value.KindNull:
		return nil
	default:
		idx := 0
		return []iterItem{{data: coll, idx: &idx}}
	}
}

// pushItem acquires a pooled child frame for item. Callers must scope.Release it once the
// body has been evaluated against it.
func pushItem(frame *scope.Frame, item iterItem) *scope.Frame {
	switch {
	case item.idx != nil:
		return scope.AcquireIndex(frame, item.data, *item.idx)
	case item.key != nil:
		return scope.AcquireKey(frame, item.data, *item.key)
	default:
		return scope.AcquirePush(frame, item.data)
	}
}

func (e *Evaluator) evalArrayOp(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena) (value.Value, *value.Error) {
	if len(expr.Items) == 0 {
		return value.Null, value.NewError(value.InvalidArguments, "\""+expr.Name+"\" requires a collection operand")
	}
	coll, err := e.evalNode(ctx, expr.Items[0], frame, a)
	if err != nil {
		return value.Null, err
	}

	switch expr.Op {
	case ast.OpMap:
		return e.evalMap(ctx, expr, frame, a, coll)
	case ast.OpFilter:
		return e.evalFilter(ctx, expr, frame, a, coll)
	case ast.OpReduce:
		return e.evalReduce(ctx, expr, frame, a, coll)
	case ast.OpAll:
		return e.evalAllSomeNone(ctx, expr, frame, a, coll, allMode)
	case ast.OpSome:
		return e.evalAllSomeNone(ctx, expr, frame, a, coll, someMode)
	case ast.OpNone:
		return e.evalAllSomeNone(ctx, expr, frame, a, coll, noneMode)
	case ast.OpSort:
		return e.evalSort(ctx, expr, frame, a, coll)
	case ast.OpFind:
		return e.evalFind(ctx, expr, frame, a, coll)
	}
	return value.Null, value.NewError(value.InvalidArguments, "not an array operator")
}

func (e *Evaluator) evalMap(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena, coll value.Value) (value.Value, *value.Error) {
	if len(expr.Items) < 2 {
		return value.Null, value.NewError(value.InvalidArguments, "\"map\" requires a body operand")
	}
	body := expr.Items[1]
	items := iterationItems(coll)
	out := make([]value.Value, 0, len(items))
	for _, it := range items {
		child := pushItem(frame, it)
		v, err := e.evalNode(ctx, body, child, a)
		scope.Release(child)
		if err != nil {
			return value.Null, err
		}
		out = append(out, v)
	}
	return value.Array(out), nil
}

func (e *Evaluator) evalFilter(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena, coll value.Value) (value.Value, *value.Error) {
	if len(expr.Items) < 2 {
		return value.Null, value.NewError(value.InvalidArguments, "\"filter\" requires a body operand")
	}
	body := expr.Items[1]
	items := iterationItems(coll)
	out := make([]value.Value, 0, len(items))
	for _, it := range items {
		child := pushItem(frame, it)
		v, err := e.evalNode(ctx, body, child, a)
		scope.Release(child)
		if err != nil {
			return value.Null, err
		}
		if value.Truthy(v) {
			out = append(out, it.data)
		}
	}
	return value.Array(out), nil
}

func (e *Evaluator) evalFind(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena, coll value.Value) (value.Value, *value.Error) {
	if len(expr.Items) < 2 {
		return value.Null, value.NewError(value.InvalidArguments, "\"find\" requires a body operand")
	}
	body := expr.Items[1]
	for _, it := range iterationItems(coll) {
		child := pushItem(frame, it)
		v, err := e.evalNode(ctx, body, child, a)
		scope.Release(child)
		if err != nil {
			return value.Null, err
		}
		if value.Truthy(v) {
			return it.data, nil
		}
	}
	return value.Null, nil
}

// evalReduce implements `reduce([coll, body, seed])`: body evaluates in a
// scope exposing `{current, accumulator}` via val. An empty
// or missing collection leaves the seed unchanged.
func (e *Evaluator) evalReduce(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena, coll value.Value) (value.Value, *value.Error) {
	if len(expr.Items) < 3 {
		return value.Null, value.NewError(value.InvalidArguments, "\"reduce\" requires [collection, body, seed]")
	}
	body := expr.Items[1]
	acc, err := e.evalNode(ctx, expr.Items[2], frame, a)
	if err != nil {
		return value.Null, err
	}
	for _, it := range iterationItems(coll) {
		scopeData := value.Object([]value.Pair{
			{Key: "current", Val: it.data},
			{Key: "accumulator", Val: acc},
		})
		child := scope.AcquirePush(frame, scopeData)
		acc, err = e.evalNode(ctx, body, child, a)
		scope.Release(child)
		if err != nil {
			return value.Null, err
		}
	}
	return acc, nil
}

type predicateMode int

const (
	allMode predicateMode = iota
	someMode
	noneMode
)

// evalAllSomeNone implements the boolean short-circuiting predicates over
// coll, following the baseline JSONLogic-family convention for the empty
// case: all/some on an empty collection are false, none is true.
func (e *Evaluator) evalAllSomeNone(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena, coll value.Value, mode predicateMode) (value.Value, *value.Error) {
	if len(expr.Items) < 2 {
		return value.Null, value.NewError(value.InvalidArguments, "requires a body operand")
	}
	body := expr.Items[1]
	items := iterationItems(coll)
	if len(items) == 0 {
		return value.Bool(mode == noneMode), nil
	}
	for _, it := range items {
		child := pushItem(frame, it)
		v, err := e.evalNode(ctx, body, child, a)
		scope.Release(child)
		if err != nil {
			return value.Null, err
		}
		truthy := value.Truthy(v)
		switch mode {
		case allMode:
			if !truthy {
				return value.Bool(false), nil
			}
		case someMode:
			if truthy {
				return value.Bool(true), nil
			}
		case noneMode:
			if truthy {
				return value.Bool(false), nil
			}
		}
	}
	return value.Bool(mode != someMode), nil
}

// evalSort implements `sort([coll, asc?, keyExpr?])`: a
// stable sort, optionally by a per-element key, with cross-type ordering
// `null < false < true < numbers < strings` and an unrecognized
// direction value treated as ascending.
func (e *Evaluator) evalSort(ctx context.Context, expr *ast.Expr, frame *scope.Frame, a *arena.Arena, coll value.Value) (value.Value, *value.Error) {
	if coll.IsNull() {
		return value.Null, nil
	}
	if coll.Kind() != value.KindArray {
		return value.Null, value.NewError(value.InvalidArguments, "\"sort\" requires an array collection")
	}

	ascending := true
	if len(expr.Items) > 1 {
		dir, err := e.evalNode(ctx, expr.Items[1], frame, a)
		if err != nil {
			return value.Null, err
		}
		if dir.Kind() == value.KindBool {
			ascending = dir.Bool()
		}
	}

	items := coll.Items()
	keys := make([]value.Value, len(items))
	if len(expr.Items) > 2 {
		keyExpr := expr.Items[2]
		for i, it := range items {
			child := scope.AcquirePush(frame, it)
			k, err := e.evalNode(ctx, keyExpr, child, a)
			scope.Release(child)
			if err != nil {
				return value.Null, err
			}
			keys[i] = k
		}
	} else {
		copy(keys, items)
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		cmp := value.CompareForSort(keys[order[i]], keys[order[j]])
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})

	out := make([]value.Value, len(items))
	for i, srcIdx := range order {
		out[i] = items[srcIdx]
	}
	return value.Array(out), nil
}
