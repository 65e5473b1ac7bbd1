// Package parser implements the single recursive-descent pass from a
// decoded JSON rule tree (interface{}, as produced by encoding/json) to an
// immutable expression tree (pkg/ast), including associative flattening
// and constant folding.
//
// Unlike a textual-expression parser there is no lexer: the input is
// already a generic Go value tree, and the parser's job is entirely
// structural — recognize the single-keyed-object operator shape, build
// path specs for val/var, and fold pure operators eagerly.
package parser

import (
	"fmt"

	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// ParseOption configures a Parse call.
type ParseOption func(*parseOptions)

type parseOptions struct {
	maxDepth int
}

// WithMaxDepth limits how deeply nested a rule document may be before
// parsing fails with an error, guarding against stack overflow on
// pathologically nested input.
func WithMaxDepth(depth int) ParseOption {
	return func(o *parseOptions) { o.maxDepth = depth }
}

const defaultMaxDepth = 256

// Parse decodes ruleJSON (as returned by encoding/json.Unmarshal into
// interface{}) into an immutable expression tree, applying associative
// flattening and constant folding as it goes.
func Parse(ruleJSON interface{}, opts ...ParseOption) (*ast.Expr, error) {
	o := parseOptions{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser{arena: ast.NewNodeArena(), maxDepth: o.maxDepth}
	expr, err := p.parseNode(ruleJSON, 0)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

type parser struct {
	arena    *ast.NodeArena
	maxDepth int
}

// ErrTooDeep is returned when a rule document nests deeper than the
// configured maximum.
type ErrTooDeep struct{ MaxDepth int }

func (e *ErrTooDeep) Error() string {
	return fmt.Sprintf("rule document nests deeper than max depth %d", e.MaxDepth)
}

func (p *parser) parseNode(node interface{}, depth int) (*ast.Expr, error) {
	if depth > p.maxDepth {
		return nil, &ErrTooDeep{MaxDepth: p.maxDepth}
	}

	switch v := node.(type) {
	case map[string]interface{}:
		return p.parseObject(v, depth)
	case []interface{}:
		return p.parseArray(v, depth)
	default:
		return p.literal(node), nil
	}
}

func (p *parser) parseArray(items []interface{}, depth int) (*ast.Expr, error) {
	exprs := p.arena.AllocItems(len(items))
	for i, item := range items {
		child, err := p.parseNode(item, depth+1)
		if err != nil {
			return nil, err
		}
		exprs[i] = child
	}
	n := p.arena.Alloc(ast.KArray)
	n.Items = exprs
	return n, nil
}

// parseObject recognizes the single-keyed operator shape:
// a one-key object whose key is val/var/exists becomes a Val/Exists node,
// one whose key names a built-in operator becomes Op, and any other
// one-key object becomes Custom (whether a custom operator of that name
// is registered is only checked at evaluation time); objects with zero
// or several keys are plain Object nodes.
func (p *parser) parseObject(obj map[string]interface{}, depth int) (*ast.Expr, error) {
	if len(obj) == 1 {
		for key, val := range obj {
			switch key {
			case "val":
				return p.parseVal(val, false)
			case "var":
				return p.parseVal(val, false)
			case "exists":
				return p.parseVal(val, true)
			}
			if tag, associative, shortCircuit, pure, ok := ast.LookupOp(key); ok {
				return p.parseOp(key, tag, associative, shortCircuit, pure, val, depth)
			}
			return p.parseCustom(key, val, depth)
		}
	}
	return p.parsePlainObject(obj, depth)
}

func (p *parser) parsePlainObject(obj map[string]interface{}, depth int) (*ast.Expr, error) {
	pairs := make([]ast.ObjectPair, 0, len(obj))
	for key, val := range obj {
		child, err := p.parseNode(val, depth+1)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.ObjectPair{Key: key, Val: child})
	}
	n := p.arena.Alloc(ast.KObject)
	n.Pairs = pairs
	return n, nil
}

// operands implements the single-vs-array operand shorthand: an array
// value is the positional operand list, anything else is a one-element
// operand list.
func operands(val interface{}) []interface{} {
	if arr, ok := val.([]interface{}); ok {
		return arr
	}
	return []interface{}{val}
}

// requiresArrayOperand is true for operators whose operand sugar
// ("a single non-array value stands for a one-element list") does not
// apply: and/or/if require a genuine JSON array, so a non-array operand
// is an Invalid Arguments failure rather than a one-element operand list.
func requiresArrayOperand(tag ast.OpTag) bool {
	switch tag {
	case ast.OpAnd, ast.OpOr, ast.OpIf:
		return true
	}
	return false
}

func (p *parser) parseOp(name string, tag ast.OpTag, associative, shortCircuit, pure bool, val interface{}, depth int) (*ast.Expr, error) {
	if requiresArrayOperand(tag) {
		if _, ok := val.([]interface{}); !ok {
			return nil, value.NewError(value.InvalidArguments, "\""+name+"\" requires an array operand")
		}
	}
	rawArgs := operands(val)
	children := make([]*ast.Expr, 0, len(rawArgs))
	for _, a := range rawArgs {
		child, err := p.parseNode(a, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if associative {
		children = flatten(tag, children)
	}
	n := p.arena.Alloc(ast.KOp)
	n.Op = tag
	n.Items = children
	n.Name = name
	if pure {
		if folded := p.foldConstant(tag, shortCircuit, children); folded != nil {
			return folded, nil
		}
	}
	return n, nil
}

func (p *parser) parseCustom(name string, val interface{}, depth int) (*ast.Expr, error) {
	rawArgs := operands(val)
	children := make([]*ast.Expr, 0, len(rawArgs))
	for _, a := range rawArgs {
		child, err := p.parseNode(a, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	n := p.arena.Alloc(ast.KCustom)
	n.Name = name
	n.Items = children
	return n, nil
}

// flatten absorbs same-tag children into one flat operand list (spec
// §4.C, "Associative flattening"). It must not cross a short-circuit
// boundary belonging to a *different* operator: `and` of `and` flattens,
// `and` of `or` does not.
func flatten(tag ast.OpTag, children []*ast.Expr) []*ast.Expr {
	flat := make([]*ast.Expr, 0, len(children))
	for _, c := range children {
		if c.Kind == ast.KOp && c.Op == tag {
			flat = append(flat, c.Items...)
		} else {
			flat = append(flat, c)
		}
	}
	return flat
}

func (p *parser) literal(v interface{}) *ast.Expr {
	n := p.arena.Alloc(ast.KLiteral)
	n.Lit = value.FromJSON(v)
	return n
}
