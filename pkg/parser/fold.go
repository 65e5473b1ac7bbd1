package parser

import (
	"github.com/sandrolain/rulelogic/pkg/ast"
	"github.com/sandrolain/rulelogic/pkg/ops"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// foldConstant implements constant folding: if every operand
// of a pure operator is already a Literal, evaluate it now and return a
// Literal node. Short-circuit operators (and/or/??) additionally fold a
// decisive literal prefix even when later operands are not literals,
// since those operands would never be evaluated anyway — but folding
// must never evaluate (or appear to evaluate) an operand that the real
// short-circuit semantics would have skipped. Returns nil when the
// operator cannot be folded, leaving the Op node as built.
func (p *parser) foldConstant(tag ast.OpTag, shortCircuit bool, children []*ast.Expr) *ast.Expr {
	if shortCircuit {
		if n := p.foldShortCircuitPrefix(tag, children); n != nil {
			return n
		}
	}

	lits, ok := allLiterals(children)
	if !ok {
		return nil
	}
	result, err, known := ops.Call(tag, lits)
	if !known || err != nil {
		return nil
	}
	return p.literalNode(result)
}

func allLiterals(children []*ast.Expr) ([]value.Value, bool) {
	lits := make([]value.Value, len(children))
	for i, c := range children {
		if c.Kind != ast.KLiteral {
			return nil, false
		}
		lits[i] = c.Lit
	}
	return lits, true
}

// foldShortCircuitPrefix folds and/or/?? when a literal prefix already
// determines the result regardless of what follows.
func (p *parser) foldShortCircuitPrefix(tag ast.OpTag, children []*ast.Expr) *ast.Expr {
	if len(children) == 0 && (tag == ast.OpAnd || tag == ast.OpOr) {
		return p.literalNode(value.Null)
	}

	switch tag {
	case ast.OpAnd:
		for _, c := range children {
			if c.Kind != ast.KLiteral {
				return nil
			}
			if !value.Truthy(c.Lit) {
				return p.literalNode(c.Lit)
			}
		}
		return p.literalNode(children[len(children)-1].Lit)
	case ast.OpOr:
		for _, c := range children {
			if c.Kind != ast.KLiteral {
				return nil
			}
			if value.Truthy(c.Lit) {
				return p.literalNode(c.Lit)
			}
		}
		return p.literalNode(children[len(children)-1].Lit)
	case ast.OpCoalesce:
		for _, c := range children {
			if c.Kind != ast.KLiteral {
				return nil
			}
			if !c.Lit.IsNull() {
				return p.literalNode(c.Lit)
			}
		}
		return p.literalNode(value.Null)
	}
	return nil
}

func (p *parser) literalNode(v value.Value) *ast.Expr {
	n := p.arena.Alloc(ast.KLiteral)
	n.Lit = v
	return n
}
