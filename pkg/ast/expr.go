// Package ast defines the immutable expression-tree shape a parsed rule is
// compiled into and the arena-backed bump allocator
// ([NodeArena]) that owns every node and child slice in the tree.
package ast

import "github.com/sandrolain/rulelogic/pkg/value"

// Kind identifies which variant of Expr is populated.
type Kind int

const (
	KLiteral Kind = iota
	KVal
	KExists
	KArray
	KObject
	KOp
	KCustom
)

// PathSegKind identifies one element of a Val/Exists path spec.
type PathSegKind int

const (
	// SegKey reads an object property by name.
	SegKey PathSegKind = iota
	// SegIndex reads an array element by position.
	SegIndex
	// SegTraverse is the `[[-N]]`/`[[N]]` scope-offset escape: walk the
	// frame stack by Offset frames before applying subsequent segments.
	SegTraverse
)

// PathSeg is one segment of a path spec.
type PathSeg struct {
	Kind   PathSegKind
	Key    string
	Index  int
	Offset int
}

// ObjectPair is one (static key, value expression) entry of an Object node.
type ObjectPair struct {
	Key string
	Val *Expr
}

// Expr is one node of the compiled, immutable expression tree. Only the
// fields relevant to Kind are populated; the zero value of the others is
// never read by the evaluator.
type Expr struct {
	Kind Kind

	// KLiteral
	Lit value.Value

	// KVal, KExists
	Path []PathSeg

	// KArray: element expressions. KOp, KCustom: operand expressions.
	Items []*Expr

	// KObject
	Pairs []ObjectPair

	// KOp
	Op OpTag

	// KCustom
	Name string
}

// arenaChunkSize is the number of Expr values pre-allocated per chunk —
// most rules fit comfortably in one chunk.
const arenaChunkSize = 64

// NodeArena is a bump-pointer allocator for Expr nodes, used exclusively
// by the parser while compiling one rule. Keeping the arena referenced by
// the resulting compiled rule (see package parser) ties its lifetime to
// the rule's lifetime so the GC reclaims it in bulk when the rule is
// released.
type NodeArena struct {
	chunks [][]Expr
	pos    int
}

// NewNodeArena returns an arena pre-warmed with one chunk.
func NewNodeArena() *NodeArena {
	return &NodeArena{chunks: [][]Expr{make([]Expr, arenaChunkSize)}}
}

// Alloc returns a pointer to a zero-valued Expr of the given Kind, backed
// by arena storage. All other fields must be filled in by the caller.
func (a *NodeArena) Alloc(kind Kind) *Expr {
	if a.pos >= arenaChunkSize {
		a.chunks = append(a.chunks, make([]Expr, arenaChunkSize))
		a.pos = 0
	}
	n := &a.chunks[len(a.chunks)-1][a.pos]
	a.pos++
	n.Kind = kind
	return n
}

// AllocItems returns a []*Expr of length n for operand or array-element
// lists. Pointer slices are small and short-lived relative to the Expr
// values they reference, so these are plain heap slices rather than
// bump-chunked like the Expr nodes themselves; they are still owned by
// the rule's lifetime and reclaimed together with it.
func (a *NodeArena) AllocItems(n int) []*Expr {
	if n == 0 {
		return nil
	}
	return make([]*Expr, n)
}
