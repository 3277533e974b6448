package cyk

import (
	"fmt"

	"github.com/npillmayer/cyk/ast"
	"github.com/npillmayer/cyk/grammar"
)

// intermediate is a back-reference stored in a table cell, telling how a
// symbol has been derived for the span of the cell.
type intermediate interface {
	fmt.Stringer
}

// wordEntry: a symbol derived directly from a word.
type wordEntry struct {
	category grammar.Symbol
	origin   string
}

func (w *wordEntry) String() string {
	return fmt.Sprintf("word(%s, %s)", w.category, w.origin)
}

// derivation: a symbol derived from a pair of symbols found in two cells.
type derivation struct {
	left, right         grammar.Symbol
	leftCell, rightCell int
}

func (d *derivation) String() string {
	return fmt.Sprintf("derivation(%s@%d, %s@%d)", d.left, d.leftCell, d.right, d.rightCell)
}

// derive builds the tree for an intermediate of t.
//
// Intermediate symbols of chain rules are always the left part of a pair
// and always derive a rule node. Instead of tagging them, their right
// neighbour is appended to that rule node, which flattens a chain of pairs
// into a single rule node with all the symbols of the rule as written.
func (t *table) derive(g *grammar.Grammar, im intermediate) (ast.Node, error) {
	switch im := im.(type) {
	case *wordEntry:
		return &ast.Word{Terminal: string(im.category), Origin: im.origin}, nil
	case *derivation:
		leftTree, err := t.deriveAt(g, im.left, im.leftCell)
		if err != nil {
			return nil, err
		}
		rightTree, err := t.deriveAt(g, im.right, im.rightCell)
		if err != nil {
			return nil, err
		}
		right := &ast.Tagged{Symbol: string(im.right), Child: rightTree}
		if g.IsGenerated(im.left) {
			if r, ok := leftTree.(*ast.Rule); ok {
				r.Children = append(r.Children, right)
				return r, nil
			}
		}
		return &ast.Rule{Children: []ast.Node{
			&ast.Tagged{Symbol: string(im.left), Child: leftTree},
			right,
		}}, nil
	}
	panic(fmt.Sprintf("unknown type of table entry: %T", im))
}

func (t *table) deriveAt(g *grammar.Grammar, sym grammar.Symbol, index int) (ast.Node, error) {
	if index < 0 || index >= len(t.cells) {
		return nil, &InternalConsistencyError{Symbol: string(sym), Cell: index}
	}
	im, ok := t.cells[index].get(sym)
	if !ok {
		return nil, &InternalConsistencyError{Symbol: string(sym), Cell: index}
	}
	return t.derive(g, im)
}
