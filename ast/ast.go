/*
Package ast defines the derivation trees produced by the CYK parser.

A tree consists of three kinds of nodes:

    *Word     a leaf, holding a terminal category and the word of the input it stands for
    *Tagged   a node labelled with the grammar symbol deriving its child
    *Rule     an ordered sequence of children, the right hand side of a rule

The right hand side of a grammar rule "NounClause: Count ANoun" shows up as

    Tagged(NounClause, Rule[Tagged(Count, …), Tagged(ANoun, …)])

Trees are fully owned by their root; they do not share nodes with the
parser that built them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"fmt"
	"strings"
)

// Node is a node of a derivation tree. Concrete node types are *Word,
// *Tagged and *Rule.
type Node interface {
	fmt.Stringer
	isNode()
}

// Word is a leaf of a derivation tree.
type Word struct {
	Terminal string // terminal category, as assigned by the lexicon
	Origin   string // the input token
}

// Tagged labels a subtree with the grammar symbol it has been derived from.
type Tagged struct {
	Symbol string
	Child  Node
}

// Rule holds the children of a derivation step, left to right.
type Rule struct {
	Children []Node
}

func (*Word) isNode()   {}
func (*Tagged) isNode() {}
func (*Rule) isNode()   {}

func (w *Word) String() string {
	return fmt.Sprintf("(WORD %s, %s)", w.Terminal, w.Origin)
}

func (t *Tagged) String() string {
	return fmt.Sprintf("(TAGGED %s, %s)", t.Symbol, str(t.Child))
}

func (r *Rule) String() string {
	var sb strings.Builder
	sb.WriteString("\n(RULE\n")
	for _, c := range r.Children {
		sb.WriteString(str(c))
		sb.WriteByte('\n')
	}
	sb.WriteByte(')')
	return sb.String()
}

func str(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

// SExpr renders a tree as a compact, single-line s-expression:
//
//    ((Tagged Verb (Word verb eat)) (Tagged NounClause (Word noun apple)))
//
func SExpr(n Node) string {
	var sb strings.Builder
	sexpr(&sb, n)
	return sb.String()
}

func sexpr(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Word:
		fmt.Fprintf(sb, "(Word %s %s)", n.Terminal, n.Origin)
	case *Tagged:
		fmt.Fprintf(sb, "(Tagged %s ", n.Symbol)
		sexpr(sb, n.Child)
		sb.WriteByte(')')
	case *Rule: // an empty rule is ()
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sexpr(sb, c)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString("()")
	}
}

// Equal reports whether two trees are structurally equal.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Word:
		b, ok := b.(*Word)
		if !ok || a == nil || b == nil {
			return ok && a == b
		}
		return *a == *b
	case *Tagged:
		b, ok := b.(*Tagged)
		if !ok || a == nil || b == nil {
			return ok && a == b
		}
		return a.Symbol == b.Symbol && Equal(a.Child, b.Child)
	case *Rule:
		b, ok := b.(*Rule)
		if !ok || a == nil || b == nil {
			return ok && a == b
		}
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// Clone returns a deep copy of a tree.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Word:
		w := *n
		return &w
	case *Tagged:
		return &Tagged{Symbol: n.Symbol, Child: Clone(n.Child)}
	case *Rule:
		r := &Rule{Children: make([]Node, len(n.Children))}
		for i, c := range n.Children {
			r.Children[i] = Clone(c)
		}
		return r
	}
	return nil
}
