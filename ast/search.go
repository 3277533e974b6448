package ast

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Walk traverses a tree depth-first, left to right, calling fn for every
// node before its children. If fn returns false, the children of that node
// are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(n)
	for !stack.Empty() {
		top, _ := stack.Pop()
		node := top.(Node)
		if !fn(node) {
			continue
		}
		switch node := node.(type) {
		case *Tagged:
			if node.Child != nil {
				stack.Push(node.Child)
			}
		case *Rule:
			for i := len(node.Children) - 1; i >= 0; i-- {
				stack.Push(node.Children[i])
			}
		}
	}
}

// Search navigates a derivation tree by grammar symbols. Searches may be
// chained; a search which did not find anything yields an empty Search, for
// which every further step is empty as well.
//
//    search := ast.NewSearch(tree)
//    noun, ok := search.Child("NounClause").Terminal("noun")
//
type Search struct {
	node Node
}

// NewSearch starts a search at n.
func NewSearch(n Node) Search {
	return Search{node: n}
}

// Node returns the node a search has arrived at, or nil.
func (s Search) Node() Node {
	return s.node
}

// Found is true if s has arrived at a node.
func (s Search) Found() bool {
	return s.node != nil
}

// Tree searches depth-first for the first node tagged with symbol and
// continues at the subtree below it.
func (s Search) Tree(symbol string) Search {
	var found Node
	Walk(s.node, func(n Node) bool {
		if found != nil {
			return false
		}
		if t, ok := n.(*Tagged); ok && t.Symbol == symbol {
			found = t.Child
			return false
		}
		return true
	})
	return Search{node: found}
}

// Child looks for a direct child tagged with symbol and continues there.
// Direct children are the children of a rule node, or of the rule node below
// a tagged node.
func (s Search) Child(symbol string) Search {
	r, ok := s.node.(*Rule)
	if t, isTagged := s.node.(*Tagged); isTagged {
		r, ok = t.Child.(*Rule)
	}
	if !ok {
		return Search{}
	}
	for _, c := range r.Children {
		if t, ok := c.(*Tagged); ok && t.Symbol == symbol {
			return Search{node: t}
		}
	}
	return Search{}
}

// Terminal returns the input word of the first leaf of the given terminal
// category, searching depth-first.
func (s Search) Terminal(category string) (string, bool) {
	var origin string
	var found bool
	Walk(s.node, func(n Node) bool {
		if found {
			return false
		}
		if w, ok := n.(*Word); ok && w.Terminal == category {
			origin, found = w.Origin, true
		}
		return true
	})
	return origin, found
}
