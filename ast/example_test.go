package ast_test

import (
	"fmt"

	"github.com/npillmayer/cyk/ast"
)

func ExampleSearch() {
	tree := &ast.Rule{Children: []ast.Node{
		&ast.Tagged{Symbol: "Verb", Child: &ast.Word{Terminal: "verb", Origin: "eat"}},
		&ast.Tagged{Symbol: "NounClause", Child: &ast.Word{Terminal: "noun", Origin: "apple"}},
	}}
	search := ast.NewSearch(tree)
	verb, _ := search.Terminal("verb")
	noun, _ := search.Child("NounClause").Terminal("noun")
	fmt.Println(verb, noun)
	fmt.Println(ast.SExpr(tree))
	// Output:
	// eat apple
	// ((Tagged Verb (Word verb eat)) (Tagged NounClause (Word noun apple)))
}
