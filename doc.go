/*
Package cyk is a recognizer and parser for context-free languages, based on
the Cocke–Younger–Kasami (CYK) algorithm.

A parser is set up from two texts: a set of grammar rules (see package
grammar) and a lexicon assigning terminal categories to words (see package
lexicon). Rules have to be in a form close to Chomsky normal form: every
alternative is either a single terminal category, or a sequence of two or
more non-terminals. Longer sequences are transparently folded into pairs.

    rules := `
    S: Verb NounClause | Verb NounClause PrepClause
    NounClause: Count ANoun | Adjective Noun | noun
    ...`
    parser, errs := cyk.Load(rules, words)
    result, err := parser.Parse("eat a clean apple", "S")
    fmt.Println(result.Tree)

Parsing a sentence of n words fills a triangular table of n×n cells. Cell
(l, s) holds every symbol deriving the l words starting at word s, together
with a back-reference to how it has been derived. Cells are filled by
increasing span length, starting position and split point, and the first
derivation found for a symbol in a cell wins. This makes results fully
deterministic, but no attempt is made to choose between ambiguous
derivations.

If the top-most cell contains one of the goal symbols requested by the
caller, a derivation tree (see package ast) is built from the
back-references. Derivation trees never contain the intermediate symbols
introduced for rules longer than two symbols.

Errors

A sentence may fail to parse for two different reasons: one or more words
are not in the lexicon (UnknownWordError, listing every unknown word), or
the sentence is not in the language of the grammar for any of the goal
symbols (NoDerivationError). Empty sentences are rejected with
ErrEmptySentence.

Parsers are safe for concurrent use, as long as neither the grammar nor the
lexicon are modified.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
