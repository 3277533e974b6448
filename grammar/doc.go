/*
Package grammar compiles a textual context-free grammar into the normalized
production relations a CYK recognizer works on.

Rule Format

Rules are given one per line:

    S: Verb NounClause | Verb NounClause PrepClause
    NounClause: Count ANoun | Adjective Noun | noun
    Count: definiteArticle | indefiniteArticle | number

Symbols starting with an uppercase letter are non-terminals, symbols
starting with a lowercase letter are terminal categories, as assigned to
words by a lexicon (see package lexicon). Every alternative has to be of
one of three shapes:

    LHS: category              terminal rule
    LHS: A B                   pair rule
    LHS: A B C ...             chain rule, all non-terminals

Unit rules (LHS: A) are not supported. Chain rules are folded into pair
rules by introducing intermediate symbols, left to right:

    LHS: A B C D   ⇒   :1 → A B,  :2 → :1 C,  LHS → :2 D

Intermediate symbols live in their own namespace: their names start with a
colon, which cannot occur in a user symbol. Parsers use IsGenerated to tell
them apart and to flatten them out of derivation trees.

Malformed lines and alternatives are reported, traced to the core tracer and
skipped; compilation itself never fails.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
