/*
Package crosscheck recognizes sentences with an Earley parser, independently
of the CYK table engine, for the same grammar.

An Earley parser works on the rules as written, including rules longer than
two symbols, and does not share any code with the CYK engine. Both have to
agree on which sentences are in the language of a grammar; package
crosscheck is used to verify that they do.

The Earley parser is provided by package gorgo/lr/earley.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package crosscheck

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/cyk/grammar"
	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// startSymbol is the top-level symbol deriving each of the goals. User
// symbols cannot contain a colon.
const startSymbol = ":Goal"

// Recognizer is an Earley recognizer for a grammar and a set of goal
// symbols.
type Recognizer struct {
	analysis *lr.LRAnalysis
	tokens   map[grammar.Symbol]int // terminal category → token value
}

// NewRecognizer creates a recognizer accepting sentences derivable from any of
// the goal symbols.
func NewRecognizer(g *grammar.Grammar, goals ...string) (*Recognizer, error) {
	if len(goals) == 0 {
		return nil, errors.New("recognizer needs at least one goal symbol")
	}
	rec := &Recognizer{tokens: make(map[grammar.Symbol]int)}
	for i, cat := range g.Terminals() {
		rec.tokens[cat] = i + 1
	}
	b := lr.NewGrammarBuilder("CYK cross-check")
	for _, goal := range goals {
		b.LHS(startSymbol).N(goal).End()
	}
	for _, rule := range g.Rules() {
		rb := b.LHS(string(rule.LHS))
		for _, sym := range rule.RHS {
			if sym.IsTerminal() {
				rb = rb.T(string(sym), rec.tokens[sym])
			} else {
				rb = rb.N(string(sym))
			}
		}
		rb.End()
	}
	lrg, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("cannot build Earley grammar: %w", err)
	}
	rec.analysis = lr.Analysis(lrg)
	T().Debugf("Earley grammar for goals %v has %d rules", goals, len(g.Rules())+len(goals))
	return rec, nil
}

// Recognize returns true if the sequence of terminal categories is a
// sentence of the grammar. Recognizers may be used concurrently.
func (rec *Recognizer) Recognize(categories []grammar.Symbol) (bool, error) {
	if len(categories) == 0 {
		return false, cyk.ErrEmptySentence
	}
	tokvals := make([]int, len(categories))
	for i, cat := range categories {
		tokval, ok := rec.tokens[cat]
		if !ok { // no rule consumes this category
			return false, nil
		}
		tokvals[i] = tokval
	}
	parser := earley.NewParser(rec.analysis)
	accept, err := parser.Parse(&tokenStream{categories: categories, tokvals: tokvals}, nil)
	if err != nil {
		return false, err
	}
	return accept, nil
}

// Check parses a sentence with the CYK parser p and recognizes it with an
// Earley recognizer for the same grammar. It returns an error if the sentence
// cannot be tokenized or the two disagree.
func Check(p *cyk.Parser, sentence string, goals ...string) (bool, error) {
	_, categories, err := p.Tokenize(sentence)
	if err != nil {
		return false, err
	}
	rec, err := NewRecognizer(p.Grammar(), goals...)
	if err != nil {
		return false, err
	}
	earleyAccepts, err := rec.Recognize(categories)
	if err != nil {
		return false, err
	}
	_, err = p.Parse(sentence, goals...)
	var noderiv *cyk.NoDerivationError
	if err != nil && !errors.As(err, &noderiv) {
		return false, err
	}
	cykAccepts := err == nil
	if cykAccepts != earleyAccepts {
		T().Errorf("CYK and Earley disagree on %q: CYK=%v, Earley=%v", sentence, cykAccepts, earleyAccepts)
		return false, &DisagreementError{Sentence: sentence, CYK: cykAccepts, Earley: earleyAccepts}
	}
	T().Infof("CYK and Earley agree on %q: %v", sentence, cykAccepts)
	return cykAccepts, nil
}

// DisagreementError is returned by Check if the CYK parser and the Earley
// recognizer come to different results.
type DisagreementError struct {
	Sentence    string
	CYK, Earley bool
}

func (e *DisagreementError) Error() string {
	return fmt.Sprintf("CYK (%v) and Earley (%v) disagree on %q", e.CYK, e.Earley, e.Sentence)
}

// tokenStream implements the scanner.Tokenizer interface for a sequence of
// categorized words.
type tokenStream struct {
	categories []grammar.Symbol
	tokvals    []int
	pos        int
}

func (ts *tokenStream) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if ts.pos >= len(ts.tokvals) {
		return scanner.EOF, "", uint64(ts.pos), 0
	}
	i := ts.pos
	ts.pos++
	return ts.tokvals[i], string(ts.categories[i]), uint64(i), 1
}

func (ts *tokenStream) SetErrorHandler(h func(error)) {}
