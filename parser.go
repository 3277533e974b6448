package cyk

import (
	"fmt"
	"os"

	"github.com/npillmayer/cyk/ast"
	"github.com/npillmayer/cyk/grammar"
	"github.com/npillmayer/cyk/lexicon"
	"github.com/npillmayer/cyk/segment"
)

// Parser parses sentences for a grammar and a lexicon.
type Parser struct {
	grammar *grammar.Grammar
	lexicon *lexicon.Lexicon
}

// NewParser creates a parser. Neither g nor lx may be modified while the
// parser is in use.
func NewParser(g *grammar.Grammar, lx *lexicon.Lexicon) *Parser {
	return &Parser{grammar: g, lexicon: lx}
}

// Load compiles a rule text and a lexicon text and creates a parser for
// them. Malformed rules are skipped and returned for inspection; they do not
// prevent the parser from being created.
func Load(rules, words string) (*Parser, []*grammar.RuleFormatError) {
	g, errs := grammar.Compile(rules)
	lx := lexicon.Compile(words)
	CT().Infof("loaded grammar with %d rules and lexicon with %d words", len(g.Rules()), lx.Len())
	return NewParser(g, lx), errs
}

// LoadFiles is like Load, but reads rules and words from files.
func LoadFiles(rulesFile, wordsFile string) (*Parser, []*grammar.RuleFormatError, error) {
	rules, err := os.ReadFile(rulesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("reading grammar: %w", err)
	}
	words, err := os.ReadFile(wordsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("reading lexicon: %w", err)
	}
	p, errs := Load(string(rules), string(words))
	return p, errs, nil
}

// Grammar returns the grammar of p.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// Lexicon returns the lexicon of p.
func (p *Parser) Lexicon() *lexicon.Lexicon {
	return p.lexicon
}

// Result is the outcome of a successful parse.
type Result struct {
	Goal       string           // the goal symbol the sentence has been derived from
	Tree       ast.Node         // the derivation tree
	Tokens     []string         // the words of the sentence
	Categories []grammar.Symbol // terminal categories of the words
}

// Tokenize splits a sentence into words and looks up their categories.
// If words are missing from the lexicon, an *UnknownWordError lists all of them.
func (p *Parser) Tokenize(sentence string) ([]string, []grammar.Symbol, error) {
	tokens, err := segment.Words(sentence)
	if err != nil {
		return nil, nil, err
	}
	if len(tokens) == 0 {
		return nil, nil, ErrEmptySentence
	}
	categories := make([]grammar.Symbol, len(tokens))
	var unknown []string
	for i, token := range tokens {
		cat, ok := p.lexicon.Lookup(token)
		if !ok {
			unknown = append(unknown, token)
			continue
		}
		categories[i] = cat
	}
	if len(unknown) > 0 {
		return tokens, nil, &UnknownWordError{Words: unknown}
	}
	return tokens, categories, nil
}

// Parse parses a sentence and returns the derivation tree for the first of
// the goal symbols (in the order given) deriving it.
//
// Parse returns an *UnknownWordError if words of the sentence are not in
// the lexicon, and a *NoDerivationError if no goal symbol derives the
// sentence.
func (p *Parser) Parse(sentence string, goals ...string) (*Result, error) {
	tokens, categories, err := p.Tokenize(sentence)
	if err != nil {
		CT().Infof("cannot parse %q: %v", sentence, err)
		return nil, err
	}
	n := len(tokens)
	t := borrowTable(n)
	defer t.releaseIntoPool()
	t.fill(p.grammar, categories, tokens)
	top := t.cell(n, 1)
	for _, goal := range goals {
		sym := grammar.Symbol(goal)
		if p.grammar.IsGenerated(sym) {
			continue
		}
		im, ok := top.get(sym)
		if !ok {
			continue
		}
		tree, err := t.derive(p.grammar, im)
		if err != nil {
			CT().Errorf("cannot build tree for %q: %v", sentence, err)
			return nil, err
		}
		CT().Infof("parsed %q as %s", sentence, goal)
		return &Result{
			Goal:       goal,
			Tree:       tree,
			Tokens:     tokens,
			Categories: categories,
		}, nil
	}
	err = &NoDerivationError{Goals: goals}
	CT().Infof("cannot parse %q: %v", sentence, err)
	return nil, err
}
