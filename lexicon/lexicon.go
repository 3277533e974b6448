/*
Package lexicon maps the words of a language to terminal categories of a
grammar.

A lexicon is compiled from a text with one word per line, followed by its
category:

    apple   noun
    the     definiteArticle

Lines which do not consist of exactly two fields are dropped. If a word is
defined more than once, the first definition wins.

Words are compared in Unicode normalization form NFC, so a word typed with
combining accents will find an entry written with pre-composed characters,
and vice versa.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexicon

import (
	"strings"

	"github.com/npillmayer/cyk/grammar"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Lexicon is a dictionary from words to terminal categories. After loading
// it is read-only and may be shared between goroutines.
type Lexicon struct {
	words map[string]grammar.Symbol
	order []string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{words: make(map[string]grammar.Symbol)}
}

// Compile creates a lexicon from a text of word definitions.
func Compile(text string) *Lexicon {
	lx := New()
	lx.Add(text)
	return lx
}

// Add adds word definitions to lx and returns the number of words added.
func (lx *Lexicon) Add(text string) int {
	cnt := 0
	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			CT().Debugf("lexicon: dropping line %d: %q", i+1, line)
			continue
		}
		word := norm.NFC.String(fields[0])
		if _, exists := lx.words[word]; exists {
			CT().Debugf("lexicon: word %q already defined, ignoring line %d", word, i+1)
			continue
		}
		lx.words[word] = grammar.Symbol(fields[1])
		lx.order = append(lx.order, word)
		cnt++
	}
	CT().Debugf("lexicon: added %d words, now %d", cnt, len(lx.order))
	return cnt
}

// Lookup returns the terminal category of a word.
func (lx *Lexicon) Lookup(word string) (grammar.Symbol, bool) {
	cat, ok := lx.words[norm.NFC.String(word)]
	return cat, ok
}

// Len returns the number of words in lx.
func (lx *Lexicon) Len() int {
	return len(lx.order)
}

// Words returns all words of lx in the order of their definition.
func (lx *Lexicon) Words() []string {
	w := make([]string, len(lx.order))
	copy(w, lx.order)
	return w
}
