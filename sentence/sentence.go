/*
Package sentence interprets derivation trees of a small imperative language,
as used for commanding an adventure game:

    eat the green apple on a table
    is the apple edible

A sentence consists of a verb, a noun clause as its subject and an optional
prepositional clause. Questions start with a question verb and end with a
type, i.e. the property asked for.

Interpretation relies on the symbols and terminal categories of the
grammar: non-terminals NounClause and PrepClause, and the categories verb,
qVerb, type, noun, adjective, prep, number, definiteArticle and
indefiniteArticle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sentence

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cyk/ast"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNoSubject is returned for trees without a noun clause.
// ErrNoVerb is returned for trees with neither a verb nor a question verb.
var (
	ErrNoSubject = errors.New("sentence has no subject")
	ErrNoVerb    = errors.New("sentence has no verb")
)

// NounClause is a noun, optionally qualified by a count and an adjective.
// Missing parts are empty.
type NounClause struct {
	Noun      string
	Count     string // a number or an article
	Adjective string
}

// Entity is something a noun clause may refer to, e.g. an object of a game.
type Entity interface {
	Noun() string
	Adjectives() []string
}

// NounClauseFrom extracts a noun clause from a search result.
func NounClauseFrom(search ast.Search) (NounClause, bool) {
	noun, ok := search.Terminal("noun")
	if !ok {
		return NounClause{}, false
	}
	nc := NounClause{Noun: noun}
	for _, cat := range []string{"number", "definiteArticle", "indefiniteArticle"} {
		if count, ok := search.Terminal(cat); ok {
			nc.Count = count
			break
		}
	}
	nc.Adjective, _ = search.Terminal("adjective")
	return nc, true
}

// Matches is true if e is named by the noun of nc and, if nc has an
// adjective, e is described by it.
func (nc NounClause) Matches(e Entity) bool {
	if e == nil || e.Noun() != nc.Noun {
		return false
	}
	if nc.Adjective == "" {
		return true
	}
	for _, adj := range e.Adjectives() {
		if adj == nc.Adjective {
			return true
		}
	}
	return false
}

func (nc NounClause) String() string {
	return fmt.Sprintf("NounClause(%s, %s, %s)", nc.Noun, optional(nc.Count), optional(nc.Adjective))
}

// PrepClause is a preposition together with its object.
type PrepClause struct {
	Prep       string
	NounClause NounClause
}

// PrepClauseFrom extracts a prepositional clause from a search result.
func PrepClauseFrom(search ast.Search) (*PrepClause, bool) {
	prep, ok := search.Terminal("prep")
	if !ok {
		return nil, false
	}
	nc, ok := NounClauseFrom(search.Child("NounClause"))
	if !ok {
		return nil, false
	}
	return &PrepClause{Prep: prep, NounClause: nc}, true
}

func (pc PrepClause) String() string {
	return fmt.Sprintf("PrepClause(%s, %s)", pc.Prep, pc.NounClause)
}

// Sentence is the interpretation of a derivation tree.
type Sentence struct {
	Verb       string // verb, or question verb for questions
	Subject    NounClause
	Prep       *PrepClause // nil if there is no prepositional clause
	QType      string      // property asked for by a question
	IsQuestion bool
}

// FromTree interprets a derivation tree as a sentence.
func FromTree(tree ast.Node) (*Sentence, error) {
	search := ast.NewSearch(tree)
	subject, ok := NounClauseFrom(search.Child("NounClause"))
	if !ok {
		return nil, ErrNoSubject
	}
	s := &Sentence{Subject: subject}
	s.Prep, _ = PrepClauseFrom(search.Child("PrepClause"))
	if s.Verb, ok = search.Terminal("verb"); !ok {
		s.IsQuestion = true
		if s.Verb, ok = search.Terminal("qVerb"); !ok {
			return nil, ErrNoVerb
		}
		s.QType, _ = search.Terminal("type")
	}
	CT().Debugf("interpreted tree as %s", s)
	return s, nil
}

func (s *Sentence) String() string {
	prep := "None"
	if s.Prep != nil {
		prep = s.Prep.String()
	}
	return fmt.Sprintf("Sentence(%s, %s, %s, %s, %v)", s.Subject, s.Verb, prep,
		optional(s.QType), s.IsQuestion)
}

func optional(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
