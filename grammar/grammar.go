package grammar

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// Rule is an alternative of a rule line as accepted by the compiler, before
// any normalization.
type Rule struct {
	LHS  Symbol
	RHS  []Symbol
	Line int // 1-based line number within its rule text
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(string(r.LHS))
	sb.WriteString(":")
	for _, s := range r.RHS {
		sb.WriteByte(' ')
		sb.WriteString(string(s))
	}
	return sb.String()
}

// Grammar holds the normalized production relations of a rule text.
//
// For terminal rules a grammar maps a terminal category to all the symbols
// producing it; for pair rules it maps an ordered pair of symbols to all the
// symbols producing it. Producers are kept in the order their rules were
// compiled, which makes parsing deterministic.
//
// A Grammar must not be modified (AddRules) while parsers use it. After
// compilation it is read-only and may be shared between goroutines.
type Grammar struct {
	terminals map[Symbol][]Symbol
	pairs     map[Pair][]Symbol
	generated map[Symbol]Symbol // intermediate → rule LHS it has been created for
	rules     []Rule
	gencount  int
	lines     int
}

// New creates an empty grammar.
func New() *Grammar {
	return &Grammar{
		terminals: make(map[Symbol][]Symbol),
		pairs:     make(map[Pair][]Symbol),
		generated: make(map[Symbol]Symbol),
	}
}

// Compile creates a grammar from a rule text. Rejected lines and alternatives
// are returned as errors, but do not prevent the rest of the text from being
// compiled.
func Compile(text string) (*Grammar, []*RuleFormatError) {
	g := New()
	errs := g.AddRules(text)
	return g, errs
}

// AddRules compiles a rule text into g. Line numbers continue from previous
// calls.
func (g *Grammar) AddRules(text string) []*RuleFormatError {
	var errs []*RuleFormatError
	for _, line := range strings.Split(text, "\n") {
		g.lines++
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		errs = append(errs, g.compileLine(line, g.lines)...)
	}
	for _, err := range errs {
		CT().Errorf("%v", err)
	}
	CT().Debugf("grammar has %d rules for %d terminals and %d pairs",
		len(g.rules), len(g.terminals), len(g.pairs))
	return errs
}

func (g *Grammar) compileLine(line string, lineno int) []*RuleFormatError {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return []*RuleFormatError{{Line: lineno, Text: line, Reason: ErrSeparator}}
	}
	lhs := strings.TrimSpace(parts[0])
	if lhs == "" || len(strings.Fields(lhs)) != 1 {
		return []*RuleFormatError{{Line: lineno, Text: line, Reason: ErrEmptyLHS}}
	}
	var errs []*RuleFormatError
	for _, alt := range strings.Split(parts[1], "|") {
		if err := g.compileAlternative(Symbol(lhs), strings.Fields(alt), lineno); err != nil {
			errs = append(errs, &RuleFormatError{
				Line:        lineno,
				Text:        line,
				Alternative: strings.TrimSpace(alt),
				Reason:      err,
			})
		}
	}
	return errs
}

func (g *Grammar) compileAlternative(lhs Symbol, names []string, lineno int) error {
	rhs := make([]Symbol, len(names))
	for i, n := range names {
		rhs[i] = Symbol(n)
	}
	switch len(rhs) {
	case 0:
		return ErrEmptyAlternative
	case 1:
		if rhs[0].IsNonTerminal() {
			return ErrUnitRule
		}
		if !rhs[0].IsTerminal() {
			return ErrTerminalCase
		}
		g.terminals[rhs[0]] = append(g.terminals[rhs[0]], lhs)
	case 2:
		if !rhs[0].IsNonTerminal() || !rhs[1].IsNonTerminal() {
			return ErrPairCase
		}
		g.addPair(Pair{rhs[0], rhs[1]}, lhs)
	default:
		for _, s := range rhs {
			if !s.IsNonTerminal() {
				return ErrChainCase
			}
		}
		left := rhs[0]
		for _, right := range rhs[1 : len(rhs)-1] {
			g.gencount++
			gen := generatedName(g.gencount)
			g.generated[gen] = lhs
			g.addPair(Pair{left, right}, gen)
			left = gen
		}
		g.addPair(Pair{left, rhs[len(rhs)-1]}, lhs)
	}
	g.rules = append(g.rules, Rule{LHS: lhs, RHS: rhs, Line: lineno})
	return nil
}

func (g *Grammar) addPair(p Pair, producer Symbol) {
	g.pairs[p] = append(g.pairs[p], producer)
}

// TerminalProducers returns all symbols producing a terminal category, in
// compilation order. Clients must not modify the result.
func (g *Grammar) TerminalProducers(category Symbol) []Symbol {
	return g.terminals[category]
}

// PairProducers returns all symbols producing the ordered pair (left, right),
// in compilation order. Clients must not modify the result.
func (g *Grammar) PairProducers(left, right Symbol) []Symbol {
	return g.pairs[Pair{left, right}]
}

// IsGenerated is true for intermediate symbols introduced by the compiler
// for chain rules.
func (g *Grammar) IsGenerated(s Symbol) bool {
	if !s.isGenerated() {
		return false
	}
	_, ok := g.generated[s]
	return ok
}

// GeneratedFor returns the left hand side of the chain rule an intermediate
// symbol has been created for.
func (g *Grammar) GeneratedFor(s Symbol) (Symbol, bool) {
	lhs, ok := g.generated[s]
	return lhs, ok
}

// Rules returns all accepted alternatives in source order, chain rules
// unfolded. Clients must not modify the result.
func (g *Grammar) Rules() []Rule {
	return g.rules
}

// Terminals returns all terminal categories the grammar can consume, sorted.
func (g *Grammar) Terminals() []Symbol {
	t := make([]Symbol, 0, len(g.terminals))
	for cat := range g.terminals {
		t = append(t, cat)
	}
	sort.Slice(t, func(i, j int) bool { return t[i] < t[j] })
	return t
}

// NonTerminals returns all user symbols which occur on the left side of a
// rule, sorted.
func (g *Grammar) NonTerminals() []Symbol {
	seen := make(map[Symbol]bool)
	var nt []Symbol
	for _, r := range g.rules {
		if !seen[r.LHS] {
			seen[r.LHS] = true
			nt = append(nt, r.LHS)
		}
	}
	sort.Slice(nt, func(i, j int) bool { return nt[i] < nt[j] })
	return nt
}

// Dump writes the normalized production relations of g in sorted order.
// Two grammars compiled from the same text produce identical dumps.
func (g *Grammar) Dump(w io.Writer) error {
	tm := treemap.NewWithStringComparator()
	for cat, producers := range g.terminals {
		tm.Put(string(cat), producers)
	}
	pm := treemap.NewWithStringComparator()
	for pair, producers := range g.pairs {
		pm.Put(pair.String(), producers)
	}
	it := tm.Iterator()
	for it.Next() {
		if _, err := fmt.Fprintf(w, "%-20s ← %s\n", it.Key(), join(it.Value().([]Symbol))); err != nil {
			return err
		}
	}
	it = pm.Iterator()
	for it.Next() {
		if _, err := fmt.Fprintf(w, "%-20s ← %s\n", it.Key(), join(it.Value().([]Symbol))); err != nil {
			return err
		}
	}
	return nil
}

func join(symbols []Symbol) string {
	s := make([]string, len(symbols))
	for i, sym := range symbols {
		s[i] = string(sym)
	}
	return strings.Join(s, " ")
}
