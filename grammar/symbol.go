package grammar

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbol is the name of a grammar symbol. Names are opaque, apart from the
// case of their first letter.
type Symbol string

// generatedPrefix starts every intermediate symbol. The rule format splits
// lines at ':', so no user symbol will ever carry it.
const generatedPrefix = ":"

func generatedName(n int) Symbol {
	return Symbol(generatedPrefix + strconv.Itoa(n))
}

// IsNonTerminal is true for symbols starting with an uppercase letter.
func (s Symbol) IsNonTerminal() bool {
	r, _ := utf8.DecodeRuneInString(string(s))
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// IsTerminal is true for symbols starting with a lowercase letter, i.e.
// for terminal categories.
func (s Symbol) IsTerminal() bool {
	r, _ := utf8.DecodeRuneInString(string(s))
	return r != utf8.RuneError && unicode.IsLower(r)
}

func (s Symbol) isGenerated() bool {
	return strings.HasPrefix(string(s), generatedPrefix)
}

func (s Symbol) String() string {
	return string(s)
}

// Pair is an ordered pair of symbols, the right hand side of a pair rule.
type Pair struct {
	Left, Right Symbol
}

func (p Pair) String() string {
	return string(p.Left) + " " + string(p.Right)
}
