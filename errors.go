package cyk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySentence is returned for sentences without any words.
var ErrEmptySentence = errors.New("cannot parse a zero length sentence")

// UnknownWordError is returned if a sentence contains words not found in the
// lexicon. It lists all of them, in sentence order.
type UnknownWordError struct {
	Words []string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown words: %s", strings.Join(e.Words, ", "))
}

// NoDerivationError is returned if none of the goal symbols derives the
// sentence.
type NoDerivationError struct {
	Goals []string
}

func (e *NoDerivationError) Error() string {
	return fmt.Sprintf("sentence cannot be derived from any of [%s]", strings.Join(e.Goals, ", "))
}

// InternalConsistencyError signals a back-reference in the parse table
// which does not resolve. This is a bug.
type InternalConsistencyError struct {
	Symbol string
	Cell   int
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("internal error: no entry for %s in table cell %d", e.Symbol, e.Cell)
}
