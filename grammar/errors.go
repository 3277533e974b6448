package grammar

import (
	"errors"
	"fmt"
)

// Reasons for rejecting a line or an alternative of a rule text.
var (
	ErrSeparator        = errors.New("rule line needs exactly one ':'")
	ErrEmptyLHS         = errors.New("left hand side must be a single symbol")
	ErrEmptyAlternative = errors.New("empty alternative")
	ErrUnitRule         = errors.New("no unit rules allowed; single symbol must be a terminal category")
	ErrTerminalCase     = errors.New("terminal category must start lowercase")
	ErrPairCase         = errors.New("both symbols of a pair must be non-terminals")
	ErrChainCase        = errors.New("all symbols of a chain must be non-terminals")
)

// RuleFormatError describes a rejected line or alternative. Alternative is
// empty if the whole line has been rejected.
type RuleFormatError struct {
	Line        int    // 1-based line number within the rule text
	Text        string // the offending line
	Alternative string // the offending alternative, if any
	Reason      error  // one of the Err… values of this package
}

func (e *RuleFormatError) Error() string {
	if e.Alternative == "" {
		return fmt.Sprintf("rule format error in line %d: %v: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("rule format error in line %d: %v: %q", e.Line, e.Reason, e.Alternative)
}

// Unwrap makes the reason available to errors.Is.
func (e *RuleFormatError) Unwrap() error {
	return e.Reason
}
