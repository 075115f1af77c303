package apperr

import (
	"fmt"
	"strings"
)

// IllegalNameError reports a character that cannot start an identifier.
// Index is the number of characters consumed when it was met.
type IllegalNameError struct {
	Index int
}

func (e *IllegalNameError) Error() string {
	return fmt.Sprintf("Illegal name @%d", e.Index)
}

func NewIllegalName(index int) *IllegalNameError {
	return &IllegalNameError{Index: index}
}

// SyntaxError reports a token, or a set of alternatives, that did not appear.
type SyntaxError struct {
	Expected string
}

func (e *SyntaxError) Error() string {
	return "Syntax error: " + e.Expected + " expected"
}

func NewSyntax(expected string) *SyntaxError {
	return &SyntaxError{Expected: expected}
}

// UndefinedSymbolError reports an identifier that is not registered as a
// variable, or not a term of the variable it qualifies.
type UndefinedSymbolError struct {
	Symbol string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("Symbol '%s' is not defined", e.Symbol)
}

func NewUndefinedSymbol(symbol string) *UndefinedSymbolError {
	return &UndefinedSymbolError{Symbol: symbol}
}

// ModelError reports an inconsistent model: duplicate registrations, unknown
// input variables or a missing output variable.
type ModelError struct {
	Message string
	Err     error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return "model error: " + e.Message + ": " + e.Err.Error()
	}
	return "model error: " + e.Message
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

func NewModel(msg string) *ModelError {
	return &ModelError{Message: msg}
}

func NewModelWrap(msg string, err error) *ModelError {
	return &ModelError{Message: msg, Err: err}
}

// EngineError reports an operation called while its preconditions do not hold.
type EngineError struct {
	Message string
}

func (e *EngineError) Error() string {
	return e.Message
}

func NewEngine(format string, args ...any) *EngineError {
	return &EngineError{Message: fmt.Sprintf(format, args...)}
}

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// IsParseError reports whether err belongs to the per-rule parse failures that
// are recorded on a rule instead of being returned to the caller.
func IsParseError(err error) bool {
	switch err.(type) {
	case *IllegalNameError, *SyntaxError, *UndefinedSymbolError:
		return true
	default:
		return false
	}
}

// JoinAlternatives renders a set of expected tokens as "A, B or C".
func JoinAlternatives(alts ...string) string {
	switch len(alts) {
	case 0:
		return ""
	case 1:
		return alts[0]
	default:
		return strings.Join(alts[:len(alts)-1], ", ") + " or " + alts[len(alts)-1]
	}
}
