package parser

import (
	"log/slog"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/fuzzy"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/token"
)

// RuleParser is an LL(1) parser for rules of the form 'if premise then
// conclusion'. Writing x for a clause 'LV is LT' and + for either AND or OR,
// premises and conclusions are sentences such as x, (x+x) or (x+(x+x)),
// described by
//
//	S := IDENT X | '(' B ')'
//	B := S C
//	C := {+ S}
//	X := IS IDENT
//
// Each production has a method of the same name on parseState.
//
// Operators met inside parentheses are held back and emitted when the
// closing parenthesis is read. Operators between top-level clauses are
// consumed without being emitted, so 'if a is x and b is y' and
// '(a is x and b is y)' do not produce the same premise.
type RuleParser struct {
	symbols *fuzzy.SymbolTable
}

// New creates a parser validating identifiers against symbols. With a nil
// table variables and terms are not checked.
func New(symbols *fuzzy.SymbolTable) *RuleParser {
	return &RuleParser{symbols: symbols}
}

// parseState holds everything one Parse call mutates.
type parseState struct {
	symbols *fuzzy.SymbolTable
	scanner *token.Scanner
	rule    *fuzzy.Rule
	tok     token.Type
	out     *fuzzy.Stack
	opDelay []token.Type
}

// Parse parses rule and sets its status to DONE or ERRONEOUS. On failure the
// rule's parsing error holds the message.
func (p *RuleParser) Parse(rule *fuzzy.Rule) {
	st := &parseState{
		symbols: p.symbols,
		scanner: token.NewScanner(rule.Text()),
		rule:    rule,
	}

	if err := st.parseRule(); err != nil {
		if !apperr.IsParseError(err) {
			slog.Error("Unexpected error while parsing rule", "rule", rule.Text(), "error", err)
		}
		rule.SetParsingError(err.Error())
		rule.SetStatus(fuzzy.StatusErroneous)
	}

	slog.Debug("Parsed rule", "rule", rule.Text(), "status", rule.Status(), "parsing_error", rule.ParsingError())
}

// advance reads the next token unless the scanner is exhausted.
func (st *parseState) advance() error {
	if !st.scanner.HasMore() {
		return nil
	}
	tok, err := st.scanner.Next()
	if err != nil {
		return err
	}
	st.tok = tok
	return nil
}

// accept records the current token in the rule's trace and advances.
func (st *parseState) accept() error {
	st.rule.AddToken(st.tok)
	return st.advance()
}

func (st *parseState) parseRule() error {
	if err := st.advance(); err != nil {
		return err
	}

	if st.tok != token.START {
		return apperr.NewSyntax(token.START.String())
	}
	if err := st.accept(); err != nil {
		return err
	}

	if st.tok != token.IF {
		return apperr.NewSyntax(token.IF.String())
	}

	st.out = st.rule.PremiseStack()
	for {
		if err := st.accept(); err != nil {
			return err
		}
		if err := st.s(); err != nil {
			return err
		}
		if st.tok != token.THEN && st.tok != token.AND && st.tok != token.OR {
			return apperr.NewSyntax(apperr.JoinAlternatives("AND", "OR", "THEN"))
		}
		if st.tok == token.THEN {
			break
		}
	}

	st.out = st.rule.ConclusionStack()
	for {
		if err := st.accept(); err != nil {
			return err
		}
		if err := st.s(); err != nil {
			return err
		}
		if !st.scanner.HasMore() {
			break
		}
	}

	if st.tok != token.END {
		return apperr.NewSyntax(token.END.String())
	}
	if err := st.accept(); err != nil {
		return err
	}

	st.rule.SetStatus(fuzzy.StatusDone)
	return nil
}

func (st *parseState) s() error {
	switch st.tok {
	case token.LEFT_PAR:
		if err := st.accept(); err != nil {
			return err
		}
		if err := st.b(); err != nil {
			return err
		}
		if st.tok != token.RIGHT_PAR {
			return apperr.NewSyntax(token.RIGHT_PAR.String())
		}
		st.flush()
		return st.accept()
	case token.IDENT:
		ident := st.scanner.Identifier()
		if st.symbols != nil && !st.symbols.HasVariable(ident) {
			return apperr.NewUndefinedSymbol(ident)
		}
		st.out.Push(ident)
		if err := st.accept(); err != nil {
			return err
		}
		return st.x()
	default:
		return apperr.NewSyntax(token.IDENT.String())
	}
}

func (st *parseState) b() error {
	if err := st.s(); err != nil {
		return err
	}
	return st.c()
}

func (st *parseState) c() error {
	if st.tok != token.AND && st.tok != token.OR {
		return apperr.NewSyntax(apperr.JoinAlternatives("AND", "OR"))
	}

	for st.tok == token.AND || st.tok == token.OR {
		st.opDelay = append(st.opDelay, st.tok)
		if err := st.accept(); err != nil {
			return err
		}
		if err := st.s(); err != nil {
			return err
		}
	}
	return nil
}

func (st *parseState) x() error {
	if st.tok != token.IS {
		return apperr.NewSyntax(token.IS.String())
	}
	if err := st.accept(); err != nil {
		return err
	}

	if st.tok != token.IDENT {
		return apperr.NewSyntax(token.IDENT.String())
	}

	term := st.scanner.Identifier()
	variable := st.scanner.PreviousIdentifier()
	if st.symbols != nil && !st.symbols.HasTerm(variable, term) {
		return apperr.NewUndefinedSymbol(term)
	}

	st.out.Push(term)
	st.out.Push(token.IS.String())
	return st.accept()
}

// flush emits every held back operator, most recent first.
func (st *parseState) flush() {
	for i := len(st.opDelay) - 1; i >= 0; i-- {
		st.out.Push(st.opDelay[i].String())
	}
	st.opDelay = st.opDelay[:0]
}
