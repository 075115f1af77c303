package fuzzy

import (
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/token"
)

const noParsingError = "n/a"

// Rule is a fuzzy rule of the form
//
//	if x1 is a1 and x2 is a2 ... then y is b
//
// where the xi and y are linguistic variables and the ai and b are terms.
// The if-part is the premise, the then-part the conclusion. A parser fills
// both sides in postfix order and settles the status.
type Rule struct {
	text         string
	symbols      *SymbolTable
	premise      Stack
	conclusion   Stack
	tokens       []token.Type
	parsingError string
	status       Status
}

// NewRule creates an idle rule. Rules are identified by their lowercase text.
func NewRule(text string, symbols *SymbolTable) *Rule {
	return &Rule{
		text:         strings.ToLower(text),
		symbols:      symbols,
		parsingError: noParsingError,
		status:       StatusIdle,
	}
}

func (r *Rule) Text() string {
	return r.text
}

func (r *Rule) String() string {
	return r.text
}

func (r *Rule) Status() Status {
	return r.status
}

// SetStatus moves an idle rule to s. Done and erroneous rules keep their
// status.
func (r *Rule) SetStatus(s Status) {
	if r.status == StatusIdle {
		r.status = s
	}
}

// ParsingError returns the message of the parse failure, or "n/a".
func (r *Rule) ParsingError() string {
	return r.parsingError
}

func (r *Rule) SetParsingError(msg string) {
	r.parsingError = msg
}

// AddToken appends t to the token trace.
func (r *Rule) AddToken(t token.Type) {
	r.tokens = append(r.tokens, t)
}

// Tokens returns the token trace recorded while parsing.
func (r *Rule) Tokens() []token.Type {
	out := make([]token.Type, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// PremiseStack is the stack a parser writes the if-part to.
func (r *Rule) PremiseStack() *Stack {
	return &r.premise
}

// ConclusionStack is the stack a parser writes the then-part to.
func (r *Rule) ConclusionStack() *Stack {
	return &r.conclusion
}

func (r *Rule) Premise() []string {
	return r.premise.Items()
}

func (r *Rule) Conclusion() []string {
	return r.conclusion.Items()
}

// DegreeOfRelevance folds the premise for the current crisp values. Every IS
// marker fuzzifies the variable and term pushed before it, AND takes the
// minimum and OR the maximum of the two topmost degrees. The topmost degree
// left is the result. A rule fires when its degree of relevance is nonzero.
func (r *Rule) DegreeOfRelevance() (float64, error) {
	if err := r.checkReady("compute degree of relevance"); err != nil {
		return 0, err
	}

	var degrees []float64
	pop2 := func(op string) (float64, float64, error) {
		if len(degrees) < 2 {
			return 0, 0, apperr.NewEngine("rule %q: %s needs two operands", r.text, op)
		}
		a, b := degrees[len(degrees)-2], degrees[len(degrees)-1]
		degrees = degrees[:len(degrees)-2]
		return a, b, nil
	}

	for i := 0; i < r.premise.Len(); i++ {
		switch r.premise.At(i) {
		case token.IS.String():
			if i < 2 {
				return 0, apperr.NewEngine("rule %q: IS without operands", r.text)
			}
			lv, ok := r.symbols.Lookup(r.premise.At(i - 2))
			if !ok {
				return 0, apperr.NewUndefinedSymbol(r.premise.At(i - 2))
			}
			d, err := lv.Is(r.premise.At(i - 1))
			if err != nil {
				return 0, err
			}
			degrees = append(degrees, d)
		case token.AND.String():
			a, b, err := pop2("AND")
			if err != nil {
				return 0, err
			}
			degrees = append(degrees, min(a, b))
		case token.OR.String():
			a, b, err := pop2("OR")
			if err != nil {
				return 0, err
			}
			degrees = append(degrees, max(a, b))
		}
	}

	if len(degrees) == 0 {
		return 0, apperr.NewEngine("rule %q has an empty premise", r.text)
	}

	h := degrees[len(degrees)-1]
	if h > 0 {
		slog.Debug("Rule fires", "rule", r.text, "degree_of_relevance", h)
	}
	return h, nil
}

// Conclude reasons the conclusion with the rule's own degree of relevance.
func (r *Rule) Conclude() (MembershipFunction, error) {
	h, err := r.DegreeOfRelevance()
	if err != nil {
		return MembershipFunction{}, err
	}
	return r.ConcludeWith(h)
}

// ConcludeWith scales the membership function of the conclusion term by h.
// The conclusion must be a single "y is b" clause, stored as [y b IS].
func (r *Rule) ConcludeWith(h float64) (MembershipFunction, error) {
	if err := r.checkReady("compute conclusion"); err != nil {
		return MembershipFunction{}, err
	}
	if r.conclusion.Len() < 2 {
		return MembershipFunction{}, apperr.NewEngine("rule %q has an empty conclusion", r.text)
	}

	lv, ok := r.symbols.Lookup(r.conclusion.At(0))
	if !ok {
		return MembershipFunction{}, apperr.NewUndefinedSymbol(r.conclusion.At(0))
	}
	mf, err := lv.Term(r.conclusion.At(1))
	if err != nil {
		return MembershipFunction{}, err
	}
	return mf.Reason(h)
}

func (r *Rule) checkReady(op string) error {
	if r.status != StatusDone {
		return apperr.NewEngine("cannot %s of rule %q because its status is %q", op, r.text, r.status)
	}
	if r.symbols == nil {
		return apperr.NewEngine("cannot %s of rule %q without a symbol table", op, r.text)
	}
	return nil
}
