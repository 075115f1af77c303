package fuzzy

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
)

// LinguisticVariable is a named quantity whose crisp value is described by a
// set of linguistic terms, e.g. T(speed) = {low, medium, high}. Each term is
// backed by a membership function.
type LinguisticVariable struct {
	name  string
	terms map[string]MembershipFunction
	order []string
	value float64
}

// NewLinguisticVariable creates a variable named by the lowercase form of name.
// It still has to be registered with a SymbolTable.
func NewLinguisticVariable(name string) *LinguisticVariable {
	return &LinguisticVariable{
		name:  strings.ToLower(name),
		terms: make(map[string]MembershipFunction),
	}
}

func (lv *LinguisticVariable) Name() string {
	return lv.name
}

// Value returns the crisp value: the input used for fuzzification, or the
// computed output of the last evaluation.
func (lv *LinguisticVariable) Value() float64 {
	return lv.value
}

func (lv *LinguisticVariable) SetValue(v float64) {
	lv.value = v
	slog.Debug("Set crisp value", "variable", lv.name, "value", v)
}

// AddTerm adds a term to the term set. Term names are case insensitive and
// must be unique within the variable.
func (lv *LinguisticVariable) AddTerm(name string, mf MembershipFunction) error {
	term := strings.ToLower(name)
	if _, ok := lv.terms[term]; ok {
		return apperr.NewModel(fmt.Sprintf("cannot add linguistic term %q because it is already a member of the term set of linguistic variable %q", term, lv.name))
	}

	lv.terms[term] = mf
	lv.order = append(lv.order, term)
	return nil
}

func (lv *LinguisticVariable) HasTerm(name string) bool {
	_, ok := lv.terms[strings.ToLower(name)]
	return ok
}

// Term returns the membership function of the named term.
func (lv *LinguisticVariable) Term(name string) (MembershipFunction, error) {
	term := strings.ToLower(name)
	mf, ok := lv.terms[term]
	if !ok {
		return MembershipFunction{}, apperr.NewUndefinedSymbol(term)
	}
	return mf, nil
}

// Terms returns the term names in insertion order.
func (lv *LinguisticVariable) Terms() []string {
	out := make([]string, len(lv.order))
	copy(out, lv.order)
	return out
}

// Is fuzzifies the current crisp value against the named term.
func (lv *LinguisticVariable) Is(term string) (float64, error) {
	mf, err := lv.Term(term)
	if err != nil {
		return 0, fmt.Errorf("fuzzify %q: %w", lv.name, err)
	}
	return mf.Fuzzify(lv.value), nil
}

func (lv *LinguisticVariable) String() string {
	return "T(" + lv.name + ") = {" + strings.Join(lv.order, ", ") + "}"
}
