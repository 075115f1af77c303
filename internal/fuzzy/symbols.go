package fuzzy

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
)

// SymbolTable maps variable names to linguistic variables. It is built once,
// then frozen; after Freeze it is safe to share between concurrent parses
// and evaluations.
type SymbolTable struct {
	vars   map[string]*LinguisticVariable
	order  []string
	frozen bool
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{vars: make(map[string]*LinguisticVariable)}
}

// Register adds v under its name. A duplicate name or a frozen table leaves
// the table unchanged and returns a ModelError.
func (st *SymbolTable) Register(v *LinguisticVariable) error {
	if st.frozen {
		return apperr.NewModel(fmt.Sprintf("cannot register linguistic variable %q because the symbol table is frozen", v.Name()))
	}
	if _, ok := st.vars[v.Name()]; ok {
		return apperr.NewModel(fmt.Sprintf("cannot register linguistic variable %q with symbol table because the variable is registered already", v.Name()))
	}

	st.vars[v.Name()] = v
	st.order = append(st.order, v.Name())
	return nil
}

// Freeze makes the table read-only.
func (st *SymbolTable) Freeze() {
	st.frozen = true
}

func (st *SymbolTable) Frozen() bool {
	return st.frozen
}

// HasVariable reports whether a variable named name is registered.
func (st *SymbolTable) HasVariable(name string) bool {
	_, ok := st.vars[strings.ToLower(name)]
	return ok
}

// HasTerm reports whether term belongs to the term set of variable.
func (st *SymbolTable) HasTerm(variable, term string) bool {
	lv, ok := st.vars[strings.ToLower(variable)]
	return ok && lv.HasTerm(term)
}

func (st *SymbolTable) Lookup(name string) (*LinguisticVariable, bool) {
	lv, ok := st.vars[strings.ToLower(name)]
	return lv, ok
}

// Variables returns the registered variables in registration order.
func (st *SymbolTable) Variables() []*LinguisticVariable {
	out := make([]*LinguisticVariable, 0, len(st.order))
	for _, name := range st.order {
		out = append(out, st.vars[name])
	}
	return out
}

func (st *SymbolTable) Len() int {
	return len(st.vars)
}
