package fuzzy

import "strings"

// Stack collects a rule side in postfix order: operands first, then the
// operator that combines them.
type Stack struct {
	items []string
}

func (s *Stack) Push(item string) {
	s.items = append(s.items, item)
}

func (s *Stack) Len() int {
	return len(s.items)
}

// At returns the item at position i, counted from the bottom.
func (s *Stack) At(i int) string {
	return s.items[i]
}

// Items returns a copy of the items, bottom first.
func (s *Stack) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Stack) String() string {
	return strings.Join(s.items, " ")
}
