package fuzzy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
)

// Parser parses a rule in place, settling its status.
type Parser interface {
	Parse(rule *Rule)
}

// RuleSet is a set of rules keyed by their text. Iteration follows insertion
// order.
type RuleSet struct {
	rules []*Rule
	index map[string]*Rule
}

func NewRuleSet() *RuleSet {
	return &RuleSet{index: make(map[string]*Rule)}
}

// Add adds rule unless a rule with the same text is present already.
func (rs *RuleSet) Add(rule *Rule) bool {
	if _, ok := rs.index[rule.Text()]; ok {
		slog.Warn("Cannot add rule to the rule set because it is already present", "rule", rule.Text())
		return false
	}

	rs.index[rule.Text()] = rule
	rs.rules = append(rs.rules, rule)
	return true
}

func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns the rules in insertion order.
func (rs *RuleSet) Rules() []*Rule {
	out := make([]*Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Parse parses every idle rule, one after another.
func (rs *RuleSet) Parse(p Parser) {
	for _, rule := range rs.rules {
		if rule.Status() == StatusIdle {
			p.Parse(rule)
		}
	}
}

// ParseParallel parses idle rules on up to workers goroutines. Each parse only
// writes to its own rule, so p must not keep per-rule state. Rules whose
// symbol table is not frozen are refused with an EngineError before any
// parsing starts.
func (rs *RuleSet) ParseParallel(ctx context.Context, p Parser, workers int) error {
	for _, rule := range rs.rules {
		if rule.Status() == StatusIdle && (rule.symbols == nil || !rule.symbols.Frozen()) {
			return apperr.NewEngine("cannot parse rule %q in parallel because its symbol table is not frozen", rule.Text())
		}
	}

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, rule := range rs.rules {
		if rule.Status() != StatusIdle {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		rule := rule
		g.Go(func() error {
			p.Parse(rule)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Status aggregates the member statuses: ERRONEOUS if any rule failed, else
// IDLE if any rule is unparsed, else DONE.
func (rs *RuleSet) Status() Status {
	result := StatusDone
	for _, rule := range rs.rules {
		switch rule.Status() {
		case StatusErroneous:
			return StatusErroneous
		case StatusIdle:
			result = StatusIdle
		}
	}
	return result
}

// Conclusions reasons the conclusion of every rule.
func (rs *RuleSet) Conclusions() ([]MembershipFunction, error) {
	if s := rs.Status(); s != StatusDone {
		return nil, apperr.NewEngine("cannot evaluate rule set because its status is %q:\n%s", s, rs)
	}

	out := make([]MembershipFunction, 0, len(rs.rules))
	for _, rule := range rs.rules {
		mf, err := rule.Conclude()
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rule.Text(), err)
		}
		out = append(out, mf)
	}
	return out, nil
}

// Evaluate computes the crisp output of the rule set: every conclusion is
// reasoned, the results are superposed over steps increments and the center
// of mass is returned.
func (rs *RuleSet) Evaluate(steps int) (float64, error) {
	conclusions, err := rs.Conclusions()
	if err != nil {
		return 0, err
	}

	superposition, err := Superposition(conclusions, steps)
	if err != nil {
		return 0, err
	}

	return CenterOfMass(superposition), nil
}

func (rs *RuleSet) String() string {
	lines := make([]string, 0, len(rs.rules))
	for _, rule := range rs.rules {
		line := fmt.Sprintf("%s | status = %s", rule.Text(), rule.Status())
		if rule.Status() == StatusErroneous {
			line += " | message = " + rule.ParsingError()
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
