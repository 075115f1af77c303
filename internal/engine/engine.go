package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/fuzzy"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/model"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/parser"
)

// Input is a crisp value for a named input variable.
type Input struct {
	Name  string
	Value float64
}

// Output is the crisp value computed for the output variable.
type Output struct {
	Name  string
	Value float64
}

func (i Input) String() string {
	return fmt.Sprintf("Input{name=%q, value=%v}", i.Name, i.Value)
}

func (o Output) String() string {
	return fmt.Sprintf("Output{name=%q, value=%v}", o.Name, o.Value)
}

// Engine evaluates a model. Variables and rules are built on first use and
// reused by every later evaluation. An Engine is safe for concurrent use;
// evaluations are serialised.
type Engine struct {
	model   *model.Model
	steps   int
	workers int

	mu      sync.Mutex
	ready   bool
	symbols *fuzzy.SymbolTable
	rules   *fuzzy.RuleSet
	output  *fuzzy.LinguisticVariable
	outName string
}

type Option func(e *Engine)

// WithSteps sets the number of discretisation steps used for superposition
// and defuzzification. Values below 1 are ignored.
func WithSteps(steps int) Option {
	return func(e *Engine) {
		if steps > 0 {
			e.steps = steps
		}
	}
}

// WithParseWorkers parses rules on up to n goroutines during setup.
func WithParseWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

func New(m *model.Model, opts ...Option) *Engine {
	e := &Engine{
		model:   m,
		steps:   model.DefaultSteps,
		workers: 1,
	}
	if m != nil && m.Steps > 0 {
		e.steps = m.Steps
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Steps() int {
	return e.steps
}

// Setup builds the symbol table and rule set from the model and parses every
// rule. It is a no-op once it has succeeded; after a failure the next call
// starts over.
func (e *Engine) Setup(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setup(ctx)
}

func (e *Engine) setup(ctx context.Context) error {
	if e.ready {
		return nil
	}
	if e.model == nil {
		return apperr.NewModel("engine has no model")
	}

	slog.Debug("Setting up engine", "model", e.model.Name, "variables", len(e.model.Variables), "rules", len(e.model.Rules))

	symbols := fuzzy.NewSymbolTable()
	for _, v := range e.model.Variables {
		lv, err := newVariable(v)
		if err != nil {
			return err
		}
		if err := symbols.Register(lv); err != nil {
			return err
		}
		slog.Debug("Created linguistic variable", "variable", lv.String())
	}
	symbols.Freeze()

	outputName, ok := e.model.OutputName()
	if !ok {
		return apperr.NewModel(fmt.Sprintf("model %q has no output variable", e.model.Name))
	}
	output, _ := symbols.Lookup(outputName)

	rules := fuzzy.NewRuleSet()
	for _, text := range e.model.Rules {
		if !rules.Add(fuzzy.NewRule(text, symbols)) {
			return apperr.NewModel(fmt.Sprintf("cannot add rule %q to the rule set because it is present already", text))
		}
	}

	p := parser.New(symbols)
	if e.workers > 1 {
		if err := rules.ParseParallel(ctx, p, e.workers); err != nil {
			return fmt.Errorf("parse rules: %w", err)
		}
	} else {
		rules.Parse(p)
	}

	if rules.Status() == fuzzy.StatusErroneous {
		slog.Warn("Model contains erroneous rules", "model", e.model.Name, "rules", rules.String())
	}

	e.symbols = symbols
	e.rules = rules
	e.output = output
	e.outName = outputName
	e.ready = true
	return nil
}

func newVariable(v model.Variable) (*fuzzy.LinguisticVariable, error) {
	lv := fuzzy.NewLinguisticVariable(v.Name)
	for _, t := range v.Terms {
		start, leftTop, rightTop, end, err := t.Points()
		if err != nil {
			return nil, apperr.NewModelWrap(fmt.Sprintf("linguistic variable %q", v.Name), err)
		}
		if err := lv.AddTerm(t.Name, fuzzy.NewTrapezoid(start, leftTop, rightTop, end)); err != nil {
			return nil, err
		}
	}
	return lv, nil
}

// Evaluate sets the crisp input values and computes the crisp value of the
// output variable. Inputs not given keep the value of the previous
// evaluation.
func (e *Engine) Evaluate(ctx context.Context, inputs ...Input) (Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.setup(ctx); err != nil {
		return Output{}, err
	}

	for _, in := range inputs {
		lv, ok := e.symbols.Lookup(in.Name)
		if !ok || !e.model.IsInput(in.Name) {
			return Output{}, apperr.NewModel(fmt.Sprintf("%q is not a valid input variable", in.Name))
		}
		lv.SetValue(in.Value)
	}

	value, err := e.rules.Evaluate(e.steps)
	if err != nil {
		return Output{}, fmt.Errorf("evaluate model %q: %w", e.model.Name, err)
	}
	e.output.SetValue(value)

	slog.Debug("Evaluated model", "model", e.model.Name, "output", e.outName, "value", value)

	return Output{Name: e.outName, Value: value}, nil
}

// Rules returns the rules of a set up engine.
func (e *Engine) Rules() []*fuzzy.Rule {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		return nil
	}
	return e.rules.Rules()
}

// FormatResult renders an evaluation as
// "<in>.input = <value> -> <out>.output = <value>" with the given field width
// and precision.
func FormatResult(in Input, out Output, padding, precision int) string {
	format := fmt.Sprintf("%%s.input = %%%d.%df -> %%s.output = %%%d.%df", padding, precision, padding, precision)
	return fmt.Sprintf(format, in.Name, in.Value, out.Name, out.Value)
}

func (e *Engine) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.model == nil {
		return "engine without model"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "model %q (steps = %d)\n", e.model.Name, e.steps)
	b.WriteString("--- linguistic variables\n")
	if e.ready {
		for _, lv := range e.symbols.Variables() {
			b.WriteString(lv.String())
			b.WriteString("\n")
		}
		b.WriteString("--- rules\n")
		b.WriteString(e.rules.String())
		return b.String()
	}

	for _, v := range e.model.Variables {
		fmt.Fprintf(&b, "%s %s\n", v.Usage, v.Name)
	}
	b.WriteString("--- rules\n")
	b.WriteString(strings.Join(e.model.Rules, "\n"))
	return b.String()
}
