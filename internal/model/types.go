package model

import (
	"fmt"
	"strings"
)

const DefaultSteps = 1000

type Usage string

const (
	UsageInput  Usage = "input"
	UsageOutput Usage = "output"
)

// Model describes a complete fuzzy system: its linguistic variables with
// their terms, and the rules relating them.
type Model struct {
	Name      string     `yaml:"name"`
	Steps     int        `yaml:"steps,omitempty"`
	Variables []Variable `yaml:"variables"`
	Rules     []string   `yaml:"rules"`
}

type Variable struct {
	Usage Usage  `yaml:"usage"`
	Name  string `yaml:"name"`
	Terms []Term `yaml:"terms"`
}

// Term is a named membership function given either as a triangle
// [start, top, end] or as a trapezoid [start, left_top, right_top, end].
type Term struct {
	Name      string    `yaml:"name"`
	Triangle  []float64 `yaml:"triangle,omitempty"`
	Trapezoid []float64 `yaml:"trapezoid,omitempty"`
}

func New(name string, vars []Variable, rules ...string) *Model {
	return &Model{Name: name, Variables: vars, Rules: rules}
}

func Input(name string, terms ...Term) Variable {
	return Variable{Usage: UsageInput, Name: name, Terms: terms}
}

func Output(name string, terms ...Term) Variable {
	return Variable{Usage: UsageOutput, Name: name, Terms: terms}
}

func Triangle(name string, start, top, end float64) Term {
	return Term{Name: name, Triangle: []float64{start, top, end}}
}

func Trapezoid(name string, start, leftTop, rightTop, end float64) Term {
	return Term{Name: name, Trapezoid: []float64{start, leftTop, rightTop, end}}
}

// Points returns the four trapezoid coordinates of t.
func (t Term) Points() (start, leftTop, rightTop, end float64, err error) {
	switch {
	case len(t.Triangle) > 0 && len(t.Trapezoid) > 0:
		return 0, 0, 0, 0, fmt.Errorf("term %q defines both a triangle and a trapezoid", t.Name)
	case len(t.Triangle) == 3:
		return t.Triangle[0], t.Triangle[1], t.Triangle[1], t.Triangle[2], nil
	case len(t.Trapezoid) == 4:
		return t.Trapezoid[0], t.Trapezoid[1], t.Trapezoid[2], t.Trapezoid[3], nil
	case len(t.Triangle) > 0:
		return 0, 0, 0, 0, fmt.Errorf("triangle of term %q needs 3 points, got %d", t.Name, len(t.Triangle))
	case len(t.Trapezoid) > 0:
		return 0, 0, 0, 0, fmt.Errorf("trapezoid of term %q needs 4 points, got %d", t.Name, len(t.Trapezoid))
	default:
		return 0, 0, 0, 0, fmt.Errorf("term %q has no triangle or trapezoid", t.Name)
	}
}

// IsInput reports whether name is declared as an input variable. Names are
// compared in lower case, as the symbol table keys them.
func (m *Model) IsInput(name string) bool {
	name = strings.ToLower(name)
	for _, v := range m.Variables {
		if v.Usage == UsageInput && strings.ToLower(v.Name) == name {
			return true
		}
	}
	return false
}

// OutputName returns the name of the first output variable.
func (m *Model) OutputName() (string, bool) {
	for _, v := range m.Variables {
		if v.Usage == UsageOutput {
			return v.Name, true
		}
	}
	return "", false
}

func (m *Model) InputNames() []string {
	var names []string
	for _, v := range m.Variables {
		if v.Usage == UsageInput {
			names = append(names, v.Name)
		}
	}
	return names
}

func (m *Model) String() string {
	vars := make([]string, 0, len(m.Variables))
	for _, v := range m.Variables {
		terms := make([]string, 0, len(v.Terms))
		for _, t := range v.Terms {
			terms = append(terms, t.Name)
		}
		vars = append(vars, fmt.Sprintf("%s %s {%s}", v.Usage, v.Name, strings.Join(terms, ", ")))
	}
	return fmt.Sprintf("model %q: vars=[%s], rules=%d", m.Name, strings.Join(vars, "; "), len(m.Rules))
}
