package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/fuzzy"
)

func LoadFromFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, apperr.NewValidationWrap("parse model YAML", err)
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

var validUsages = map[Usage]bool{
	UsageInput:  true,
	UsageOutput: true,
}

func validate(m *Model) error {
	if len(m.Variables) == 0 {
		return apperr.NewValidation("model has no variables")
	}
	if len(m.Rules) == 0 {
		return apperr.NewValidation("model has no rules")
	}

	seen := make(map[string]bool)
	outputs := 0
	for i, v := range m.Variables {
		if v.Name == "" {
			return apperr.NewValidation(fmt.Sprintf("variable at index %d has no name", i))
		}
		if !validUsages[v.Usage] {
			return apperr.NewValidation(fmt.Sprintf("variable %q has invalid usage %q", v.Name, v.Usage))
		}
		if seen[strings.ToLower(v.Name)] {
			return apperr.NewValidation(fmt.Sprintf("variable %q is declared twice", v.Name))
		}
		seen[strings.ToLower(v.Name)] = true
		if v.Usage == UsageOutput {
			outputs++
		}
		if err := validateTerms(v); err != nil {
			return err
		}
	}
	if outputs == 0 {
		return apperr.NewValidation("model has no output variable")
	}

	for i, r := range m.Rules {
		if strings.TrimSpace(r) == "" {
			return apperr.NewValidation(fmt.Sprintf("rule at index %d is empty", i))
		}
	}

	if m.Steps <= 0 {
		m.Steps = DefaultSteps
	}
	return nil
}

func validateTerms(v Variable) error {
	if len(v.Terms) == 0 {
		return apperr.NewValidation(fmt.Sprintf("variable %q has no terms", v.Name))
	}

	seen := make(map[string]bool)
	for i, t := range v.Terms {
		if t.Name == "" {
			return apperr.NewValidation(fmt.Sprintf("term at index %d of variable %q has no name", i, v.Name))
		}
		if seen[strings.ToLower(t.Name)] {
			return apperr.NewValidation(fmt.Sprintf("term %q of variable %q is declared twice", t.Name, v.Name))
		}
		seen[strings.ToLower(t.Name)] = true

		start, leftTop, rightTop, end, err := t.Points()
		if err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("variable %q", v.Name), err)
		}
		if err := fuzzy.NewTrapezoid(start, leftTop, rightTop, end).Validate(); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("term %q of variable %q", t.Name, v.Name), err)
		}
	}
	return nil
}
