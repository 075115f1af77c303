package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/engine"
	"github.com/DjordjeVuckovic/fuzzy-engine/pkg/stringsutil"
)

const defaultEnvPath = "cmd/fuzzy_eval/.env"

type cliConfig struct {
	ModelPath string
	Inputs    string
	Steps     int
	Workers   int
	Sweep     string
	Output    string
	Explain   bool
	LogLevel  string
}

type sweepConfig struct {
	Name    string
	From    float64
	To      float64
	Samples int
}

// parseFlags reads the command line. FUZZY_MODEL, FUZZY_STEPS and LOG_LEVEL
// provide the defaults; flags win.
func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	defaultSteps := 0
	if s := os.Getenv("FUZZY_STEPS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid FUZZY_STEPS %q: %w", s, err)
		}
		defaultSteps = v
	}
	defaultLevel := os.Getenv("LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}

	fs := flag.NewFlagSet("fuzzy_eval", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.ModelPath, "model", os.Getenv("FUZZY_MODEL"), "Path to the model YAML")
	fs.StringVar(&cfg.Inputs, "input", "", "Crisp input values, e.g. carSpeed=70,load=2")
	fs.IntVar(&cfg.Steps, "steps", defaultSteps, "Discretisation steps (0 uses the model value or 1000)")
	fs.IntVar(&cfg.Workers, "workers", 1, "Number of goroutines parsing rules")
	fs.StringVar(&cfg.Sweep, "sweep", "", "Sweep an input range, name:from:to:samples")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the sweep JSON report")
	fs.BoolVar(&cfg.Explain, "explain", false, "Print variables, rules and their parse results")
	fs.StringVar(&cfg.LogLevel, "log-level", defaultLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.ModelPath == "" {
		return cfg, fmt.Errorf("a model is required: use -model or FUZZY_MODEL")
	}
	if cfg.Inputs == "" && cfg.Sweep == "" && !cfg.Explain {
		return cfg, fmt.Errorf("nothing to do: use -input, -sweep or -explain")
	}
	return cfg, nil
}

// parseInputs parses "a=1,b=2" into engine inputs.
func (c cliConfig) parseInputs() ([]engine.Input, error) {
	parts := stringsutil.SplitTrim(c.Inputs, ",")
	inputs := make([]engine.Input, 0, len(parts))
	for _, p := range parts {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid input %q: expected name=value", p)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value of input %q: %w", name, err)
		}
		inputs = append(inputs, engine.Input{Name: name, Value: v})
	}
	return inputs, nil
}

// parseSweep parses "name:from:to:samples".
func (c cliConfig) parseSweep() (sweepConfig, error) {
	parts := strings.Split(c.Sweep, ":")
	if len(parts) != 4 {
		return sweepConfig{}, fmt.Errorf("invalid sweep %q: expected name:from:to:samples", c.Sweep)
	}

	sc := sweepConfig{Name: strings.TrimSpace(parts[0])}
	if sc.Name == "" {
		return sweepConfig{}, fmt.Errorf("invalid sweep %q: missing variable name", c.Sweep)
	}

	var err error
	if sc.From, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return sweepConfig{}, fmt.Errorf("invalid sweep start: %w", err)
	}
	if sc.To, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
		return sweepConfig{}, fmt.Errorf("invalid sweep end: %w", err)
	}
	if sc.Samples, err = strconv.Atoi(strings.TrimSpace(parts[3])); err != nil {
		return sweepConfig{}, fmt.Errorf("invalid sweep sample count: %w", err)
	}
	if sc.Samples <= 0 {
		return sweepConfig{}, fmt.Errorf("sweep sample count must be positive, got %d", sc.Samples)
	}
	return sc, nil
}
