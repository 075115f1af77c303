package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/engine"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/model"
	"github.com/DjordjeVuckovic/fuzzy-engine/internal/report"
	"github.com/DjordjeVuckovic/fuzzy-engine/pkg/config/env"
	"github.com/DjordjeVuckovic/fuzzy-engine/pkg/logger"
)

func main() {
	if err := env.LoadDotEnv(defaultEnvPath, false); err != nil {
		os.Exit(1)
	}

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		slog.Error("Failed to initialise logger", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.Get().Error("Evaluation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig, w io.Writer) error {
	m, err := model.LoadFromFile(cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("load model %s: %w", cfg.ModelPath, err)
	}
	slog.Info("Loaded model", "path", cfg.ModelPath, "model", m.Name, "variables", len(m.Variables), "rules", len(m.Rules))

	e := engine.New(m, engine.WithSteps(cfg.Steps), engine.WithParseWorkers(cfg.Workers))
	if err := e.Setup(ctx); err != nil {
		return err
	}

	if cfg.Explain {
		explain(e, m, w)
	}

	if cfg.Inputs != "" {
		if err := evaluate(ctx, e, cfg, w); err != nil {
			return err
		}
	}

	if cfg.Sweep != "" {
		if err := sweep(ctx, e, m, cfg, w); err != nil {
			return err
		}
	}

	return nil
}

func explain(e *engine.Engine, m *model.Model, w io.Writer) {
	fmt.Fprintln(w, e.String())
	fmt.Fprintf(w, "--- inputs\n%s\n", strings.Join(m.InputNames(), ", "))
	fmt.Fprintln(w, "--- parse results")
	for _, r := range e.Rules() {
		tokens := make([]string, 0, len(r.Tokens()))
		for _, t := range r.Tokens() {
			tokens = append(tokens, t.String())
		}
		fmt.Fprintf(w, "%s\n  status     = %s\n  tokens     = %s\n  premise    = %s\n  conclusion = %s\n  error      = %s\n",
			r.Text(), r.Status(), strings.Join(tokens, " "),
			strings.Join(r.Premise(), " "), strings.Join(r.Conclusion(), " "), r.ParsingError())
	}
}

func evaluate(ctx context.Context, e *engine.Engine, cfg cliConfig, w io.Writer) error {
	inputs, err := cfg.parseInputs()
	if err != nil {
		return err
	}

	out, err := e.Evaluate(ctx, inputs...)
	if err != nil {
		return err
	}

	for _, in := range inputs {
		fmt.Fprintln(w, engine.FormatResult(in, out, 8, 4))
	}
	return nil
}

func sweep(ctx context.Context, e *engine.Engine, m *model.Model, cfg cliConfig, w io.Writer) error {
	sc, err := cfg.parseSweep()
	if err != nil {
		return err
	}
	if !m.IsInput(sc.Name) {
		return fmt.Errorf("cannot sweep %q: not an input variable of model %q, inputs are %s",
			sc.Name, m.Name, strings.Join(m.InputNames(), ", "))
	}

	samples, err := e.Sweep(ctx, sc.Name, sc.From, sc.To, sc.Samples)
	if err != nil {
		return err
	}

	rpt := report.Generate(m.Name, e.Steps(), samples)
	report.WriteTable(rpt, w)

	if cfg.Output != "" {
		path, err := report.SaveJSON(rpt, cfg.Output)
		if err != nil {
			return err
		}
		slog.Info("Report written", "path", path, "run_id", rpt.Meta.RunID)
	}
	return nil
}
