package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
)

// Sample is one evaluation of a sweep.
type Sample struct {
	Input   Input
	Output  Output
	Latency time.Duration
}

// Sweep evaluates n equally spaced values of the input variable name,
// from + i*(to-from)/n for i in [0, n). Other inputs keep their values.
func (e *Engine) Sweep(ctx context.Context, name string, from, to float64, n int) ([]Sample, error) {
	if n < 1 {
		return nil, apperr.NewEngine("number of sweep samples must be positive, got %d", n)
	}

	samples := make([]Sample, 0, n)
	step := (to - from) / float64(n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}

		in := Input{Name: name, Value: from + float64(i)*step}
		start := time.Now()
		out, err := e.Evaluate(ctx, in)
		if err != nil {
			return samples, fmt.Errorf("sweep sample %d: %w", i, err)
		}
		samples = append(samples, Sample{Input: in, Output: out, Latency: time.Since(start)})
	}

	return samples, nil
}
