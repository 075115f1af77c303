package report

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/engine"
	"github.com/DjordjeVuckovic/fuzzy-engine/pkg/utils"
)

const decimals = 4

func Generate(model string, steps int, samples []engine.Sample) *Report {
	r := &Report{
		Meta: Meta{
			RunID:       uuid.New(),
			Timestamp:   time.Now().UTC(),
			Model:       model,
			Steps:       steps,
			Environment: NewEnvironmentInfo(),
		},
		Samples: make([]Entry, 0, len(samples)),
	}

	if len(samples) > 0 {
		r.Meta.Input = samples[0].Input.Name
		r.Meta.Output = samples[0].Output.Name
	}

	for _, s := range samples {
		entry := Entry{Input: utils.RoundDecimal(s.Input.Value, decimals)}
		if !math.IsNaN(s.Output.Value) {
			v := utils.RoundDecimal(s.Output.Value, decimals)
			entry.Output = &v
		}
		r.Samples = append(r.Samples, entry)
	}

	r.Summary = summarize(samples)

	return r
}

func summarize(samples []engine.Sample) Summary {
	s := Summary{Count: len(samples)}

	s.Latency = sweepLatency(samples)

	minV, maxV, sum := math.Inf(1), math.Inf(-1), 0.0
	defined := 0
	for _, sample := range samples {
		v := sample.Output.Value
		if math.IsNaN(v) {
			s.Undefined++
			continue
		}
		defined++
		sum += v
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	if defined > 0 {
		minV = utils.RoundDecimal(minV, decimals)
		maxV = utils.RoundDecimal(maxV, decimals)
		mean := utils.RoundDecimal(sum/float64(defined), decimals)
		s.Min, s.Max, s.Mean = &minV, &maxV, &mean
	}

	return s
}
