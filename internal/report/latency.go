package report

import (
	"math"
	"slices"
	"time"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/engine"
)

// LatencyStats summarises how long the evaluations of a sweep took.
// Percentiles use the nearest-rank method.
type LatencyStats struct {
	Samples int           `json:"samples"`
	Min     time.Duration `json:"min_ns"`
	Max     time.Duration `json:"max_ns"`
	Mean    time.Duration `json:"mean_ns"`
	Stddev  time.Duration `json:"stddev_ns"`
	P50     time.Duration `json:"p50_ns"`
	P90     time.Duration `json:"p90_ns"`
	P99     time.Duration `json:"p99_ns"`
}

func sweepLatency(samples []engine.Sample) LatencyStats {
	n := len(samples)
	if n == 0 {
		return LatencyStats{}
	}

	sorted := make([]time.Duration, n)
	var sum time.Duration
	for i, s := range samples {
		sorted[i] = s.Latency
		sum += s.Latency
	}
	slices.Sort(sorted)

	mean := sum / time.Duration(n)
	var sq float64
	for _, d := range sorted {
		diff := float64(d - mean)
		sq += diff * diff
	}

	return LatencyStats{
		Samples: n,
		Min:     sorted[0],
		Max:     sorted[n-1],
		Mean:    mean,
		Stddev:  time.Duration(math.Sqrt(sq / float64(n))),
		P50:     nearestRank(sorted, 50),
		P90:     nearestRank(sorted, 90),
		P99:     nearestRank(sorted, 99),
	}
}

// nearestRank returns the smallest value of sorted that p percent of the
// values do not exceed.
func nearestRank(sorted []time.Duration, p int) time.Duration {
	i := (p*len(sorted)+99)/100 - 1
	if i < 0 {
		i = 0
	}
	return sorted[i]
}

func (s LatencyStats) IsZero() bool {
	return s.Samples == 0
}
