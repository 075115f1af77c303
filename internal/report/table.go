package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Fuzzy Model Sweep ===\n\n")
	fmt.Fprintf(tw, "Model: %s (steps = %d, run = %s)\n\n", r.Meta.Model, r.Meta.Steps, r.Meta.RunID)

	writeSamplesTable(tw, r)
	writeSummary(tw, &r.Summary)

	tw.Flush()
}

func writeSamplesTable(tw *tabwriter.Writer, r *Report) {
	header := []string{"#", r.Meta.Input, r.Meta.Output}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for i, e := range r.Samples {
		row := []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.4f", e.Input),
			fmtValue(e.Output),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeSummary(tw *tabwriter.Writer, s *Summary) {
	fmt.Fprintf(tw, "Samples:\t%d\n", s.Count)
	fmt.Fprintf(tw, "Undefined:\t%d\n", s.Undefined)
	fmt.Fprintf(tw, "Min:\t%s\n", fmtValue(s.Min))
	fmt.Fprintf(tw, "Max:\t%s\n", fmtValue(s.Max))
	fmt.Fprintf(tw, "Mean:\t%s\n", fmtValue(s.Mean))

	if !s.Latency.IsZero() {
		l := s.Latency
		fmt.Fprintf(tw, "Latency:\tmin %s  p50 %s  p90 %s  p99 %s  max %s\n",
			fmtDuration(l.Min), fmtDuration(l.P50), fmtDuration(l.P90), fmtDuration(l.P99), fmtDuration(l.Max))
	}
}

func fmtDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
}

func fmtValue(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", *v)
}
