// Package metrics summarizes a session's operation log.
package metrics

import "github.com/san-kum/dsaviz/internal/oplog"

// Metric observes log entries in order and reduces them to one number.
type Metric interface {
	Name() string
	Observe(e oplog.Entry)
	Value() float64
	Reset()
}

type Result struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Default returns the metrics reported by show and export.
func Default() []Metric {
	return []Metric{
		NewPeakLength(),
		NewMeanLength(),
		NewGrowth(),
		NewShrink(),
		NewChurn(),
	}
}

// Summarize resets each metric, feeds it every entry and collects the values.
func Summarize(entries []oplog.Entry, ms ...Metric) []Result {
	if len(ms) == 0 {
		ms = Default()
	}
	out := make([]Result, len(ms))
	for i, m := range ms {
		m.Reset()
		for _, e := range entries {
			m.Observe(e)
		}
		out[i] = Result{Name: m.Name(), Value: m.Value()}
	}
	return out
}
