package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/dsaviz/internal/oplog"
)

func entries(lengths ...int) []oplog.Entry {
	out := make([]oplog.Entry, len(lengths))
	for i, n := range lengths {
		out[i] = oplog.Entry{Message: "op", Length: n}
	}
	return out
}

func TestSummarizeDefault(t *testing.T) {
	// insert, insert, insert, traverse, delete, clear
	results := Summarize(entries(1, 2, 3, 3, 2, 0))

	want := map[string]float64{
		"peak_length": 3,
		"mean_length": 11.0 / 6.0,
		"inserts":     3,
		"removals":    2,
		"churn":       5.0 / 6.0,
	}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for _, r := range results {
		exp, ok := want[r.Name]
		if !ok {
			t.Errorf("unexpected metric %s", r.Name)
			continue
		}
		if math.Abs(r.Value-exp) > 1e-9 {
			t.Errorf("%s: expected %f, got %f", r.Name, exp, r.Value)
		}
	}
}

func TestSummarizeResets(t *testing.T) {
	peak := NewPeakLength()
	Summarize(entries(1, 2, 3, 4, 5), peak)

	results := Summarize(entries(1), peak)
	if results[0].Value != 1 {
		t.Errorf("expected peak 1 after reset, got %f", results[0].Value)
	}
}

func TestEmptyLog(t *testing.T) {
	for _, r := range Summarize(nil) {
		if r.Value != 0 {
			t.Errorf("%s: expected 0 for empty log, got %f", r.Name, r.Value)
		}
	}
}

func TestRejectedInputIsNotChurn(t *testing.T) {
	c := NewChurn()
	for _, e := range entries(0, 0, 1) {
		c.Observe(e)
	}
	if math.Abs(c.Value()-1.0/3.0) > 1e-9 {
		t.Errorf("expected churn 1/3, got %f", c.Value())
	}
}
