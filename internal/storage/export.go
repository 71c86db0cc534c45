package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/dsaviz/internal/metrics"
	"github.com/san-kum/dsaviz/internal/oplog"
)

type ExportData struct {
	SessionMetadata
	Log     []string         `json:"log"`
	Lengths []int            `json:"lengths"`
	Metrics []metrics.Result `json:"metrics"`
}

// ExportJSON writes a session's metadata together with its formatted log
// and summary metrics.
func (s *Store) ExportJSON(w io.Writer, id string) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	entries, err := s.LoadLog(id)
	if err != nil {
		return err
	}

	data := ExportData{
		SessionMetadata: *meta,
		Log:             make([]string, len(entries)),
		Lengths:         Lengths(entries),
		Metrics:         metrics.Summarize(entries),
	}
	for i, e := range entries {
		data.Log[i] = e.String()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Lengths extracts the sequence length after each operation.
func Lengths(entries []oplog.Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Length
	}
	return out
}
