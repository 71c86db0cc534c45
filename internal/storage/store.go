package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/san-kum/dsaviz/internal/oplog"
)

const (
	metadataFile = "metadata.json"
	logFile      = "log.csv"
)

// Store keeps visualizer sessions on disk, one directory per session.
type Store struct {
	baseDir string
	log     logrus.FieldLogger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, log: logrus.StandardLogger()}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID         string    `json:"id"`
	Mode       dsa.Mode  `json:"mode"`
	Source     string    `json:"source,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Sequence   []int     `json:"sequence"`
	Operations int       `json:"operations"`
}

// createFile is swapped in tests to force write failures.
var createFile = os.Create

// Save writes the final state and the full operation log of a session. Files
// are written to a hidden staging directory and renamed into place, so a
// failed save leaves nothing behind.
func (s *Store) Save(mode dsa.Mode, seq dsa.Sequence, entries []oplog.Entry, source string) (string, error) {
	id := uuid.NewString()

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}
	tmp, err := os.MkdirTemp(s.baseDir, ".saving-")
	if err != nil {
		return "", err
	}

	meta := SessionMetadata{
		ID:         id,
		Mode:       mode,
		Source:     source,
		Timestamp:  time.Now(),
		Sequence:   append([]int{}, seq...),
		Operations: len(entries),
	}

	if err := writeSession(tmp, meta, entries); err != nil {
		os.RemoveAll(tmp)
		return "", fmt.Errorf("save session: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.baseDir, id)); err != nil {
		os.RemoveAll(tmp)
		return "", fmt.Errorf("save session: %w", err)
	}

	s.log.WithFields(logrus.Fields{"id": id, "mode": mode.String(), "ops": len(entries)}).Debug("session saved")
	return id, nil
}

func writeSession(dir string, meta SessionMetadata, entries []oplog.Entry) error {
	metaFile, err := createFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	if err := metaFile.Close(); err != nil {
		return err
	}

	csvFile, err := createFile(filepath.Join(dir, logFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"seq", "time", "message", "length"}); err != nil {
		return err
	}
	for i, e := range entries {
		row := []string{
			strconv.Itoa(i),
			e.Time.Format(time.RFC3339Nano),
			e.Message,
			strconv.Itoa(e.Length),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return csvFile.Close()
}

// List returns every readable session, oldest first.
func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.WithError(err).WithField("dir", entry.Name()).Warn("skipping unreadable session")
			continue
		}
		sessions = append(sessions, *meta)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.Before(sessions[j].Timestamp)
	})
	return sessions, nil
}

func (s *Store) Load(id string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	return &meta, nil
}

// LoadLog reads the operation log back. Malformed rows are skipped.
func (s *Store) LoadLog(id string) ([]oplog.Entry, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, logFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []oplog.Entry{}, nil
	}

	out := make([]oplog.Entry, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		ts, err := time.Parse(time.RFC3339Nano, record[1])
		if err != nil {
			continue
		}
		length, err := strconv.Atoi(record[3])
		if err != nil {
			continue
		}
		out = append(out, oplog.Entry{Time: ts, Message: record[2], Length: length})
	}
	return out, nil
}
