// Package storage records headless field runs under a data directory:
// metadata.json for the run summary and frames.csv for the per-frame
// metric series.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	FPS       int                `json:"fps"`
	Duration  float64            `json:"duration"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Particles int                `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Series is a recorded per-frame metric table: one row per frame, one
// column per metric name.
type Series struct {
	Names []string
	Times []float64
	Rows  [][]float64
}

// Save writes a new run directory and returns its ID. The metadata ID and
// timestamp are assigned here.
func (s *Store) Save(meta RunMetadata, series *Series) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if series == nil || len(series.Rows) == 0 {
		return runID, nil
	}

	header := append([]string{"time"}, series.Names...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, row := range series.Rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.FormatFloat(series.Times[i], 'f', 6, 64))
		for _, val := range row {
			rec = append(rec, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads back the per-frame table for a run.
func (s *Store) LoadSeries(runID string) (*Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	series := &Series{}
	if len(records) == 0 {
		return series, nil
	}

	series.Names = records[0][1:]
	for _, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(rec)-1)
		for _, cell := range rec[1:] {
			val, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		series.Times = append(series.Times, t)
		series.Rows = append(series.Rows, row)
	}

	return series, nil
}

// Column extracts one named metric's values, or nil if absent.
func (s *Series) Column(name string) []float64 {
	idx := -1
	for i, n := range s.Names {
		if n == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	out := make([]float64, 0, len(s.Rows))
	for _, row := range s.Rows {
		if idx < len(row) {
			out = append(out, row[idx])
		}
	}
	return out
}
