package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleSeries() *Series {
	return &Series{
		Names: []string{"avg_speed", "link_count"},
		Times: []float64{0, 1.0 / 60, 2.0 / 60},
		Rows: [][]float64{
			{0.5, 12},
			{0.6, 11},
			{0.55, 13},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{
		Preset:    "calm",
		Seed:      42,
		FPS:       60,
		Duration:  5,
		Width:     1280,
		Height:    720,
		Particles: 80,
		Metrics:   map[string]float64{"avg_speed": 0.55},
	}

	runID, err := st.Save(meta, sampleSeries())
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("expected run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ID != runID {
		t.Errorf("expected id %s, got %s", runID, loaded.ID)
	}
	if loaded.Preset != "calm" || loaded.Particles != 80 {
		t.Errorf("metadata not preserved: %+v", loaded)
	}
	if loaded.Timestamp.IsZero() {
		t.Error("timestamp should be assigned on save")
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(series.Rows) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(series.Rows))
	}
	if series.Rows[2][1] != 13 {
		t.Errorf("expected link_count 13 in last frame, got %f", series.Rows[2][1])
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(RunMetadata{Preset: "dense"}, sampleSeries()); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Preset != "dense" {
		t.Errorf("expected preset dense, got %s", runs[0].Preset)
	}
}

func TestSeriesColumn(t *testing.T) {
	s := sampleSeries()

	col := s.Column("link_count")
	if len(col) != 3 || col[0] != 12 {
		t.Errorf("unexpected column %v", col)
	}
	if s.Column("missing") != nil {
		t.Error("expected nil for unknown column")
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "run_1", Preset: "calm"}
	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, sampleSeries()); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Meta   RunMetadata          `json:"meta"`
		Series map[string][]float64 `json:"series"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Meta.ID != "run_1" {
		t.Errorf("expected id run_1, got %s", doc.Meta.ID)
	}
	if len(doc.Series["avg_speed"]) != 3 {
		t.Errorf("expected 3 avg_speed samples, got %d", len(doc.Series["avg_speed"]))
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, sampleSeries()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "time,avg_speed,link_count") {
		t.Errorf("unexpected header %q", lines[0])
	}
}
