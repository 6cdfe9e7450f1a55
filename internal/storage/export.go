package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type exportDoc struct {
	Meta   RunMetadata          `json:"meta"`
	Times  []float64            `json:"times"`
	Series map[string][]float64 `json:"series"`
}

// ExportJSON writes a run and its frame series as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, series *Series) error {
	doc := exportDoc{
		Meta:   *meta,
		Times:  series.Times,
		Series: make(map[string][]float64, len(series.Names)),
	}
	for _, name := range series.Names {
		doc.Series[name] = series.Column(name)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportCSV writes the frame series as CSV.
func ExportCSV(w io.Writer, series *Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(append([]string{"time"}, series.Names...)); err != nil {
		return err
	}
	for i, row := range series.Rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.FormatFloat(series.Times[i], 'f', 6, 64))
		for _, val := range row {
			rec = append(rec, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
