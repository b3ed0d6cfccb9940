package storage

import (
	"encoding/json"
	"os"
)

type ExportData struct {
	Meta  RunMetadata       `json:"meta"`
	Times []float64         `json:"times"`
	Axes  map[int][]float64 `json:"axes"`
}

// ExportJSON writes a whole run (metadata plus sampled series) as one
// indented JSON document, to path or stdout when path is empty.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.LoadMetadata(runID)
	if err != nil {
		return err
	}
	times, axes, err := s.LoadAxes(runID)
	if err != nil {
		return err
	}

	data := ExportData{Meta: meta, Times: times, Axes: axes}

	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
