package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/orbitx/internal/gravity"
	"github.com/san-kum/orbitx/internal/sim"
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
	ID         string                        `json:"id"`
	Preset     string                        `json:"preset,omitempty"`
	Timestamp  time.Time                     `json:"timestamp"`
	Dt         float64                       `json:"dt"`
	Duration   float64                       `json:"duration"`
	Integrator string                        `json:"integrator"`
	Effects    []string                      `json:"effects"`
	Bounds     map[string]gravity.AxisBounds `json:"bounds"`
	Metrics    map[string]float64            `json:"metrics"`
	Steps      int                           `json:"steps"`
}

// Save writes a run directory holding metadata.json and an axes.csv
// with the sampled semi-major-axis series, and returns the run ID.
func (s *Store) Save(preset, integrator string, dt, duration float64, effectNames []string, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Preset:     preset,
		Timestamp:  time.Now(),
		Dt:         dt,
		Duration:   duration,
		Integrator: integrator,
		Effects:    effectNames,
		Bounds:     make(map[string]gravity.AxisBounds),
		Metrics:    result.Metrics,
		Steps:      result.StepsTaken,
	}
	for i, b := range result.Bounds {
		meta.Bounds[strconv.Itoa(i)] = b
	}

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

	if err := s.writeAxes(filepath.Join(runDir, "axes.csv"), result); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) writeAxes(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	bodies := trackedBodies(result)
	header := []string{"t"}
	for _, i := range bodies {
		header = append(header, "a_"+strconv.Itoa(i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for row, t := range result.Times {
		record := []string{strconv.FormatFloat(t, 'g', 17, 64)}
		for _, i := range bodies {
			series := result.Axes[i]
			if row < len(series) {
				record = append(record, strconv.FormatFloat(series[row], 'g', 17, 64))
			} else {
				record = append(record, "")
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}

func trackedBodies(result *sim.Result) []int {
	bodies := make([]int, 0, len(result.Axes))
	for i := range result.Axes {
		bodies = append(bodies, i)
	}
	sort.Ints(bodies)
	return bodies
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue // skip half-written runs
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("parse metadata for %s: %w", runID, err)
	}
	return meta, nil
}

// LoadAxes reads back the sampled series: times plus one series per
// tracked body keyed by body index.
func (s *Store) LoadAxes(runID string) ([]float64, map[int][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "axes.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 1 {
		return nil, nil, fmt.Errorf("empty axes file for %s", runID)
	}

	header := rows[0]
	cols := make([]int, len(header))
	for c := 1; c < len(header); c++ {
		i, err := strconv.Atoi(header[c][len("a_"):])
		if err != nil {
			return nil, nil, fmt.Errorf("bad column %q in %s", header[c], runID)
		}
		cols[c] = i
	}

	times := make([]float64, 0, len(rows)-1)
	axes := make(map[int][]float64)
	for _, row := range rows[1:] {
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, err
		}
		times = append(times, t)

		for c := 1; c < len(row); c++ {
			if row[c] == "" {
				continue
			}
			v, err := strconv.ParseFloat(row[c], 64)
			if err != nil {
				return nil, nil, err
			}
			axes[cols[c]] = append(axes[cols[c]], v)
		}
	}
	return times, axes, nil
}
