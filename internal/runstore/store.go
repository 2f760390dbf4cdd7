// Package runstore persists a completed generalized-alpha run - the
// scenario configuration and the resulting state-and-time history -
// to a data directory, one JSON metadata file plus one CSV states
// file per run, adapted from the teacher's internal/storage package.
package runstore

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ddement/openturbine/internal/config"
	"github.com/ddement/openturbine/internal/heavytop"
)

// Store persists runs under a base directory, one subdirectory per
// run ID.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init ensures the base directory exists.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is a completed run's scenario configuration and
// summary statistics.
type RunMetadata struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	Config      config.Config `json:"config"`
	NumSteps    int           `json:"num_steps"`
	Converged   bool          `json:"converged"`
	TotalNewton int           `json:"total_newton_iterations"`
}

// Save writes the run's metadata and state history under a fresh
// per-run subdirectory named after the current Unix time in seconds
// ("run_<seconds>"), returning the run ID.
func (s *Store) Save(cfg config.Config, history []heavytop.State, converged bool, totalNewton int) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Config:      cfg,
		NumSteps:    len(history) - 1,
		Converged:   converged,
		TotalNewton: totalNewton,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeStatesCSV(filepath.Join(runDir, "states.csv"), cfg.TimeStepper.T0, cfg.TimeStepper.Dt, history); err != nil {
		return "", err
	}

	return runID, nil
}

func writeStatesCSV(path string, t0, dt float64, history []heavytop.State) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(history) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range history[0].Q {
		header = append(header, fmt.Sprintf("q%d", i))
	}
	for i := range history[0].V {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, state := range history {
		row := []string{strconv.FormatFloat(t0+float64(i)*dt, 'f', 6, 64)}
		for _, val := range state.Q {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		for _, val := range state.V {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for every run under the base directory.
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
		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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

// Load reads a single run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadStates reads a run's state history back from its CSV file,
// returning the times and, for each row, the q-then-v vector.
func (s *Store) LoadStates(runID string) ([]float64, [][]float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "states.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		state := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			state = append(state, val)
		}
		states = append(states, state)
	}
	return times, states, nil
}
