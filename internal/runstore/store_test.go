package runstore

import (
	"path/filepath"
	"testing"

	"github.com/ddement/openturbine/internal/config"
	"github.com/ddement/openturbine/internal/heavytop"
	"github.com/ddement/openturbine/internal/linalg"
)

func testHistory(t *testing.T) []heavytop.State {
	t.Helper()
	q := linalg.VectorFrom(0, 0, -1, 1, 0, 0, 0)
	v := linalg.NewVector(6)
	a := linalg.NewVector(6)
	aAlgo := linalg.NewVector(6)
	s0, err := heavytop.NewState(q, v, a, aAlgo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s1, err := heavytop.NewState(q, v, a, aAlgo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return []heavytop.State{s0, s1}
}

func TestSaveAndList(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	cfg := *config.DefaultConfig()
	history := testHistory(t)

	runID, err := store.Save(cfg, history, true, 4)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run ID")
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].ID != runID {
		t.Errorf("runs[0].ID = %q, want %q", runs[0].ID, runID)
	}
	if runs[0].NumSteps != 1 {
		t.Errorf("NumSteps = %d, want 1", runs[0].NumSteps)
	}
	if !runs[0].Converged {
		t.Error("expected Converged = true")
	}
}

func TestLoadAndLoadStates(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	cfg := *config.DefaultConfig()
	history := testHistory(t)

	runID, err := store.Save(cfg, history, false, 20)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if meta.TotalNewton != 20 {
		t.Errorf("TotalNewton = %d, want 20", meta.TotalNewton)
	}

	times, states, err := store.LoadStates(runID)
	if err != nil {
		t.Fatalf("LoadStates() error: %v", err)
	}
	if len(times) != 2 {
		t.Fatalf("len(times) = %d, want 2", len(times))
	}
	if len(states) != 2 || len(states[0]) != 13 {
		t.Fatalf("states shape = %d x %d, want 2 x 13", len(states), len(states[0]))
	}
}

func TestListEmptyDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	store := New(dir)

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty run list, got %d", len(runs))
	}
}
