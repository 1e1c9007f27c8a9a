package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"weekly-menu-planner/internal/planner"
)

// StateStore persists the weekly plan state as a single JSON document of
// the shape {settings, slots}. Repair of loaded state is the caller's job
// (planner.ValidateAndRepair); the store only moves bytes.
type StateStore struct {
	path string
}

// NewStateStore creates a StateStore and ensures its directory exists.
func NewStateStore(path string) (*StateStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory %s: %w", filepath.Dir(path), err)
	}
	return &StateStore{path: path}, nil
}

// Save writes the plan state to disk, replacing any previous document.
func (s *StateStore) Save(state *planner.PlanState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan state file: %w", err)
	}
	return nil
}

// Load reads the persisted plan state. A malformed document surfaces as an
// error; callers treat it as "start fresh".
func (s *StateStore) Load() (*planner.PlanState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan state file: %w", err)
	}
	var state planner.PlanState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan state: %w", err)
	}
	return &state, nil
}

// Exists reports whether a persisted plan state is present.
func (s *StateStore) Exists() bool {
	_, err := os.Stat(s.path)
	return !os.IsNotExist(err)
}
