package history

import (
	"context"
	"encoding/json"
	"math/rand"
	"path/filepath"
	"testing"

	"weekly-menu-planner/internal/database"
	"weekly-menu-planner/internal/planner"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func snapshotState() *planner.PlanState {
	return planner.NewEngine(rand.NewSource(1)).RegenerateWeek(planner.DefaultSettings())
}

func TestSaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	state := snapshotState()

	id, err := repo.Save(ctx, state)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned empty id")
	}

	entry, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if entry == nil {
		t.Fatal("Get returned nil for a just-saved snapshot")
	}

	var restored planner.PlanState
	if err := json.Unmarshal(entry.PlanData, &restored); err != nil {
		t.Fatalf("snapshot payload is not valid JSON: %v", err)
	}
	if len(restored.Slots) != planner.SlotsPerWeek {
		t.Errorf("restored snapshot has %d slots, want %d", len(restored.Slots), planner.SlotsPerWeek)
	}
}

func TestGetMissing(t *testing.T) {
	repo := newTestRepository(t)

	entry, err := repo.Get(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if entry != nil {
		t.Error("expected nil entry for unknown id")
	}
}

func TestListRecent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Save(ctx, snapshotState()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].CreatedAt.Before(entries[i].CreatedAt) {
			t.Error("entries not ordered newest first")
		}
	}
}

func TestCleanup(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.Save(ctx, snapshotState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Nothing is older than a day yet.
	removed, err := repo.Cleanup(ctx, 1)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected no rows removed, got %d", removed)
	}

	// A zero-day threshold removes everything saved before now.
	removed, err = repo.Cleanup(ctx, 0)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 row removed, got %d", removed)
	}

	entries, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty history after cleanup, got %d entries", len(entries))
	}
}
