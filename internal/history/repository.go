// Package history keeps snapshots of accepted full-week regenerations so a
// household can look back at (or restore from) earlier plans.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"weekly-menu-planner/internal/planner"
)

// Entry is one stored plan snapshot.
type Entry struct {
	ID        string    `json:"id"`
	PlanData  []byte    `json:"plan_data"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository is a database-backed store for plan snapshots.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save stores a snapshot of the given plan state and returns its id.
func (r *Repository) Save(ctx context.Context, state *planner.PlanState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan snapshot: %w", err)
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO plan_history (id, plan_data, created_at)
		VALUES (?, ?, ?)
	`, id, string(data), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert plan snapshot: %w", err)
	}
	return id, nil
}

// ListRecent retrieves the N most recent snapshots, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, plan_data, created_at
		FROM plan_history
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan snapshots: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var data string
		if err := rows.Scan(&e.ID, &data, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan snapshot: %w", err)
		}
		e.PlanData = []byte(data)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get retrieves a single snapshot by id. Returns nil when not found.
func (r *Repository) Get(ctx context.Context, id string) (*Entry, error) {
	var e Entry
	var data string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, plan_data, created_at
		FROM plan_history
		WHERE id = ?
	`, id).Scan(&e.ID, &data, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan snapshot: %w", err)
	}
	e.PlanData = []byte(data)
	return &e, nil
}

// Cleanup removes snapshots older than the given number of days and returns
// how many rows were removed.
func (r *Repository) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM plan_history WHERE created_at < ?
	`, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up plan snapshots: %w", err)
	}
	return res.RowsAffected()
}
