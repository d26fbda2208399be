package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/liliang-cn/datagenie/internal/domain"
)

// StateKey is the snapshot key for the single AppState aggregate
const StateKey = "app:dataGenie"

// StateRepository persists AppState snapshots
type StateRepository struct {
	db *DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load retrieves the persisted snapshot. Returns (nil, nil) when no snapshot
// has been saved yet.
func (r *StateRepository) Load() (*domain.AppState, error) {
	var raw string
	err := r.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, StateKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state domain.AppState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// Save writes the snapshot, replacing any prior one
func (r *StateRepository) Save(state *domain.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, StateKey, string(raw), time.Now())

	return err
}
