package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Preset represents an attendee preset row
type Preset struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Participants json.RawMessage `db:"participants"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// PresetRepository handles attendee preset database operations
type PresetRepository struct {
	db *sqlx.DB
}

// NewPresetRepository creates a new preset repository
func NewPresetRepository(db *sqlx.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// Upsert creates or replaces the participant list stored under name
func (r *PresetRepository) Upsert(name string, participants []string) error {
	data, err := json.Marshal(participants)
	if err != nil {
		return fmt.Errorf("failed to encode participants: %w", err)
	}

	preset := &Preset{
		ID:           uuid.New().String(),
		Name:         name,
		Participants: data,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	query := `
		INSERT INTO attendee_presets (id, name, participants, created_at, updated_at)
		VALUES (:id, :name, :participants, :created_at, :updated_at)
		ON CONFLICT(name) DO UPDATE SET
			participants = excluded.participants,
			updated_at = excluded.updated_at`

	if _, err := r.db.NamedExec(query, preset); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return nil
}

// GetAll returns every preset as a name → participants map
func (r *PresetRepository) GetAll() (map[string][]string, error) {
	var rows []Preset
	if err := r.db.Select(&rows, `SELECT * FROM attendee_presets ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	presets := make(map[string][]string, len(rows))
	for _, row := range rows {
		var participants []string
		if err := json.Unmarshal(row.Participants, &participants); err != nil {
			return nil, fmt.Errorf("corrupt participants for preset %q: %w", row.Name, err)
		}
		presets[row.Name] = participants
	}
	return presets, nil
}

// Get returns the participants stored under name
func (r *PresetRepository) Get(name string) ([]string, error) {
	var row Preset
	if err := r.db.Get(&row, `SELECT * FROM attendee_presets WHERE name = ?`, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("preset not found")
		}
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}

	var participants []string
	if err := json.Unmarshal(row.Participants, &participants); err != nil {
		return nil, fmt.Errorf("corrupt participants for preset %q: %w", name, err)
	}
	return participants, nil
}

// Delete removes the preset stored under name
func (r *PresetRepository) Delete(name string) error {
	result, err := r.db.Exec(`DELETE FROM attendee_presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("preset not found")
	}
	return nil
}
