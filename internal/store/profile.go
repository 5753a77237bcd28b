package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ankur/wakeprep/internal/learner"
)

// ProfileRepo persists learner profiles as JSON snapshots, latest wins.
type ProfileRepo struct {
	db *sql.DB
}

// Save stores a new profile snapshot.
func (r *ProfileRepo) Save(ctx context.Context, p *learner.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profile_snapshots (learner_id, created_at, data)
		VALUES (?, ?, ?)`,
		p.ID, time.Now().UTC().Format(time.RFC3339), string(data))
	if err != nil {
		return fmt.Errorf("save profile snapshot: %w", err)
	}
	return nil
}

// Load returns the most recent snapshot for the learner, or nil if none
// has been saved.
func (r *ProfileRepo) Load(ctx context.Context, learnerID string) (*learner.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `
		SELECT data FROM profile_snapshots
		WHERE learner_id = ? ORDER BY id DESC LIMIT 1`, learnerID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile snapshot: %w", err)
	}

	var p learner.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

// Prune deletes all but the keep most recent snapshots for the learner.
func (r *ProfileRepo) Prune(ctx context.Context, learnerID string, keep int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM profile_snapshots
		WHERE learner_id = ? AND id NOT IN (
			SELECT id FROM profile_snapshots
			WHERE learner_id = ? ORDER BY id DESC LIMIT ?
		)`, learnerID, learnerID, keep)
	if err != nil {
		return fmt.Errorf("prune profile snapshots: %w", err)
	}
	return nil
}
