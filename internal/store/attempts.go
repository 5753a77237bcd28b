package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ankur/wakeprep/internal/question"
)

// AttemptRepo is an append-only log of question attempts. Its
// LastAttempted view hydrates the per-learner recency field the
// selection filter reads.
type AttemptRepo struct {
	db *sql.DB
}

// Append records one completed attempt.
func (r *AttemptRepo) Append(ctx context.Context, learnerID string, a *question.Attempt) error {
	submitted, err := json.Marshal(a.SubmittedAnswers)
	if err != nil {
		return fmt.Errorf("marshal submitted answers: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO attempts
			(id, learner_id, question_id, started_at, ended_at, time_spent,
			 selected_answer, submitted_answers, is_correct, attempt_count,
			 frustration, streak, hint_used, skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), learnerID, a.QuestionID,
		a.StartTime.Format(time.RFC3339), a.EndTime.Format(time.RFC3339),
		a.TimeSpent, a.SelectedAnswer, string(submitted),
		boolInt(a.IsCorrect), a.Attempts,
		a.FrustrationAtAttempt, a.StreakAtAttempt,
		boolInt(a.HintUsed), boolInt(a.Skipped))
	if err != nil {
		return fmt.Errorf("append attempt for %s: %w", a.QuestionID, err)
	}
	return nil
}

// LastAttempted returns the most recent attempt time per question for the
// learner.
func (r *AttemptRepo) LastAttempted(ctx context.Context, learnerID string) (map[string]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT question_id, MAX(ended_at) FROM attempts
		WHERE learner_id = ? GROUP BY question_id`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("last attempted: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var id, ended string
		if err := rows.Scan(&id, &ended); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		t, err := time.Parse(time.RFC3339, ended)
		if err != nil {
			continue
		}
		out[id] = t
	}
	return out, rows.Err()
}

// CountByLearner returns how many attempts the learner has logged.
func (r *AttemptRepo) CountByLearner(ctx context.Context, learnerID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attempts WHERE learner_id = ?`, learnerID).Scan(&n)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
