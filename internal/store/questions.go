package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ankur/wakeprep/internal/question"
)

// QuestionRepo persists the question catalog. The selection pipeline
// always receives the complete catalog via List and filters in memory.
type QuestionRepo struct {
	db *sql.DB
}

// List returns every question in the catalog.
func (r *QuestionRepo) List(ctx context.Context) ([]question.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, exam, subject, topic, difficulty, tags, prompt, options,
		       correct_answer, explanation, source, expected_solve_time,
		       global_attempts, global_correct, global_avg_solve_time,
		       version, created_at, updated_at
		FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []question.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Put inserts or replaces a question.
func (r *QuestionRepo) Put(ctx context.Context, q *question.Question) error {
	tags, err := json.Marshal(q.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO questions
			(id, exam, subject, topic, difficulty, tags, prompt, options,
			 correct_answer, explanation, source, expected_solve_time,
			 global_attempts, global_correct, global_avg_solve_time,
			 version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, string(q.Exam), q.Subject, q.Topic, string(q.Difficulty),
		string(tags), q.Prompt, string(options),
		q.CorrectAnswer, q.Explanation, q.Source, q.ExpectedSolveTime,
		q.GlobalAttempts, q.GlobalCorrectAttempts, q.GlobalAverageSolveTime,
		q.Version, q.CreatedAt.Format(time.RFC3339), q.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("put question %s: %w", q.ID, err)
	}
	return nil
}

// Seed inserts the given questions, replacing existing rows with the
// same id.
func (r *QuestionRepo) Seed(ctx context.Context, questions []question.Question) error {
	for i := range questions {
		if err := r.Put(ctx, &questions[i]); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the catalog size.
func (r *QuestionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func scanQuestion(rows *sql.Rows) (question.Question, error) {
	var (
		q                question.Question
		exam, difficulty string
		tags, options    string
		created, updated string
	)
	err := rows.Scan(&q.ID, &exam, &q.Subject, &q.Topic, &difficulty,
		&tags, &q.Prompt, &options,
		&q.CorrectAnswer, &q.Explanation, &q.Source, &q.ExpectedSolveTime,
		&q.GlobalAttempts, &q.GlobalCorrectAttempts, &q.GlobalAverageSolveTime,
		&q.Version, &created, &updated)
	if err != nil {
		return q, fmt.Errorf("scan question: %w", err)
	}

	q.Exam = question.Exam(exam)
	q.Difficulty = question.Difficulty(difficulty)
	if err := json.Unmarshal([]byte(tags), &q.Tags); err != nil {
		return q, fmt.Errorf("unmarshal tags for %s: %w", q.ID, err)
	}
	if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
		return q, fmt.Errorf("unmarshal options for %s: %w", q.ID, err)
	}
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		q.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updated); err == nil {
		q.UpdatedAt = t
	}
	return q, nil
}
