package question

import "time"

// Exam is the top-level track a learner studies for (e.g. "GATE", "CAT").
type Exam string

// Question is a single practice question. Questions are immutable once
// created; content changes produce a new Version.
type Question struct {
	ID string

	// Classification
	Exam       Exam
	Subject    string
	Topic      string
	Difficulty Difficulty
	Tags       []string

	// Content
	Prompt        string
	Options       []string
	CorrectAnswer int // index into Options
	Explanation   string
	Source        string

	// ExpectedSolveTime is the authored solve-time budget in seconds.
	ExpectedSolveTime int

	// Global aggregate stats across all learners.
	GlobalAttempts         int
	GlobalCorrectAttempts  int
	GlobalAverageSolveTime float64

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time

	// Per-learner computed fields, hydrated by the caller before selection.
	// Nil when the learner has no history with this question.
	LastAttempted *time.Time
	UserCorrect   *bool
}

// GlobalAccuracy returns the all-learner accuracy percentage, 0 when the
// question has never been attempted.
func (q *Question) GlobalAccuracy() float64 {
	if q.GlobalAttempts == 0 {
		return 0
	}
	return float64(q.GlobalCorrectAttempts) / float64(q.GlobalAttempts) * 100
}
