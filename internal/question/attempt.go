package question

import "time"

// SessionStatus describes the lifecycle of a practice session.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionFailed    SessionStatus = "failed"
)

// Attempt records one completed try at a question, built by the caller's
// interaction layer and consumed by the performance tracker and progress
// manager.
type Attempt struct {
	QuestionID string
	Question   *Question

	// Timing
	StartTime time.Time
	EndTime   time.Time
	TimeSpent float64 // seconds

	// Response
	SelectedAnswer   int
	SubmittedAnswers []int // full history across retries
	IsCorrect        bool
	Attempts         int // retry count for this question, >= 1

	// Learner state snapshots at attempt time.
	FrustrationAtAttempt float64
	StreakAtAttempt      int

	HintUsed bool
	Skipped  bool
}

// FirstTry reports whether the question was answered correctly on the
// first submission.
func (a *Attempt) FirstTry() bool {
	return a.IsCorrect && a.Attempts == 1
}

// Session groups the attempts of one sitting.
type Session struct {
	ID          string
	StartedAt   time.Time
	CompletedAt time.Time

	Attempts []Attempt

	TotalAttempts  int
	CorrectAnswers int
	Accuracy       float64 // percentage over answered questions
	HintsUsed      int

	Status SessionStatus

	XPEarned             int
	AchievementsUnlocked []string
}

// AddAttempt appends an attempt and refreshes the session rollups.
func (s *Session) AddAttempt(a Attempt) {
	s.Attempts = append(s.Attempts, a)
	s.TotalAttempts += a.Attempts
	if a.IsCorrect {
		s.CorrectAnswers++
	}
	if a.HintUsed {
		s.HintsUsed++
	}
	if n := len(s.Attempts); n > 0 {
		s.Accuracy = float64(s.CorrectAnswers) / float64(n) * 100
	}
}
