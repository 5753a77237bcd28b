package learner

import (
	"time"

	"github.com/ankur/wakeprep/internal/question"
)

// Trend tags the direction of a learner's recent performance in a subject.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// RecentQuestionCap bounds the per-subject ring of recently seen question IDs.
const RecentQuestionCap = 10

// SubjectStats accumulates a learner's history within one subject.
type SubjectStats struct {
	Subject          string
	TotalAttempts    int
	CorrectAnswers   int
	Accuracy         float64 // percentage
	AverageSolveTime float64 // seconds, running mean
	LastPracticed    *time.Time
	Proficiency      float64 // 0-100
	Trend            Trend
	RecentQuestions  []string // last RecentQuestionCap question IDs, oldest first
}

// PushRecent appends a question ID to the recent ring, evicting the oldest
// entry once the cap is reached.
func (s *SubjectStats) PushRecent(id string) {
	s.RecentQuestions = append(s.RecentQuestions, id)
	if len(s.RecentQuestions) > RecentQuestionCap {
		s.RecentQuestions = s.RecentQuestions[1:]
	}
}

// DifficultyStats accumulates a learner's history within one difficulty tier.
type DifficultyStats struct {
	Difficulty       question.Difficulty
	TotalAttempts    int
	CorrectAnswers   int
	Accuracy         float64 // percentage
	AverageSolveTime float64 // seconds, running mean
	SuccessRate      float64
}

// accuracyPct guards the zero-denominator case: no attempts means 0, never NaN.
func accuracyPct(correct, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return float64(correct) / float64(attempts) * 100
}

// Refresh recomputes the derived accuracy from the counters.
func (s *SubjectStats) Refresh() {
	s.Accuracy = accuracyPct(s.CorrectAnswers, s.TotalAttempts)
}

// Refresh recomputes the derived accuracy and success rate from the counters.
func (s *DifficultyStats) Refresh() {
	s.Accuracy = accuracyPct(s.CorrectAnswers, s.TotalAttempts)
	s.SuccessRate = s.Accuracy
}
