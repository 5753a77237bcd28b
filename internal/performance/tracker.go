// Package performance folds completed question attempts into the learner
// profile: per-subject and per-difficulty stats, topic mastery, overall
// rollups, frustration, and weak/strong areas.
package performance

import (
	"sort"
	"time"

	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/question"
)

const (
	// minAttemptsForSignal is how many attempts a subject needs before its
	// accuracy counts for trend and weak/strong-area classification.
	minAttemptsForSignal = 5

	weakAccuracyCeiling   = 60.0
	strongAccuracyFloor   = 80.0
	areaShare             = 0.3 // weak/strong areas cover 30% of qualifying subjects
	bestTimeAccuracyFloor = 70.0
)

// Tracker updates learner profiles after attempts. It is stateless; every
// Update is a pure transform over its inputs.
type Tracker struct{}

// NewTracker creates a tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update folds one attempt into the profile and returns a new, independent
// profile. The input profile is not mutated; the caller owns the result.
func (t *Tracker) Update(p *learner.Profile, q *question.Question, a *question.Attempt, now time.Time) *learner.Profile {
	out := p.Clone()

	t.updateSubjectStats(out, q, a, now)
	t.updateDifficultyStats(out, q.Difficulty, a)
	t.updateTopicMastery(out, q.Topic, a)
	t.updateOverallStats(out, q, a)
	t.updateFrustration(out, a)
	t.updateWeakStrongAreas(out)
	t.updateBestTimeOfDay(out, now)

	out.LastActive = now
	return out
}

func (t *Tracker) updateSubjectStats(p *learner.Profile, q *question.Question, a *question.Attempt, now time.Time) {
	stats := p.SubjectStatsFor(q.Subject)

	stats.TotalAttempts++
	if a.IsCorrect {
		stats.CorrectAnswers++
	}
	stats.Refresh()

	stats.AverageSolveTime = incrementalMean(stats.AverageSolveTime, stats.TotalAttempts, a.TimeSpent)

	practiced := now
	stats.LastPracticed = &practiced

	stats.Proficiency = proficiency(stats)
	stats.Trend = trend(stats)
	stats.PushRecent(q.ID)
}

func (t *Tracker) updateDifficultyStats(p *learner.Profile, d question.Difficulty, a *question.Attempt) {
	stats := p.DifficultyStatsFor(d)

	stats.TotalAttempts++
	if a.IsCorrect {
		stats.CorrectAnswers++
	}
	stats.Refresh()

	stats.AverageSolveTime = incrementalMean(stats.AverageSolveTime, stats.TotalAttempts, a.TimeSpent)
}

func (t *Tracker) updateTopicMastery(p *learner.Profile, topic string, a *question.Attempt) {
	delta := -2.0
	if a.IsCorrect {
		delta = 5.0
		if a.Attempts == 1 {
			delta += 2.0
		}
	}
	p.TopicMastery[topic] = clamp(p.TopicMastery[topic]+delta, 0, 100)
}

func (t *Tracker) updateOverallStats(p *learner.Profile, q *question.Question, a *question.Attempt) {
	p.QuestionsAnswered++
	if a.IsCorrect {
		p.CorrectAnswers++
	}
	p.OverallAccuracy = float64(p.CorrectAnswers) / float64(p.QuestionsAnswered) * 100

	p.AverageSolveTime = incrementalMean(p.AverageSolveTime, p.QuestionsAnswered, a.TimeSpent)
	p.AverageRetryCount = incrementalMean(p.AverageRetryCount, p.QuestionsAnswered, float64(a.Attempts))

	// Explicit counters backing the speed_demon and first_try achievements.
	if a.IsCorrect && q.ExpectedSolveTime > 0 && a.TimeSpent < float64(q.ExpectedSolveTime) {
		p.SpeedySolveCount++
	}
	if a.FirstTry() {
		p.FirstTryCorrectCount++
	}
}

func (t *Tracker) updateFrustration(p *learner.Profile, a *question.Attempt) {
	if !a.IsCorrect {
		p.FrustrationLevel = clamp(p.FrustrationLevel+1, 0, 10)
		if a.Attempts > 2 {
			p.FrustrationLevel = clamp(p.FrustrationLevel+0.5, 0, 10)
		}
		return
	}

	if a.Attempts == 1 {
		p.FrustrationLevel = clamp(p.FrustrationLevel-2, 0, 10)
	} else {
		p.FrustrationLevel = clamp(p.FrustrationLevel-0.5, 0, 10)
	}
}

// updateWeakStrongAreas recomputes both lists from scratch: among subjects
// with enough attempts, weak = bottom 30% under 60% accuracy, strong =
// top 30% over 80%.
func (t *Tracker) updateWeakStrongAreas(p *learner.Profile) {
	var qualifying []*learner.SubjectStats
	for _, s := range p.SubjectPerformance {
		if s.TotalAttempts >= minAttemptsForSignal {
			qualifying = append(qualifying, s)
		}
	}

	if len(qualifying) == 0 {
		p.WeakAreas = nil
		p.StrongAreas = nil
		return
	}

	sort.Slice(qualifying, func(i, j int) bool {
		if qualifying[i].Accuracy != qualifying[j].Accuracy {
			return qualifying[i].Accuracy < qualifying[j].Accuracy
		}
		return qualifying[i].Subject < qualifying[j].Subject
	})

	share := int(float64(len(qualifying))*areaShare + 0.999) // ceil

	var weak []string
	for _, s := range qualifying {
		if s.Accuracy < weakAccuracyCeiling && len(weak) < share {
			weak = append(weak, s.Subject)
		}
	}

	var strongPool []string
	for _, s := range qualifying {
		if s.Accuracy > strongAccuracyFloor {
			strongPool = append(strongPool, s.Subject)
		}
	}
	if len(strongPool) > share {
		strongPool = strongPool[len(strongPool)-share:]
	}

	p.WeakAreas = weak
	p.StrongAreas = strongPool
}

// updateBestTimeOfDay overwrites the best-performing daypart with the
// current one whenever overall accuracy is high. Deliberately simple; a
// per-bucket accuracy history would be the finer-grained alternative.
func (t *Tracker) updateBestTimeOfDay(p *learner.Profile, now time.Time) {
	if p.OverallAccuracy > bestTimeAccuracyFloor {
		p.BestTimeOfDay = learner.TimeOfDayAt(now)
	}
}

// proficiency scores a subject 0-100: accuracy contributes 60%, volume of
// practice up to 20, and a flat speed allowance of 20.
func proficiency(s *learner.SubjectStats) float64 {
	accuracyScore := s.Accuracy * 0.6
	consistencyScore := float64(s.TotalAttempts) * 2
	if consistencyScore > 20 {
		consistencyScore = 20
	}
	const speedScore = 20.0

	total := accuracyScore + consistencyScore + speedScore
	if total > 100 {
		total = 100
	}
	return total
}

func trend(s *learner.SubjectStats) learner.Trend {
	switch {
	case s.TotalAttempts < minAttemptsForSignal:
		return learner.TrendStable
	case s.Accuracy > 75:
		return learner.TrendImproving
	case s.Accuracy < 50:
		return learner.TrendDeclining
	default:
		return learner.TrendStable
	}
}

// incrementalMean updates a running mean after the nth sample:
// avg' = (avg*(n-1) + x) / n.
func incrementalMean(avg float64, n int, x float64) float64 {
	if n <= 0 {
		return 0
	}
	return (avg*float64(n-1) + x) / float64(n)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
