package selection

import (
	"time"

	"github.com/ankur/wakeprep/internal/question"
)

// FilterEngine applies the hard eligibility constraints, phase 1 of the
// pipeline. Filtering is an intersection of independent predicates, so the
// order below only affects the diagnostic stage counts in Stats.
type FilterEngine struct{}

// NewFilterEngine creates a filter engine.
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// Filter returns the subset of questions satisfying every hard constraint.
// An empty result is a valid outcome; the pipeline surfaces it as
// ErrNoEligibleQuestion rather than widening the criteria.
func (f *FilterEngine) Filter(questions []question.Question, c Criteria, now time.Time) []question.Question {
	var out []question.Question
	excluded := excludeSet(c.ExcludeIDs)
	for _, q := range questions {
		if f.eligible(&q, c, excluded, now) {
			out = append(out, q)
		}
	}
	return out
}

// HasEligible reports whether at least one question passes the filters.
func (f *FilterEngine) HasEligible(questions []question.Question, c Criteria, now time.Time) bool {
	excluded := excludeSet(c.ExcludeIDs)
	for _, q := range questions {
		if f.eligible(&q, c, excluded, now) {
			return true
		}
	}
	return false
}

func (f *FilterEngine) eligible(q *question.Question, c Criteria, excluded map[string]bool, now time.Time) bool {
	return f.matchExam(q, c.Exam) &&
		f.matchSubject(q, c.Subjects) &&
		f.matchTopic(q, c.Topics) &&
		f.matchDifficulty(q, c.DifficultyMin, c.DifficultyMax) &&
		f.matchSolveTime(q, c.MaxSolveTime) &&
		f.matchRecency(q, c.ExcludeRecentDays, now) &&
		!excluded[q.ID]
}

func (f *FilterEngine) matchExam(q *question.Question, exam question.Exam) bool {
	return q.Exam == exam
}

func (f *FilterEngine) matchSubject(q *question.Question, subjects []string) bool {
	if len(subjects) == 0 {
		return true
	}
	for _, s := range subjects {
		if q.Subject == s {
			return true
		}
	}
	return false
}

func (f *FilterEngine) matchTopic(q *question.Question, topics []string) bool {
	if len(topics) == 0 {
		return true
	}
	for _, t := range topics {
		if q.Topic == t {
			return true
		}
	}
	return false
}

func (f *FilterEngine) matchDifficulty(q *question.Question, min, max question.Difficulty) bool {
	idx := q.Difficulty.Index()
	return idx >= min.Index() && idx <= max.Index()
}

func (f *FilterEngine) matchSolveTime(q *question.Question, maxSeconds int) bool {
	return q.ExpectedSolveTime <= maxSeconds
}

// matchRecency keeps questions with no attempt record and those last
// attempted before the cutoff.
func (f *FilterEngine) matchRecency(q *question.Question, excludeDays int, now time.Time) bool {
	if excludeDays <= 0 || q.LastAttempted == nil {
		return true
	}
	cutoff := now.AddDate(0, 0, -excludeDays)
	return q.LastAttempted.Before(cutoff)
}

// FilterStats reports how many questions survive each filter stage, for
// diagnostics when a combination of constraints empties the pool.
type FilterStats struct {
	Initial         int
	AfterExam       int
	AfterSubjects   int
	AfterTopics     int
	AfterDifficulty int
	AfterSolveTime  int
	AfterRecency    int
	Final           int
}

// Stats runs the filter stages cumulatively and records survivor counts.
func (f *FilterEngine) Stats(questions []question.Question, c Criteria, now time.Time) FilterStats {
	st := FilterStats{Initial: len(questions)}
	excluded := excludeSet(c.ExcludeIDs)

	stage := func(keep func(*question.Question) bool, in []question.Question) []question.Question {
		var out []question.Question
		for _, q := range in {
			if keep(&q) {
				out = append(out, q)
			}
		}
		return out
	}

	qs := stage(func(q *question.Question) bool { return f.matchExam(q, c.Exam) }, questions)
	st.AfterExam = len(qs)
	qs = stage(func(q *question.Question) bool { return f.matchSubject(q, c.Subjects) }, qs)
	st.AfterSubjects = len(qs)
	qs = stage(func(q *question.Question) bool { return f.matchTopic(q, c.Topics) }, qs)
	st.AfterTopics = len(qs)
	qs = stage(func(q *question.Question) bool { return f.matchDifficulty(q, c.DifficultyMin, c.DifficultyMax) }, qs)
	st.AfterDifficulty = len(qs)
	qs = stage(func(q *question.Question) bool { return f.matchSolveTime(q, c.MaxSolveTime) }, qs)
	st.AfterSolveTime = len(qs)
	qs = stage(func(q *question.Question) bool { return f.matchRecency(q, c.ExcludeRecentDays, now) }, qs)
	st.AfterRecency = len(qs)
	qs = stage(func(q *question.Question) bool { return !excluded[q.ID] }, qs)
	st.Final = len(qs)

	return st
}

func excludeSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
