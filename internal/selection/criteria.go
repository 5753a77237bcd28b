package selection

import (
	"fmt"

	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/question"
)

// Criteria holds the hard constraints and soft-preference context for one
// selection call. It is built by the caller from the learner's settings.
type Criteria struct {
	Exam question.Exam

	// Subjects and Topics are allow-lists; empty means "any".
	Subjects []string
	Topics   []string

	// Inclusive difficulty range, ordered min <= max.
	DifficultyMin question.Difficulty
	DifficultyMax question.Difficulty

	// MaxSolveTime caps the question's expected solve time, in seconds.
	MaxSolveTime int

	// ExcludeRecentDays drops questions the learner attempted within the
	// window. Zero disables the recency filter.
	ExcludeRecentDays int

	// ExcludeIDs drops specific questions, typically ones already served in
	// the current session.
	ExcludeIDs []string

	FocusMode learner.FocusMode

	// Profile is the learner state used for scoring. Read-only here.
	Profile *learner.Profile
}

// Validate rejects malformed criteria eagerly so a bad range surfaces as
// ErrInvalidCriteria rather than a silently empty filter result.
func (c *Criteria) Validate() error {
	if c.Exam == "" {
		return fmt.Errorf("%w: exam is required", ErrInvalidCriteria)
	}
	if !c.DifficultyMin.Valid() {
		return fmt.Errorf("%w: unknown min difficulty %q", ErrInvalidCriteria, c.DifficultyMin)
	}
	if !c.DifficultyMax.Valid() {
		return fmt.Errorf("%w: unknown max difficulty %q", ErrInvalidCriteria, c.DifficultyMax)
	}
	if c.DifficultyMin.Index() > c.DifficultyMax.Index() {
		return fmt.Errorf("%w: difficulty range %s..%s is inverted", ErrInvalidCriteria, c.DifficultyMin, c.DifficultyMax)
	}
	if c.MaxSolveTime <= 0 {
		return fmt.Errorf("%w: max solve time must be positive", ErrInvalidCriteria)
	}
	if c.Profile == nil {
		return fmt.Errorf("%w: profile is required", ErrInvalidCriteria)
	}
	return nil
}

// WithExcluded returns a copy of the criteria with the ids appended to the
// exclude list. The receiver is not modified.
func (c Criteria) WithExcluded(ids ...string) Criteria {
	excluded := make([]string, 0, len(c.ExcludeIDs)+len(ids))
	excluded = append(excluded, c.ExcludeIDs...)
	excluded = append(excluded, ids...)
	c.ExcludeIDs = excluded
	return c
}
