// Package streak maintains daily-completion streak bookkeeping on the
// learner profile.
package streak

import (
	"time"

	"github.com/ankur/wakeprep/internal/learner"
)

// Manager updates and inspects daily streaks. Dates are compared after
// stripping to midnight in the completion time's location.
type Manager struct{}

// NewManager creates a streak manager.
func NewManager() *Manager {
	return &Manager{}
}

// Result reports the outcome of a streak update.
type Result struct {
	Maintained bool
	Broken     bool
}

// Update folds a completed session day into the profile:
// no prior date -> streak 1; same day -> unchanged; next day -> streak+1
// (longest updated); a gap of two or more days -> reset to 1.
func (m *Manager) Update(p *learner.Profile, completedAt time.Time) Result {
	today := stripTime(completedAt)

	if p.LastCompleted == nil {
		p.CurrentStreak = 1
		p.LastCompleted = &today
		return Result{Maintained: true}
	}

	last := stripTime(*p.LastCompleted)
	switch days := daysBetween(last, today); {
	case days == 0:
		return Result{Maintained: true}
	case days == 1:
		p.CurrentStreak++
		p.LastCompleted = &today
		if p.CurrentStreak > p.LongestStreak {
			p.LongestStreak = p.CurrentStreak
		}
		return Result{Maintained: true}
	default:
		p.CurrentStreak = 1
		p.LastCompleted = &today
		return Result{Broken: true}
	}
}

// AtRisk reports whether the learner has not completed a session today,
// meaning the streak breaks unless one is completed before midnight.
func (m *Manager) AtRisk(p *learner.Profile, now time.Time) bool {
	if p.LastCompleted == nil {
		return false
	}
	return daysBetween(stripTime(*p.LastCompleted), stripTime(now)) >= 1
}

// CompletedToday reports whether a session was already completed today.
func (m *Manager) CompletedToday(p *learner.Profile, now time.Time) bool {
	if p.LastCompleted == nil {
		return false
	}
	return stripTime(*p.LastCompleted).Equal(stripTime(now))
}

// Status is a read-only derivation of the streak state.
type Status struct {
	Current        int
	Longest        int
	AtRisk         bool
	DaysUntilBreak int
}

// StatusAt derives the streak status at the given time.
func (m *Manager) StatusAt(p *learner.Profile, now time.Time) Status {
	st := Status{
		Current: p.CurrentStreak,
		Longest: p.LongestStreak,
		AtRisk:  m.AtRisk(p, now),
	}
	if p.LastCompleted != nil {
		days := daysBetween(stripTime(*p.LastCompleted), stripTime(now))
		if remaining := 1 - days; remaining > 0 {
			st.DaysUntilBreak = remaining
		}
	}
	return st
}

func stripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
