// Package session applies a learner's attempt and session updates in
// order: performance tracking, XP, achievements, streak. All mutations of
// one learner's profile funnel through a single Recorder, which serializes
// them so concurrent submissions cannot lose updates.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/performance"
	"github.com/ankur/wakeprep/internal/progress"
	"github.com/ankur/wakeprep/internal/question"
	"github.com/ankur/wakeprep/internal/streak"
)

// Recorder folds attempts and session completions into learner profiles.
// Safe for concurrent use; updates are applied one at a time.
type Recorder struct {
	mu       sync.Mutex
	tracker  *performance.Tracker
	progress *progress.Manager
	streaks  *streak.Manager
}

// NewRecorder creates a recorder with the given progress manager. A nil
// manager gets default XP tuning.
func NewRecorder(pm *progress.Manager) *Recorder {
	if pm == nil {
		pm = progress.NewManager(progress.DefaultXPConfig())
	}
	return &Recorder{
		tracker:  performance.NewTracker(),
		progress: pm,
		streaks:  streak.NewManager(),
	}
}

// NewSession starts an empty session.
func NewSession(now time.Time) *question.Session {
	return &question.Session{
		ID:        uuid.NewString(),
		StartedAt: now,
		Status:    question.SessionActive,
	}
}

// AttemptOutcome reports what one recorded attempt earned.
type AttemptOutcome struct {
	XPEarned  int
	LeveledUp bool
	NewLevel  int
	Unlocked  []learner.Achievement
}

// RecordAttempt folds one attempt into the profile and awards XP and
// achievements. Returns a new profile; the input is not mutated.
func (r *Recorder) RecordAttempt(p *learner.Profile, q *question.Question, a *question.Attempt, sess *question.Session, now time.Time) (*learner.Profile, AttemptOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryLevel := p.Level

	updated := r.tracker.Update(p, q, a, now)

	xp := r.progress.CalculateXP(a, updated.CurrentStreak)
	r.progress.AddXP(updated, xp)
	unlocked := r.progress.CheckAchievements(updated, sess, now)

	if sess != nil {
		sess.AddAttempt(*a)
		sess.XPEarned += xp
		for _, u := range unlocked {
			sess.AchievementsUnlocked = append(sess.AchievementsUnlocked, u.ID)
			sess.XPEarned += u.XP
		}
	}

	return updated, AttemptOutcome{
		XPEarned:  xp,
		LeveledUp: updated.Level > entryLevel,
		NewLevel:  updated.Level,
		Unlocked:  unlocked,
	}
}

// SessionOutcome reports what closing a session earned.
type SessionOutcome struct {
	BonusXP   int
	LeveledUp bool
	NewLevel  int
	Streak    streak.Result
	Unlocked  []learner.Achievement
}

// CompleteSession closes the session: perfect-session bonus, streak
// update, and a final achievement pass (streak-gated achievements can
// only unlock here). Returns a new profile; the input is not mutated.
func (r *Recorder) CompleteSession(p *learner.Profile, sess *question.Session, now time.Time) (*learner.Profile, SessionOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryLevel := p.Level
	updated := p.Clone()

	sess.CompletedAt = now
	sess.Status = question.SessionCompleted

	bonus := r.progress.SessionBonus(sess)
	r.progress.AddXP(updated, bonus)
	sess.XPEarned += bonus

	streakResult := r.streaks.Update(updated, now)
	unlocked := r.progress.CheckAchievements(updated, sess, now)
	for _, u := range unlocked {
		sess.AchievementsUnlocked = append(sess.AchievementsUnlocked, u.ID)
		sess.XPEarned += u.XP
	}

	return updated, SessionOutcome{
		BonusXP:   bonus,
		LeveledUp: updated.Level > entryLevel,
		NewLevel:  updated.Level,
		Streak:    streakResult,
		Unlocked:  unlocked,
	}
}
