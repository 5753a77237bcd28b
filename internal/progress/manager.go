package progress

import (
	"math"
	"time"

	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/question"
)

// Manager computes XP rewards, level changes, and achievement unlocks.
// It operates on the caller-owned profile copy produced by the tracker.
type Manager struct {
	cfg     XPConfig
	catalog []CatalogEntry
}

// NewManager creates a manager. A zero-value config falls back to
// DefaultXPConfig.
func NewManager(cfg XPConfig) *Manager {
	if cfg.BaseXP == 0 {
		cfg = DefaultXPConfig()
	}
	return &Manager{cfg: cfg, catalog: Catalog()}
}

// LevelUp reports the outcome of an XP addition.
type LevelUp struct {
	LeveledUp bool
	NewLevel  int
}

// CalculateXP computes the XP earned by one attempt:
// base * difficulty multiplier, + speed bonus under the threshold ratio,
// * streakMultiplier^min(streak, cap), + first-attempt bonus, floored.
func (m *Manager) CalculateXP(a *question.Attempt, currentStreak int) int {
	xp := float64(m.cfg.BaseXP)

	if mult, ok := m.cfg.DifficultyMultiplier[a.Question.Difficulty]; ok {
		xp *= mult
	}

	if a.Question.ExpectedSolveTime > 0 {
		ratio := a.TimeSpent / float64(a.Question.ExpectedSolveTime)
		if ratio < m.cfg.SpeedBonusThreshold {
			xp += float64(m.cfg.SpeedBonus)
		}
	}

	effectiveStreak := currentStreak
	if effectiveStreak > StreakCapDays {
		effectiveStreak = StreakCapDays
	}
	xp *= math.Pow(m.cfg.StreakMultiplier, float64(effectiveStreak))

	if a.FirstTry() {
		xp += float64(m.cfg.FirstAttemptBonus)
	}

	return int(math.Floor(xp))
}

// SessionBonus returns the perfect-session bonus when every answer in the
// session was correct, zero otherwise.
func (m *Manager) SessionBonus(s *question.Session) int {
	if s.Accuracy == 100 {
		return m.cfg.PerfectSessionBonus
	}
	return 0
}

// AddXP adds xp to the profile's total and recomputes the level. Total XP
// never decreases and the level is non-decreasing in total XP.
func (m *Manager) AddXP(p *learner.Profile, xp int) LevelUp {
	if xp < 0 {
		xp = 0
	}
	oldLevel := p.Level

	p.TotalXP += xp
	m.recomputeLevel(p)

	return LevelUp{LeveledUp: p.Level > oldLevel, NewLevel: p.Level}
}

// CheckAchievements walks the catalog in order, unlocking every entry
// whose condition holds and is not yet on the profile. Each unlock stamps
// the time and adds its reward XP; the level is recomputed after the full
// pass so reward XP from one unlock is visible to later level checks via
// total XP.
func (m *Manager) CheckAchievements(p *learner.Profile, s *question.Session, now time.Time) []learner.Achievement {
	var unlocked []learner.Achievement

	for _, entry := range m.catalog {
		if p.HasAchievement(entry.ID) {
			continue
		}
		if !entry.earned(p, s) {
			continue
		}

		a := learner.Achievement{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			XP:          entry.XP,
			UnlockedAt:  now,
		}
		p.Achievements = append(p.Achievements, a)
		p.TotalXP += entry.XP
		unlocked = append(unlocked, a)
	}

	if len(unlocked) > 0 {
		m.recomputeLevel(p)
	}
	return unlocked
}

func (m *Manager) recomputeLevel(p *learner.Profile) {
	p.Level, p.XPToNextLevel = LevelFromXP(p.TotalXP)
}

// InitProfile normalizes a freshly created profile's level fields.
func (m *Manager) InitProfile(p *learner.Profile) {
	m.recomputeLevel(p)
}

// Summary is a read-only view of progression state.
type Summary struct {
	Level                int
	TotalXP              int
	XPToNextLevel        int
	ProgressPercent      int // through the current level
	CurrentStreak        int
	LongestStreak        int
	AchievementsUnlocked int
	TotalAchievements    int
}

// Summarize derives the progression summary from a profile.
func (m *Manager) Summarize(p *learner.Profile) Summary {
	intoLevel := p.TotalXP - TotalXPForLevel(p.Level)
	requirement := XPForLevel(p.Level)
	percent := 0
	if requirement > 0 {
		percent = int(math.Round(float64(intoLevel) / float64(requirement) * 100))
	}
	return Summary{
		Level:                p.Level,
		TotalXP:              p.TotalXP,
		XPToNextLevel:        p.XPToNextLevel,
		ProgressPercent:      percent,
		CurrentStreak:        p.CurrentStreak,
		LongestStreak:        p.LongestStreak,
		AchievementsUnlocked: len(p.Achievements),
		TotalAchievements:    len(m.catalog),
	}
}

// AchievementProgress pairs a locked catalog entry with how close the
// learner is to it.
type AchievementProgress struct {
	ID          string
	Name        string
	Description string
	XP          int
	Progress    int
	Target      int
}

// NextAchievements returns progress toward up to n locked achievements,
// in catalog order.
func (m *Manager) NextAchievements(p *learner.Profile, n int) []AchievementProgress {
	var out []AchievementProgress
	for _, entry := range m.catalog {
		if len(out) >= n {
			break
		}
		if p.HasAchievement(entry.ID) {
			continue
		}
		progress, target := m.progressToward(entry.ID, p)
		out = append(out, AchievementProgress{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			XP:          entry.XP,
			Progress:    progress,
			Target:      target,
		})
	}
	return out
}

func (m *Manager) progressToward(id string, p *learner.Profile) (progress, target int) {
	switch id {
	case "streak_3":
		return p.CurrentStreak, 3
	case "streak_7":
		return p.CurrentStreak, 7
	case "streak_14":
		return p.CurrentStreak, 14
	case "streak_30":
		return p.CurrentStreak, 30
	case "streak_100":
		return p.CurrentStreak, 100
	case "speed_demon":
		return p.SpeedySolveCount, 10
	case "hard_mode":
		if stats, ok := p.DifficultyPerformance[question.Hard]; ok {
			return stats.TotalAttempts, 50
		}
		return 0, 50
	case "first_try":
		return p.FirstTryCorrectCount, 50
	case "knowledge_seeker":
		return p.QuestionsAnswered, 1000
	case "level_10":
		return p.Level, 10
	case "level_25":
		return p.Level, 25
	case "level_50":
		return p.Level, 50
	default:
		return 0, 1
	}
}
