package progress

import (
	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/question"
)

// CatalogEntry is a static achievement definition. The catalog order is
// fixed; unlock checks iterate it front to back.
type CatalogEntry struct {
	ID          string
	Name        string
	Description string
	XP          int

	// earned evaluates the unlock condition against the profile and the
	// just-finished session. A failing check simply means "not earned".
	earned func(p *learner.Profile, s *question.Session) bool
}

func streakAtLeast(n int) func(*learner.Profile, *question.Session) bool {
	return func(p *learner.Profile, _ *question.Session) bool {
		return p.CurrentStreak >= n
	}
}

func levelAtLeast(n int) func(*learner.Profile, *question.Session) bool {
	return func(p *learner.Profile, _ *question.Session) bool {
		return p.Level >= n
	}
}

// Catalog returns the fixed, ordered achievement catalog.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			ID: "first_alarm", Name: "Rise and Shine",
			Description: "Complete your first question", XP: 50,
			earned: func(p *learner.Profile, _ *question.Session) bool {
				return p.QuestionsAnswered >= 1
			},
		},
		{
			ID: "streak_3", Name: "Getting Started",
			Description: "Maintain a 3-day streak", XP: 100,
			earned:      streakAtLeast(3),
		},
		{
			ID: "streak_7", Name: "Week Warrior",
			Description: "Maintain a 7-day streak", XP: 300,
			earned:      streakAtLeast(7),
		},
		{
			ID: "streak_14", Name: "Fortnight Champion",
			Description: "Maintain a 14-day streak", XP: 700,
			earned:      streakAtLeast(14),
		},
		{
			ID: "streak_30", Name: "Month Master",
			Description: "Maintain a 30-day streak", XP: 2000,
			earned:      streakAtLeast(30),
		},
		{
			ID: "streak_100", Name: "Century Legend",
			Description: "Maintain a 100-day streak", XP: 10000,
			earned:      streakAtLeast(100),
		},
		{
			ID: "perfect_week", Name: "Perfect Week",
			Description: "100% accuracy across a 7-day streak", XP: 500,
			earned: func(p *learner.Profile, _ *question.Session) bool {
				return p.CurrentStreak >= 7 && p.OverallAccuracy == 100
			},
		},
		{
			ID: "speed_demon", Name: "Speed Demon",
			Description: "Solve 10 questions under their time budget", XP: 200,
			earned: func(p *learner.Profile, _ *question.Session) bool {
				return p.SpeedySolveCount >= 10
			},
		},
		{
			ID: "hard_mode", Name: "Hard Mode Hero",
			Description: "Complete 50 hard questions", XP: 1000,
			earned: func(p *learner.Profile, _ *question.Session) bool {
				stats, ok := p.DifficultyPerformance[question.Hard]
				return ok && stats.TotalAttempts >= 50
			},
		},
		{
			ID: "first_try", Name: "First Try Expert",
			Description: "Get 50 questions right on the first attempt", XP: 800,
			earned: func(p *learner.Profile, _ *question.Session) bool {
				return p.FirstTryCorrectCount >= 50
			},
		},
		{
			ID: "knowledge_seeker", Name: "Knowledge Seeker",
			Description: "Answer 1000 questions", XP: 3000,
			earned: func(p *learner.Profile, _ *question.Session) bool {
				return p.QuestionsAnswered >= 1000
			},
		},
		{
			ID: "level_10", Name: "Rising Star",
			Description: "Reach level 10", XP: 500,
			earned:      levelAtLeast(10),
		},
		{
			ID: "level_25", Name: "Expert Learner",
			Description: "Reach level 25", XP: 2000,
			earned:      levelAtLeast(25),
		},
		{
			ID: "level_50", Name: "Master Scholar",
			Description: "Reach level 50", XP: 5000,
			earned:      levelAtLeast(50),
		},
	}
}
