package progress

import (
	"testing"
	"time"

	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/question"
)

var unlockTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestFirstQuestionUnlocksFirstAlarm(t *testing.T) {
	m := NewManager(XPConfig{})
	p := learner.NewProfile("u1", "GATE")
	m.InitProfile(p)
	p.QuestionsAnswered = 1
	p.CorrectAnswers = 1
	p.OverallAccuracy = 100

	unlocked := m.CheckAchievements(p, &question.Session{}, unlockTime)

	if len(unlocked) != 1 || unlocked[0].ID != "first_alarm" {
		t.Fatalf("unlocked = %v, want [first_alarm]", unlocked)
	}
	if unlocked[0].XP != 50 {
		t.Errorf("reward = %d, want 50", unlocked[0].XP)
	}
	if !unlocked[0].UnlockedAt.Equal(unlockTime) {
		t.Errorf("UnlockedAt = %v, want %v", unlocked[0].UnlockedAt, unlockTime)
	}
	if p.TotalXP != 50 {
		t.Errorf("TotalXP = %d, want 50 from the reward", p.TotalXP)
	}
	if !p.HasAchievement("first_alarm") {
		t.Error("achievement not recorded on the profile")
	}
}

func TestCheckAchievementsSkipsUnlocked(t *testing.T) {
	m := NewManager(XPConfig{})
	p := learner.NewProfile("u1", "GATE")
	m.InitProfile(p)
	p.QuestionsAnswered = 1

	first := m.CheckAchievements(p, &question.Session{}, unlockTime)
	second := m.CheckAchievements(p, &question.Session{}, unlockTime.Add(time.Hour))

	if len(first) != 1 {
		t.Fatalf("first pass unlocked %d, want 1", len(first))
	}
	if len(second) != 0 {
		t.Errorf("second pass re-unlocked %v", second)
	}
	if p.TotalXP != 50 {
		t.Errorf("TotalXP = %d, reward granted twice", p.TotalXP)
	}
}

func TestStreakAchievementsUnlockTogether(t *testing.T) {
	m := NewManager(XPConfig{})
	p := learner.NewProfile("u1", "GATE")
	m.InitProfile(p)
	p.QuestionsAnswered = 20
	p.CorrectAnswers = 20
	p.OverallAccuracy = 100
	p.CurrentStreak = 7

	unlocked := m.CheckAchievements(p, &question.Session{}, unlockTime)

	want := map[string]bool{"first_alarm": true, "streak_3": true, "streak_7": true, "perfect_week": true}
	if len(unlocked) != len(want) {
		t.Fatalf("unlocked %d achievements, want %d: %v", len(unlocked), len(want), unlocked)
	}
	for _, a := range unlocked {
		if !want[a.ID] {
			t.Errorf("unexpected unlock %s", a.ID)
		}
	}

	// Rewards: 50 + 100 + 300 + 500 = 950; the level reflects them.
	if p.TotalXP != 950 {
		t.Errorf("TotalXP = %d, want 950", p.TotalXP)
	}
	wantLevel, _ := LevelFromXP(950)
	if p.Level != wantLevel {
		t.Errorf("Level = %d, want %d after reward XP", p.Level, wantLevel)
	}
}

func TestPerfectWeekRequiresBoth(t *testing.T) {
	m := NewManager(XPConfig{})

	p := learner.NewProfile("u1", "GATE")
	m.InitProfile(p)
	p.QuestionsAnswered = 10
	p.OverallAccuracy = 99.9
	p.CurrentStreak = 7
	for _, a := range m.CheckAchievements(p, &question.Session{}, unlockTime) {
		if a.ID == "perfect_week" {
			t.Error("perfect_week unlocked below 100% accuracy")
		}
	}

	p2 := learner.NewProfile("u2", "GATE")
	m.InitProfile(p2)
	p2.QuestionsAnswered = 10
	p2.OverallAccuracy = 100
	p2.CurrentStreak = 6
	for _, a := range m.CheckAchievements(p2, &question.Session{}, unlockTime) {
		if a.ID == "perfect_week" {
			t.Error("perfect_week unlocked below a 7-day streak")
		}
	}
}

func TestCounterBackedAchievements(t *testing.T) {
	m := NewManager(XPConfig{})
	p := learner.NewProfile("u1", "GATE")
	m.InitProfile(p)
	p.QuestionsAnswered = 100
	p.SpeedySolveCount = 10
	p.FirstTryCorrectCount = 50
	p.DifficultyPerformance[question.Hard].TotalAttempts = 50

	unlocked := m.CheckAchievements(p, &question.Session{}, unlockTime)

	got := make(map[string]bool)
	for _, a := range unlocked {
		got[a.ID] = true
	}
	for _, id := range []string{"speed_demon", "first_try", "hard_mode"} {
		if !got[id] {
			t.Errorf("expected %s to unlock", id)
		}
	}
}

func TestCatalogIsStable(t *testing.T) {
	entries := Catalog()
	if len(entries) != 14 {
		t.Fatalf("catalog has %d entries, want 14", len(entries))
	}
	if entries[0].ID != "first_alarm" {
		t.Errorf("first entry = %s, want first_alarm", entries[0].ID)
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.ID] {
			t.Errorf("duplicate catalog id %s", e.ID)
		}
		seen[e.ID] = true
		if e.XP <= 0 {
			t.Errorf("%s has non-positive reward %d", e.ID, e.XP)
		}
		if e.earned == nil {
			t.Errorf("%s has no unlock condition", e.ID)
		}
	}
}

func TestNextAchievements(t *testing.T) {
	m := NewManager(XPConfig{})
	p := learner.NewProfile("u1", "GATE")
	m.InitProfile(p)
	p.QuestionsAnswered = 1
	p.CurrentStreak = 2
	m.CheckAchievements(p, &question.Session{}, unlockTime)

	next := m.NextAchievements(p, 3)
	if len(next) != 3 {
		t.Fatalf("NextAchievements returned %d, want 3", len(next))
	}
	if next[0].ID != "streak_3" {
		t.Errorf("first locked achievement = %s, want streak_3", next[0].ID)
	}
	if next[0].Progress != 2 || next[0].Target != 3 {
		t.Errorf("streak_3 progress = %d/%d, want 2/3", next[0].Progress, next[0].Target)
	}
}

func TestManagerSummarize(t *testing.T) {
	m := NewManager(XPConfig{})
	p := learner.NewProfile("u1", "GATE")
	m.InitProfile(p)
	m.AddXP(p, 150) // level 2, 50 into the 150-point level

	s := m.Summarize(p)
	if s.Level != 2 || s.TotalXP != 150 {
		t.Errorf("Level/TotalXP = %d/%d, want 2/150", s.Level, s.TotalXP)
	}
	if s.ProgressPercent != 33 {
		t.Errorf("ProgressPercent = %d, want 33", s.ProgressPercent)
	}
	if s.TotalAchievements != 14 {
		t.Errorf("TotalAchievements = %d, want 14", s.TotalAchievements)
	}
}
