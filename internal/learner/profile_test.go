package learner

import (
	"testing"
	"time"

	"github.com/ankur/wakeprep/internal/question"
)

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile("u1", "GATE")

	if p.PreferredDifficulty != question.Medium {
		t.Errorf("PreferredDifficulty = %s, want medium", p.PreferredDifficulty)
	}
	if p.FocusMode != FocusBalanced {
		t.Errorf("FocusMode = %s, want balanced", p.FocusMode)
	}
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
	if len(p.DifficultyPerformance) != 3 {
		t.Errorf("difficulty buckets = %d, want 3", len(p.DifficultyPerformance))
	}
	for _, d := range question.AllDifficulties() {
		if _, ok := p.DifficultyPerformance[d]; !ok {
			t.Errorf("missing difficulty bucket for %s", d)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := NewProfile("u1", "GATE")
	last := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p.LastCompleted = &last
	p.TopicMastery["Algebra"] = 40
	p.WeakAreas = []string{"Mathematics"}
	ss := p.SubjectStatsFor("Mathematics")
	ss.TotalAttempts = 5
	ss.PushRecent("q1")
	practiced := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	ss.LastPracticed = &practiced

	c := p.Clone()
	c.TopicMastery["Algebra"] = 99
	c.WeakAreas[0] = "Physics"
	c.SubjectPerformance["Mathematics"].TotalAttempts = 100
	c.SubjectPerformance["Mathematics"].RecentQuestions[0] = "q2"
	*c.LastCompleted = c.LastCompleted.AddDate(0, 0, 7)
	*c.SubjectPerformance["Mathematics"].LastPracticed = practiced.AddDate(0, 0, 7)
	c.DifficultyPerformance[question.Easy].TotalAttempts = 9

	if p.TopicMastery["Algebra"] != 40 {
		t.Error("clone mutation leaked into TopicMastery")
	}
	if p.WeakAreas[0] != "Mathematics" {
		t.Error("clone mutation leaked into WeakAreas")
	}
	if p.SubjectPerformance["Mathematics"].TotalAttempts != 5 {
		t.Error("clone mutation leaked into SubjectPerformance")
	}
	if p.SubjectPerformance["Mathematics"].RecentQuestions[0] != "q1" {
		t.Error("clone mutation leaked into RecentQuestions")
	}
	if !p.LastCompleted.Equal(last) {
		t.Error("clone mutation leaked into LastCompleted")
	}
	if !p.SubjectPerformance["Mathematics"].LastPracticed.Equal(practiced) {
		t.Error("clone mutation leaked into LastPracticed")
	}
	if p.DifficultyPerformance[question.Easy].TotalAttempts != 0 {
		t.Error("clone mutation leaked into DifficultyPerformance")
	}
}

func TestPushRecentEvictsOldest(t *testing.T) {
	s := &SubjectStats{Subject: "Mathematics"}
	for i := 0; i < RecentQuestionCap+3; i++ {
		s.PushRecent(string(rune('a' + i)))
	}
	if len(s.RecentQuestions) != RecentQuestionCap {
		t.Fatalf("ring length = %d, want %d", len(s.RecentQuestions), RecentQuestionCap)
	}
	if s.RecentQuestions[0] != "d" {
		t.Errorf("oldest entry = %s, want d", s.RecentQuestions[0])
	}
}

func TestRefreshZeroAttempts(t *testing.T) {
	s := &SubjectStats{Subject: "Mathematics"}
	s.Refresh()
	if s.Accuracy != 0 {
		t.Errorf("Accuracy with no attempts = %f, want 0", s.Accuracy)
	}

	d := &DifficultyStats{Difficulty: question.Easy, TotalAttempts: 4, CorrectAnswers: 1}
	d.Refresh()
	if d.Accuracy != 25 || d.SuccessRate != 25 {
		t.Errorf("Accuracy/SuccessRate = %f/%f, want 25/25", d.Accuracy, d.SuccessRate)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	cases := []struct {
		hour int
		want TimeOfDay
	}{
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{20, Evening},
		{21, Night},
		{3, Night},
	}
	for _, tc := range cases {
		at := time.Date(2026, 3, 10, tc.hour, 30, 0, 0, time.UTC)
		if got := TimeOfDayAt(at); got != tc.want {
			t.Errorf("TimeOfDayAt(hour %d) = %s, want %s", tc.hour, got, tc.want)
		}
	}
}

func TestHasAchievement(t *testing.T) {
	p := NewProfile("u1", "CAT")
	if p.HasAchievement("first_alarm") {
		t.Error("fresh profile should have no achievements")
	}
	p.Achievements = append(p.Achievements, Achievement{ID: "first_alarm"})
	if !p.HasAchievement("first_alarm") {
		t.Error("expected first_alarm to be reported as unlocked")
	}
}
