package streak

import (
	"testing"
	"time"

	"github.com/ankur/wakeprep/internal/learner"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestFirstCompletionStartsStreak(t *testing.T) {
	m := NewManager()
	p := learner.NewProfile("u1", "GATE")

	res := m.Update(p, day(1, 9))
	if !res.Maintained || res.Broken {
		t.Errorf("result = %+v, want maintained", res)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", p.CurrentStreak)
	}
	if p.LastCompleted == nil || !p.LastCompleted.Equal(day(1, 0)) {
		t.Errorf("LastCompleted = %v, want midnight of day 1", p.LastCompleted)
	}
}

func TestConsecutiveDayIncrements(t *testing.T) {
	m := NewManager()
	p := learner.NewProfile("u1", "GATE")
	p.CurrentStreak = 3
	p.LongestStreak = 3
	last := day(4, 0)
	p.LastCompleted = &last

	res := m.Update(p, day(5, 22))
	if !res.Maintained {
		t.Errorf("result = %+v, want maintained", res)
	}
	if p.CurrentStreak != 4 {
		t.Errorf("CurrentStreak = %d, want 4", p.CurrentStreak)
	}
	if p.LongestStreak != 4 {
		t.Errorf("LongestStreak = %d, want 4", p.LongestStreak)
	}
}

func TestSameDayIsIdempotent(t *testing.T) {
	m := NewManager()
	p := learner.NewProfile("u1", "GATE")
	p.CurrentStreak = 3
	last := day(4, 0)
	p.LastCompleted = &last

	// A second session in the evening of the same day changes nothing.
	res := m.Update(p, day(4, 21))
	if !res.Maintained || p.CurrentStreak != 3 {
		t.Errorf("streak = %d after same-day session, want 3", p.CurrentStreak)
	}
}

func TestGapResetsStreak(t *testing.T) {
	m := NewManager()
	p := learner.NewProfile("u1", "GATE")
	p.CurrentStreak = 9
	p.LongestStreak = 9
	last := day(4, 0)
	p.LastCompleted = &last

	res := m.Update(p, day(7, 9))
	if !res.Broken {
		t.Errorf("result = %+v, want broken", res)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", p.CurrentStreak)
	}
	// The longest streak survives the break.
	if p.LongestStreak != 9 {
		t.Errorf("LongestStreak = %d, want 9", p.LongestStreak)
	}
}

func TestLongestStreakNeverDecreases(t *testing.T) {
	m := NewManager()
	p := learner.NewProfile("u1", "GATE")

	longest := 0
	d := 1
	// Two runs with a break in between.
	for i := 0; i < 5; i++ {
		m.Update(p, day(d, 9))
		d++
		if p.LongestStreak < longest {
			t.Fatalf("LongestStreak decreased to %d", p.LongestStreak)
		}
		longest = p.LongestStreak
	}
	d += 2 // skip two days
	for i := 0; i < 3; i++ {
		m.Update(p, day(d, 9))
		d++
		if p.LongestStreak < longest {
			t.Fatalf("LongestStreak decreased to %d after break", p.LongestStreak)
		}
		longest = p.LongestStreak
	}
	if p.CurrentStreak != 3 || p.LongestStreak != 5 {
		t.Errorf("streaks = %d/%d, want 3/5", p.CurrentStreak, p.LongestStreak)
	}
}

func TestAtRiskAndCompletedToday(t *testing.T) {
	m := NewManager()
	p := learner.NewProfile("u1", "GATE")

	if m.AtRisk(p, day(1, 9)) {
		t.Error("empty profile should not be at risk")
	}

	m.Update(p, day(1, 9))
	if m.AtRisk(p, day(1, 23)) {
		t.Error("not at risk on the completion day")
	}
	if !m.CompletedToday(p, day(1, 23)) {
		t.Error("CompletedToday should be true on the completion day")
	}

	if !m.AtRisk(p, day(2, 8)) {
		t.Error("at risk the next morning until a session is completed")
	}
	if m.CompletedToday(p, day(2, 8)) {
		t.Error("CompletedToday should be false the next day")
	}
}

func TestStatusAt(t *testing.T) {
	m := NewManager()
	p := learner.NewProfile("u1", "GATE")
	m.Update(p, day(1, 9))
	m.Update(p, day(2, 9))

	st := m.StatusAt(p, day(2, 18))
	if st.Current != 2 || st.Longest != 2 {
		t.Errorf("Current/Longest = %d/%d, want 2/2", st.Current, st.Longest)
	}
	if st.AtRisk {
		t.Error("AtRisk should be false on the completion day")
	}
	if st.DaysUntilBreak != 1 {
		t.Errorf("DaysUntilBreak = %d, want 1", st.DaysUntilBreak)
	}

	st = m.StatusAt(p, day(3, 9))
	if !st.AtRisk || st.DaysUntilBreak != 0 {
		t.Errorf("next-day status = %+v, want at risk with 0 days left", st)
	}
}
