package question

import "testing"

func TestDifficultyIndexOrder(t *testing.T) {
	if Easy.Index() != 0 || Medium.Index() != 1 || Hard.Index() != 2 {
		t.Errorf("indices = %d/%d/%d, want 0/1/2", Easy.Index(), Medium.Index(), Hard.Index())
	}
	if Difficulty("extreme").Index() != -1 {
		t.Error("unknown difficulty should index to -1")
	}
}

func TestDifficultyCompare(t *testing.T) {
	if Easy.Compare(Hard) >= 0 {
		t.Error("easy should order below hard")
	}
	if Medium.Compare(Medium) != 0 {
		t.Error("equal tiers should compare to 0")
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("medium")
	if err != nil || d != Medium {
		t.Errorf("ParseDifficulty(medium) = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestGlobalAccuracyZeroAttempts(t *testing.T) {
	q := &Question{}
	if got := q.GlobalAccuracy(); got != 0 {
		t.Errorf("GlobalAccuracy with no attempts = %f, want 0", got)
	}

	q.GlobalAttempts = 4
	q.GlobalCorrectAttempts = 3
	if got := q.GlobalAccuracy(); got != 75 {
		t.Errorf("GlobalAccuracy = %f, want 75", got)
	}
}

func TestSessionAddAttempt(t *testing.T) {
	var s Session
	s.AddAttempt(Attempt{IsCorrect: true, Attempts: 1})
	s.AddAttempt(Attempt{IsCorrect: false, Attempts: 2, HintUsed: true})

	if s.CorrectAnswers != 1 {
		t.Errorf("CorrectAnswers = %d, want 1", s.CorrectAnswers)
	}
	if s.TotalAttempts != 3 {
		t.Errorf("TotalAttempts = %d, want 3", s.TotalAttempts)
	}
	if s.Accuracy != 50 {
		t.Errorf("Accuracy = %f, want 50", s.Accuracy)
	}
	if s.HintsUsed != 1 {
		t.Errorf("HintsUsed = %d, want 1", s.HintsUsed)
	}
}
