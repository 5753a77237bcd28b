package learner

import (
	"time"

	"github.com/ankur/wakeprep/internal/question"
)

// FocusMode modifies how the selection pipeline weighs candidates.
type FocusMode string

const (
	FocusBalanced    FocusMode = "balanced"
	FocusWeakness    FocusMode = "weakness"
	FocusRandom      FocusMode = "random"
	FocusProgressive FocusMode = "progressive"
)

// Achievement is an unlocked catalog entry on a learner's profile.
type Achievement struct {
	ID          string
	Name        string
	Description string
	XP          int
	UnlockedAt  time.Time
}

// Profile is the full per-learner state consumed by selection and evolved
// by the performance tracker, progress manager, and streak manager.
// Mutating components operate on a caller-owned copy; see Clone.
type Profile struct {
	ID string

	// Preferences
	Exam                question.Exam
	PreferredDifficulty question.Difficulty
	FocusMode           FocusMode
	SoundEnabled        bool
	VibrationEnabled    bool

	// Performance maps
	SubjectPerformance    map[string]*SubjectStats
	DifficultyPerformance map[question.Difficulty]*DifficultyStats
	TopicMastery          map[string]float64 // topic -> 0-100

	// Engagement
	CurrentStreak int
	LongestStreak int
	LastCompleted *time.Time // date of the last completed session, midnight-stripped
	TotalXP       int
	Level         int
	XPToNextLevel int
	Achievements  []Achievement

	// Learning rollups
	QuestionsAnswered int
	CorrectAnswers    int
	OverallAccuracy   float64 // percentage
	AverageSolveTime  float64 // seconds, running mean
	WeakAreas         []string
	StrongAreas       []string

	// Explicit attempt counters backing the speed/first-try achievements.
	SpeedySolveCount     int
	FirstTryCorrectCount int

	// Behavioral
	FrustrationLevel  float64 // 0-10
	BestTimeOfDay     TimeOfDay
	AverageRetryCount float64

	CreatedAt  time.Time
	LastActive time.Time
}

// NewProfile creates an onboarding-default profile for the given exam.
func NewProfile(id string, exam question.Exam) *Profile {
	p := &Profile{
		ID:                    id,
		Exam:                  exam,
		PreferredDifficulty:   question.Medium,
		FocusMode:             FocusBalanced,
		SoundEnabled:          true,
		VibrationEnabled:      true,
		SubjectPerformance:    make(map[string]*SubjectStats),
		DifficultyPerformance: make(map[question.Difficulty]*DifficultyStats),
		TopicMastery:          make(map[string]float64),
		Level:                 1,
		BestTimeOfDay:         Morning,
	}
	for _, d := range question.AllDifficulties() {
		p.DifficultyPerformance[d] = &DifficultyStats{Difficulty: d}
	}
	return p
}

// Clone returns a deep, independent copy of the profile. The tracker and
// managers operate on clones so the caller's input is never aliased.
func (p *Profile) Clone() *Profile {
	out := *p

	out.SubjectPerformance = make(map[string]*SubjectStats, len(p.SubjectPerformance))
	for k, v := range p.SubjectPerformance {
		sv := *v
		if v.LastPracticed != nil {
			t := *v.LastPracticed
			sv.LastPracticed = &t
		}
		sv.RecentQuestions = append([]string(nil), v.RecentQuestions...)
		out.SubjectPerformance[k] = &sv
	}

	out.DifficultyPerformance = make(map[question.Difficulty]*DifficultyStats, len(p.DifficultyPerformance))
	for k, v := range p.DifficultyPerformance {
		dv := *v
		out.DifficultyPerformance[k] = &dv
	}

	out.TopicMastery = make(map[string]float64, len(p.TopicMastery))
	for k, v := range p.TopicMastery {
		out.TopicMastery[k] = v
	}

	if p.LastCompleted != nil {
		t := *p.LastCompleted
		out.LastCompleted = &t
	}

	out.Achievements = append([]Achievement(nil), p.Achievements...)
	out.WeakAreas = append([]string(nil), p.WeakAreas...)
	out.StrongAreas = append([]string(nil), p.StrongAreas...)

	return &out
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// SubjectStatsFor returns the stats record for a subject, creating a zeroed
// record on first access.
func (p *Profile) SubjectStatsFor(subject string) *SubjectStats {
	if s, ok := p.SubjectPerformance[subject]; ok {
		return s
	}
	s := &SubjectStats{Subject: subject, Trend: TrendStable}
	p.SubjectPerformance[subject] = s
	return s
}

// DifficultyStatsFor returns the stats record for a tier, creating a zeroed
// record on first access.
func (p *Profile) DifficultyStatsFor(d question.Difficulty) *DifficultyStats {
	if s, ok := p.DifficultyPerformance[d]; ok {
		return s
	}
	s := &DifficultyStats{Difficulty: d}
	p.DifficultyPerformance[d] = s
	return s
}
