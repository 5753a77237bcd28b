package performance

import "github.com/ankur/wakeprep/internal/learner"

// Summary is a read-only rollup of a profile for display.
type Summary struct {
	OverallAccuracy   float64
	QuestionsAnswered int
	CurrentStreak     int
	Level             int
	TotalXP           int
	WeakAreas         []string
	StrongAreas       []string
	SubjectCount      int
	TopicsMastered    int // topics with mastery above 80
}

// Summarize derives the display rollup from a profile.
func Summarize(p *learner.Profile) Summary {
	mastered := 0
	for _, m := range p.TopicMastery {
		if m > 80 {
			mastered++
		}
	}
	return Summary{
		OverallAccuracy:   p.OverallAccuracy,
		QuestionsAnswered: p.QuestionsAnswered,
		CurrentStreak:     p.CurrentStreak,
		Level:             p.Level,
		TotalXP:           p.TotalXP,
		WeakAreas:         p.WeakAreas,
		StrongAreas:       p.StrongAreas,
		SubjectCount:      len(p.SubjectPerformance),
		TopicsMastered:    mastered,
	}
}
