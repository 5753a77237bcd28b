package selection

import (
	"math"
	"math/rand"
	"time"

	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/question"
)

// Weights caps each soft-preference component of the score.
type Weights struct {
	WeakAreaBoost      float64
	UnseenConceptBonus float64
	VarietyBonus       float64
	AbilityLevelMatch  float64
	FrustrationGuard   float64
	TimeOfDayMatch     float64
}

// DefaultWeights returns the tuned production weights.
func DefaultWeights() Weights {
	return Weights{
		WeakAreaBoost:      40,
		UnseenConceptBonus: 30,
		VarietyBonus:       20,
		AbilityLevelMatch:  50,
		FrustrationGuard:   35,
		TimeOfDayMatch:     15,
	}
}

// Breakdown records the six score components. All fields are always
// populated so selections stay explainable and assertable in tests.
type Breakdown struct {
	WeakArea    float64
	Unseen      float64
	Variety     float64
	Ability     float64
	Frustration float64
	TimeOfDay   float64
}

// Total sums the components.
func (b Breakdown) Total() float64 {
	return b.WeakArea + b.Unseen + b.Variety + b.Ability + b.Frustration + b.TimeOfDay
}

// ScoredQuestion pairs a candidate with its preference score. Rank stays 0
// until the ranking engine assigns positions.
type ScoredQuestion struct {
	Question  question.Question
	Score     float64
	Rank      int
	Breakdown Breakdown
}

// ScoringEngine computes soft preference scores, phase 2 of the pipeline.
// It reads the profile and never writes it.
type ScoringEngine struct {
	weights Weights
}

// NewScoringEngine creates a scoring engine. Zero-value weights fall back
// to DefaultWeights.
func NewScoringEngine(w Weights) *ScoringEngine {
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	return &ScoringEngine{weights: w}
}

// ScoreQuestions scores every candidate against the profile. The clock is
// explicit so scoring is reproducible under a fixed now.
func (e *ScoringEngine) ScoreQuestions(questions []question.Question, p *learner.Profile, now time.Time) []ScoredQuestion {
	out := make([]ScoredQuestion, 0, len(questions))
	for _, q := range questions {
		b := e.breakdown(&q, p, now)
		out = append(out, ScoredQuestion{
			Question:  q,
			Score:     b.Total(),
			Breakdown: b,
		})
	}
	return out
}

func (e *ScoringEngine) breakdown(q *question.Question, p *learner.Profile, now time.Time) Breakdown {
	return Breakdown{
		WeakArea:    e.weakAreaScore(q, p),
		Unseen:      e.unseenBonus(q, p),
		Variety:     e.varietyScore(q, p, now),
		Ability:     e.abilityScore(q, p),
		Frustration: e.frustrationScore(q, p),
		TimeOfDay:   e.timeOfDayScore(p, now),
	}
}

// weakAreaScore favors subjects where accuracy is low. Subjects with fewer
// than 5 attempts get a moderate score since there is not enough signal.
func (e *ScoringEngine) weakAreaScore(q *question.Question, p *learner.Profile) float64 {
	stats, ok := p.SubjectPerformance[q.Subject]
	if !ok || stats.TotalAttempts < 5 {
		return e.weights.WeakAreaBoost * 0.5
	}

	accuracyFactor := 1 - stats.Accuracy/100
	boost := 1.0
	if stats.Accuracy < 60 {
		boost = 1.5
	}
	return e.weights.WeakAreaBoost * accuracyFactor * boost
}

// unseenBonus rewards topics the learner has not touched yet.
func (e *ScoringEngine) unseenBonus(q *question.Question, p *learner.Profile) float64 {
	mastery, ok := p.TopicMastery[q.Topic]
	if !ok || mastery == 0 {
		return e.weights.UnseenConceptBonus
	}
	if mastery < 30 {
		return e.weights.UnseenConceptBonus * 0.5
	}
	return 0
}

// varietyScore favors subjects that have gone unpracticed for a while.
func (e *ScoringEngine) varietyScore(q *question.Question, p *learner.Profile, now time.Time) float64 {
	stats, ok := p.SubjectPerformance[q.Subject]
	if !ok || stats.LastPracticed == nil {
		return e.weights.VarietyBonus
	}

	days := daysSince(*stats.LastPracticed, now)
	switch {
	case days > 7:
		return e.weights.VarietyBonus
	case days > 3:
		return e.weights.VarietyBonus * 0.6
	case days > 1:
		return e.weights.VarietyBonus * 0.3
	default:
		return 0
	}
}

// abilityScore favors questions near the learner's preferred difficulty.
func (e *ScoringEngine) abilityScore(q *question.Question, p *learner.Profile) float64 {
	diff := q.Difficulty.Index() - p.PreferredDifficulty.Index()
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return e.weights.AbilityLevelMatch
	case 1:
		return e.weights.AbilityLevelMatch * 0.7
	default:
		return e.weights.AbilityLevelMatch * 0.3
	}
}

// frustrationScore steers difficulty by mood: a frustrated learner gets
// easier questions, a relaxed one can take a challenge.
func (e *ScoringEngine) frustrationScore(q *question.Question, p *learner.Profile) float64 {
	if p.FrustrationLevel > 7 {
		switch q.Difficulty {
		case question.Easy:
			return e.weights.FrustrationGuard
		case question.Medium:
			return e.weights.FrustrationGuard * 0.5
		default:
			return 0
		}
	}

	if p.FrustrationLevel < 3 && q.Difficulty == question.Hard {
		return e.weights.FrustrationGuard * 0.5
	}

	return e.weights.FrustrationGuard * 0.3
}

// timeOfDayScore gives full weight when the current daypart matches the
// learner's best-performing one, half otherwise.
func (e *ScoringEngine) timeOfDayScore(p *learner.Profile, now time.Time) float64 {
	if learner.TimeOfDayAt(now) == p.BestTimeOfDay {
		return e.weights.TimeOfDayMatch
	}
	return e.weights.TimeOfDayMatch * 0.5
}

// ApplyFocusMode post-adjusts the summed scores before ranking. The input
// slice is not modified. The random mode draws from rng, which must be
// seeded by the caller for reproducible results.
func (e *ScoringEngine) ApplyFocusMode(scored []ScoredQuestion, mode learner.FocusMode, rng *rand.Rand) []ScoredQuestion {
	out := make([]ScoredQuestion, len(scored))
	copy(out, scored)

	switch mode {
	case learner.FocusWeakness:
		for i := range out {
			out[i].Score += out[i].Breakdown.WeakArea * 0.5
		}
	case learner.FocusProgressive:
		for i := range out {
			out[i].Score += float64(2-out[i].Question.Difficulty.Index()) * 10
		}
	case learner.FocusRandom:
		for i := range out {
			out[i].Score += rng.Float64() * 30
		}
	}
	return out
}

// daysSince counts calendar-ish days between then and now, rounding any
// partial day up. A subject practiced two hours ago counts as 1 day.
func daysSince(then, now time.Time) int {
	diff := now.Sub(then)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
