package selection

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/question"
)

// pickDecay is the exponential decay rate for the weighted-random pick:
// candidate at rank r gets weight e^(-pickDecay*(r-1)).
const pickDecay = 0.5

// Config configures a Pipeline. Zero values produce sensible defaults.
type Config struct {
	Weights Weights    // zero -> DefaultWeights
	TopN    int        // zero -> 5; candidates considered by the pick phase
	Rand    *rand.Rand // nil -> time-seeded; inject a seeded source in tests
}

// Pipeline orchestrates the four selection phases:
//
//	FILTER -> SCORE -> RANK -> PICK
//
// Filter, score, and rank are pure reads over the bank and profile; only
// the pick phase consumes randomness, through the injectable Rand.
type Pipeline struct {
	filter  *FilterEngine
	scoring *ScoringEngine
	ranking *RankingEngine
	rng     *rand.Rand
	topN    int
}

// New creates a Pipeline from the given config.
func New(cfg Config) *Pipeline {
	topN := cfg.TopN
	if topN == 0 {
		topN = 5
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Pipeline{
		filter:  NewFilterEngine(),
		scoring: NewScoringEngine(cfg.Weights),
		ranking: NewRankingEngine(),
		rng:     rng,
		topN:    topN,
	}
}

// SelectQuestion runs the full pipeline over the complete bank and returns
// the picked question. Returns ErrInvalidCriteria for malformed criteria
// and ErrNoEligibleQuestion when the filters empty the pool; no implicit
// fallback happens here.
func (p *Pipeline) SelectQuestion(bank []question.Question, c Criteria, now time.Time) (*question.Question, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	filtered := p.filter.Filter(bank, c, now)
	if len(filtered) == 0 {
		return nil, ErrNoEligibleQuestion
	}

	scored := p.scoring.ScoreQuestions(filtered, c.Profile, now)
	scored = p.scoring.ApplyFocusMode(scored, c.FocusMode, p.rng)
	ranked := p.ranking.Rank(scored)

	picked := p.pick(ranked)
	return &picked, nil
}

// pick draws one candidate from the top-ranked set using exponentially
// decaying weights, favoring the best while keeping variety.
func (p *Pipeline) pick(ranked []ScoredQuestion) question.Question {
	candidates := p.ranking.TopN(ranked, p.topN)
	if len(candidates) == 1 {
		return candidates[0].Question
	}

	weights := make([]float64, len(candidates))
	total := 0.0
	for i := range candidates {
		weights[i] = math.Exp(-pickDecay * float64(candidates[i].Rank-1))
		total += weights[i]
	}

	draw := p.rng.Float64() * total
	for i := range candidates {
		draw -= weights[i]
		if draw <= 0 {
			return candidates[i].Question
		}
	}
	return candidates[0].Question
}

// QuickSelect is the deliberately non-personalized fallback: exact
// exam+difficulty match, else any question for the exam, else failure.
// Callers reach for it explicitly after SelectQuestion reports
// ErrNoEligibleQuestion.
func (p *Pipeline) QuickSelect(bank []question.Question, exam question.Exam, d question.Difficulty) (*question.Question, error) {
	var matched []question.Question
	for _, q := range bank {
		if q.Exam == exam && q.Difficulty == d {
			matched = append(matched, q)
		}
	}

	if len(matched) == 0 {
		for _, q := range bank {
			if q.Exam == exam {
				matched = append(matched, q)
			}
		}
		if len(matched) == 0 {
			return nil, fmt.Errorf("%w: exam %s has no questions", ErrNoEligibleQuestion, exam)
		}
	}

	q := matched[p.rng.Intn(len(matched))]
	return &q, nil
}

// SelectMultiple picks count distinct questions for a session. Each pick
// is appended to the exclude set before the next call, so the loop is
// inherently sequential; callers must not run it concurrently for the
// same session.
func (p *Pipeline) SelectMultiple(bank []question.Question, c Criteria, count int, now time.Time) ([]question.Question, error) {
	selected := make([]question.Question, 0, count)
	current := c

	for i := 0; i < count; i++ {
		q, err := p.SelectQuestion(bank, current, now)
		if err != nil {
			return nil, fmt.Errorf("select question %d of %d: %w", i+1, count, err)
		}
		selected = append(selected, *q)
		current = current.WithExcluded(q.ID)
	}
	return selected, nil
}

// FilterStats exposes the per-stage survivor counts for diagnostics.
func (p *Pipeline) FilterStats(bank []question.Question, c Criteria, now time.Time) FilterStats {
	return p.filter.Stats(bank, c, now)
}

// ExplainSelection renders the score breakdown of a question against a
// profile, for debugging and analytics.
func (p *Pipeline) ExplainSelection(q question.Question, profile *learner.Profile, now time.Time) string {
	scored := p.scoring.ScoreQuestions([]question.Question{q}, profile, now)
	b := scored[0].Breakdown

	var sb strings.Builder
	sb.WriteString("Selection breakdown:\n")
	fmt.Fprintf(&sb, "  weak area:    %.1f\n", b.WeakArea)
	fmt.Fprintf(&sb, "  unseen topic: %.1f\n", b.Unseen)
	fmt.Fprintf(&sb, "  variety:      %.1f\n", b.Variety)
	fmt.Fprintf(&sb, "  ability:      %.1f\n", b.Ability)
	fmt.Fprintf(&sb, "  frustration:  %.1f\n", b.Frustration)
	fmt.Fprintf(&sb, "  time of day:  %.1f\n", b.TimeOfDay)
	fmt.Fprintf(&sb, "  total:        %.1f", scored[0].Score)
	return sb.String()
}
