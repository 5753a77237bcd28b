package selection

import (
	"sort"

	"github.com/ankur/wakeprep/internal/question"
)

// RankingEngine orders scored candidates, phase 3 of the pipeline. All of
// its views are read-only and never alter the ranked list.
type RankingEngine struct{}

// NewRankingEngine creates a ranking engine.
func NewRankingEngine() *RankingEngine {
	return &RankingEngine{}
}

// Rank sorts by descending score and assigns ranks 1..N. The sort is
// stable: candidates with equal scores keep their input order.
func (r *RankingEngine) Rank(scored []ScoredQuestion) []ScoredQuestion {
	out := make([]ScoredQuestion, len(scored))
	copy(out, scored)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// TopN returns the first n ranked candidates, clamped to the available count.
func (r *RankingEngine) TopN(ranked []ScoredQuestion, n int) []ScoredQuestion {
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}

// AboveThreshold returns the candidates scoring at or above the threshold.
func (r *RankingEngine) AboveThreshold(ranked []ScoredQuestion, threshold float64) []ScoredQuestion {
	var out []ScoredQuestion
	for _, sq := range ranked {
		if sq.Score >= threshold {
			out = append(out, sq)
		}
	}
	return out
}

// RankStats summarizes the score distribution of a ranked set.
type RankStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Count  int
}

// Stats computes min/max/mean/median over the scores.
func (r *RankingEngine) Stats(ranked []ScoredQuestion) RankStats {
	if len(ranked) == 0 {
		return RankStats{}
	}

	scores := make([]float64, len(ranked))
	sum := 0.0
	for i, sq := range ranked {
		scores[i] = sq.Score
		sum += sq.Score
	}
	sort.Float64s(scores)

	return RankStats{
		Min:    scores[0],
		Max:    scores[len(scores)-1],
		Mean:   sum / float64(len(scores)),
		Median: scores[len(scores)/2],
		Count:  len(scores),
	}
}

// GroupByDifficulty buckets candidates by tier, preserving ranks.
func (r *RankingEngine) GroupByDifficulty(ranked []ScoredQuestion) map[question.Difficulty][]ScoredQuestion {
	out := make(map[question.Difficulty][]ScoredQuestion)
	for _, sq := range ranked {
		out[sq.Question.Difficulty] = append(out[sq.Question.Difficulty], sq)
	}
	return out
}

// GroupBySubject buckets candidates by subject, preserving ranks.
func (r *RankingEngine) GroupBySubject(ranked []ScoredQuestion) map[string][]ScoredQuestion {
	out := make(map[string][]ScoredQuestion)
	for _, sq := range ranked {
		out[sq.Question.Subject] = append(out[sq.Question.Subject], sq)
	}
	return out
}
