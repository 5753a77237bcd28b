package selection

import (
	"testing"

	"github.com/ankur/wakeprep/internal/question"
)

func scoredFixture() []ScoredQuestion {
	return []ScoredQuestion{
		{Question: makeQ("q1", "GATE", "Mathematics", "Algebra", question.Easy, 60), Score: 80},
		{Question: makeQ("q2", "GATE", "Physics", "Optics", question.Medium, 60), Score: 120},
		{Question: makeQ("q3", "GATE", "Mathematics", "Calculus", question.Hard, 60), Score: 100},
		{Question: makeQ("q4", "GATE", "Physics", "Mechanics", question.Easy, 60), Score: 120},
	}
}

func TestRankOrdersDescending(t *testing.T) {
	r := NewRankingEngine()
	ranked := r.Rank(scoredFixture())

	if len(ranked) != 4 {
		t.Fatalf("ranked %d, want 4", len(ranked))
	}
	for i, sq := range ranked {
		if sq.Rank != i+1 {
			t.Errorf("position %d has rank %d", i, sq.Rank)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("scores not descending at position %d", i)
		}
	}

	// Stable sort: q2 and q4 tie at 120 and keep input order.
	if ranked[0].Question.ID != "q2" || ranked[1].Question.ID != "q4" {
		t.Errorf("tied candidates reordered: %s, %s", ranked[0].Question.ID, ranked[1].Question.ID)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	r := NewRankingEngine()
	in := scoredFixture()
	r.Rank(in)

	if in[0].Question.ID != "q1" || in[0].Rank != 0 {
		t.Error("Rank mutated its input slice")
	}
}

func TestTopNClamps(t *testing.T) {
	r := NewRankingEngine()
	ranked := r.Rank(scoredFixture())

	if got := r.TopN(ranked, 2); len(got) != 2 {
		t.Errorf("TopN(2) = %d candidates", len(got))
	}
	if got := r.TopN(ranked, 10); len(got) != 4 {
		t.Errorf("TopN(10) = %d candidates, want all 4", len(got))
	}
	if got := r.TopN(ranked, -1); len(got) != 0 {
		t.Errorf("TopN(-1) = %d candidates, want 0", len(got))
	}
}

func TestAboveThreshold(t *testing.T) {
	r := NewRankingEngine()
	ranked := r.Rank(scoredFixture())

	got := r.AboveThreshold(ranked, 100)
	if len(got) != 3 {
		t.Errorf("AboveThreshold(100) = %d, want 3", len(got))
	}
	for _, sq := range got {
		if sq.Score < 100 {
			t.Errorf("candidate %s below threshold at %f", sq.Question.ID, sq.Score)
		}
	}
}

func TestRankStats(t *testing.T) {
	r := NewRankingEngine()
	st := r.Stats(r.Rank(scoredFixture()))

	if st.Count != 4 {
		t.Errorf("Count = %d, want 4", st.Count)
	}
	if st.Min != 80 || st.Max != 120 {
		t.Errorf("Min/Max = %f/%f, want 80/120", st.Min, st.Max)
	}
	if st.Mean != 105 {
		t.Errorf("Mean = %f, want 105", st.Mean)
	}
	if st.Median != 120 {
		t.Errorf("Median = %f, want 120", st.Median)
	}

	if empty := r.Stats(nil); empty.Count != 0 {
		t.Errorf("empty stats count = %d", empty.Count)
	}
}

func TestGrouping(t *testing.T) {
	r := NewRankingEngine()
	ranked := r.Rank(scoredFixture())

	byDiff := r.GroupByDifficulty(ranked)
	if len(byDiff[question.Easy]) != 2 || len(byDiff[question.Medium]) != 1 || len(byDiff[question.Hard]) != 1 {
		t.Errorf("difficulty buckets = %d/%d/%d, want 2/1/1",
			len(byDiff[question.Easy]), len(byDiff[question.Medium]), len(byDiff[question.Hard]))
	}

	bySubject := r.GroupBySubject(ranked)
	if len(bySubject["Mathematics"]) != 2 || len(bySubject["Physics"]) != 2 {
		t.Errorf("subject buckets = %d/%d, want 2/2",
			len(bySubject["Mathematics"]), len(bySubject["Physics"]))
	}
	for _, sq := range bySubject["Physics"] {
		if sq.Rank == 0 {
			t.Error("grouping dropped rank assignment")
		}
	}
}
