package question

import "fmt"

// Difficulty is an ordered tier: easy < medium < hard.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var difficultyOrder = []Difficulty{Easy, Medium, Hard}

// AllDifficulties returns the tiers in ascending order.
func AllDifficulties() []Difficulty {
	out := make([]Difficulty, len(difficultyOrder))
	copy(out, difficultyOrder)
	return out
}

// Index returns the position of the tier in the order (easy=0, medium=1,
// hard=2), or -1 for an unknown value.
func (d Difficulty) Index() int {
	for i, v := range difficultyOrder {
		if v == d {
			return i
		}
	}
	return -1
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	return d.Index() >= 0
}

// Compare orders two tiers: negative if d < other, zero if equal.
func (d Difficulty) Compare(other Difficulty) int {
	return d.Index() - other.Index()
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}
