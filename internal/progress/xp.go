// Package progress computes XP, levels, and achievement unlocks from
// attempts and sessions.
package progress

import (
	"math"

	"github.com/ankur/wakeprep/internal/question"
)

// XPConfig tunes XP rewards.
type XPConfig struct {
	BaseXP               int
	DifficultyMultiplier map[question.Difficulty]float64
	SpeedBonusThreshold  float64 // ratio of expected solve time
	SpeedBonus           int
	StreakMultiplier     float64 // per streak day, capped at StreakCapDays
	FirstAttemptBonus    int
	PerfectSessionBonus  int
}

// StreakCapDays caps the streak multiplier exponent.
const StreakCapDays = 30

// DefaultXPConfig returns the production XP tuning.
func DefaultXPConfig() XPConfig {
	return XPConfig{
		BaseXP: 10,
		DifficultyMultiplier: map[question.Difficulty]float64{
			question.Easy:   1,
			question.Medium: 1.5,
			question.Hard:   2.5,
		},
		SpeedBonusThreshold: 0.7,
		SpeedBonus:          5,
		StreakMultiplier:    1.05,
		FirstAttemptBonus:   10,
		PerfectSessionBonus: 50,
	}
}

// Level curve constants: reaching level L from L-1 costs
// floor(levelBaseXP * levelMultiplier^(L-1)).
const (
	levelBaseXP     = 100
	levelMultiplier = 1.5
)

// XPForLevel returns the XP cost of the given level step.
func XPForLevel(level int) int {
	return int(math.Floor(levelBaseXP * math.Pow(levelMultiplier, float64(level-1))))
}

// LevelFromXP walks the level table, accumulating step costs until the
// next full level would exceed the total. Returns the level and the XP
// still needed to finish it.
func LevelFromXP(totalXP int) (level, xpToNext int) {
	level = 1
	accumulated := 0
	for accumulated+XPForLevel(level) <= totalXP {
		accumulated += XPForLevel(level)
		level++
	}
	xpToNext = XPForLevel(level) - (totalXP - accumulated)
	return level, xpToNext
}

// TotalXPForLevel returns the cumulative XP needed to have completed all
// levels below the given one.
func TotalXPForLevel(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += XPForLevel(l)
	}
	return total
}
