package learner

import "time"

// TimeOfDay is a coarse daypart bucket used for performance patterns.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"   // 05:00-11:59
	Afternoon TimeOfDay = "afternoon" // 12:00-16:59
	Evening   TimeOfDay = "evening"   // 17:00-20:59
	Night     TimeOfDay = "night"     // 21:00-04:59
)

// TimeOfDayAt returns the bucket containing t.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 21:
		return Evening
	default:
		return Night
	}
}
