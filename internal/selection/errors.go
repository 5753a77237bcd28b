package selection

import "errors"

// Sentinel errors for the selection package.
// Use errors.Is to check: errors.Is(err, selection.ErrNoEligibleQuestion)
var (
	// ErrNoEligibleQuestion means the hard filters removed every candidate.
	// The pipeline never widens criteria on its own; callers must relax the
	// criteria or fall back to QuickSelect explicitly.
	ErrNoEligibleQuestion = errors.New("selection: no eligible question for criteria")

	// ErrInvalidCriteria means the criteria are malformed (e.g. an inverted
	// difficulty range) and were rejected before filtering.
	ErrInvalidCriteria = errors.New("selection: invalid criteria")
)
