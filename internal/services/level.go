package services

import (
	"fmt"
	"math"

	"github.com/growthbridge/growthbridge-backend/internal/apierr"
	"github.com/growthbridge/growthbridge-backend/internal/types"
)

// Classifier bands for a per-dimension mean score, closed intervals on one
// decimal:
//
//	[1.0, 2.4] -> Low
//	[2.5, 3.9] -> Moderate
//	[4.0, 5.0] -> High
//
// The stored score stays unrounded; classification happens on the mean
// rounded to one decimal so the bands are exhaustive over reachable values.
// Anything outside the domain is a consistency error, never defaulted.
func classifyLevel(score float64) (string, error) {
	rounded := math.Round(score*10) / 10
	switch {
	case rounded >= 1.0 && rounded <= 2.4:
		return types.LevelLow, nil
	case rounded >= 2.5 && rounded <= 3.9:
		return types.LevelModerate, nil
	case rounded >= 4.0 && rounded <= 5.0:
		return types.LevelHigh, nil
	}
	return "", apierr.Consistency(fmt.Errorf("score %v is outside the classifier domain [1.0, 5.0]", score))
}
