package services

import (
	"testing"

	"github.com/growthbridge/growthbridge-backend/internal/types"
)

func TestClassifyLevelBands(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		want  string
	}{
		{name: "lowest_possible", score: 1.0, want: types.LevelLow},
		{name: "low_upper_boundary", score: 2.4, want: types.LevelLow},
		{name: "moderate_lower_boundary", score: 2.5, want: types.LevelModerate},
		{name: "moderate_midpoint", score: 3.0, want: types.LevelModerate},
		{name: "moderate_upper_boundary", score: 3.9, want: types.LevelModerate},
		{name: "high_lower_boundary", score: 4.0, want: types.LevelHigh},
		{name: "highest_possible", score: 5.0, want: types.LevelHigh},
		{name: "unrounded_mean_in_gap", score: 22.0 / 9.0, want: types.LevelLow},
		{name: "unrounded_mean_rounds_up", score: 3.95, want: types.LevelHigh},
		{name: "computed_mean_two_answers", score: 9.0 / 2.0, want: types.LevelHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := classifyLevel(tc.score)
			if err != nil {
				t.Fatalf("classifyLevel(%v) returned error: %v", tc.score, err)
			}
			if got != tc.want {
				t.Fatalf("classifyLevel(%v)=%q, want %q", tc.score, got, tc.want)
			}
		})
	}
}

func TestClassifyLevelOutsideDomain(t *testing.T) {
	for _, score := range []float64{0, 0.9, 5.1, -3, 42} {
		if _, err := classifyLevel(score); err == nil {
			t.Fatalf("classifyLevel(%v) should fail for a score outside [1.0, 5.0]", score)
		}
	}
}
