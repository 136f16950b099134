package utils

import (
	"testing"

	"api/config"
)

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{1, 50},
		{3, 150},
		{15, 750},
		{-1, 0},
	}

	for _, tc := range tests {
		if got := CalculatePoints(tc.score); got != tc.want {
			t.Errorf("CalculatePoints(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestPointsNeverExceedMax(t *testing.T) {
	const total = 15
	for score := 0; score <= total; score++ {
		points := CalculatePoints(score)
		if points != score*config.PointsPerCorrectAnswer {
			t.Errorf("points for score %d = %d, want %d", score, points, score*config.PointsPerCorrectAnswer)
		}
		if points > MaxPoints(total) {
			t.Errorf("points for score %d = %d exceeds max %d", score, points, MaxPoints(total))
		}
	}
}
