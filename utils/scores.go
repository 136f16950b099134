package utils

import (
	"api/config"
)

// CalculatePoints converts a raw quiz score into awarded LBT points
func CalculatePoints(score int) int {
	if score < 0 {
		return 0
	}
	return score * config.PointsPerCorrectAnswer
}

// MaxPoints returns the points awarded for a perfect score over total questions
func MaxPoints(total int) int {
	return CalculatePoints(total)
}
