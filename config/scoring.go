package config

import "time"

// PointsPerCorrectAnswer converts a raw quiz score into LBT points
const PointsPerCorrectAnswer = 50

// Leaderboard configuration
type LeaderboardConfig struct {
	Limit    int           // Number of ranked entries returned
	CacheTTL time.Duration // How long the ranked list is cached in Redis
}

var DefaultLeaderboardConfig = LeaderboardConfig{
	Limit:    10,
	CacheTTL: 30 * time.Second,
}
