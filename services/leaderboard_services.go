package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"api/config"
	"api/database"
	"api/metrics"
	"api/models"
)

// LeaderboardCacheKey is the Redis key holding the cached ranked list
const LeaderboardCacheKey = "leaderboard:top"

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// RankProfiles orders profiles by points descending and assigns ranks.
// Ties are broken by ID ascending, so the ranking is stable across
// re-fetches regardless of store return order.
func RankProfiles(profiles []models.User) []LeaderboardEntry {
	sorted := make([]models.User, len(profiles))
	copy(sorted, profiles)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].ID < sorted[j].ID
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, profile := range sorted {
		entries[i] = LeaderboardEntry{
			Rank:     i + 1,
			ID:       profile.ID,
			Username: profile.Username,
			Points:   profile.Points,
		}
	}
	return entries
}

// FetchLeaderboard returns the top ranked profiles, serving from the Redis
// cache when it is warm. A change notification invalidates the cache, so a
// re-fetch triggered by a no-op event is simply a redundant read.
func FetchLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = config.DefaultLeaderboardConfig.Limit
	}

	if cached, err := database.REDIS.Get(ctx, LeaderboardCacheKey).Result(); err == nil {
		var entries []LeaderboardEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil && len(entries) >= limit {
			metrics.CacheHits.Inc()
			return entries[:limit], nil
		}
	}
	metrics.CacheMisses.Inc()

	var profiles []models.User
	if err := database.DB.
		Order("points desc").Order("id asc").
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}

	entries := RankProfiles(profiles)

	if payload, err := json.Marshal(entries); err == nil {
		database.REDIS.Set(ctx, LeaderboardCacheKey, payload, config.DefaultLeaderboardConfig.CacheTTL)
	}

	return entries, nil
}

// InvalidateLeaderboardCache drops the cached ranking after a balance change
func InvalidateLeaderboardCache(ctx context.Context) {
	database.REDIS.Del(ctx, LeaderboardCacheKey)
}
