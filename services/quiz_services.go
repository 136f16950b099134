package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/quiz"
	"api/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// staleAttemptAge is how long an in-progress attempt may sit untouched
// before it is pruned from the registry
const staleAttemptAge = 2 * time.Hour

var ErrAttemptNotFound = fmt.Errorf("attempt not found")

type attemptEntry struct {
	mu        sync.Mutex // serializes operations on the attempt
	attempt   *quiz.Attempt
	userID    string // empty for anonymous attempts
	touchedAt time.Time
}

var (
	attemptsMu sync.Mutex
	attempts   = make(map[string]*attemptEntry) // keyed by attempt ID
)

// LoadQuestionCatalog returns the full question catalog in presentation order
func LoadQuestionCatalog() ([]models.Question, error) {
	var questions []models.Question
	if err := database.DB.Order("position asc").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to load question catalog: %w", err)
	}
	return questions, nil
}

// StartAttempt creates a new attempt over the catalog and registers it under
// a fresh attempt ID. userID may be empty for anonymous attempts; those can
// still be completed, they just cannot be saved.
func StartAttempt(userID string) (string, *quiz.Attempt, error) {
	questions, err := LoadQuestionCatalog()
	if err != nil {
		return "", nil, err
	}

	attempt, err := quiz.NewAttempt(questions)
	if err != nil {
		return "", nil, err
	}

	attemptID := uuid.NewString()

	attemptsMu.Lock()
	pruneStaleAttempts()
	attempts[attemptID] = &attemptEntry{
		attempt:   attempt,
		userID:    userID,
		touchedAt: time.Now(),
	}
	attemptsMu.Unlock()

	return attemptID, attempt, nil
}

// WithAttempt runs fn against the registered attempt while holding its lock,
// so concurrent requests to the same attempt ID are serialized and cannot
// observe or mutate the state machine mid-operation. It enforces that only
// the attempt's owner can touch it; anonymous attempts are owned by the
// empty user ID, so the attempt ID itself is the capability.
func WithAttempt(attemptID string, userID string, fn func(*quiz.Attempt) error) error {
	attemptsMu.Lock()
	entry, exists := attempts[attemptID]
	if !exists || entry.userID != userID {
		attemptsMu.Unlock()
		return ErrAttemptNotFound
	}
	entry.touchedAt = time.Now()
	attemptsMu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.attempt)
}

// FinishAttempt drops a completed attempt from the registry. The attempt
// object stays valid for the caller; it just can no longer be addressed, so
// a completed attempt cannot be resubmitted.
func FinishAttempt(attemptID string) {
	attemptsMu.Lock()
	delete(attempts, attemptID)
	attemptsMu.Unlock()
}

// pruneStaleAttempts removes abandoned attempts. Caller must hold attemptsMu.
func pruneStaleAttempts() {
	cutoff := time.Now().Add(-staleAttemptAge)
	for id, entry := range attempts {
		if entry.touchedAt.Before(cutoff) {
			delete(attempts, id)
		}
	}
}

// SaveQuizResult persists a completed attempt's result and credits the
// earned points to the user's balance in one transaction. Failure here never
// alters the computed result; the caller surfaces it as a recoverable
// notification.
func SaveQuizResult(userID string, result quiz.Result) (models.QuizResult, error) {
	row := models.QuizResult{
		UserID:         userID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		PointsEarned:   result.PointsEarned,
	}

	start := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to save quiz result: %w", err)
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", result.PointsEarned)).Error; err != nil {
			return fmt.Errorf("failed to credit points: %w", err)
		}
		return nil
	})
	metrics.RecordDBOperation("save_quiz_result", "quiz_scores", start)
	metrics.QuizCompletions.WithLabelValues(strconv.FormatBool(err == nil)).Inc()

	if err != nil {
		return models.QuizResult{}, err
	}

	metrics.PointsAwarded.Add(float64(result.PointsEarned))
	InvalidateLeaderboardCache(context.Background())
	realtime.BroadcastChange(realtime.TableChange{Table: "profiles", Action: "update"})

	return row, nil
}

// GetUserQuizResults returns a user's past results, most recent first
func GetUserQuizResults(userID string) ([]models.QuizResult, error) {
	var results []models.QuizResult
	if err := database.DB.Where("user_id = ?", userID).
		Order("completed_at desc").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch quiz results: %w", err)
	}
	return results, nil
}
