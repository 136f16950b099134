package quizzes

import (
	"api/models"
	"api/quiz"
)

// Constants for error messages
const (
	ErrAttemptNotFound    = "Attempt not found"
	ErrCatalogUnavailable = "Failed to load the question catalog"
	ErrSaveFailed         = "Your score couldn't be saved, but you still earned the points!"
)

// AnswerRequest model for selecting an answer. Option is a pointer so that
// index 0 survives required-field binding.
type AnswerRequest struct {
	Option *int `json:"option" binding:"required"`
}

// AttemptStateResponse describes the question currently presented
type AttemptStateResponse struct {
	AttemptID string          `json:"attempt_id"`
	Question  models.Question `json:"question"`
	Index     int             `json:"index"`
	Total     int             `json:"total"`
}

// CompletionResponse is returned by the final advance of an attempt. Saved
// reports whether the result row was persisted; the result itself is
// computed either way.
type CompletionResponse struct {
	Completed bool        `json:"completed"`
	Result    quiz.Result `json:"result"`
	Saved     bool        `json:"saved"`
	Message   string      `json:"message,omitempty"`
}
