package quizzes

import (
	"errors"
	"net/http"

	"api/middleware"
	"api/quiz"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetQuestions returns the question catalog in presentation order, without
// the correct answers or explanations
// @Summary Get quiz questions
// @Description Get the static question catalog in quiz order
// @Tags Quiz
// @Produce json
// @Success 200 {array} models.Question
// @Failure 500 {object} map[string]string
// @Router /quiz/questions [get]
func GetQuestions(c *gin.Context) {
	questions, err := services.LoadQuestionCatalog()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCatalogUnavailable)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// StartAttempt begins a new quiz attempt for the caller
// @Summary Start a quiz attempt
// @Description Create a fresh attempt over the question catalog
// @Tags Quiz
// @Produce json
// @Success 201 {object} AttemptStateResponse
// @Failure 500 {object} map[string]string
// @Router /quiz/attempts [post]
func StartAttempt(c *gin.Context) {
	attemptID, attempt, err := services.StartAttempt(c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCatalogUnavailable)
		return
	}

	question, index := attempt.Current()
	c.JSON(http.StatusCreated, AttemptStateResponse{
		AttemptID: attemptID,
		Question:  question,
		Index:     index,
		Total:     attempt.Total(),
	})
}

// SelectAnswer records the chosen option for the current question. Selecting
// again before submitting replaces the previous choice.
// @Summary Select an answer
// @Description Choose an option for the current question of an attempt
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Attempt ID"
// @Param request body AnswerRequest true "Selected option index"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quiz/attempts/{id}/answer [post]
func SelectAnswer(c *gin.Context) {
	var request AnswerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	err := services.WithAttempt(c.Param("id"), c.GetString("user_id"), func(a *quiz.Attempt) error {
		return a.SelectAnswer(*request.Option)
	})
	if err != nil {
		respondAttemptError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Answer selected")
}

// SubmitAnswer locks in the selected answer and reveals the feedback
// @Summary Submit the selected answer
// @Description Lock in the answer for the current question and reveal correctness
// @Tags Quiz
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} quiz.Feedback
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quiz/attempts/{id}/submit [post]
func SubmitAnswer(c *gin.Context) {
	var feedback quiz.Feedback
	err := services.WithAttempt(c.Param("id"), c.GetString("user_id"), func(a *quiz.Attempt) error {
		var err error
		feedback, err = a.Submit()
		return err
	})
	if err != nil {
		respondAttemptError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// Advance moves the attempt to the next question or completes it. On the
// final advance the result is computed and, for an authenticated user,
// persisted. A failed save never blocks the completion or changes the
// computed result.
// @Summary Advance the attempt
// @Description Move to the next question, or complete the attempt after the last one
// @Tags Quiz
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} CompletionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quiz/attempts/{id}/advance [post]
func Advance(c *gin.Context) {
	attemptID := c.Param("id")
	userID := c.GetString("user_id")

	var (
		done   bool
		state  AttemptStateResponse
		result quiz.Result
	)
	err := services.WithAttempt(attemptID, userID, func(a *quiz.Attempt) error {
		var err error
		done, err = a.Advance()
		if err != nil {
			return err
		}
		if done {
			result, err = a.Result()
			return err
		}
		question, index := a.Current()
		state = AttemptStateResponse{
			AttemptID: attemptID,
			Question:  question,
			Index:     index,
			Total:     a.Total(),
		}
		return nil
	})
	if err != nil {
		respondAttemptError(c, err)
		return
	}

	if !done {
		c.JSON(http.StatusOK, state)
		return
	}
	services.FinishAttempt(attemptID)

	completion := CompletionResponse{Completed: true, Result: result}
	if userID != "" {
		if _, err := services.SaveQuizResult(userID, result); err != nil {
			completion.Message = ErrSaveFailed
		} else {
			completion.Saved = true
			middleware.InvalidateUserCache(c, userID)
		}
	}

	c.JSON(http.StatusOK, completion)
}

// respondAttemptError maps state machine errors onto HTTP statuses
func respondAttemptError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAttemptNotFound):
		response.Error(c, http.StatusNotFound, ErrAttemptNotFound)
	case errors.Is(err, quiz.ErrOptionOutOfRange), errors.Is(err, quiz.ErrNoSelection):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusConflict, err.Error())
	}
}
