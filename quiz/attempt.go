package quiz

import (
	"errors"

	"api/models"
	"api/utils"
)

var (
	ErrNoQuestions      = errors.New("attempt needs at least one question")
	ErrCompleted        = errors.New("attempt is already completed")
	ErrFeedbackShown    = errors.New("answer is locked in for the current question")
	ErrOptionOutOfRange = errors.New("selected option is out of range")
	ErrNoSelection      = errors.New("no answer selected")
	ErrNotSubmitted     = errors.New("current question has not been submitted")
	ErrNotCompleted     = errors.New("attempt is not completed")
)

// Attempt is one run through the question catalog. Questions are presented
// in catalog order, the selection for a question is frozen once submitted,
// and a completed attempt cannot be restarted in place.
type Attempt struct {
	questions []models.Question
	index     int
	selected  *int
	feedback  bool
	correct   int
	completed bool
}

// Feedback is returned by Submit after the answer is locked in
type Feedback struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// Result is the final outcome of a completed attempt
type Result struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
	PointsEarned   int `json:"points_earned"`
}

// NewAttempt starts a fresh attempt over the given questions, presented in
// the order they are passed
func NewAttempt(questions []models.Question) (*Attempt, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Attempt{questions: questions}, nil
}

// Current returns the question being presented and its zero-based index
func (a *Attempt) Current() (models.Question, int) {
	return a.questions[a.index], a.index
}

// Total returns the number of questions in the attempt
func (a *Attempt) Total() int {
	return len(a.questions)
}

// Completed reports whether the attempt has reached its terminal state
func (a *Attempt) Completed() bool {
	return a.completed
}

// SelectAnswer records the chosen option for the current question. Calling
// it again before Submit replaces the previous choice. It fails once
// feedback has been shown.
func (a *Attempt) SelectAnswer(option int) error {
	if a.completed {
		return ErrCompleted
	}
	if a.feedback {
		return ErrFeedbackShown
	}
	if option < 0 || option >= len(a.questions[a.index].Options) {
		return ErrOptionOutOfRange
	}
	a.selected = &option
	return nil
}

// Submit locks in the selected answer, reveals correctness and increments
// the running score if the selection matches. Submitting twice for the same
// question is rejected, so the score cannot be double counted.
func (a *Attempt) Submit() (Feedback, error) {
	if a.completed {
		return Feedback{}, ErrCompleted
	}
	if a.feedback {
		return Feedback{}, ErrFeedbackShown
	}
	if a.selected == nil {
		return Feedback{}, ErrNoSelection
	}

	question := a.questions[a.index]
	correct := *a.selected == question.CorrectAnswer
	if correct {
		a.correct++
	}
	a.feedback = true

	return Feedback{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}, nil
}

// Advance moves to the next question, or completes the attempt when the
// current question is the last one. It is only legal after Submit.
func (a *Attempt) Advance() (bool, error) {
	if a.completed {
		return false, ErrCompleted
	}
	if !a.feedback {
		return false, ErrNotSubmitted
	}

	if a.index == len(a.questions)-1 {
		a.completed = true
		return true, nil
	}

	a.index++
	a.selected = nil
	a.feedback = false
	return false, nil
}

// Result returns the final score once the attempt is completed
func (a *Attempt) Result() (Result, error) {
	if !a.completed {
		return Result{}, ErrNotCompleted
	}
	return Result{
		Score:          a.correct,
		TotalQuestions: len(a.questions),
		PointsEarned:   utils.CalculatePoints(a.correct),
	}, nil
}
