package quiz

import (
	"errors"
	"testing"

	"api/models"
)

func catalog(correct ...int) []models.Question {
	questions := make([]models.Question, len(correct))
	for i, answer := range correct {
		questions[i] = models.Question{
			Position:      i + 1,
			Prompt:        "question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: answer,
			Explanation:   "explanation",
		}
	}
	return questions
}

// run answers every question with the given selections and returns the result
func run(t *testing.T, questions []models.Question, selections []int) Result {
	t.Helper()

	attempt, err := NewAttempt(questions)
	if err != nil {
		t.Fatalf("NewAttempt: %v", err)
	}

	for i, selection := range selections {
		if err := attempt.SelectAnswer(selection); err != nil {
			t.Fatalf("SelectAnswer(%d) on question %d: %v", selection, i, err)
		}
		if _, err := attempt.Submit(); err != nil {
			t.Fatalf("Submit on question %d: %v", i, err)
		}
		done, err := attempt.Advance()
		if err != nil {
			t.Fatalf("Advance on question %d: %v", i, err)
		}
		if wantDone := i == len(selections)-1; done != wantDone {
			t.Fatalf("Advance on question %d: done = %v, want %v", i, done, wantDone)
		}
	}

	result, err := attempt.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	return result
}

func TestAttemptScoring(t *testing.T) {
	tests := []struct {
		name       string
		correct    []int
		selections []int
		wantScore  int
		wantPoints int
	}{
		{"all correct", []int{0, 1, 2}, []int{0, 1, 2}, 3, 150},
		{"one correct", []int{0, 1, 2}, []int{0, 0, 0}, 1, 50},
		{"none correct", []int{0, 1, 2}, []int{3, 3, 3}, 0, 0},
		{"single question", []int{2}, []int{2}, 1, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := run(t, catalog(tc.correct...), tc.selections)
			if result.Score != tc.wantScore {
				t.Errorf("score = %d, want %d", result.Score, tc.wantScore)
			}
			if result.PointsEarned != tc.wantPoints {
				t.Errorf("points = %d, want %d", result.PointsEarned, tc.wantPoints)
			}
			if result.TotalQuestions != len(tc.correct) {
				t.Errorf("total = %d, want %d", result.TotalQuestions, len(tc.correct))
			}
			if result.Score < 0 || result.Score > result.TotalQuestions {
				t.Errorf("score %d outside [0, %d]", result.Score, result.TotalQuestions)
			}
		})
	}
}

func TestNewAttemptRequiresQuestions(t *testing.T) {
	if _, err := NewAttempt(nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestSelectAnswerLastWriteWins(t *testing.T) {
	attempt, _ := NewAttempt(catalog(2))

	if err := attempt.SelectAnswer(0); err != nil {
		t.Fatalf("first select: %v", err)
	}
	if err := attempt.SelectAnswer(2); err != nil {
		t.Fatalf("reselect: %v", err)
	}

	feedback, err := attempt.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !feedback.Correct {
		t.Error("last selection should have been the one locked in")
	}
}

func TestSelectAnswerValidation(t *testing.T) {
	attempt, _ := NewAttempt(catalog(0))

	if err := attempt.SelectAnswer(4); !errors.Is(err, ErrOptionOutOfRange) {
		t.Errorf("out of range: err = %v, want ErrOptionOutOfRange", err)
	}
	if err := attempt.SelectAnswer(-1); !errors.Is(err, ErrOptionOutOfRange) {
		t.Errorf("negative: err = %v, want ErrOptionOutOfRange", err)
	}
}

func TestSelectAnswerFrozenAfterSubmit(t *testing.T) {
	attempt, _ := NewAttempt(catalog(0, 1))

	attempt.SelectAnswer(0)
	attempt.Submit()

	if err := attempt.SelectAnswer(1); !errors.Is(err, ErrFeedbackShown) {
		t.Fatalf("err = %v, want ErrFeedbackShown", err)
	}
}

func TestSubmitWithoutSelection(t *testing.T) {
	attempt, _ := NewAttempt(catalog(0))

	if _, err := attempt.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
}

func TestDoubleSubmitDoesNotDoubleCount(t *testing.T) {
	attempt, _ := NewAttempt(catalog(0, 1))

	attempt.SelectAnswer(0)
	if _, err := attempt.Submit(); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := attempt.Submit(); !errors.Is(err, ErrFeedbackShown) {
		t.Fatalf("second submit: err = %v, want ErrFeedbackShown", err)
	}

	// Finish the attempt and check the score was counted once
	attempt.Advance()
	attempt.SelectAnswer(3)
	attempt.Submit()
	attempt.Advance()

	result, err := attempt.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("score = %d, want 1", result.Score)
	}
}

func TestAdvanceBeforeSubmit(t *testing.T) {
	attempt, _ := NewAttempt(catalog(0))

	if _, err := attempt.Advance(); !errors.Is(err, ErrNotSubmitted) {
		t.Fatalf("advance without submit: err = %v, want ErrNotSubmitted", err)
	}

	attempt.SelectAnswer(0)
	if _, err := attempt.Advance(); !errors.Is(err, ErrNotSubmitted) {
		t.Fatalf("advance after select only: err = %v, want ErrNotSubmitted", err)
	}
}

func TestAdvanceResetsTransientState(t *testing.T) {
	attempt, _ := NewAttempt(catalog(0, 1))

	attempt.SelectAnswer(0)
	attempt.Submit()
	if done, err := attempt.Advance(); err != nil || done {
		t.Fatalf("Advance: done=%v err=%v", done, err)
	}

	if _, index := attempt.Current(); index != 1 {
		t.Errorf("index = %d, want 1", index)
	}
	// Selection must be cleared for the new question
	if _, err := attempt.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("err = %v, want ErrNoSelection", err)
	}
}

func TestCompletionIsTerminal(t *testing.T) {
	attempt, _ := NewAttempt(catalog(0))

	if _, err := attempt.Result(); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("result before completion: err = %v, want ErrNotCompleted", err)
	}

	attempt.SelectAnswer(0)
	attempt.Submit()
	done, err := attempt.Advance()
	if err != nil || !done {
		t.Fatalf("final advance: done=%v err=%v", done, err)
	}
	if !attempt.Completed() {
		t.Fatal("attempt should be completed")
	}

	if err := attempt.SelectAnswer(0); !errors.Is(err, ErrCompleted) {
		t.Errorf("select after completion: err = %v, want ErrCompleted", err)
	}
	if _, err := attempt.Submit(); !errors.Is(err, ErrCompleted) {
		t.Errorf("submit after completion: err = %v, want ErrCompleted", err)
	}
	if _, err := attempt.Advance(); !errors.Is(err, ErrCompleted) {
		t.Errorf("advance after completion: err = %v, want ErrCompleted", err)
	}

	// The computed result stays readable and stable
	result, err := attempt.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if result.Score != 1 || result.PointsEarned != 50 {
		t.Errorf("result = %+v, want score 1, points 50", result)
	}
}

func TestCompletionNeedsExactlyAllAdvances(t *testing.T) {
	const n = 5
	correct := make([]int, n)
	attempt, _ := NewAttempt(catalog(correct...))

	for i := 0; i < n; i++ {
		if attempt.Completed() {
			t.Fatalf("completed after %d of %d questions", i, n)
		}
		attempt.SelectAnswer(0)
		if _, err := attempt.Submit(); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		done, err := attempt.Advance()
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if done != (i == n-1) {
			t.Fatalf("advance %d: done = %v", i, done)
		}
	}
	if !attempt.Completed() {
		t.Fatal("attempt should be completed after n advances")
	}
}

func TestDeterministicOrder(t *testing.T) {
	questions := catalog(0, 1, 2)
	questions[0].Prompt = "first"
	questions[1].Prompt = "second"
	questions[2].Prompt = "third"

	for run := 0; run < 2; run++ {
		attempt, _ := NewAttempt(questions)
		for _, want := range []string{"first", "second", "third"} {
			question, _ := attempt.Current()
			if question.Prompt != want {
				t.Fatalf("run %d: question = %q, want %q", run, question.Prompt, want)
			}
			attempt.SelectAnswer(0)
			attempt.Submit()
			attempt.Advance()
		}
	}
}
