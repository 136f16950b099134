package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"api/models"
	"api/quiz"

	"github.com/google/uuid"
)

func registerAttempt(t *testing.T, userID string, questions []models.Question) (string, *quiz.Attempt) {
	t.Helper()
	attempt, err := quiz.NewAttempt(questions)
	if err != nil {
		t.Fatalf("NewAttempt: %v", err)
	}
	id := uuid.NewString()
	attemptsMu.Lock()
	attempts[id] = &attemptEntry{attempt: attempt, userID: userID, touchedAt: time.Now()}
	attemptsMu.Unlock()
	t.Cleanup(func() { FinishAttempt(id) })
	return id, attempt
}

func oneQuestion() []models.Question {
	return []models.Question{{
		ID:            "q1",
		Prompt:        "Which protocol secures web traffic?",
		Options:       []string{"HTTPS", "FTP", "Telnet"},
		CorrectAnswer: 0,
	}}
}

// Two in-flight submits on the same attempt must not both count the answer.
// Operations on one attempt are serialized, so exactly one submit locks the
// answer in and every other one sees the feedback-shown state.
func TestWithAttemptSerializesConcurrentSubmits(t *testing.T) {
	id, _ := registerAttempt(t, "", oneQuestion())

	if err := WithAttempt(id, "", func(a *quiz.Attempt) error {
		return a.SelectAnswer(0)
	}); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}

	var (
		wg        sync.WaitGroup
		submitted int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := WithAttempt(id, "", func(a *quiz.Attempt) error {
				_, err := a.Submit()
				return err
			})
			if err == nil {
				atomic.AddInt32(&submitted, 1)
			} else if !errors.Is(err, quiz.ErrFeedbackShown) {
				t.Errorf("concurrent submit: err = %v", err)
			}
		}()
	}
	wg.Wait()

	if submitted != 1 {
		t.Fatalf("submits that succeeded = %d, want 1", submitted)
	}

	var result quiz.Result
	if err := WithAttempt(id, "", func(a *quiz.Attempt) error {
		if _, err := a.Advance(); err != nil {
			return err
		}
		var err error
		result, err = a.Result()
		return err
	}); err != nil {
		t.Fatalf("finish attempt: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("score = %d, want 1 correct answer counted once", result.Score)
	}
}

func TestWithAttemptOwnership(t *testing.T) {
	id, _ := registerAttempt(t, "owner", oneQuestion())

	touched := false
	err := WithAttempt(id, "intruder", func(a *quiz.Attempt) error {
		touched = true
		return nil
	})
	if !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("foreign user: err = %v, want ErrAttemptNotFound", err)
	}
	if touched {
		t.Error("foreign user reached the attempt")
	}

	if err := WithAttempt(id, "owner", func(a *quiz.Attempt) error { return nil }); err != nil {
		t.Errorf("owner: err = %v, want nil", err)
	}
}

func TestWithAttemptAfterFinish(t *testing.T) {
	id, _ := registerAttempt(t, "", oneQuestion())
	FinishAttempt(id)

	err := WithAttempt(id, "", func(a *quiz.Attempt) error { return nil })
	if !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("finished attempt: err = %v, want ErrAttemptNotFound", err)
	}
}
