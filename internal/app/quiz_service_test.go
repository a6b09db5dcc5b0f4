package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sciquest-service/internal/app"
	"sciquest-service/internal/domain"
	"sciquest-service/internal/infra/memory"
)

func newQuizFixture(t *testing.T) (*memory.Store, domain.Quiz) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	quiz, err := store.CreateQuiz(ctx, domain.Quiz{ExperimentID: 1, Title: "Bean Quiz", PassingScore: 70})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	correct := []int{1, 2, 2, 1}
	for i, answer := range correct {
		_, err := store.CreateQuizQuestion(ctx, domain.QuizQuestion{
			QuizID:             quiz.ID,
			QuestionText:       "question",
			Options:            []string{"a", "b", "c"},
			CorrectAnswerIndex: answer,
			OrderIndex:         i,
		})
		if err != nil {
			t.Fatalf("create question: %v", err)
		}
	}
	return store, quiz
}

func answersFor(store *memory.Store, t *testing.T, quizID int64, selected []int) []domain.SubmittedAnswer {
	t.Helper()
	questions, err := store.QuestionsByQuiz(context.Background(), quizID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	answers := make([]domain.SubmittedAnswer, len(questions))
	for i, q := range questions {
		answers[i] = domain.SubmittedAnswer{QuestionID: q.ID, SelectedOption: selected[i]}
	}
	return answers
}

func TestSubmitGradesAndRecordsAttempt(t *testing.T) {
	ctx := context.Background()
	store, quiz := newQuizFixture(t)

	when := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	service := app.NewQuizServiceWithClock(store, func() time.Time { return when })

	result, err := service.Submit(ctx, "u1", quiz.ID, answersFor(store, t, quiz.ID, []int{1, 2, 0, 1}))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Attempt.Score != 75 || !result.Attempt.Passed {
		t.Fatalf("expected passing 75, got %d passed=%v", result.Attempt.Score, result.Attempt.Passed)
	}
	if result.CorrectAnswers != 3 || result.TotalQuestions != 4 {
		t.Fatalf("expected 3/4, got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
	if result.Results[2].IsCorrect {
		t.Fatalf("third answer should be wrong")
	}
	if !result.Attempt.CompletedAt.Equal(when) {
		t.Fatalf("expected clock timestamp, got %v", result.Attempt.CompletedAt)
	}

	attempts, err := service.Attempts(ctx, "u1", quiz.ID)
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("expected one persisted attempt, got %d", len(attempts))
	}
}

func TestSubmitTwiceAppendsIdenticalAttempts(t *testing.T) {
	ctx := context.Background()
	store, quiz := newQuizFixture(t)
	service := app.NewQuizService(store)

	answers := answersFor(store, t, quiz.ID, []int{1, 2, 0, 1})
	first, err := service.Submit(ctx, "u1", quiz.ID, answers)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := service.Submit(ctx, "u1", quiz.ID, answers)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if first.Attempt.Score != second.Attempt.Score {
		t.Fatalf("same answers must score the same: %d vs %d", first.Attempt.Score, second.Attempt.Score)
	}
	if first.Attempt.ID == second.Attempt.ID {
		t.Fatalf("resubmission must append a new attempt, not update")
	}

	attempts, err := service.Attempts(ctx, "u1", quiz.ID)
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected two attempts, got %d", len(attempts))
	}
}

func TestSubmitRejectionPersistsNothing(t *testing.T) {
	ctx := context.Background()
	store, quiz := newQuizFixture(t)
	service := app.NewQuizService(store)

	_, err := service.Submit(ctx, "u1", quiz.ID, []domain.SubmittedAnswer{
		{QuestionID: 1, SelectedOption: 0},
	})
	if !errors.Is(err, domain.ErrInvalidSubmission) {
		t.Fatalf("expected invalid submission, got %v", err)
	}

	attempts, err := service.Attempts(ctx, "u1", quiz.ID)
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 0 {
		t.Fatalf("rejected submission must not persist an attempt")
	}
}

func TestSubmitUnknownQuiz(t *testing.T) {
	store := memory.NewStore()
	service := app.NewQuizService(store)

	_, err := service.Submit(context.Background(), "u1", 99, nil)
	if !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}
}

func TestSubmitEmptyQuiz(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	quiz, err := store.CreateQuiz(ctx, domain.Quiz{Title: "empty", PassingScore: 70})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	service := app.NewQuizService(store)

	_, err = service.Submit(ctx, "u1", quiz.ID, nil)
	if !errors.Is(err, domain.ErrQuizEmpty) {
		t.Fatalf("expected empty quiz error, got %v", err)
	}
}

func TestQuestionsAreSanitized(t *testing.T) {
	ctx := context.Background()
	store, quiz := newQuizFixture(t)
	service := app.NewQuizService(store)

	questions, err := service.Questions(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.QuestionText == "" || len(q.Options) != 3 {
			t.Fatalf("sanitized question lost content: %+v", q)
		}
	}
}
