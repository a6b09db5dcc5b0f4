package app

import (
	"context"
	"time"

	"sciquest-service/internal/domain"
)

// QuizStore abstracts quiz content and attempt persistence.
type QuizStore interface {
	// QuizByID returns domain.ErrQuizNotFound for an unknown id.
	QuizByID(ctx context.Context, id int64) (domain.Quiz, error)
	// QuizByExperiment returns nil (not an error) when the experiment has no quiz.
	QuizByExperiment(ctx context.Context, experimentID int64) (*domain.Quiz, error)
	// QuestionsByQuiz returns questions sorted by their order index.
	QuestionsByQuiz(ctx context.Context, quizID int64) ([]domain.QuizQuestion, error)
	InsertAttempt(ctx context.Context, attempt domain.QuizAttempt) (domain.QuizAttempt, error)
	// AttemptsByUser returns the caller's attempts, newest first.
	AttemptsByUser(ctx context.Context, userID string, quizID int64) ([]domain.QuizAttempt, error)
}

// SubmissionResult is the full grading payload returned after a submission.
type SubmissionResult struct {
	Attempt        domain.QuizAttempt      `json:"attempt"`
	Results        []domain.QuestionResult `json:"results"`
	TotalQuestions int                     `json:"totalQuestions"`
	CorrectAnswers int                     `json:"correctAnswers"`
	PassingScore   int                     `json:"passingScore"`
}

// QuizService contains the quiz use cases: listing sanitized questions,
// grading submissions, and reading attempt history.
type QuizService struct {
	quizzes QuizStore
	now     func() time.Time
}

func NewQuizService(quizzes QuizStore) *QuizService {
	return &QuizService{quizzes: quizzes, now: time.Now}
}

// NewQuizServiceWithClock is test-only for deterministic attempt timestamps.
func NewQuizServiceWithClock(quizzes QuizStore, now func() time.Time) *QuizService {
	return &QuizService{quizzes: quizzes, now: now}
}

// QuizByExperiment returns the experiment's quiz metadata, or nil when none
// exists.
func (s *QuizService) QuizByExperiment(ctx context.Context, experimentID int64) (*domain.Quiz, error) {
	return s.quizzes.QuizByExperiment(ctx, experimentID)
}

// Questions lists a quiz's questions with the answer key stripped. This is
// the only question read exposed to clients, authenticated or not.
func (s *QuizService) Questions(ctx context.Context, quizID int64) ([]domain.SanitizedQuestion, error) {
	questions, err := s.quizzes.QuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	sanitized := make([]domain.SanitizedQuestion, len(questions))
	for i, q := range questions {
		sanitized[i] = q.Sanitize()
	}
	return sanitized, nil
}

// Submit validates and grades a submission, then appends an immutable
// attempt. Validation failures reject the request before anything is
// persisted; each valid submission creates a new attempt, never an update.
func (s *QuizService) Submit(ctx context.Context, userID string, quizID int64, answers []domain.SubmittedAnswer) (SubmissionResult, error) {
	quiz, err := s.quizzes.QuizByID(ctx, quizID)
	if err != nil {
		return SubmissionResult{}, err
	}

	questions, err := s.quizzes.QuestionsByQuiz(ctx, quizID)
	if err != nil {
		return SubmissionResult{}, err
	}
	if len(questions) == 0 {
		return SubmissionResult{}, domain.ErrQuizEmpty
	}

	graded, err := domain.GradeSubmission(questions, quiz.PassingScore, answers)
	if err != nil {
		return SubmissionResult{}, err
	}

	attempt, err := s.quizzes.InsertAttempt(ctx, domain.QuizAttempt{
		UserID:      userID,
		QuizID:      quizID,
		Score:       graded.Score,
		Answers:     graded.OrderedAnswers,
		Passed:      graded.Passed,
		CompletedAt: s.now(),
	})
	if err != nil {
		return SubmissionResult{}, err
	}

	return SubmissionResult{
		Attempt:        attempt,
		Results:        graded.Results,
		TotalQuestions: len(questions),
		CorrectAnswers: graded.CorrectAnswers,
		PassingScore:   quiz.PassingScore,
	}, nil
}

// Attempts returns the caller's attempt history for a quiz, newest first.
func (s *QuizService) Attempts(ctx context.Context, userID string, quizID int64) ([]domain.QuizAttempt, error) {
	return s.quizzes.AttemptsByUser(ctx, userID, quizID)
}
